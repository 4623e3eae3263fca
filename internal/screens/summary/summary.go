package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/components"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/layout"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

// SummaryScreen shows a finished session's result and an optional
// question-by-question review of the recorded answers.
type SummaryScreen struct {
	sess   *quiz.Session
	notice string

	reviewIndex int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a finished session. notice carries a
// token rollback message raised during the run, if any.
func New(sess *quiz.Session, notice string) *SummaryScreen {
	return &SummaryScreen{sess: sess, notice: notice}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.sess != nil && s.sess.Reviewing {
		return []layout.KeyHint{
			{Key: "←→", Description: "Prev/Next"},
			{Key: "R", Description: "Back to summary"},
		}
	}
	hints := []layout.KeyHint{}
	if s.sess != nil && len(s.sess.Answers) > 0 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review answers"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Home"},
		layout.KeyHint{Key: "Esc", Description: "Home"},
	)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.sess == nil {
		return s, nil
	}

	if s.sess.Reviewing {
		switch kmsg.String() {
		case "left", "h", "up", "k":
			if s.reviewIndex > 0 {
				s.reviewIndex--
			}
		case "right", "l", "down", "j":
			if s.reviewIndex < len(s.sess.Answers)-1 {
				s.reviewIndex++
			}
		case "r", "esc":
			s.sess.ExitReview()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		if len(s.sess.Answers) > 0 {
			s.reviewIndex = 0
			s.sess.EnterReview()
		}
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.sess == nil {
		return ""
	}
	if s.sess.Reviewing {
		return s.renderReview(width)
	}
	return s.renderResult(width)
}

func (s *SummaryScreen) renderResult(width int) string {
	attempted, correct, percentage := s.sess.Result()

	var b strings.Builder

	title, titleColor := outcomeHeading(s.sess.Outcome)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(titleColor).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Attempted: %d        Correct: %d        Score: %.0f%%",
		attempted, correct, percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if s.sess.Shortfall {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("The pool held %d of the %d requested questions.",
				len(s.sess.Questions), s.sess.Requested)))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.notice))
		b.WriteString("\n")
	}

	if len(s.sess.Answers) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press R to review your answers."))
	}

	return b.String()
}

// renderReview shows one recorded answer at a time, in submission order.
func (s *SummaryScreen) renderReview(width int) string {
	trace := s.sess.ReviewTrace()
	if s.reviewIndex >= len(trace) {
		return ""
	}
	rec := trace[s.reviewIndex]

	var b strings.Builder

	header := fmt.Sprintf("Review %d/%d", s.reviewIndex+1, len(trace))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(header))
	b.WriteString("\n\n")

	if rec.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Correct.Render("✓ Correct")))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render("✗ Incorrect")))
	}
	b.WriteString("\n\n")

	if rec.Question.Kind == question.KindChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderChoiceReview(rec)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderCoordinateReview(rec)))
	}

	if rec.Question.Explanation != "" {
		b.WriteString("\n\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(rec.Question.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}

	return b.String()
}

// renderChoiceReview reuses the choice selector in reveal mode so the
// review matches what the learner saw mid-session.
func (s *SummaryScreen) renderChoiceReview(rec quiz.AnswerRecord) string {
	c := components.NewChoice(rec.Question.Prompt, rec.Question.Options)
	if key, ok := rec.Submitted.(quiz.KeyAnswer); ok {
		for i, k := range question.ChoiceKeys {
			if k == string(key) {
				c.Selected = i
				break
			}
		}
	}
	c = c.Reveal(rec.Question.CorrectKey)
	return c.View()
}

func renderCoordinateReview(rec quiz.AnswerRecord) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(rec.Question.Prompt))
	b.WriteString("\n\n")

	t := rec.Question.Target
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Target: (%.0f, %.0f) within %.0fpx", t.X, t.Y, t.Radius)))
	b.WriteString("\n")

	if p, ok := rec.Submitted.(quiz.PointAnswer); ok {
		pt := question.Point(p)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("Your click: (%.0f, %.0f), %.0fpx away", pt.X, pt.Y, pt.DistanceTo(question.Point{X: t.X, Y: t.Y}))))
	}
	return b.String()
}

func outcomeHeading(o quiz.Outcome) (string, color.Color) {
	switch o {
	case quiz.OutcomeCompleted:
		return "Session complete!", theme.Primary
	case quiz.OutcomeTimeout:
		return "Time's up!", theme.Accent
	case quiz.OutcomeAbandoned:
		return "Session ended early", theme.TextDim
	default:
		return "Session over", theme.TextDim
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
