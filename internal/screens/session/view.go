package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/components"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

// Remaining-time fraction below which the countdown renders urgent.
const urgentFraction = 0.2

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil {
		return s.renderLoading(width)
	}
	if s.sess.Outcome == quiz.OutcomeNoQuestions {
		return renderNoQuestions(width, s.flavor.Category)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width, height)
}

// renderQuestion renders the active question with the status line and
// countdown. The same view serves Running and Feedback; the components
// carry their own reveal state.
func (s *SessionScreen) renderQuestion(width, height int) string {
	q, ok := s.sess.Current()
	if !ok {
		return ""
	}

	index, total, remaining := s.sess.Progress()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.flavor.Name))

	budget := s.cfg.TimeBudgetSeconds
	if budget <= 0 {
		budget = s.flavor.DefaultTimeBudget
	}

	timerStr := fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	urgent := budget > 0 && float64(remaining) < float64(budget)*urgentFraction
	if urgent {
		timerStyle = theme.Urgent
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", index+1, total)) +
		timerStyle.Render("⏱ "+timerStr)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent: timeFraction(remaining, budget),
		Urgent:  urgent,
		Width:   width - 4,
	}
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if s.sess.Shortfall {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("Only %d of %d requested questions available", total, s.sess.Requested)))
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
	b.WriteString("\n")

	if q.Kind == question.KindCoordinate {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Prompt))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.canvas.View()))
		if s.sess.Phase == quiz.PhaseFeedback {
			b.WriteString("\n")
			b.WriteString(renderVerdict(width, s.canvas.Hit, q.Explanation))
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}

	return b.String()
}

// renderVerdict renders the correct/incorrect line shown during the
// feedback hold.
func renderVerdict(width int, correct bool, explanation string) string {
	var b strings.Builder
	if correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite. The marked region was the target"))
	}
	if explanation != "" {
		b.WriteString("\n")
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim).
			Render(explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
	}
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are kept; the rest are skipped."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func (s *SessionScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Fetching questions...", s.spin.View()))
}

func renderNoQuestions(width int, category string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Render(fmt.Sprintf(
			"\n\n\n  No questions available for %s right now.\n\n  Nothing was charged. Press any key to go back.",
			category))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

// timeFraction maps remaining seconds onto a 0..1 bar fill.
func timeFraction(remaining, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	f := float64(remaining) / float64(budget)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
