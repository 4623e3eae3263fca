package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/layout"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

const recentSessionLimit = 10

type statsLoadedMsg struct {
	Account  store.AccountData
	Sessions []store.SessionSummaryRecord
	Tokens   []store.TokenEventRecord
	Err      error
}

// StatsScreen shows the account counters, recent sessions, and recent
// token activity.
type StatsScreen struct {
	acct   *account.Store
	events store.EventRepo

	data     store.AccountData
	sessions []store.SessionSummaryRecord
	tokens   []store.TokenEventRecord
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the stats screen.
func New(acct *account.Store, events store.EventRepo) *StatsScreen {
	return &StatsScreen{acct: acct, events: events}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		data, err := s.acct.Get(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		sessions, err := s.events.RecentSessions(ctx, recentSessionLimit)
		if err != nil {
			return statsLoadedMsg{Account: data, Err: err}
		}

		tokenEvents, err := s.events.TokenHistory(ctx, data.UserID, recentSessionLimit)
		if err != nil {
			return statsLoadedMsg{Account: data, Sessions: sessions, Err: err}
		}

		return statsLoadedMsg{Account: data, Sessions: sessions, Tokens: tokenEvents}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.data = msg.Account
		s.sessions = msg.Sessions
		s.tokens = msg.Tokens
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(sectionHeading(width, "Account"))

	b.WriteString(centered(width, theme.Body.Render(fmt.Sprintf(
		"Tokens: %d", s.data.Tokens))))
	b.WriteString(centered(width, theme.Body.Render(fmt.Sprintf(
		"Lifetime: %d answered, %d correct (%s)",
		s.data.LifetimeAttempted, s.data.LifetimeCorrect,
		accuracy(s.data.LifetimeCorrect, s.data.LifetimeAttempted)))))
	b.WriteString(centered(width, theme.Body.Render(fmt.Sprintf(
		"This week: %d answered, %d correct (%s)",
		s.data.WeekAttempted, s.data.WeekCorrect,
		accuracy(s.data.WeekCorrect, s.data.WeekAttempted)))))
	b.WriteString("\n")

	b.WriteString(sectionHeading(width, "Recent sessions"))
	if len(s.sessions) == 0 {
		b.WriteString(centered(width, theme.Hint.Render("No sessions yet.")))
	}
	for _, rec := range s.sessions {
		line := fmt.Sprintf("%s  %-10s  %d/%d correct  %-10s  %s",
			rec.Timestamp.Format("Jan 02 15:04"),
			rec.Flavor,
			rec.Correct, rec.Attempted,
			rec.Outcome,
			formatDuration(rec.DurationSecs))
		b.WriteString(centered(width, theme.Body.Render(line)))
	}
	b.WriteString("\n")

	b.WriteString(sectionHeading(width, "Token activity"))
	if len(s.tokens) == 0 {
		b.WriteString(centered(width, theme.Hint.Render("No token activity yet.")))
	}
	for _, rec := range s.tokens {
		sign := "-"
		style := theme.Incorrect
		if rec.Action == "credit" || rec.Action == "reconcile" {
			sign = "+"
			style = theme.Correct
		}
		amount := rec.Amount
		if rec.Action == "reconcile" {
			// Reconcile records the authoritative balance, not a delta.
			sign = "="
			amount = rec.BalanceAfter
		}
		line := fmt.Sprintf("%s  %s%d  %-10s  %s",
			rec.Timestamp.Format("Jan 02 15:04"), sign, amount, rec.Action, rec.Reason)
		b.WriteString(centered(width, style.Render(line)))
	}

	return b.String()
}

func sectionHeading(width int, title string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		centered(width, divider) + "\n"
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) + "\n"
}

func accuracy(correct, attempted int) string {
	if attempted == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(correct)/float64(attempted)*100)
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
