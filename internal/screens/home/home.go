package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	sessionscreen "github.com/DDLX-svg/EdifyX-sub000/internal/screens/session"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screens/stats"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
	"github.com/DDLX-svg/EdifyX-sub000/internal/tokens"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/components"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/layout"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

// HomeScreen is the flavor picker and entry point of the application.
type HomeScreen struct {
	engine *quiz.Engine
	acct   *account.Store
	events store.EventRepo

	menu    components.Menu
	flavors []quiz.Flavor

	// customFor is set while the count prompt is open for a flavor.
	customFor  *quiz.Flavor
	countInput components.TextInput
	inputErr   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(engine *quiz.Engine, acct *account.Store, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		engine:  engine,
		acct:    acct,
		events:  events,
		flavors: quiz.AllFlavors(),
	}

	items := make([]components.MenuItem, 0, len(h.flavors)+2)
	for _, f := range h.flavors {
		flavor := f
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(flavor.Name),
			Detail: flavorDetail(flavor),
			Action: func() tea.Cmd {
				return h.startSession(flavor, flavor.DefaultConfig())
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "STATISTICS",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(acct, events)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.customFor != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "C", Description: "Custom count"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.customFor != nil {
		return h.updateCountPrompt(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "c" {
		if h.menu.Selected < len(h.flavors) {
			flavor := h.flavors[h.menu.Selected]
			h.customFor = &flavor
			h.countInput = components.NewTextInput(fmt.Sprintf("%d", flavor.DefaultCount), true, 3)
			h.inputErr = ""
			return h, h.countInput.Init()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateCountPrompt(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.customFor = nil
			return h, nil
		case "enter":
			count, err := h.countInput.NumericValue()
			if err != nil || count < 1 {
				h.inputErr = "Enter a question count of at least 1."
				return h, nil
			}
			flavor := *h.customFor
			cfg := flavor.DefaultConfig()
			cfg.RequestedCount = count
			h.customFor = nil
			return h, h.startSession(flavor, cfg)
		}
	}

	var cmd tea.Cmd
	h.countInput, cmd = h.countInput.Update(msg)
	return h, cmd
}

// startSession pushes a session screen for the flavor.
func (h *HomeScreen) startSession(flavor quiz.Flavor, cfg quiz.Config) tea.Cmd {
	engine := h.engine
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(engine, flavor, cfg),
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("E D I F Y X"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Clinical knowledge, one question at a time"))
	b.WriteString("\n\n")

	if data, err := h.acct.Get(context.Background()); err == nil {
		statsLine := fmt.Sprintf("Tokens: %d    This week: %d answered, %d correct",
			data.Tokens, data.WeekAttempted, data.WeekCorrect)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	if h.customFor != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("How many %s questions? ", h.customFor.Name) + h.countInput.View()))
		if h.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(h.inputErr))
		}
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Hint.Render(fmt.Sprintf("A session costs %d tokens.", tokens.SessionCost))))

	return b.String()
}

// flavorDetail summarizes a flavor for the menu.
func flavorDetail(f quiz.Flavor) string {
	return fmt.Sprintf("%d questions, %d:%02d", f.DefaultCount,
		f.DefaultTimeBudget/60, f.DefaultTimeBudget%60)
}
