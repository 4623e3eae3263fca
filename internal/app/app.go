package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screens/home"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/layout"
)

// Header refresh cadence. The balance can change under the UI when a
// detached fee confirmation lands, so the header polls rather than
// assuming it owns the number.
const headerRefreshInterval = 2 * time.Second

// Options carries the wired services the UI runs against.
type Options struct {
	Engine  *quiz.Engine
	Account *account.Store
	Events  store.EventRepo
}

// headerRefreshMsg delivers a fresh account snapshot for the header.
type headerRefreshMsg struct {
	Data store.AccountData
	Err  error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	acct   *account.Store

	width        int
	height       int
	tokens       int
	weekAnswered int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Engine, opts.Account, opts.Events)
	return AppModel{
		router: router.New(homeScreen),
		acct:   opts.Account,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.refreshHeader()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerRefreshMsg:
		if msg.Err == nil {
			m.tokens = msg.Data.Tokens
			m.weekAnswered = msg.Data.WeekAttempted
		}
		return m, tea.Tick(headerRefreshInterval, func(time.Time) tea.Msg {
			return m.refreshHeader()()
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// refreshHeader fetches the account snapshot off the event loop.
func (m AppModel) refreshHeader() tea.Cmd {
	acct := m.acct
	return func() tea.Msg {
		if acct == nil {
			return headerRefreshMsg{Err: fmt.Errorf("no account store")}
		}
		data, err := acct.Get(context.Background())
		return headerRefreshMsg{Data: data, Err: err}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.tokens, m.weekAnswered, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
