package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screens/summary"
	"github.com/DDLX-svg/EdifyX-sub000/internal/tokens"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/components"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/layout"
	"github.com/DDLX-svg/EdifyX-sub000/internal/ui/theme"
)

// Canvas dimensions for coordinate questions, in cells.
const (
	canvasCellW = 60
	canvasCellH = 16
)

// SessionScreen runs one quiz session: countdown, question display,
// answer capture, and feedback. The engine owns the session rules; this
// screen owns the timers and input routing.
type SessionScreen struct {
	engine *quiz.Engine
	flavor quiz.Flavor
	cfg    quiz.Config

	sess     *quiz.Session
	choice   components.Choice
	canvas   components.Canvas
	spin     spinner.Model
	notifyCh chan tokenNoticeMsg
	doneCh   chan struct{}
	doneOnce sync.Once

	questionStart time.Time
	notice        string
	errMsg        string
	quitConfirm   bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen for the given flavor. The session itself
// is built asynchronously in Init.
func New(engine *quiz.Engine, flavor quiz.Flavor, cfg quiz.Config) *SessionScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &SessionScreen{
		engine:   engine,
		flavor:   flavor,
		cfg:      cfg,
		spin:     sp,
		notifyCh: make(chan tokenNoticeMsg, 1),
		doneCh:   make(chan struct{}),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spin.Tick,
		s.startSession(),
		s.waitForTokenNotice(),
	)
}

func (s *SessionScreen) Title() string {
	return s.flavor.Name
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.sess == nil || s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.flavor.Kind == question.KindCoordinate {
		return []layout.KeyHint{
			{Key: "↑↓←→", Description: "Move"},
			{Key: "Shift", Description: "Fast"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case tokenNoticeMsg:
		return s.handleTokenNotice(msg)

	case spinner.TickMsg:
		if s.sess == nil && s.errMsg == "" {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// startSession builds the session off the event loop. The notify
// callback fires from the ledger's confirmation goroutine, so it hands
// off through the channel rather than touching the screen.
func (s *SessionScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		ch := s.notifyCh
		sess, err := s.engine.Start(context.Background(), s.flavor, s.cfg,
			func(rolledBack bool, balance int) {
				ch <- tokenNoticeMsg{RolledBack: rolledBack, Balance: balance}
			})
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

// waitForTokenNotice blocks on the notify channel and resurfaces the
// result as a message. At most one notice arrives per session. The done
// channel releases the wait when the screen exits without a notice, so
// abandoned and failed starts do not strand the command goroutine.
func (s *SessionScreen) waitForTokenNotice() tea.Cmd {
	ch, done := s.notifyCh, s.doneCh
	return func() tea.Msg {
		select {
		case n := <-ch:
			return n
		case <-done:
			return nil
		}
	}
}

// stopNoticeWait releases any pending waitForTokenNotice command. Safe
// to call more than once.
func (s *SessionScreen) stopNoticeWait() {
	s.doneOnce.Do(func() { close(s.doneCh) })
}

func (s *SessionScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, tokens.ErrInsufficientTokens) {
			s.errMsg = fmt.Sprintf("Not enough tokens. A session costs %d.", tokens.SessionCost)
		} else {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}

	s.sess = msg.Session
	if s.sess.Outcome == quiz.OutcomeNoQuestions {
		// Terminal before the first question; nothing was charged.
		return s, nil
	}

	s.setupQuestion()
	return s, tickCmd()
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Phase == quiz.PhaseFinished {
		return s, nil
	}
	if s.sess.Tick() {
		return s, tickCmd()
	}
	// Budget exhausted mid-run.
	return s.finishSession()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Phase != quiz.PhaseFeedback {
		// The clock finished the session while feedback was on screen.
		return s, nil
	}
	s.sess.Advance()
	if s.sess.Phase == quiz.PhaseFinished {
		return s.finishSession()
	}
	s.setupQuestion()
	return s, nil
}

func (s *SessionScreen) handleTokenNotice(msg tokenNoticeMsg) (screen.Screen, tea.Cmd) {
	if msg.RolledBack {
		s.notice = fmt.Sprintf("Fee confirmation failed. %d tokens returned (balance %d).",
			tokens.SessionCost, msg.Balance)
	} else {
		s.notice = ""
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.stopNoticeWait()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.sess == nil {
		if key == "esc" {
			s.stopNoticeWait()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.sess.Outcome == quiz.OutcomeNoQuestions {
		s.stopNoticeWait()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s.finishSession()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.sess.Phase != quiz.PhaseRunning {
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.flavor.Kind == question.KindCoordinate {
		s.canvas, _ = s.canvas.Update(msg)
		if s.canvas.Submitted {
			return s.submitAnswer(quiz.PointAnswer(s.canvas.Point()))
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if s.choice.Submitted {
		return s.submitAnswer(quiz.KeyAnswer(s.choice.Key()))
	}
	return s, nil
}

// submitAnswer grades the answer through the engine and either holds a
// feedback view or advances immediately, per the flavor.
func (s *SessionScreen) submitAnswer(a quiz.Answer) (screen.Screen, tea.Cmd) {
	timeMs := int(time.Since(s.questionStart).Milliseconds())
	rec, ok := s.engine.RecordAnswer(context.Background(), s.sess, a, timeMs)
	if !ok {
		return s, nil
	}

	hold := s.sess.FeedbackHold()
	if hold > 0 {
		if s.flavor.Kind == question.KindCoordinate {
			s.canvas = s.canvas.Reveal(rec.Question.Target, rec.Correct)
		} else {
			s.choice = s.choice.Reveal(rec.Question.CorrectKey)
		}
		return s, feedbackCmd(hold)
	}

	s.sess.Advance()
	if s.sess.Phase == quiz.PhaseFinished {
		return s.finishSession()
	}
	s.setupQuestion()
	return s, nil
}

// setupQuestion rebuilds the input component for the current question.
func (s *SessionScreen) setupQuestion() {
	q, ok := s.sess.Current()
	if !ok {
		return
	}
	if q.Kind == question.KindCoordinate {
		s.canvas = components.NewCanvas(q.ImageW, q.ImageH, canvasCellW, canvasCellH)
	} else {
		s.choice = components.NewChoice(q.Prompt, q.Options)
	}
	s.questionStart = time.Now()
}

// finishSession applies end-of-session effects and hands off to the
// summary, replacing this screen so Esc from the summary lands on home.
func (s *SessionScreen) finishSession() (screen.Screen, tea.Cmd) {
	s.stopNoticeWait()
	s.engine.Finish(context.Background(), s.sess)
	sess := s.sess
	notice := s.notice
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sess, notice)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// feedbackCmd schedules the end of the feedback hold.
func feedbackCmd(hold time.Duration) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
