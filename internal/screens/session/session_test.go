package session

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
	"github.com/DDLX-svg/EdifyX-sub000/internal/tokens"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func choicePool(n int) question.Pool {
	pool := make(question.Pool, n)
	for i := range pool {
		pool[i] = question.Question{
			ID:         fmt.Sprintf("med-%d", i+1),
			Category:   "medicine",
			Kind:       question.KindChoice,
			Prompt:     fmt.Sprintf("Question %d", i+1),
			Options:    [4]string{"Alpha", "Beta", "Gamma", "Delta"},
			CorrectKey: "B",
		}
	}
	return pool
}

func coordinatePool(n int) question.Pool {
	pool := make(question.Pool, n)
	for i := range pool {
		pool[i] = question.Question{
			ID:       fmt.Sprintf("anat-%d", i+1),
			Category: "anatomy",
			Kind:     question.KindCoordinate,
			Prompt:   fmt.Sprintf("Locate structure %d", i+1),
			ImageRef: "torso-anterior",
			ImageW:   800,
			ImageH:   600,
			Target:   question.Target{X: 400, Y: 300, Radius: 1000},
		}
	}
	return pool
}

func testEngine(pools map[string]question.Pool) *quiz.Engine {
	return &quiz.Engine{
		Source: question.StaticSource(pools),
		Rand:   rand.New(rand.NewSource(1)),
	}
}

// readyScreen builds a session screen and drives it to the first
// question by running the start command synchronously.
func readyScreen(t *testing.T, engine *quiz.Engine, flavor quiz.Flavor, cfg quiz.Config) *SessionScreen {
	t.Helper()
	s := New(engine, flavor, cfg)
	msg := s.startSession()()
	scr, _ := s.Update(msg)
	return scr.(*SessionScreen)
}

func choiceScreen(t *testing.T, count int) *SessionScreen {
	t.Helper()
	engine := testEngine(map[string]question.Pool{"medicine": choicePool(count + 2)})
	return readyScreen(t, engine, quiz.FlavorMedicine, quiz.Config{RequestedCount: count, TimeBudgetSeconds: 60})
}

func coordinateScreen(t *testing.T, count int) *SessionScreen {
	t.Helper()
	engine := testEngine(map[string]question.Pool{"anatomy": coordinatePool(count + 2)})
	return readyScreen(t, engine, quiz.FlavorAnatomy, quiz.Config{RequestedCount: count, TimeBudgetSeconds: 60})
}

func TestSessionScreen_Title(t *testing.T) {
	s := New(testEngine(nil), quiz.FlavorAnatomy, quiz.FlavorAnatomy.DefaultConfig())
	if s.Title() != "anatomy" {
		t.Errorf("Title = %q, want %q", s.Title(), "anatomy")
	}
}

func TestSessionScreen_View_Loading(t *testing.T) {
	s := New(testEngine(nil), quiz.FlavorMedicine, quiz.FlavorMedicine.DefaultConfig())
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestSessionScreen_ReadyStartsTicking(t *testing.T) {
	engine := testEngine(map[string]question.Pool{"medicine": choicePool(5)})
	s := New(engine, quiz.FlavorMedicine, quiz.Config{RequestedCount: 3, TimeBudgetSeconds: 60})

	msg := s.startSession()()
	scr, cmd := s.Update(msg)
	ss := scr.(*SessionScreen)

	if ss.sess == nil || ss.sess.Phase != quiz.PhaseRunning {
		t.Fatal("expected a running session after the ready message")
	}
	if cmd == nil {
		t.Error("expected the clock to start")
	}
}

func TestSessionScreen_ChoiceSubmitAdvancesImmediately(t *testing.T) {
	s := choiceScreen(t, 3)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if len(ss.sess.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(ss.sess.Answers))
	}
	if !ss.sess.Answers[0].Correct {
		t.Error("option B should grade correct")
	}
	if ss.sess.CurrentIndex != 1 || ss.sess.Phase != quiz.PhaseRunning {
		t.Errorf("index/phase = %d/%v, want next question running with no hold", ss.sess.CurrentIndex, ss.sess.Phase)
	}
}

func TestSessionScreen_EnterWithoutSelectionIsNoop(t *testing.T) {
	s := choiceScreen(t, 3)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if len(ss.sess.Answers) != 0 {
		t.Errorf("answers = %d, want 0 (no option chosen)", len(ss.sess.Answers))
	}
	if ss.sess.Phase != quiz.PhaseRunning {
		t.Errorf("phase = %v, want still running", ss.sess.Phase)
	}
}

func TestSessionScreen_LastAnswerHandsOffToSummary(t *testing.T) {
	s := choiceScreen(t, 1)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.sess.Phase != quiz.PhaseFinished || ss.sess.Outcome != quiz.OutcomeCompleted {
		t.Fatalf("phase/outcome = %v/%q, want finished/completed", ss.sess.Phase, ss.sess.Outcome)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the summary to replace the session screen")
	}
}

func TestSessionScreen_CoordinateHoldsFeedback(t *testing.T) {
	s := coordinateScreen(t, 2)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.sess.Phase != quiz.PhaseFeedback {
		t.Fatalf("phase = %v, want feedback hold after a spatial answer", ss.sess.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a feedback timer command")
	}

	scr, _ = ss.Update(feedbackDoneMsg{})
	ss = scr.(*SessionScreen)
	if ss.sess.CurrentIndex != 1 || ss.sess.Phase != quiz.PhaseRunning {
		t.Errorf("index/phase = %d/%v, want advanced to the next question", ss.sess.CurrentIndex, ss.sess.Phase)
	}
}

func TestSessionScreen_SubmitBlockedDuringFeedback(t *testing.T) {
	s := coordinateScreen(t, 2)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if len(ss.sess.Answers) != 1 {
		t.Errorf("answers = %d, want 1 (double submit suppressed)", len(ss.sess.Answers))
	}
}

func TestSessionScreen_TimeoutFinishes(t *testing.T) {
	s := choiceScreen(t, 3)
	s.sess.RemainingSeconds = 1

	scr, cmd := s.Update(timerTickMsg{})
	ss := scr.(*SessionScreen)

	if ss.sess.Phase != quiz.PhaseFinished || ss.sess.Outcome != quiz.OutcomeTimeout {
		t.Fatalf("phase/outcome = %v/%q, want finished/timeout", ss.sess.Phase, ss.sess.Outcome)
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the summary to replace the session screen")
	}
}

func TestSessionScreen_FeedbackDoneAfterTimeoutIsNoop(t *testing.T) {
	s := coordinateScreen(t, 2)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)
	ss.sess.RemainingSeconds = 1
	scr, _ = ss.Update(timerTickMsg{})
	ss = scr.(*SessionScreen)

	if _, cmd := ss.Update(feedbackDoneMsg{}); cmd != nil {
		t.Error("late feedback timer should be ignored once the clock finished the session")
	}
	if ss.sess.Outcome != quiz.OutcomeTimeout {
		t.Errorf("outcome = %q, want timeout preserved", ss.sess.Outcome)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := choiceScreen(t, 3)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.quitConfirm {
		t.Fatal("expected the quit confirmation prompt")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.quitConfirm {
		t.Error("expected N to dismiss the prompt")
	}
	if ss.sess.Phase != quiz.PhaseRunning {
		t.Errorf("phase = %v, want still running", ss.sess.Phase)
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := choiceScreen(t, 3)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	scr, cmd := scr.Update(keyPress('y'))
	ss := scr.(*SessionScreen)

	if ss.sess.Outcome != quiz.OutcomeAbandoned {
		t.Errorf("outcome = %q, want abandoned", ss.sess.Outcome)
	}
	if cmd == nil {
		t.Error("expected a navigation command after confirming quit")
	}
}

func TestSessionScreen_InsufficientTokens(t *testing.T) {
	s := New(testEngine(nil), quiz.FlavorMedicine, quiz.FlavorMedicine.DefaultConfig())

	scr, _ := s.Update(sessionReadyMsg{Err: fmt.Errorf("wrapped: %w", tokens.ErrInsufficientTokens)})
	ss := scr.(*SessionScreen)

	if ss.errMsg == "" {
		t.Fatal("expected a friendly error message")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}

	_, cmd := ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected any key to navigate back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop back to the menu")
	}
}

func TestSessionScreen_EmptyPool(t *testing.T) {
	engine := testEngine(map[string]question.Pool{"medicine": {}})
	s := readyScreen(t, engine, quiz.FlavorMedicine, quiz.Config{RequestedCount: 5, TimeBudgetSeconds: 60})

	if s.sess.Outcome != quiz.OutcomeNoQuestions {
		t.Fatalf("outcome = %q, want no-questions", s.sess.Outcome)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty no-questions view")
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected any key to navigate back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop back to the menu")
	}
}

func TestSessionScreen_NoticeWaitReleasedOnFailedStart(t *testing.T) {
	s := New(testEngine(nil), quiz.FlavorMedicine, quiz.FlavorMedicine.DefaultConfig())

	wait := s.waitForTokenNotice()
	got := make(chan tea.Msg, 1)
	go func() { got <- wait() }()

	// No notice ever arrives on this path, so leaving the screen must
	// release the pending wait instead of stranding it.
	scr, _ := s.Update(sessionReadyMsg{Err: fmt.Errorf("wrapped: %w", tokens.ErrInsufficientTokens)})
	ss := scr.(*SessionScreen)
	ss.Update(keyPress(' '))

	select {
	case msg := <-got:
		if msg != nil {
			t.Errorf("wait returned %v, want nil on release", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notice wait still blocked after leaving the screen")
	}
}

func TestSessionScreen_NoticeWaitReleasedOnFinish(t *testing.T) {
	s := choiceScreen(t, 1)

	wait := s.waitForTokenNotice()
	got := make(chan tea.Msg, 1)
	go func() { got <- wait() }()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr.Update(specialKey(tea.KeyEnter))

	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("notice wait still blocked after the session finished")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	if hints := coordinateScreen(t, 2).KeyHints(); len(hints) == 0 {
		t.Error("expected key hints for the coordinate flavor")
	}
	if hints := choiceScreen(t, 2).KeyHints(); len(hints) == 0 {
		t.Error("expected key hints for the choice flavor")
	}
}

func TestSessionScreen_View_Running(t *testing.T) {
	if v := choiceScreen(t, 3).View(100, 30); v == "" {
		t.Error("expected non-empty running view")
	}
	if v := coordinateScreen(t, 3).View(100, 30); v == "" {
		t.Error("expected non-empty canvas view")
	}
}
