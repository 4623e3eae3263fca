package quiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

func choicePool(n int) question.Pool {
	pool := make(question.Pool, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, question.Question{
			ID:         string(rune('a' + i)),
			Category:   "medicine",
			Kind:       question.KindChoice,
			Prompt:     "Pick A",
			Options:    [4]string{"right", "wrong", "wrong", "wrong"},
			CorrectKey: "A",
		})
	}
	return pool
}

func coordinatePool(n int) question.Pool {
	pool := make(question.Pool, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, question.Question{
			ID:       string(rune('a' + i)),
			Category: "anatomy",
			Kind:     question.KindCoordinate,
			Prompt:   "Find it",
			ImageW:   800, ImageH: 600,
			Target: question.Target{X: 400, Y: 300, Radius: 50},
		})
	}
	return pool
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func buildChoice(t *testing.T, n, count, budget int) *Session {
	t.Helper()
	s, err := Build(choicePool(n), FlavorMedicine, Config{RequestedCount: count, TimeBudgetSeconds: budget}, testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestSubmit_RecordsAndEntersFeedback(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)

	rec, ok := s.Submit(KeyAnswer("A"))
	if !ok {
		t.Fatal("expected Submit to be accepted while Running")
	}
	if !rec.Correct {
		t.Error("expected A to grade correct")
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("Phase = %v, want PhaseFeedback", s.Phase)
	}
	if len(s.Answers) != 1 {
		t.Errorf("len(Answers) = %d, want 1", len(s.Answers))
	}
}

func TestSubmit_RejectedDuringFeedback(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)

	if _, ok := s.Submit(KeyAnswer("A")); !ok {
		t.Fatal("first submit rejected")
	}
	if _, ok := s.Submit(KeyAnswer("B")); ok {
		t.Error("double submission must be a no-op during feedback")
	}
	if len(s.Answers) != 1 {
		t.Errorf("len(Answers) = %d after double submit, want 1", len(s.Answers))
	}
}

func TestSubmit_RejectedAfterFinished(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)
	s.Abandon()

	if _, ok := s.Submit(KeyAnswer("A")); ok {
		t.Error("submit after Finished must be a no-op")
	}
}

func TestAdvance_MovesToNextQuestion(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)

	s.Submit(KeyAnswer("A"))
	s.Advance()

	if s.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want PhaseRunning", s.Phase)
	}
	if s.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.CurrentIndex)
	}
	if len(s.Answers) != s.CurrentIndex {
		t.Errorf("len(Answers) = %d, want CurrentIndex %d while Running", len(s.Answers), s.CurrentIndex)
	}
}

func TestAdvance_LastQuestionCompletes(t *testing.T) {
	s := buildChoice(t, 2, 2, 60)

	for i := 0; i < 2; i++ {
		if _, ok := s.Submit(KeyAnswer("A")); !ok {
			t.Fatalf("submit %d rejected", i)
		}
		s.Advance()
	}

	if s.Phase != PhaseFinished {
		t.Errorf("Phase = %v, want PhaseFinished", s.Phase)
	}
	if s.Outcome != OutcomeCompleted {
		t.Errorf("Outcome = %q, want %q", s.Outcome, OutcomeCompleted)
	}
}

func TestTick_CountsDownWhileRunning(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)

	if !s.Tick() {
		t.Fatal("expected session to stay live")
	}
	if s.RemainingSeconds != 59 {
		t.Errorf("RemainingSeconds = %d, want 59", s.RemainingSeconds)
	}
}

func TestTick_CountsDownDuringFeedback(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)
	s.Submit(KeyAnswer("A"))

	if s.Phase != PhaseFeedback {
		t.Fatal("expected feedback phase")
	}
	s.Tick()
	if s.RemainingSeconds != 59 {
		t.Errorf("RemainingSeconds = %d during feedback, want 59", s.RemainingSeconds)
	}
}

func TestTick_TimeoutForcesFinished(t *testing.T) {
	s := buildChoice(t, 4, 4, 2)

	if !s.Tick() {
		t.Fatal("first tick should keep the session live")
	}
	if s.Tick() {
		t.Error("second tick should end the session")
	}
	if s.Phase != PhaseFinished {
		t.Errorf("Phase = %v, want PhaseFinished", s.Phase)
	}
	if s.Outcome != OutcomeTimeout {
		t.Errorf("Outcome = %q, want %q", s.Outcome, OutcomeTimeout)
	}
	// The unanswered questions are simply absent.
	if len(s.Answers) != 0 {
		t.Errorf("len(Answers) = %d, want 0", len(s.Answers))
	}
}

func TestTick_NoopOnceFinished(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)
	s.Abandon()

	if s.Tick() {
		t.Error("tick after Finished must report dead")
	}
	if s.RemainingSeconds != 60 {
		t.Errorf("RemainingSeconds = %d after finished tick, want 60", s.RemainingSeconds)
	}
}

func TestAbandon_KeepsRecordedAnswers(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)
	s.Submit(KeyAnswer("B"))
	s.Advance()
	s.Abandon()

	if s.Outcome != OutcomeAbandoned {
		t.Errorf("Outcome = %q, want %q", s.Outcome, OutcomeAbandoned)
	}
	attempted, correct, _ := s.Result()
	if attempted != 1 || correct != 0 {
		t.Errorf("Result = (%d, %d), want (1, 0)", attempted, correct)
	}
}

func TestResult_Percentage(t *testing.T) {
	s := buildChoice(t, 4, 4, 60)

	s.Submit(KeyAnswer("A"))
	s.Advance()
	s.Submit(KeyAnswer("B"))
	s.Advance()
	s.Submit(KeyAnswer("A"))
	s.Advance()

	attempted, correct, pct := s.Result()
	if attempted != 3 || correct != 2 {
		t.Fatalf("Result = (%d, %d), want (3, 2)", attempted, correct)
	}
	if pct < 66.6 || pct > 66.7 {
		t.Errorf("percentage = %f, want ~66.67", pct)
	}
}

func TestReviewTrace_IsACopy(t *testing.T) {
	s := buildChoice(t, 2, 2, 60)
	s.Submit(KeyAnswer("A"))
	s.Advance()
	s.Submit(KeyAnswer("B"))
	s.Advance()

	trace := s.ReviewTrace()
	if len(trace) != 2 {
		t.Fatalf("len(trace) = %d, want 2", len(trace))
	}
	trace[0].Correct = !trace[0].Correct
	if s.Answers[0].Correct == trace[0].Correct {
		t.Error("mutating the trace must not touch the session records")
	}
}

func TestReview_OnlyWhenFinished(t *testing.T) {
	s := buildChoice(t, 2, 2, 60)

	s.EnterReview()
	if s.Reviewing {
		t.Error("review must not start while Running")
	}

	s.Abandon()
	s.EnterReview()
	if !s.Reviewing {
		t.Error("review should start once Finished")
	}
	s.ExitReview()
	if s.Reviewing {
		t.Error("ExitReview should clear the flag")
	}
}

func TestFeedbackHold_PerFlavor(t *testing.T) {
	coord, err := Build(coordinatePool(3), FlavorAnatomy, FlavorAnatomy.DefaultConfig(), testRand())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if coord.FeedbackHold() == 0 {
		t.Error("coordinate sessions should hold feedback")
	}

	choice := buildChoice(t, 3, 3, 60)
	if choice.FeedbackHold() != 0 {
		t.Error("choice sessions advance immediately")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{RequestedCount: 10, TimeBudgetSeconds: 180}, true},
		{"zero count", Config{RequestedCount: 0, TimeBudgetSeconds: 180}, false},
		{"negative count", Config{RequestedCount: -1, TimeBudgetSeconds: 180}, false},
		{"zero budget", Config{RequestedCount: 10, TimeBudgetSeconds: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate: %v", err)
			}
			if !tt.ok {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("err = %v, want ErrInvalidConfig", err)
				}
			}
		})
	}
}
