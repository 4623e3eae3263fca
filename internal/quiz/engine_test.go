package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

type fakeGate struct {
	debits []string
	err    error
}

func (g *fakeGate) Debit(_ context.Context, sessionID string, _ func(bool, int)) error {
	if g.err != nil {
		return g.err
	}
	g.debits = append(g.debits, sessionID)
	return nil
}

type fakeRecorder struct {
	calls []string
}

func (r *fakeRecorder) Reconcile(_ context.Context, sessionID string, attempted, correct int) {
	r.calls = append(r.calls, sessionID)
}

type fakeLog struct {
	started  []string
	ended    []string
	answered int
}

func (l *fakeLog) SessionStarted(_ context.Context, s *Session) error {
	l.started = append(l.started, s.ID)
	return nil
}

func (l *fakeLog) SessionEnded(_ context.Context, s *Session) error {
	l.ended = append(l.ended, s.ID)
	return nil
}

func (l *fakeLog) AnswerRecorded(_ context.Context, _ *Session, _ AnswerRecord, _ int) error {
	l.answered++
	return nil
}

func testEngine(pool question.Pool) (*Engine, *fakeGate, *fakeRecorder, *fakeLog) {
	gate := &fakeGate{}
	rec := &fakeRecorder{}
	log := &fakeLog{}
	e := &Engine{
		Source: question.StaticSource{"medicine": pool},
		Tokens: gate,
		Stats:  rec,
		Log:    log,
		Rand:   testRand(),
	}
	return e, gate, rec, log
}

func TestEngineStart_DebitsThenLogs(t *testing.T) {
	e, gate, _, log := testEngine(choicePool(5))

	s, err := e.Start(context.Background(), FlavorMedicine, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if len(gate.debits) != 1 || gate.debits[0] != s.ID {
		t.Errorf("debits = %v, want one for %s", gate.debits, s.ID)
	}
	if len(log.started) != 1 {
		t.Errorf("started events = %d, want 1", len(log.started))
	}
}

func TestEngineStart_EmptyPoolSkipsDebit(t *testing.T) {
	e, gate, _, log := testEngine(nil)

	s, err := e.Start(context.Background(), FlavorMedicine, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if s.Outcome != OutcomeNoQuestions {
		t.Fatalf("Outcome = %q, want %q", s.Outcome, OutcomeNoQuestions)
	}
	if len(gate.debits) != 0 {
		t.Error("an empty pool must never cost tokens")
	}
	if len(log.ended) != 1 {
		t.Errorf("ended events = %d, want 1 (dead-end logged)", len(log.ended))
	}
}

func TestEngineStart_DebitFailureRefusesSession(t *testing.T) {
	e, gate, _, log := testEngine(choicePool(5))
	gate.err = errors.New("insufficient tokens")

	if _, err := e.Start(context.Background(), FlavorMedicine, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil); err == nil {
		t.Fatal("expected Start to fail when the debit is refused")
	}
	if len(log.started) != 0 {
		t.Error("a refused session must not log a start event")
	}
}

func TestEngineStart_FetchFailure(t *testing.T) {
	e, gate, _, _ := testEngine(choicePool(5))

	_, err := e.Start(context.Background(), FlavorPharmacy, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil)
	if !errors.Is(err, question.ErrFetchFailed) {
		t.Fatalf("err = %v, want ErrFetchFailed", err)
	}
	if len(gate.debits) != 0 {
		t.Error("a failed fetch must never cost tokens")
	}
}

func TestEngineRecordAnswer_MirrorsGuard(t *testing.T) {
	e, _, _, log := testEngine(choicePool(3))
	s, err := e.Start(context.Background(), FlavorMedicine, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, ok := e.RecordAnswer(context.Background(), s, KeyAnswer("A"), 1200); !ok {
		t.Fatal("first answer should be accepted")
	}
	if _, ok := e.RecordAnswer(context.Background(), s, KeyAnswer("B"), 100); ok {
		t.Error("answer during feedback should be suppressed")
	}
	if log.answered != 1 {
		t.Errorf("answer events = %d, want 1", log.answered)
	}
}

func TestEngineFinish_AbandonsAndReconciles(t *testing.T) {
	e, _, rec, log := testEngine(choicePool(3))
	s, err := e.Start(context.Background(), FlavorMedicine, Config{RequestedCount: 3, TimeBudgetSeconds: 60}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	e.RecordAnswer(context.Background(), s, KeyAnswer("A"), 900)
	s.Advance()

	e.Finish(context.Background(), s)

	if s.Outcome != OutcomeAbandoned {
		t.Errorf("Outcome = %q, want %q", s.Outcome, OutcomeAbandoned)
	}
	if len(rec.calls) != 1 || rec.calls[0] != s.ID {
		t.Errorf("reconcile calls = %v, want one for %s", rec.calls, s.ID)
	}
	if len(log.ended) != 1 {
		t.Errorf("ended events = %d, want 1", len(log.ended))
	}
}
