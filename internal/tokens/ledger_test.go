package tokens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

type fakeRemote struct {
	balance int
	err     error
	calls   int
}

func (r *fakeRemote) SubmitTokenDebit(_ context.Context, _ string, _ int) (int, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	return r.balance, nil
}

type eventSink struct {
	mu     sync.Mutex
	tokens []store.TokenEventData
}

func (s *eventSink) AppendTokenEvent(_ context.Context, data store.TokenEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = append(s.tokens, data)
	return nil
}

func (s *eventSink) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (s *eventSink) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (s *eventSink) AppendSyncEvent(context.Context, store.SyncEventData) error       { return nil }
func (s *eventSink) PendingSyncEvents(context.Context, string) ([]store.SyncEventRecord, error) {
	return nil, nil
}
func (s *eventSink) MarkSyncEvent(context.Context, int, string, string) error { return nil }
func (s *eventSink) RecentSessions(context.Context, int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (s *eventSink) TokenHistory(context.Context, string, int) ([]store.TokenEventRecord, error) {
	return nil, nil
}

func (s *eventSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tokens))
	for i, ev := range s.tokens {
		out[i] = ev.Action
	}
	return out
}

type notice struct {
	rolledBack bool
	balance    int
}

func testLedger(t *testing.T, remote RemoteTokens) (*Ledger, *account.Store, *eventSink) {
	t.Helper()
	acct, err := account.New(context.Background(), nil, "dd-0412")
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	t.Cleanup(acct.Close)
	sink := &eventSink{}
	return New("dd-0412", acct, remote, sink), acct, sink
}

func awaitNotice(t *testing.T, ch <-chan notice) notice {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the confirmation notice")
		return notice{}
	}
}

func TestDebit_ConfirmedReconcilesToServerBalance(t *testing.T) {
	remote := &fakeRemote{balance: 321}
	l, acct, sink := testLedger(t, remote)

	ch := make(chan notice, 1)
	err := l.Debit(context.Background(), "sess-1", func(rolledBack bool, balance int) {
		ch <- notice{rolledBack, balance}
	})
	if err != nil {
		t.Fatalf("Debit: %v", err)
	}

	// Local debit lands before the remote answers.
	rec, _ := acct.Get(context.Background())
	if rec.Tokens > account.StartingTokens-SessionCost {
		t.Errorf("local balance = %d, want at most %d right after Debit", rec.Tokens, account.StartingTokens-SessionCost)
	}

	n := awaitNotice(t, ch)
	if n.rolledBack {
		t.Error("confirmed debit reported as rolled back")
	}
	if n.balance != 321 {
		t.Errorf("notice balance = %d, want the server's 321", n.balance)
	}

	rec, _ = acct.Get(context.Background())
	if rec.Tokens != 321 {
		t.Errorf("balance = %d, want reconciled to 321", rec.Tokens)
	}
	if got := sink.actions(); len(got) != 2 || got[0] != "debit" || got[1] != "reconcile" {
		t.Errorf("token events = %v, want [debit reconcile]", got)
	}
}

func TestDebit_FailureCreditsExactFee(t *testing.T) {
	remote := &fakeRemote{err: errors.New("sheet unreachable")}
	l, acct, sink := testLedger(t, remote)

	ch := make(chan notice, 1)
	if err := l.Debit(context.Background(), "sess-2", func(rolledBack bool, balance int) {
		ch <- notice{rolledBack, balance}
	}); err != nil {
		t.Fatalf("Debit: %v", err)
	}

	n := awaitNotice(t, ch)
	if !n.rolledBack {
		t.Error("failed confirmation should report a rollback")
	}

	rec, _ := acct.Get(context.Background())
	if rec.Tokens != account.StartingTokens {
		t.Errorf("balance = %d, want the fee restored to %d", rec.Tokens, account.StartingTokens)
	}
	if got := sink.actions(); len(got) != 2 || got[1] != "credit" {
		t.Errorf("token events = %v, want a compensating credit", got)
	}
}

func TestDebit_InsufficientBalanceRefuses(t *testing.T) {
	remote := &fakeRemote{balance: 0}
	l, acct, _ := testLedger(t, remote)

	// Drain the balance below the fee.
	if _, err := acct.Apply(context.Background(), account.SetTokens(SessionCost-1)); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	err := l.Debit(context.Background(), "sess-3", nil)
	if !errors.Is(err, ErrInsufficientTokens) {
		t.Fatalf("err = %v, want ErrInsufficientTokens", err)
	}

	rec, _ := acct.Get(context.Background())
	if rec.Tokens != SessionCost-1 {
		t.Errorf("balance = %d, want untouched %d", rec.Tokens, SessionCost-1)
	}
	if remote.calls != 0 {
		t.Error("a refused debit must not reach the remote")
	}
}

func TestDebit_OfflineDebitStands(t *testing.T) {
	l, acct, sink := testLedger(t, nil)

	if err := l.Debit(context.Background(), "sess-4", nil); err != nil {
		t.Fatalf("Debit: %v", err)
	}

	rec, _ := acct.Get(context.Background())
	if rec.Tokens != account.StartingTokens-SessionCost {
		t.Errorf("balance = %d, want %d (offline debit stands unconfirmed)", rec.Tokens, account.StartingTokens-SessionCost)
	}
	if got := sink.actions(); len(got) != 1 || got[0] != "debit" {
		t.Errorf("token events = %v, want [debit] only", got)
	}
}

func TestBalance(t *testing.T) {
	l, _, _ := testLedger(t, nil)

	got, err := l.Balance(context.Background())
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if got != account.StartingTokens {
		t.Errorf("Balance = %d, want %d", got, account.StartingTokens)
	}
}
