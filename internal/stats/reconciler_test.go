package stats

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

type fakeRemoteStats struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (r *fakeRemoteStats) SubmitStatDelta(_ context.Context, _ string, _, _ int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *fakeRemoteStats) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type syncLedger struct {
	mu      sync.Mutex
	events  []store.SyncEventData
	pending []store.SyncEventRecord
	marks   map[int]string
	done    chan struct{} // one value per appended sync event
}

func newSyncLedger() *syncLedger {
	return &syncLedger{marks: make(map[int]string), done: make(chan struct{}, 16)}
}

func (l *syncLedger) AppendSyncEvent(_ context.Context, data store.SyncEventData) error {
	l.mu.Lock()
	l.events = append(l.events, data)
	l.mu.Unlock()
	l.done <- struct{}{}
	return nil
}

func (l *syncLedger) PendingSyncEvents(context.Context, string) ([]store.SyncEventRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]store.SyncEventRecord(nil), l.pending...), nil
}

func (l *syncLedger) MarkSyncEvent(_ context.Context, id int, state, _ string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.marks[id] = state
	return nil
}

func (l *syncLedger) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (l *syncLedger) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (l *syncLedger) AppendTokenEvent(context.Context, store.TokenEventData) error     { return nil }
func (l *syncLedger) RecentSessions(context.Context, int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (l *syncLedger) TokenHistory(context.Context, string, int) ([]store.TokenEventRecord, error) {
	return nil, nil
}

func (l *syncLedger) awaitEvent(t *testing.T) store.SyncEventData {
	t.Helper()
	select {
	case <-l.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a sync event")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.events[len(l.events)-1]
}

func testReconciler(t *testing.T, remote RemoteStats) (*Reconciler, *account.Store, *syncLedger) {
	t.Helper()
	acct, err := account.New(context.Background(), nil, "dd-0412")
	if err != nil {
		t.Fatalf("account.New: %v", err)
	}
	t.Cleanup(acct.Close)
	ledger := newSyncLedger()
	return New("dd-0412", acct, remote, ledger), acct, ledger
}

func TestReconcile_LocalApplyThenSent(t *testing.T) {
	remote := &fakeRemoteStats{}
	r, acct, ledger := testReconciler(t, remote)

	r.Reconcile(context.Background(), "sess-1", 10, 7)

	// The local apply is synchronous.
	rec, _ := acct.Get(context.Background())
	if rec.LifetimeAttempted != 10 || rec.LifetimeCorrect != 7 {
		t.Errorf("lifetime = %d/%d, want 10/7 immediately after Reconcile", rec.LifetimeAttempted, rec.LifetimeCorrect)
	}

	ev := ledger.awaitEvent(t)
	if ev.State != "sent" {
		t.Errorf("sync state = %q, want sent", ev.State)
	}
	if ev.Attempted != 10 || ev.Correct != 7 {
		t.Errorf("sync delta = %d/%d, want 10/7", ev.Attempted, ev.Correct)
	}
}

func TestReconcile_SecondInvocationIsNoop(t *testing.T) {
	remote := &fakeRemoteStats{}
	r, acct, ledger := testReconciler(t, remote)

	r.Reconcile(context.Background(), "sess-1", 10, 7)
	ledger.awaitEvent(t)
	r.Reconcile(context.Background(), "sess-1", 10, 7)

	rec, _ := acct.Get(context.Background())
	if rec.LifetimeAttempted != 10 {
		t.Errorf("LifetimeAttempted = %d, want 10 (delta applied once)", rec.LifetimeAttempted)
	}
	if remote.callCount() != 1 {
		t.Errorf("remote calls = %d, want 1", remote.callCount())
	}
}

func TestReconcile_DistinctSessionsBothApply(t *testing.T) {
	remote := &fakeRemoteStats{}
	r, acct, ledger := testReconciler(t, remote)

	r.Reconcile(context.Background(), "sess-1", 5, 4)
	ledger.awaitEvent(t)
	r.Reconcile(context.Background(), "sess-2", 3, 1)
	ledger.awaitEvent(t)

	rec, _ := acct.Get(context.Background())
	if rec.LifetimeAttempted != 8 || rec.LifetimeCorrect != 5 {
		t.Errorf("lifetime = %d/%d, want 8/5", rec.LifetimeAttempted, rec.LifetimeCorrect)
	}
}

func TestReconcile_RemoteFailureQueuesPending(t *testing.T) {
	remote := &fakeRemoteStats{err: errors.New("sheet unreachable")}
	r, acct, ledger := testReconciler(t, remote)

	r.Reconcile(context.Background(), "sess-1", 10, 7)

	ev := ledger.awaitEvent(t)
	if ev.State != "pending" {
		t.Errorf("sync state = %q, want pending", ev.State)
	}
	if ev.LastError == "" {
		t.Error("a queued failure should carry its error")
	}

	// The local apply stands; there is no rollback for stats.
	rec, _ := acct.Get(context.Background())
	if rec.LifetimeAttempted != 10 {
		t.Errorf("LifetimeAttempted = %d, want 10", rec.LifetimeAttempted)
	}
}

func TestReconcile_OfflineQueuesPending(t *testing.T) {
	r, _, ledger := testReconciler(t, nil)

	r.Reconcile(context.Background(), "sess-1", 4, 2)

	ev := ledger.awaitEvent(t)
	if ev.State != "pending" || ev.LastError != "offline" {
		t.Errorf("sync event = %+v, want pending/offline", ev)
	}
}

func TestReplay_MarksReplayedAndCountsRemaining(t *testing.T) {
	remote := &fakeRemoteStats{}
	r, _, ledger := testReconciler(t, remote)
	ledger.pending = []store.SyncEventRecord{
		{ID: 1, UserID: "dd-0412", SessionID: "sess-1", Attempted: 10, Correct: 7, State: "pending"},
		{ID: 2, UserID: "dd-0412", SessionID: "sess-2", Attempted: 3, Correct: 3, State: "pending"},
	}

	replayed, remaining, err := r.Replay(context.Background())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if replayed != 2 || remaining != 0 {
		t.Errorf("replayed/remaining = %d/%d, want 2/0", replayed, remaining)
	}
	if ledger.marks[1] != "replayed" || ledger.marks[2] != "replayed" {
		t.Errorf("marks = %v, want both replayed", ledger.marks)
	}
}

func TestReplay_FailuresStayPending(t *testing.T) {
	remote := &fakeRemoteStats{err: errors.New("still down")}
	r, _, ledger := testReconciler(t, remote)
	ledger.pending = []store.SyncEventRecord{
		{ID: 1, SessionID: "sess-1", Attempted: 10, Correct: 7, State: "pending"},
	}

	replayed, remaining, err := r.Replay(context.Background())
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if replayed != 0 || remaining != 1 {
		t.Errorf("replayed/remaining = %d/%d, want 0/1", replayed, remaining)
	}
	if ledger.marks[1] != "pending" {
		t.Errorf("mark = %q, want pending", ledger.marks[1])
	}
}

func TestReplay_OfflineIsNoop(t *testing.T) {
	r, _, _ := testReconciler(t, nil)

	replayed, remaining, err := r.Replay(context.Background())
	if err != nil || replayed != 0 || remaining != 0 {
		t.Errorf("Replay offline = %d/%d/%v, want 0/0/nil", replayed, remaining, err)
	}
}
