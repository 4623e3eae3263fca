// Package stats reconciles finished-session aggregates against the
// remote store: a synchronous optimistic local apply, then a detached
// remote submission that is logged and queued on failure, never
// surfaced into UI flow.
package stats

import (
	"context"
	"log"
	"sync"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

// RemoteStats is the remote half of the reconciliation.
type RemoteStats interface {
	SubmitStatDelta(ctx context.Context, userID string, attempted, correct int) error
}

// Delta is a finished session's aggregate. Computed once from the
// answer trace, so Correct <= Attempted by construction.
type Delta struct {
	Attempted int
	Correct   int
}

// Reconciler applies stat deltas exactly once per session.
type Reconciler struct {
	userID string
	acct   *account.Store
	remote RemoteStats    // nil: offline, every delta queues as pending
	events store.EventRepo // nil disables the sync ledger

	mu      sync.Mutex
	applied map[string]bool
}

func New(userID string, acct *account.Store, remote RemoteStats, events store.EventRepo) *Reconciler {
	return &Reconciler{
		userID:  userID,
		acct:    acct,
		remote:  remote,
		events:  events,
		applied: make(map[string]bool),
	}
}

// Reconcile applies the delta for one finished session. The guard is
// set at invocation, not at response time, so a re-invocation for the
// same session (effect re-execution, double navigation) is a no-op.
// The local apply completes before Reconcile returns; the remote
// submission runs detached and independent of the caller's lifetime.
func (r *Reconciler) Reconcile(ctx context.Context, sessionID string, attempted, correct int) {
	r.mu.Lock()
	if r.applied[sessionID] {
		r.mu.Unlock()
		return
	}
	r.applied[sessionID] = true
	r.mu.Unlock()

	delta := Delta{Attempted: attempted, Correct: correct}

	// Step 1: local, synchronous. The summary screen reads the account
	// record after this returns, so it must be visible now.
	if _, err := r.acct.Apply(ctx, account.AddStats(delta.Attempted, delta.Correct)); err != nil {
		log.Printf("stats: local apply for session %s: %v", sessionID, err)
	}

	// Step 2: remote, detached. Uses a background context because the
	// submission outlives the UI session that triggered it.
	go r.submit(context.Background(), sessionID, delta)
}

func (r *Reconciler) submit(ctx context.Context, sessionID string, delta Delta) {
	if r.remote == nil {
		r.record(ctx, sessionID, delta, "pending", "offline")
		return
	}

	if err := r.remote.SubmitStatDelta(ctx, r.userID, delta.Attempted, delta.Correct); err != nil {
		// No rollback path exists for stat submission; queue it so the
		// divergence is repairable instead of silent.
		log.Printf("stats: remote submit for session %s: %v", sessionID, err)
		r.record(ctx, sessionID, delta, "pending", err.Error())
		return
	}
	r.record(ctx, sessionID, delta, "sent", "")
}

func (r *Reconciler) record(ctx context.Context, sessionID string, delta Delta, state, lastError string) {
	if r.events == nil {
		return
	}
	err := r.events.AppendSyncEvent(ctx, store.SyncEventData{
		UserID:    r.userID,
		SessionID: sessionID,
		Attempted: delta.Attempted,
		Correct:   delta.Correct,
		State:     state,
		LastError: lastError,
	})
	if err != nil {
		log.Printf("stats: record sync event for session %s: %v", sessionID, err)
	}
}

// Replay resubmits pending sync events, marking each replayed on
// success. Used by the sync command; returns replayed and remaining
// counts.
func (r *Reconciler) Replay(ctx context.Context) (replayed, remaining int, err error) {
	if r.events == nil || r.remote == nil {
		return 0, 0, nil
	}

	pending, err := r.events.PendingSyncEvents(ctx, r.userID)
	if err != nil {
		return 0, 0, err
	}

	for _, ev := range pending {
		if err := r.remote.SubmitStatDelta(ctx, r.userID, ev.Attempted, ev.Correct); err != nil {
			remaining++
			if markErr := r.events.MarkSyncEvent(ctx, ev.ID, "pending", err.Error()); markErr != nil {
				log.Printf("stats: mark sync event %d: %v", ev.ID, markErr)
			}
			continue
		}
		replayed++
		if markErr := r.events.MarkSyncEvent(ctx, ev.ID, "replayed", ""); markErr != nil {
			log.Printf("stats: mark sync event %d: %v", ev.ID, markErr)
		}
	}
	return replayed, remaining, nil
}
