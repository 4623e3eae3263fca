package quiz

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

// TokenGate charges the session fee. Debit must complete its local,
// balance-checked mutation before returning; the remote confirmation
// runs detached and reports through notify (rollback notice or the
// server-reconciled balance).
type TokenGate interface {
	Debit(ctx context.Context, sessionID string, notify func(rolledBack bool, balance int)) error
}

// StatRecorder applies a finished session's aggregate to the account.
// Implementations enforce the one-shot guard per session ID.
type StatRecorder interface {
	Reconcile(ctx context.Context, sessionID string, attempted, correct int)
}

// SessionLog persists session lifecycle and answer events. Appends are
// best-effort: a logging failure never interrupts a session.
type SessionLog interface {
	SessionStarted(ctx context.Context, s *Session) error
	SessionEnded(ctx context.Context, s *Session) error
	AnswerRecorded(ctx context.Context, s *Session, rec AnswerRecord, timeMs int) error
}

// Engine wires the session builder to the token gate, the stat
// reconciler, and the event log. It owns no goroutines and no timers;
// the UI drives ticks and advancement against the returned Session.
type Engine struct {
	Source question.Source
	Tokens TokenGate    // nil disables the fee (offline/free play)
	Stats  StatRecorder // nil disables stat reconciliation
	Log    SessionLog   // nil disables event logging
	Rand   *rand.Rand
}

// Start fetches the flavor's pool, charges the fee, and builds a
// session. Ordering is a hard precondition chain: the pool is fetched
// first so an empty pool never costs tokens, and the debit must succeed
// locally before any question is handed to the UI. An insufficient
// balance refuses the session start outright.
func (e *Engine) Start(ctx context.Context, flavor Flavor, cfg Config, notify func(rolledBack bool, balance int)) (*Session, error) {
	pool, err := e.Source.FetchPool(ctx, flavor.Category)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	rng := e.Rand
	if rng == nil {
		rng = NewRand()
	}

	s, err := Build(pool, flavor, cfg, rng)
	if err != nil {
		return nil, err
	}

	if s.Outcome == OutcomeNoQuestions {
		// Dead-end branch, not a crash and not a charge.
		if e.Log != nil {
			_ = e.Log.SessionEnded(ctx, s)
		}
		return s, nil
	}

	if e.Tokens != nil {
		if err := e.Tokens.Debit(ctx, s.ID, notify); err != nil {
			return nil, err
		}
	}

	if e.Log != nil {
		_ = e.Log.SessionStarted(ctx, s)
	}
	return s, nil
}

// RecordAnswer submits an answer through the session and logs it.
// The ok result mirrors Session.Submit: false means the submission was
// suppressed by the re-entrancy guard.
func (e *Engine) RecordAnswer(ctx context.Context, s *Session, a Answer, timeMs int) (AnswerRecord, bool) {
	rec, ok := s.Submit(a)
	if !ok {
		return AnswerRecord{}, false
	}
	if e.Log != nil {
		_ = e.Log.AnswerRecorded(ctx, s, rec, timeMs)
	}
	return rec, true
}

// Finish applies the end-of-session effects exactly once: the stat delta
// computed from the recorded answers goes through the reconciler (local
// apply now, remote detached), and the end event is logged. Safe to call
// from any finished outcome, including timeout and abandon.
func (e *Engine) Finish(ctx context.Context, s *Session) {
	if s.Phase != PhaseFinished {
		s.Abandon()
	}
	if e.Stats != nil {
		attempted, correct, _ := s.Result()
		e.Stats.Reconcile(ctx, s.ID, attempted, correct)
	}
	if e.Log != nil {
		_ = e.Log.SessionEnded(ctx, s)
	}
}
