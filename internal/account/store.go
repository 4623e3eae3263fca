// Package account owns the user's local account record: token balance
// plus lifetime and weekly practice counters. All mutations are named
// operations applied by a single writer against the latest record, so
// the stat reconciler and the token ledger can never race each other
// into a lost update.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

// StartingTokens seeds a brand-new local account.
const StartingTokens = 500

// Op is a named mutation of the account record. Apply runs inside the
// writer loop with exclusive access to the record.
type Op struct {
	Name  string
	Apply func(*store.AccountData)
}

// AddStats increments lifetime and current-week counters together.
func AddStats(attempted, correct int) Op {
	return Op{
		Name: "add-stats",
		Apply: func(rec *store.AccountData) {
			rec.LifetimeAttempted += attempted
			rec.LifetimeCorrect += correct
			rec.WeekAttempted += attempted
			rec.WeekCorrect += correct
		},
	}
}

// DebitTokens subtracts n from the balance, floored at zero.
func DebitTokens(n int) Op {
	return Op{
		Name: "debit-tokens",
		Apply: func(rec *store.AccountData) {
			rec.Tokens -= n
			if rec.Tokens < 0 {
				rec.Tokens = 0
			}
		},
	}
}

// CreditTokens adds n back to the balance (compensating transaction).
func CreditTokens(n int) Op {
	return Op{
		Name: "credit-tokens",
		Apply: func(rec *store.AccountData) {
			rec.Tokens += n
		},
	}
}

// SetTokens reconciles the balance to the server's authoritative value.
func SetTokens(n int) Op {
	return Op{
		Name: "set-tokens",
		Apply: func(rec *store.AccountData) {
			rec.Tokens = n
			if rec.Tokens < 0 {
				rec.Tokens = 0
			}
		},
	}
}

type opRequest struct {
	ctx   context.Context
	op    *Op // nil for a plain read
	reply chan opReply
}

type opReply struct {
	rec store.AccountData
	err error
}

// Store serializes account mutations through one writer goroutine and
// persists every applied op as a new snapshot.
type Store struct {
	repo store.AccountRepo // nil keeps the record memory-only (tests)
	now  func() time.Time

	ops  chan opRequest
	quit chan struct{}
}

// New loads the latest persisted record (or seeds a fresh one) and
// starts the writer loop. Close must be called to stop it.
func New(ctx context.Context, repo store.AccountRepo, userID string) (*Store, error) {
	return newWithClock(ctx, repo, userID, time.Now)
}

// newWithClock allows deterministic weekly rollover in tests.
func newWithClock(ctx context.Context, repo store.AccountRepo, userID string, now func() time.Time) (*Store, error) {
	var rec *store.AccountData
	if repo != nil {
		loaded, err := repo.LatestAccount(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load account: %w", err)
		}
		rec = loaded
	}
	if rec == nil {
		rec = &store.AccountData{
			UserID:    userID,
			Tokens:    StartingTokens,
			WeekStart: weekStart(now()),
		}
	}

	s := &Store{
		repo: repo,
		now:  now,
		ops:  make(chan opRequest),
		quit: make(chan struct{}),
	}
	go s.loop(*rec)
	return s, nil
}

// Apply submits an op to the writer and waits for the applied record.
// The returned record is the post-op snapshot, already persisted.
func (s *Store) Apply(ctx context.Context, op Op) (store.AccountData, error) {
	return s.request(ctx, &op)
}

// Get returns a copy of the current record.
func (s *Store) Get(ctx context.Context) (store.AccountData, error) {
	return s.request(ctx, nil)
}

// Close stops the writer loop. Pending requests error out.
func (s *Store) Close() {
	close(s.quit)
}

func (s *Store) request(ctx context.Context, op *Op) (store.AccountData, error) {
	req := opRequest{ctx: ctx, op: op, reply: make(chan opReply, 1)}
	select {
	case s.ops <- req:
	case <-s.quit:
		return store.AccountData{}, fmt.Errorf("account store closed")
	case <-ctx.Done():
		return store.AccountData{}, ctx.Err()
	}

	select {
	case rep := <-req.reply:
		return rep.rec, rep.err
	case <-ctx.Done():
		return store.AccountData{}, ctx.Err()
	}
}

// loop is the single writer. It owns rec exclusively; every mutation is
// rollover-checked, applied, versioned, and persisted before the next
// request is taken.
func (s *Store) loop(rec store.AccountData) {
	for {
		select {
		case <-s.quit:
			return
		case req := <-s.ops:
			if req.op == nil {
				req.reply <- opReply{rec: rec}
				continue
			}

			s.rollover(&rec)
			req.op.Apply(&rec)
			rec.Version++

			var err error
			if s.repo != nil {
				if err = s.repo.SaveAccount(req.ctx, &rec); err != nil {
					err = fmt.Errorf("persist %s: %w", req.op.Name, err)
				}
			}
			req.reply <- opReply{rec: rec, err: err}
		}
	}
}

// rollover resets the weekly counters when the record's week anchor is
// older than the current ISO week.
func (s *Store) rollover(rec *store.AccountData) {
	nowWeek := weekStart(s.now())
	if rec.WeekStart.Before(nowWeek) {
		rec.WeekAttempted = 0
		rec.WeekCorrect = 0
		rec.WeekStart = nowWeek
	}
}

// weekStart returns midnight UTC of the Monday of t's ISO week.
func weekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started last Monday
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
