// Package tokens gates quiz-session starts on the user's token balance.
// The debit is optimistic: the local balance moves before the remote
// confirms, so a failed confirmation needs a compensating credit. This
// is the one place in the system with an explicit rollback path; stat
// reconciliation is additive and only queues on failure.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/DDLX-svg/EdifyX-sub000/internal/account"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

// SessionCost is the flat fee charged once per session start.
const SessionCost = 100

// ErrInsufficientTokens refuses a session start. Nothing is mutated.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// RemoteTokens is the remote half of the debit.
type RemoteTokens interface {
	SubmitTokenDebit(ctx context.Context, userID string, amount int) (int, error)
}

// Ledger mutates the token balance through the account store.
type Ledger struct {
	userID string
	acct   *account.Store
	remote RemoteTokens    // nil: offline, local debit stands unconfirmed
	events store.EventRepo // nil disables the token event log
}

func New(userID string, acct *account.Store, remote RemoteTokens, events store.EventRepo) *Ledger {
	return &Ledger{userID: userID, acct: acct, remote: remote, events: events}
}

// Balance returns the current local balance.
func (l *Ledger) Balance(ctx context.Context) (int, error) {
	rec, err := l.acct.Get(ctx)
	if err != nil {
		return 0, err
	}
	return rec.Tokens, nil
}

// Debit charges the session fee. The precondition check and the debit
// run as one op inside the account store's writer, so concurrent debits
// cannot both pass on the same balance. On success the local balance is
// already moved when Debit returns; the remote confirmation runs
// detached and reports through notify:
//
//   - confirmed: local balance reconciled to the server's number,
//     notify(false, serverBalance)
//   - failed or rejected: the fee is credited back exactly and the
//     session proceeds free of charge, notify(true, restoredBalance)
//
// notify may be nil.
func (l *Ledger) Debit(ctx context.Context, sessionID string, notify func(rolledBack bool, balance int)) error {
	insufficient := false
	op := account.Op{
		Name: "debit-session",
		Apply: func(rec *store.AccountData) {
			if rec.Tokens < SessionCost {
				insufficient = true
				return
			}
			rec.Tokens -= SessionCost
		},
	}

	rec, err := l.acct.Apply(ctx, op)
	if err != nil {
		return fmt.Errorf("debit tokens: %w", err)
	}
	if insufficient {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientTokens, rec.Tokens, SessionCost)
	}

	l.logEvent(ctx, "debit", SessionCost, rec.Tokens, sessionID, "session start")

	// Detached confirmation; its side effects are on account state, not
	// UI state, so it runs past UI teardown.
	go l.confirm(context.Background(), sessionID, notify)
	return nil
}

func (l *Ledger) confirm(ctx context.Context, sessionID string, notify func(rolledBack bool, balance int)) {
	if l.remote == nil {
		return
	}

	serverBalance, err := l.remote.SubmitTokenDebit(ctx, l.userID, SessionCost)
	if err != nil {
		// Compensating transaction: restore the exact fee. The session
		// that was started on this debit is not blocked retroactively.
		log.Printf("tokens: debit for session %s failed, rolling back: %v", sessionID, err)
		rec, applyErr := l.acct.Apply(ctx, account.CreditTokens(SessionCost))
		if applyErr != nil {
			log.Printf("tokens: rollback credit for session %s: %v", sessionID, applyErr)
		}
		l.logEvent(ctx, "credit", SessionCost, rec.Tokens, sessionID, "debit rollback")
		if notify != nil {
			notify(true, rec.Tokens)
		}
		return
	}

	// The server's returned balance is authoritative, not just an ack.
	rec, applyErr := l.acct.Apply(ctx, account.SetTokens(serverBalance))
	if applyErr != nil {
		log.Printf("tokens: reconcile for session %s: %v", sessionID, applyErr)
	}
	l.logEvent(ctx, "reconcile", serverBalance, rec.Tokens, sessionID, "server balance")
	if notify != nil {
		notify(false, rec.Tokens)
	}
}

func (l *Ledger) logEvent(ctx context.Context, action string, amount, balanceAfter int, sessionID, reason string) {
	if l.events == nil {
		return
	}
	err := l.events.AppendTokenEvent(ctx, store.TokenEventData{
		UserID:       l.userID,
		Action:       action,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		SessionID:    sessionID,
		Reason:       reason,
	})
	if err != nil {
		log.Printf("tokens: log %s event: %v", action, err)
	}
}
