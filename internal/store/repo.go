package store

import (
	"context"
	"time"
)

// AccountData is the persisted form of the user's account record: token
// balance plus lifetime and current-week practice counters. It is the
// local optimistic snapshot that remote reconciliation confirms or
// reverts; sessions never derive state from it mid-run.
type AccountData struct {
	UserID string `json:"user_id"`
	Tokens int    `json:"tokens"`

	LifetimeAttempted int `json:"lifetime_attempted"`
	LifetimeCorrect   int `json:"lifetime_correct"`
	WeekAttempted     int `json:"week_attempted"`
	WeekCorrect       int `json:"week_correct"`

	// WeekStart anchors the weekly counters; a mutation in a later ISO
	// week resets them before applying.
	WeekStart time.Time `json:"week_start"`

	// Version increments on every applied mutation.
	Version int64 `json:"version"`
}

// AccountRepo persists account snapshots.
type AccountRepo interface {
	// SaveAccount stores a new snapshot of the account record.
	SaveAccount(ctx context.Context, data *AccountData) error

	// LatestAccount returns the most recent snapshot for the user, or
	// nil if none exists.
	LatestAccount(ctx context.Context, userID string) (*AccountData, error)

	// PruneAccounts deletes all but the N most recent snapshots per user.
	PruneAccounts(ctx context.Context, userID string, keep int) error
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID  string
	QuestionID string
	Category   string
	Kind       string
	Submitted  string
	Correct    bool
	TimeMs     int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // start or end
	Category      string
	Flavor        string
	QuestionCount int
	Attempted     int
	Correct       int
	Outcome       string
	DurationSecs  int
}

// TokenEventData captures a token balance mutation.
type TokenEventData struct {
	UserID       string
	Action       string // debit, credit, or reconcile
	Amount       int
	BalanceAfter int
	SessionID    string
	Reason       string
}

// SyncEventData captures a remote stat submission attempt.
type SyncEventData struct {
	UserID    string
	SessionID string
	Attempted int
	Correct   int
	State     string // sent, pending, or replayed
	LastError string
}

// SyncEventRecord is a stored sync event, including its row ID so
// pending entries can be marked replayed.
type SyncEventRecord struct {
	ID        int
	UserID    string
	SessionID string
	Attempted int
	Correct   int
	State     string
	LastError string
	Timestamp time.Time
}

// SessionSummaryRecord is a finished session as shown on the stats screen.
type SessionSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	Flavor       string
	Category     string
	Attempted    int
	Correct      int
	Outcome      string
	DurationSecs int
}

// TokenEventRecord is a stored token mutation for history display.
type TokenEventRecord struct {
	Action       string
	Amount       int
	BalanceAfter int
	SessionID    string
	Reason       string
	Timestamp    time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendTokenEvent(ctx context.Context, data TokenEventData) error
	AppendSyncEvent(ctx context.Context, data SyncEventData) error

	// PendingSyncEvents returns stat submissions that failed and await
	// replay, oldest first.
	PendingSyncEvents(ctx context.Context, userID string) ([]SyncEventRecord, error)

	// MarkSyncEvent updates the state (and last error) of a sync event.
	MarkSyncEvent(ctx context.Context, id int, state, lastError string) error

	// RecentSessions returns the most recent finished sessions.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error)

	// TokenHistory returns the most recent token mutations for the user.
	TokenHistory(ctx context.Context, userID string, limit int) ([]TokenEventRecord, error)
}
