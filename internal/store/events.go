package store

import (
	"context"
	"fmt"

	"github.com/DDLX-svg/EdifyX-sub000/ent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/sessionevent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/syncevent"
	"github.com/DDLX-svg/EdifyX-sub000/ent/tokenevent"
)

// eventRepo implements EventRepo using the ent client and the shared
// global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCategory(data.Category).
		SetKind(data.Kind).
		SetSubmitted(data.Submitted).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetCategory(data.Category).
		SetFlavor(data.Flavor).
		SetQuestionCount(data.QuestionCount).
		SetAttempted(data.Attempted).
		SetCorrect(data.Correct).
		SetOutcome(data.Outcome).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTokenEvent(ctx context.Context, data TokenEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TokenEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetAmount(data.Amount).
		SetBalanceAfter(data.BalanceAfter).
		SetSessionID(data.SessionID).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save token event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSyncEvent(ctx context.Context, data SyncEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyncEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetAttempted(data.Attempted).
		SetCorrect(data.Correct).
		SetState(data.State).
		SetLastError(data.LastError).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}

func (r *eventRepo) PendingSyncEvents(ctx context.Context, userID string) ([]SyncEventRecord, error) {
	events, err := r.client.SyncEvent.Query().
		Where(syncevent.UserID(userID), syncevent.State("pending")).
		Order(ent.Asc(syncevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending sync events: %w", err)
	}

	records := make([]SyncEventRecord, len(events))
	for i, e := range events {
		records[i] = SyncEventRecord{
			ID:        e.ID,
			UserID:    e.UserID,
			SessionID: e.SessionID,
			Attempted: e.Attempted,
			Correct:   e.Correct,
			State:     e.State,
			LastError: e.LastError,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) MarkSyncEvent(ctx context.Context, id int, state, lastError string) error {
	_, err := r.client.SyncEvent.UpdateOneID(id).
		SetState(state).
		SetLastError(lastError).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark sync event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SessionSummaryRecord{
			SessionID:    e.SessionID,
			Timestamp:    e.Timestamp,
			Flavor:       e.Flavor,
			Category:     e.Category,
			Attempted:    e.Attempted,
			Correct:      e.Correct,
			Outcome:      e.Outcome,
			DurationSecs: e.DurationSecs,
		}
	}
	return records, nil
}

func (r *eventRepo) TokenHistory(ctx context.Context, userID string, limit int) ([]TokenEventRecord, error) {
	query := r.client.TokenEvent.Query().
		Where(tokenevent.UserID(userID)).
		Order(ent.Desc(tokenevent.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query token history: %w", err)
	}

	records := make([]TokenEventRecord, len(events))
	for i, e := range events {
		records[i] = TokenEventRecord{
			Action:       e.Action,
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			SessionID:    e.SessionID,
			Reason:       e.Reason,
			Timestamp:    e.Timestamp,
		}
	}
	return records, nil
}
