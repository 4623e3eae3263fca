package app

import (
	"context"
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/store"
)

// eventLog adapts the event store to the session engine's log interface.
type eventLog struct {
	events store.EventRepo
	now    func() time.Time
}

// NewEventLog returns a session log that appends lifecycle and answer
// events to the event store.
func NewEventLog(events store.EventRepo) quiz.SessionLog {
	return &eventLog{events: events, now: time.Now}
}

func (l *eventLog) SessionStarted(ctx context.Context, s *quiz.Session) error {
	return l.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     s.ID,
		Action:        "start",
		Category:      s.Flavor.Category,
		Flavor:        s.Flavor.Name,
		QuestionCount: len(s.Questions),
	})
}

func (l *eventLog) SessionEnded(ctx context.Context, s *quiz.Session) error {
	attempted, correct, _ := s.Result()
	return l.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     s.ID,
		Action:        "end",
		Category:      s.Flavor.Category,
		Flavor:        s.Flavor.Name,
		QuestionCount: len(s.Questions),
		Attempted:     attempted,
		Correct:       correct,
		Outcome:       string(s.Outcome),
		DurationSecs:  int(l.now().Sub(s.StartedAt).Seconds()),
	})
}

func (l *eventLog) AnswerRecorded(ctx context.Context, s *quiz.Session, rec quiz.AnswerRecord, timeMs int) error {
	return l.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID:  s.ID,
		QuestionID: rec.Question.ID,
		Category:   rec.Question.Category,
		Kind:       string(rec.Question.Kind),
		Submitted:  rec.Submitted.String(),
		Correct:    rec.Correct,
		TimeMs:     timeMs,
	})
}
