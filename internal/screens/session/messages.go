package session

import (
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
)

// sessionReadyMsg is sent when the engine has fetched the pool, charged
// the fee, and built the session.
type sessionReadyMsg struct {
	Session *quiz.Session
	Err     error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback hold period ends.
type feedbackDoneMsg struct{}

// tokenNoticeMsg is sent once the detached fee confirmation resolves:
// either the server-reconciled balance or a rollback notice.
type tokenNoticeMsg struct {
	RolledBack bool
	Balance    int
}
