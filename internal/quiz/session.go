package quiz

import (
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseRunning  Phase = iota // accepting answers, clock ticking
	PhaseFeedback              // post-answer highlight, submissions blocked
	PhaseFinished              // terminal; a new run requires a new Build
)

// Outcome records how a finished session ended.
type Outcome string

const (
	OutcomeCompleted   Outcome = "completed"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeAbandoned   Outcome = "abandoned"
	OutcomeNoQuestions Outcome = "no-questions"
)

// AnswerRecord is one submitted answer. Immutable once appended; the
// full sequence backs the post-session review view.
type AnswerRecord struct {
	Question  question.Question
	Submitted Answer
	Correct   bool
}

// Session is the mutable root of one quiz run. It is owned by the UI
// session that built it; all methods are called from the event loop, so
// no locking is needed. Once Finished, only the accessors and the review
// toggles do anything.
type Session struct {
	ID        string
	Flavor    Flavor
	Questions []question.Question

	CurrentIndex     int
	RemainingSeconds int
	Answers          []AnswerRecord
	Phase            Phase
	Outcome          Outcome
	Reviewing        bool

	// Shortfall is set when the pool held fewer questions than requested;
	// the UI surfaces a notice rather than silently truncating.
	Shortfall bool
	Requested int

	StartedAt time.Time
}

// Current returns the active question, or false when the session is
// finished or empty.
func (s *Session) Current() (question.Question, bool) {
	if s.Phase == PhaseFinished || s.CurrentIndex >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Submit evaluates and records an answer for the current question and
// moves the session to Feedback. It is valid only while Running: calls
// during Feedback (double submission) or after Finished (tick won a race
// against the submit) are rejected no-ops, reported by the bool.
func (s *Session) Submit(a Answer) (AnswerRecord, bool) {
	if s.Phase != PhaseRunning {
		return AnswerRecord{}, false
	}
	q, ok := s.Current()
	if !ok {
		return AnswerRecord{}, false
	}

	rec := AnswerRecord{
		Question:  q,
		Submitted: a,
		Correct:   Evaluate(q, a),
	}
	s.Answers = append(s.Answers, rec)
	s.Phase = PhaseFeedback
	return rec, true
}

// Advance leaves Feedback for the next question, or finishes the session
// when the last question was just answered. The UI schedules this after
// FeedbackHold (immediately for choice flavors).
func (s *Session) Advance() {
	if s.Phase != PhaseFeedback {
		return
	}
	if s.CurrentIndex+1 < len(s.Questions) {
		s.CurrentIndex++
		s.Phase = PhaseRunning
		return
	}
	s.finish(OutcomeCompleted)
}

// Tick consumes one second of the budget. The clock runs during both
// Running and Feedback: feedback time is not charged to the question
// being reviewed, but it is session time. Reaching zero forces Finished
// from any phase, mid-question or not; unanswered questions are simply
// absent from Answers. Returns true when the session is still live and
// another tick should be scheduled.
func (s *Session) Tick() bool {
	if s.Phase == PhaseFinished {
		return false
	}
	if s.RemainingSeconds > 0 {
		s.RemainingSeconds--
	}
	if s.RemainingSeconds == 0 {
		s.finish(OutcomeTimeout)
		return false
	}
	return true
}

// Abandon finishes the session early (navigation away, quit confirm).
func (s *Session) Abandon() {
	if s.Phase == PhaseFinished {
		return
	}
	s.finish(OutcomeAbandoned)
}

func (s *Session) finish(outcome Outcome) {
	s.Phase = PhaseFinished
	s.Outcome = outcome
}

// FeedbackHold is how long the UI should hold the feedback view before
// calling Advance.
func (s *Session) FeedbackHold() time.Duration {
	return s.Flavor.FeedbackHold
}

// Progress reports the 0-based question index, the effective total, and
// the remaining seconds.
func (s *Session) Progress() (index, total, remaining int) {
	return s.CurrentIndex, len(s.Questions), s.RemainingSeconds
}

// Result aggregates the recorded answers.
func (s *Session) Result() (attempted, correct int, percentage float64) {
	attempted = len(s.Answers)
	for _, rec := range s.Answers {
		if rec.Correct {
			correct++
		}
	}
	if attempted > 0 {
		percentage = float64(correct) / float64(attempted) * 100
	}
	return attempted, correct, percentage
}

// ReviewTrace returns the recorded answers in submission order. The
// returned slice is a copy; review never mutates the records.
func (s *Session) ReviewTrace() []AnswerRecord {
	trace := make([]AnswerRecord, len(s.Answers))
	copy(trace, s.Answers)
	return trace
}

// EnterReview enables review mode. Only meaningful once Finished.
func (s *Session) EnterReview() {
	if s.Phase == PhaseFinished {
		s.Reviewing = true
	}
}

// ExitReview leaves review mode.
func (s *Session) ExitReview() {
	s.Reviewing = false
}
