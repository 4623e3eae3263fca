package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
	"github.com/DDLX-svg/EdifyX-sub000/internal/quiz"
	"github.com/DDLX-svg/EdifyX-sub000/internal/router"
	"github.com/DDLX-svg/EdifyX-sub000/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func finishedSession(t *testing.T) *quiz.Session {
	t.Helper()
	choice := question.Question{
		ID:          "med-1",
		Category:    "medicine",
		Kind:        question.KindChoice,
		Prompt:      "First-line treatment for anaphylaxis?",
		Options:     [4]string{"Adrenaline", "Hydrocortisone", "Salbutamol", "Chlorphenamine"},
		CorrectKey:  "A",
		Explanation: "IM adrenaline is given immediately.",
	}
	coord := question.Question{
		ID:       "anat-1",
		Category: "anatomy",
		Kind:     question.KindCoordinate,
		Prompt:   "Locate the apex of the heart",
		ImageRef: "torso-anterior",
		ImageW:   800,
		ImageH:   600,
		Target:   question.Target{X: 420, Y: 260, Radius: 40},
	}

	return &quiz.Session{
		ID:        "sess-1",
		Flavor:    quiz.FlavorMedicine,
		Questions: []question.Question{choice, coord},
		Phase:     quiz.PhaseFinished,
		Outcome:   quiz.OutcomeCompleted,
		Answers: []quiz.AnswerRecord{
			{Question: choice, Submitted: quiz.KeyAnswer("A"), Correct: true},
			{Question: coord, Submitted: quiz.PointAnswer{X: 500, Y: 300}, Correct: false},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(finishedSession(t), "")
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(finishedSession(t), "")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestSummaryScreen_View_WithNotice(t *testing.T) {
	s := New(finishedSession(t), "Fee confirmation failed")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view with a token notice")
	}
}

func TestSummaryScreen_EnterGoesHome(t *testing.T) {
	s := New(finishedSession(t), "")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop back to home")
	}
}

func TestSummaryScreen_ReviewPaging(t *testing.T) {
	sess := finishedSession(t)
	s := New(sess, "")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('r'))
	ss := scr.(*SummaryScreen)
	if !sess.Reviewing {
		t.Fatal("expected R to enter review mode")
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty review view")
	}

	scr, _ = ss.Update(keyPress('l'))
	ss = scr.(*SummaryScreen)
	if ss.reviewIndex != 1 {
		t.Errorf("reviewIndex = %d, want 1", ss.reviewIndex)
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty coordinate review view")
	}

	// Paging clamps at both ends.
	scr, _ = ss.Update(keyPress('l'))
	ss = scr.(*SummaryScreen)
	if ss.reviewIndex != 1 {
		t.Errorf("reviewIndex = %d, want clamped at 1", ss.reviewIndex)
	}

	scr, _ = ss.Update(keyPress('h'))
	ss = scr.(*SummaryScreen)
	if ss.reviewIndex != 0 {
		t.Errorf("reviewIndex = %d, want 0", ss.reviewIndex)
	}

	if _, cmd := ss.Update(specialKey(tea.KeyEscape)); cmd != nil {
		t.Error("Esc in review must exit review, not navigate away")
	}
	if sess.Reviewing {
		t.Error("expected Esc to leave review mode")
	}
}

func TestSummaryScreen_ReviewUnavailableWithoutAnswers(t *testing.T) {
	sess := finishedSession(t)
	sess.Answers = nil
	s := New(sess, "")

	if _, _ = s.Update(keyPress('r')); sess.Reviewing {
		t.Error("review should be unavailable when nothing was answered")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	sess := finishedSession(t)
	s := New(sess, "")

	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected summary key hints")
	}

	sess.EnterReview()
	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected review key hints")
	}
}
