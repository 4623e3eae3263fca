package quiz

import (
	"testing"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

func coordQuestion() question.Question {
	return question.Question{
		ID: "q1", Category: "anatomy", Kind: question.KindCoordinate,
		Prompt: "Find it",
		ImageW: 800, ImageH: 600,
		Target: question.Target{X: 100, Y: 100, Radius: 10},
	}
}

func choiceQuestion() question.Question {
	return question.Question{
		ID: "q2", Category: "medicine", Kind: question.KindChoice,
		Prompt:     "Pick one",
		Options:    [4]string{"a", "b", "c", "d"},
		CorrectKey: "C",
	}
}

func TestEvaluate_Coordinate(t *testing.T) {
	q := coordQuestion()

	tests := []struct {
		name string
		a    Answer
		want bool
	}{
		{"dead center", PointAnswer{X: 100, Y: 100}, true},
		{"inside radius", PointAnswer{X: 105, Y: 105}, true},
		{"exactly on boundary", PointAnswer{X: 110, Y: 100}, true},
		{"just outside", PointAnswer{X: 110.5, Y: 100}, false},
		{"far away", PointAnswer{X: 0, Y: 0}, false},
		{"wrong answer type", KeyAnswer("A"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.a); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Choice(t *testing.T) {
	q := choiceQuestion()

	tests := []struct {
		name string
		a    Answer
		want bool
	}{
		{"correct key", KeyAnswer("C"), true},
		{"wrong key", KeyAnswer("A"), false},
		{"lowercase is not a match", KeyAnswer("c"), false},
		{"empty key", KeyAnswer(""), false},
		{"wrong answer type", PointAnswer{X: 1, Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.a); got != tt.want {
				t.Errorf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNaturalPoint_ScalesPerAxis(t *testing.T) {
	q := coordQuestion() // natural 800x600

	// Rendered at 400x150: x scales by 2, y scales by 4.
	p := NaturalPoint(q, 200, 75, 400, 150)
	if p.X != 400 {
		t.Errorf("X = %f, want 400", p.X)
	}
	if p.Y != 300 {
		t.Errorf("Y = %f, want 300", p.Y)
	}
}

func TestNaturalPoint_DegenerateRenderSize(t *testing.T) {
	q := coordQuestion()
	p := NaturalPoint(q, 10, 10, 0, 0)
	if p.X != 0 || p.Y != 0 {
		t.Errorf("degenerate render size should map to origin, got %v", p)
	}
}

func TestNaturalPoint_RoundTripGrading(t *testing.T) {
	// A click visually on the target must grade correct after scaling.
	q := coordQuestion()
	p := NaturalPoint(q, 50, 25, 400, 150) // maps to (100, 100)
	if !Evaluate(q, p) {
		t.Error("scaled center click should hit the target")
	}
}
