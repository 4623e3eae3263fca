package quiz

import (
	"fmt"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

// Answer is a submitted value: a point for coordinate questions, an
// option key for choice questions.
type Answer interface {
	isAnswer()
	String() string
}

// PointAnswer is a pick in the natural coordinate space of the image.
type PointAnswer question.Point

func (PointAnswer) isAnswer() {}

func (a PointAnswer) String() string {
	return fmt.Sprintf("%.1f,%.1f", a.X, a.Y)
}

// KeyAnswer is a selected option key ("A".."D").
type KeyAnswer string

func (KeyAnswer) isAnswer() {}

func (a KeyAnswer) String() string { return string(a) }

// Evaluate reports whether the submitted answer is correct. Pure.
//
// Coordinate questions are correct iff the Euclidean distance from the
// submitted point to the target center is within the target radius, both
// in the image's natural coordinate space. Choice questions are correct
// iff the submitted key equals the correct key exactly (case-sensitive).
// A mismatched answer type is simply wrong, never a panic.
func Evaluate(q question.Question, a Answer) bool {
	switch q.Kind {
	case question.KindCoordinate:
		p, ok := a.(PointAnswer)
		if !ok {
			return false
		}
		return question.Point(p).DistanceTo(question.Point{X: q.Target.X, Y: q.Target.Y}) <= q.Target.Radius
	case question.KindChoice:
		k, ok := a.(KeyAnswer)
		if !ok {
			return false
		}
		return string(k) == q.CorrectKey
	}
	return false
}

// NaturalPoint converts a pick in rendered coordinates (for example a
// crosshair cell on the terminal canvas) to the question's natural image
// space. The rendered size is only known at display time, so the caller
// passes both: the scale factor is natural/rendered per axis.
func NaturalPoint(q question.Question, renderedX, renderedY, renderedW, renderedH float64) PointAnswer {
	if renderedW <= 0 || renderedH <= 0 {
		return PointAnswer{}
	}
	return PointAnswer{
		X: renderedX * q.ImageW / renderedW,
		Y: renderedY * q.ImageH / renderedH,
	}
}
