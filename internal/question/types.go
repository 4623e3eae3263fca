package question

import (
	"errors"
	"fmt"
	"math"
)

// Kind discriminates the two answer grammars a question can use.
type Kind string

const (
	// KindCoordinate is answered by picking a point on an image and is
	// scored by radial distance to a target region.
	KindCoordinate Kind = "coordinate"
	// KindChoice is answered by selecting one of four lettered options.
	KindChoice Kind = "choice"
)

// Option keys for choice questions, in display order.
var ChoiceKeys = [4]string{"A", "B", "C", "D"}

// ErrInvalidQuestion is wrapped by all question validation failures.
var ErrInvalidQuestion = errors.New("invalid question")

// Target is the correct region of a coordinate question, expressed in the
// image's natural (unscaled) coordinate space.
type Target struct {
	X      float64
	Y      float64
	Radius float64
}

// Question is a tagged union over the two variants. Kind selects which
// fields are meaningful: Target/ImageRef/ImageW/ImageH for coordinate
// questions, Options/CorrectKey/Explanation for choice questions.
type Question struct {
	ID       string
	Category string
	Kind     Kind
	Prompt   string

	// Coordinate variant.
	ImageRef string
	ImageW   float64
	ImageH   float64
	Target   Target

	// Choice variant.
	Options     [4]string
	CorrectKey  string
	Explanation string
}

// Validate checks the variant invariants: a positive radius for coordinate
// questions, exactly one well-formed correct key for choice questions.
func (q Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidQuestion)
	}
	if q.Prompt == "" {
		return fmt.Errorf("%w %s: missing prompt", ErrInvalidQuestion, q.ID)
	}
	switch q.Kind {
	case KindCoordinate:
		if q.Target.Radius <= 0 {
			return fmt.Errorf("%w %s: radius must be > 0", ErrInvalidQuestion, q.ID)
		}
		if q.ImageW <= 0 || q.ImageH <= 0 {
			return fmt.Errorf("%w %s: missing natural image dimensions", ErrInvalidQuestion, q.ID)
		}
	case KindChoice:
		if !validChoiceKey(q.CorrectKey) {
			return fmt.Errorf("%w %s: correct key must be one of A-D, got %q", ErrInvalidQuestion, q.ID, q.CorrectKey)
		}
		for i, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("%w %s: option %s is empty", ErrInvalidQuestion, q.ID, ChoiceKeys[i])
			}
		}
	default:
		return fmt.Errorf("%w %s: unknown kind %q", ErrInvalidQuestion, q.ID, q.Kind)
	}
	return nil
}

func validChoiceKey(key string) bool {
	for _, k := range ChoiceKeys {
		if key == k {
			return true
		}
	}
	return false
}

// Point is a location in the natural coordinate space of a question image.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Pool is an immutable ordered question bank for one category.
type Pool []Question

// Len returns the number of questions in the pool.
func (p Pool) Len() int { return len(p) }
