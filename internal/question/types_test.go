package question

import (
	"context"
	"errors"
	"math"
	"testing"
)

func validCoordinate() Question {
	return Question{
		ID:       "anat-1",
		Category: "anatomy",
		Kind:     KindCoordinate,
		Prompt:   "Locate the apex of the heart",
		ImageRef: "torso-anterior",
		ImageW:   800,
		ImageH:   600,
		Target:   Target{X: 420, Y: 260, Radius: 40},
	}
}

func validChoice() Question {
	return Question{
		ID:         "med-1",
		Category:   "medicine",
		Kind:       KindChoice,
		Prompt:     "First-line treatment for anaphylaxis?",
		Options:    [4]string{"Adrenaline", "Hydrocortisone", "Salbutamol", "Chlorphenamine"},
		CorrectKey: "A",
	}
}

func TestQuestionValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Question)
		base    Question
		wantErr bool
	}{
		{name: "valid coordinate", base: validCoordinate()},
		{name: "valid choice", base: validChoice()},
		{name: "missing id", base: validChoice(), mutate: func(q *Question) { q.ID = "" }, wantErr: true},
		{name: "missing prompt", base: validCoordinate(), mutate: func(q *Question) { q.Prompt = "" }, wantErr: true},
		{name: "zero radius", base: validCoordinate(), mutate: func(q *Question) { q.Target.Radius = 0 }, wantErr: true},
		{name: "negative radius", base: validCoordinate(), mutate: func(q *Question) { q.Target.Radius = -5 }, wantErr: true},
		{name: "missing image width", base: validCoordinate(), mutate: func(q *Question) { q.ImageW = 0 }, wantErr: true},
		{name: "bad correct key", base: validChoice(), mutate: func(q *Question) { q.CorrectKey = "E" }, wantErr: true},
		{name: "lowercase correct key", base: validChoice(), mutate: func(q *Question) { q.CorrectKey = "a" }, wantErr: true},
		{name: "empty option", base: validChoice(), mutate: func(q *Question) { q.Options[2] = "" }, wantErr: true},
		{name: "unknown kind", base: validChoice(), mutate: func(q *Question) { q.Kind = "essay" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.base
			if tc.mutate != nil {
				tc.mutate(&q)
			}
			err := q.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidQuestion) {
					t.Errorf("err = %v, want ErrInvalidQuestion", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestPointDistanceTo(t *testing.T) {
	got := Point{X: 0, Y: 0}.DistanceTo(Point{X: 3, Y: 4})
	if got != 5 {
		t.Errorf("distance = %v, want 5", got)
	}

	if d := (Point{X: 7, Y: -2}).DistanceTo(Point{X: 7, Y: -2}); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	a, b := Point{X: 1, Y: 2}, Point{X: -4, Y: 9}
	if math.Abs(a.DistanceTo(b)-b.DistanceTo(a)) > 1e-12 {
		t.Error("distance should be symmetric")
	}
}

func TestStaticSource_UnknownCategory(t *testing.T) {
	src := StaticSource{"medicine": Pool{validChoice()}}

	if _, err := src.FetchPool(context.Background(), "botany"); !errors.Is(err, ErrFetchFailed) {
		t.Errorf("err = %v, want ErrFetchFailed", err)
	}

	pool, err := src.FetchPool(context.Background(), "medicine")
	if err != nil {
		t.Fatalf("FetchPool: %v", err)
	}
	if pool.Len() != 1 {
		t.Errorf("pool len = %d, want 1", pool.Len())
	}
}
