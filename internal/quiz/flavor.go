package quiz

import (
	"time"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

// Flavor is one preset configuration of the session engine. The three
// quiz modes share a single builder/state machine and differ only in
// category, answer grammar, defaults, and feedback pacing.
type Flavor struct {
	Name     string
	Category string
	Kind     question.Kind

	DefaultCount      int
	DefaultTimeBudget int // seconds

	// FeedbackHold is how long the post-answer highlight stays on screen
	// before auto-advancing. Spatial questions get a hold so the learner
	// can see where the target was; choice questions advance immediately.
	FeedbackHold time.Duration
}

var (
	// FlavorAnatomy is the coordinate-click quiz over anatomy images.
	FlavorAnatomy = Flavor{
		Name:              "anatomy",
		Category:          "anatomy",
		Kind:              question.KindCoordinate,
		DefaultCount:      10,
		DefaultTimeBudget: 180,
		FeedbackHold:      1500 * time.Millisecond,
	}

	// FlavorMedicine is the multiple-choice quiz over medicine questions.
	FlavorMedicine = Flavor{
		Name:              "medicine",
		Category:          "medicine",
		Kind:              question.KindChoice,
		DefaultCount:      10,
		DefaultTimeBudget: 300,
	}

	// FlavorPharmacy is the multiple-choice quiz over pharmacy questions.
	FlavorPharmacy = Flavor{
		Name:              "pharmacy",
		Category:          "pharmacy",
		Kind:              question.KindChoice,
		DefaultCount:      10,
		DefaultTimeBudget: 300,
	}

	// FlavorChallenge is the choice quiz under a tight global time limit.
	FlavorChallenge = Flavor{
		Name:              "challenge",
		Category:          "medicine",
		Kind:              question.KindChoice,
		DefaultCount:      20,
		DefaultTimeBudget: 120,
	}
)

// AllFlavors returns the quiz flavors in menu order.
func AllFlavors() []Flavor {
	return []Flavor{FlavorAnatomy, FlavorMedicine, FlavorPharmacy, FlavorChallenge}
}

// DefaultConfig returns the flavor's default session config.
func (f Flavor) DefaultConfig() Config {
	return Config{
		RequestedCount:    f.DefaultCount,
		TimeBudgetSeconds: f.DefaultTimeBudget,
	}
}
