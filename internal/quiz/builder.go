package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/DDLX-svg/EdifyX-sub000/internal/question"
)

// Build draws a session from the pool. The draw is a uniform Fisher-Yates
// shuffle of a pool copy, taking the first effectiveCount questions, so
// every subset is equally likely and nothing is drawn twice. The rng is
// injected for deterministic tests; pass NewRand() in production.
//
// An empty pool is not an error: the returned session is already
// Finished with OutcomeNoQuestions, and callers render a dead-end notice
// instead of starting the clock.
func Build(pool question.Pool, flavor Flavor, cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	effective := cfg.RequestedCount
	if len(pool) < effective {
		effective = len(pool)
	}

	drawn := make([]question.Question, len(pool))
	copy(drawn, pool)
	rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	drawn = drawn[:effective]

	s := &Session{
		ID:               uuid.New().String(),
		Flavor:           flavor,
		Questions:        drawn,
		RemainingSeconds: cfg.TimeBudgetSeconds,
		Phase:            PhaseRunning,
		Shortfall:        effective < cfg.RequestedCount,
		Requested:        cfg.RequestedCount,
		StartedAt:        time.Now(),
	}

	if effective == 0 {
		s.finish(OutcomeNoQuestions)
	}
	return s, nil
}

// NewRand returns a time-seeded rng for production session draws.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
