package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate for non-positive
// question counts or time budgets. Configuration errors are rejected at
// build time and never reach the state machine.
var ErrInvalidConfig = errors.New("invalid session config")

// Config is the requested shape of a session before the pool is known.
type Config struct {
	RequestedCount    int
	TimeBudgetSeconds int
}

func (c Config) Validate() error {
	if c.RequestedCount < 1 {
		return fmt.Errorf("%w: requested count %d, want >= 1", ErrInvalidConfig, c.RequestedCount)
	}
	if c.TimeBudgetSeconds < 1 {
		return fmt.Errorf("%w: time budget %ds, want >= 1", ErrInvalidConfig, c.TimeBudgetSeconds)
	}
	return nil
}
