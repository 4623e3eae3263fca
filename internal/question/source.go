package question

import (
	"context"
	"errors"
	"fmt"
)

// ErrFetchFailed is wrapped by all pool fetch failures, regardless of
// whether the cause was transport, HTTP status, or an unreadable feed.
var ErrFetchFailed = errors.New("question pool fetch failed")

// Source fetches question pools per category.
type Source interface {
	FetchPool(ctx context.Context, category string) (Pool, error)
}

// StaticSource serves pools from memory. Used in tests and in offline mode.
type StaticSource map[string]Pool

func (s StaticSource) FetchPool(_ context.Context, category string) (Pool, error) {
	pool, ok := s[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrFetchFailed, category)
	}
	return pool, nil
}
