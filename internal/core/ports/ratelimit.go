package ports

import (
	"context"
	"time"
)

// LimitResult is the outcome of counting one attempt against a key.
type LimitResult struct {
	Allowed   bool
	Remaining int64
	ResetAt   time.Time
}

// AttemptLimiter counts attempts per key inside a fixed window.
type AttemptLimiter interface {
	Hit(ctx context.Context, key string) (LimitResult, error)
}
