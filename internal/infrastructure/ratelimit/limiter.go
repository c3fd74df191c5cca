// Package ratelimit counts attempts per key in fixed windows, in process
// memory or in Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/ticketflow/ticketflow/internal/core/ports"
)

const (
	defaultLimit  = 5
	defaultWindow = 15 * time.Minute
	keyPrefix     = "ticketflow:login"
	cleanupPeriod = time.Minute
)

// Config describes one limiter. Limit attempts are allowed per Window.
type Config struct {
	Limit  int64
	Window time.Duration
	Prefix string
}

func (c Config) rate() limiter.Rate {
	limit := c.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	window := c.Window
	if window <= 0 {
		window = defaultWindow
	}
	return limiter.Rate{Period: window, Limit: limit}
}

func (c Config) prefix() string {
	if c.Prefix == "" {
		return keyPrefix
	}
	return c.Prefix
}

// Limiter implements ports.AttemptLimiter. Every Hit counts, allowed or not.
type Limiter struct {
	lim *limiter.Limiter
}

var _ ports.AttemptLimiter = (*Limiter)(nil)

// NewMemory keeps counters in this process. Counters reset on restart and
// are not shared between instances.
func NewMemory(cfg Config) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          cfg.prefix(),
		CleanUpInterval: cleanupPeriod,
	})
	return &Limiter{lim: limiter.New(store, cfg.rate())}
}

// NewRedis keeps counters in Redis so every instance shares them.
func NewRedis(client *redis.Client, cfg Config) (*Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix: cfg.prefix(),
	})
	if err != nil {
		return nil, fmt.Errorf("ratelimit: redis store: %w", err)
	}
	return &Limiter{lim: limiter.New(store, cfg.rate())}, nil
}

func (l *Limiter) Hit(ctx context.Context, key string) (ports.LimitResult, error) {
	lc, err := l.lim.Get(ctx, key)
	if err != nil {
		return ports.LimitResult{}, fmt.Errorf("ratelimit: %w", err)
	}
	return ports.LimitResult{
		Allowed:   !lc.Reached,
		Remaining: lc.Remaining,
		ResetAt:   time.Unix(lc.Reset, 0).UTC(),
	}, nil
}
