package ratelimit

import (
	"context"
	"time"
)

// Limit describes a fixed window cap.
type Limit struct {
	Requests int
	Window   time.Duration
}

type RateLimiter interface {
	// Allow reports whether the request identified by key fits within the
	// limit's current window.
	Allow(ctx context.Context, key string, limit Limit) (bool, error)
}
