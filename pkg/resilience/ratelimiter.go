// Package resilience provides the request rate limiter used by the HTTP
// middleware.
package resilience

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

// ErrRateLimited is returned when a token is not available.
var ErrRateLimited = errors.New("rate limited")

// LimiterOpts configures the token bucket.
type LimiterOpts struct {
	// Rate is the number of tokens added per second.
	Rate float64
	// Burst is the bucket capacity.
	Burst int
}

// Limiter is a token-bucket rate limiter shared by all requests.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter creates a limiter. A non-positive burst is raised to 1; a
// non-positive rate means unlimited.
func NewLimiter(opts LimiterOpts) *Limiter {
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	limit := rate.Limit(opts.Rate)
	if opts.Rate <= 0 {
		limit = rate.Inf
	}
	return &Limiter{bucket: rate.NewLimiter(limit, opts.Burst)}
}

// Allow reports whether a request may proceed now (non-blocking).
func (l *Limiter) Allow() bool {
	return l.bucket.Allow()
}

// Wait blocks until a token is available or ctx is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}

// Call executes f if a token is available, otherwise returns
// ErrRateLimited without invoking it.
func (l *Limiter) Call(ctx context.Context, f func(context.Context) error) error {
	if !l.Allow() {
		return ErrRateLimited
	}
	return f(ctx)
}
