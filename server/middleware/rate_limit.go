// Package middleware holds HTTP middleware helpers shared by the API routes.
package middleware

import (
	"sync"

	"golang.org/x/time/rate"
)

// Default per-user request budget. Journal and mood appends are interactive
// single-record writes, so a modest rate with a short burst covers any
// legitimate client.
const (
	DefaultRPS   = 10
	DefaultBurst = 20
)

// RateLimiter keeps one token bucket per authenticated user so a single
// misbehaving client cannot starve the analytics endpoints for everyone else.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst for each key. Non-positive values fall back to the defaults.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		rps = DefaultRPS
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a request under the given key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = rate.NewLimiter(rl.rps, rl.burst)
		rl.buckets[key] = bucket
	}
	rl.mu.Unlock()
	return bucket.Allow()
}
