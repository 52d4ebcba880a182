// Package ratelimit provides a per-key sliding window limiter for the HTTP
// surface. In-memory only; each process enforces its own budget.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of a single admission check.
type Result struct {
	Allowed   bool
	Remaining int
	Limit     int
	ResetAt   time.Time
}

// Limiter admits up to limit requests per key within a sliding window. The
// sliding window avoids the burst-at-boundary problem of fixed buckets.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		windows: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

// Allow records one request for key and reports whether it fits the budget.
func (l *Limiter) Allow(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	timestamps := l.prune(key, now)

	if len(timestamps) >= l.limit {
		return Result{
			Allowed:   false,
			Remaining: 0,
			Limit:     l.limit,
			ResetAt:   timestamps[0].Add(l.window),
		}
	}

	timestamps = append(timestamps, now)
	l.windows[key] = timestamps

	return Result{
		Allowed:   true,
		Remaining: l.limit - len(timestamps),
		Limit:     l.limit,
		ResetAt:   timestamps[0].Add(l.window),
	}
}

// Reset clears the window for key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// prune drops timestamps that fell out of the window. Caller holds the lock.
func (l *Limiter) prune(key string, now time.Time) []time.Time {
	timestamps := l.windows[key]
	cutoff := now.Add(-l.window)
	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(l.windows, key)
		return nil
	}
	l.windows[key] = kept
	return kept
}
