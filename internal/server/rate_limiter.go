package server

import (
	"sync"
	"time"
)

// rateLimiter caps export requests per client over a fixed window.
// Exports are the only expensive endpoints; everything else is an
// in-memory mutation and stays unthrottled.
type rateLimiter struct {
	limit  int
	window time.Duration
	mu     sync.Mutex
	counts map[string]*windowCount
}

type windowCount struct {
	start time.Time
	n     int
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		counts: make(map[string]*windowCount),
	}
}

func (r *rateLimiter) Allow(key string) bool {
	if key == "" {
		return false
	}

	now := time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.counts[key]
	if entry == nil || now.Sub(entry.start) > r.window {
		r.pruneLocked(now)
		entry = &windowCount{start: now}
		r.counts[key] = entry
	}

	if entry.n >= r.limit {
		return false
	}

	entry.n++
	return true
}

// pruneLocked drops expired windows so idle clients do not accumulate.
func (r *rateLimiter) pruneLocked(now time.Time) {
	for key, entry := range r.counts {
		if now.Sub(entry.start) > r.window {
			delete(r.counts, key)
		}
	}
}
