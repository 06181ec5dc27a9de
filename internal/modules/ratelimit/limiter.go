package ratelimit

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Limiter counts requests per key in a fixed window. The window starts at the
// first request for a key and the count entry expires with it, so state is
// bounded by active clients.
type Limiter struct {
	max      int
	window   time.Duration
	counters *gocache.Cache
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:      max,
		window:   window,
		counters: gocache.New(window, 2*window),
	}
}

// Allow records one request for key and reports whether it is within the
// window budget.
func (l *Limiter) Allow(key string) bool {
	if err := l.counters.Add(key, int64(1), l.window); err == nil {
		return l.max >= 1
	}
	n, err := l.counters.IncrementInt64(key, 1)
	if err != nil {
		// Entry expired between Add and Increment: fresh window.
		_ = l.counters.Add(key, int64(1), l.window)
		return l.max >= 1
	}
	return n <= int64(l.max)
}

// Remaining reports how many requests are left in key's current window.
func (l *Limiter) Remaining(key string) int {
	v, ok := l.counters.Get(key)
	if !ok {
		return l.max
	}
	used, _ := v.(int64)
	remaining := l.max - int(used)
	if remaining < 0 {
		return 0
	}
	return remaining
}
