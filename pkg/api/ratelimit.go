package api

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is how often expired rate-limit windows are dropped.
const sweepInterval = 60 * time.Second

type windowKey struct {
	ip     string
	window int64
}

// ipLimiter is a sliding-window request counter keyed by client IP. The
// increment returns the new count under one lock, so concurrent requests can
// never both observe room for the last slot.
type ipLimiter struct {
	limit         int
	windowSeconds int64

	mu      sync.Mutex
	buckets map[windowKey]int

	stopCh   chan struct{}
	stopOnce sync.Once
}

func newIPLimiter(limit int, windowSeconds int64) *ipLimiter {
	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	return &ipLimiter{
		limit:         limit,
		windowSeconds: windowSeconds,
		buckets:       make(map[windowKey]int),
		stopCh:        make(chan struct{}),
	}
}

// Allow counts one request from ip and reports whether it fits the window,
// along with the remaining quota and the seconds until the window turns over.
func (l *ipLimiter) Allow(ip string, now time.Time) (allowed bool, remaining int, retryAfter int64) {
	if l.limit <= 0 {
		return true, 0, 0
	}

	window := now.Unix() / l.windowSeconds
	key := windowKey{ip: ip, window: window}

	l.mu.Lock()
	l.buckets[key]++
	count := l.buckets[key]
	l.mu.Unlock()

	remaining = l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	retryAfter = (window+1)*l.windowSeconds - now.Unix()
	if retryAfter < 1 {
		retryAfter = 1
	}
	return count <= l.limit, remaining, retryAfter
}

// Start runs the background sweeper until ctx is cancelled or Stop is called.
func (l *ipLimiter) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.stopCh:
				return
			case <-ticker.C:
				l.sweep(time.Now())
			}
		}
	}()
}

// Stop halts the sweeper.
func (l *ipLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// sweep drops windows older than the current one.
func (l *ipLimiter) sweep(now time.Time) {
	current := now.Unix() / l.windowSeconds
	l.mu.Lock()
	defer l.mu.Unlock()
	for key := range l.buckets {
		if key.window < current {
			delete(l.buckets, key)
		}
	}
}
