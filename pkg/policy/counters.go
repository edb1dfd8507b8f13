package policy

import (
	"context"
	"sync"
	"time"
)

// sweepInterval is how often expired rate windows are removed.
const sweepInterval = 60 * time.Second

type counterKey struct {
	ruleID    string
	scope     string
	scopeID   string
	window    int64 // window start, unix seconds
	windowSec int64
}

// Counters tracks per-rule event counts within fixed time windows. The
// increment-and-return under one lock is what makes concurrent evaluations
// agree on the count; separate read-then-write would undercount bursts.
type Counters struct {
	mu     sync.Mutex
	counts map[counterKey]int64

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewCounters creates an empty counter table.
func NewCounters() *Counters {
	return &Counters{
		counts: make(map[counterKey]int64),
		stopCh: make(chan struct{}),
	}
}

// Increment bumps the counter for (rule, scope, window) and returns the new
// value. The window is identified by its start time so all events within the
// same windowSeconds span share a bucket.
func (c *Counters) Increment(ruleID, scope, scopeID string, windowSeconds int64, now time.Time) int64 {
	if windowSeconds < 1 {
		windowSeconds = 1
	}
	key := counterKey{
		ruleID:    ruleID,
		scope:     scope,
		scopeID:   scopeID,
		window:    now.Unix() / windowSeconds * windowSeconds,
		windowSec: windowSeconds,
	}

	c.mu.Lock()
	c.counts[key]++
	n := c.counts[key]
	c.mu.Unlock()
	return n
}

// Start launches the background sweeper that drops buckets older than their
// window. Without it, counters for quiet rules would accumulate forever.
func (c *Counters) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stopCh:
				return
			case <-ticker.C:
				c.sweep(time.Now())
			}
		}
	}()
}

// Stop terminates the sweeper.
func (c *Counters) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// sweep removes buckets whose window has already ended. Active windows are
// always kept, regardless of their length.
func (c *Counters) sweep(now time.Time) {
	nowUnix := now.Unix()
	c.mu.Lock()
	for key := range c.counts {
		if key.window+key.windowSec <= nowUnix {
			delete(c.counts, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of live buckets.
func (c *Counters) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts)
}
