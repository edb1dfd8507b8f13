package policy

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounters_IncrementAndReturn(t *testing.T) {
	c := NewCounters()
	now := time.Now()

	assert.Equal(t, int64(1), c.Increment("r1", "agent", "a1", 60, now))
	assert.Equal(t, int64(2), c.Increment("r1", "agent", "a1", 60, now))

	// Different scope ID is a separate bucket.
	assert.Equal(t, int64(1), c.Increment("r1", "agent", "a2", 60, now))
	// Different rule is a separate bucket.
	assert.Equal(t, int64(1), c.Increment("r2", "agent", "a1", 60, now))
}

func TestCounters_WindowRollover(t *testing.T) {
	c := NewCounters()
	base := time.Unix(1000, 0)

	assert.Equal(t, int64(1), c.Increment("r1", "agent", "a1", 10, base))
	assert.Equal(t, int64(2), c.Increment("r1", "agent", "a1", 10, base.Add(9*time.Second)))
	// Next window starts fresh.
	assert.Equal(t, int64(1), c.Increment("r1", "agent", "a1", 10, base.Add(10*time.Second)))
}

func TestCounters_ConcurrentIncrements(t *testing.T) {
	c := NewCounters()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Increment("r1", "workspace", "w1", 60, now)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(51), c.Increment("r1", "workspace", "w1", 60, now))
}

func TestCounters_SweepDropsExpiredWindows(t *testing.T) {
	c := NewCounters()
	base := time.Unix(1000, 0)

	c.Increment("r1", "agent", "a1", 10, base)         // expires at 1010
	c.Increment("r2", "agent", "a1", 3600, base)       // expires at ~4600
	c.Increment("r1", "agent", "a1", 10, base.Add(20*time.Second)) // live window
	assert.Equal(t, 3, c.Len())

	c.sweep(base.Add(25 * time.Second))
	assert.Equal(t, 2, c.Len())

	// The hour-long window survives a sweep mid-window.
	c.sweep(base.Add(30 * time.Minute))
	assert.Equal(t, 1, c.Len())
}
