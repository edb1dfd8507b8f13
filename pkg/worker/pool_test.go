package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := NewPool("test", 4, 16)
	p.Start(context.Background())
	defer p.Stop()

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		ok := p.Submit("increment", func(ctx context.Context) {
			defer wg.Done()
			count.Add(1)
		})
		require.True(t, ok)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not complete in time")
	}
	assert.Equal(t, int64(10), count.Load())
}

func TestPool_RecoverFromPanic(t *testing.T) {
	p := NewPool("test", 1, 4)
	p.Start(context.Background())

	p.Submit("boom", func(ctx context.Context) {
		panic("boom")
	})

	// The worker survives the panic and still runs the next job.
	ran := make(chan struct{})
	p.Submit("after", func(ctx context.Context) {
		close(ran)
	})
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive panicking job")
	}
	p.Stop()
}

func TestPool_DropsWhenQueueFull(t *testing.T) {
	p := NewPool("test", 1, 1)
	// Not started: nothing drains the queue.

	require.True(t, p.Submit("first", func(ctx context.Context) {}))
	assert.False(t, p.Submit("second", func(ctx context.Context) {}))
	assert.Equal(t, int64(1), p.Dropped())
}

func TestPool_StopDrainsQueuedJobs(t *testing.T) {
	p := NewPool("test", 1, 8)

	var count atomic.Int64
	for i := 0; i < 5; i++ {
		require.True(t, p.Submit("queued", func(ctx context.Context) {
			count.Add(1)
		}))
	}

	p.Start(context.Background())
	p.Stop()
	assert.Equal(t, int64(5), count.Load())
}

func TestPool_SubmitAfterStopIsDropped(t *testing.T) {
	p := NewPool("test", 1, 4)
	p.Start(context.Background())
	p.Stop()

	assert.False(t, p.Submit("late", func(ctx context.Context) {}))
}
