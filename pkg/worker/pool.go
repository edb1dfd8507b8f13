// Package worker provides a bounded pool of goroutines for fire-and-forget
// background jobs: audit writes, pubsub broadcasts, scheduled wipes.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Job is one unit of background work. The context is the pool's lifetime
// context; jobs should honor its cancellation.
type Job func(ctx context.Context)

// Pool runs submitted jobs on a fixed set of goroutines. Submission never
// blocks: when the queue is full the job is dropped with a warning, so
// request handlers stay responsive under load.
type Pool struct {
	name        string
	workerCount int
	jobs        chan namedJob
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	started     bool
	dropped     atomic.Int64
}

type namedJob struct {
	label string
	fn    Job
}

// NewPool creates a pool with the given number of workers and queue capacity.
func NewPool(name string, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{
		name:        name,
		workerCount: workers,
		jobs:        make(chan namedJob, queueSize),
		stopCh:      make(chan struct{}),
	}
}

// Start spawns the worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pool", p.name)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "pool", p.name, "workers", p.workerCount)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go func(id int) {
			defer p.wg.Done()
			p.run(ctx, id)
		}(i)
	}
}

// Healthy reports whether the pool has been started and not yet stopped.
func (p *Pool) Healthy() bool {
	if !p.started {
		return false
	}
	select {
	case <-p.stopCh:
		return false
	default:
		return true
	}
}

// Stop drains no further work and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	if n := p.dropped.Load(); n > 0 {
		slog.Warn("Worker pool stopped with dropped jobs", "pool", p.name, "dropped", n)
	} else {
		slog.Info("Worker pool stopped", "pool", p.name)
	}
}

// Submit queues a job. Returns false if the queue is full or the pool is
// stopping; the job is dropped in that case.
func (p *Pool) Submit(label string, fn Job) bool {
	select {
	case <-p.stopCh:
		p.dropped.Add(1)
		return false
	default:
	}

	select {
	case p.jobs <- namedJob{label: label, fn: fn}:
		return true
	default:
		p.dropped.Add(1)
		slog.Warn("Worker pool queue full, dropping job", "pool", p.name, "job", label)
		return false
	}
}

// Dropped returns the number of jobs dropped since the pool was created.
func (p *Pool) Dropped() int64 {
	return p.dropped.Load()
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-p.stopCh:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case job := <-p.jobs:
					p.execute(ctx, id, job)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			p.execute(ctx, id, job)
		}
	}
}

// execute runs one job, recovering panics so a bad job cannot take down the
// worker goroutine.
func (p *Pool) execute(ctx context.Context, id int, job namedJob) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Worker job panicked",
				"pool", p.name,
				"worker", id,
				"job", job.label,
				"panic", r)
		}
	}()
	job.fn(ctx)
}
