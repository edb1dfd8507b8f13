package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// KeySource resolves a workspace's decrypted provider key. Satisfied by
// *cache.LLMKeyStore.
type KeySource interface {
	Key(ctx context.Context, workspaceID uuid.UUID) (string, error)
}

// Options tunes the retry loop.
type Options struct {
	MaxAttempts  int
	BackoffBase  time.Duration
	CallEstimate int64 // cents reserved per call before the real cost is known
	RequestLimit time.Duration
}

// Client wraps a Backend with key resolution, budget reservation, retries
// with jittered exponential backoff, and cost settlement.
type Client struct {
	backend Backend
	keys    KeySource
	ledger  Ledger
	opts    Options
}

// NewClient assembles the client. ledger may be nil to disable budget
// enforcement (tests only).
func NewClient(backend Backend, keys KeySource, ledger Ledger, opts Options) *Client {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = time.Second
	}
	if opts.CallEstimate < 1 {
		opts.CallEstimate = 10
	}
	return &Client{backend: backend, keys: keys, ledger: ledger, opts: opts}
}

// Call performs one budgeted model call on behalf of a workspace.
//
// The estimate is reserved before the call and settled against the measured
// cost afterwards, so concurrent callers cannot collectively overshoot the
// budget by more than the final call's estimate.
func (c *Client) Call(ctx context.Context, workspaceID uuid.UUID, req Request) (*Response, error) {
	apiKey, err := c.keys.Key(ctx, workspaceID)
	if err != nil {
		return nil, &CallError{Code: CodeAPIKeyNotConfigured, Err: err}
	}

	if c.ledger != nil {
		ok, err := c.ledger.Reserve(ctx, workspaceID, c.opts.CallEstimate)
		if err != nil {
			return nil, fmt.Errorf("budget reservation failed: %w", err)
		}
		if !ok {
			return nil, &CallError{Code: CodeBudgetExceeded}
		}
	}

	resp, err := c.callWithRetry(ctx, apiKey, req)
	if c.ledger != nil {
		if err != nil {
			// Failed calls cost nothing; hand the reservation back.
			c.ledger.Release(ctx, workspaceID, c.opts.CallEstimate)
		} else {
			c.ledger.Settle(ctx, workspaceID, c.opts.CallEstimate, resp.CostCents, resp.TokensUsed)
		}
	}
	return resp, err
}

// callWithRetry runs the backend up to MaxAttempts times. Only failures
// classified retryable are retried; backoff doubles per attempt with uniform
// jitter on top.
func (c *Client) callWithRetry(ctx context.Context, apiKey string, req Request) (*Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := c.backoffDelay(attempt - 1)
			slog.Debug("Retrying llm call",
				"attempt", attempt+1,
				"max_attempts", c.opts.MaxAttempts,
				"delay_ms", delay.Milliseconds())
			select {
			case <-ctx.Done():
				return nil, &CallError{Code: CodeTimeout, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		callCtx := ctx
		var cancel context.CancelFunc
		if c.opts.RequestLimit > 0 {
			callCtx, cancel = context.WithTimeout(ctx, c.opts.RequestLimit)
		}
		resp, err := c.backend(callCtx, apiKey, req)
		if cancel != nil {
			cancel()
		}
		if err == nil {
			return resp, nil
		}

		lastErr = err
		ce, ok := IsCallError(err)
		if !ok || !ce.Retryable {
			return nil, err
		}
		slog.Warn("Retryable llm failure",
			"attempt", attempt+1,
			"code", ce.Code,
			"status", ce.Status)
	}
	return nil, lastErr
}

// backoffDelay returns base*2^attempt plus uniform jitter in [0, base).
func (c *Client) backoffDelay(attempt int) time.Duration {
	base := c.opts.BackoffBase << uint(attempt)
	jitter := time.Duration(rand.Int63n(int64(c.opts.BackoffBase)))
	return base + jitter
}
