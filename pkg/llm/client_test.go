package llm

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKeys struct {
	key string
	err error
}

func (s staticKeys) Key(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	return s.key, s.err
}

// memLedger mirrors the increment-then-compare reservation the real ledger
// performs in SQL.
type memLedger struct {
	mu    sync.Mutex
	spend int64
	limit int64
}

func (m *memLedger) Reserve(ctx context.Context, workspaceID uuid.UUID, estimate int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spend += estimate
	if m.spend > m.limit {
		m.spend -= estimate
		return false, nil
	}
	return true, nil
}

func (m *memLedger) Release(ctx context.Context, workspaceID uuid.UUID, estimate int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spend -= estimate
}

func (m *memLedger) Settle(ctx context.Context, workspaceID uuid.UUID, estimate, actual, tokens int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spend += actual - estimate
}

func fastOpts() Options {
	return Options{MaxAttempts: 3, BackoffBase: time.Millisecond, CallEstimate: 10}
}

func TestClient_SucceedsFirstAttempt(t *testing.T) {
	var attempts atomic.Int64
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		attempts.Add(1)
		assert.Equal(t, "sk-ws", apiKey)
		return &Response{Content: "ok", TokensUsed: 100, CostCents: 1}, nil
	}
	c := NewClient(backend, staticKeys{key: "sk-ws"}, nil, fastOpts())

	resp, err := c.Call(context.Background(), uuid.New(), Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestClient_RetriesRetryableFailures(t *testing.T) {
	var attempts atomic.Int64
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		if attempts.Add(1) < 3 {
			return nil, &CallError{Code: apiErrorCode(503), Status: 503, Retryable: true}
		}
		return &Response{Content: "eventually"}, nil
	}
	c := NewClient(backend, staticKeys{key: "k"}, nil, fastOpts())

	resp, err := c.Call(context.Background(), uuid.New(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "eventually", resp.Content)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestClient_StopsAfterMaxAttempts(t *testing.T) {
	var attempts atomic.Int64
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		attempts.Add(1)
		return nil, &CallError{Code: CodeTimeout, Retryable: true}
	}
	c := NewClient(backend, staticKeys{key: "k"}, nil, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	require.Error(t, err)
	assert.Equal(t, int64(3), attempts.Load())

	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeTimeout, ce.Code)
}

func TestClient_DoesNotRetryPermanentFailures(t *testing.T) {
	var attempts atomic.Int64
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		attempts.Add(1)
		return nil, &CallError{Code: apiErrorCode(401), Status: 401, Retryable: false}
	}
	c := NewClient(backend, staticKeys{key: "k"}, nil, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	require.Error(t, err)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestClient_MissingKeyFailsBeforeBackend(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		t.Fatal("backend must not be called without a key")
		return nil, nil
	}
	c := NewClient(backend, staticKeys{err: errors.New("not configured")}, nil, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeAPIKeyNotConfigured, ce.Code)
}

func TestClient_BudgetExceededBlocksCall(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		t.Fatal("backend must not be called over budget")
		return nil, nil
	}
	ledger := &memLedger{limit: 5} // estimate is 10
	c := NewClient(backend, staticKeys{key: "k"}, ledger, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	ce, ok := IsCallError(err)
	require.True(t, ok)
	assert.Equal(t, CodeBudgetExceeded, ce.Code)
}

func TestClient_SettlesActualCost(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		return &Response{Content: "x", CostCents: 4}, nil
	}
	ledger := &memLedger{limit: 100}
	c := NewClient(backend, staticKeys{key: "k"}, ledger, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), ledger.spend) // estimate replaced by actual
}

func TestClient_ReleasesReservationOnFailure(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		return nil, &CallError{Code: apiErrorCode(400), Status: 400}
	}
	ledger := &memLedger{limit: 100}
	c := NewClient(backend, staticKeys{key: "k"}, ledger, fastOpts())

	_, err := c.Call(context.Background(), uuid.New(), Request{})
	require.Error(t, err)
	assert.Equal(t, int64(0), ledger.spend)
}

func TestClient_ConcurrentCallsRespectBudget(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req Request) (*Response, error) {
		return &Response{Content: "x", CostCents: 10}, nil
	}
	// Limit 50, estimate 10: at most 5 calls can ever fit.
	ledger := &memLedger{limit: 50}
	c := NewClient(backend, staticKeys{key: "k"}, ledger, fastOpts())

	var successes atomic.Int64
	var wg sync.WaitGroup
	workspaceID := uuid.New()
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Call(context.Background(), workspaceID, Request{}); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, successes.Load(), int64(5))
	assert.Greater(t, successes.Load(), int64(0))
}
