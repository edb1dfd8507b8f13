package deliberation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/pkg/llm"
)

type staticKeys struct{}

func (staticKeys) Key(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	return "test-key", nil
}

func fanOutSession(backend llm.Backend, timeout time.Duration) *Session {
	client := llm.NewClient(backend, staticKeys{}, nil, llm.Options{
		MaxAttempts: 1,
		BackoffBase: time.Millisecond,
	})
	return &Session{
		workspaceID: uuid.New(),
		deps:        Dependencies{LLM: client},
		opts:        Options{Timeout: timeout}.withDefaults(),
	}
}

// Agents still in flight when the phase deadline fires must come back as
// timed-out results, and completions that beat the deadline must not be lost.
// Without that, their instance rows would sit in running forever.
func TestFanOut_DeadlineMarksStragglersTimedOut(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req llm.Request) (*llm.Response, error) {
		if req.Model == "fast" {
			return &llm.Response{Content: "VOTE: ALLOW", TokensUsed: 10, CostCents: 1}, nil
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	s := fanOutSession(backend, 100*time.Millisecond)

	calls := []llm.Request{{Model: "stuck"}, {Model: "fast"}, {Model: "stuck"}}
	results := s.fanOut(context.Background(), calls, []int{0, 1, 2})

	require.Len(t, results, 3, "every agent must get a result")
	byIndex := make(map[int]agentResult, len(results))
	for _, res := range results {
		require.NotContains(t, byIndex, res.index, "one result per agent")
		byIndex[res.index] = res
	}

	assert.NoError(t, byIndex[1].err)
	assert.Equal(t, "VOTE: ALLOW", byIndex[1].content)

	for _, idx := range []int{0, 2} {
		res := byIndex[idx]
		assert.Error(t, res.err, "agent %d", idx)
		assert.True(t, res.timedOut, "agent %d", idx)
	}
}

func TestFanOut_AllAgentsFinishBeforeDeadline(t *testing.T) {
	backend := func(ctx context.Context, apiKey string, req llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: fmt.Sprintf("answer from %s", req.Model)}, nil
	}
	s := fanOutSession(backend, 5*time.Second)

	calls := []llm.Request{{Model: "a"}, {Model: "b"}}
	results := s.fanOut(context.Background(), calls, []int{0, 1})

	require.Len(t, results, 2)
	for _, res := range results {
		assert.NoError(t, res.err)
		assert.False(t, res.timedOut)
	}
}
