package policy

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *Event {
	return &Event{
		EventID:      uuid.New(),
		WorkspaceID:  uuid.New(),
		AgentID:      uuid.New(),
		AgentName:    "crawler-7",
		AgentType:    "autonomous",
		EventType:    "tool_call",
		Severity:     "low",
		SourceIP:     "10.1.2.3",
		Content:      "fetching https://example.com",
		PayloadBytes: 128,
		ReceivedAt:   time.Now(),
	}
}

func blockRule(t RuleType, config map[string]any) Rule {
	return Rule{
		ID:     uuid.New(),
		Name:   "test-" + string(t),
		Type:   t,
		Action: ActionBlock,
		Config: config,
	}
}

func TestEngine_NoRulesAllows(t *testing.T) {
	e := NewEngine(NewCounters())
	result := e.Evaluate(context.Background(), testEvent(), nil, nil)
	assert.Equal(t, ActionAllow, result.Action)
	assert.Empty(t, result.Matched)
	assert.Equal(t, 0, result.EvaluatedCount)
}

func TestEngine_MostSevereActionWins(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	flagList := Rule{
		ID: uuid.New(), Name: "flag-ip", Type: RuleBlocklist, Action: ActionFlag,
		Config: map[string]any{"field": "source_ip", "values": []any{"10.1.2.3"}},
	}
	blockList := Rule{
		ID: uuid.New(), Name: "block-agent", Type: RuleBlocklist, Action: ActionBlock,
		Config: map[string]any{"field": "agent_name", "values": []any{"crawler-7"}},
	}

	result := e.Evaluate(context.Background(), ev, []Rule{flagList, blockList}, nil)
	assert.Equal(t, ActionBlock, result.Action)
	require.Len(t, result.Matched, 2)
	assert.Equal(t, 2, result.EvaluatedCount)
}

func TestEngine_AllRulesEvaluatedDespiteEarlyBlock(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rules := []Rule{
		blockRule(RuleBlocklist, map[string]any{"field": "event_type", "values": []any{"tool_call"}}),
		{
			ID: uuid.New(), Name: "flag-size", Type: RulePayloadSize, Action: ActionFlag,
			Config: map[string]any{"max_bytes": float64(16)},
		},
	}

	result := e.Evaluate(context.Background(), ev, rules, nil)
	assert.Equal(t, ActionBlock, result.Action)
	assert.Len(t, result.Matched, 2)
}

func TestEngine_BrokenRuleIsIsolated(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rules := []Rule{
		blockRule(RuleRateLimit, map[string]any{}), // missing required config
		blockRule(RuleBlocklist, map[string]any{"field": "agent_name", "values": []any{"crawler-7"}}),
	}

	result := e.Evaluate(context.Background(), ev, rules, nil)
	assert.Equal(t, ActionBlock, result.Action)
	assert.Len(t, result.Matched, 1)
	assert.Equal(t, 1, result.FailedCount)
}

func TestEngine_ApplicabilityFilters(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rule := blockRule(RuleBlocklist, map[string]any{"field": "agent_name", "values": []any{"crawler-7"}})
	rule.AppliesToEventTypes = []string{"llm_request"}

	result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionAllow, result.Action)
	assert.Equal(t, 0, result.EvaluatedCount)

	rule.AppliesToEventTypes = []string{"tool_call"}
	rule.AppliesToAgentTypes = []string{"supervised"}
	result = e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionAllow, result.Action)

	rule.AppliesToAgentTypes = []string{"autonomous"}
	result = e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionBlock, result.Action)
}

func TestEngine_CustomRuleNeverMatches(t *testing.T) {
	e := NewEngine(NewCounters())
	result := e.Evaluate(context.Background(), testEvent(), []Rule{
		blockRule(RuleCustom, map[string]any{"anything": "goes"}),
	}, nil)
	assert.Equal(t, ActionAllow, result.Action)
	assert.Equal(t, 1, result.EvaluatedCount)
	assert.Equal(t, 0, result.FailedCount)
}

func TestEngine_MatchedRuleExposesNoConfig(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rule := blockRule(RuleBlocklist, map[string]any{"field": "agent_name", "values": []any{"crawler-7"}})
	result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	require.Len(t, result.Matched, 1)

	m := result.Matched[0]
	assert.Equal(t, rule.ID, m.RuleID)
	assert.Equal(t, "test-blocklist", m.RuleName)
	assert.Equal(t, "blocklist", m.RuleType)
	assert.Equal(t, ActionBlock, m.Action)
	assert.NotContains(t, m.Detail, "values")
}

func TestRateLimit_PerAgentWindow(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rule := Rule{
		ID: uuid.New(), Name: "rl", Type: RuleRateLimit, Action: ActionBlock,
		Config: map[string]any{"max_events": float64(3), "window_seconds": float64(60)},
	}

	for i := 0; i < 3; i++ {
		result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
		assert.Equal(t, ActionAllow, result.Action, "event %d should pass", i+1)
	}
	result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionBlock, result.Action)

	// A different agent has its own window.
	other := testEvent()
	other.WorkspaceID = ev.WorkspaceID
	result = e.Evaluate(context.Background(), other, []Rule{rule}, nil)
	assert.Equal(t, ActionAllow, result.Action)
}

func TestRateLimit_WorkspaceScopeSharesWindow(t *testing.T) {
	e := NewEngine(NewCounters())

	rule := Rule{
		ID: uuid.New(), Name: "rl-ws", Type: RuleRateLimit, Action: ActionFlag,
		Config: map[string]any{"max_events": float64(2), "window_seconds": float64(60), "per": "workspace"},
	}

	workspaceID := uuid.New()
	for i := 0; i < 2; i++ {
		ev := testEvent()
		ev.WorkspaceID = workspaceID
		result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
		assert.Equal(t, ActionAllow, result.Action)
	}
	ev := testEvent()
	ev.WorkspaceID = workspaceID
	result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionFlag, result.Action)
}

func TestRateLimit_UnknownScopeDefaultsToAgent(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rule := Rule{
		ID: uuid.New(), Name: "rl-bad", Type: RuleRateLimit, Action: ActionBlock,
		Config: map[string]any{"max_events": float64(1), "window_seconds": float64(60), "per": "planet"},
	}

	result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionAllow, result.Action)
	result = e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
	assert.Equal(t, ActionBlock, result.Action)
	assert.Equal(t, "agent", result.Matched[0].Detail["scope"])
	assert.NotContains(t, result.Matched[0].Detail, "max_events")
	assert.NotContains(t, result.Matched[0].Detail, "window_seconds")
}

func TestRateLimit_ScopeAliasStillHonored(t *testing.T) {
	e := NewEngine(NewCounters())

	rule := Rule{
		ID: uuid.New(), Name: "rl-legacy", Type: RuleRateLimit, Action: ActionFlag,
		Config: map[string]any{"max_events": float64(1), "window_seconds": float64(60), "scope": "workspace"},
	}

	workspaceID := uuid.New()
	first := testEvent()
	first.WorkspaceID = workspaceID
	result := e.Evaluate(context.Background(), first, []Rule{rule}, nil)
	assert.Equal(t, ActionAllow, result.Action)

	// A different agent in the same workspace shares the window.
	second := testEvent()
	second.WorkspaceID = workspaceID
	result = e.Evaluate(context.Background(), second, []Rule{rule}, nil)
	assert.Equal(t, ActionFlag, result.Action)
}

func TestRateLimit_MaxEventsClamped(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent()

	rule := blockRule(RuleRateLimit, map[string]any{
		"max_events":     float64(10_000_000),
		"window_seconds": float64(3600),
	})

	for i := 0; i < maxEventsCeiling; i++ {
		matched, _, err := e.evalRateLimit(&rule, ev)
		require.NoError(t, err)
		require.False(t, matched)
	}
	matched, detail, err := e.evalRateLimit(&rule, ev)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, int64(maxEventsCeiling+1), detail["count"])
}

func TestPayloadSize_ContentAndPayloadCeilings(t *testing.T) {
	e := NewEngine(NewCounters())
	ev := testEvent() // content 28 bytes, payload 128 bytes

	t.Run("content ceiling", func(t *testing.T) {
		rule := blockRule(RulePayloadSize, map[string]any{"max_content_bytes": float64(10)})
		matched, detail, err := e.evalPayloadSize(&rule, ev)
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, len(ev.Content), detail["content_bytes"])
		assert.NotContains(t, detail, "payload_bytes")
		assert.NotContains(t, detail, "max_content_bytes")
	})

	t.Run("payload ceiling alone passes a small payload", func(t *testing.T) {
		rule := blockRule(RulePayloadSize, map[string]any{"max_payload_bytes": float64(1024)})
		matched, _, err := e.evalPayloadSize(&rule, ev)
		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("both ceilings report only the exceeded one", func(t *testing.T) {
		rule := blockRule(RulePayloadSize, map[string]any{
			"max_content_bytes": float64(4096),
			"max_payload_bytes": float64(64),
		})
		matched, detail, err := e.evalPayloadSize(&rule, ev)
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, ev.PayloadBytes, detail["payload_bytes"])
		assert.NotContains(t, detail, "content_bytes")
	})

	t.Run("max_bytes is a payload alias", func(t *testing.T) {
		rule := blockRule(RulePayloadSize, map[string]any{"max_bytes": float64(64)})
		matched, detail, err := e.evalPayloadSize(&rule, ev)
		require.NoError(t, err)
		assert.True(t, matched)
		assert.Equal(t, ev.PayloadBytes, detail["payload_bytes"])
	})

	t.Run("no ceiling is a config error", func(t *testing.T) {
		rule := blockRule(RulePayloadSize, map[string]any{})
		result := e.Evaluate(context.Background(), ev, []Rule{rule}, nil)
		assert.Equal(t, ActionAllow, result.Action)
		assert.Equal(t, 1, result.FailedCount)
	})
}
