package policy

import (
	"context"
	"log/slog"
	"time"
)

// Engine runs every applicable rule against an event and reduces the matches
// to a single action. Rules are independent: one evaluator failing (bad
// config, pathological pattern) is logged and skipped, never fatal for the
// event.
type Engine struct {
	counters *Counters
	patterns *patternCache
}

// NewEngine creates an engine sharing the given rate counters.
func NewEngine(counters *Counters) *Engine {
	return &Engine{
		counters: counters,
		patterns: newPatternCache(),
	}
}

// Evaluate runs all applicable rules and returns the most severe action among
// the matches. An event with no matches is allowed.
func (e *Engine) Evaluate(ctx context.Context, ev *Event, rules []Rule, detections []Detection) Result {
	start := time.Now()

	result := Result{Action: ActionAllow}
	blockCount, flagCount := 0, 0

	for i := range rules {
		rule := &rules[i]
		if !e.applies(rule, ev) {
			continue
		}
		result.EvaluatedCount++

		matched, detail, err := e.runRule(ctx, rule, ev, detections)
		if err != nil {
			result.FailedCount++
			slog.Warn("Rule evaluation failed, skipping rule",
				"workspace_id", ev.WorkspaceID,
				"rule_id", rule.ID,
				"rule_type", rule.Type,
				"error", err)
			continue
		}
		if !matched {
			continue
		}

		result.Matched = append(result.Matched, MatchedRule{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			RuleType: string(rule.Type),
			Action:   rule.Action,
			Detail:   detail,
		})
		switch rule.Action {
		case ActionBlock:
			blockCount++
		case ActionFlag:
			flagCount++
		}
		if rule.Action.severity() > result.Action.severity() {
			result.Action = rule.Action
		}
	}

	slog.Info("policy_engine.evaluate",
		"workspace_id", ev.WorkspaceID,
		"event_id", ev.EventID,
		"duration_us", time.Since(start).Microseconds(),
		"evaluated_count", result.EvaluatedCount,
		"block_count", blockCount,
		"flag_count", flagCount,
		"action", result.Action)

	return result
}

// applies checks the rule's event-type and agent-type filters. An empty
// filter matches everything.
func (e *Engine) applies(rule *Rule, ev *Event) bool {
	if len(rule.AppliesToEventTypes) > 0 && !contains(rule.AppliesToEventTypes, ev.EventType) {
		return false
	}
	if len(rule.AppliesToAgentTypes) > 0 && !contains(rule.AppliesToAgentTypes, ev.AgentType) {
		return false
	}
	return true
}

func (e *Engine) runRule(ctx context.Context, rule *Rule, ev *Event, detections []Detection) (bool, map[string]any, error) {
	switch rule.Type {
	case RuleRateLimit:
		return e.evalRateLimit(rule, ev)
	case RulePatternMatch:
		return e.evalPatternMatch(ctx, rule, ev, detections)
	case RuleBlocklist:
		return e.evalList(rule, ev, true)
	case RuleAllowlist:
		return e.evalList(rule, ev, false)
	case RulePayloadSize:
		return e.evalPayloadSize(rule, ev)
	case RuleCustom:
		// Placeholder kind: stored and listed, but never matches.
		return false, nil, nil
	default:
		return false, nil, errUnknownRuleType(rule.Type)
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
