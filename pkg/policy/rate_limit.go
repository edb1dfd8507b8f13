package policy

import (
	"fmt"
	"log/slog"
)

// Rate limit scopes. An unknown scope falls back to per-agent, the stricter
// of the two, with a warning.
const (
	ScopeAgent     = "agent"
	ScopeWorkspace = "workspace"
)

// maxEventsCeiling caps max_events; larger configured values are clamped.
const maxEventsCeiling = 1_000_000

// evalRateLimit counts the event against its (rule, scope) window and matches
// once the count exceeds max_events. The triggering event is itself counted,
// so a limit of N lets exactly N events through per window. The scope key is
// per; scope is accepted as a legacy alias.
func (e *Engine) evalRateLimit(rule *Rule, ev *Event) (bool, map[string]any, error) {
	maxEvents, err := configInt(rule.Config, "max_events")
	if err != nil {
		return false, nil, err
	}
	if maxEvents < 1 {
		return false, nil, fmt.Errorf("%w: max_events must be >= 1", ErrBadConfigValue)
	}
	if maxEvents > maxEventsCeiling {
		maxEvents = maxEventsCeiling
	}
	windowSeconds, err := configInt(rule.Config, "window_seconds")
	if err != nil {
		return false, nil, err
	}
	if windowSeconds < 1 {
		return false, nil, fmt.Errorf("%w: window_seconds must be >= 1", ErrBadConfigValue)
	}
	scope, err := configString(rule.Config, "per", "")
	if err != nil {
		return false, nil, err
	}
	if scope == "" {
		if scope, err = configString(rule.Config, "scope", ScopeAgent); err != nil {
			return false, nil, err
		}
	}

	var scopeID string
	switch scope {
	case ScopeAgent:
		scopeID = ev.AgentID.String()
	case ScopeWorkspace:
		scopeID = ev.WorkspaceID.String()
	default:
		slog.Warn("Unknown rate limit scope, defaulting to agent",
			"rule_id", rule.ID,
			"scope", scope)
		scope = ScopeAgent
		scopeID = ev.AgentID.String()
	}

	count := e.counters.Increment(rule.ID.String(), scope, scopeID, windowSeconds, ev.ReceivedAt)
	if count <= maxEvents {
		return false, nil, nil
	}
	// Detail reports what was observed, never the configured limits.
	return true, map[string]any{
		"scope": scope,
		"count": count,
	}, nil
}
