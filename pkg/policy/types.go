// Package policy evaluates workspace rules against incoming agent events.
// Evaluation is pure with respect to storage: rules and detections arrive as
// snapshots from the cache layer, and the only mutable state is the in-memory
// rate counters.
package policy

import (
	"time"

	"github.com/google/uuid"
)

// Action is a rule's disposition for a matching event.
type Action string

const (
	ActionAllow Action = "allow"
	ActionFlag  Action = "flag"
	ActionBlock Action = "block"
)

// severity ranks actions for the final verdict. Block beats flag beats allow.
func (a Action) severity() int {
	switch a {
	case ActionBlock:
		return 2
	case ActionFlag:
		return 1
	default:
		return 0
	}
}

// RuleType identifies the evaluator a rule runs through.
type RuleType string

const (
	RuleRateLimit    RuleType = "rate_limit"
	RulePatternMatch RuleType = "pattern_match"
	RuleBlocklist    RuleType = "blocklist"
	RuleAllowlist    RuleType = "allowlist"
	RulePayloadSize  RuleType = "payload_size"
	RuleCustom       RuleType = "custom"
)

// Rule is the evaluator-facing view of a policy rule.
type Rule struct {
	ID                  uuid.UUID
	Name                string
	Type                RuleType
	Action              Action
	Priority            int
	Config              map[string]any
	AppliesToEventTypes []string
	AppliesToAgentTypes []string
}

// Detection is the evaluator-facing view of a detection rule, referenced by
// pattern_match policy rules.
type Detection struct {
	ID       uuid.UUID
	Name     string
	Type     string // "regex" or "keyword"
	Pattern  string
	Keywords []string
}

// Event is the snapshot of an incoming event that evaluators see. Evaluators
// never receive the persisted entity, so they cannot mutate it.
type Event struct {
	EventID      uuid.UUID
	WorkspaceID  uuid.UUID
	AgentID      uuid.UUID
	AgentName    string
	AgentType    string
	EventType    string
	Severity     string
	SourceIP     string
	Content      string
	PayloadBytes int
	ReceivedAt   time.Time
}

// MatchedRule is one rule that fired. Only identifying fields and the rule's
// action are exposed; rule configuration never leaves the engine.
type MatchedRule struct {
	RuleID   uuid.UUID      `json:"rule_id"`
	RuleName string         `json:"rule_name"`
	RuleType string         `json:"rule_type"`
	Action   Action         `json:"action"`
	Detail   map[string]any `json:"detail,omitempty"`
}

// Result is the outcome of evaluating every applicable rule.
type Result struct {
	Action         Action        `json:"action"`
	Matched        []MatchedRule `json:"matched_rules"`
	EvaluatedCount int           `json:"evaluated_count"`
	FailedCount    int           `json:"failed_count,omitempty"`
}
