// Package events provides internal PubSub over PostgreSQL NOTIFY/LISTEN.
// Delivery is best-effort and per-topic in-order per subscriber; consumers
// must tolerate duplicate and out-of-order messages.
//
// Two kinds of topics exist:
//
//   - Aggregate topics (constants below) carry cache-invalidation messages.
//     Internal consumers LISTEN on these; the scoping key (workspace_id,
//     agent_id, ...) travels in the payload because PostgreSQL LISTEN has
//     no wildcard channels.
//
//   - Scoped topics (the *Topic helper funcs) carry UI-facing broadcasts
//     for one session or workspace. They are NOTIFY-only fan-out channels;
//     nothing inside the server subscribes to them.
//
// Payloads never contain raw API keys, raw rule configs, detection patterns,
// or passwords.
package events

import "fmt"

// Aggregate invalidation topics.
const (
	TopicAgentStatusChanged  = "agents:status_changed"
	TopicAgentKeyRegenerated = "agents:key_regenerated"
	TopicAgentDeleted        = "agents:deleted"
	TopicPolicyRulesChanged  = "policy_rules_changed"
	TopicDetectionsChanged   = "detection_rules_changed"
	TopicPermissionsChanged  = "auth:permissions_changed"
	TopicLLMKeyChanged       = "llm:key_changed"
)

// PolicyRulesTopic is the UI-facing per-workspace policy rule topic.
func PolicyRulesTopic(workspaceID string) string {
	return fmt.Sprintf("policy_rules:%s", workspaceID)
}

// DetectionRulesTopic is the UI-facing per-workspace detection rule topic.
func DetectionRulesTopic(workspaceID string) string {
	return fmt.Sprintf("detection_rules:%s", workspaceID)
}

// DeliberationTopic is the per-session deliberation broadcast topic.
func DeliberationTopic(sessionID string) string {
	return fmt.Sprintf("deliberation:%s", sessionID)
}

// DeliberationsTopic is the per-workspace deliberation broadcast topic.
func DeliberationsTopic(workspaceID string) string {
	return fmt.Sprintf("deliberations:%s", workspaceID)
}

// GhostSessionTopic is the per-session Ghost Protocol broadcast topic.
func GhostSessionTopic(sessionID string) string {
	return fmt.Sprintf("ghost_protocol:session:%s", sessionID)
}

// GhostWorkspaceTopic is the per-workspace Ghost Protocol broadcast topic.
func GhostWorkspaceTopic(workspaceID string) string {
	return fmt.Sprintf("ghost_protocol:%s", workspaceID)
}
