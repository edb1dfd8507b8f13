package events

// AgentStatusChangedPayload invalidates one API-key cache entry after an
// agent status transition.
type AgentStatusChangedPayload struct {
	AgentID     string `json:"agent_id"`
	WorkspaceID string `json:"workspace_id"`
	Status      string `json:"status"`
}

// AgentKeyRegeneratedPayload carries the prior key hash so the stale cache
// entry can be dropped without a full reload. Never the raw key.
type AgentKeyRegeneratedPayload struct {
	AgentID    string `json:"agent_id"`
	OldKeyHash string `json:"old_key_hash"`
}

// AgentDeletedPayload invalidates all cache entries for a deleted agent.
type AgentDeletedPayload struct {
	AgentID     string `json:"agent_id"`
	WorkspaceID string `json:"workspace_id"`
}

// RulesChangedPayload requests a debounced per-workspace rule reload.
type RulesChangedPayload struct {
	WorkspaceID string `json:"workspace_id"`
}

// PermissionsChangedPayload invalidates permission cache entries. Scope is
// either "user" (one user in one workspace) or "workspace" (everyone in it).
type PermissionsChangedPayload struct {
	Scope       string `json:"scope"`
	UserID      string `json:"user_id,omitempty"`
	WorkspaceID string `json:"workspace_id"`
}

// Permission invalidation scopes.
const (
	ScopeUser      = "user"
	ScopeWorkspace = "workspace"
)

// LLMKeyChangedPayload invalidates one workspace's decrypted LLM key.
type LLMKeyChangedPayload struct {
	WorkspaceID string `json:"workspace_id"`
}

// DeliberationEventPayload is broadcast to the per-session and per-workspace
// deliberation topics during orchestration.
type DeliberationEventPayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Deliberation broadcast types.
const (
	DeliberationAnalysisComplete = "analysis_complete"
	DeliberationRoundComplete    = "deliberation_round_complete"
	DeliberationVerdictReached   = "verdict_reached"
)

// GhostEventPayload is broadcast to the Ghost Protocol topics around a wipe.
type GhostEventPayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Ghost Protocol broadcast types.
const (
	GhostWipeStarted   = "wipe_started"
	GhostWipeCompleted = "wipe_completed"
)
