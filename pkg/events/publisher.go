package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Publisher broadcasts internal events via pg_notify. All publishes are
// transient (NOTIFY only, no persistence); invalidation consumers fall back
// to TTL expiry or bulk refresh if a message is lost.
//
// Each public method accepts a specific typed payload struct (payloads.go).
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the shared database handle.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishAgentStatusChanged broadcasts an agents:status_changed invalidation.
func (p *Publisher) PublishAgentStatusChanged(ctx context.Context, payload AgentStatusChangedPayload) error {
	return p.notify(ctx, TopicAgentStatusChanged, payload)
}

// PublishAgentKeyRegenerated broadcasts an agents:key_regenerated invalidation.
func (p *Publisher) PublishAgentKeyRegenerated(ctx context.Context, payload AgentKeyRegeneratedPayload) error {
	return p.notify(ctx, TopicAgentKeyRegenerated, payload)
}

// PublishAgentDeleted broadcasts an agents:deleted invalidation.
func (p *Publisher) PublishAgentDeleted(ctx context.Context, payload AgentDeletedPayload) error {
	return p.notify(ctx, TopicAgentDeleted, payload)
}

// PublishPolicyRulesChanged broadcasts a policy-rule invalidation on the
// aggregate channel and mirrors it to the UI-facing per-workspace topic.
func (p *Publisher) PublishPolicyRulesChanged(ctx context.Context, workspaceID string) error {
	payload := RulesChangedPayload{WorkspaceID: workspaceID}
	if err := p.notify(ctx, TopicPolicyRulesChanged, payload); err != nil {
		return err
	}
	return p.notify(ctx, PolicyRulesTopic(workspaceID), payload)
}

// PublishDetectionRulesChanged broadcasts a detection-rule invalidation on the
// aggregate channel and mirrors it to the UI-facing per-workspace topic.
func (p *Publisher) PublishDetectionRulesChanged(ctx context.Context, workspaceID string) error {
	payload := RulesChangedPayload{WorkspaceID: workspaceID}
	if err := p.notify(ctx, TopicDetectionsChanged, payload); err != nil {
		return err
	}
	return p.notify(ctx, DetectionRulesTopic(workspaceID), payload)
}

// PublishPermissionsChanged broadcasts an auth:permissions_changed invalidation.
func (p *Publisher) PublishPermissionsChanged(ctx context.Context, payload PermissionsChangedPayload) error {
	return p.notify(ctx, TopicPermissionsChanged, payload)
}

// PublishLLMKeyChanged broadcasts an llm:key_changed invalidation.
func (p *Publisher) PublishLLMKeyChanged(ctx context.Context, workspaceID string) error {
	return p.notify(ctx, TopicLLMKeyChanged, LLMKeyChangedPayload{WorkspaceID: workspaceID})
}

// PublishDeliberationEvent broadcasts to deliberation:{session_id} and
// deliberations:{workspace_id}.
func (p *Publisher) PublishDeliberationEvent(ctx context.Context, workspaceID string, payload DeliberationEventPayload) error {
	if err := p.notify(ctx, DeliberationTopic(payload.SessionID), payload); err != nil {
		return err
	}
	return p.notify(ctx, DeliberationsTopic(workspaceID), payload)
}

// PublishGhostEvent broadcasts to ghost_protocol:session:{id} and
// ghost_protocol:{workspace_id}.
func (p *Publisher) PublishGhostEvent(ctx context.Context, workspaceID string, payload GhostEventPayload) error {
	if err := p.notify(ctx, GhostSessionTopic(payload.SessionID), payload); err != nil {
		return err
	}
	return p.notify(ctx, GhostWorkspaceTopic(workspaceID), payload)
}

// notify marshals the payload and issues pg_notify on the given channel.
func (p *Publisher) notify(ctx context.Context, channel string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", channel, err)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, string(payloadJSON)); err != nil {
		return fmt.Errorf("pg_notify failed on %s: %w", channel, err)
	}
	return nil
}
