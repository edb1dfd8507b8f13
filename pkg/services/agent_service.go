package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/pkg/events"
)

// apiKeyPrefixLen is how many leading characters of a raw key are stored for
// display. Enough to tell keys apart in a list, useless for authentication.
const apiKeyPrefixLen = 8

// RegisterAgentInput contains the fields needed to register an agent.
type RegisterAgentInput struct {
	WorkspaceID uuid.UUID
	Name        string
	AgentType   registeredagent.AgentType
	RiskLevel   registeredagent.RiskLevel
	Description string
}

// RegisteredKey pairs a stored agent with the raw key generated for it. The
// raw key exists only in this return value; afterwards only the hash remains.
type RegisteredKey struct {
	Agent  *ent.RegisteredAgent
	RawKey string
}

// AgentService handles agent registration, credentials, and lifecycle.
type AgentService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, publisher *events.Publisher) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	return &AgentService{client: client, publisher: publisher}
}

// Register creates an agent with a freshly generated API key.
func (s *AgentService) Register(ctx context.Context, input RegisterAgentInput) (*RegisteredKey, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "agent name is required")
	}

	rawKey, keyHash, err := generateAPIKey()
	if err != nil {
		return nil, err
	}

	builder := s.client.RegisteredAgent.Create().
		SetWorkspaceID(input.WorkspaceID).
		SetName(input.Name).
		SetAPIKeyHash(keyHash).
		SetAPIKeyPrefix(rawKey[:apiKeyPrefixLen]).
		SetStatus(registeredagent.StatusActive)

	if input.AgentType != "" {
		builder.SetAgentType(input.AgentType)
	}
	if input.RiskLevel != "" {
		builder.SetRiskLevel(input.RiskLevel)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}

	agent, err := builder.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "register agent")
	}
	return &RegisteredKey{Agent: agent, RawKey: rawKey}, nil
}

// Get fetches an agent by ID.
func (s *AgentService) Get(ctx context.Context, id uuid.UUID) (*ent.RegisteredAgent, error) {
	agent, err := s.client.RegisteredAgent.Get(ctx, id)
	if err != nil {
		return nil, wrapEntError(err, "get agent")
	}
	return agent, nil
}

// SetStatus transitions an agent's lifecycle status. Revocation is terminal,
// and the only transition out of suspended is revoked.
func (s *AgentService) SetStatus(ctx context.Context, id uuid.UUID, next registeredagent.Status) (*ent.RegisteredAgent, error) {
	agent, err := s.client.RegisteredAgent.Get(ctx, id)
	if err != nil {
		return nil, wrapEntError(err, "get agent")
	}

	if !statusTransitionAllowed(agent.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, agent.Status, next)
	}

	updated, err := agent.Update().SetStatus(next).Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "update agent status")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAgentStatusChanged(ctx, events.AgentStatusChangedPayload{
			AgentID:     id.String(),
			WorkspaceID: agent.WorkspaceID.String(),
			Status:      string(next),
		}); err != nil {
			return nil, fmt.Errorf("failed to broadcast agent status change: %w", err)
		}
	}
	return updated, nil
}

// statusTransitionAllowed encodes the agent lifecycle: revoked is terminal,
// and a suspended agent cannot go straight back to active. Reinstatement is
// a review decision, not a status write, so the only way forward from
// suspended is revoked.
func statusTransitionAllowed(current, next registeredagent.Status) bool {
	if current == next {
		return true
	}
	switch current {
	case registeredagent.StatusActive:
		return next == registeredagent.StatusSuspended || next == registeredagent.StatusRevoked
	case registeredagent.StatusSuspended:
		return next == registeredagent.StatusRevoked
	case registeredagent.StatusRevoked:
		return false
	}
	return false
}

// RegenerateKey replaces the agent's API key, returning the new raw key once.
// The invalidation payload carries the old hash so caches can evict exactly
// the stale entry.
func (s *AgentService) RegenerateKey(ctx context.Context, id uuid.UUID) (*RegisteredKey, error) {
	agent, err := s.client.RegisteredAgent.Get(ctx, id)
	if err != nil {
		return nil, wrapEntError(err, "get agent")
	}
	if agent.Status == registeredagent.StatusRevoked {
		return nil, fmt.Errorf("%w: cannot regenerate key for a revoked agent", ErrInvalidTransition)
	}

	rawKey, keyHash, err := generateAPIKey()
	if err != nil {
		return nil, err
	}
	oldHash := agent.APIKeyHash

	updated, err := agent.Update().
		SetAPIKeyHash(keyHash).
		SetAPIKeyPrefix(rawKey[:apiKeyPrefixLen]).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "regenerate agent key")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAgentKeyRegenerated(ctx, events.AgentKeyRegeneratedPayload{
			AgentID:    id.String(),
			OldKeyHash: oldHash,
		}); err != nil {
			return nil, fmt.Errorf("failed to broadcast key regeneration: %w", err)
		}
	}
	return &RegisteredKey{Agent: updated, RawKey: rawKey}, nil
}

// Delete removes an agent and broadcasts the deletion for cache eviction.
func (s *AgentService) Delete(ctx context.Context, id uuid.UUID) error {
	agent, err := s.client.RegisteredAgent.Get(ctx, id)
	if err != nil {
		return wrapEntError(err, "get agent")
	}
	if err := s.client.RegisteredAgent.DeleteOneID(id).Exec(ctx); err != nil {
		return wrapEntError(err, "delete agent")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishAgentDeleted(ctx, events.AgentDeletedPayload{
			AgentID:     id.String(),
			WorkspaceID: agent.WorkspaceID.String(),
		}); err != nil {
			return fmt.Errorf("failed to broadcast agent deletion: %w", err)
		}
	}
	return nil
}

// Touch records activity on an agent: bumps the event counter and stamps
// last_seen_at. The counter uses an additive update so concurrent ingests
// cannot lose increments.
func (s *AgentService) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := s.client.RegisteredAgent.UpdateOneID(id).
		AddEventCount(1).
		SetLastSeenAt(at).
		Exec(ctx)
	return wrapEntError(err, "touch agent")
}

// generateAPIKey returns a fresh raw key and its SHA-256 hex hash. Keys are
// 32 random bytes hex encoded with a fixed prefix for grep-ability in client
// configs.
func generateAPIKey() (rawKey, keyHash string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate api key: %w", err)
	}
	rawKey = "ssk_" + hex.EncodeToString(buf)
	sum := sha256.Sum256([]byte(rawKey))
	return rawKey, hex.EncodeToString(sum[:]), nil
}

// HashAPIKey computes the stored hash for a presented raw key. Kept beside
// generateAPIKey so the two can never drift.
func HashAPIKey(rawKey string) string {
	sum := sha256.Sum256([]byte(rawKey))
	return hex.EncodeToString(sum[:])
}
