package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/pkg/events"
)

// ErrKeyUnknown is returned when no agent matches the presented key hash.
// Callers must not distinguish this from other auth failures in responses.
var ErrKeyUnknown = errors.New("api key unknown")

// AgentIdentity is the cached projection of a registered agent, keyed by its
// API key hash. It carries everything the auth middleware needs so a cache
// hit costs no database round trip.
type AgentIdentity struct {
	AgentID     uuid.UUID
	WorkspaceID uuid.UUID
	Name        string
	AgentType   string
	Status      string
	RiskLevel   string
}

type apiKeyEntry struct {
	identity *AgentIdentity // nil for negative entries
	cachedAt time.Time
}

// APIKeyCache maps SHA-256 key hashes to agent identities. Positive entries
// live until an invalidation message removes them; negative entries (unknown
// keys) expire after negativeTTL so a newly registered key is picked up
// without a restart even if its notification is lost.
type APIKeyCache struct {
	client      *ent.Client
	negativeTTL time.Duration

	mu      sync.RWMutex
	byHash  map[string]*apiKeyEntry
	hashFor map[uuid.UUID]string // agent ID → key hash, for targeted invalidation
}

// NewAPIKeyCache creates the cache. negativeTTL bounds how long a miss is
// remembered.
func NewAPIKeyCache(client *ent.Client, negativeTTL time.Duration) *APIKeyCache {
	return &APIKeyCache{
		client:      client,
		negativeTTL: negativeTTL,
		byHash:      make(map[string]*apiKeyEntry),
		hashFor:     make(map[uuid.UUID]string),
	}
}

// Lookup resolves a key hash to an agent identity, consulting the database on
// a miss. Unknown hashes return ErrKeyUnknown and are negatively cached.
func (c *APIKeyCache) Lookup(ctx context.Context, keyHash string) (*AgentIdentity, error) {
	c.mu.RLock()
	entry, ok := c.byHash[keyHash]
	c.mu.RUnlock()

	if ok {
		if entry.identity != nil {
			return entry.identity, nil
		}
		if time.Since(entry.cachedAt) <= c.negativeTTL {
			return nil, ErrKeyUnknown
		}
		// Negative entry expired; fall through to reload.
	}

	agent, err := c.client.RegisteredAgent.Query().
		Where(registeredagent.APIKeyHash(keyHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.storeNegative(keyHash)
			return nil, ErrKeyUnknown
		}
		return nil, err
	}

	identity := &AgentIdentity{
		AgentID:     agent.ID,
		WorkspaceID: agent.WorkspaceID,
		Name:        agent.Name,
		AgentType:   string(agent.AgentType),
		Status:      string(agent.Status),
		RiskLevel:   string(agent.RiskLevel),
	}
	c.store(keyHash, identity)
	return identity, nil
}

// RegisterInvalidation subscribes the cache to agent lifecycle channels.
func (c *APIKeyCache) RegisterInvalidation(sub Subscriber) error {
	if err := sub.Subscribe(events.TopicAgentStatusChanged, c.onStatusChanged); err != nil {
		return err
	}
	if err := sub.Subscribe(events.TopicAgentKeyRegenerated, c.onKeyRegenerated); err != nil {
		return err
	}
	return sub.Subscribe(events.TopicAgentDeleted, c.onAgentDeleted)
}

func (c *APIKeyCache) onStatusChanged(payload []byte) {
	var msg events.AgentStatusChangedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed agent status payload, ignoring", "error", err)
		return
	}
	agentID, err := uuid.Parse(msg.AgentID)
	if err != nil {
		return
	}

	// Drop rather than patch: the next lookup reloads the full row, so the
	// cache cannot hold a partially stale identity.
	c.evictAgent(agentID)
}

func (c *APIKeyCache) onKeyRegenerated(payload []byte) {
	var msg events.AgentKeyRegeneratedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed key regeneration payload, ignoring", "error", err)
		return
	}

	c.mu.Lock()
	delete(c.byHash, msg.OldKeyHash)
	if agentID, err := uuid.Parse(msg.AgentID); err == nil {
		if h, ok := c.hashFor[agentID]; ok && h == msg.OldKeyHash {
			delete(c.hashFor, agentID)
		}
	}
	c.mu.Unlock()
}

func (c *APIKeyCache) onAgentDeleted(payload []byte) {
	var msg events.AgentDeletedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed agent deletion payload, ignoring", "error", err)
		return
	}
	if agentID, err := uuid.Parse(msg.AgentID); err == nil {
		c.evictAgent(agentID)
	}
}

func (c *APIKeyCache) store(keyHash string, identity *AgentIdentity) {
	c.mu.Lock()
	c.byHash[keyHash] = &apiKeyEntry{identity: identity, cachedAt: time.Now()}
	c.hashFor[identity.AgentID] = keyHash
	c.mu.Unlock()
}

func (c *APIKeyCache) storeNegative(keyHash string) {
	c.mu.Lock()
	c.byHash[keyHash] = &apiKeyEntry{cachedAt: time.Now()}
	c.mu.Unlock()
}

func (c *APIKeyCache) evictAgent(agentID uuid.UUID) {
	c.mu.Lock()
	if h, ok := c.hashFor[agentID]; ok {
		delete(c.byHash, h)
		delete(c.hashFor, agentID)
	}
	c.mu.Unlock()
}

// Len reports the number of cached entries, including negative ones.
func (c *APIKeyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byHash)
}
