package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/pkg/events"
)

func TestAPIKeyCache_InvalidationHandlers(t *testing.T) {
	c := NewAPIKeyCache(nil, time.Minute)

	agentID := uuid.New()
	identity := &AgentIdentity{AgentID: agentID, WorkspaceID: uuid.New(), Name: "crawler", Status: "active"}
	c.store("hash-1", identity)
	require.Equal(t, 1, c.Len())

	t.Run("status change evicts by agent id", func(t *testing.T) {
		payload, _ := json.Marshal(events.AgentStatusChangedPayload{
			AgentID: agentID.String(), Status: "suspended",
		})
		c.onStatusChanged(payload)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("key regeneration drops the old hash", func(t *testing.T) {
		c.store("hash-old", identity)
		payload, _ := json.Marshal(events.AgentKeyRegeneratedPayload{
			AgentID: agentID.String(), OldKeyHash: "hash-old",
		})
		c.onKeyRegenerated(payload)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("deletion evicts by agent id", func(t *testing.T) {
		c.store("hash-2", identity)
		payload, _ := json.Marshal(events.AgentDeletedPayload{AgentID: agentID.String()})
		c.onAgentDeleted(payload)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("malformed payloads are ignored", func(t *testing.T) {
		c.store("hash-3", identity)
		c.onStatusChanged([]byte("{not json"))
		c.onKeyRegenerated([]byte("{not json"))
		c.onAgentDeleted([]byte("{not json"))
		assert.Equal(t, 1, c.Len())
	})
}
