package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/events"
	"github.com/swarmshield/swarmshield/pkg/services"
	testdb "github.com/swarmshield/swarmshield/test/database"
)

// TestAPIKeyCache_CrossReplicaInvalidation runs two database clients against
// one shared schema: replica A mutates agents and publishes NOTIFY, replica B
// holds the cache and a LISTEN connection. Changes on A must evict B's
// entries without any shared process state.
func TestAPIKeyCache_CrossReplicaInvalidation(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	replicaA := shared.NewClient(t)
	replicaB := shared.NewClient(t)
	ctx := context.Background()

	agentSvc := services.NewAgentService(replicaA.Client, events.NewPublisher(replicaA.DB()))
	ws, err := services.NewWorkspaceService(replicaA.Client, nil, nil).Create(ctx, "acme")
	require.NoError(t, err)

	keyCache := cache.NewAPIKeyCache(replicaB.Client, time.Minute)
	listener := events.NewListener(shared.ConnString())
	require.NoError(t, keyCache.RegisterInvalidation(listener))
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	reg, err := agentSvc.Register(ctx, services.RegisterAgentInput{
		WorkspaceID: ws.ID,
		Name:        "crawler-1",
	})
	require.NoError(t, err)
	keyHash := services.HashAPIKey(reg.RawKey)

	identity, err := keyCache.Lookup(ctx, keyHash)
	require.NoError(t, err)
	assert.Equal(t, "active", identity.Status)

	t.Run("status change on A reaches B", func(t *testing.T) {
		_, err := agentSvc.SetStatus(ctx, reg.Agent.ID, registeredagent.StatusSuspended)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			id, err := keyCache.Lookup(ctx, keyHash)
			return err == nil && id.Status == "suspended"
		}, 10*time.Second, 50*time.Millisecond, "cache should reload the suspended row after eviction")
	})

	t.Run("key regeneration evicts the old hash", func(t *testing.T) {
		fresh, err := agentSvc.RegenerateKey(ctx, reg.Agent.ID)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			_, err := keyCache.Lookup(ctx, keyHash)
			return errors.Is(err, cache.ErrKeyUnknown)
		}, 10*time.Second, 50*time.Millisecond, "old hash should stop resolving")

		id, err := keyCache.Lookup(ctx, services.HashAPIKey(fresh.RawKey))
		require.NoError(t, err)
		assert.Equal(t, reg.Agent.ID, id.AgentID)
	})

	t.Run("deletion on A evicts on B", func(t *testing.T) {
		victim, err := agentSvc.Register(ctx, services.RegisterAgentInput{
			WorkspaceID: ws.ID,
			Name:        "doomed",
		})
		require.NoError(t, err)
		victimHash := services.HashAPIKey(victim.RawKey)

		_, err = keyCache.Lookup(ctx, victimHash)
		require.NoError(t, err)

		require.NoError(t, agentSvc.Delete(ctx, victim.Agent.ID))
		require.Eventually(t, func() bool {
			_, err := keyCache.Lookup(ctx, victimHash)
			return errors.Is(err, cache.ErrKeyUnknown)
		}, 10*time.Second, 50*time.Millisecond)
	})
}
