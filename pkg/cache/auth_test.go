package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/pkg/events"
)

func TestAuthCache_MemoizesLoader(t *testing.T) {
	var calls atomic.Int64
	loader := func(ctx context.Context, userID, workspaceID string) ([]string, error) {
		calls.Add(1)
		return []string{"events:read"}, nil
	}
	c := NewAuthCache(loader, time.Minute)

	for i := 0; i < 3; i++ {
		perms, err := c.Permissions(context.Background(), "u1", "w1")
		require.NoError(t, err)
		assert.Equal(t, []string{"events:read"}, perms)
	}
	assert.Equal(t, int64(1), calls.Load())

	// A different user is a separate entry.
	_, err := c.Permissions(context.Background(), "u2", "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestAuthCache_ExpiredEntryReloads(t *testing.T) {
	var calls atomic.Int64
	loader := func(ctx context.Context, userID, workspaceID string) ([]string, error) {
		calls.Add(1)
		return nil, nil
	}
	c := NewAuthCache(loader, time.Nanosecond)

	_, err := c.Permissions(context.Background(), "u1", "w1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = c.Permissions(context.Background(), "u1", "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestAuthCache_LoaderErrorNotCached(t *testing.T) {
	var calls atomic.Int64
	loader := func(ctx context.Context, userID, workspaceID string) ([]string, error) {
		calls.Add(1)
		return nil, errors.New("db down")
	}
	c := NewAuthCache(loader, time.Minute)

	_, err := c.Permissions(context.Background(), "u1", "w1")
	require.Error(t, err)
	_, err = c.Permissions(context.Background(), "u1", "w1")
	require.Error(t, err)
	assert.Equal(t, int64(2), calls.Load())
	assert.Equal(t, 0, c.Len())
}

func TestAuthCache_InvalidationScopes(t *testing.T) {
	loader := func(ctx context.Context, userID, workspaceID string) ([]string, error) {
		return []string{"admin"}, nil
	}
	c := NewAuthCache(loader, time.Hour)

	ctx := context.Background()
	_, _ = c.Permissions(ctx, "u1", "w1")
	_, _ = c.Permissions(ctx, "u2", "w1")
	_, _ = c.Permissions(ctx, "u1", "w2")
	require.Equal(t, 3, c.Len())

	userPayload, _ := json.Marshal(events.PermissionsChangedPayload{
		Scope: events.ScopeUser, UserID: "u1", WorkspaceID: "w1",
	})
	c.onPermissionsChanged(userPayload)
	assert.Equal(t, 2, c.Len())

	wsPayload, _ := json.Marshal(events.PermissionsChangedPayload{
		Scope: events.ScopeWorkspace, WorkspaceID: "w1",
	})
	c.onPermissionsChanged(wsPayload)
	assert.Equal(t, 1, c.Len())

	// Unknown scope is ignored.
	badPayload, _ := json.Marshal(events.PermissionsChangedPayload{
		Scope: "galaxy", WorkspaceID: "w2",
	})
	c.onPermissionsChanged(badPayload)
	assert.Equal(t, 1, c.Len())
}
