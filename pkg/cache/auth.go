package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/swarmshield/swarmshield/pkg/events"
)

// PermissionLoader resolves a user's permissions within a workspace from the
// source of truth (workspace membership settings).
type PermissionLoader func(ctx context.Context, userID, workspaceID string) ([]string, error)

type authEntry struct {
	permissions []string
	cachedAt    time.Time
}

// AuthCache memoizes dashboard permission lookups. Entries expire after the
// TTL and are also dropped eagerly when a permissions_changed notification
// arrives, scoped to one user or a whole workspace.
//
// Expired entries are cleaned up lazily on Get, same as the rule and key
// caches; there is no sweeper goroutine.
type AuthCache struct {
	loader PermissionLoader
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[authKey]*authEntry
}

type authKey struct {
	userID      string
	workspaceID string
}

// NewAuthCache creates the cache around the given loader.
func NewAuthCache(loader PermissionLoader, ttl time.Duration) *AuthCache {
	return &AuthCache{
		loader:  loader,
		ttl:     ttl,
		entries: make(map[authKey]*authEntry),
	}
}

// Permissions returns the user's permissions in the workspace, loading on a
// miss or after expiry.
func (c *AuthCache) Permissions(ctx context.Context, userID, workspaceID string) ([]string, error) {
	key := authKey{userID: userID, workspaceID: workspaceID}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		if time.Since(entry.cachedAt) <= c.ttl {
			return entry.permissions, nil
		}
		c.mu.Lock()
		if current, stillThere := c.entries[key]; stillThere && time.Since(current.cachedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}

	permissions, err := c.loader(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = &authEntry{permissions: permissions, cachedAt: time.Now()}
	c.mu.Unlock()
	return permissions, nil
}

// RegisterInvalidation subscribes the cache to the permissions channel.
func (c *AuthCache) RegisterInvalidation(sub Subscriber) error {
	return sub.Subscribe(events.TopicPermissionsChanged, c.onPermissionsChanged)
}

func (c *AuthCache) onPermissionsChanged(payload []byte) {
	var msg events.PermissionsChangedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed permissions payload, ignoring", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	switch msg.Scope {
	case events.ScopeUser:
		delete(c.entries, authKey{userID: msg.UserID, workspaceID: msg.WorkspaceID})
	case events.ScopeWorkspace:
		for key := range c.entries {
			if key.workspaceID == msg.WorkspaceID {
				delete(c.entries, key)
			}
		}
	default:
		slog.Warn("Unknown permissions invalidation scope, ignoring", "scope", msg.Scope)
	}
}

// Len reports the number of cached entries.
func (c *AuthCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
