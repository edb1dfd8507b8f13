package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/pkg/crypto"
	"github.com/swarmshield/swarmshield/pkg/events"
)

// SettingLLMKeyEncrypted is the workspace settings key holding the sealed
// LLM API key.
const SettingLLMKeyEncrypted = "llm_api_key_encrypted"

// ErrLLMKeyNotConfigured is returned when a workspace has no LLM key set.
var ErrLLMKeyNotConfigured = errors.New("llm api key not configured")

// LLMKeyStore caches decrypted per-workspace LLM API keys. Decryption happens
// once per workspace; invalidation drops the plaintext so a rotated key is
// re-fetched and re-opened on next use.
type LLMKeyStore struct {
	client *ent.Client
	keybox *crypto.Keybox

	mu   sync.RWMutex
	keys map[uuid.UUID]string
}

// NewLLMKeyStore creates the store.
func NewLLMKeyStore(client *ent.Client, keybox *crypto.Keybox) *LLMKeyStore {
	return &LLMKeyStore{
		client: client,
		keybox: keybox,
		keys:   make(map[uuid.UUID]string),
	}
}

// Key returns the workspace's decrypted LLM API key.
func (s *LLMKeyStore) Key(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	s.mu.RLock()
	key, ok := s.keys[workspaceID]
	s.mu.RUnlock()
	if ok {
		return key, nil
	}

	ws, err := s.client.Workspace.Get(ctx, workspaceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrLLMKeyNotConfigured
		}
		return "", err
	}

	sealed, ok := ws.Settings[SettingLLMKeyEncrypted].(string)
	if !ok || sealed == "" {
		return "", ErrLLMKeyNotConfigured
	}

	key, err = s.keybox.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt llm key for workspace %s: %w", workspaceID, err)
	}

	s.mu.Lock()
	s.keys[workspaceID] = key
	s.mu.Unlock()
	return key, nil
}

// RegisterInvalidation subscribes the store to the key change channel.
func (s *LLMKeyStore) RegisterInvalidation(sub Subscriber) error {
	return sub.Subscribe(events.TopicLLMKeyChanged, s.onKeyChanged)
}

func (s *LLMKeyStore) onKeyChanged(payload []byte) {
	var msg events.LLMKeyChangedPayload
	if err := json.Unmarshal(payload, &msg); err != nil {
		slog.Warn("Malformed llm key payload, ignoring", "error", err)
		return
	}
	workspaceID, err := uuid.Parse(msg.WorkspaceID)
	if err != nil {
		return
	}

	s.mu.Lock()
	delete(s.keys, workspaceID)
	s.mu.Unlock()
}
