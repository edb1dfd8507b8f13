package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/workspace"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/crypto"
	"github.com/swarmshield/swarmshield/pkg/events"
)

// Workspace settings keys read by this service. Settings is free-form JSON;
// only these keys have meaning to the server.
const (
	SettingMembers     = "members" // map[userID] -> []permission
	SettingBudgetCents = "llm_budget_limit_cents"
)

// WorkspaceService handles tenant lifecycle and tenant-scoped settings.
type WorkspaceService struct {
	client    *ent.Client
	keybox    *crypto.Keybox
	publisher *events.Publisher
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client, keybox *crypto.Keybox, publisher *events.Publisher) *WorkspaceService {
	if client == nil {
		panic("NewWorkspaceService: client must not be nil")
	}
	return &WorkspaceService{client: client, keybox: keybox, publisher: publisher}
}

// Create provisions a new workspace in active status.
func (s *WorkspaceService) Create(ctx context.Context, name string) (*ent.Workspace, error) {
	if name == "" {
		return nil, NewValidationError("name", "workspace name is required")
	}

	ws, err := s.client.Workspace.Create().
		SetName(name).
		SetStatus(workspace.StatusActive).
		SetSettings(map[string]interface{}{}).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "create workspace")
	}
	return ws, nil
}

// Get fetches a workspace by ID.
func (s *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.Get(ctx, id)
	if err != nil {
		return nil, wrapEntError(err, "get workspace")
	}
	return ws, nil
}

// SetStatus moves a workspace between active, suspended, and archived.
func (s *WorkspaceService) SetStatus(ctx context.Context, id uuid.UUID, status workspace.Status) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.UpdateOneID(id).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "update workspace status")
	}
	return ws, nil
}

// SetLLMKey seals the raw provider key into workspace settings and broadcasts
// the change so cached plaintext copies are dropped. The raw key is never
// persisted or logged.
func (s *WorkspaceService) SetLLMKey(ctx context.Context, id uuid.UUID, rawKey string) error {
	if rawKey == "" {
		return NewValidationError("api_key", "llm api key is required")
	}
	sealed, err := s.keybox.Seal(rawKey)
	if err != nil {
		return fmt.Errorf("failed to seal llm key: %w", err)
	}

	ws, err := s.client.Workspace.Get(ctx, id)
	if err != nil {
		return wrapEntError(err, "get workspace")
	}

	settings := cloneSettings(ws.Settings)
	settings[cache.SettingLLMKeyEncrypted] = sealed

	if _, err := s.client.Workspace.UpdateOneID(id).SetSettings(settings).Save(ctx); err != nil {
		return wrapEntError(err, "update workspace settings")
	}

	if s.publisher != nil {
		if err := s.publisher.PublishLLMKeyChanged(ctx, id.String()); err != nil {
			return fmt.Errorf("failed to broadcast llm key change: %w", err)
		}
	}
	return nil
}

// MemberPermissions resolves a user's permissions from workspace settings.
// It backs the dashboard permission cache loader. Unknown users get no
// permissions, not an error.
func (s *WorkspaceService) MemberPermissions(ctx context.Context, userID, workspaceID string) ([]string, error) {
	id, err := uuid.Parse(workspaceID)
	if err != nil {
		return nil, NewValidationError("workspace_id", "must be a valid UUID")
	}
	ws, err := s.client.Workspace.Get(ctx, id)
	if err != nil {
		return nil, wrapEntError(err, "get workspace")
	}

	members, ok := ws.Settings[SettingMembers].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	rawPerms, ok := members[userID].([]interface{})
	if !ok {
		return nil, nil
	}

	perms := make([]string, 0, len(rawPerms))
	for _, p := range rawPerms {
		if perm, ok := p.(string); ok {
			perms = append(perms, perm)
		}
	}
	return perms, nil
}

// BudgetCents returns the workspace's LLM budget limit, or fallback when no
// explicit limit is configured.
func (s *WorkspaceService) BudgetCents(ctx context.Context, id uuid.UUID, fallback int64) (int64, error) {
	ws, err := s.client.Workspace.Get(ctx, id)
	if err != nil {
		return 0, wrapEntError(err, "get workspace")
	}
	switch v := ws.Settings[SettingBudgetCents].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return fallback, nil
	}
}

func cloneSettings(settings map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(settings)+1)
	for k, v := range settings {
		out[k] = v
	}
	return out
}
