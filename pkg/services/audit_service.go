package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
)

// RedactedValue replaces metadata values whose keys look credential-bearing.
const RedactedValue = "[REDACTED]"

// sensitiveKeySubstrings marks metadata keys for redaction by substring
// match, so variants like "old_api_key_hash" or "user_password" are caught.
var sensitiveKeySubstrings = []string{
	"password",
	"api_key",
	"token",
	"secret",
	"hashed_password",
	"api_key_hash",
}

// AuditInput describes one audit entry. Action and ResourceType are required;
// everything else is optional context.
type AuditInput struct {
	Action       string
	ResourceType string
	ResourceID   string
	ActorID      *uuid.UUID
	WorkspaceID  *uuid.UUID
	IP           string
	UserAgent    string
	Metadata     map[string]any
}

// AuditService writes insert-only audit entries. Metadata is sanitized before
// it reaches storage; the raw map is never persisted.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	return &AuditService{client: client}
}

// Record validates, sanitizes, and stores one audit entry.
func (s *AuditService) Record(ctx context.Context, input AuditInput) (*ent.AuditEntry, error) {
	return record(ctx, s.client, input)
}

// RecordInTx writes an audit entry inside an existing transaction, for
// callers that need the entry to commit or roll back with their own writes.
func (s *AuditService) RecordInTx(ctx context.Context, tx *ent.Tx, input AuditInput) (*ent.AuditEntry, error) {
	return record(ctx, tx.Client(), input)
}

func record(ctx context.Context, client *ent.Client, input AuditInput) (*ent.AuditEntry, error) {
	if input.Action == "" {
		return nil, NewValidationError("action", "action is required")
	}
	if input.ResourceType == "" {
		return nil, NewValidationError("resource_type", "resource_type is required")
	}

	builder := client.AuditEntry.Create().
		SetAction(input.Action).
		SetResourceType(input.ResourceType)

	if input.ResourceID != "" {
		builder.SetResourceID(input.ResourceID)
	}
	if input.ActorID != nil {
		builder.SetActorID(*input.ActorID)
	}
	if input.WorkspaceID != nil {
		builder.SetWorkspaceID(*input.WorkspaceID)
	}
	if input.IP != "" {
		builder.SetIP(input.IP)
	}
	if input.UserAgent != "" {
		builder.SetUserAgent(input.UserAgent)
	}
	if input.Metadata != nil {
		builder.SetMetadata(SanitizeMetadata(input.Metadata))
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "record audit entry")
	}
	return entry, nil
}

// SanitizeMetadata returns a deep copy of metadata with every value whose key
// contains a sensitive substring replaced by RedactedValue. Nested maps and
// lists are walked recursively; the input is never modified.
func SanitizeMetadata(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata))
	for key, value := range metadata {
		if isSensitiveKey(key) {
			out[key] = RedactedValue
			continue
		}
		out[key] = sanitizeValue(value)
	}
	return out
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return SanitizeMetadata(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = sanitizeValue(item)
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sub := range sensitiveKeySubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
