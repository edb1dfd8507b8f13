package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AuditEntry is insert-only. Metadata is sanitized at insert time; actor and
// workspace references are weak (nullified on delete, row preserved).
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("audit_entry_id").
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(),
		field.String("resource_type").
			NotEmpty().
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),
		field.String("ip").
			Optional().
			Immutable(),
		field.String("user_agent").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Sanitized at insert; secret-bearing keys are replaced by [REDACTED]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("action"),
	}
}
