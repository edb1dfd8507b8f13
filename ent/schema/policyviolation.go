package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PolicyViolation is one row per (event, matching rule). Immutable apart from
// the resolution fields.
type PolicyViolation struct {
	ent.Schema
}

// Fields of the PolicyViolation.
func (PolicyViolation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("violation_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}).
			Immutable(),
		field.UUID("event_id", uuid.UUID{}).
			Immutable(),
		field.UUID("rule_id", uuid.UUID{}).
			Immutable(),
		field.String("rule_name").
			Immutable(),
		field.Enum("action_taken").
			Values("flagged", "blocked").
			Immutable(),
		field.Enum("severity").
			Values("low", "medium", "high", "critical").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Bool("resolved").
			Default(false),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.String("resolution_note").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PolicyViolation.
func (PolicyViolation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("violations").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.From("event", AgentEvent.Type).
			Ref("violations").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PolicyViolation.
func (PolicyViolation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("event_id"),
		index.Fields("rule_id"),
	}
}
