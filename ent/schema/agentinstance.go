package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AgentInstance is one LLM persona participating in one deliberation session.
type AgentInstance struct {
	ent.Schema
}

// Fields of the AgentInstance.
func (AgentInstance) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("instance_id").
			Immutable(),
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("agent_definition_id", uuid.UUID{}),
		field.String("role").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "timed_out").
			Default("pending"),
		field.Enum("vote").
			Values("allow", "flag", "block").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable().
			Range(0.0, 1.0),
		field.Text("initial_assessment").
			Optional().
			Nillable(),
		field.Int64("tokens_used").
			Default(0),
		field.Int64("cost_cents").
			Default(0),
		field.Time("terminated_at").
			Optional().
			Nillable().
			Comment("Set by the wipe engine"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentInstance.
func (AgentInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AnalysisSession.Type).
			Ref("instances").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentInstance.
func (AgentInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
