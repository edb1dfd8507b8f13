package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AgentDefinition describes one LLM persona available to workflows: its role,
// expertise, system prompt and model parameters.
type AgentDefinition struct {
	ent.Schema
}

// Fields of the AgentDefinition.
func (AgentDefinition) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("agent_definition_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.String("role").
			NotEmpty().
			Comment("Consensus weight key, e.g. security_analyst"),
		field.String("expertise").
			Optional(),
		field.Text("system_prompt"),
		field.String("model").
			Optional().
			Comment("Empty means the configured default model"),
		field.Float("temperature").
			Default(0.2),
		field.Int("max_tokens").
			Default(1024).
			Positive(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentDefinition.
func (AgentDefinition) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").Unique(),
	}
}
