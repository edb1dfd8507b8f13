package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Workflow is an ordered pipeline of LLM steps run when a flagged event
// escalates into a deliberation session.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("workflow_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("trigger_on").
			Values("matched", "all", "manual").
			Default("matched"),
		field.Bool("enabled").
			Default(true),
		field.UUID("consensus_policy_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.UUID("ghost_protocol_config_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Presence enables ephemeral (Ghost Protocol) sessions"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Holds per-workflow overrides such as deliberation_rounds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("workflows").
			Field("workspace_id").
			Unique().
			Required(),
		edge.To("steps", WorkflowStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "enabled"),
		index.Fields("workspace_id", "name").Unique(),
	}
}
