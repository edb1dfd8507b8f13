package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// WorkflowStep names one AgentDefinition participating in a workflow, in
// order, optionally rendering its system prompt from a PromptTemplate.
type WorkflowStep struct {
	ent.Schema
}

// Fields of the WorkflowStep.
func (WorkflowStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("step_id").
			Immutable(),
		field.UUID("workflow_id", uuid.UUID{}),
		field.UUID("agent_definition_id", uuid.UUID{}),
		field.UUID("prompt_template_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int("step_index").
			NonNegative(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkflowStep.
func (WorkflowStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workflow", Workflow.Type).
			Ref("steps").
			Field("workflow_id").
			Unique().
			Required(),
	}
}

// Indexes of the WorkflowStep.
func (WorkflowStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "step_index").Unique(),
	}
}
