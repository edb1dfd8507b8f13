package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Workspace is the tenancy boundary. Every domain row is scoped to exactly
// one workspace; non-active workspaces reject all gateway traffic.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("workspace_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("status").
			Values("active", "suspended", "archived").
			Default("active"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Free-form tenant settings; holds llm_api_key_encrypted and llm_budget_limit_cents"),
		field.Int64("llm_spend_cents").
			Default(0).
			Comment("Running LLM spend in minor currency units; updated only via atomic increments"),
		field.Int64("llm_tokens_used").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workspace. All owned rows cascade on delete.
func (Workspace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("agents", RegisteredAgent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", AgentEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("policy_rules", PolicyRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("detection_rules", DetectionRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflows", Workflow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("consensus_policies", ConsensusPolicy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ghost_configs", GhostProtocolConfig.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", AnalysisSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("violations", PolicyViolation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
