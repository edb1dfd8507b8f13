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

// AnalysisSession is one deliberation instance over a single AgentEvent,
// executing a Workflow. Terminal statuses: completed, failed, timed_out.
type AnalysisSession struct {
	ent.Schema
}

// Fields of the AnalysisSession.
func (AnalysisSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("session_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.UUID("event_id", uuid.UUID{}),
		field.UUID("workflow_id", uuid.UUID{}),
		field.Enum("status").
			Values("pending", "analyzing", "deliberating", "voting", "completed", "failed", "timed_out").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("input_content_hash").
			Optional().
			Nillable().
			Comment("sha256 hex of the source content; ephemeral sessions only, never wiped"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Ephemeral sessions only; force-terminated past this instant"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AnalysisSession.
func (AnalysisSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("sessions").
			Field("workspace_id").
			Unique().
			Required(),
		edge.From("event", AgentEvent.Type).
			Ref("sessions").
			Field("event_id").
			Unique().
			Required(),
		edge.To("instances", AgentInstance.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", DeliberationMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("verdict", Verdict.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AnalysisSession.
func (AnalysisSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("event_id"),
		// Partial index for the expiry sweeper.
		index.Fields("expires_at").
			Annotations(entsql.IndexWhere("expires_at IS NOT NULL")),
	}
}
