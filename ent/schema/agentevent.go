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

// AgentEvent is one action/output submitted by an external agent through the
// gateway. Externally supplied fields are restricted to event_type, content,
// payload and severity; everything else is server-set.
type AgentEvent struct {
	ent.Schema
}

// Fields of the AgentEvent.
func (AgentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("event_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.UUID("registered_agent_id", uuid.UUID{}),
		field.Enum("event_type").
			Values("action", "output", "tool_call", "message", "error"),
		field.Text("content").
			Comment("Free-form submitted content, at most 1 MiB (service-enforced)"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("source_ip").
			Comment("Server-set from the connection's network address"),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info"),
		field.Enum("status").
			Values("pending", "allowed", "flagged", "blocked").
			Default("pending"),
		field.JSON("evaluation_result", map[string]interface{}{}).
			Optional(),
		field.Time("evaluated_at").
			Optional().
			Nillable(),
		field.String("flagged_reason").
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

// Edges of the AgentEvent.
func (AgentEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("events").
			Field("workspace_id").
			Unique().
			Required(),
		edge.To("violations", PolicyViolation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", AnalysisSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentEvent.
func (AgentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
		index.Fields("workspace_id", "status"),
		index.Fields("registered_agent_id", "created_at"),
	}
}
