package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// RegisteredAgent is an external autonomous agent monitored by the firewall.
// Only the SHA-256 hash of the issued API key is stored, never the raw key.
type RegisteredAgent struct {
	ent.Schema
}

// Fields of the RegisteredAgent.
func (RegisteredAgent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("agent_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.String("api_key_hash").
			Unique().
			Comment("Lowercase hex SHA-256 of the issued bearer token"),
		field.String("api_key_prefix").
			MaxLen(8).
			Comment("8-char display prefix shown in the admin UI"),
		field.Enum("agent_type").
			Values("autonomous", "semi_autonomous", "tool_agent", "chatbot").
			Default("autonomous"),
		field.Enum("status").
			Values("active", "suspended", "revoked").
			Default("active"),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical").
			Default("low"),
		field.String("description").
			Optional(),
		field.Int64("event_count").
			Default(0).
			Comment("Updated only via atomic increments"),
		field.Time("last_seen_at").
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

// Edges of the RegisteredAgent.
func (RegisteredAgent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("agents").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the RegisteredAgent.
func (RegisteredAgent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("workspace_id", "name").Unique(),
	}
}
