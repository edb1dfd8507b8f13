package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PolicyRule is a tenant-scoped allow/flag/block decision criterion. The
// config map's schema is determined by rule_type and validated at write time.
type PolicyRule struct {
	ent.Schema
}

// Fields of the PolicyRule.
func (PolicyRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("rule_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.Enum("rule_type").
			Values("rate_limit", "pattern_match", "blocklist", "allowlist", "payload_size", "custom"),
		field.Enum("action").
			Values("allow", "flag", "block"),
		field.Int("priority").
			Default(0).
			NonNegative().
			Comment("Higher evaluates first"),
		field.Bool("enabled").
			Default(true),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.JSON("applies_to_event_types", []string{}).
			Optional().
			Comment("Empty means the rule applies to all event types"),
		field.JSON("applies_to_agent_types", []string{}).
			Optional().
			Comment("Empty means the rule applies to all agent types"),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PolicyRule.
func (PolicyRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("policy_rules").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the PolicyRule.
func (PolicyRule) Indexes() []ent.Index {
	return []ent.Index{
		// Hot-path load order: enabled rules by priority within a workspace.
		index.Fields("workspace_id", "enabled", "priority"),
		index.Fields("workspace_id", "name").Unique(),
	}
}
