package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DetectionRule is a reusable pattern matcher referenced by pattern_match
// policy rules. Regex patterns are probe-tested for catastrophic backtracking
// at write time (see services.ProbePattern).
type DetectionRule struct {
	ent.Schema
}

// Fields of the DetectionRule.
func (DetectionRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("detection_rule_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.Enum("detection_type").
			Values("regex", "keyword", "semantic"),
		field.Text("pattern").
			Optional().
			Comment("Regex source, at most 10000 chars (service-enforced)"),
		field.JSON("keywords", []string{}).
			Optional().
			Comment("At most 1000 entries of at most 500 bytes each (service-enforced)"),
		field.Bool("enabled").
			Default(true),
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

// Edges of the DetectionRule.
func (DetectionRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("detection_rules").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the DetectionRule.
func (DetectionRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "enabled"),
		index.Fields("workspace_id", "name").Unique(),
	}
}
