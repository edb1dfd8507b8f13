package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ConsensusPolicy is the rule for turning per-agent votes into a verdict
// decision. Threshold is meaningful only for supermajority and weighted
// strategies; declared weights must be positive.
type ConsensusPolicy struct {
	ent.Schema
}

// Fields of the ConsensusPolicy.
func (ConsensusPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("consensus_policy_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.Enum("strategy").
			Values("majority", "supermajority", "unanimous", "weighted").
			Default("majority"),
		field.Float("threshold").
			Default(0.5).
			Range(0.0, 1.0),
		field.JSON("weights", map[string]float64{}).
			Optional().
			Comment("Role -> weight; roles absent here default to 1.0"),
		field.JSON("require_unanimous_on", []string{}).
			Optional().
			Comment("Decisions that must additionally be unanimous"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ConsensusPolicy.
func (ConsensusPolicy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("consensus_policies").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the ConsensusPolicy.
func (ConsensusPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").Unique(),
	}
}
