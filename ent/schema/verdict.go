package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Verdict is the immutable outcome of a deliberation session. Exactly one
// verdict exists per session (unique constraint); the wipe engine never
// touches it.
type Verdict struct {
	ent.Schema
}

// Fields of the Verdict.
func (Verdict) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("verdict_id").
			Immutable(),
		field.UUID("session_id", uuid.UUID{}).
			Unique().
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}).
			Immutable(),
		field.Enum("decision").
			Values("allow", "flag", "block", "escalate").
			Immutable(),
		field.Float("confidence").
			Immutable(),
		field.Text("reasoning").
			Optional().
			Immutable(),
		field.JSON("vote_breakdown", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("dissenting_opinions", []map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("strategy_used").
			Immutable(),
		field.Bool("consensus_reached").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Verdict.
func (Verdict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AnalysisSession.Type).
			Ref("verdict").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Verdict.
func (Verdict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "created_at"),
	}
}
