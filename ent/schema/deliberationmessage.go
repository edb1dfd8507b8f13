package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DeliberationMessage is one debate transcript entry. Within a session the
// transcript is ordered by (round, created_at).
type DeliberationMessage struct {
	ent.Schema
}

// Fields of the DeliberationMessage.
func (DeliberationMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("message_id").
			Immutable(),
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("instance_id", uuid.UUID{}),
		field.Enum("message_type").
			Values("analysis", "argument", "counter_argument", "evidence", "summary", "vote_rationale"),
		field.Text("content").
			Comment("At most 100 KiB (service-enforced); replaced by the wipe sentinel on ghost wipe"),
		field.Int("round").
			Min(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DeliberationMessage.
func (DeliberationMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AnalysisSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the DeliberationMessage.
func (DeliberationMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "round", "created_at"),
	}
}
