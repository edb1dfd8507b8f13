package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GhostProtocolConfig is the tenant-configured ephemeral mode: sessions of a
// workflow referencing it wipe transient data post-verdict and force-terminate
// at a wall-clock expiry.
type GhostProtocolConfig struct {
	ent.Schema
}

// Fields of the GhostProtocolConfig.
func (GhostProtocolConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			StorageKey("ghost_protocol_config_id").
			Immutable(),
		field.UUID("workspace_id", uuid.UUID{}),
		field.String("name").
			NotEmpty(),
		field.Bool("enabled").
			Default(true),
		field.Enum("wipe_strategy").
			Values("immediate", "delayed", "scheduled").
			Default("immediate"),
		field.JSON("wipe_fields", []string{}).
			Comment("Subset of the closed wipable-field allow list"),
		field.Int("wipe_delay_seconds").
			Default(0).
			NonNegative(),
		field.Int("max_session_duration_seconds").
			Default(300).
			Positive(),
		field.Bool("auto_terminate_on_expiry").
			Default(true),
		field.Bool("crypto_shred").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the GhostProtocolConfig.
func (GhostProtocolConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("ghost_configs").
			Field("workspace_id").
			Unique().
			Required(),
	}
}

// Indexes of the GhostProtocolConfig.
func (GhostProtocolConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "name").Unique(),
	}
}
