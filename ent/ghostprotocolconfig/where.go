// Code generated by ent, DO NOT EDIT.

package ghostprotocolconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldEnabled, v))
}

// WipeDelaySeconds applies equality check predicate on the "wipe_delay_seconds" field. It's identical to WipeDelaySecondsEQ.
func WipeDelaySeconds(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldWipeDelaySeconds, v))
}

// MaxSessionDurationSeconds applies equality check predicate on the "max_session_duration_seconds" field. It's identical to MaxSessionDurationSecondsEQ.
func MaxSessionDurationSeconds(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldMaxSessionDurationSeconds, v))
}

// AutoTerminateOnExpiry applies equality check predicate on the "auto_terminate_on_expiry" field. It's identical to AutoTerminateOnExpiryEQ.
func AutoTerminateOnExpiry(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldAutoTerminateOnExpiry, v))
}

// CryptoShred applies equality check predicate on the "crypto_shred" field. It's identical to CryptoShredEQ.
func CryptoShred(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldCryptoShred, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldContainsFold(FieldName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldEnabled, v))
}

// WipeStrategyEQ applies the EQ predicate on the "wipe_strategy" field.
func WipeStrategyEQ(v WipeStrategy) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldWipeStrategy, v))
}

// WipeStrategyNEQ applies the NEQ predicate on the "wipe_strategy" field.
func WipeStrategyNEQ(v WipeStrategy) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldWipeStrategy, v))
}

// WipeStrategyIn applies the In predicate on the "wipe_strategy" field.
func WipeStrategyIn(vs ...WipeStrategy) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldWipeStrategy, vs...))
}

// WipeStrategyNotIn applies the NotIn predicate on the "wipe_strategy" field.
func WipeStrategyNotIn(vs ...WipeStrategy) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldWipeStrategy, vs...))
}

// WipeDelaySecondsEQ applies the EQ predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsEQ(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldWipeDelaySeconds, v))
}

// WipeDelaySecondsNEQ applies the NEQ predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsNEQ(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldWipeDelaySeconds, v))
}

// WipeDelaySecondsIn applies the In predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsIn(vs ...int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldWipeDelaySeconds, vs...))
}

// WipeDelaySecondsNotIn applies the NotIn predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsNotIn(vs ...int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldWipeDelaySeconds, vs...))
}

// WipeDelaySecondsGT applies the GT predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsGT(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldWipeDelaySeconds, v))
}

// WipeDelaySecondsGTE applies the GTE predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsGTE(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldWipeDelaySeconds, v))
}

// WipeDelaySecondsLT applies the LT predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsLT(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldWipeDelaySeconds, v))
}

// WipeDelaySecondsLTE applies the LTE predicate on the "wipe_delay_seconds" field.
func WipeDelaySecondsLTE(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldWipeDelaySeconds, v))
}

// MaxSessionDurationSecondsEQ applies the EQ predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsEQ(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldMaxSessionDurationSeconds, v))
}

// MaxSessionDurationSecondsNEQ applies the NEQ predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsNEQ(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldMaxSessionDurationSeconds, v))
}

// MaxSessionDurationSecondsIn applies the In predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsIn(vs ...int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldMaxSessionDurationSeconds, vs...))
}

// MaxSessionDurationSecondsNotIn applies the NotIn predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsNotIn(vs ...int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldMaxSessionDurationSeconds, vs...))
}

// MaxSessionDurationSecondsGT applies the GT predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsGT(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldMaxSessionDurationSeconds, v))
}

// MaxSessionDurationSecondsGTE applies the GTE predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsGTE(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldMaxSessionDurationSeconds, v))
}

// MaxSessionDurationSecondsLT applies the LT predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsLT(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldMaxSessionDurationSeconds, v))
}

// MaxSessionDurationSecondsLTE applies the LTE predicate on the "max_session_duration_seconds" field.
func MaxSessionDurationSecondsLTE(v int) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldMaxSessionDurationSeconds, v))
}

// AutoTerminateOnExpiryEQ applies the EQ predicate on the "auto_terminate_on_expiry" field.
func AutoTerminateOnExpiryEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldAutoTerminateOnExpiry, v))
}

// AutoTerminateOnExpiryNEQ applies the NEQ predicate on the "auto_terminate_on_expiry" field.
func AutoTerminateOnExpiryNEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldAutoTerminateOnExpiry, v))
}

// CryptoShredEQ applies the EQ predicate on the "crypto_shred" field.
func CryptoShredEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldCryptoShred, v))
}

// CryptoShredNEQ applies the NEQ predicate on the "crypto_shred" field.
func CryptoShredNEQ(v bool) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldCryptoShred, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GhostProtocolConfig) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GhostProtocolConfig) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GhostProtocolConfig) predicate.GhostProtocolConfig {
	return predicate.GhostProtocolConfig(sql.NotPredicates(p))
}
