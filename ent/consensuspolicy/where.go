// Code generated by ent, DO NOT EDIT.

package consensuspolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldName, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldThreshold, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldContainsFold(FieldName, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v Strategy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v Strategy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...Strategy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...Strategy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldStrategy, vs...))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float64) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLTE(FieldThreshold, v))
}

// WeightsIsNil applies the IsNil predicate on the "weights" field.
func WeightsIsNil() predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIsNull(FieldWeights))
}

// WeightsNotNil applies the NotNil predicate on the "weights" field.
func WeightsNotNil() predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotNull(FieldWeights))
}

// RequireUnanimousOnIsNil applies the IsNil predicate on the "require_unanimous_on" field.
func RequireUnanimousOnIsNil() predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIsNull(FieldRequireUnanimousOn))
}

// RequireUnanimousOnNotNil applies the NotNil predicate on the "require_unanimous_on" field.
func RequireUnanimousOnNotNil() predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotNull(FieldRequireUnanimousOn))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConsensusPolicy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConsensusPolicy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConsensusPolicy) predicate.ConsensusPolicy {
	return predicate.ConsensusPolicy(sql.NotPredicates(p))
}
