// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldDescription, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEnabled, v))
}

// ConsensusPolicyID applies equality check predicate on the "consensus_policy_id" field. It's identical to ConsensusPolicyIDEQ.
func ConsensusPolicyID(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldConsensusPolicyID, v))
}

// GhostProtocolConfigID applies equality check predicate on the "ghost_protocol_config_id" field. It's identical to GhostProtocolConfigIDEQ.
func GhostProtocolConfigID(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldGhostProtocolConfigID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Workflow {
	return predicate.Workflow(sql.FieldContainsFold(FieldDescription, v))
}

// TriggerOnEQ applies the EQ predicate on the "trigger_on" field.
func TriggerOnEQ(v TriggerOn) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldTriggerOn, v))
}

// TriggerOnNEQ applies the NEQ predicate on the "trigger_on" field.
func TriggerOnNEQ(v TriggerOn) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldTriggerOn, v))
}

// TriggerOnIn applies the In predicate on the "trigger_on" field.
func TriggerOnIn(vs ...TriggerOn) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldTriggerOn, vs...))
}

// TriggerOnNotIn applies the NotIn predicate on the "trigger_on" field.
func TriggerOnNotIn(vs ...TriggerOn) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldTriggerOn, vs...))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldEnabled, v))
}

// ConsensusPolicyIDEQ applies the EQ predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDNEQ applies the NEQ predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDNEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDIn applies the In predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldConsensusPolicyID, vs...))
}

// ConsensusPolicyIDNotIn applies the NotIn predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDNotIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldConsensusPolicyID, vs...))
}

// ConsensusPolicyIDGT applies the GT predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDGT(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDGTE applies the GTE predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDGTE(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDLT applies the LT predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDLT(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDLTE applies the LTE predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDLTE(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldConsensusPolicyID, v))
}

// ConsensusPolicyIDIsNil applies the IsNil predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldConsensusPolicyID))
}

// ConsensusPolicyIDNotNil applies the NotNil predicate on the "consensus_policy_id" field.
func ConsensusPolicyIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldConsensusPolicyID))
}

// GhostProtocolConfigIDEQ applies the EQ predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDNEQ applies the NEQ predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDNEQ(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDIn applies the In predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldGhostProtocolConfigID, vs...))
}

// GhostProtocolConfigIDNotIn applies the NotIn predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDNotIn(vs ...uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldGhostProtocolConfigID, vs...))
}

// GhostProtocolConfigIDGT applies the GT predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDGT(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDGTE applies the GTE predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDGTE(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDLT applies the LT predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDLT(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDLTE applies the LTE predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDLTE(v uuid.UUID) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldGhostProtocolConfigID, v))
}

// GhostProtocolConfigIDIsNil applies the IsNil predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldGhostProtocolConfigID))
}

// GhostProtocolConfigIDNotNil applies the NotNil predicate on the "ghost_protocol_config_id" field.
func GhostProtocolConfigIDNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldGhostProtocolConfigID))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Workflow {
	return predicate.Workflow(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Workflow {
	return predicate.Workflow(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.WorkflowStep) predicate.Workflow {
	return predicate.Workflow(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workflow) predicate.Workflow {
	return predicate.Workflow(sql.NotPredicates(p))
}
