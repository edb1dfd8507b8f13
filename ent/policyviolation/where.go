// Code generated by ent, DO NOT EDIT.

package policyviolation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldWorkspaceID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldEventID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldRuleID, v))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldRuleName, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolved, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolutionNote applies equality check predicate on the "resolution_note" field. It's identical to ResolutionNoteEQ.
func ResolutionNote(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolutionNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldEventID, vs...))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v uuid.UUID) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldRuleID, v))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldContainsFold(FieldRuleName, v))
}

// ActionTakenEQ applies the EQ predicate on the "action_taken" field.
func ActionTakenEQ(v ActionTaken) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldActionTaken, v))
}

// ActionTakenNEQ applies the NEQ predicate on the "action_taken" field.
func ActionTakenNEQ(v ActionTaken) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldActionTaken, v))
}

// ActionTakenIn applies the In predicate on the "action_taken" field.
func ActionTakenIn(vs ...ActionTaken) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldActionTaken, vs...))
}

// ActionTakenNotIn applies the NotIn predicate on the "action_taken" field.
func ActionTakenNotIn(vs ...ActionTaken) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldActionTaken, vs...))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldSeverity, vs...))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotNull(FieldDetails))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldResolved, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotNull(FieldResolvedAt))
}

// ResolutionNoteEQ applies the EQ predicate on the "resolution_note" field.
func ResolutionNoteEQ(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldResolutionNote, v))
}

// ResolutionNoteNEQ applies the NEQ predicate on the "resolution_note" field.
func ResolutionNoteNEQ(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldResolutionNote, v))
}

// ResolutionNoteIn applies the In predicate on the "resolution_note" field.
func ResolutionNoteIn(vs ...string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldResolutionNote, vs...))
}

// ResolutionNoteNotIn applies the NotIn predicate on the "resolution_note" field.
func ResolutionNoteNotIn(vs ...string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldResolutionNote, vs...))
}

// ResolutionNoteGT applies the GT predicate on the "resolution_note" field.
func ResolutionNoteGT(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldResolutionNote, v))
}

// ResolutionNoteGTE applies the GTE predicate on the "resolution_note" field.
func ResolutionNoteGTE(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldResolutionNote, v))
}

// ResolutionNoteLT applies the LT predicate on the "resolution_note" field.
func ResolutionNoteLT(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldResolutionNote, v))
}

// ResolutionNoteLTE applies the LTE predicate on the "resolution_note" field.
func ResolutionNoteLTE(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldResolutionNote, v))
}

// ResolutionNoteContains applies the Contains predicate on the "resolution_note" field.
func ResolutionNoteContains(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldContains(FieldResolutionNote, v))
}

// ResolutionNoteHasPrefix applies the HasPrefix predicate on the "resolution_note" field.
func ResolutionNoteHasPrefix(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldHasPrefix(FieldResolutionNote, v))
}

// ResolutionNoteHasSuffix applies the HasSuffix predicate on the "resolution_note" field.
func ResolutionNoteHasSuffix(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldHasSuffix(FieldResolutionNote, v))
}

// ResolutionNoteIsNil applies the IsNil predicate on the "resolution_note" field.
func ResolutionNoteIsNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIsNull(FieldResolutionNote))
}

// ResolutionNoteNotNil applies the NotNil predicate on the "resolution_note" field.
func ResolutionNoteNotNil() predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotNull(FieldResolutionNote))
}

// ResolutionNoteEqualFold applies the EqualFold predicate on the "resolution_note" field.
func ResolutionNoteEqualFold(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEqualFold(FieldResolutionNote, v))
}

// ResolutionNoteContainsFold applies the ContainsFold predicate on the "resolution_note" field.
func ResolutionNoteContainsFold(v string) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldContainsFold(FieldResolutionNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.PolicyViolation {
	return predicate.PolicyViolation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.PolicyViolation {
	return predicate.PolicyViolation(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.PolicyViolation {
	return predicate.PolicyViolation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.AgentEvent) predicate.PolicyViolation {
	return predicate.PolicyViolation(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicyViolation) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicyViolation) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicyViolation) predicate.PolicyViolation {
	return predicate.PolicyViolation(sql.NotPredicates(p))
}
