// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// RegisteredAgentID applies equality check predicate on the "registered_agent_id" field. It's identical to RegisteredAgentIDEQ.
func RegisteredAgentID(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldRegisteredAgentID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldContent, v))
}

// SourceIP applies equality check predicate on the "source_ip" field. It's identical to SourceIPEQ.
func SourceIP(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSourceIP, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEvaluatedAt, v))
}

// FlaggedReason applies equality check predicate on the "flagged_reason" field. It's identical to FlaggedReasonEQ.
func FlaggedReason(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldFlaggedReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// RegisteredAgentIDEQ applies the EQ predicate on the "registered_agent_id" field.
func RegisteredAgentIDEQ(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldRegisteredAgentID, v))
}

// RegisteredAgentIDNEQ applies the NEQ predicate on the "registered_agent_id" field.
func RegisteredAgentIDNEQ(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldRegisteredAgentID, v))
}

// RegisteredAgentIDIn applies the In predicate on the "registered_agent_id" field.
func RegisteredAgentIDIn(vs ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldRegisteredAgentID, vs...))
}

// RegisteredAgentIDNotIn applies the NotIn predicate on the "registered_agent_id" field.
func RegisteredAgentIDNotIn(vs ...uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldRegisteredAgentID, vs...))
}

// RegisteredAgentIDGT applies the GT predicate on the "registered_agent_id" field.
func RegisteredAgentIDGT(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldRegisteredAgentID, v))
}

// RegisteredAgentIDGTE applies the GTE predicate on the "registered_agent_id" field.
func RegisteredAgentIDGTE(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldRegisteredAgentID, v))
}

// RegisteredAgentIDLT applies the LT predicate on the "registered_agent_id" field.
func RegisteredAgentIDLT(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldRegisteredAgentID, v))
}

// RegisteredAgentIDLTE applies the LTE predicate on the "registered_agent_id" field.
func RegisteredAgentIDLTE(v uuid.UUID) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldRegisteredAgentID, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldEventType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldContent, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldPayload))
}

// SourceIPEQ applies the EQ predicate on the "source_ip" field.
func SourceIPEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSourceIP, v))
}

// SourceIPNEQ applies the NEQ predicate on the "source_ip" field.
func SourceIPNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldSourceIP, v))
}

// SourceIPIn applies the In predicate on the "source_ip" field.
func SourceIPIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldSourceIP, vs...))
}

// SourceIPNotIn applies the NotIn predicate on the "source_ip" field.
func SourceIPNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldSourceIP, vs...))
}

// SourceIPGT applies the GT predicate on the "source_ip" field.
func SourceIPGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldSourceIP, v))
}

// SourceIPGTE applies the GTE predicate on the "source_ip" field.
func SourceIPGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldSourceIP, v))
}

// SourceIPLT applies the LT predicate on the "source_ip" field.
func SourceIPLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldSourceIP, v))
}

// SourceIPLTE applies the LTE predicate on the "source_ip" field.
func SourceIPLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldSourceIP, v))
}

// SourceIPContains applies the Contains predicate on the "source_ip" field.
func SourceIPContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldSourceIP, v))
}

// SourceIPHasPrefix applies the HasPrefix predicate on the "source_ip" field.
func SourceIPHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldSourceIP, v))
}

// SourceIPHasSuffix applies the HasSuffix predicate on the "source_ip" field.
func SourceIPHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldSourceIP, v))
}

// SourceIPEqualFold applies the EqualFold predicate on the "source_ip" field.
func SourceIPEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldSourceIP, v))
}

// SourceIPContainsFold applies the ContainsFold predicate on the "source_ip" field.
func SourceIPContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldSourceIP, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// EvaluationResultIsNil applies the IsNil predicate on the "evaluation_result" field.
func EvaluationResultIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldEvaluationResult))
}

// EvaluationResultNotNil applies the NotNil predicate on the "evaluation_result" field.
func EvaluationResultNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldEvaluationResult))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldEvaluatedAt, v))
}

// EvaluatedAtIsNil applies the IsNil predicate on the "evaluated_at" field.
func EvaluatedAtIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldEvaluatedAt))
}

// EvaluatedAtNotNil applies the NotNil predicate on the "evaluated_at" field.
func EvaluatedAtNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldEvaluatedAt))
}

// FlaggedReasonEQ applies the EQ predicate on the "flagged_reason" field.
func FlaggedReasonEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldFlaggedReason, v))
}

// FlaggedReasonNEQ applies the NEQ predicate on the "flagged_reason" field.
func FlaggedReasonNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldFlaggedReason, v))
}

// FlaggedReasonIn applies the In predicate on the "flagged_reason" field.
func FlaggedReasonIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldFlaggedReason, vs...))
}

// FlaggedReasonNotIn applies the NotIn predicate on the "flagged_reason" field.
func FlaggedReasonNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldFlaggedReason, vs...))
}

// FlaggedReasonGT applies the GT predicate on the "flagged_reason" field.
func FlaggedReasonGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldFlaggedReason, v))
}

// FlaggedReasonGTE applies the GTE predicate on the "flagged_reason" field.
func FlaggedReasonGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldFlaggedReason, v))
}

// FlaggedReasonLT applies the LT predicate on the "flagged_reason" field.
func FlaggedReasonLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldFlaggedReason, v))
}

// FlaggedReasonLTE applies the LTE predicate on the "flagged_reason" field.
func FlaggedReasonLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldFlaggedReason, v))
}

// FlaggedReasonContains applies the Contains predicate on the "flagged_reason" field.
func FlaggedReasonContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldFlaggedReason, v))
}

// FlaggedReasonHasPrefix applies the HasPrefix predicate on the "flagged_reason" field.
func FlaggedReasonHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldFlaggedReason, v))
}

// FlaggedReasonHasSuffix applies the HasSuffix predicate on the "flagged_reason" field.
func FlaggedReasonHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldFlaggedReason, v))
}

// FlaggedReasonIsNil applies the IsNil predicate on the "flagged_reason" field.
func FlaggedReasonIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldFlaggedReason))
}

// FlaggedReasonNotNil applies the NotNil predicate on the "flagged_reason" field.
func FlaggedReasonNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldFlaggedReason))
}

// FlaggedReasonEqualFold applies the EqualFold predicate on the "flagged_reason" field.
func FlaggedReasonEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldFlaggedReason, v))
}

// FlaggedReasonContainsFold applies the ContainsFold predicate on the "flagged_reason" field.
func FlaggedReasonContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldFlaggedReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasViolations applies the HasEdge predicate on the "violations" edge.
func HasViolations() predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasViolationsWith applies the HasEdge predicate on the "violations" edge with a given conditions (other predicates).
func HasViolationsWith(preds ...predicate.PolicyViolation) predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := newViolationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.AnalysisSession) predicate.AgentEvent {
	return predicate.AgentEvent(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.NotPredicates(p))
}
