// Code generated by ent, DO NOT EDIT.

package agentinstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldSessionID, v))
}

// AgentDefinitionID applies equality check predicate on the "agent_definition_id" field. It's identical to AgentDefinitionIDEQ.
func AgentDefinitionID(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldRole, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldConfidence, v))
}

// InitialAssessment applies equality check predicate on the "initial_assessment" field. It's identical to InitialAssessmentEQ.
func InitialAssessment(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldInitialAssessment, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldTokensUsed, v))
}

// CostCents applies equality check predicate on the "cost_cents" field. It's identical to CostCentsEQ.
func CostCents(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCostCents, v))
}

// TerminatedAt applies equality check predicate on the "terminated_at" field. It's identical to TerminatedAtEQ.
func TerminatedAt(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldTerminatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldSessionID, vs...))
}

// AgentDefinitionIDEQ applies the EQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDEQ(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDNEQ applies the NEQ predicate on the "agent_definition_id" field.
func AgentDefinitionIDNEQ(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDIn applies the In predicate on the "agent_definition_id" field.
func AgentDefinitionIDIn(vs ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDNotIn applies the NotIn predicate on the "agent_definition_id" field.
func AgentDefinitionIDNotIn(vs ...uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldAgentDefinitionID, vs...))
}

// AgentDefinitionIDGT applies the GT predicate on the "agent_definition_id" field.
func AgentDefinitionIDGT(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDGTE applies the GTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDGTE(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLT applies the LT predicate on the "agent_definition_id" field.
func AgentDefinitionIDLT(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldAgentDefinitionID, v))
}

// AgentDefinitionIDLTE applies the LTE predicate on the "agent_definition_id" field.
func AgentDefinitionIDLTE(v uuid.UUID) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldAgentDefinitionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContainsFold(FieldRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldStatus, vs...))
}

// VoteEQ applies the EQ predicate on the "vote" field.
func VoteEQ(v Vote) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldVote, v))
}

// VoteNEQ applies the NEQ predicate on the "vote" field.
func VoteNEQ(v Vote) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldVote, v))
}

// VoteIn applies the In predicate on the "vote" field.
func VoteIn(vs ...Vote) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldVote, vs...))
}

// VoteNotIn applies the NotIn predicate on the "vote" field.
func VoteNotIn(vs ...Vote) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldVote, vs...))
}

// VoteIsNil applies the IsNil predicate on the "vote" field.
func VoteIsNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIsNull(FieldVote))
}

// VoteNotNil applies the NotNil predicate on the "vote" field.
func VoteNotNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotNull(FieldVote))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotNull(FieldConfidence))
}

// InitialAssessmentEQ applies the EQ predicate on the "initial_assessment" field.
func InitialAssessmentEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldInitialAssessment, v))
}

// InitialAssessmentNEQ applies the NEQ predicate on the "initial_assessment" field.
func InitialAssessmentNEQ(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldInitialAssessment, v))
}

// InitialAssessmentIn applies the In predicate on the "initial_assessment" field.
func InitialAssessmentIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldInitialAssessment, vs...))
}

// InitialAssessmentNotIn applies the NotIn predicate on the "initial_assessment" field.
func InitialAssessmentNotIn(vs ...string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldInitialAssessment, vs...))
}

// InitialAssessmentGT applies the GT predicate on the "initial_assessment" field.
func InitialAssessmentGT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldInitialAssessment, v))
}

// InitialAssessmentGTE applies the GTE predicate on the "initial_assessment" field.
func InitialAssessmentGTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldInitialAssessment, v))
}

// InitialAssessmentLT applies the LT predicate on the "initial_assessment" field.
func InitialAssessmentLT(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldInitialAssessment, v))
}

// InitialAssessmentLTE applies the LTE predicate on the "initial_assessment" field.
func InitialAssessmentLTE(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldInitialAssessment, v))
}

// InitialAssessmentContains applies the Contains predicate on the "initial_assessment" field.
func InitialAssessmentContains(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContains(FieldInitialAssessment, v))
}

// InitialAssessmentHasPrefix applies the HasPrefix predicate on the "initial_assessment" field.
func InitialAssessmentHasPrefix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasPrefix(FieldInitialAssessment, v))
}

// InitialAssessmentHasSuffix applies the HasSuffix predicate on the "initial_assessment" field.
func InitialAssessmentHasSuffix(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldHasSuffix(FieldInitialAssessment, v))
}

// InitialAssessmentIsNil applies the IsNil predicate on the "initial_assessment" field.
func InitialAssessmentIsNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIsNull(FieldInitialAssessment))
}

// InitialAssessmentNotNil applies the NotNil predicate on the "initial_assessment" field.
func InitialAssessmentNotNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotNull(FieldInitialAssessment))
}

// InitialAssessmentEqualFold applies the EqualFold predicate on the "initial_assessment" field.
func InitialAssessmentEqualFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEqualFold(FieldInitialAssessment, v))
}

// InitialAssessmentContainsFold applies the ContainsFold predicate on the "initial_assessment" field.
func InitialAssessmentContainsFold(v string) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldContainsFold(FieldInitialAssessment, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldTokensUsed, v))
}

// CostCentsEQ applies the EQ predicate on the "cost_cents" field.
func CostCentsEQ(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCostCents, v))
}

// CostCentsNEQ applies the NEQ predicate on the "cost_cents" field.
func CostCentsNEQ(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldCostCents, v))
}

// CostCentsIn applies the In predicate on the "cost_cents" field.
func CostCentsIn(vs ...int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldCostCents, vs...))
}

// CostCentsNotIn applies the NotIn predicate on the "cost_cents" field.
func CostCentsNotIn(vs ...int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldCostCents, vs...))
}

// CostCentsGT applies the GT predicate on the "cost_cents" field.
func CostCentsGT(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldCostCents, v))
}

// CostCentsGTE applies the GTE predicate on the "cost_cents" field.
func CostCentsGTE(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldCostCents, v))
}

// CostCentsLT applies the LT predicate on the "cost_cents" field.
func CostCentsLT(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldCostCents, v))
}

// CostCentsLTE applies the LTE predicate on the "cost_cents" field.
func CostCentsLTE(v int64) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldCostCents, v))
}

// TerminatedAtEQ applies the EQ predicate on the "terminated_at" field.
func TerminatedAtEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldTerminatedAt, v))
}

// TerminatedAtNEQ applies the NEQ predicate on the "terminated_at" field.
func TerminatedAtNEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldTerminatedAt, v))
}

// TerminatedAtIn applies the In predicate on the "terminated_at" field.
func TerminatedAtIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldTerminatedAt, vs...))
}

// TerminatedAtNotIn applies the NotIn predicate on the "terminated_at" field.
func TerminatedAtNotIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldTerminatedAt, vs...))
}

// TerminatedAtGT applies the GT predicate on the "terminated_at" field.
func TerminatedAtGT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldTerminatedAt, v))
}

// TerminatedAtGTE applies the GTE predicate on the "terminated_at" field.
func TerminatedAtGTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldTerminatedAt, v))
}

// TerminatedAtLT applies the LT predicate on the "terminated_at" field.
func TerminatedAtLT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldTerminatedAt, v))
}

// TerminatedAtLTE applies the LTE predicate on the "terminated_at" field.
func TerminatedAtLTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldTerminatedAt, v))
}

// TerminatedAtIsNil applies the IsNil predicate on the "terminated_at" field.
func TerminatedAtIsNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIsNull(FieldTerminatedAt))
}

// TerminatedAtNotNil applies the NotNil predicate on the "terminated_at" field.
func TerminatedAtNotNil() predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotNull(FieldTerminatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentInstance {
	return predicate.AgentInstance(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentInstance {
	return predicate.AgentInstance(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AnalysisSession) predicate.AgentInstance {
	return predicate.AgentInstance(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentInstance) predicate.AgentInstance {
	return predicate.AgentInstance(sql.NotPredicates(p))
}
