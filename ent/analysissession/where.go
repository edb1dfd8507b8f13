// Code generated by ent, DO NOT EDIT.

package analysissession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldEventID, v))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldWorkflowID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldErrorMessage, v))
}

// InputContentHash applies equality check predicate on the "input_content_hash" field. It's identical to InputContentHashEQ.
func InputContentHash(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldInputContentHash, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldExpiresAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldEventID, vs...))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v uuid.UUID) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldWorkflowID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// InputContentHashEQ applies the EQ predicate on the "input_content_hash" field.
func InputContentHashEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldInputContentHash, v))
}

// InputContentHashNEQ applies the NEQ predicate on the "input_content_hash" field.
func InputContentHashNEQ(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldInputContentHash, v))
}

// InputContentHashIn applies the In predicate on the "input_content_hash" field.
func InputContentHashIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldInputContentHash, vs...))
}

// InputContentHashNotIn applies the NotIn predicate on the "input_content_hash" field.
func InputContentHashNotIn(vs ...string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldInputContentHash, vs...))
}

// InputContentHashGT applies the GT predicate on the "input_content_hash" field.
func InputContentHashGT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldInputContentHash, v))
}

// InputContentHashGTE applies the GTE predicate on the "input_content_hash" field.
func InputContentHashGTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldInputContentHash, v))
}

// InputContentHashLT applies the LT predicate on the "input_content_hash" field.
func InputContentHashLT(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldInputContentHash, v))
}

// InputContentHashLTE applies the LTE predicate on the "input_content_hash" field.
func InputContentHashLTE(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldInputContentHash, v))
}

// InputContentHashContains applies the Contains predicate on the "input_content_hash" field.
func InputContentHashContains(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContains(FieldInputContentHash, v))
}

// InputContentHashHasPrefix applies the HasPrefix predicate on the "input_content_hash" field.
func InputContentHashHasPrefix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasPrefix(FieldInputContentHash, v))
}

// InputContentHashHasSuffix applies the HasSuffix predicate on the "input_content_hash" field.
func InputContentHashHasSuffix(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldHasSuffix(FieldInputContentHash, v))
}

// InputContentHashIsNil applies the IsNil predicate on the "input_content_hash" field.
func InputContentHashIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldInputContentHash))
}

// InputContentHashNotNil applies the NotNil predicate on the "input_content_hash" field.
func InputContentHashNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldInputContentHash))
}

// InputContentHashEqualFold applies the EqualFold predicate on the "input_content_hash" field.
func InputContentHashEqualFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEqualFold(FieldInputContentHash, v))
}

// InputContentHashContainsFold applies the ContainsFold predicate on the "input_content_hash" field.
func InputContentHashContainsFold(v string) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldContainsFold(FieldInputContentHash, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldExpiresAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldMetadata))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.AgentEvent) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInstances applies the HasEdge predicate on the "instances" edge.
func HasInstances() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InstancesTable, InstancesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstancesWith applies the HasEdge predicate on the "instances" edge with a given conditions (other predicates).
func HasInstancesWith(preds ...predicate.AgentInstance) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newInstancesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.DeliberationMessage) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerdict applies the HasEdge predicate on the "verdict" edge.
func HasVerdict() predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, VerdictTable, VerdictColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerdictWith applies the HasEdge predicate on the "verdict" edge with a given conditions (other predicates).
func HasVerdictWith(preds ...predicate.Verdict) predicate.AnalysisSession {
	return predicate.AnalysisSession(func(s *sql.Selector) {
		step := newVerdictStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisSession) predicate.AnalysisSession {
	return predicate.AnalysisSession(sql.NotPredicates(p))
}
