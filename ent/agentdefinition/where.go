// Code generated by ent, DO NOT EDIT.

package agentdefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldRole, v))
}

// Expertise applies equality check predicate on the "expertise" field. It's identical to ExpertiseEQ.
func Expertise(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldExpertise, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldSystemPrompt, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldModel, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldMaxTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v uuid.UUID) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldWorkspaceID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldRole, v))
}

// ExpertiseEQ applies the EQ predicate on the "expertise" field.
func ExpertiseEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldExpertise, v))
}

// ExpertiseNEQ applies the NEQ predicate on the "expertise" field.
func ExpertiseNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldExpertise, v))
}

// ExpertiseIn applies the In predicate on the "expertise" field.
func ExpertiseIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldExpertise, vs...))
}

// ExpertiseNotIn applies the NotIn predicate on the "expertise" field.
func ExpertiseNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldExpertise, vs...))
}

// ExpertiseGT applies the GT predicate on the "expertise" field.
func ExpertiseGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldExpertise, v))
}

// ExpertiseGTE applies the GTE predicate on the "expertise" field.
func ExpertiseGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldExpertise, v))
}

// ExpertiseLT applies the LT predicate on the "expertise" field.
func ExpertiseLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldExpertise, v))
}

// ExpertiseLTE applies the LTE predicate on the "expertise" field.
func ExpertiseLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldExpertise, v))
}

// ExpertiseContains applies the Contains predicate on the "expertise" field.
func ExpertiseContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldExpertise, v))
}

// ExpertiseHasPrefix applies the HasPrefix predicate on the "expertise" field.
func ExpertiseHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldExpertise, v))
}

// ExpertiseHasSuffix applies the HasSuffix predicate on the "expertise" field.
func ExpertiseHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldExpertise, v))
}

// ExpertiseIsNil applies the IsNil predicate on the "expertise" field.
func ExpertiseIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldExpertise))
}

// ExpertiseNotNil applies the NotNil predicate on the "expertise" field.
func ExpertiseNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldExpertise))
}

// ExpertiseEqualFold applies the EqualFold predicate on the "expertise" field.
func ExpertiseEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldExpertise, v))
}

// ExpertiseContainsFold applies the ContainsFold predicate on the "expertise" field.
func ExpertiseContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldExpertise, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldContainsFold(FieldModel, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldTemperature, v))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldMaxTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentDefinition) predicate.AgentDefinition {
	return predicate.AgentDefinition(sql.NotPredicates(p))
}
