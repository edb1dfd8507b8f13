// Code generated by ent, DO NOT EDIT.

package registeredagent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldWorkspaceID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldName, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyPrefix applies equality check predicate on the "api_key_prefix" field. It's identical to APIKeyPrefixEQ.
func APIKeyPrefix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldAPIKeyPrefix, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldDescription, v))
}

// EventCount applies equality check predicate on the "event_count" field. It's identical to EventCountEQ.
func EventCount(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldEventCount, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldLastSeenAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...uuid.UUID) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContainsFold(FieldName, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// APIKeyPrefixEQ applies the EQ predicate on the "api_key_prefix" field.
func APIKeyPrefixEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixNEQ applies the NEQ predicate on the "api_key_prefix" field.
func APIKeyPrefixNEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixIn applies the In predicate on the "api_key_prefix" field.
func APIKeyPrefixIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldAPIKeyPrefix, vs...))
}

// APIKeyPrefixNotIn applies the NotIn predicate on the "api_key_prefix" field.
func APIKeyPrefixNotIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldAPIKeyPrefix, vs...))
}

// APIKeyPrefixGT applies the GT predicate on the "api_key_prefix" field.
func APIKeyPrefixGT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixGTE applies the GTE predicate on the "api_key_prefix" field.
func APIKeyPrefixGTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixLT applies the LT predicate on the "api_key_prefix" field.
func APIKeyPrefixLT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixLTE applies the LTE predicate on the "api_key_prefix" field.
func APIKeyPrefixLTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixContains applies the Contains predicate on the "api_key_prefix" field.
func APIKeyPrefixContains(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContains(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixHasPrefix applies the HasPrefix predicate on the "api_key_prefix" field.
func APIKeyPrefixHasPrefix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasPrefix(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixHasSuffix applies the HasSuffix predicate on the "api_key_prefix" field.
func APIKeyPrefixHasSuffix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasSuffix(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixEqualFold applies the EqualFold predicate on the "api_key_prefix" field.
func APIKeyPrefixEqualFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEqualFold(FieldAPIKeyPrefix, v))
}

// APIKeyPrefixContainsFold applies the ContainsFold predicate on the "api_key_prefix" field.
func APIKeyPrefixContainsFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContainsFold(FieldAPIKeyPrefix, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldAgentType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldStatus, vs...))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldContainsFold(FieldDescription, v))
}

// EventCountEQ applies the EQ predicate on the "event_count" field.
func EventCountEQ(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldEventCount, v))
}

// EventCountNEQ applies the NEQ predicate on the "event_count" field.
func EventCountNEQ(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldEventCount, v))
}

// EventCountIn applies the In predicate on the "event_count" field.
func EventCountIn(vs ...int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldEventCount, vs...))
}

// EventCountNotIn applies the NotIn predicate on the "event_count" field.
func EventCountNotIn(vs ...int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldEventCount, vs...))
}

// EventCountGT applies the GT predicate on the "event_count" field.
func EventCountGT(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldEventCount, v))
}

// EventCountGTE applies the GTE predicate on the "event_count" field.
func EventCountGTE(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldEventCount, v))
}

// EventCountLT applies the LT predicate on the "event_count" field.
func EventCountLT(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldEventCount, v))
}

// EventCountLTE applies the LTE predicate on the "event_count" field.
func EventCountLTE(v int64) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldEventCount, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldLastSeenAt, v))
}

// LastSeenAtIsNil applies the IsNil predicate on the "last_seen_at" field.
func LastSeenAtIsNil() predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIsNull(FieldLastSeenAt))
}

// LastSeenAtNotNil applies the NotNil predicate on the "last_seen_at" field.
func LastSeenAtNotNil() predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotNull(FieldLastSeenAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWorkspace applies the HasEdge predicate on the "workspace" edge.
func HasWorkspace() predicate.RegisteredAgent {
	return predicate.RegisteredAgent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkspaceWith applies the HasEdge predicate on the "workspace" edge with a given conditions (other predicates).
func HasWorkspaceWith(preds ...predicate.Workspace) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(func(s *sql.Selector) {
		step := newWorkspaceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RegisteredAgent) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RegisteredAgent) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RegisteredAgent) predicate.RegisteredAgent {
	return predicate.RegisteredAgent(sql.NotPredicates(p))
}
