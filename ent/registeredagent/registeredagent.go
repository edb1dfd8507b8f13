// Code generated by ent, DO NOT EDIT.

package registeredagent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the registeredagent type in the database.
	Label = "registered_agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAPIKeyHash holds the string denoting the api_key_hash field in the database.
	FieldAPIKeyHash = "api_key_hash"
	// FieldAPIKeyPrefix holds the string denoting the api_key_prefix field in the database.
	FieldAPIKeyPrefix = "api_key_prefix"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldEventCount holds the string denoting the event_count field in the database.
	FieldEventCount = "event_count"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// Table holds the table name of the registeredagent in the database.
	Table = "registered_agents"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "registered_agents"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for registeredagent fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldAPIKeyHash,
	FieldAPIKeyPrefix,
	FieldAgentType,
	FieldStatus,
	FieldRiskLevel,
	FieldDescription,
	FieldEventCount,
	FieldLastSeenAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// APIKeyPrefixValidator is a validator for the "api_key_prefix" field. It is called by the builders before save.
	APIKeyPrefixValidator func(string) error
	// DefaultEventCount holds the default value on creation for the "event_count" field.
	DefaultEventCount int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AgentType defines the type for the "agent_type" enum field.
type AgentType string

// AgentTypeAutonomous is the default value of the AgentType enum.
const DefaultAgentType = AgentTypeAutonomous

// AgentType values.
const (
	AgentTypeAutonomous     AgentType = "autonomous"
	AgentTypeSemiAutonomous AgentType = "semi_autonomous"
	AgentTypeToolAgent      AgentType = "tool_agent"
	AgentTypeChatbot        AgentType = "chatbot"
)

func (at AgentType) String() string {
	return string(at)
}

// AgentTypeValidator is a validator for the "agent_type" field enum values. It is called by the builders before save.
func AgentTypeValidator(at AgentType) error {
	switch at {
	case AgentTypeAutonomous, AgentTypeSemiAutonomous, AgentTypeToolAgent, AgentTypeChatbot:
		return nil
	default:
		return fmt.Errorf("registeredagent: invalid enum value for agent_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusRevoked   Status = "revoked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusSuspended, StatusRevoked:
		return nil
	default:
		return fmt.Errorf("registeredagent: invalid enum value for status field: %q", s)
	}
}

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevelLow is the default value of the RiskLevel enum.
const DefaultRiskLevel = RiskLevelLow

// RiskLevel values.
const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("registeredagent: invalid enum value for risk_level field: %q", rl)
	}
}

// OrderOption defines the ordering options for the RegisteredAgent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAPIKeyHash orders the results by the api_key_hash field.
func ByAPIKeyHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyHash, opts...).ToFunc()
}

// ByAPIKeyPrefix orders the results by the api_key_prefix field.
func ByAPIKeyPrefix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIKeyPrefix, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByEventCount orders the results by the event_count field.
func ByEventCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventCount, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
