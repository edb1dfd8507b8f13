// Code generated by ent, DO NOT EDIT.

package agentinstance

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the agentinstance type in the database.
	Label = "agent_instance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "instance_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAgentDefinitionID holds the string denoting the agent_definition_id field in the database.
	FieldAgentDefinitionID = "agent_definition_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVote holds the string denoting the vote field in the database.
	FieldVote = "vote"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldInitialAssessment holds the string denoting the initial_assessment field in the database.
	FieldInitialAssessment = "initial_assessment"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCostCents holds the string denoting the cost_cents field in the database.
	FieldCostCents = "cost_cents"
	// FieldTerminatedAt holds the string denoting the terminated_at field in the database.
	FieldTerminatedAt = "terminated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// AnalysisSessionFieldID holds the string denoting the ID field of the AnalysisSession.
	AnalysisSessionFieldID = "session_id"
	// Table holds the table name of the agentinstance in the database.
	Table = "agent_instances"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "agent_instances"
	// SessionInverseTable is the table name for the AnalysisSession entity.
	// It exists in this package in order to avoid circular dependency with the "analysissession" package.
	SessionInverseTable = "analysis_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for agentinstance fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldAgentDefinitionID,
	FieldRole,
	FieldStatus,
	FieldVote,
	FieldConfidence,
	FieldInitialAssessment,
	FieldTokensUsed,
	FieldCostCents,
	FieldTerminatedAt,
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
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// DefaultCostCents holds the default value on creation for the "cost_cents" field.
	DefaultCostCents int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("agentinstance: invalid enum value for status field: %q", s)
	}
}

// Vote defines the type for the "vote" enum field.
type Vote string

// Vote values.
const (
	VoteAllow Vote = "allow"
	VoteFlag  Vote = "flag"
	VoteBlock Vote = "block"
)

func (v Vote) String() string {
	return string(v)
}

// VoteValidator is a validator for the "vote" field enum values. It is called by the builders before save.
func VoteValidator(v Vote) error {
	switch v {
	case VoteAllow, VoteFlag, VoteBlock:
		return nil
	default:
		return fmt.Errorf("agentinstance: invalid enum value for vote field: %q", v)
	}
}

// OrderOption defines the ordering options for the AgentInstance queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAgentDefinitionID orders the results by the agent_definition_id field.
func ByAgentDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentDefinitionID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVote orders the results by the vote field.
func ByVote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVote, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByInitialAssessment orders the results by the initial_assessment field.
func ByInitialAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialAssessment, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCostCents orders the results by the cost_cents field.
func ByCostCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostCents, opts...).ToFunc()
}

// ByTerminatedAt orders the results by the terminated_at field.
func ByTerminatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, AnalysisSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
