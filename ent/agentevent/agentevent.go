// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the agentevent type in the database.
	Label = "agent_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldRegisteredAgentID holds the string denoting the registered_agent_id field in the database.
	FieldRegisteredAgentID = "registered_agent_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSourceIP holds the string denoting the source_ip field in the database.
	FieldSourceIP = "source_ip"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEvaluationResult holds the string denoting the evaluation_result field in the database.
	FieldEvaluationResult = "evaluation_result"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// FieldFlaggedReason holds the string denoting the flagged_reason field in the database.
	FieldFlaggedReason = "flagged_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeViolations holds the string denoting the violations edge name in mutations.
	EdgeViolations = "violations"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// PolicyViolationFieldID holds the string denoting the ID field of the PolicyViolation.
	PolicyViolationFieldID = "violation_id"
	// AnalysisSessionFieldID holds the string denoting the ID field of the AnalysisSession.
	AnalysisSessionFieldID = "session_id"
	// Table holds the table name of the agentevent in the database.
	Table = "agent_events"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "agent_events"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
	// ViolationsTable is the table that holds the violations relation/edge.
	ViolationsTable = "policy_violations"
	// ViolationsInverseTable is the table name for the PolicyViolation entity.
	// It exists in this package in order to avoid circular dependency with the "policyviolation" package.
	ViolationsInverseTable = "policy_violations"
	// ViolationsColumn is the table column denoting the violations relation/edge.
	ViolationsColumn = "event_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "analysis_sessions"
	// SessionsInverseTable is the table name for the AnalysisSession entity.
	// It exists in this package in order to avoid circular dependency with the "analysissession" package.
	SessionsInverseTable = "analysis_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "event_id"
)

// Columns holds all SQL columns for agentevent fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldRegisteredAgentID,
	FieldEventType,
	FieldContent,
	FieldPayload,
	FieldSourceIP,
	FieldSeverity,
	FieldStatus,
	FieldEvaluationResult,
	FieldEvaluatedAt,
	FieldFlaggedReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeAction   EventType = "action"
	EventTypeOutput   EventType = "output"
	EventTypeToolCall EventType = "tool_call"
	EventTypeMessage  EventType = "message"
	EventTypeError    EventType = "error"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeAction, EventTypeOutput, EventTypeToolCall, EventTypeMessage, EventTypeError:
		return nil
	default:
		return fmt.Errorf("agentevent: invalid enum value for event_type field: %q", et)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// SeverityInfo is the default value of the Severity enum.
const DefaultSeverity = SeverityInfo

// Severity values.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("agentevent: invalid enum value for severity field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusAllowed Status = "allowed"
	StatusFlagged Status = "flagged"
	StatusBlocked Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAllowed, StatusFlagged, StatusBlocked:
		return nil
	default:
		return fmt.Errorf("agentevent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByRegisteredAgentID orders the results by the registered_agent_id field.
func ByRegisteredAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegisteredAgentID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySourceIP orders the results by the source_ip field.
func BySourceIP(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceIP, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByFlaggedReason orders the results by the flagged_reason field.
func ByFlaggedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlaggedReason, opts...).ToFunc()
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

// ByViolationsCount orders the results by violations count.
func ByViolationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newViolationsStep(), opts...)
	}
}

// ByViolations orders the results by violations terms.
func ByViolations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newViolationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
func newViolationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViolationsInverseTable, PolicyViolationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, AnalysisSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
