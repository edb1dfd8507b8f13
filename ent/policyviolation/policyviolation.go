// Code generated by ent, DO NOT EDIT.

package policyviolation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the policyviolation type in the database.
	Label = "policy_violation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "violation_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldRuleName holds the string denoting the rule_name field in the database.
	FieldRuleName = "rule_name"
	// FieldActionTaken holds the string denoting the action_taken field in the database.
	FieldActionTaken = "action_taken"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolutionNote holds the string denoting the resolution_note field in the database.
	FieldResolutionNote = "resolution_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeEvent holds the string denoting the event edge name in mutations.
	EdgeEvent = "event"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// AgentEventFieldID holds the string denoting the ID field of the AgentEvent.
	AgentEventFieldID = "event_id"
	// Table holds the table name of the policyviolation in the database.
	Table = "policy_violations"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "policy_violations"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
	// EventTable is the table that holds the event relation/edge.
	EventTable = "policy_violations"
	// EventInverseTable is the table name for the AgentEvent entity.
	// It exists in this package in order to avoid circular dependency with the "agentevent" package.
	EventInverseTable = "agent_events"
	// EventColumn is the table column denoting the event relation/edge.
	EventColumn = "event_id"
)

// Columns holds all SQL columns for policyviolation fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldEventID,
	FieldRuleID,
	FieldRuleName,
	FieldActionTaken,
	FieldSeverity,
	FieldDetails,
	FieldResolved,
	FieldResolvedAt,
	FieldResolutionNote,
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
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ActionTaken defines the type for the "action_taken" enum field.
type ActionTaken string

// ActionTaken values.
const (
	ActionTakenFlagged ActionTaken = "flagged"
	ActionTakenBlocked ActionTaken = "blocked"
)

func (at ActionTaken) String() string {
	return string(at)
}

// ActionTakenValidator is a validator for the "action_taken" field enum values. It is called by the builders before save.
func ActionTakenValidator(at ActionTaken) error {
	switch at {
	case ActionTakenFlagged, ActionTakenBlocked:
		return nil
	default:
		return fmt.Errorf("policyviolation: invalid enum value for action_taken field: %q", at)
	}
}

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("policyviolation: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the PolicyViolation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByRuleName orders the results by the rule_name field.
func ByRuleName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleName, opts...).ToFunc()
}

// ByActionTaken orders the results by the action_taken field.
func ByActionTaken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionTaken, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolutionNote orders the results by the resolution_note field.
func ByResolutionNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNote, opts...).ToFunc()
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

// ByEventField orders the results by event field.
func ByEventField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
func newEventStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventInverseTable, AgentEventFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
	)
}
