// Code generated by ent, DO NOT EDIT.

package deliberationmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the deliberationmessage type in the database.
	Label = "deliberation_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "message_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldInstanceID holds the string denoting the instance_id field in the database.
	FieldInstanceID = "instance_id"
	// FieldMessageType holds the string denoting the message_type field in the database.
	FieldMessageType = "message_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldRound holds the string denoting the round field in the database.
	FieldRound = "round"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// AnalysisSessionFieldID holds the string denoting the ID field of the AnalysisSession.
	AnalysisSessionFieldID = "session_id"
	// Table holds the table name of the deliberationmessage in the database.
	Table = "deliberation_messages"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "deliberation_messages"
	// SessionInverseTable is the table name for the AnalysisSession entity.
	// It exists in this package in order to avoid circular dependency with the "analysissession" package.
	SessionInverseTable = "analysis_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for deliberationmessage fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldInstanceID,
	FieldMessageType,
	FieldContent,
	FieldRound,
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
	// RoundValidator is a validator for the "round" field. It is called by the builders before save.
	RoundValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// MessageType defines the type for the "message_type" enum field.
type MessageType string

// MessageType values.
const (
	MessageTypeAnalysis        MessageType = "analysis"
	MessageTypeArgument        MessageType = "argument"
	MessageTypeCounterArgument MessageType = "counter_argument"
	MessageTypeEvidence        MessageType = "evidence"
	MessageTypeSummary         MessageType = "summary"
	MessageTypeVoteRationale   MessageType = "vote_rationale"
)

func (mt MessageType) String() string {
	return string(mt)
}

// MessageTypeValidator is a validator for the "message_type" field enum values. It is called by the builders before save.
func MessageTypeValidator(mt MessageType) error {
	switch mt {
	case MessageTypeAnalysis, MessageTypeArgument, MessageTypeCounterArgument, MessageTypeEvidence, MessageTypeSummary, MessageTypeVoteRationale:
		return nil
	default:
		return fmt.Errorf("deliberationmessage: invalid enum value for message_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the DeliberationMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByInstanceID orders the results by the instance_id field.
func ByInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceID, opts...).ToFunc()
}

// ByMessageType orders the results by the message_type field.
func ByMessageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageType, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByRound orders the results by the round field.
func ByRound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRound, opts...).ToFunc()
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
