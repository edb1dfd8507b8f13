// Code generated by ent, DO NOT EDIT.

package verdict

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verdict type in the database.
	Label = "verdict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "verdict_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldVoteBreakdown holds the string denoting the vote_breakdown field in the database.
	FieldVoteBreakdown = "vote_breakdown"
	// FieldDissentingOpinions holds the string denoting the dissenting_opinions field in the database.
	FieldDissentingOpinions = "dissenting_opinions"
	// FieldStrategyUsed holds the string denoting the strategy_used field in the database.
	FieldStrategyUsed = "strategy_used"
	// FieldConsensusReached holds the string denoting the consensus_reached field in the database.
	FieldConsensusReached = "consensus_reached"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// AnalysisSessionFieldID holds the string denoting the ID field of the AnalysisSession.
	AnalysisSessionFieldID = "session_id"
	// Table holds the table name of the verdict in the database.
	Table = "verdicts"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "verdicts"
	// SessionInverseTable is the table name for the AnalysisSession entity.
	// It exists in this package in order to avoid circular dependency with the "analysissession" package.
	SessionInverseTable = "analysis_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for verdict fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldWorkspaceID,
	FieldDecision,
	FieldConfidence,
	FieldReasoning,
	FieldVoteBreakdown,
	FieldDissentingOpinions,
	FieldStrategyUsed,
	FieldConsensusReached,
	FieldCreatedAt,
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
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionAllow    Decision = "allow"
	DecisionFlag     Decision = "flag"
	DecisionBlock    Decision = "block"
	DecisionEscalate Decision = "escalate"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionAllow, DecisionFlag, DecisionBlock, DecisionEscalate:
		return nil
	default:
		return fmt.Errorf("verdict: invalid enum value for decision field: %q", d)
	}
}

// OrderOption defines the ordering options for the Verdict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByStrategyUsed orders the results by the strategy_used field.
func ByStrategyUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyUsed, opts...).ToFunc()
}

// ByConsensusReached orders the results by the consensus_reached field.
func ByConsensusReached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusReached, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
