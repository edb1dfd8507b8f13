// Code generated by ent, DO NOT EDIT.

package consensuspolicy

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the consensuspolicy type in the database.
	Label = "consensus_policy"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "consensus_policy_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStrategy holds the string denoting the strategy field in the database.
	FieldStrategy = "strategy"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldWeights holds the string denoting the weights field in the database.
	FieldWeights = "weights"
	// FieldRequireUnanimousOn holds the string denoting the require_unanimous_on field in the database.
	FieldRequireUnanimousOn = "require_unanimous_on"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// Table holds the table name of the consensuspolicy in the database.
	Table = "consensus_policies"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "consensus_policies"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for consensuspolicy fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldStrategy,
	FieldThreshold,
	FieldWeights,
	FieldRequireUnanimousOn,
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
	// DefaultThreshold holds the default value on creation for the "threshold" field.
	DefaultThreshold float64
	// ThresholdValidator is a validator for the "threshold" field. It is called by the builders before save.
	ThresholdValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Strategy defines the type for the "strategy" enum field.
type Strategy string

// StrategyMajority is the default value of the Strategy enum.
const DefaultStrategy = StrategyMajority

// Strategy values.
const (
	StrategyMajority      Strategy = "majority"
	StrategySupermajority Strategy = "supermajority"
	StrategyUnanimous     Strategy = "unanimous"
	StrategyWeighted      Strategy = "weighted"
)

func (s Strategy) String() string {
	return string(s)
}

// StrategyValidator is a validator for the "strategy" field enum values. It is called by the builders before save.
func StrategyValidator(s Strategy) error {
	switch s {
	case StrategyMajority, StrategySupermajority, StrategyUnanimous, StrategyWeighted:
		return nil
	default:
		return fmt.Errorf("consensuspolicy: invalid enum value for strategy field: %q", s)
	}
}

// OrderOption defines the ordering options for the ConsensusPolicy queries.
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

// ByStrategy orders the results by the strategy field.
func ByStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategy, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
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
