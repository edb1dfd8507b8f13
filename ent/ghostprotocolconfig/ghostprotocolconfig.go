// Code generated by ent, DO NOT EDIT.

package ghostprotocolconfig

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the ghostprotocolconfig type in the database.
	Label = "ghost_protocol_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ghost_protocol_config_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldWipeStrategy holds the string denoting the wipe_strategy field in the database.
	FieldWipeStrategy = "wipe_strategy"
	// FieldWipeFields holds the string denoting the wipe_fields field in the database.
	FieldWipeFields = "wipe_fields"
	// FieldWipeDelaySeconds holds the string denoting the wipe_delay_seconds field in the database.
	FieldWipeDelaySeconds = "wipe_delay_seconds"
	// FieldMaxSessionDurationSeconds holds the string denoting the max_session_duration_seconds field in the database.
	FieldMaxSessionDurationSeconds = "max_session_duration_seconds"
	// FieldAutoTerminateOnExpiry holds the string denoting the auto_terminate_on_expiry field in the database.
	FieldAutoTerminateOnExpiry = "auto_terminate_on_expiry"
	// FieldCryptoShred holds the string denoting the crypto_shred field in the database.
	FieldCryptoShred = "crypto_shred"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// Table holds the table name of the ghostprotocolconfig in the database.
	Table = "ghost_protocol_configs"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "ghost_protocol_configs"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for ghostprotocolconfig fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldEnabled,
	FieldWipeStrategy,
	FieldWipeFields,
	FieldWipeDelaySeconds,
	FieldMaxSessionDurationSeconds,
	FieldAutoTerminateOnExpiry,
	FieldCryptoShred,
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
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultWipeDelaySeconds holds the default value on creation for the "wipe_delay_seconds" field.
	DefaultWipeDelaySeconds int
	// WipeDelaySecondsValidator is a validator for the "wipe_delay_seconds" field. It is called by the builders before save.
	WipeDelaySecondsValidator func(int) error
	// DefaultMaxSessionDurationSeconds holds the default value on creation for the "max_session_duration_seconds" field.
	DefaultMaxSessionDurationSeconds int
	// MaxSessionDurationSecondsValidator is a validator for the "max_session_duration_seconds" field. It is called by the builders before save.
	MaxSessionDurationSecondsValidator func(int) error
	// DefaultAutoTerminateOnExpiry holds the default value on creation for the "auto_terminate_on_expiry" field.
	DefaultAutoTerminateOnExpiry bool
	// DefaultCryptoShred holds the default value on creation for the "crypto_shred" field.
	DefaultCryptoShred bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// WipeStrategy defines the type for the "wipe_strategy" enum field.
type WipeStrategy string

// WipeStrategyImmediate is the default value of the WipeStrategy enum.
const DefaultWipeStrategy = WipeStrategyImmediate

// WipeStrategy values.
const (
	WipeStrategyImmediate WipeStrategy = "immediate"
	WipeStrategyDelayed   WipeStrategy = "delayed"
	WipeStrategyScheduled WipeStrategy = "scheduled"
)

func (ws WipeStrategy) String() string {
	return string(ws)
}

// WipeStrategyValidator is a validator for the "wipe_strategy" field enum values. It is called by the builders before save.
func WipeStrategyValidator(ws WipeStrategy) error {
	switch ws {
	case WipeStrategyImmediate, WipeStrategyDelayed, WipeStrategyScheduled:
		return nil
	default:
		return fmt.Errorf("ghostprotocolconfig: invalid enum value for wipe_strategy field: %q", ws)
	}
}

// OrderOption defines the ordering options for the GhostProtocolConfig queries.
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

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByWipeStrategy orders the results by the wipe_strategy field.
func ByWipeStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWipeStrategy, opts...).ToFunc()
}

// ByWipeDelaySeconds orders the results by the wipe_delay_seconds field.
func ByWipeDelaySeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWipeDelaySeconds, opts...).ToFunc()
}

// ByMaxSessionDurationSeconds orders the results by the max_session_duration_seconds field.
func ByMaxSessionDurationSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSessionDurationSeconds, opts...).ToFunc()
}

// ByAutoTerminateOnExpiry orders the results by the auto_terminate_on_expiry field.
func ByAutoTerminateOnExpiry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoTerminateOnExpiry, opts...).ToFunc()
}

// ByCryptoShred orders the results by the crypto_shred field.
func ByCryptoShred(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCryptoShred, opts...).ToFunc()
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
