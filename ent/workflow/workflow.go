// Code generated by ent, DO NOT EDIT.

package workflow

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workflow type in the database.
	Label = "workflow"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workflow_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTriggerOn holds the string denoting the trigger_on field in the database.
	FieldTriggerOn = "trigger_on"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldConsensusPolicyID holds the string denoting the consensus_policy_id field in the database.
	FieldConsensusPolicyID = "consensus_policy_id"
	// FieldGhostProtocolConfigID holds the string denoting the ghost_protocol_config_id field in the database.
	FieldGhostProtocolConfigID = "ghost_protocol_config_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// WorkflowStepFieldID holds the string denoting the ID field of the WorkflowStep.
	WorkflowStepFieldID = "step_id"
	// Table holds the table name of the workflow in the database.
	Table = "workflows"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "workflows"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "workflow_steps"
	// StepsInverseTable is the table name for the WorkflowStep entity.
	// It exists in this package in order to avoid circular dependency with the "workflowstep" package.
	StepsInverseTable = "workflow_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "workflow_id"
)

// Columns holds all SQL columns for workflow fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldDescription,
	FieldTriggerOn,
	FieldEnabled,
	FieldConsensusPolicyID,
	FieldGhostProtocolConfigID,
	FieldMetadata,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// TriggerOn defines the type for the "trigger_on" enum field.
type TriggerOn string

// TriggerOnMatched is the default value of the TriggerOn enum.
const DefaultTriggerOn = TriggerOnMatched

// TriggerOn values.
const (
	TriggerOnMatched TriggerOn = "matched"
	TriggerOnAll     TriggerOn = "all"
	TriggerOnManual  TriggerOn = "manual"
)

func (to TriggerOn) String() string {
	return string(to)
}

// TriggerOnValidator is a validator for the "trigger_on" field enum values. It is called by the builders before save.
func TriggerOnValidator(to TriggerOn) error {
	switch to {
	case TriggerOnMatched, TriggerOnAll, TriggerOnManual:
		return nil
	default:
		return fmt.Errorf("workflow: invalid enum value for trigger_on field: %q", to)
	}
}

// OrderOption defines the ordering options for the Workflow queries.
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

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTriggerOn orders the results by the trigger_on field.
func ByTriggerOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerOn, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByConsensusPolicyID orders the results by the consensus_policy_id field.
func ByConsensusPolicyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsensusPolicyID, opts...).ToFunc()
}

// ByGhostProtocolConfigID orders the results by the ghost_protocol_config_id field.
func ByGhostProtocolConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGhostProtocolConfigID, opts...).ToFunc()
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

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, WorkflowStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
