// Code generated by ent, DO NOT EDIT.

package workflowstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workflowstep type in the database.
	Label = "workflow_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "step_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldAgentDefinitionID holds the string denoting the agent_definition_id field in the database.
	FieldAgentDefinitionID = "agent_definition_id"
	// FieldPromptTemplateID holds the string denoting the prompt_template_id field in the database.
	FieldPromptTemplateID = "prompt_template_id"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkflow holds the string denoting the workflow edge name in mutations.
	EdgeWorkflow = "workflow"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// Table holds the table name of the workflowstep in the database.
	Table = "workflow_steps"
	// WorkflowTable is the table that holds the workflow relation/edge.
	WorkflowTable = "workflow_steps"
	// WorkflowInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowInverseTable = "workflows"
	// WorkflowColumn is the table column denoting the workflow relation/edge.
	WorkflowColumn = "workflow_id"
)

// Columns holds all SQL columns for workflowstep fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldAgentDefinitionID,
	FieldPromptTemplateID,
	FieldStepIndex,
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
	// StepIndexValidator is a validator for the "step_index" field. It is called by the builders before save.
	StepIndexValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the WorkflowStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByAgentDefinitionID orders the results by the agent_definition_id field.
func ByAgentDefinitionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentDefinitionID, opts...).ToFunc()
}

// ByPromptTemplateID orders the results by the prompt_template_id field.
func ByPromptTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTemplateID, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkflowField orders the results by workflow field.
func ByWorkflowField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkflowStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkflowTable, WorkflowColumn),
	)
}
