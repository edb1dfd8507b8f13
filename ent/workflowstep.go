// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
)

// WorkflowStep is the model entity for the WorkflowStep schema.
type WorkflowStep struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID uuid.UUID `json:"workflow_id,omitempty"`
	// AgentDefinitionID holds the value of the "agent_definition_id" field.
	AgentDefinitionID uuid.UUID `json:"agent_definition_id,omitempty"`
	// PromptTemplateID holds the value of the "prompt_template_id" field.
	PromptTemplateID *uuid.UUID `json:"prompt_template_id,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowStepQuery when eager-loading is set.
	Edges        WorkflowStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowStepEdges holds the relations/edges for other nodes in the graph.
type WorkflowStepEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowStepEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldPromptTemplateID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case workflowstep.FieldStepIndex:
			values[i] = new(sql.NullInt64)
		case workflowstep.FieldCreatedAt, workflowstep.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case workflowstep.FieldID, workflowstep.FieldWorkflowID, workflowstep.FieldAgentDefinitionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowStep fields.
func (_m *WorkflowStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowstep.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workflowstep.FieldWorkflowID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value != nil {
				_m.WorkflowID = *value
			}
		case workflowstep.FieldAgentDefinitionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field agent_definition_id", values[i])
			} else if value != nil {
				_m.AgentDefinitionID = *value
			}
		case workflowstep.FieldPromptTemplateID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_template_id", values[i])
			} else if value.Valid {
				_m.PromptTemplateID = new(uuid.UUID)
				*_m.PromptTemplateID = *value.S.(*uuid.UUID)
			}
		case workflowstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case workflowstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workflowstep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowStep.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the WorkflowStep entity.
func (_m *WorkflowStep) QueryWorkflow() *WorkflowQuery {
	return NewWorkflowStepClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this WorkflowStep.
// Note that you need to call WorkflowStep.Unwrap() before calling this method if this WorkflowStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowStep) Update() *WorkflowStepUpdateOne {
	return NewWorkflowStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowStep) Unwrap() *WorkflowStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowStep) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkflowID))
	builder.WriteString(", ")
	builder.WriteString("agent_definition_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentDefinitionID))
	builder.WriteString(", ")
	if v := _m.PromptTemplateID; v != nil {
		builder.WriteString("prompt_template_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowSteps is a parsable slice of WorkflowStep.
type WorkflowSteps []*WorkflowStep
