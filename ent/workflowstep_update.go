// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
)

// WorkflowStepUpdate is the builder for updating WorkflowStep entities.
type WorkflowStepUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdate) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *WorkflowStepUpdate) SetWorkflowID(v uuid.UUID) *WorkflowStepUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableWorkflowID(v *uuid.UUID) *WorkflowStepUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_u *WorkflowStepUpdate) SetAgentDefinitionID(v uuid.UUID) *WorkflowStepUpdate {
	_u.mutation.SetAgentDefinitionID(v)
	return _u
}

// SetNillableAgentDefinitionID sets the "agent_definition_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableAgentDefinitionID(v *uuid.UUID) *WorkflowStepUpdate {
	if v != nil {
		_u.SetAgentDefinitionID(*v)
	}
	return _u
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (_u *WorkflowStepUpdate) SetPromptTemplateID(v uuid.UUID) *WorkflowStepUpdate {
	_u.mutation.SetPromptTemplateID(v)
	return _u
}

// SetNillablePromptTemplateID sets the "prompt_template_id" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillablePromptTemplateID(v *uuid.UUID) *WorkflowStepUpdate {
	if v != nil {
		_u.SetPromptTemplateID(*v)
	}
	return _u
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (_u *WorkflowStepUpdate) ClearPromptTemplateID() *WorkflowStepUpdate {
	_u.mutation.ClearPromptTemplateID()
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *WorkflowStepUpdate) SetStepIndex(v int) *WorkflowStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *WorkflowStepUpdate) SetNillableStepIndex(v *int) *WorkflowStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *WorkflowStepUpdate) AddStepIndex(v int) *WorkflowStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowStepUpdate) SetUpdatedAt(v time.Time) *WorkflowStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_u *WorkflowStepUpdate) SetWorkflow(v *Workflow) *WorkflowStepUpdate {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdate) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (_u *WorkflowStepUpdate) ClearWorkflow() *WorkflowStepUpdate {
	_u.mutation.ClearWorkflow()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdate) check() error {
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := workflowstep.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_index": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentDefinitionID(); ok {
		_spec.SetField(workflowstep.FieldAgentDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PromptTemplateID(); ok {
		_spec.SetField(workflowstep.FieldPromptTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.PromptTemplateIDCleared() {
		_spec.ClearField(workflowstep.FieldPromptTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowStepUpdateOne is the builder for updating a single WorkflowStep entity.
type WorkflowStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowStepMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *WorkflowStepUpdateOne) SetWorkflowID(v uuid.UUID) *WorkflowStepUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableWorkflowID(v *uuid.UUID) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_u *WorkflowStepUpdateOne) SetAgentDefinitionID(v uuid.UUID) *WorkflowStepUpdateOne {
	_u.mutation.SetAgentDefinitionID(v)
	return _u
}

// SetNillableAgentDefinitionID sets the "agent_definition_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableAgentDefinitionID(v *uuid.UUID) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetAgentDefinitionID(*v)
	}
	return _u
}

// SetPromptTemplateID sets the "prompt_template_id" field.
func (_u *WorkflowStepUpdateOne) SetPromptTemplateID(v uuid.UUID) *WorkflowStepUpdateOne {
	_u.mutation.SetPromptTemplateID(v)
	return _u
}

// SetNillablePromptTemplateID sets the "prompt_template_id" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillablePromptTemplateID(v *uuid.UUID) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetPromptTemplateID(*v)
	}
	return _u
}

// ClearPromptTemplateID clears the value of the "prompt_template_id" field.
func (_u *WorkflowStepUpdateOne) ClearPromptTemplateID() *WorkflowStepUpdateOne {
	_u.mutation.ClearPromptTemplateID()
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *WorkflowStepUpdateOne) SetStepIndex(v int) *WorkflowStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *WorkflowStepUpdateOne) SetNillableStepIndex(v *int) *WorkflowStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *WorkflowStepUpdateOne) AddStepIndex(v int) *WorkflowStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowStepUpdateOne) SetUpdatedAt(v time.Time) *WorkflowStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_u *WorkflowStepUpdateOne) SetWorkflow(v *Workflow) *WorkflowStepUpdateOne {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the WorkflowStepMutation object of the builder.
func (_u *WorkflowStepUpdateOne) Mutation() *WorkflowStepMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (_u *WorkflowStepUpdateOne) ClearWorkflow() *WorkflowStepUpdateOne {
	_u.mutation.ClearWorkflow()
	return _u
}

// Where appends a list predicates to the WorkflowStepUpdate builder.
func (_u *WorkflowStepUpdateOne) Where(ps ...predicate.WorkflowStep) *WorkflowStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowStepUpdateOne) Select(field string, fields ...string) *WorkflowStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowStep entity.
func (_u *WorkflowStepUpdateOne) Save(ctx context.Context) (*WorkflowStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) SaveX(ctx context.Context) *WorkflowStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepIndex(); ok {
		if err := workflowstep.StepIndexValidator(v); err != nil {
			return &ValidationError{Name: "step_index", err: fmt.Errorf(`ent: validator failed for field "WorkflowStep.step_index": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowStep.workflow"`)
	}
	return nil
}

func (_u *WorkflowStepUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowstep.Table, workflowstep.Columns, sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowstep.FieldID)
		for _, f := range fields {
			if !workflowstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowstep.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentDefinitionID(); ok {
		_spec.SetField(workflowstep.FieldAgentDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PromptTemplateID(); ok {
		_spec.SetField(workflowstep.FieldPromptTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.PromptTemplateIDCleared() {
		_spec.ClearField(workflowstep.FieldPromptTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(workflowstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowstep.WorkflowTable,
			Columns: []string{workflowstep.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
