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
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WorkflowUpdate) SetWorkspaceID(v uuid.UUID) *WorkflowUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableWorkspaceID(v *uuid.UUID) *WorkflowUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowUpdate) SetName(v string) *WorkflowUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableName(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkflowUpdate) SetDescription(v string) *WorkflowUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableDescription(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkflowUpdate) ClearDescription() *WorkflowUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTriggerOn sets the "trigger_on" field.
func (_u *WorkflowUpdate) SetTriggerOn(v workflow.TriggerOn) *WorkflowUpdate {
	_u.mutation.SetTriggerOn(v)
	return _u
}

// SetNillableTriggerOn sets the "trigger_on" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableTriggerOn(v *workflow.TriggerOn) *WorkflowUpdate {
	if v != nil {
		_u.SetTriggerOn(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowUpdate) SetEnabled(v bool) *WorkflowUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableEnabled(v *bool) *WorkflowUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConsensusPolicyID sets the "consensus_policy_id" field.
func (_u *WorkflowUpdate) SetConsensusPolicyID(v uuid.UUID) *WorkflowUpdate {
	_u.mutation.SetConsensusPolicyID(v)
	return _u
}

// SetNillableConsensusPolicyID sets the "consensus_policy_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableConsensusPolicyID(v *uuid.UUID) *WorkflowUpdate {
	if v != nil {
		_u.SetConsensusPolicyID(*v)
	}
	return _u
}

// ClearConsensusPolicyID clears the value of the "consensus_policy_id" field.
func (_u *WorkflowUpdate) ClearConsensusPolicyID() *WorkflowUpdate {
	_u.mutation.ClearConsensusPolicyID()
	return _u
}

// SetGhostProtocolConfigID sets the "ghost_protocol_config_id" field.
func (_u *WorkflowUpdate) SetGhostProtocolConfigID(v uuid.UUID) *WorkflowUpdate {
	_u.mutation.SetGhostProtocolConfigID(v)
	return _u
}

// SetNillableGhostProtocolConfigID sets the "ghost_protocol_config_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableGhostProtocolConfigID(v *uuid.UUID) *WorkflowUpdate {
	if v != nil {
		_u.SetGhostProtocolConfigID(*v)
	}
	return _u
}

// ClearGhostProtocolConfigID clears the value of the "ghost_protocol_config_id" field.
func (_u *WorkflowUpdate) ClearGhostProtocolConfigID() *WorkflowUpdate {
	_u.mutation.ClearGhostProtocolConfigID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *WorkflowUpdate) SetMetadata(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *WorkflowUpdate) ClearMetadata() *WorkflowUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *WorkflowUpdate) SetWorkspace(v *Workspace) *WorkflowUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_u *WorkflowUpdate) AddStepIDs(ids ...uuid.UUID) *WorkflowUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_u *WorkflowUpdate) AddSteps(v ...*WorkflowStep) *WorkflowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *WorkflowUpdate) ClearWorkspace() *WorkflowUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearSteps clears all "steps" edges to the WorkflowStep entity.
func (_u *WorkflowUpdate) ClearSteps() *WorkflowUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to WorkflowStep entities by IDs.
func (_u *WorkflowUpdate) RemoveStepIDs(ids ...uuid.UUID) *WorkflowUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to WorkflowStep entities.
func (_u *WorkflowUpdate) RemoveSteps(v ...*WorkflowStep) *WorkflowUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workflow.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerOn(); ok {
		if err := workflow.TriggerOnValidator(v); err != nil {
			return &ValidationError{Name: "trigger_on", err: fmt.Errorf(`ent: validator failed for field "Workflow.trigger_on": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Workflow.workspace"`)
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workflow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workflow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerOn(); ok {
		_spec.SetField(workflow.FieldTriggerOn, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflow.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsensusPolicyID(); ok {
		_spec.SetField(workflow.FieldConsensusPolicyID, field.TypeUUID, value)
	}
	if _u.mutation.ConsensusPolicyIDCleared() {
		_spec.ClearField(workflow.FieldConsensusPolicyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GhostProtocolConfigID(); ok {
		_spec.SetField(workflow.FieldGhostProtocolConfigID, field.TypeUUID, value)
	}
	if _u.mutation.GhostProtocolConfigIDCleared() {
		_spec.ClearField(workflow.FieldGhostProtocolConfigID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(workflow.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflow.WorkspaceTable,
			Columns: []string{workflow.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflow.WorkspaceTable,
			Columns: []string{workflow.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *WorkflowUpdateOne) SetWorkspaceID(v uuid.UUID) *WorkflowUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *WorkflowUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WorkflowUpdateOne) SetName(v string) *WorkflowUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableName(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *WorkflowUpdateOne) SetDescription(v string) *WorkflowUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableDescription(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *WorkflowUpdateOne) ClearDescription() *WorkflowUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTriggerOn sets the "trigger_on" field.
func (_u *WorkflowUpdateOne) SetTriggerOn(v workflow.TriggerOn) *WorkflowUpdateOne {
	_u.mutation.SetTriggerOn(v)
	return _u
}

// SetNillableTriggerOn sets the "trigger_on" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableTriggerOn(v *workflow.TriggerOn) *WorkflowUpdateOne {
	if v != nil {
		_u.SetTriggerOn(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *WorkflowUpdateOne) SetEnabled(v bool) *WorkflowUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableEnabled(v *bool) *WorkflowUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConsensusPolicyID sets the "consensus_policy_id" field.
func (_u *WorkflowUpdateOne) SetConsensusPolicyID(v uuid.UUID) *WorkflowUpdateOne {
	_u.mutation.SetConsensusPolicyID(v)
	return _u
}

// SetNillableConsensusPolicyID sets the "consensus_policy_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableConsensusPolicyID(v *uuid.UUID) *WorkflowUpdateOne {
	if v != nil {
		_u.SetConsensusPolicyID(*v)
	}
	return _u
}

// ClearConsensusPolicyID clears the value of the "consensus_policy_id" field.
func (_u *WorkflowUpdateOne) ClearConsensusPolicyID() *WorkflowUpdateOne {
	_u.mutation.ClearConsensusPolicyID()
	return _u
}

// SetGhostProtocolConfigID sets the "ghost_protocol_config_id" field.
func (_u *WorkflowUpdateOne) SetGhostProtocolConfigID(v uuid.UUID) *WorkflowUpdateOne {
	_u.mutation.SetGhostProtocolConfigID(v)
	return _u
}

// SetNillableGhostProtocolConfigID sets the "ghost_protocol_config_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableGhostProtocolConfigID(v *uuid.UUID) *WorkflowUpdateOne {
	if v != nil {
		_u.SetGhostProtocolConfigID(*v)
	}
	return _u
}

// ClearGhostProtocolConfigID clears the value of the "ghost_protocol_config_id" field.
func (_u *WorkflowUpdateOne) ClearGhostProtocolConfigID() *WorkflowUpdateOne {
	_u.mutation.ClearGhostProtocolConfigID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *WorkflowUpdateOne) SetMetadata(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *WorkflowUpdateOne) ClearMetadata() *WorkflowUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *WorkflowUpdateOne) SetWorkspace(v *Workspace) *WorkflowUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_u *WorkflowUpdateOne) AddStepIDs(ids ...uuid.UUID) *WorkflowUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_u *WorkflowUpdateOne) AddSteps(v ...*WorkflowStep) *WorkflowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *WorkflowUpdateOne) ClearWorkspace() *WorkflowUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearSteps clears all "steps" edges to the WorkflowStep entity.
func (_u *WorkflowUpdateOne) ClearSteps() *WorkflowUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to WorkflowStep entities by IDs.
func (_u *WorkflowUpdateOne) RemoveStepIDs(ids ...uuid.UUID) *WorkflowUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to WorkflowStep entities.
func (_u *WorkflowUpdateOne) RemoveSteps(v ...*WorkflowStep) *WorkflowUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workflow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workflow.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerOn(); ok {
		if err := workflow.TriggerOnValidator(v); err != nil {
			return &ValidationError{Name: "trigger_on", err: fmt.Errorf(`ent: validator failed for field "Workflow.trigger_on": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Workflow.workspace"`)
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(workflow.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(workflow.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TriggerOn(); ok {
		_spec.SetField(workflow.FieldTriggerOn, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(workflow.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConsensusPolicyID(); ok {
		_spec.SetField(workflow.FieldConsensusPolicyID, field.TypeUUID, value)
	}
	if _u.mutation.ConsensusPolicyIDCleared() {
		_spec.ClearField(workflow.FieldConsensusPolicyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.GhostProtocolConfigID(); ok {
		_spec.SetField(workflow.FieldGhostProtocolConfigID, field.TypeUUID, value)
	}
	if _u.mutation.GhostProtocolConfigIDCleared() {
		_spec.ClearField(workflow.FieldGhostProtocolConfigID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(workflow.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflow.WorkspaceTable,
			Columns: []string{workflow.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflow.WorkspaceTable,
			Columns: []string{workflow.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.StepsTable,
			Columns: []string{workflow.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowstep.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
