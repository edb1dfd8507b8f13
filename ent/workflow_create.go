// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WorkflowCreate) SetWorkspaceID(v uuid.UUID) *WorkflowCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *WorkflowCreate) SetName(v string) *WorkflowCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *WorkflowCreate) SetDescription(v string) *WorkflowCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableDescription(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTriggerOn sets the "trigger_on" field.
func (_c *WorkflowCreate) SetTriggerOn(v workflow.TriggerOn) *WorkflowCreate {
	_c.mutation.SetTriggerOn(v)
	return _c
}

// SetNillableTriggerOn sets the "trigger_on" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableTriggerOn(v *workflow.TriggerOn) *WorkflowCreate {
	if v != nil {
		_c.SetTriggerOn(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *WorkflowCreate) SetEnabled(v bool) *WorkflowCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableEnabled(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetConsensusPolicyID sets the "consensus_policy_id" field.
func (_c *WorkflowCreate) SetConsensusPolicyID(v uuid.UUID) *WorkflowCreate {
	_c.mutation.SetConsensusPolicyID(v)
	return _c
}

// SetNillableConsensusPolicyID sets the "consensus_policy_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableConsensusPolicyID(v *uuid.UUID) *WorkflowCreate {
	if v != nil {
		_c.SetConsensusPolicyID(*v)
	}
	return _c
}

// SetGhostProtocolConfigID sets the "ghost_protocol_config_id" field.
func (_c *WorkflowCreate) SetGhostProtocolConfigID(v uuid.UUID) *WorkflowCreate {
	_c.mutation.SetGhostProtocolConfigID(v)
	return _c
}

// SetNillableGhostProtocolConfigID sets the "ghost_protocol_config_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableGhostProtocolConfigID(v *uuid.UUID) *WorkflowCreate {
	if v != nil {
		_c.SetGhostProtocolConfigID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *WorkflowCreate) SetMetadata(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v uuid.UUID) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableID(v *uuid.UUID) *WorkflowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *WorkflowCreate) SetWorkspace(v *Workspace) *WorkflowCreate {
	return _c.SetWorkspaceID(v.ID)
}

// AddStepIDs adds the "steps" edge to the WorkflowStep entity by IDs.
func (_c *WorkflowCreate) AddStepIDs(ids ...uuid.UUID) *WorkflowCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the WorkflowStep entity.
func (_c *WorkflowCreate) AddSteps(v ...*WorkflowStep) *WorkflowCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.TriggerOn(); !ok {
		v := workflow.DefaultTriggerOn
		_c.mutation.SetTriggerOn(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := workflow.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workflow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Workflow.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Workflow.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := workflow.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workflow.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerOn(); !ok {
		return &ValidationError{Name: "trigger_on", err: errors.New(`ent: missing required field "Workflow.trigger_on"`)}
	}
	if v, ok := _c.mutation.TriggerOn(); ok {
		if err := workflow.TriggerOnValidator(v); err != nil {
			return &ValidationError{Name: "trigger_on", err: fmt.Errorf(`ent: validator failed for field "Workflow.trigger_on": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Workflow.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "Workflow.workspace"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(workflow.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TriggerOn(); ok {
		_spec.SetField(workflow.FieldTriggerOn, field.TypeEnum, value)
		_node.TriggerOn = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(workflow.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.ConsensusPolicyID(); ok {
		_spec.SetField(workflow.FieldConsensusPolicyID, field.TypeUUID, value)
		_node.ConsensusPolicyID = &value
	}
	if value, ok := _c.mutation.GhostProtocolConfigID(); ok {
		_spec.SetField(workflow.FieldGhostProtocolConfigID, field.TypeUUID, value)
		_node.GhostProtocolConfigID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(workflow.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
