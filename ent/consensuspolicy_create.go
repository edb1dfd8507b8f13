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
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// ConsensusPolicyCreate is the builder for creating a ConsensusPolicy entity.
type ConsensusPolicyCreate struct {
	config
	mutation *ConsensusPolicyMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ConsensusPolicyCreate) SetWorkspaceID(v uuid.UUID) *ConsensusPolicyCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConsensusPolicyCreate) SetName(v string) *ConsensusPolicyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStrategy sets the "strategy" field.
func (_c *ConsensusPolicyCreate) SetStrategy(v consensuspolicy.Strategy) *ConsensusPolicyCreate {
	_c.mutation.SetStrategy(v)
	return _c
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_c *ConsensusPolicyCreate) SetNillableStrategy(v *consensuspolicy.Strategy) *ConsensusPolicyCreate {
	if v != nil {
		_c.SetStrategy(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *ConsensusPolicyCreate) SetThreshold(v float64) *ConsensusPolicyCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_c *ConsensusPolicyCreate) SetNillableThreshold(v *float64) *ConsensusPolicyCreate {
	if v != nil {
		_c.SetThreshold(*v)
	}
	return _c
}

// SetWeights sets the "weights" field.
func (_c *ConsensusPolicyCreate) SetWeights(v map[string]float64) *ConsensusPolicyCreate {
	_c.mutation.SetWeights(v)
	return _c
}

// SetRequireUnanimousOn sets the "require_unanimous_on" field.
func (_c *ConsensusPolicyCreate) SetRequireUnanimousOn(v []string) *ConsensusPolicyCreate {
	_c.mutation.SetRequireUnanimousOn(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsensusPolicyCreate) SetCreatedAt(v time.Time) *ConsensusPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsensusPolicyCreate) SetNillableCreatedAt(v *time.Time) *ConsensusPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConsensusPolicyCreate) SetUpdatedAt(v time.Time) *ConsensusPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConsensusPolicyCreate) SetNillableUpdatedAt(v *time.Time) *ConsensusPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsensusPolicyCreate) SetID(v uuid.UUID) *ConsensusPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConsensusPolicyCreate) SetNillableID(v *uuid.UUID) *ConsensusPolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ConsensusPolicyCreate) SetWorkspace(v *Workspace) *ConsensusPolicyCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the ConsensusPolicyMutation object of the builder.
func (_c *ConsensusPolicyCreate) Mutation() *ConsensusPolicyMutation {
	return _c.mutation
}

// Save creates the ConsensusPolicy in the database.
func (_c *ConsensusPolicyCreate) Save(ctx context.Context) (*ConsensusPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsensusPolicyCreate) SaveX(ctx context.Context) *ConsensusPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsensusPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsensusPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsensusPolicyCreate) defaults() {
	if _, ok := _c.mutation.Strategy(); !ok {
		v := consensuspolicy.DefaultStrategy
		_c.mutation.SetStrategy(v)
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		v := consensuspolicy.DefaultThreshold
		_c.mutation.SetThreshold(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consensuspolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := consensuspolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := consensuspolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsensusPolicyCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "ConsensusPolicy.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConsensusPolicy.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := consensuspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strategy(); !ok {
		return &ValidationError{Name: "strategy", err: errors.New(`ent: missing required field "ConsensusPolicy.strategy"`)}
	}
	if v, ok := _c.mutation.Strategy(); ok {
		if err := consensuspolicy.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "ConsensusPolicy.threshold"`)}
	}
	if v, ok := _c.mutation.Threshold(); ok {
		if err := consensuspolicy.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.threshold": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConsensusPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConsensusPolicy.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "ConsensusPolicy.workspace"`)}
	}
	return nil
}

func (_c *ConsensusPolicyCreate) sqlSave(ctx context.Context) (*ConsensusPolicy, error) {
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

func (_c *ConsensusPolicyCreate) createSpec() (*ConsensusPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &ConsensusPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consensuspolicy.Table, sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(consensuspolicy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Strategy(); ok {
		_spec.SetField(consensuspolicy.FieldStrategy, field.TypeEnum, value)
		_node.Strategy = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(consensuspolicy.FieldThreshold, field.TypeFloat64, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Weights(); ok {
		_spec.SetField(consensuspolicy.FieldWeights, field.TypeJSON, value)
		_node.Weights = value
	}
	if value, ok := _c.mutation.RequireUnanimousOn(); ok {
		_spec.SetField(consensuspolicy.FieldRequireUnanimousOn, field.TypeJSON, value)
		_node.RequireUnanimousOn = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consensuspolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(consensuspolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consensuspolicy.WorkspaceTable,
			Columns: []string{consensuspolicy.WorkspaceColumn},
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
	return _node, _spec
}

// ConsensusPolicyCreateBulk is the builder for creating many ConsensusPolicy entities in bulk.
type ConsensusPolicyCreateBulk struct {
	config
	err      error
	builders []*ConsensusPolicyCreate
}

// Save creates the ConsensusPolicy entities in the database.
func (_c *ConsensusPolicyCreateBulk) Save(ctx context.Context) ([]*ConsensusPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConsensusPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsensusPolicyMutation)
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
func (_c *ConsensusPolicyCreateBulk) SaveX(ctx context.Context) []*ConsensusPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsensusPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsensusPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
