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
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// PolicyRuleCreate is the builder for creating a PolicyRule entity.
type PolicyRuleCreate struct {
	config
	mutation *PolicyRuleMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *PolicyRuleCreate) SetWorkspaceID(v uuid.UUID) *PolicyRuleCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PolicyRuleCreate) SetName(v string) *PolicyRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRuleType sets the "rule_type" field.
func (_c *PolicyRuleCreate) SetRuleType(v policyrule.RuleType) *PolicyRuleCreate {
	_c.mutation.SetRuleType(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PolicyRuleCreate) SetAction(v policyrule.Action) *PolicyRuleCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *PolicyRuleCreate) SetPriority(v int) *PolicyRuleCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillablePriority(v *int) *PolicyRuleCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PolicyRuleCreate) SetEnabled(v bool) *PolicyRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillableEnabled(v *bool) *PolicyRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *PolicyRuleCreate) SetConfig(v map[string]interface{}) *PolicyRuleCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetAppliesToEventTypes sets the "applies_to_event_types" field.
func (_c *PolicyRuleCreate) SetAppliesToEventTypes(v []string) *PolicyRuleCreate {
	_c.mutation.SetAppliesToEventTypes(v)
	return _c
}

// SetAppliesToAgentTypes sets the "applies_to_agent_types" field.
func (_c *PolicyRuleCreate) SetAppliesToAgentTypes(v []string) *PolicyRuleCreate {
	_c.mutation.SetAppliesToAgentTypes(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PolicyRuleCreate) SetDescription(v string) *PolicyRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillableDescription(v *string) *PolicyRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyRuleCreate) SetCreatedAt(v time.Time) *PolicyRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillableCreatedAt(v *time.Time) *PolicyRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolicyRuleCreate) SetUpdatedAt(v time.Time) *PolicyRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillableUpdatedAt(v *time.Time) *PolicyRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicyRuleCreate) SetID(v uuid.UUID) *PolicyRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PolicyRuleCreate) SetNillableID(v *uuid.UUID) *PolicyRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *PolicyRuleCreate) SetWorkspace(v *Workspace) *PolicyRuleCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the PolicyRuleMutation object of the builder.
func (_c *PolicyRuleCreate) Mutation() *PolicyRuleMutation {
	return _c.mutation
}

// Save creates the PolicyRule in the database.
func (_c *PolicyRuleCreate) Save(ctx context.Context) (*PolicyRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyRuleCreate) SaveX(ctx context.Context) *PolicyRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyRuleCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := policyrule.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := policyrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policyrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := policyrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := policyrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyRuleCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "PolicyRule.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PolicyRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := policyrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleType(); !ok {
		return &ValidationError{Name: "rule_type", err: errors.New(`ent: missing required field "PolicyRule.rule_type"`)}
	}
	if v, ok := _c.mutation.RuleType(); ok {
		if err := policyrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.rule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PolicyRule.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := policyrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "PolicyRule.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := policyrule.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PolicyRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PolicyRule.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "PolicyRule.workspace"`)}
	}
	return nil
}

func (_c *PolicyRuleCreate) sqlSave(ctx context.Context) (*PolicyRule, error) {
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

func (_c *PolicyRuleCreate) createSpec() (*PolicyRule, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policyrule.Table, sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(policyrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.RuleType(); ok {
		_spec.SetField(policyrule.FieldRuleType, field.TypeEnum, value)
		_node.RuleType = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(policyrule.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(policyrule.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(policyrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(policyrule.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.AppliesToEventTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToEventTypes, field.TypeJSON, value)
		_node.AppliesToEventTypes = value
	}
	if value, ok := _c.mutation.AppliesToAgentTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToAgentTypes, field.TypeJSON, value)
		_node.AppliesToAgentTypes = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(policyrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policyrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(policyrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyrule.WorkspaceTable,
			Columns: []string{policyrule.WorkspaceColumn},
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

// PolicyRuleCreateBulk is the builder for creating many PolicyRule entities in bulk.
type PolicyRuleCreateBulk struct {
	config
	err      error
	builders []*PolicyRuleCreate
}

// Save creates the PolicyRule entities in the database.
func (_c *PolicyRuleCreateBulk) Save(ctx context.Context) ([]*PolicyRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyRuleMutation)
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
func (_c *PolicyRuleCreateBulk) SaveX(ctx context.Context) []*PolicyRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
