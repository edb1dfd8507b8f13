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
	"github.com/swarmshield/swarmshield/ent/agentdefinition"
)

// AgentDefinitionCreate is the builder for creating a AgentDefinition entity.
type AgentDefinitionCreate struct {
	config
	mutation *AgentDefinitionMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentDefinitionCreate) SetWorkspaceID(v uuid.UUID) *AgentDefinitionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentDefinitionCreate) SetName(v string) *AgentDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentDefinitionCreate) SetRole(v string) *AgentDefinitionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetExpertise sets the "expertise" field.
func (_c *AgentDefinitionCreate) SetExpertise(v string) *AgentDefinitionCreate {
	_c.mutation.SetExpertise(v)
	return _c
}

// SetNillableExpertise sets the "expertise" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableExpertise(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetExpertise(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *AgentDefinitionCreate) SetSystemPrompt(v string) *AgentDefinitionCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentDefinitionCreate) SetModel(v string) *AgentDefinitionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableModel(v *string) *AgentDefinitionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *AgentDefinitionCreate) SetTemperature(v float64) *AgentDefinitionCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableTemperature(v *float64) *AgentDefinitionCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *AgentDefinitionCreate) SetMaxTokens(v int) *AgentDefinitionCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableMaxTokens(v *int) *AgentDefinitionCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentDefinitionCreate) SetCreatedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableCreatedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentDefinitionCreate) SetUpdatedAt(v time.Time) *AgentDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *AgentDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentDefinitionCreate) SetID(v uuid.UUID) *AgentDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentDefinitionCreate) SetNillableID(v *uuid.UUID) *AgentDefinitionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_c *AgentDefinitionCreate) Mutation() *AgentDefinitionMutation {
	return _c.mutation
}

// Save creates the AgentDefinition in the database.
func (_c *AgentDefinitionCreate) Save(ctx context.Context) (*AgentDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentDefinitionCreate) SaveX(ctx context.Context) *AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentDefinitionCreate) defaults() {
	if _, ok := _c.mutation.Temperature(); !ok {
		v := agentdefinition.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := agentdefinition.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentdefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentdefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agentdefinition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentDefinitionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentDefinition.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AgentDefinition.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := agentdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentDefinition.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "AgentDefinition.system_prompt"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "AgentDefinition.temperature"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "AgentDefinition.max_tokens"`)}
	}
	if v, ok := _c.mutation.MaxTokens(); ok {
		if err := agentdefinition.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.max_tokens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentDefinition.updated_at"`)}
	}
	return nil
}

func (_c *AgentDefinitionCreate) sqlSave(ctx context.Context) (*AgentDefinition, error) {
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

func (_c *AgentDefinitionCreate) createSpec() (*AgentDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentdefinition.Table, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(agentdefinition.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Expertise(); ok {
		_spec.SetField(agentdefinition.FieldExpertise, field.TypeString, value)
		_node.Expertise = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(agentdefinition.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(agentdefinition.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentdefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentDefinitionCreateBulk is the builder for creating many AgentDefinition entities in bulk.
type AgentDefinitionCreateBulk struct {
	config
	err      error
	builders []*AgentDefinitionCreate
}

// Save creates the AgentDefinition entities in the database.
func (_c *AgentDefinitionCreateBulk) Save(ctx context.Context) ([]*AgentDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentDefinitionMutation)
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
func (_c *AgentDefinitionCreateBulk) SaveX(ctx context.Context) []*AgentDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
