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
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// RegisteredAgentCreate is the builder for creating a RegisteredAgent entity.
type RegisteredAgentCreate struct {
	config
	mutation *RegisteredAgentMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RegisteredAgentCreate) SetWorkspaceID(v uuid.UUID) *RegisteredAgentCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RegisteredAgentCreate) SetName(v string) *RegisteredAgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_c *RegisteredAgentCreate) SetAPIKeyHash(v string) *RegisteredAgentCreate {
	_c.mutation.SetAPIKeyHash(v)
	return _c
}

// SetAPIKeyPrefix sets the "api_key_prefix" field.
func (_c *RegisteredAgentCreate) SetAPIKeyPrefix(v string) *RegisteredAgentCreate {
	_c.mutation.SetAPIKeyPrefix(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *RegisteredAgentCreate) SetAgentType(v registeredagent.AgentType) *RegisteredAgentCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableAgentType(v *registeredagent.AgentType) *RegisteredAgentCreate {
	if v != nil {
		_c.SetAgentType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RegisteredAgentCreate) SetStatus(v registeredagent.Status) *RegisteredAgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableStatus(v *registeredagent.Status) *RegisteredAgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *RegisteredAgentCreate) SetRiskLevel(v registeredagent.RiskLevel) *RegisteredAgentCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableRiskLevel(v *registeredagent.RiskLevel) *RegisteredAgentCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *RegisteredAgentCreate) SetDescription(v string) *RegisteredAgentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableDescription(v *string) *RegisteredAgentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetEventCount sets the "event_count" field.
func (_c *RegisteredAgentCreate) SetEventCount(v int64) *RegisteredAgentCreate {
	_c.mutation.SetEventCount(v)
	return _c
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableEventCount(v *int64) *RegisteredAgentCreate {
	if v != nil {
		_c.SetEventCount(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *RegisteredAgentCreate) SetLastSeenAt(v time.Time) *RegisteredAgentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableLastSeenAt(v *time.Time) *RegisteredAgentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RegisteredAgentCreate) SetCreatedAt(v time.Time) *RegisteredAgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableCreatedAt(v *time.Time) *RegisteredAgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RegisteredAgentCreate) SetUpdatedAt(v time.Time) *RegisteredAgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableUpdatedAt(v *time.Time) *RegisteredAgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RegisteredAgentCreate) SetID(v uuid.UUID) *RegisteredAgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RegisteredAgentCreate) SetNillableID(v *uuid.UUID) *RegisteredAgentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *RegisteredAgentCreate) SetWorkspace(v *Workspace) *RegisteredAgentCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the RegisteredAgentMutation object of the builder.
func (_c *RegisteredAgentCreate) Mutation() *RegisteredAgentMutation {
	return _c.mutation
}

// Save creates the RegisteredAgent in the database.
func (_c *RegisteredAgentCreate) Save(ctx context.Context) (*RegisteredAgent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RegisteredAgentCreate) SaveX(ctx context.Context) *RegisteredAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegisteredAgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegisteredAgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RegisteredAgentCreate) defaults() {
	if _, ok := _c.mutation.AgentType(); !ok {
		v := registeredagent.DefaultAgentType
		_c.mutation.SetAgentType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := registeredagent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := registeredagent.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.EventCount(); !ok {
		v := registeredagent.DefaultEventCount
		_c.mutation.SetEventCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := registeredagent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := registeredagent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := registeredagent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RegisteredAgentCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "RegisteredAgent.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RegisteredAgent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := registeredagent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.APIKeyHash(); !ok {
		return &ValidationError{Name: "api_key_hash", err: errors.New(`ent: missing required field "RegisteredAgent.api_key_hash"`)}
	}
	if _, ok := _c.mutation.APIKeyPrefix(); !ok {
		return &ValidationError{Name: "api_key_prefix", err: errors.New(`ent: missing required field "RegisteredAgent.api_key_prefix"`)}
	}
	if v, ok := _c.mutation.APIKeyPrefix(); ok {
		if err := registeredagent.APIKeyPrefixValidator(v); err != nil {
			return &ValidationError{Name: "api_key_prefix", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.api_key_prefix": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "RegisteredAgent.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := registeredagent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RegisteredAgent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := registeredagent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "RegisteredAgent.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := registeredagent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventCount(); !ok {
		return &ValidationError{Name: "event_count", err: errors.New(`ent: missing required field "RegisteredAgent.event_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RegisteredAgent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RegisteredAgent.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "RegisteredAgent.workspace"`)}
	}
	return nil
}

func (_c *RegisteredAgentCreate) sqlSave(ctx context.Context) (*RegisteredAgent, error) {
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

func (_c *RegisteredAgentCreate) createSpec() (*RegisteredAgent, *sqlgraph.CreateSpec) {
	var (
		_node = &RegisteredAgent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(registeredagent.Table, sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(registeredagent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.APIKeyHash(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyHash, field.TypeString, value)
		_node.APIKeyHash = value
	}
	if value, ok := _c.mutation.APIKeyPrefix(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyPrefix, field.TypeString, value)
		_node.APIKeyPrefix = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(registeredagent.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(registeredagent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(registeredagent.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(registeredagent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.EventCount(); ok {
		_spec.SetField(registeredagent.FieldEventCount, field.TypeInt64, value)
		_node.EventCount = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(registeredagent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(registeredagent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(registeredagent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredagent.WorkspaceTable,
			Columns: []string{registeredagent.WorkspaceColumn},
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

// RegisteredAgentCreateBulk is the builder for creating many RegisteredAgent entities in bulk.
type RegisteredAgentCreateBulk struct {
	config
	err      error
	builders []*RegisteredAgentCreate
}

// Save creates the RegisteredAgent entities in the database.
func (_c *RegisteredAgentCreateBulk) Save(ctx context.Context) ([]*RegisteredAgent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RegisteredAgent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RegisteredAgentMutation)
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
func (_c *RegisteredAgentCreateBulk) SaveX(ctx context.Context) []*RegisteredAgent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RegisteredAgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RegisteredAgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
