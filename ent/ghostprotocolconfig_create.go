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
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// GhostProtocolConfigCreate is the builder for creating a GhostProtocolConfig entity.
type GhostProtocolConfigCreate struct {
	config
	mutation *GhostProtocolConfigMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *GhostProtocolConfigCreate) SetWorkspaceID(v uuid.UUID) *GhostProtocolConfigCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GhostProtocolConfigCreate) SetName(v string) *GhostProtocolConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *GhostProtocolConfigCreate) SetEnabled(v bool) *GhostProtocolConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableEnabled(v *bool) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetWipeStrategy sets the "wipe_strategy" field.
func (_c *GhostProtocolConfigCreate) SetWipeStrategy(v ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigCreate {
	_c.mutation.SetWipeStrategy(v)
	return _c
}

// SetNillableWipeStrategy sets the "wipe_strategy" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableWipeStrategy(v *ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetWipeStrategy(*v)
	}
	return _c
}

// SetWipeFields sets the "wipe_fields" field.
func (_c *GhostProtocolConfigCreate) SetWipeFields(v []string) *GhostProtocolConfigCreate {
	_c.mutation.SetWipeFields(v)
	return _c
}

// SetWipeDelaySeconds sets the "wipe_delay_seconds" field.
func (_c *GhostProtocolConfigCreate) SetWipeDelaySeconds(v int) *GhostProtocolConfigCreate {
	_c.mutation.SetWipeDelaySeconds(v)
	return _c
}

// SetNillableWipeDelaySeconds sets the "wipe_delay_seconds" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableWipeDelaySeconds(v *int) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetWipeDelaySeconds(*v)
	}
	return _c
}

// SetMaxSessionDurationSeconds sets the "max_session_duration_seconds" field.
func (_c *GhostProtocolConfigCreate) SetMaxSessionDurationSeconds(v int) *GhostProtocolConfigCreate {
	_c.mutation.SetMaxSessionDurationSeconds(v)
	return _c
}

// SetNillableMaxSessionDurationSeconds sets the "max_session_duration_seconds" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableMaxSessionDurationSeconds(v *int) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetMaxSessionDurationSeconds(*v)
	}
	return _c
}

// SetAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field.
func (_c *GhostProtocolConfigCreate) SetAutoTerminateOnExpiry(v bool) *GhostProtocolConfigCreate {
	_c.mutation.SetAutoTerminateOnExpiry(v)
	return _c
}

// SetNillableAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableAutoTerminateOnExpiry(v *bool) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetAutoTerminateOnExpiry(*v)
	}
	return _c
}

// SetCryptoShred sets the "crypto_shred" field.
func (_c *GhostProtocolConfigCreate) SetCryptoShred(v bool) *GhostProtocolConfigCreate {
	_c.mutation.SetCryptoShred(v)
	return _c
}

// SetNillableCryptoShred sets the "crypto_shred" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableCryptoShred(v *bool) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetCryptoShred(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GhostProtocolConfigCreate) SetCreatedAt(v time.Time) *GhostProtocolConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableCreatedAt(v *time.Time) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GhostProtocolConfigCreate) SetUpdatedAt(v time.Time) *GhostProtocolConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableUpdatedAt(v *time.Time) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GhostProtocolConfigCreate) SetID(v uuid.UUID) *GhostProtocolConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GhostProtocolConfigCreate) SetNillableID(v *uuid.UUID) *GhostProtocolConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *GhostProtocolConfigCreate) SetWorkspace(v *Workspace) *GhostProtocolConfigCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the GhostProtocolConfigMutation object of the builder.
func (_c *GhostProtocolConfigCreate) Mutation() *GhostProtocolConfigMutation {
	return _c.mutation
}

// Save creates the GhostProtocolConfig in the database.
func (_c *GhostProtocolConfigCreate) Save(ctx context.Context) (*GhostProtocolConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GhostProtocolConfigCreate) SaveX(ctx context.Context) *GhostProtocolConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostProtocolConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostProtocolConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GhostProtocolConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := ghostprotocolconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.WipeStrategy(); !ok {
		v := ghostprotocolconfig.DefaultWipeStrategy
		_c.mutation.SetWipeStrategy(v)
	}
	if _, ok := _c.mutation.WipeDelaySeconds(); !ok {
		v := ghostprotocolconfig.DefaultWipeDelaySeconds
		_c.mutation.SetWipeDelaySeconds(v)
	}
	if _, ok := _c.mutation.MaxSessionDurationSeconds(); !ok {
		v := ghostprotocolconfig.DefaultMaxSessionDurationSeconds
		_c.mutation.SetMaxSessionDurationSeconds(v)
	}
	if _, ok := _c.mutation.AutoTerminateOnExpiry(); !ok {
		v := ghostprotocolconfig.DefaultAutoTerminateOnExpiry
		_c.mutation.SetAutoTerminateOnExpiry(v)
	}
	if _, ok := _c.mutation.CryptoShred(); !ok {
		v := ghostprotocolconfig.DefaultCryptoShred
		_c.mutation.SetCryptoShred(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ghostprotocolconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ghostprotocolconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ghostprotocolconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GhostProtocolConfigCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "GhostProtocolConfig.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "GhostProtocolConfig.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := ghostprotocolconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "GhostProtocolConfig.enabled"`)}
	}
	if _, ok := _c.mutation.WipeStrategy(); !ok {
		return &ValidationError{Name: "wipe_strategy", err: errors.New(`ent: missing required field "GhostProtocolConfig.wipe_strategy"`)}
	}
	if v, ok := _c.mutation.WipeStrategy(); ok {
		if err := ghostprotocolconfig.WipeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wipe_strategy", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_strategy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WipeFields(); !ok {
		return &ValidationError{Name: "wipe_fields", err: errors.New(`ent: missing required field "GhostProtocolConfig.wipe_fields"`)}
	}
	if _, ok := _c.mutation.WipeDelaySeconds(); !ok {
		return &ValidationError{Name: "wipe_delay_seconds", err: errors.New(`ent: missing required field "GhostProtocolConfig.wipe_delay_seconds"`)}
	}
	if v, ok := _c.mutation.WipeDelaySeconds(); ok {
		if err := ghostprotocolconfig.WipeDelaySecondsValidator(v); err != nil {
			return &ValidationError{Name: "wipe_delay_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_delay_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxSessionDurationSeconds(); !ok {
		return &ValidationError{Name: "max_session_duration_seconds", err: errors.New(`ent: missing required field "GhostProtocolConfig.max_session_duration_seconds"`)}
	}
	if v, ok := _c.mutation.MaxSessionDurationSeconds(); ok {
		if err := ghostprotocolconfig.MaxSessionDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_session_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.max_session_duration_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoTerminateOnExpiry(); !ok {
		return &ValidationError{Name: "auto_terminate_on_expiry", err: errors.New(`ent: missing required field "GhostProtocolConfig.auto_terminate_on_expiry"`)}
	}
	if _, ok := _c.mutation.CryptoShred(); !ok {
		return &ValidationError{Name: "crypto_shred", err: errors.New(`ent: missing required field "GhostProtocolConfig.crypto_shred"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GhostProtocolConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GhostProtocolConfig.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "GhostProtocolConfig.workspace"`)}
	}
	return nil
}

func (_c *GhostProtocolConfigCreate) sqlSave(ctx context.Context) (*GhostProtocolConfig, error) {
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

func (_c *GhostProtocolConfigCreate) createSpec() (*GhostProtocolConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &GhostProtocolConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ghostprotocolconfig.Table, sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(ghostprotocolconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(ghostprotocolconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.WipeStrategy(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeStrategy, field.TypeEnum, value)
		_node.WipeStrategy = value
	}
	if value, ok := _c.mutation.WipeFields(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeFields, field.TypeJSON, value)
		_node.WipeFields = value
	}
	if value, ok := _c.mutation.WipeDelaySeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeDelaySeconds, field.TypeInt, value)
		_node.WipeDelaySeconds = value
	}
	if value, ok := _c.mutation.MaxSessionDurationSeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldMaxSessionDurationSeconds, field.TypeInt, value)
		_node.MaxSessionDurationSeconds = value
	}
	if value, ok := _c.mutation.AutoTerminateOnExpiry(); ok {
		_spec.SetField(ghostprotocolconfig.FieldAutoTerminateOnExpiry, field.TypeBool, value)
		_node.AutoTerminateOnExpiry = value
	}
	if value, ok := _c.mutation.CryptoShred(); ok {
		_spec.SetField(ghostprotocolconfig.FieldCryptoShred, field.TypeBool, value)
		_node.CryptoShred = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ghostprotocolconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ghostprotocolconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ghostprotocolconfig.WorkspaceTable,
			Columns: []string{ghostprotocolconfig.WorkspaceColumn},
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

// GhostProtocolConfigCreateBulk is the builder for creating many GhostProtocolConfig entities in bulk.
type GhostProtocolConfigCreateBulk struct {
	config
	err      error
	builders []*GhostProtocolConfigCreate
}

// Save creates the GhostProtocolConfig entities in the database.
func (_c *GhostProtocolConfigCreateBulk) Save(ctx context.Context) ([]*GhostProtocolConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GhostProtocolConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GhostProtocolConfigMutation)
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
func (_c *GhostProtocolConfigCreateBulk) SaveX(ctx context.Context) []*GhostProtocolConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GhostProtocolConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GhostProtocolConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
