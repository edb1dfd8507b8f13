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
	"github.com/swarmshield/swarmshield/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *AuditEntryCreate) SetResourceType(v string) *AuditEntryCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *AuditEntryCreate) SetResourceID(v string) *AuditEntryCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableResourceID(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *AuditEntryCreate) SetActorID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableActorID(v *uuid.UUID) *AuditEntryCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AuditEntryCreate) SetWorkspaceID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableWorkspaceID(v *uuid.UUID) *AuditEntryCreate {
	if v != nil {
		_c.SetWorkspaceID(*v)
	}
	return _c
}

// SetIP sets the "ip" field.
func (_c *AuditEntryCreate) SetIP(v string) *AuditEntryCreate {
	_c.mutation.SetIP(v)
	return _c
}

// SetNillableIP sets the "ip" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableIP(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetIP(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *AuditEntryCreate) SetUserAgent(v string) *AuditEntryCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableUserAgent(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AuditEntryCreate) SetMetadata(v map[string]interface{}) *AuditEntryCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditEntryCreate) SetCreatedAt(v time.Time) *AuditEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableCreatedAt(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditEntryCreate) SetID(v uuid.UUID) *AuditEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableID(v *uuid.UUID) *AuditEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := auditentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := auditentry.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "AuditEntry.resource_type"`)}
	}
	if v, ok := _c.mutation.ResourceType(); ok {
		if err := auditentry.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "AuditEntry.resource_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditEntry.created_at"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(auditentry.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(auditentry.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(auditentry.FieldActorID, field.TypeUUID, value)
		_node.ActorID = &value
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(auditentry.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = &value
	}
	if value, ok := _c.mutation.IP(); ok {
		_spec.SetField(auditentry.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(auditentry.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(auditentry.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
