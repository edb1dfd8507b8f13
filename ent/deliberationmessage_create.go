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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
)

// DeliberationMessageCreate is the builder for creating a DeliberationMessage entity.
type DeliberationMessageCreate struct {
	config
	mutation *DeliberationMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DeliberationMessageCreate) SetSessionID(v uuid.UUID) *DeliberationMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *DeliberationMessageCreate) SetInstanceID(v uuid.UUID) *DeliberationMessageCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *DeliberationMessageCreate) SetMessageType(v deliberationmessage.MessageType) *DeliberationMessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DeliberationMessageCreate) SetContent(v string) *DeliberationMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *DeliberationMessageCreate) SetRound(v int) *DeliberationMessageCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliberationMessageCreate) SetCreatedAt(v time.Time) *DeliberationMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliberationMessageCreate) SetNillableCreatedAt(v *time.Time) *DeliberationMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeliberationMessageCreate) SetUpdatedAt(v time.Time) *DeliberationMessageCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeliberationMessageCreate) SetNillableUpdatedAt(v *time.Time) *DeliberationMessageCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliberationMessageCreate) SetID(v uuid.UUID) *DeliberationMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeliberationMessageCreate) SetNillableID(v *uuid.UUID) *DeliberationMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_c *DeliberationMessageCreate) SetSession(v *AnalysisSession) *DeliberationMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the DeliberationMessageMutation object of the builder.
func (_c *DeliberationMessageCreate) Mutation() *DeliberationMessageMutation {
	return _c.mutation
}

// Save creates the DeliberationMessage in the database.
func (_c *DeliberationMessageCreate) Save(ctx context.Context) (*DeliberationMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliberationMessageCreate) SaveX(ctx context.Context) *DeliberationMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliberationMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliberationMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliberationMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliberationmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deliberationmessage.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deliberationmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliberationMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DeliberationMessage.session_id"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "DeliberationMessage.instance_id"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "DeliberationMessage.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := deliberationmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DeliberationMessage.content"`)}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "DeliberationMessage.round"`)}
	}
	if v, ok := _c.mutation.Round(); ok {
		if err := deliberationmessage.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.round": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeliberationMessage.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DeliberationMessage.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "DeliberationMessage.session"`)}
	}
	return nil
}

func (_c *DeliberationMessageCreate) sqlSave(ctx context.Context) (*DeliberationMessage, error) {
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

func (_c *DeliberationMessageCreate) createSpec() (*DeliberationMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliberationMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliberationmessage.Table, sqlgraph.NewFieldSpec(deliberationmessage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(deliberationmessage.FieldInstanceID, field.TypeUUID, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(deliberationmessage.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(deliberationmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(deliberationmessage.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliberationmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deliberationmessage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliberationmessage.SessionTable,
			Columns: []string{deliberationmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeliberationMessageCreateBulk is the builder for creating many DeliberationMessage entities in bulk.
type DeliberationMessageCreateBulk struct {
	config
	err      error
	builders []*DeliberationMessageCreate
}

// Save creates the DeliberationMessage entities in the database.
func (_c *DeliberationMessageCreateBulk) Save(ctx context.Context) ([]*DeliberationMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliberationMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliberationMessageMutation)
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
func (_c *DeliberationMessageCreateBulk) SaveX(ctx context.Context) []*DeliberationMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliberationMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliberationMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
