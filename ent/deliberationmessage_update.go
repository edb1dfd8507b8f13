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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// DeliberationMessageUpdate is the builder for updating DeliberationMessage entities.
type DeliberationMessageUpdate struct {
	config
	hooks    []Hook
	mutation *DeliberationMessageMutation
}

// Where appends a list predicates to the DeliberationMessageUpdate builder.
func (_u *DeliberationMessageUpdate) Where(ps ...predicate.DeliberationMessage) *DeliberationMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DeliberationMessageUpdate) SetSessionID(v uuid.UUID) *DeliberationMessageUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeliberationMessageUpdate) SetNillableSessionID(v *uuid.UUID) *DeliberationMessageUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *DeliberationMessageUpdate) SetInstanceID(v uuid.UUID) *DeliberationMessageUpdate {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *DeliberationMessageUpdate) SetNillableInstanceID(v *uuid.UUID) *DeliberationMessageUpdate {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *DeliberationMessageUpdate) SetMessageType(v deliberationmessage.MessageType) *DeliberationMessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *DeliberationMessageUpdate) SetNillableMessageType(v *deliberationmessage.MessageType) *DeliberationMessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DeliberationMessageUpdate) SetContent(v string) *DeliberationMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DeliberationMessageUpdate) SetNillableContent(v *string) *DeliberationMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *DeliberationMessageUpdate) SetRound(v int) *DeliberationMessageUpdate {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *DeliberationMessageUpdate) SetNillableRound(v *int) *DeliberationMessageUpdate {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *DeliberationMessageUpdate) AddRound(v int) *DeliberationMessageUpdate {
	_u.mutation.AddRound(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeliberationMessageUpdate) SetUpdatedAt(v time.Time) *DeliberationMessageUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_u *DeliberationMessageUpdate) SetSession(v *AnalysisSession) *DeliberationMessageUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DeliberationMessageMutation object of the builder.
func (_u *DeliberationMessageUpdate) Mutation() *DeliberationMessageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (_u *DeliberationMessageUpdate) ClearSession() *DeliberationMessageUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliberationMessageUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliberationMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliberationMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliberationMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeliberationMessageUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deliberationmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliberationMessageUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := deliberationmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := deliberationmessage.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.round": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliberationMessage.session"`)
	}
	return nil
}

func (_u *DeliberationMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberationmessage.Table, deliberationmessage.Columns, sqlgraph.NewFieldSpec(deliberationmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(deliberationmessage.FieldInstanceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(deliberationmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(deliberationmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(deliberationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(deliberationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deliberationmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliberationMessageUpdateOne is the builder for updating a single DeliberationMessage entity.
type DeliberationMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliberationMessageMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DeliberationMessageUpdateOne) SetSessionID(v uuid.UUID) *DeliberationMessageUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DeliberationMessageUpdateOne) SetNillableSessionID(v *uuid.UUID) *DeliberationMessageUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstanceID sets the "instance_id" field.
func (_u *DeliberationMessageUpdateOne) SetInstanceID(v uuid.UUID) *DeliberationMessageUpdateOne {
	_u.mutation.SetInstanceID(v)
	return _u
}

// SetNillableInstanceID sets the "instance_id" field if the given value is not nil.
func (_u *DeliberationMessageUpdateOne) SetNillableInstanceID(v *uuid.UUID) *DeliberationMessageUpdateOne {
	if v != nil {
		_u.SetInstanceID(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *DeliberationMessageUpdateOne) SetMessageType(v deliberationmessage.MessageType) *DeliberationMessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *DeliberationMessageUpdateOne) SetNillableMessageType(v *deliberationmessage.MessageType) *DeliberationMessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DeliberationMessageUpdateOne) SetContent(v string) *DeliberationMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DeliberationMessageUpdateOne) SetNillableContent(v *string) *DeliberationMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetRound sets the "round" field.
func (_u *DeliberationMessageUpdateOne) SetRound(v int) *DeliberationMessageUpdateOne {
	_u.mutation.ResetRound()
	_u.mutation.SetRound(v)
	return _u
}

// SetNillableRound sets the "round" field if the given value is not nil.
func (_u *DeliberationMessageUpdateOne) SetNillableRound(v *int) *DeliberationMessageUpdateOne {
	if v != nil {
		_u.SetRound(*v)
	}
	return _u
}

// AddRound adds value to the "round" field.
func (_u *DeliberationMessageUpdateOne) AddRound(v int) *DeliberationMessageUpdateOne {
	_u.mutation.AddRound(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeliberationMessageUpdateOne) SetUpdatedAt(v time.Time) *DeliberationMessageUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_u *DeliberationMessageUpdateOne) SetSession(v *AnalysisSession) *DeliberationMessageUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the DeliberationMessageMutation object of the builder.
func (_u *DeliberationMessageUpdateOne) Mutation() *DeliberationMessageMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (_u *DeliberationMessageUpdateOne) ClearSession() *DeliberationMessageUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the DeliberationMessageUpdate builder.
func (_u *DeliberationMessageUpdateOne) Where(ps ...predicate.DeliberationMessage) *DeliberationMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliberationMessageUpdateOne) Select(field string, fields ...string) *DeliberationMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliberationMessage entity.
func (_u *DeliberationMessageUpdateOne) Save(ctx context.Context) (*DeliberationMessage, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliberationMessageUpdateOne) SaveX(ctx context.Context) *DeliberationMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliberationMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliberationMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeliberationMessageUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deliberationmessage.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliberationMessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := deliberationmessage.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.message_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Round(); ok {
		if err := deliberationmessage.RoundValidator(v); err != nil {
			return &ValidationError{Name: "round", err: fmt.Errorf(`ent: validator failed for field "DeliberationMessage.round": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliberationMessage.session"`)
	}
	return nil
}

func (_u *DeliberationMessageUpdateOne) sqlSave(ctx context.Context) (_node *DeliberationMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberationmessage.Table, deliberationmessage.Columns, sqlgraph.NewFieldSpec(deliberationmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliberationMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliberationmessage.FieldID)
		for _, f := range fields {
			if !deliberationmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliberationmessage.FieldID {
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
	if value, ok := _u.mutation.InstanceID(); ok {
		_spec.SetField(deliberationmessage.FieldInstanceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(deliberationmessage.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(deliberationmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Round(); ok {
		_spec.SetField(deliberationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRound(); ok {
		_spec.AddField(deliberationmessage.FieldRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deliberationmessage.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DeliberationMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberationmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
