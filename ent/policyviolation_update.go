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
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// PolicyViolationUpdate is the builder for updating PolicyViolation entities.
type PolicyViolationUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyViolationMutation
}

// Where appends a list predicates to the PolicyViolationUpdate builder.
func (_u *PolicyViolationUpdate) Where(ps ...predicate.PolicyViolation) *PolicyViolationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *PolicyViolationUpdate) SetResolved(v bool) *PolicyViolationUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *PolicyViolationUpdate) SetNillableResolved(v *bool) *PolicyViolationUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PolicyViolationUpdate) SetResolvedAt(v time.Time) *PolicyViolationUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PolicyViolationUpdate) SetNillableResolvedAt(v *time.Time) *PolicyViolationUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PolicyViolationUpdate) ClearResolvedAt() *PolicyViolationUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionNote sets the "resolution_note" field.
func (_u *PolicyViolationUpdate) SetResolutionNote(v string) *PolicyViolationUpdate {
	_u.mutation.SetResolutionNote(v)
	return _u
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_u *PolicyViolationUpdate) SetNillableResolutionNote(v *string) *PolicyViolationUpdate {
	if v != nil {
		_u.SetResolutionNote(*v)
	}
	return _u
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (_u *PolicyViolationUpdate) ClearResolutionNote() *PolicyViolationUpdate {
	_u.mutation.ClearResolutionNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyViolationUpdate) SetUpdatedAt(v time.Time) *PolicyViolationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PolicyViolationMutation object of the builder.
func (_u *PolicyViolationUpdate) Mutation() *PolicyViolationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyViolationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyViolationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyViolationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyViolationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyViolationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyviolation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyViolationUpdate) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyViolation.workspace"`)
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyViolation.event"`)
	}
	return nil
}

func (_u *PolicyViolationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyviolation.Table, policyviolation.Columns, sqlgraph.NewFieldSpec(policyviolation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(policyviolation.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(policyviolation.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(policyviolation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(policyviolation.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolutionNote(); ok {
		_spec.SetField(policyviolation.FieldResolutionNote, field.TypeString, value)
	}
	if _u.mutation.ResolutionNoteCleared() {
		_spec.ClearField(policyviolation.FieldResolutionNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyviolation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyViolationUpdateOne is the builder for updating a single PolicyViolation entity.
type PolicyViolationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyViolationMutation
}

// SetResolved sets the "resolved" field.
func (_u *PolicyViolationUpdateOne) SetResolved(v bool) *PolicyViolationUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *PolicyViolationUpdateOne) SetNillableResolved(v *bool) *PolicyViolationUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PolicyViolationUpdateOne) SetResolvedAt(v time.Time) *PolicyViolationUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PolicyViolationUpdateOne) SetNillableResolvedAt(v *time.Time) *PolicyViolationUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PolicyViolationUpdateOne) ClearResolvedAt() *PolicyViolationUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionNote sets the "resolution_note" field.
func (_u *PolicyViolationUpdateOne) SetResolutionNote(v string) *PolicyViolationUpdateOne {
	_u.mutation.SetResolutionNote(v)
	return _u
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_u *PolicyViolationUpdateOne) SetNillableResolutionNote(v *string) *PolicyViolationUpdateOne {
	if v != nil {
		_u.SetResolutionNote(*v)
	}
	return _u
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (_u *PolicyViolationUpdateOne) ClearResolutionNote() *PolicyViolationUpdateOne {
	_u.mutation.ClearResolutionNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyViolationUpdateOne) SetUpdatedAt(v time.Time) *PolicyViolationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PolicyViolationMutation object of the builder.
func (_u *PolicyViolationUpdateOne) Mutation() *PolicyViolationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolicyViolationUpdate builder.
func (_u *PolicyViolationUpdateOne) Where(ps ...predicate.PolicyViolation) *PolicyViolationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyViolationUpdateOne) Select(field string, fields ...string) *PolicyViolationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyViolation entity.
func (_u *PolicyViolationUpdateOne) Save(ctx context.Context) (*PolicyViolation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyViolationUpdateOne) SaveX(ctx context.Context) *PolicyViolation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyViolationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyViolationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyViolationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyviolation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyViolationUpdateOne) check() error {
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyViolation.workspace"`)
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyViolation.event"`)
	}
	return nil
}

func (_u *PolicyViolationUpdateOne) sqlSave(ctx context.Context) (_node *PolicyViolation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyviolation.Table, policyviolation.Columns, sqlgraph.NewFieldSpec(policyviolation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyViolation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyviolation.FieldID)
		for _, f := range fields {
			if !policyviolation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policyviolation.FieldID {
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
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(policyviolation.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(policyviolation.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(policyviolation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(policyviolation.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolutionNote(); ok {
		_spec.SetField(policyviolation.FieldResolutionNote, field.TypeString, value)
	}
	if _u.mutation.ResolutionNoteCleared() {
		_spec.ClearField(policyviolation.FieldResolutionNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyviolation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PolicyViolation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyviolation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
