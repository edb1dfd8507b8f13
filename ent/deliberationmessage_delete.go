// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// DeliberationMessageDelete is the builder for deleting a DeliberationMessage entity.
type DeliberationMessageDelete struct {
	config
	hooks    []Hook
	mutation *DeliberationMessageMutation
}

// Where appends a list predicates to the DeliberationMessageDelete builder.
func (_d *DeliberationMessageDelete) Where(ps ...predicate.DeliberationMessage) *DeliberationMessageDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliberationMessageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliberationMessageDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliberationMessageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliberationmessage.Table, sqlgraph.NewFieldSpec(deliberationmessage.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliberationMessageDeleteOne is the builder for deleting a single DeliberationMessage entity.
type DeliberationMessageDeleteOne struct {
	_d *DeliberationMessageDelete
}

// Where appends a list predicates to the DeliberationMessageDelete builder.
func (_d *DeliberationMessageDeleteOne) Where(ps ...predicate.DeliberationMessage) *DeliberationMessageDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliberationMessageDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliberationmessage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliberationMessageDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
