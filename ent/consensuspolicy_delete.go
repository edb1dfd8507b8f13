// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// ConsensusPolicyDelete is the builder for deleting a ConsensusPolicy entity.
type ConsensusPolicyDelete struct {
	config
	hooks    []Hook
	mutation *ConsensusPolicyMutation
}

// Where appends a list predicates to the ConsensusPolicyDelete builder.
func (_d *ConsensusPolicyDelete) Where(ps ...predicate.ConsensusPolicy) *ConsensusPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsensusPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsensusPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsensusPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consensuspolicy.Table, sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID))
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

// ConsensusPolicyDeleteOne is the builder for deleting a single ConsensusPolicy entity.
type ConsensusPolicyDeleteOne struct {
	_d *ConsensusPolicyDelete
}

// Where appends a list predicates to the ConsensusPolicyDelete builder.
func (_d *ConsensusPolicyDeleteOne) Where(ps ...predicate.ConsensusPolicy) *ConsensusPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsensusPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consensuspolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsensusPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
