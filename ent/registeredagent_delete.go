// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
)

// RegisteredAgentDelete is the builder for deleting a RegisteredAgent entity.
type RegisteredAgentDelete struct {
	config
	hooks    []Hook
	mutation *RegisteredAgentMutation
}

// Where appends a list predicates to the RegisteredAgentDelete builder.
func (_d *RegisteredAgentDelete) Where(ps ...predicate.RegisteredAgent) *RegisteredAgentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RegisteredAgentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegisteredAgentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RegisteredAgentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(registeredagent.Table, sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID))
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

// RegisteredAgentDeleteOne is the builder for deleting a single RegisteredAgent entity.
type RegisteredAgentDeleteOne struct {
	_d *RegisteredAgentDelete
}

// Where appends a list predicates to the RegisteredAgentDelete builder.
func (_d *RegisteredAgentDeleteOne) Where(ps ...predicate.RegisteredAgent) *RegisteredAgentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RegisteredAgentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{registeredagent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RegisteredAgentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
