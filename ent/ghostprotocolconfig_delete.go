// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// GhostProtocolConfigDelete is the builder for deleting a GhostProtocolConfig entity.
type GhostProtocolConfigDelete struct {
	config
	hooks    []Hook
	mutation *GhostProtocolConfigMutation
}

// Where appends a list predicates to the GhostProtocolConfigDelete builder.
func (_d *GhostProtocolConfigDelete) Where(ps ...predicate.GhostProtocolConfig) *GhostProtocolConfigDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GhostProtocolConfigDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GhostProtocolConfigDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GhostProtocolConfigDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ghostprotocolconfig.Table, sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID))
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

// GhostProtocolConfigDeleteOne is the builder for deleting a single GhostProtocolConfig entity.
type GhostProtocolConfigDeleteOne struct {
	_d *GhostProtocolConfigDelete
}

// Where appends a list predicates to the GhostProtocolConfigDelete builder.
func (_d *GhostProtocolConfigDeleteOne) Where(ps ...predicate.GhostProtocolConfig) *GhostProtocolConfigDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GhostProtocolConfigDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ghostprotocolconfig.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GhostProtocolConfigDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
