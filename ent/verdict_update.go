// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/verdict"
)

// VerdictUpdate is the builder for updating Verdict entities.
type VerdictUpdate struct {
	config
	hooks    []Hook
	mutation *VerdictMutation
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdate) Where(ps ...predicate.Verdict) *VerdictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdate) Mutation() *VerdictMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerdictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerdictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.session"`)
	}
	return nil
}

func (_u *VerdictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(verdict.FieldReasoning, field.TypeString)
	}
	if _u.mutation.VoteBreakdownCleared() {
		_spec.ClearField(verdict.FieldVoteBreakdown, field.TypeJSON)
	}
	if _u.mutation.DissentingOpinionsCleared() {
		_spec.ClearField(verdict.FieldDissentingOpinions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerdictUpdateOne is the builder for updating a single Verdict entity.
type VerdictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerdictMutation
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdateOne) Mutation() *VerdictMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdateOne) Where(ps ...predicate.Verdict) *VerdictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerdictUpdateOne) Select(field string, fields ...string) *VerdictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verdict entity.
func (_u *VerdictUpdateOne) Save(ctx context.Context) (*Verdict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdateOne) SaveX(ctx context.Context) *Verdict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerdictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.session"`)
	}
	return nil
}

func (_u *VerdictUpdateOne) sqlSave(ctx context.Context) (_node *Verdict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verdict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verdict.FieldID)
		for _, f := range fields {
			if !verdict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verdict.FieldID {
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
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(verdict.FieldReasoning, field.TypeString)
	}
	if _u.mutation.VoteBreakdownCleared() {
		_spec.ClearField(verdict.FieldVoteBreakdown, field.TypeJSON)
	}
	if _u.mutation.DissentingOpinionsCleared() {
		_spec.ClearField(verdict.FieldDissentingOpinions, field.TypeJSON)
	}
	_node = &Verdict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
