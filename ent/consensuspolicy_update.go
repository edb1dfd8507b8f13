// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// ConsensusPolicyUpdate is the builder for updating ConsensusPolicy entities.
type ConsensusPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *ConsensusPolicyMutation
}

// Where appends a list predicates to the ConsensusPolicyUpdate builder.
func (_u *ConsensusPolicyUpdate) Where(ps ...predicate.ConsensusPolicy) *ConsensusPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ConsensusPolicyUpdate) SetWorkspaceID(v uuid.UUID) *ConsensusPolicyUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ConsensusPolicyUpdate) SetNillableWorkspaceID(v *uuid.UUID) *ConsensusPolicyUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConsensusPolicyUpdate) SetName(v string) *ConsensusPolicyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConsensusPolicyUpdate) SetNillableName(v *string) *ConsensusPolicyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ConsensusPolicyUpdate) SetStrategy(v consensuspolicy.Strategy) *ConsensusPolicyUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ConsensusPolicyUpdate) SetNillableStrategy(v *consensuspolicy.Strategy) *ConsensusPolicyUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *ConsensusPolicyUpdate) SetThreshold(v float64) *ConsensusPolicyUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *ConsensusPolicyUpdate) SetNillableThreshold(v *float64) *ConsensusPolicyUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *ConsensusPolicyUpdate) AddThreshold(v float64) *ConsensusPolicyUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWeights sets the "weights" field.
func (_u *ConsensusPolicyUpdate) SetWeights(v map[string]float64) *ConsensusPolicyUpdate {
	_u.mutation.SetWeights(v)
	return _u
}

// ClearWeights clears the value of the "weights" field.
func (_u *ConsensusPolicyUpdate) ClearWeights() *ConsensusPolicyUpdate {
	_u.mutation.ClearWeights()
	return _u
}

// SetRequireUnanimousOn sets the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdate) SetRequireUnanimousOn(v []string) *ConsensusPolicyUpdate {
	_u.mutation.SetRequireUnanimousOn(v)
	return _u
}

// AppendRequireUnanimousOn appends value to the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdate) AppendRequireUnanimousOn(v []string) *ConsensusPolicyUpdate {
	_u.mutation.AppendRequireUnanimousOn(v)
	return _u
}

// ClearRequireUnanimousOn clears the value of the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdate) ClearRequireUnanimousOn() *ConsensusPolicyUpdate {
	_u.mutation.ClearRequireUnanimousOn()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsensusPolicyUpdate) SetUpdatedAt(v time.Time) *ConsensusPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ConsensusPolicyUpdate) SetWorkspace(v *Workspace) *ConsensusPolicyUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ConsensusPolicyMutation object of the builder.
func (_u *ConsensusPolicyUpdate) Mutation() *ConsensusPolicyMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ConsensusPolicyUpdate) ClearWorkspace() *ConsensusPolicyUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsensusPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsensusPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsensusPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsensusPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsensusPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consensuspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsensusPolicyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := consensuspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := consensuspolicy.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := consensuspolicy.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.threshold": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsensusPolicy.workspace"`)
	}
	return nil
}

func (_u *ConsensusPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consensuspolicy.Table, consensuspolicy.Columns, sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(consensuspolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(consensuspolicy.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(consensuspolicy.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(consensuspolicy.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weights(); ok {
		_spec.SetField(consensuspolicy.FieldWeights, field.TypeJSON, value)
	}
	if _u.mutation.WeightsCleared() {
		_spec.ClearField(consensuspolicy.FieldWeights, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequireUnanimousOn(); ok {
		_spec.SetField(consensuspolicy.FieldRequireUnanimousOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequireUnanimousOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consensuspolicy.FieldRequireUnanimousOn, value)
		})
	}
	if _u.mutation.RequireUnanimousOnCleared() {
		_spec.ClearField(consensuspolicy.FieldRequireUnanimousOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consensuspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consensuspolicy.WorkspaceTable,
			Columns: []string{consensuspolicy.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consensuspolicy.WorkspaceTable,
			Columns: []string{consensuspolicy.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consensuspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsensusPolicyUpdateOne is the builder for updating a single ConsensusPolicy entity.
type ConsensusPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsensusPolicyMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ConsensusPolicyUpdateOne) SetWorkspaceID(v uuid.UUID) *ConsensusPolicyUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ConsensusPolicyUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *ConsensusPolicyUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConsensusPolicyUpdateOne) SetName(v string) *ConsensusPolicyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConsensusPolicyUpdateOne) SetNillableName(v *string) *ConsensusPolicyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *ConsensusPolicyUpdateOne) SetStrategy(v consensuspolicy.Strategy) *ConsensusPolicyUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *ConsensusPolicyUpdateOne) SetNillableStrategy(v *consensuspolicy.Strategy) *ConsensusPolicyUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *ConsensusPolicyUpdateOne) SetThreshold(v float64) *ConsensusPolicyUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *ConsensusPolicyUpdateOne) SetNillableThreshold(v *float64) *ConsensusPolicyUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *ConsensusPolicyUpdateOne) AddThreshold(v float64) *ConsensusPolicyUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWeights sets the "weights" field.
func (_u *ConsensusPolicyUpdateOne) SetWeights(v map[string]float64) *ConsensusPolicyUpdateOne {
	_u.mutation.SetWeights(v)
	return _u
}

// ClearWeights clears the value of the "weights" field.
func (_u *ConsensusPolicyUpdateOne) ClearWeights() *ConsensusPolicyUpdateOne {
	_u.mutation.ClearWeights()
	return _u
}

// SetRequireUnanimousOn sets the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdateOne) SetRequireUnanimousOn(v []string) *ConsensusPolicyUpdateOne {
	_u.mutation.SetRequireUnanimousOn(v)
	return _u
}

// AppendRequireUnanimousOn appends value to the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdateOne) AppendRequireUnanimousOn(v []string) *ConsensusPolicyUpdateOne {
	_u.mutation.AppendRequireUnanimousOn(v)
	return _u
}

// ClearRequireUnanimousOn clears the value of the "require_unanimous_on" field.
func (_u *ConsensusPolicyUpdateOne) ClearRequireUnanimousOn() *ConsensusPolicyUpdateOne {
	_u.mutation.ClearRequireUnanimousOn()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsensusPolicyUpdateOne) SetUpdatedAt(v time.Time) *ConsensusPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *ConsensusPolicyUpdateOne) SetWorkspace(v *Workspace) *ConsensusPolicyUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the ConsensusPolicyMutation object of the builder.
func (_u *ConsensusPolicyUpdateOne) Mutation() *ConsensusPolicyMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *ConsensusPolicyUpdateOne) ClearWorkspace() *ConsensusPolicyUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the ConsensusPolicyUpdate builder.
func (_u *ConsensusPolicyUpdateOne) Where(ps ...predicate.ConsensusPolicy) *ConsensusPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsensusPolicyUpdateOne) Select(field string, fields ...string) *ConsensusPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConsensusPolicy entity.
func (_u *ConsensusPolicyUpdateOne) Save(ctx context.Context) (*ConsensusPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsensusPolicyUpdateOne) SaveX(ctx context.Context) *ConsensusPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsensusPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsensusPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsensusPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consensuspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsensusPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := consensuspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := consensuspolicy.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Threshold(); ok {
		if err := consensuspolicy.ThresholdValidator(v); err != nil {
			return &ValidationError{Name: "threshold", err: fmt.Errorf(`ent: validator failed for field "ConsensusPolicy.threshold": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ConsensusPolicy.workspace"`)
	}
	return nil
}

func (_u *ConsensusPolicyUpdateOne) sqlSave(ctx context.Context) (_node *ConsensusPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consensuspolicy.Table, consensuspolicy.Columns, sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConsensusPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consensuspolicy.FieldID)
		for _, f := range fields {
			if !consensuspolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consensuspolicy.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(consensuspolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(consensuspolicy.FieldStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(consensuspolicy.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(consensuspolicy.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Weights(); ok {
		_spec.SetField(consensuspolicy.FieldWeights, field.TypeJSON, value)
	}
	if _u.mutation.WeightsCleared() {
		_spec.ClearField(consensuspolicy.FieldWeights, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequireUnanimousOn(); ok {
		_spec.SetField(consensuspolicy.FieldRequireUnanimousOn, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequireUnanimousOn(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, consensuspolicy.FieldRequireUnanimousOn, value)
		})
	}
	if _u.mutation.RequireUnanimousOnCleared() {
		_spec.ClearField(consensuspolicy.FieldRequireUnanimousOn, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consensuspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consensuspolicy.WorkspaceTable,
			Columns: []string{consensuspolicy.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consensuspolicy.WorkspaceTable,
			Columns: []string{consensuspolicy.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ConsensusPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consensuspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
