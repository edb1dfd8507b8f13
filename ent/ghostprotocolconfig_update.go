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
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// GhostProtocolConfigUpdate is the builder for updating GhostProtocolConfig entities.
type GhostProtocolConfigUpdate struct {
	config
	hooks    []Hook
	mutation *GhostProtocolConfigMutation
}

// Where appends a list predicates to the GhostProtocolConfigUpdate builder.
func (_u *GhostProtocolConfigUpdate) Where(ps ...predicate.GhostProtocolConfig) *GhostProtocolConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *GhostProtocolConfigUpdate) SetWorkspaceID(v uuid.UUID) *GhostProtocolConfigUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableWorkspaceID(v *uuid.UUID) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GhostProtocolConfigUpdate) SetName(v string) *GhostProtocolConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableName(v *string) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GhostProtocolConfigUpdate) SetEnabled(v bool) *GhostProtocolConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableEnabled(v *bool) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWipeStrategy sets the "wipe_strategy" field.
func (_u *GhostProtocolConfigUpdate) SetWipeStrategy(v ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigUpdate {
	_u.mutation.SetWipeStrategy(v)
	return _u
}

// SetNillableWipeStrategy sets the "wipe_strategy" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableWipeStrategy(v *ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetWipeStrategy(*v)
	}
	return _u
}

// SetWipeFields sets the "wipe_fields" field.
func (_u *GhostProtocolConfigUpdate) SetWipeFields(v []string) *GhostProtocolConfigUpdate {
	_u.mutation.SetWipeFields(v)
	return _u
}

// AppendWipeFields appends value to the "wipe_fields" field.
func (_u *GhostProtocolConfigUpdate) AppendWipeFields(v []string) *GhostProtocolConfigUpdate {
	_u.mutation.AppendWipeFields(v)
	return _u
}

// SetWipeDelaySeconds sets the "wipe_delay_seconds" field.
func (_u *GhostProtocolConfigUpdate) SetWipeDelaySeconds(v int) *GhostProtocolConfigUpdate {
	_u.mutation.ResetWipeDelaySeconds()
	_u.mutation.SetWipeDelaySeconds(v)
	return _u
}

// SetNillableWipeDelaySeconds sets the "wipe_delay_seconds" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableWipeDelaySeconds(v *int) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetWipeDelaySeconds(*v)
	}
	return _u
}

// AddWipeDelaySeconds adds value to the "wipe_delay_seconds" field.
func (_u *GhostProtocolConfigUpdate) AddWipeDelaySeconds(v int) *GhostProtocolConfigUpdate {
	_u.mutation.AddWipeDelaySeconds(v)
	return _u
}

// SetMaxSessionDurationSeconds sets the "max_session_duration_seconds" field.
func (_u *GhostProtocolConfigUpdate) SetMaxSessionDurationSeconds(v int) *GhostProtocolConfigUpdate {
	_u.mutation.ResetMaxSessionDurationSeconds()
	_u.mutation.SetMaxSessionDurationSeconds(v)
	return _u
}

// SetNillableMaxSessionDurationSeconds sets the "max_session_duration_seconds" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableMaxSessionDurationSeconds(v *int) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetMaxSessionDurationSeconds(*v)
	}
	return _u
}

// AddMaxSessionDurationSeconds adds value to the "max_session_duration_seconds" field.
func (_u *GhostProtocolConfigUpdate) AddMaxSessionDurationSeconds(v int) *GhostProtocolConfigUpdate {
	_u.mutation.AddMaxSessionDurationSeconds(v)
	return _u
}

// SetAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field.
func (_u *GhostProtocolConfigUpdate) SetAutoTerminateOnExpiry(v bool) *GhostProtocolConfigUpdate {
	_u.mutation.SetAutoTerminateOnExpiry(v)
	return _u
}

// SetNillableAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableAutoTerminateOnExpiry(v *bool) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetAutoTerminateOnExpiry(*v)
	}
	return _u
}

// SetCryptoShred sets the "crypto_shred" field.
func (_u *GhostProtocolConfigUpdate) SetCryptoShred(v bool) *GhostProtocolConfigUpdate {
	_u.mutation.SetCryptoShred(v)
	return _u
}

// SetNillableCryptoShred sets the "crypto_shred" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdate) SetNillableCryptoShred(v *bool) *GhostProtocolConfigUpdate {
	if v != nil {
		_u.SetCryptoShred(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GhostProtocolConfigUpdate) SetUpdatedAt(v time.Time) *GhostProtocolConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *GhostProtocolConfigUpdate) SetWorkspace(v *Workspace) *GhostProtocolConfigUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the GhostProtocolConfigMutation object of the builder.
func (_u *GhostProtocolConfigUpdate) Mutation() *GhostProtocolConfigMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *GhostProtocolConfigUpdate) ClearWorkspace() *GhostProtocolConfigUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GhostProtocolConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostProtocolConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GhostProtocolConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostProtocolConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GhostProtocolConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ghostprotocolconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostProtocolConfigUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := ghostprotocolconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipeStrategy(); ok {
		if err := ghostprotocolconfig.WipeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wipe_strategy", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipeDelaySeconds(); ok {
		if err := ghostprotocolconfig.WipeDelaySecondsValidator(v); err != nil {
			return &ValidationError{Name: "wipe_delay_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_delay_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSessionDurationSeconds(); ok {
		if err := ghostprotocolconfig.MaxSessionDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_session_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.max_session_duration_seconds": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GhostProtocolConfig.workspace"`)
	}
	return nil
}

func (_u *GhostProtocolConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostprotocolconfig.Table, ghostprotocolconfig.Columns, sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(ghostprotocolconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ghostprotocolconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WipeStrategy(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WipeFields(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWipeFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostprotocolconfig.FieldWipeFields, value)
		})
	}
	if value, ok := _u.mutation.WipeDelaySeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWipeDelaySeconds(); ok {
		_spec.AddField(ghostprotocolconfig.FieldWipeDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSessionDurationSeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldMaxSessionDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSessionDurationSeconds(); ok {
		_spec.AddField(ghostprotocolconfig.FieldMaxSessionDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoTerminateOnExpiry(); ok {
		_spec.SetField(ghostprotocolconfig.FieldAutoTerminateOnExpiry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CryptoShred(); ok {
		_spec.SetField(ghostprotocolconfig.FieldCryptoShred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ghostprotocolconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ghostprotocolconfig.WorkspaceTable,
			Columns: []string{ghostprotocolconfig.WorkspaceColumn},
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
			Table:   ghostprotocolconfig.WorkspaceTable,
			Columns: []string{ghostprotocolconfig.WorkspaceColumn},
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
			err = &NotFoundError{ghostprotocolconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GhostProtocolConfigUpdateOne is the builder for updating a single GhostProtocolConfig entity.
type GhostProtocolConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GhostProtocolConfigMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *GhostProtocolConfigUpdateOne) SetWorkspaceID(v uuid.UUID) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *GhostProtocolConfigUpdateOne) SetName(v string) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableName(v *string) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *GhostProtocolConfigUpdateOne) SetEnabled(v bool) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableEnabled(v *bool) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetWipeStrategy sets the "wipe_strategy" field.
func (_u *GhostProtocolConfigUpdateOne) SetWipeStrategy(v ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetWipeStrategy(v)
	return _u
}

// SetNillableWipeStrategy sets the "wipe_strategy" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableWipeStrategy(v *ghostprotocolconfig.WipeStrategy) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetWipeStrategy(*v)
	}
	return _u
}

// SetWipeFields sets the "wipe_fields" field.
func (_u *GhostProtocolConfigUpdateOne) SetWipeFields(v []string) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetWipeFields(v)
	return _u
}

// AppendWipeFields appends value to the "wipe_fields" field.
func (_u *GhostProtocolConfigUpdateOne) AppendWipeFields(v []string) *GhostProtocolConfigUpdateOne {
	_u.mutation.AppendWipeFields(v)
	return _u
}

// SetWipeDelaySeconds sets the "wipe_delay_seconds" field.
func (_u *GhostProtocolConfigUpdateOne) SetWipeDelaySeconds(v int) *GhostProtocolConfigUpdateOne {
	_u.mutation.ResetWipeDelaySeconds()
	_u.mutation.SetWipeDelaySeconds(v)
	return _u
}

// SetNillableWipeDelaySeconds sets the "wipe_delay_seconds" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableWipeDelaySeconds(v *int) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetWipeDelaySeconds(*v)
	}
	return _u
}

// AddWipeDelaySeconds adds value to the "wipe_delay_seconds" field.
func (_u *GhostProtocolConfigUpdateOne) AddWipeDelaySeconds(v int) *GhostProtocolConfigUpdateOne {
	_u.mutation.AddWipeDelaySeconds(v)
	return _u
}

// SetMaxSessionDurationSeconds sets the "max_session_duration_seconds" field.
func (_u *GhostProtocolConfigUpdateOne) SetMaxSessionDurationSeconds(v int) *GhostProtocolConfigUpdateOne {
	_u.mutation.ResetMaxSessionDurationSeconds()
	_u.mutation.SetMaxSessionDurationSeconds(v)
	return _u
}

// SetNillableMaxSessionDurationSeconds sets the "max_session_duration_seconds" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableMaxSessionDurationSeconds(v *int) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetMaxSessionDurationSeconds(*v)
	}
	return _u
}

// AddMaxSessionDurationSeconds adds value to the "max_session_duration_seconds" field.
func (_u *GhostProtocolConfigUpdateOne) AddMaxSessionDurationSeconds(v int) *GhostProtocolConfigUpdateOne {
	_u.mutation.AddMaxSessionDurationSeconds(v)
	return _u
}

// SetAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field.
func (_u *GhostProtocolConfigUpdateOne) SetAutoTerminateOnExpiry(v bool) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetAutoTerminateOnExpiry(v)
	return _u
}

// SetNillableAutoTerminateOnExpiry sets the "auto_terminate_on_expiry" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableAutoTerminateOnExpiry(v *bool) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetAutoTerminateOnExpiry(*v)
	}
	return _u
}

// SetCryptoShred sets the "crypto_shred" field.
func (_u *GhostProtocolConfigUpdateOne) SetCryptoShred(v bool) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetCryptoShred(v)
	return _u
}

// SetNillableCryptoShred sets the "crypto_shred" field if the given value is not nil.
func (_u *GhostProtocolConfigUpdateOne) SetNillableCryptoShred(v *bool) *GhostProtocolConfigUpdateOne {
	if v != nil {
		_u.SetCryptoShred(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GhostProtocolConfigUpdateOne) SetUpdatedAt(v time.Time) *GhostProtocolConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *GhostProtocolConfigUpdateOne) SetWorkspace(v *Workspace) *GhostProtocolConfigUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the GhostProtocolConfigMutation object of the builder.
func (_u *GhostProtocolConfigUpdateOne) Mutation() *GhostProtocolConfigMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *GhostProtocolConfigUpdateOne) ClearWorkspace() *GhostProtocolConfigUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the GhostProtocolConfigUpdate builder.
func (_u *GhostProtocolConfigUpdateOne) Where(ps ...predicate.GhostProtocolConfig) *GhostProtocolConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GhostProtocolConfigUpdateOne) Select(field string, fields ...string) *GhostProtocolConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GhostProtocolConfig entity.
func (_u *GhostProtocolConfigUpdateOne) Save(ctx context.Context) (*GhostProtocolConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GhostProtocolConfigUpdateOne) SaveX(ctx context.Context) *GhostProtocolConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GhostProtocolConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GhostProtocolConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GhostProtocolConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ghostprotocolconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GhostProtocolConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := ghostprotocolconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipeStrategy(); ok {
		if err := ghostprotocolconfig.WipeStrategyValidator(v); err != nil {
			return &ValidationError{Name: "wipe_strategy", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WipeDelaySeconds(); ok {
		if err := ghostprotocolconfig.WipeDelaySecondsValidator(v); err != nil {
			return &ValidationError{Name: "wipe_delay_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.wipe_delay_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxSessionDurationSeconds(); ok {
		if err := ghostprotocolconfig.MaxSessionDurationSecondsValidator(v); err != nil {
			return &ValidationError{Name: "max_session_duration_seconds", err: fmt.Errorf(`ent: validator failed for field "GhostProtocolConfig.max_session_duration_seconds": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GhostProtocolConfig.workspace"`)
	}
	return nil
}

func (_u *GhostProtocolConfigUpdateOne) sqlSave(ctx context.Context) (_node *GhostProtocolConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ghostprotocolconfig.Table, ghostprotocolconfig.Columns, sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GhostProtocolConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ghostprotocolconfig.FieldID)
		for _, f := range fields {
			if !ghostprotocolconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ghostprotocolconfig.FieldID {
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
		_spec.SetField(ghostprotocolconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(ghostprotocolconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WipeStrategy(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeStrategy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.WipeFields(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWipeFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ghostprotocolconfig.FieldWipeFields, value)
		})
	}
	if value, ok := _u.mutation.WipeDelaySeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldWipeDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWipeDelaySeconds(); ok {
		_spec.AddField(ghostprotocolconfig.FieldWipeDelaySeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSessionDurationSeconds(); ok {
		_spec.SetField(ghostprotocolconfig.FieldMaxSessionDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSessionDurationSeconds(); ok {
		_spec.AddField(ghostprotocolconfig.FieldMaxSessionDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoTerminateOnExpiry(); ok {
		_spec.SetField(ghostprotocolconfig.FieldAutoTerminateOnExpiry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CryptoShred(); ok {
		_spec.SetField(ghostprotocolconfig.FieldCryptoShred, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ghostprotocolconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ghostprotocolconfig.WorkspaceTable,
			Columns: []string{ghostprotocolconfig.WorkspaceColumn},
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
			Table:   ghostprotocolconfig.WorkspaceTable,
			Columns: []string{ghostprotocolconfig.WorkspaceColumn},
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
	_node = &GhostProtocolConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ghostprotocolconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
