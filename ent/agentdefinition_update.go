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
	"github.com/swarmshield/swarmshield/ent/agentdefinition"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// AgentDefinitionUpdate is the builder for updating AgentDefinition entities.
type AgentDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdate) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentDefinitionUpdate) SetWorkspaceID(v uuid.UUID) *AgentDefinitionUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableWorkspaceID(v *uuid.UUID) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentDefinitionUpdate) SetName(v string) *AgentDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableName(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentDefinitionUpdate) SetRole(v string) *AgentDefinitionUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableRole(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *AgentDefinitionUpdate) SetExpertise(v string) *AgentDefinitionUpdate {
	_u.mutation.SetExpertise(v)
	return _u
}

// SetNillableExpertise sets the "expertise" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableExpertise(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetExpertise(*v)
	}
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *AgentDefinitionUpdate) ClearExpertise() *AgentDefinitionUpdate {
	_u.mutation.ClearExpertise()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdate) SetSystemPrompt(v string) *AgentDefinitionUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentDefinitionUpdate) SetModel(v string) *AgentDefinitionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableModel(v *string) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentDefinitionUpdate) ClearModel() *AgentDefinitionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentDefinitionUpdate) SetTemperature(v float64) *AgentDefinitionUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableTemperature(v *float64) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentDefinitionUpdate) AddTemperature(v float64) *AgentDefinitionUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentDefinitionUpdate) SetMaxTokens(v int) *AgentDefinitionUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentDefinitionUpdate) SetNillableMaxTokens(v *int) *AgentDefinitionUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentDefinitionUpdate) AddMaxTokens(v int) *AgentDefinitionUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefinitionUpdate) SetUpdatedAt(v time.Time) *AgentDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdate) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agentdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := agentdefinition.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.max_tokens": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(agentdefinition.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(agentdefinition.FieldExpertise, field.TypeString, value)
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(agentdefinition.FieldExpertise, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentdefinition.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agentdefinition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agentdefinition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agentdefinition.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agentdefinition.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentDefinitionUpdateOne is the builder for updating a single AgentDefinition entity.
type AgentDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentDefinitionMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentDefinitionUpdateOne) SetWorkspaceID(v uuid.UUID) *AgentDefinitionUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentDefinitionUpdateOne) SetName(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableName(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentDefinitionUpdateOne) SetRole(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableRole(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *AgentDefinitionUpdateOne) SetExpertise(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetExpertise(v)
	return _u
}

// SetNillableExpertise sets the "expertise" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableExpertise(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetExpertise(*v)
	}
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *AgentDefinitionUpdateOne) ClearExpertise() *AgentDefinitionUpdateOne {
	_u.mutation.ClearExpertise()
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *AgentDefinitionUpdateOne) SetSystemPrompt(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableSystemPrompt(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentDefinitionUpdateOne) SetModel(v string) *AgentDefinitionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableModel(v *string) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentDefinitionUpdateOne) ClearModel() *AgentDefinitionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *AgentDefinitionUpdateOne) SetTemperature(v float64) *AgentDefinitionUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableTemperature(v *float64) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *AgentDefinitionUpdateOne) AddTemperature(v float64) *AgentDefinitionUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *AgentDefinitionUpdateOne) SetMaxTokens(v int) *AgentDefinitionUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *AgentDefinitionUpdateOne) SetNillableMaxTokens(v *int) *AgentDefinitionUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *AgentDefinitionUpdateOne) AddMaxTokens(v int) *AgentDefinitionUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentDefinitionUpdateOne) SetUpdatedAt(v time.Time) *AgentDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentDefinitionMutation object of the builder.
func (_u *AgentDefinitionUpdateOne) Mutation() *AgentDefinitionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentDefinitionUpdate builder.
func (_u *AgentDefinitionUpdateOne) Where(ps ...predicate.AgentDefinition) *AgentDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentDefinitionUpdateOne) Select(field string, fields ...string) *AgentDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentDefinition entity.
func (_u *AgentDefinitionUpdateOne) Save(ctx context.Context) (*AgentDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) SaveX(ctx context.Context) *AgentDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentdefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agentdefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := agentdefinition.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxTokens(); ok {
		if err := agentdefinition.MaxTokensValidator(v); err != nil {
			return &ValidationError{Name: "max_tokens", err: fmt.Errorf(`ent: validator failed for field "AgentDefinition.max_tokens": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *AgentDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdefinition.Table, agentdefinition.Columns, sqlgraph.NewFieldSpec(agentdefinition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentdefinition.FieldID)
		for _, f := range fields {
			if !agentdefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentdefinition.FieldID {
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
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(agentdefinition.FieldWorkspaceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agentdefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentdefinition.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(agentdefinition.FieldExpertise, field.TypeString, value)
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(agentdefinition.FieldExpertise, field.TypeString)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(agentdefinition.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentdefinition.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentdefinition.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(agentdefinition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(agentdefinition.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(agentdefinition.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(agentdefinition.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentdefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
