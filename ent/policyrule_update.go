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
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// PolicyRuleUpdate is the builder for updating PolicyRule entities.
type PolicyRuleUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyRuleMutation
}

// Where appends a list predicates to the PolicyRuleUpdate builder.
func (_u *PolicyRuleUpdate) Where(ps ...predicate.PolicyRule) *PolicyRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PolicyRuleUpdate) SetWorkspaceID(v uuid.UUID) *PolicyRuleUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableWorkspaceID(v *uuid.UUID) *PolicyRuleUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PolicyRuleUpdate) SetName(v string) *PolicyRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableName(v *string) *PolicyRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *PolicyRuleUpdate) SetRuleType(v policyrule.RuleType) *PolicyRuleUpdate {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableRuleType(v *policyrule.RuleType) *PolicyRuleUpdate {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PolicyRuleUpdate) SetAction(v policyrule.Action) *PolicyRuleUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableAction(v *policyrule.Action) *PolicyRuleUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PolicyRuleUpdate) SetPriority(v int) *PolicyRuleUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillablePriority(v *int) *PolicyRuleUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PolicyRuleUpdate) AddPriority(v int) *PolicyRuleUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PolicyRuleUpdate) SetEnabled(v bool) *PolicyRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableEnabled(v *bool) *PolicyRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PolicyRuleUpdate) SetConfig(v map[string]interface{}) *PolicyRuleUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PolicyRuleUpdate) ClearConfig() *PolicyRuleUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetAppliesToEventTypes sets the "applies_to_event_types" field.
func (_u *PolicyRuleUpdate) SetAppliesToEventTypes(v []string) *PolicyRuleUpdate {
	_u.mutation.SetAppliesToEventTypes(v)
	return _u
}

// AppendAppliesToEventTypes appends value to the "applies_to_event_types" field.
func (_u *PolicyRuleUpdate) AppendAppliesToEventTypes(v []string) *PolicyRuleUpdate {
	_u.mutation.AppendAppliesToEventTypes(v)
	return _u
}

// ClearAppliesToEventTypes clears the value of the "applies_to_event_types" field.
func (_u *PolicyRuleUpdate) ClearAppliesToEventTypes() *PolicyRuleUpdate {
	_u.mutation.ClearAppliesToEventTypes()
	return _u
}

// SetAppliesToAgentTypes sets the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdate) SetAppliesToAgentTypes(v []string) *PolicyRuleUpdate {
	_u.mutation.SetAppliesToAgentTypes(v)
	return _u
}

// AppendAppliesToAgentTypes appends value to the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdate) AppendAppliesToAgentTypes(v []string) *PolicyRuleUpdate {
	_u.mutation.AppendAppliesToAgentTypes(v)
	return _u
}

// ClearAppliesToAgentTypes clears the value of the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdate) ClearAppliesToAgentTypes() *PolicyRuleUpdate {
	_u.mutation.ClearAppliesToAgentTypes()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PolicyRuleUpdate) SetDescription(v string) *PolicyRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PolicyRuleUpdate) SetNillableDescription(v *string) *PolicyRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PolicyRuleUpdate) ClearDescription() *PolicyRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyRuleUpdate) SetUpdatedAt(v time.Time) *PolicyRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *PolicyRuleUpdate) SetWorkspace(v *Workspace) *PolicyRuleUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the PolicyRuleMutation object of the builder.
func (_u *PolicyRuleUpdate) Mutation() *PolicyRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *PolicyRuleUpdate) ClearWorkspace() *PolicyRuleUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := policyrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleType(); ok {
		if err := policyrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := policyrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := policyrule.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.priority": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyRule.workspace"`)
	}
	return nil
}

func (_u *PolicyRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyrule.Table, policyrule.Columns, sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(policyrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(policyrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(policyrule.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(policyrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(policyrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(policyrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(policyrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(policyrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesToEventTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesToEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyrule.FieldAppliesToEventTypes, value)
		})
	}
	if _u.mutation.AppliesToEventTypesCleared() {
		_spec.ClearField(policyrule.FieldAppliesToEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesToAgentTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToAgentTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesToAgentTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyrule.FieldAppliesToAgentTypes, value)
		})
	}
	if _u.mutation.AppliesToAgentTypesCleared() {
		_spec.ClearField(policyrule.FieldAppliesToAgentTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(policyrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(policyrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyrule.WorkspaceTable,
			Columns: []string{policyrule.WorkspaceColumn},
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
			Table:   policyrule.WorkspaceTable,
			Columns: []string{policyrule.WorkspaceColumn},
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
			err = &NotFoundError{policyrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyRuleUpdateOne is the builder for updating a single PolicyRule entity.
type PolicyRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyRuleMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PolicyRuleUpdateOne) SetWorkspaceID(v uuid.UUID) *PolicyRuleUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PolicyRuleUpdateOne) SetName(v string) *PolicyRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableName(v *string) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRuleType sets the "rule_type" field.
func (_u *PolicyRuleUpdateOne) SetRuleType(v policyrule.RuleType) *PolicyRuleUpdateOne {
	_u.mutation.SetRuleType(v)
	return _u
}

// SetNillableRuleType sets the "rule_type" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableRuleType(v *policyrule.RuleType) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetRuleType(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *PolicyRuleUpdateOne) SetAction(v policyrule.Action) *PolicyRuleUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableAction(v *policyrule.Action) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *PolicyRuleUpdateOne) SetPriority(v int) *PolicyRuleUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillablePriority(v *int) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *PolicyRuleUpdateOne) AddPriority(v int) *PolicyRuleUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PolicyRuleUpdateOne) SetEnabled(v bool) *PolicyRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableEnabled(v *bool) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *PolicyRuleUpdateOne) SetConfig(v map[string]interface{}) *PolicyRuleUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *PolicyRuleUpdateOne) ClearConfig() *PolicyRuleUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetAppliesToEventTypes sets the "applies_to_event_types" field.
func (_u *PolicyRuleUpdateOne) SetAppliesToEventTypes(v []string) *PolicyRuleUpdateOne {
	_u.mutation.SetAppliesToEventTypes(v)
	return _u
}

// AppendAppliesToEventTypes appends value to the "applies_to_event_types" field.
func (_u *PolicyRuleUpdateOne) AppendAppliesToEventTypes(v []string) *PolicyRuleUpdateOne {
	_u.mutation.AppendAppliesToEventTypes(v)
	return _u
}

// ClearAppliesToEventTypes clears the value of the "applies_to_event_types" field.
func (_u *PolicyRuleUpdateOne) ClearAppliesToEventTypes() *PolicyRuleUpdateOne {
	_u.mutation.ClearAppliesToEventTypes()
	return _u
}

// SetAppliesToAgentTypes sets the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdateOne) SetAppliesToAgentTypes(v []string) *PolicyRuleUpdateOne {
	_u.mutation.SetAppliesToAgentTypes(v)
	return _u
}

// AppendAppliesToAgentTypes appends value to the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdateOne) AppendAppliesToAgentTypes(v []string) *PolicyRuleUpdateOne {
	_u.mutation.AppendAppliesToAgentTypes(v)
	return _u
}

// ClearAppliesToAgentTypes clears the value of the "applies_to_agent_types" field.
func (_u *PolicyRuleUpdateOne) ClearAppliesToAgentTypes() *PolicyRuleUpdateOne {
	_u.mutation.ClearAppliesToAgentTypes()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PolicyRuleUpdateOne) SetDescription(v string) *PolicyRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PolicyRuleUpdateOne) SetNillableDescription(v *string) *PolicyRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PolicyRuleUpdateOne) ClearDescription() *PolicyRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyRuleUpdateOne) SetUpdatedAt(v time.Time) *PolicyRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *PolicyRuleUpdateOne) SetWorkspace(v *Workspace) *PolicyRuleUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the PolicyRuleMutation object of the builder.
func (_u *PolicyRuleUpdateOne) Mutation() *PolicyRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *PolicyRuleUpdateOne) ClearWorkspace() *PolicyRuleUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the PolicyRuleUpdate builder.
func (_u *PolicyRuleUpdateOne) Where(ps ...predicate.PolicyRule) *PolicyRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyRuleUpdateOne) Select(field string, fields ...string) *PolicyRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyRule entity.
func (_u *PolicyRuleUpdateOne) Save(ctx context.Context) (*PolicyRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyRuleUpdateOne) SaveX(ctx context.Context) *PolicyRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := policyrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleType(); ok {
		if err := policyrule.RuleTypeValidator(v); err != nil {
			return &ValidationError{Name: "rule_type", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.rule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := policyrule.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := policyrule.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "PolicyRule.priority": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyRule.workspace"`)
	}
	return nil
}

func (_u *PolicyRuleUpdateOne) sqlSave(ctx context.Context) (_node *PolicyRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyrule.Table, policyrule.Columns, sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyrule.FieldID)
		for _, f := range fields {
			if !policyrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policyrule.FieldID {
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
		_spec.SetField(policyrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleType(); ok {
		_spec.SetField(policyrule.FieldRuleType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(policyrule.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(policyrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(policyrule.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(policyrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(policyrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(policyrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesToEventTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToEventTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesToEventTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyrule.FieldAppliesToEventTypes, value)
		})
	}
	if _u.mutation.AppliesToEventTypesCleared() {
		_spec.ClearField(policyrule.FieldAppliesToEventTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.AppliesToAgentTypes(); ok {
		_spec.SetField(policyrule.FieldAppliesToAgentTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAppliesToAgentTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyrule.FieldAppliesToAgentTypes, value)
		})
	}
	if _u.mutation.AppliesToAgentTypesCleared() {
		_spec.ClearField(policyrule.FieldAppliesToAgentTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(policyrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(policyrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyrule.WorkspaceTable,
			Columns: []string{policyrule.WorkspaceColumn},
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
			Table:   policyrule.WorkspaceTable,
			Columns: []string{policyrule.WorkspaceColumn},
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
	_node = &PolicyRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
