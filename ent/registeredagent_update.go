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
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// RegisteredAgentUpdate is the builder for updating RegisteredAgent entities.
type RegisteredAgentUpdate struct {
	config
	hooks    []Hook
	mutation *RegisteredAgentMutation
}

// Where appends a list predicates to the RegisteredAgentUpdate builder.
func (_u *RegisteredAgentUpdate) Where(ps ...predicate.RegisteredAgent) *RegisteredAgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RegisteredAgentUpdate) SetWorkspaceID(v uuid.UUID) *RegisteredAgentUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableWorkspaceID(v *uuid.UUID) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RegisteredAgentUpdate) SetName(v string) *RegisteredAgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableName(v *string) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *RegisteredAgentUpdate) SetAPIKeyHash(v string) *RegisteredAgentUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableAPIKeyHash(v *string) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetAPIKeyPrefix sets the "api_key_prefix" field.
func (_u *RegisteredAgentUpdate) SetAPIKeyPrefix(v string) *RegisteredAgentUpdate {
	_u.mutation.SetAPIKeyPrefix(v)
	return _u
}

// SetNillableAPIKeyPrefix sets the "api_key_prefix" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableAPIKeyPrefix(v *string) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetAPIKeyPrefix(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *RegisteredAgentUpdate) SetAgentType(v registeredagent.AgentType) *RegisteredAgentUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableAgentType(v *registeredagent.AgentType) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RegisteredAgentUpdate) SetStatus(v registeredagent.Status) *RegisteredAgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableStatus(v *registeredagent.Status) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RegisteredAgentUpdate) SetRiskLevel(v registeredagent.RiskLevel) *RegisteredAgentUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableRiskLevel(v *registeredagent.RiskLevel) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RegisteredAgentUpdate) SetDescription(v string) *RegisteredAgentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableDescription(v *string) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RegisteredAgentUpdate) ClearDescription() *RegisteredAgentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *RegisteredAgentUpdate) SetEventCount(v int64) *RegisteredAgentUpdate {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableEventCount(v *int64) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *RegisteredAgentUpdate) AddEventCount(v int64) *RegisteredAgentUpdate {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RegisteredAgentUpdate) SetLastSeenAt(v time.Time) *RegisteredAgentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RegisteredAgentUpdate) SetNillableLastSeenAt(v *time.Time) *RegisteredAgentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *RegisteredAgentUpdate) ClearLastSeenAt() *RegisteredAgentUpdate {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegisteredAgentUpdate) SetUpdatedAt(v time.Time) *RegisteredAgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *RegisteredAgentUpdate) SetWorkspace(v *Workspace) *RegisteredAgentUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the RegisteredAgentMutation object of the builder.
func (_u *RegisteredAgentUpdate) Mutation() *RegisteredAgentMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *RegisteredAgentUpdate) ClearWorkspace() *RegisteredAgentUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RegisteredAgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegisteredAgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RegisteredAgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegisteredAgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegisteredAgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := registeredagent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegisteredAgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := registeredagent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIKeyPrefix(); ok {
		if err := registeredagent.APIKeyPrefixValidator(v); err != nil {
			return &ValidationError{Name: "api_key_prefix", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.api_key_prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentType(); ok {
		if err := registeredagent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := registeredagent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := registeredagent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.risk_level": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RegisteredAgent.workspace"`)
	}
	return nil
}

func (_u *RegisteredAgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registeredagent.Table, registeredagent.Columns, sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(registeredagent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyPrefix(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(registeredagent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(registeredagent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(registeredagent.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(registeredagent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(registeredagent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(registeredagent.FieldEventCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(registeredagent.FieldEventCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(registeredagent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(registeredagent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(registeredagent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredagent.WorkspaceTable,
			Columns: []string{registeredagent.WorkspaceColumn},
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
			Table:   registeredagent.WorkspaceTable,
			Columns: []string{registeredagent.WorkspaceColumn},
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
			err = &NotFoundError{registeredagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RegisteredAgentUpdateOne is the builder for updating a single RegisteredAgent entity.
type RegisteredAgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RegisteredAgentMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *RegisteredAgentUpdateOne) SetWorkspaceID(v uuid.UUID) *RegisteredAgentUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RegisteredAgentUpdateOne) SetName(v string) *RegisteredAgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableName(v *string) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *RegisteredAgentUpdateOne) SetAPIKeyHash(v string) *RegisteredAgentUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableAPIKeyHash(v *string) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetAPIKeyPrefix sets the "api_key_prefix" field.
func (_u *RegisteredAgentUpdateOne) SetAPIKeyPrefix(v string) *RegisteredAgentUpdateOne {
	_u.mutation.SetAPIKeyPrefix(v)
	return _u
}

// SetNillableAPIKeyPrefix sets the "api_key_prefix" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableAPIKeyPrefix(v *string) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetAPIKeyPrefix(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *RegisteredAgentUpdateOne) SetAgentType(v registeredagent.AgentType) *RegisteredAgentUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableAgentType(v *registeredagent.AgentType) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RegisteredAgentUpdateOne) SetStatus(v registeredagent.Status) *RegisteredAgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableStatus(v *registeredagent.Status) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RegisteredAgentUpdateOne) SetRiskLevel(v registeredagent.RiskLevel) *RegisteredAgentUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableRiskLevel(v *registeredagent.RiskLevel) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RegisteredAgentUpdateOne) SetDescription(v string) *RegisteredAgentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableDescription(v *string) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RegisteredAgentUpdateOne) ClearDescription() *RegisteredAgentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEventCount sets the "event_count" field.
func (_u *RegisteredAgentUpdateOne) SetEventCount(v int64) *RegisteredAgentUpdateOne {
	_u.mutation.ResetEventCount()
	_u.mutation.SetEventCount(v)
	return _u
}

// SetNillableEventCount sets the "event_count" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableEventCount(v *int64) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetEventCount(*v)
	}
	return _u
}

// AddEventCount adds value to the "event_count" field.
func (_u *RegisteredAgentUpdateOne) AddEventCount(v int64) *RegisteredAgentUpdateOne {
	_u.mutation.AddEventCount(v)
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RegisteredAgentUpdateOne) SetLastSeenAt(v time.Time) *RegisteredAgentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RegisteredAgentUpdateOne) SetNillableLastSeenAt(v *time.Time) *RegisteredAgentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *RegisteredAgentUpdateOne) ClearLastSeenAt() *RegisteredAgentUpdateOne {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RegisteredAgentUpdateOne) SetUpdatedAt(v time.Time) *RegisteredAgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *RegisteredAgentUpdateOne) SetWorkspace(v *Workspace) *RegisteredAgentUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the RegisteredAgentMutation object of the builder.
func (_u *RegisteredAgentUpdateOne) Mutation() *RegisteredAgentMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *RegisteredAgentUpdateOne) ClearWorkspace() *RegisteredAgentUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the RegisteredAgentUpdate builder.
func (_u *RegisteredAgentUpdateOne) Where(ps ...predicate.RegisteredAgent) *RegisteredAgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RegisteredAgentUpdateOne) Select(field string, fields ...string) *RegisteredAgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RegisteredAgent entity.
func (_u *RegisteredAgentUpdateOne) Save(ctx context.Context) (*RegisteredAgent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RegisteredAgentUpdateOne) SaveX(ctx context.Context) *RegisteredAgent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RegisteredAgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RegisteredAgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RegisteredAgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := registeredagent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RegisteredAgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := registeredagent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.APIKeyPrefix(); ok {
		if err := registeredagent.APIKeyPrefixValidator(v); err != nil {
			return &ValidationError{Name: "api_key_prefix", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.api_key_prefix": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentType(); ok {
		if err := registeredagent.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.agent_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := registeredagent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := registeredagent.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "RegisteredAgent.risk_level": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RegisteredAgent.workspace"`)
	}
	return nil
}

func (_u *RegisteredAgentUpdateOne) sqlSave(ctx context.Context) (_node *RegisteredAgent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(registeredagent.Table, registeredagent.Columns, sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RegisteredAgent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, registeredagent.FieldID)
		for _, f := range fields {
			if !registeredagent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != registeredagent.FieldID {
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
		_spec.SetField(registeredagent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKeyPrefix(); ok {
		_spec.SetField(registeredagent.FieldAPIKeyPrefix, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(registeredagent.FieldAgentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(registeredagent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(registeredagent.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(registeredagent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(registeredagent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.EventCount(); ok {
		_spec.SetField(registeredagent.FieldEventCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedEventCount(); ok {
		_spec.AddField(registeredagent.FieldEventCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(registeredagent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(registeredagent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(registeredagent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   registeredagent.WorkspaceTable,
			Columns: []string{registeredagent.WorkspaceColumn},
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
			Table:   registeredagent.WorkspaceTable,
			Columns: []string{registeredagent.WorkspaceColumn},
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
	_node = &RegisteredAgent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{registeredagent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
