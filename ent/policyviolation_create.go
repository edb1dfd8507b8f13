// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// PolicyViolationCreate is the builder for creating a PolicyViolation entity.
type PolicyViolationCreate struct {
	config
	mutation *PolicyViolationMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *PolicyViolationCreate) SetWorkspaceID(v uuid.UUID) *PolicyViolationCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *PolicyViolationCreate) SetEventID(v uuid.UUID) *PolicyViolationCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *PolicyViolationCreate) SetRuleID(v uuid.UUID) *PolicyViolationCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetRuleName sets the "rule_name" field.
func (_c *PolicyViolationCreate) SetRuleName(v string) *PolicyViolationCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetActionTaken sets the "action_taken" field.
func (_c *PolicyViolationCreate) SetActionTaken(v policyviolation.ActionTaken) *PolicyViolationCreate {
	_c.mutation.SetActionTaken(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *PolicyViolationCreate) SetSeverity(v policyviolation.Severity) *PolicyViolationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *PolicyViolationCreate) SetDetails(v map[string]interface{}) *PolicyViolationCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *PolicyViolationCreate) SetResolved(v bool) *PolicyViolationCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableResolved(v *bool) *PolicyViolationCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *PolicyViolationCreate) SetResolvedAt(v time.Time) *PolicyViolationCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableResolvedAt(v *time.Time) *PolicyViolationCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolutionNote sets the "resolution_note" field.
func (_c *PolicyViolationCreate) SetResolutionNote(v string) *PolicyViolationCreate {
	_c.mutation.SetResolutionNote(v)
	return _c
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableResolutionNote(v *string) *PolicyViolationCreate {
	if v != nil {
		_c.SetResolutionNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyViolationCreate) SetCreatedAt(v time.Time) *PolicyViolationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableCreatedAt(v *time.Time) *PolicyViolationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolicyViolationCreate) SetUpdatedAt(v time.Time) *PolicyViolationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableUpdatedAt(v *time.Time) *PolicyViolationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicyViolationCreate) SetID(v uuid.UUID) *PolicyViolationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PolicyViolationCreate) SetNillableID(v *uuid.UUID) *PolicyViolationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *PolicyViolationCreate) SetWorkspace(v *Workspace) *PolicyViolationCreate {
	return _c.SetWorkspaceID(v.ID)
}

// SetEvent sets the "event" edge to the AgentEvent entity.
func (_c *PolicyViolationCreate) SetEvent(v *AgentEvent) *PolicyViolationCreate {
	return _c.SetEventID(v.ID)
}

// Mutation returns the PolicyViolationMutation object of the builder.
func (_c *PolicyViolationCreate) Mutation() *PolicyViolationMutation {
	return _c.mutation
}

// Save creates the PolicyViolation in the database.
func (_c *PolicyViolationCreate) Save(ctx context.Context) (*PolicyViolation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyViolationCreate) SaveX(ctx context.Context) *PolicyViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyViolationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyViolationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyViolationCreate) defaults() {
	if _, ok := _c.mutation.Resolved(); !ok {
		v := policyviolation.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policyviolation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := policyviolation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := policyviolation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyViolationCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "PolicyViolation.workspace_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "PolicyViolation.event_id"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "PolicyViolation.rule_id"`)}
	}
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "PolicyViolation.rule_name"`)}
	}
	if _, ok := _c.mutation.ActionTaken(); !ok {
		return &ValidationError{Name: "action_taken", err: errors.New(`ent: missing required field "PolicyViolation.action_taken"`)}
	}
	if v, ok := _c.mutation.ActionTaken(); ok {
		if err := policyviolation.ActionTakenValidator(v); err != nil {
			return &ValidationError{Name: "action_taken", err: fmt.Errorf(`ent: validator failed for field "PolicyViolation.action_taken": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "PolicyViolation.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := policyviolation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "PolicyViolation.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "PolicyViolation.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyViolation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PolicyViolation.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "PolicyViolation.workspace"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "PolicyViolation.event"`)}
	}
	return nil
}

func (_c *PolicyViolationCreate) sqlSave(ctx context.Context) (*PolicyViolation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicyViolationCreate) createSpec() (*PolicyViolation, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyViolation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policyviolation.Table, sqlgraph.NewFieldSpec(policyviolation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(policyviolation.FieldRuleID, field.TypeUUID, value)
		_node.RuleID = value
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(policyviolation.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.ActionTaken(); ok {
		_spec.SetField(policyviolation.FieldActionTaken, field.TypeEnum, value)
		_node.ActionTaken = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(policyviolation.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(policyviolation.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(policyviolation.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(policyviolation.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolutionNote(); ok {
		_spec.SetField(policyviolation.FieldResolutionNote, field.TypeString, value)
		_node.ResolutionNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policyviolation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(policyviolation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyviolation.WorkspaceTable,
			Columns: []string{policyviolation.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyviolation.EventTable,
			Columns: []string{policyviolation.EventColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EventID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PolicyViolationCreateBulk is the builder for creating many PolicyViolation entities in bulk.
type PolicyViolationCreateBulk struct {
	config
	err      error
	builders []*PolicyViolationCreate
}

// Save creates the PolicyViolation entities in the database.
func (_c *PolicyViolationCreateBulk) Save(ctx context.Context) ([]*PolicyViolation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyViolation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyViolationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PolicyViolationCreateBulk) SaveX(ctx context.Context) []*PolicyViolation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyViolationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyViolationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
