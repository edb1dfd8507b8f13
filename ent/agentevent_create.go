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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AgentEventCreate is the builder for creating a AgentEvent entity.
type AgentEventCreate struct {
	config
	mutation *AgentEventMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AgentEventCreate) SetWorkspaceID(v uuid.UUID) *AgentEventCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetRegisteredAgentID sets the "registered_agent_id" field.
func (_c *AgentEventCreate) SetRegisteredAgentID(v uuid.UUID) *AgentEventCreate {
	_c.mutation.SetRegisteredAgentID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AgentEventCreate) SetEventType(v agentevent.EventType) *AgentEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentEventCreate) SetContent(v string) *AgentEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AgentEventCreate) SetPayload(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSourceIP sets the "source_ip" field.
func (_c *AgentEventCreate) SetSourceIP(v string) *AgentEventCreate {
	_c.mutation.SetSourceIP(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *AgentEventCreate) SetSeverity(v agentevent.Severity) *AgentEventCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableSeverity(v *agentevent.Severity) *AgentEventCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentEventCreate) SetStatus(v agentevent.Status) *AgentEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableStatus(v *agentevent.Status) *AgentEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEvaluationResult sets the "evaluation_result" field.
func (_c *AgentEventCreate) SetEvaluationResult(v map[string]interface{}) *AgentEventCreate {
	_c.mutation.SetEvaluationResult(v)
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *AgentEventCreate) SetEvaluatedAt(v time.Time) *AgentEventCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableEvaluatedAt(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetFlaggedReason sets the "flagged_reason" field.
func (_c *AgentEventCreate) SetFlaggedReason(v string) *AgentEventCreate {
	_c.mutation.SetFlaggedReason(v)
	return _c
}

// SetNillableFlaggedReason sets the "flagged_reason" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableFlaggedReason(v *string) *AgentEventCreate {
	if v != nil {
		_c.SetFlaggedReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentEventCreate) SetCreatedAt(v time.Time) *AgentEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableCreatedAt(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentEventCreate) SetUpdatedAt(v time.Time) *AgentEventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableUpdatedAt(v *time.Time) *AgentEventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentEventCreate) SetID(v uuid.UUID) *AgentEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentEventCreate) SetNillableID(v *uuid.UUID) *AgentEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AgentEventCreate) SetWorkspace(v *Workspace) *AgentEventCreate {
	return _c.SetWorkspaceID(v.ID)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_c *AgentEventCreate) AddViolationIDs(ids ...uuid.UUID) *AgentEventCreate {
	_c.mutation.AddViolationIDs(ids...)
	return _c
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_c *AgentEventCreate) AddViolations(v ...*PolicyViolation) *AgentEventCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViolationIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_c *AgentEventCreate) AddSessionIDs(ids ...uuid.UUID) *AgentEventCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_c *AgentEventCreate) AddSessions(v ...*AnalysisSession) *AgentEventCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the AgentEventMutation object of the builder.
func (_c *AgentEventCreate) Mutation() *AgentEventMutation {
	return _c.mutation
}

// Save creates the AgentEvent in the database.
func (_c *AgentEventCreate) Save(ctx context.Context) (*AgentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentEventCreate) SaveX(ctx context.Context) *AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentEventCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := agentevent.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentevent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agentevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentEventCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AgentEvent.workspace_id"`)}
	}
	if _, ok := _c.mutation.RegisteredAgentID(); !ok {
		return &ValidationError{Name: "registered_agent_id", err: errors.New(`ent: missing required field "AgentEvent.registered_agent_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "AgentEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := agentevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentEvent.content"`)}
	}
	if _, ok := _c.mutation.SourceIP(); !ok {
		return &ValidationError{Name: "source_ip", err: errors.New(`ent: missing required field "AgentEvent.source_ip"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "AgentEvent.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := agentevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentEvent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentEvent.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AgentEvent.workspace"`)}
	}
	return nil
}

func (_c *AgentEventCreate) sqlSave(ctx context.Context) (*AgentEvent, error) {
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

func (_c *AgentEventCreate) createSpec() (*AgentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentevent.Table, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RegisteredAgentID(); ok {
		_spec.SetField(agentevent.FieldRegisteredAgentID, field.TypeUUID, value)
		_node.RegisteredAgentID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(agentevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(agentevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.SourceIP(); ok {
		_spec.SetField(agentevent.FieldSourceIP, field.TypeString, value)
		_node.SourceIP = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(agentevent.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EvaluationResult(); ok {
		_spec.SetField(agentevent.FieldEvaluationResult, field.TypeJSON, value)
		_node.EvaluationResult = value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(agentevent.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = &value
	}
	if value, ok := _c.mutation.FlaggedReason(); ok {
		_spec.SetField(agentevent.FieldFlaggedReason, field.TypeString, value)
		_node.FlaggedReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentevent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentevent.WorkspaceTable,
			Columns: []string{agentevent.WorkspaceColumn},
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
	if nodes := _c.mutation.ViolationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentevent.ViolationsTable,
			Columns: []string{agentevent.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyviolation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentevent.SessionsTable,
			Columns: []string{agentevent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentEventCreateBulk is the builder for creating many AgentEvent entities in bulk.
type AgentEventCreateBulk struct {
	config
	err      error
	builders []*AgentEventCreate
}

// Save creates the AgentEvent entities in the database.
func (_c *AgentEventCreateBulk) Save(ctx context.Context) ([]*AgentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentEventMutation)
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
func (_c *AgentEventCreateBulk) SaveX(ctx context.Context) []*AgentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
