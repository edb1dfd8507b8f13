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
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AnalysisSessionCreate is the builder for creating a AnalysisSession entity.
type AnalysisSessionCreate struct {
	config
	mutation *AnalysisSessionMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *AnalysisSessionCreate) SetWorkspaceID(v uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *AnalysisSessionCreate) SetEventID(v uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *AnalysisSessionCreate) SetWorkflowID(v uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisSessionCreate) SetStatus(v analysissession.Status) *AnalysisSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableStatus(v *analysissession.Status) *AnalysisSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisSessionCreate) SetErrorMessage(v string) *AnalysisSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableErrorMessage(v *string) *AnalysisSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetInputContentHash sets the "input_content_hash" field.
func (_c *AnalysisSessionCreate) SetInputContentHash(v string) *AnalysisSessionCreate {
	_c.mutation.SetInputContentHash(v)
	return _c
}

// SetNillableInputContentHash sets the "input_content_hash" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableInputContentHash(v *string) *AnalysisSessionCreate {
	if v != nil {
		_c.SetInputContentHash(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *AnalysisSessionCreate) SetExpiresAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableExpiresAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AnalysisSessionCreate) SetMetadata(v map[string]interface{}) *AnalysisSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisSessionCreate) SetStartedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableStartedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisSessionCreate) SetCompletedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableCompletedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisSessionCreate) SetCreatedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableCreatedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalysisSessionCreate) SetUpdatedAt(v time.Time) *AnalysisSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableUpdatedAt(v *time.Time) *AnalysisSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisSessionCreate) SetID(v uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableID(v *uuid.UUID) *AnalysisSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *AnalysisSessionCreate) SetWorkspace(v *Workspace) *AnalysisSessionCreate {
	return _c.SetWorkspaceID(v.ID)
}

// SetEvent sets the "event" edge to the AgentEvent entity.
func (_c *AnalysisSessionCreate) SetEvent(v *AgentEvent) *AnalysisSessionCreate {
	return _c.SetEventID(v.ID)
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_c *AnalysisSessionCreate) AddInstanceIDs(ids ...uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.AddInstanceIDs(ids...)
	return _c
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_c *AnalysisSessionCreate) AddInstances(v ...*AgentInstance) *AnalysisSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstanceIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the DeliberationMessage entity by IDs.
func (_c *AnalysisSessionCreate) AddMessageIDs(ids ...uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the DeliberationMessage entity.
func (_c *AnalysisSessionCreate) AddMessages(v ...*DeliberationMessage) *AnalysisSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// SetVerdictID sets the "verdict" edge to the Verdict entity by ID.
func (_c *AnalysisSessionCreate) SetVerdictID(id uuid.UUID) *AnalysisSessionCreate {
	_c.mutation.SetVerdictID(id)
	return _c
}

// SetNillableVerdictID sets the "verdict" edge to the Verdict entity by ID if the given value is not nil.
func (_c *AnalysisSessionCreate) SetNillableVerdictID(id *uuid.UUID) *AnalysisSessionCreate {
	if id != nil {
		_c = _c.SetVerdictID(*id)
	}
	return _c
}

// SetVerdict sets the "verdict" edge to the Verdict entity.
func (_c *AnalysisSessionCreate) SetVerdict(v *Verdict) *AnalysisSessionCreate {
	return _c.SetVerdictID(v.ID)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_c *AnalysisSessionCreate) Mutation() *AnalysisSessionMutation {
	return _c.mutation
}

// Save creates the AnalysisSession in the database.
func (_c *AnalysisSessionCreate) Save(ctx context.Context) (*AnalysisSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisSessionCreate) SaveX(ctx context.Context) *AnalysisSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysissession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysissession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analysissession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysissession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisSessionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "AnalysisSession.workspace_id"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "AnalysisSession.event_id"`)}
	}
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "AnalysisSession.workflow_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysissession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalysisSession.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "AnalysisSession.workspace"`)}
	}
	if len(_c.mutation.EventIDs()) == 0 {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required edge "AnalysisSession.event"`)}
	}
	return nil
}

func (_c *AnalysisSessionCreate) sqlSave(ctx context.Context) (*AnalysisSession, error) {
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

func (_c *AnalysisSessionCreate) createSpec() (*AnalysisSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysissession.Table, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WorkflowID(); ok {
		_spec.SetField(analysissession.FieldWorkflowID, field.TypeUUID, value)
		_node.WorkflowID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysissession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysissession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.InputContentHash(); ok {
		_spec.SetField(analysissession.FieldInputContentHash, field.TypeString, value)
		_node.InputContentHash = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(analysissession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(analysissession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysissession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysissession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysissession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysissession.WorkspaceTable,
			Columns: []string{analysissession.WorkspaceColumn},
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
			Table:   analysissession.EventTable,
			Columns: []string{analysissession.EventColumn},
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
	if nodes := _c.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.InstancesTable,
			Columns: []string{analysissession.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysissession.MessagesTable,
			Columns: []string{analysissession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberationmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerdictIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysissession.VerdictTable,
			Columns: []string{analysissession.VerdictColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisSessionCreateBulk is the builder for creating many AnalysisSession entities in bulk.
type AnalysisSessionCreateBulk struct {
	config
	err      error
	builders []*AnalysisSessionCreate
}

// Save creates the AnalysisSession entities in the database.
func (_c *AnalysisSessionCreateBulk) Save(ctx context.Context) ([]*AnalysisSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisSessionMutation)
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
func (_c *AnalysisSessionCreateBulk) SaveX(ctx context.Context) []*AnalysisSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
