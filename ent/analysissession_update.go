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
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/deliberationmessage"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/verdict"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AnalysisSessionUpdate is the builder for updating AnalysisSession entities.
type AnalysisSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisSessionMutation
}

// Where appends a list predicates to the AnalysisSessionUpdate builder.
func (_u *AnalysisSessionUpdate) Where(ps ...predicate.AnalysisSession) *AnalysisSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AnalysisSessionUpdate) SetWorkspaceID(v uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableWorkspaceID(v *uuid.UUID) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AnalysisSessionUpdate) SetEventID(v uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableEventID(v *uuid.UUID) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *AnalysisSessionUpdate) SetWorkflowID(v uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableWorkflowID(v *uuid.UUID) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisSessionUpdate) SetStatus(v analysissession.Status) *AnalysisSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableStatus(v *analysissession.Status) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisSessionUpdate) SetErrorMessage(v string) *AnalysisSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableErrorMessage(v *string) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisSessionUpdate) ClearErrorMessage() *AnalysisSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputContentHash sets the "input_content_hash" field.
func (_u *AnalysisSessionUpdate) SetInputContentHash(v string) *AnalysisSessionUpdate {
	_u.mutation.SetInputContentHash(v)
	return _u
}

// SetNillableInputContentHash sets the "input_content_hash" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableInputContentHash(v *string) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetInputContentHash(*v)
	}
	return _u
}

// ClearInputContentHash clears the value of the "input_content_hash" field.
func (_u *AnalysisSessionUpdate) ClearInputContentHash() *AnalysisSessionUpdate {
	_u.mutation.ClearInputContentHash()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AnalysisSessionUpdate) SetExpiresAt(v time.Time) *AnalysisSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableExpiresAt(v *time.Time) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AnalysisSessionUpdate) ClearExpiresAt() *AnalysisSessionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnalysisSessionUpdate) SetMetadata(v map[string]interface{}) *AnalysisSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnalysisSessionUpdate) ClearMetadata() *AnalysisSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisSessionUpdate) SetStartedAt(v time.Time) *AnalysisSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableStartedAt(v *time.Time) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisSessionUpdate) ClearStartedAt() *AnalysisSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisSessionUpdate) SetCompletedAt(v time.Time) *AnalysisSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisSessionUpdate) ClearCompletedAt() *AnalysisSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisSessionUpdate) SetUpdatedAt(v time.Time) *AnalysisSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AnalysisSessionUpdate) SetWorkspace(v *Workspace) *AnalysisSessionUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// SetEvent sets the "event" edge to the AgentEvent entity.
func (_u *AnalysisSessionUpdate) SetEvent(v *AgentEvent) *AnalysisSessionUpdate {
	return _u.SetEventID(v.ID)
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_u *AnalysisSessionUpdate) AddInstanceIDs(ids ...uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_u *AnalysisSessionUpdate) AddInstances(v ...*AgentInstance) *AnalysisSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the DeliberationMessage entity by IDs.
func (_u *AnalysisSessionUpdate) AddMessageIDs(ids ...uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the DeliberationMessage entity.
func (_u *AnalysisSessionUpdate) AddMessages(v ...*DeliberationMessage) *AnalysisSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// SetVerdictID sets the "verdict" edge to the Verdict entity by ID.
func (_u *AnalysisSessionUpdate) SetVerdictID(id uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.SetVerdictID(id)
	return _u
}

// SetNillableVerdictID sets the "verdict" edge to the Verdict entity by ID if the given value is not nil.
func (_u *AnalysisSessionUpdate) SetNillableVerdictID(id *uuid.UUID) *AnalysisSessionUpdate {
	if id != nil {
		_u = _u.SetVerdictID(*id)
	}
	return _u
}

// SetVerdict sets the "verdict" edge to the Verdict entity.
func (_u *AnalysisSessionUpdate) SetVerdict(v *Verdict) *AnalysisSessionUpdate {
	return _u.SetVerdictID(v.ID)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_u *AnalysisSessionUpdate) Mutation() *AnalysisSessionMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AnalysisSessionUpdate) ClearWorkspace() *AnalysisSessionUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearEvent clears the "event" edge to the AgentEvent entity.
func (_u *AnalysisSessionUpdate) ClearEvent() *AnalysisSessionUpdate {
	_u.mutation.ClearEvent()
	return _u
}

// ClearInstances clears all "instances" edges to the AgentInstance entity.
func (_u *AnalysisSessionUpdate) ClearInstances() *AnalysisSessionUpdate {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to AgentInstance entities by IDs.
func (_u *AnalysisSessionUpdate) RemoveInstanceIDs(ids ...uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to AgentInstance entities.
func (_u *AnalysisSessionUpdate) RemoveInstances(v ...*AgentInstance) *AnalysisSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// ClearMessages clears all "messages" edges to the DeliberationMessage entity.
func (_u *AnalysisSessionUpdate) ClearMessages() *AnalysisSessionUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to DeliberationMessage entities by IDs.
func (_u *AnalysisSessionUpdate) RemoveMessageIDs(ids ...uuid.UUID) *AnalysisSessionUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to DeliberationMessage entities.
func (_u *AnalysisSessionUpdate) RemoveMessages(v ...*DeliberationMessage) *AnalysisSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearVerdict clears the "verdict" edge to the Verdict entity.
func (_u *AnalysisSessionUpdate) ClearVerdict() *AnalysisSessionUpdate {
	_u.mutation.ClearVerdict()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysissession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysissession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisSession.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisSession.workspace"`)
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisSession.event"`)
	}
	return nil
}

func (_u *AnalysisSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysissession.Table, analysissession.Columns, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(analysissession.FieldWorkflowID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysissession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysissession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysissession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputContentHash(); ok {
		_spec.SetField(analysissession.FieldInputContentHash, field.TypeString, value)
	}
	if _u.mutation.InputContentHashCleared() {
		_spec.ClearField(analysissession.FieldInputContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(analysissession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(analysissession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(analysissession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(analysissession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysissession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysissession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysissession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysissession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisSessionUpdateOne is the builder for updating a single AnalysisSession entity.
type AnalysisSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisSessionMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AnalysisSessionUpdateOne) SetWorkspaceID(v uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *AnalysisSessionUpdateOne) SetEventID(v uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableEventID(v *uuid.UUID) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *AnalysisSessionUpdateOne) SetWorkflowID(v uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableWorkflowID(v *uuid.UUID) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisSessionUpdateOne) SetStatus(v analysissession.Status) *AnalysisSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableStatus(v *analysissession.Status) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisSessionUpdateOne) SetErrorMessage(v string) *AnalysisSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableErrorMessage(v *string) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisSessionUpdateOne) ClearErrorMessage() *AnalysisSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetInputContentHash sets the "input_content_hash" field.
func (_u *AnalysisSessionUpdateOne) SetInputContentHash(v string) *AnalysisSessionUpdateOne {
	_u.mutation.SetInputContentHash(v)
	return _u
}

// SetNillableInputContentHash sets the "input_content_hash" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableInputContentHash(v *string) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetInputContentHash(*v)
	}
	return _u
}

// ClearInputContentHash clears the value of the "input_content_hash" field.
func (_u *AnalysisSessionUpdateOne) ClearInputContentHash() *AnalysisSessionUpdateOne {
	_u.mutation.ClearInputContentHash()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *AnalysisSessionUpdateOne) SetExpiresAt(v time.Time) *AnalysisSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *AnalysisSessionUpdateOne) ClearExpiresAt() *AnalysisSessionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AnalysisSessionUpdateOne) SetMetadata(v map[string]interface{}) *AnalysisSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AnalysisSessionUpdateOne) ClearMetadata() *AnalysisSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisSessionUpdateOne) SetStartedAt(v time.Time) *AnalysisSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisSessionUpdateOne) ClearStartedAt() *AnalysisSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisSessionUpdateOne) SetCompletedAt(v time.Time) *AnalysisSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisSessionUpdateOne) ClearCompletedAt() *AnalysisSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalysisSessionUpdateOne) SetUpdatedAt(v time.Time) *AnalysisSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AnalysisSessionUpdateOne) SetWorkspace(v *Workspace) *AnalysisSessionUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// SetEvent sets the "event" edge to the AgentEvent entity.
func (_u *AnalysisSessionUpdateOne) SetEvent(v *AgentEvent) *AnalysisSessionUpdateOne {
	return _u.SetEventID(v.ID)
}

// AddInstanceIDs adds the "instances" edge to the AgentInstance entity by IDs.
func (_u *AnalysisSessionUpdateOne) AddInstanceIDs(ids ...uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.AddInstanceIDs(ids...)
	return _u
}

// AddInstances adds the "instances" edges to the AgentInstance entity.
func (_u *AnalysisSessionUpdateOne) AddInstances(v ...*AgentInstance) *AnalysisSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstanceIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the DeliberationMessage entity by IDs.
func (_u *AnalysisSessionUpdateOne) AddMessageIDs(ids ...uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the DeliberationMessage entity.
func (_u *AnalysisSessionUpdateOne) AddMessages(v ...*DeliberationMessage) *AnalysisSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// SetVerdictID sets the "verdict" edge to the Verdict entity by ID.
func (_u *AnalysisSessionUpdateOne) SetVerdictID(id uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.SetVerdictID(id)
	return _u
}

// SetNillableVerdictID sets the "verdict" edge to the Verdict entity by ID if the given value is not nil.
func (_u *AnalysisSessionUpdateOne) SetNillableVerdictID(id *uuid.UUID) *AnalysisSessionUpdateOne {
	if id != nil {
		_u = _u.SetVerdictID(*id)
	}
	return _u
}

// SetVerdict sets the "verdict" edge to the Verdict entity.
func (_u *AnalysisSessionUpdateOne) SetVerdict(v *Verdict) *AnalysisSessionUpdateOne {
	return _u.SetVerdictID(v.ID)
}

// Mutation returns the AnalysisSessionMutation object of the builder.
func (_u *AnalysisSessionUpdateOne) Mutation() *AnalysisSessionMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AnalysisSessionUpdateOne) ClearWorkspace() *AnalysisSessionUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearEvent clears the "event" edge to the AgentEvent entity.
func (_u *AnalysisSessionUpdateOne) ClearEvent() *AnalysisSessionUpdateOne {
	_u.mutation.ClearEvent()
	return _u
}

// ClearInstances clears all "instances" edges to the AgentInstance entity.
func (_u *AnalysisSessionUpdateOne) ClearInstances() *AnalysisSessionUpdateOne {
	_u.mutation.ClearInstances()
	return _u
}

// RemoveInstanceIDs removes the "instances" edge to AgentInstance entities by IDs.
func (_u *AnalysisSessionUpdateOne) RemoveInstanceIDs(ids ...uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.RemoveInstanceIDs(ids...)
	return _u
}

// RemoveInstances removes "instances" edges to AgentInstance entities.
func (_u *AnalysisSessionUpdateOne) RemoveInstances(v ...*AgentInstance) *AnalysisSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstanceIDs(ids...)
}

// ClearMessages clears all "messages" edges to the DeliberationMessage entity.
func (_u *AnalysisSessionUpdateOne) ClearMessages() *AnalysisSessionUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to DeliberationMessage entities by IDs.
func (_u *AnalysisSessionUpdateOne) RemoveMessageIDs(ids ...uuid.UUID) *AnalysisSessionUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to DeliberationMessage entities.
func (_u *AnalysisSessionUpdateOne) RemoveMessages(v ...*DeliberationMessage) *AnalysisSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearVerdict clears the "verdict" edge to the Verdict entity.
func (_u *AnalysisSessionUpdateOne) ClearVerdict() *AnalysisSessionUpdateOne {
	_u.mutation.ClearVerdict()
	return _u
}

// Where appends a list predicates to the AnalysisSessionUpdate builder.
func (_u *AnalysisSessionUpdateOne) Where(ps ...predicate.AnalysisSession) *AnalysisSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisSessionUpdateOne) Select(field string, fields ...string) *AnalysisSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisSession entity.
func (_u *AnalysisSessionUpdateOne) Save(ctx context.Context) (*AnalysisSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisSessionUpdateOne) SaveX(ctx context.Context) *AnalysisSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalysisSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analysissession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysissession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisSession.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisSession.workspace"`)
	}
	if _u.mutation.EventCleared() && len(_u.mutation.EventIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisSession.event"`)
	}
	return nil
}

func (_u *AnalysisSessionUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysissession.Table, analysissession.Columns, sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysissession.FieldID)
		for _, f := range fields {
			if !analysissession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysissession.FieldID {
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
	if value, ok := _u.mutation.WorkflowID(); ok {
		_spec.SetField(analysissession.FieldWorkflowID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysissession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysissession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysissession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.InputContentHash(); ok {
		_spec.SetField(analysissession.FieldInputContentHash, field.TypeString, value)
	}
	if _u.mutation.InputContentHashCleared() {
		_spec.ClearField(analysissession.FieldInputContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(analysissession.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(analysissession.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(analysissession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(analysissession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysissession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysissession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysissession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysissession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analysissession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !_u.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysissession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
