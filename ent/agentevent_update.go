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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// AgentEventUpdate is the builder for updating AgentEvent entities.
type AgentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AgentEventMutation
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdate) Where(ps ...predicate.AgentEvent) *AgentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentEventUpdate) SetWorkspaceID(v uuid.UUID) *AgentEventUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableWorkspaceID(v *uuid.UUID) *AgentEventUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRegisteredAgentID sets the "registered_agent_id" field.
func (_u *AgentEventUpdate) SetRegisteredAgentID(v uuid.UUID) *AgentEventUpdate {
	_u.mutation.SetRegisteredAgentID(v)
	return _u
}

// SetNillableRegisteredAgentID sets the "registered_agent_id" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableRegisteredAgentID(v *uuid.UUID) *AgentEventUpdate {
	if v != nil {
		_u.SetRegisteredAgentID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AgentEventUpdate) SetEventType(v agentevent.EventType) *AgentEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableEventType(v *agentevent.EventType) *AgentEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentEventUpdate) SetContent(v string) *AgentEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableContent(v *string) *AgentEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AgentEventUpdate) SetPayload(v map[string]interface{}) *AgentEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentEventUpdate) ClearPayload() *AgentEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetSourceIP sets the "source_ip" field.
func (_u *AgentEventUpdate) SetSourceIP(v string) *AgentEventUpdate {
	_u.mutation.SetSourceIP(v)
	return _u
}

// SetNillableSourceIP sets the "source_ip" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableSourceIP(v *string) *AgentEventUpdate {
	if v != nil {
		_u.SetSourceIP(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentEventUpdate) SetSeverity(v agentevent.Severity) *AgentEventUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableSeverity(v *agentevent.Severity) *AgentEventUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentEventUpdate) SetStatus(v agentevent.Status) *AgentEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableStatus(v *agentevent.Status) *AgentEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvaluationResult sets the "evaluation_result" field.
func (_u *AgentEventUpdate) SetEvaluationResult(v map[string]interface{}) *AgentEventUpdate {
	_u.mutation.SetEvaluationResult(v)
	return _u
}

// ClearEvaluationResult clears the value of the "evaluation_result" field.
func (_u *AgentEventUpdate) ClearEvaluationResult() *AgentEventUpdate {
	_u.mutation.ClearEvaluationResult()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *AgentEventUpdate) SetEvaluatedAt(v time.Time) *AgentEventUpdate {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableEvaluatedAt(v *time.Time) *AgentEventUpdate {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *AgentEventUpdate) ClearEvaluatedAt() *AgentEventUpdate {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// SetFlaggedReason sets the "flagged_reason" field.
func (_u *AgentEventUpdate) SetFlaggedReason(v string) *AgentEventUpdate {
	_u.mutation.SetFlaggedReason(v)
	return _u
}

// SetNillableFlaggedReason sets the "flagged_reason" field if the given value is not nil.
func (_u *AgentEventUpdate) SetNillableFlaggedReason(v *string) *AgentEventUpdate {
	if v != nil {
		_u.SetFlaggedReason(*v)
	}
	return _u
}

// ClearFlaggedReason clears the value of the "flagged_reason" field.
func (_u *AgentEventUpdate) ClearFlaggedReason() *AgentEventUpdate {
	_u.mutation.ClearFlaggedReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentEventUpdate) SetUpdatedAt(v time.Time) *AgentEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AgentEventUpdate) SetWorkspace(v *Workspace) *AgentEventUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_u *AgentEventUpdate) AddViolationIDs(ids ...uuid.UUID) *AgentEventUpdate {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_u *AgentEventUpdate) AddViolations(v ...*PolicyViolation) *AgentEventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_u *AgentEventUpdate) AddSessionIDs(ids ...uuid.UUID) *AgentEventUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_u *AgentEventUpdate) AddSessions(v ...*AnalysisSession) *AgentEventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdate) Mutation() *AgentEventMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AgentEventUpdate) ClearWorkspace() *AgentEventUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearViolations clears all "violations" edges to the PolicyViolation entity.
func (_u *AgentEventUpdate) ClearViolations() *AgentEventUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to PolicyViolation entities by IDs.
func (_u *AgentEventUpdate) RemoveViolationIDs(ids ...uuid.UUID) *AgentEventUpdate {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to PolicyViolation entities.
func (_u *AgentEventUpdate) RemoveViolations(v ...*PolicyViolation) *AgentEventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the AnalysisSession entity.
func (_u *AgentEventUpdate) ClearSessions() *AgentEventUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AnalysisSession entities by IDs.
func (_u *AgentEventUpdate) RemoveSessionIDs(ids ...uuid.UUID) *AgentEventUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AnalysisSession entities.
func (_u *AgentEventUpdate) RemoveSessions(v ...*AnalysisSession) *AgentEventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := agentevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := agentevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentEvent.workspace"`)
	}
	return nil
}

func (_u *AgentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RegisteredAgentID(); ok {
		_spec.SetField(agentevent.FieldRegisteredAgentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(agentevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceIP(); ok {
		_spec.SetField(agentevent.FieldSourceIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agentevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvaluationResult(); ok {
		_spec.SetField(agentevent.FieldEvaluationResult, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationResultCleared() {
		_spec.ClearField(agentevent.FieldEvaluationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(agentevent.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(agentevent.FieldEvaluatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FlaggedReason(); ok {
		_spec.SetField(agentevent.FieldFlaggedReason, field.TypeString, value)
	}
	if _u.mutation.FlaggedReasonCleared() {
		_spec.ClearField(agentevent.FieldFlaggedReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViolationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentEventUpdateOne is the builder for updating a single AgentEvent entity.
type AgentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentEventMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *AgentEventUpdateOne) SetWorkspaceID(v uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *AgentEventUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetRegisteredAgentID sets the "registered_agent_id" field.
func (_u *AgentEventUpdateOne) SetRegisteredAgentID(v uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.SetRegisteredAgentID(v)
	return _u
}

// SetNillableRegisteredAgentID sets the "registered_agent_id" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableRegisteredAgentID(v *uuid.UUID) *AgentEventUpdateOne {
	if v != nil {
		_u.SetRegisteredAgentID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *AgentEventUpdateOne) SetEventType(v agentevent.EventType) *AgentEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableEventType(v *agentevent.EventType) *AgentEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AgentEventUpdateOne) SetContent(v string) *AgentEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableContent(v *string) *AgentEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AgentEventUpdateOne) SetPayload(v map[string]interface{}) *AgentEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *AgentEventUpdateOne) ClearPayload() *AgentEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetSourceIP sets the "source_ip" field.
func (_u *AgentEventUpdateOne) SetSourceIP(v string) *AgentEventUpdateOne {
	_u.mutation.SetSourceIP(v)
	return _u
}

// SetNillableSourceIP sets the "source_ip" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableSourceIP(v *string) *AgentEventUpdateOne {
	if v != nil {
		_u.SetSourceIP(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentEventUpdateOne) SetSeverity(v agentevent.Severity) *AgentEventUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableSeverity(v *agentevent.Severity) *AgentEventUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentEventUpdateOne) SetStatus(v agentevent.Status) *AgentEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableStatus(v *agentevent.Status) *AgentEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEvaluationResult sets the "evaluation_result" field.
func (_u *AgentEventUpdateOne) SetEvaluationResult(v map[string]interface{}) *AgentEventUpdateOne {
	_u.mutation.SetEvaluationResult(v)
	return _u
}

// ClearEvaluationResult clears the value of the "evaluation_result" field.
func (_u *AgentEventUpdateOne) ClearEvaluationResult() *AgentEventUpdateOne {
	_u.mutation.ClearEvaluationResult()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *AgentEventUpdateOne) SetEvaluatedAt(v time.Time) *AgentEventUpdateOne {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableEvaluatedAt(v *time.Time) *AgentEventUpdateOne {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *AgentEventUpdateOne) ClearEvaluatedAt() *AgentEventUpdateOne {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// SetFlaggedReason sets the "flagged_reason" field.
func (_u *AgentEventUpdateOne) SetFlaggedReason(v string) *AgentEventUpdateOne {
	_u.mutation.SetFlaggedReason(v)
	return _u
}

// SetNillableFlaggedReason sets the "flagged_reason" field if the given value is not nil.
func (_u *AgentEventUpdateOne) SetNillableFlaggedReason(v *string) *AgentEventUpdateOne {
	if v != nil {
		_u.SetFlaggedReason(*v)
	}
	return _u
}

// ClearFlaggedReason clears the value of the "flagged_reason" field.
func (_u *AgentEventUpdateOne) ClearFlaggedReason() *AgentEventUpdateOne {
	_u.mutation.ClearFlaggedReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentEventUpdateOne) SetUpdatedAt(v time.Time) *AgentEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *AgentEventUpdateOne) SetWorkspace(v *Workspace) *AgentEventUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_u *AgentEventUpdateOne) AddViolationIDs(ids ...uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_u *AgentEventUpdateOne) AddViolations(v ...*PolicyViolation) *AgentEventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_u *AgentEventUpdateOne) AddSessionIDs(ids ...uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_u *AgentEventUpdateOne) AddSessions(v ...*AnalysisSession) *AgentEventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the AgentEventMutation object of the builder.
func (_u *AgentEventUpdateOne) Mutation() *AgentEventMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *AgentEventUpdateOne) ClearWorkspace() *AgentEventUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// ClearViolations clears all "violations" edges to the PolicyViolation entity.
func (_u *AgentEventUpdateOne) ClearViolations() *AgentEventUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to PolicyViolation entities by IDs.
func (_u *AgentEventUpdateOne) RemoveViolationIDs(ids ...uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to PolicyViolation entities.
func (_u *AgentEventUpdateOne) RemoveViolations(v ...*PolicyViolation) *AgentEventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the AnalysisSession entity.
func (_u *AgentEventUpdateOne) ClearSessions() *AgentEventUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AnalysisSession entities by IDs.
func (_u *AgentEventUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *AgentEventUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AnalysisSession entities.
func (_u *AgentEventUpdateOne) RemoveSessions(v ...*AnalysisSession) *AgentEventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the AgentEventUpdate builder.
func (_u *AgentEventUpdateOne) Where(ps ...predicate.AgentEvent) *AgentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentEventUpdateOne) Select(field string, fields ...string) *AgentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentEvent entity.
func (_u *AgentEventUpdateOne) Save(ctx context.Context) (*AgentEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentEventUpdateOne) SaveX(ctx context.Context) *AgentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := agentevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := agentevent.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentEvent.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentEvent.workspace"`)
	}
	return nil
}

func (_u *AgentEventUpdateOne) sqlSave(ctx context.Context) (_node *AgentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentevent.Table, agentevent.Columns, sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentevent.FieldID)
		for _, f := range fields {
			if !agentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentevent.FieldID {
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
	if value, ok := _u.mutation.RegisteredAgentID(); ok {
		_spec.SetField(agentevent.FieldRegisteredAgentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(agentevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(agentevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(agentevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(agentevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceIP(); ok {
		_spec.SetField(agentevent.FieldSourceIP, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agentevent.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EvaluationResult(); ok {
		_spec.SetField(agentevent.FieldEvaluationResult, field.TypeJSON, value)
	}
	if _u.mutation.EvaluationResultCleared() {
		_spec.ClearField(agentevent.FieldEvaluationResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(agentevent.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(agentevent.FieldEvaluatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FlaggedReason(); ok {
		_spec.SetField(agentevent.FieldFlaggedReason, field.TypeString, value)
	}
	if _u.mutation.FlaggedReasonCleared() {
		_spec.ClearField(agentevent.FieldFlaggedReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViolationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
