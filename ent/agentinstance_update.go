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
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// AgentInstanceUpdate is the builder for updating AgentInstance entities.
type AgentInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentInstanceMutation
}

// Where appends a list predicates to the AgentInstanceUpdate builder.
func (_u *AgentInstanceUpdate) Where(ps ...predicate.AgentInstance) *AgentInstanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentInstanceUpdate) SetSessionID(v uuid.UUID) *AgentInstanceUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableSessionID(v *uuid.UUID) *AgentInstanceUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_u *AgentInstanceUpdate) SetAgentDefinitionID(v uuid.UUID) *AgentInstanceUpdate {
	_u.mutation.SetAgentDefinitionID(v)
	return _u
}

// SetNillableAgentDefinitionID sets the "agent_definition_id" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableAgentDefinitionID(v *uuid.UUID) *AgentInstanceUpdate {
	if v != nil {
		_u.SetAgentDefinitionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentInstanceUpdate) SetRole(v string) *AgentInstanceUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableRole(v *string) *AgentInstanceUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentInstanceUpdate) SetStatus(v agentinstance.Status) *AgentInstanceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableStatus(v *agentinstance.Status) *AgentInstanceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVote sets the "vote" field.
func (_u *AgentInstanceUpdate) SetVote(v agentinstance.Vote) *AgentInstanceUpdate {
	_u.mutation.SetVote(v)
	return _u
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableVote(v *agentinstance.Vote) *AgentInstanceUpdate {
	if v != nil {
		_u.SetVote(*v)
	}
	return _u
}

// ClearVote clears the value of the "vote" field.
func (_u *AgentInstanceUpdate) ClearVote() *AgentInstanceUpdate {
	_u.mutation.ClearVote()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AgentInstanceUpdate) SetConfidence(v float64) *AgentInstanceUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableConfidence(v *float64) *AgentInstanceUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AgentInstanceUpdate) AddConfidence(v float64) *AgentInstanceUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *AgentInstanceUpdate) ClearConfidence() *AgentInstanceUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetInitialAssessment sets the "initial_assessment" field.
func (_u *AgentInstanceUpdate) SetInitialAssessment(v string) *AgentInstanceUpdate {
	_u.mutation.SetInitialAssessment(v)
	return _u
}

// SetNillableInitialAssessment sets the "initial_assessment" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableInitialAssessment(v *string) *AgentInstanceUpdate {
	if v != nil {
		_u.SetInitialAssessment(*v)
	}
	return _u
}

// ClearInitialAssessment clears the value of the "initial_assessment" field.
func (_u *AgentInstanceUpdate) ClearInitialAssessment() *AgentInstanceUpdate {
	_u.mutation.ClearInitialAssessment()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentInstanceUpdate) SetTokensUsed(v int64) *AgentInstanceUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableTokensUsed(v *int64) *AgentInstanceUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentInstanceUpdate) AddTokensUsed(v int64) *AgentInstanceUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *AgentInstanceUpdate) SetCostCents(v int64) *AgentInstanceUpdate {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableCostCents(v *int64) *AgentInstanceUpdate {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *AgentInstanceUpdate) AddCostCents(v int64) *AgentInstanceUpdate {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *AgentInstanceUpdate) SetTerminatedAt(v time.Time) *AgentInstanceUpdate {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *AgentInstanceUpdate) SetNillableTerminatedAt(v *time.Time) *AgentInstanceUpdate {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *AgentInstanceUpdate) ClearTerminatedAt() *AgentInstanceUpdate {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentInstanceUpdate) SetUpdatedAt(v time.Time) *AgentInstanceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_u *AgentInstanceUpdate) SetSession(v *AnalysisSession) *AgentInstanceUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_u *AgentInstanceUpdate) Mutation() *AgentInstanceMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (_u *AgentInstanceUpdate) ClearSession() *AgentInstanceUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentInstanceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentInstanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInstanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentInstanceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentinstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInstanceUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentinstance.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vote(); ok {
		if err := agentinstance.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.vote": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := agentinstance.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.confidence": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInstance.session"`)
	}
	return nil
}

func (_u *AgentInstanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinstance.Table, agentinstance.Columns, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentDefinitionID(); ok {
		_spec.SetField(agentinstance.FieldAgentDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentinstance.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vote(); ok {
		_spec.SetField(agentinstance.FieldVote, field.TypeEnum, value)
	}
	if _u.mutation.VoteCleared() {
		_spec.ClearField(agentinstance.FieldVote, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(agentinstance.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(agentinstance.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(agentinstance.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InitialAssessment(); ok {
		_spec.SetField(agentinstance.FieldInitialAssessment, field.TypeString, value)
	}
	if _u.mutation.InitialAssessmentCleared() {
		_spec.ClearField(agentinstance.FieldInitialAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentinstance.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentinstance.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(agentinstance.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(agentinstance.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(agentinstance.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(agentinstance.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinstance.SessionTable,
			Columns: []string{agentinstance.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinstance.SessionTable,
			Columns: []string{agentinstance.SessionColumn},
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
			err = &NotFoundError{agentinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentInstanceUpdateOne is the builder for updating a single AgentInstance entity.
type AgentInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentInstanceMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AgentInstanceUpdateOne) SetSessionID(v uuid.UUID) *AgentInstanceUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableSessionID(v *uuid.UUID) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_u *AgentInstanceUpdateOne) SetAgentDefinitionID(v uuid.UUID) *AgentInstanceUpdateOne {
	_u.mutation.SetAgentDefinitionID(v)
	return _u
}

// SetNillableAgentDefinitionID sets the "agent_definition_id" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableAgentDefinitionID(v *uuid.UUID) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetAgentDefinitionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentInstanceUpdateOne) SetRole(v string) *AgentInstanceUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableRole(v *string) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentInstanceUpdateOne) SetStatus(v agentinstance.Status) *AgentInstanceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableStatus(v *agentinstance.Status) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVote sets the "vote" field.
func (_u *AgentInstanceUpdateOne) SetVote(v agentinstance.Vote) *AgentInstanceUpdateOne {
	_u.mutation.SetVote(v)
	return _u
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableVote(v *agentinstance.Vote) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetVote(*v)
	}
	return _u
}

// ClearVote clears the value of the "vote" field.
func (_u *AgentInstanceUpdateOne) ClearVote() *AgentInstanceUpdateOne {
	_u.mutation.ClearVote()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AgentInstanceUpdateOne) SetConfidence(v float64) *AgentInstanceUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableConfidence(v *float64) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AgentInstanceUpdateOne) AddConfidence(v float64) *AgentInstanceUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *AgentInstanceUpdateOne) ClearConfidence() *AgentInstanceUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetInitialAssessment sets the "initial_assessment" field.
func (_u *AgentInstanceUpdateOne) SetInitialAssessment(v string) *AgentInstanceUpdateOne {
	_u.mutation.SetInitialAssessment(v)
	return _u
}

// SetNillableInitialAssessment sets the "initial_assessment" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableInitialAssessment(v *string) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetInitialAssessment(*v)
	}
	return _u
}

// ClearInitialAssessment clears the value of the "initial_assessment" field.
func (_u *AgentInstanceUpdateOne) ClearInitialAssessment() *AgentInstanceUpdateOne {
	_u.mutation.ClearInitialAssessment()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AgentInstanceUpdateOne) SetTokensUsed(v int64) *AgentInstanceUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableTokensUsed(v *int64) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AgentInstanceUpdateOne) AddTokensUsed(v int64) *AgentInstanceUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostCents sets the "cost_cents" field.
func (_u *AgentInstanceUpdateOne) SetCostCents(v int64) *AgentInstanceUpdateOne {
	_u.mutation.ResetCostCents()
	_u.mutation.SetCostCents(v)
	return _u
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableCostCents(v *int64) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetCostCents(*v)
	}
	return _u
}

// AddCostCents adds value to the "cost_cents" field.
func (_u *AgentInstanceUpdateOne) AddCostCents(v int64) *AgentInstanceUpdateOne {
	_u.mutation.AddCostCents(v)
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *AgentInstanceUpdateOne) SetTerminatedAt(v time.Time) *AgentInstanceUpdateOne {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *AgentInstanceUpdateOne) SetNillableTerminatedAt(v *time.Time) *AgentInstanceUpdateOne {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *AgentInstanceUpdateOne) ClearTerminatedAt() *AgentInstanceUpdateOne {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentInstanceUpdateOne) SetUpdatedAt(v time.Time) *AgentInstanceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_u *AgentInstanceUpdateOne) SetSession(v *AnalysisSession) *AgentInstanceUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_u *AgentInstanceUpdateOne) Mutation() *AgentInstanceMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AnalysisSession entity.
func (_u *AgentInstanceUpdateOne) ClearSession() *AgentInstanceUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the AgentInstanceUpdate builder.
func (_u *AgentInstanceUpdateOne) Where(ps ...predicate.AgentInstance) *AgentInstanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentInstanceUpdateOne) Select(field string, fields ...string) *AgentInstanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentInstance entity.
func (_u *AgentInstanceUpdateOne) Save(ctx context.Context) (*AgentInstance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentInstanceUpdateOne) SaveX(ctx context.Context) *AgentInstance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentInstanceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentinstance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentInstanceUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := agentinstance.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Vote(); ok {
		if err := agentinstance.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.vote": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := agentinstance.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.confidence": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentInstance.session"`)
	}
	return nil
}

func (_u *AgentInstanceUpdateOne) sqlSave(ctx context.Context) (_node *AgentInstance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentinstance.Table, agentinstance.Columns, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentinstance.FieldID)
		for _, f := range fields {
			if !agentinstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentinstance.FieldID {
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
	if value, ok := _u.mutation.AgentDefinitionID(); ok {
		_spec.SetField(agentinstance.FieldAgentDefinitionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentinstance.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Vote(); ok {
		_spec.SetField(agentinstance.FieldVote, field.TypeEnum, value)
	}
	if _u.mutation.VoteCleared() {
		_spec.ClearField(agentinstance.FieldVote, field.TypeEnum)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(agentinstance.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(agentinstance.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(agentinstance.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.InitialAssessment(); ok {
		_spec.SetField(agentinstance.FieldInitialAssessment, field.TypeString, value)
	}
	if _u.mutation.InitialAssessmentCleared() {
		_spec.ClearField(agentinstance.FieldInitialAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(agentinstance.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(agentinstance.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostCents(); ok {
		_spec.SetField(agentinstance.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCostCents(); ok {
		_spec.AddField(agentinstance.FieldCostCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(agentinstance.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(agentinstance.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinstance.SessionTable,
			Columns: []string{agentinstance.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysissession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentinstance.SessionTable,
			Columns: []string{agentinstance.SessionColumn},
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
	_node = &AgentInstance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
