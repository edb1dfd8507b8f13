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
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdate) SetName(v string) *WorkspaceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableName(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkspaceUpdate) SetStatus(v workspace.Status) *WorkspaceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableStatus(v *workspace.Status) *WorkspaceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *WorkspaceUpdate) SetSettings(v map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *WorkspaceUpdate) ClearSettings() *WorkspaceUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetLlmSpendCents sets the "llm_spend_cents" field.
func (_u *WorkspaceUpdate) SetLlmSpendCents(v int64) *WorkspaceUpdate {
	_u.mutation.ResetLlmSpendCents()
	_u.mutation.SetLlmSpendCents(v)
	return _u
}

// SetNillableLlmSpendCents sets the "llm_spend_cents" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLlmSpendCents(v *int64) *WorkspaceUpdate {
	if v != nil {
		_u.SetLlmSpendCents(*v)
	}
	return _u
}

// AddLlmSpendCents adds value to the "llm_spend_cents" field.
func (_u *WorkspaceUpdate) AddLlmSpendCents(v int64) *WorkspaceUpdate {
	_u.mutation.AddLlmSpendCents(v)
	return _u
}

// SetLlmTokensUsed sets the "llm_tokens_used" field.
func (_u *WorkspaceUpdate) SetLlmTokensUsed(v int64) *WorkspaceUpdate {
	_u.mutation.ResetLlmTokensUsed()
	_u.mutation.SetLlmTokensUsed(v)
	return _u
}

// SetNillableLlmTokensUsed sets the "llm_tokens_used" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableLlmTokensUsed(v *int64) *WorkspaceUpdate {
	if v != nil {
		_u.SetLlmTokensUsed(*v)
	}
	return _u
}

// AddLlmTokensUsed adds value to the "llm_tokens_used" field.
func (_u *WorkspaceUpdate) AddLlmTokensUsed(v int64) *WorkspaceUpdate {
	_u.mutation.AddLlmTokensUsed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdate) SetUpdatedAt(v time.Time) *WorkspaceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentIDs adds the "agents" edge to the RegisteredAgent entity by IDs.
func (_u *WorkspaceUpdate) AddAgentIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the RegisteredAgent entity.
func (_u *WorkspaceUpdate) AddAgents(v ...*RegisteredAgent) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddEventIDs adds the "events" edge to the AgentEvent entity by IDs.
func (_u *WorkspaceUpdate) AddEventIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the AgentEvent entity.
func (_u *WorkspaceUpdate) AddEvents(v ...*AgentEvent) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddPolicyRuleIDs adds the "policy_rules" edge to the PolicyRule entity by IDs.
func (_u *WorkspaceUpdate) AddPolicyRuleIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddPolicyRuleIDs(ids...)
	return _u
}

// AddPolicyRules adds the "policy_rules" edges to the PolicyRule entity.
func (_u *WorkspaceUpdate) AddPolicyRules(v ...*PolicyRule) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyRuleIDs(ids...)
}

// AddDetectionRuleIDs adds the "detection_rules" edge to the DetectionRule entity by IDs.
func (_u *WorkspaceUpdate) AddDetectionRuleIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddDetectionRuleIDs(ids...)
	return _u
}

// AddDetectionRules adds the "detection_rules" edges to the DetectionRule entity.
func (_u *WorkspaceUpdate) AddDetectionRules(v ...*DetectionRule) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectionRuleIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_u *WorkspaceUpdate) AddWorkflowIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_u *WorkspaceUpdate) AddWorkflows(v ...*Workflow) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddConsensusPolicyIDs adds the "consensus_policies" edge to the ConsensusPolicy entity by IDs.
func (_u *WorkspaceUpdate) AddConsensusPolicyIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddConsensusPolicyIDs(ids...)
	return _u
}

// AddConsensusPolicies adds the "consensus_policies" edges to the ConsensusPolicy entity.
func (_u *WorkspaceUpdate) AddConsensusPolicies(v ...*ConsensusPolicy) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsensusPolicyIDs(ids...)
}

// AddGhostConfigIDs adds the "ghost_configs" edge to the GhostProtocolConfig entity by IDs.
func (_u *WorkspaceUpdate) AddGhostConfigIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddGhostConfigIDs(ids...)
	return _u
}

// AddGhostConfigs adds the "ghost_configs" edges to the GhostProtocolConfig entity.
func (_u *WorkspaceUpdate) AddGhostConfigs(v ...*GhostProtocolConfig) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGhostConfigIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_u *WorkspaceUpdate) AddSessionIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_u *WorkspaceUpdate) AddSessions(v ...*AnalysisSession) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_u *WorkspaceUpdate) AddViolationIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_u *WorkspaceUpdate) AddViolations(v ...*PolicyViolation) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the RegisteredAgent entity.
func (_u *WorkspaceUpdate) ClearAgents() *WorkspaceUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to RegisteredAgent entities by IDs.
func (_u *WorkspaceUpdate) RemoveAgentIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to RegisteredAgent entities.
func (_u *WorkspaceUpdate) RemoveAgents(v ...*RegisteredAgent) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearEvents clears all "events" edges to the AgentEvent entity.
func (_u *WorkspaceUpdate) ClearEvents() *WorkspaceUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to AgentEvent entities by IDs.
func (_u *WorkspaceUpdate) RemoveEventIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to AgentEvent entities.
func (_u *WorkspaceUpdate) RemoveEvents(v ...*AgentEvent) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearPolicyRules clears all "policy_rules" edges to the PolicyRule entity.
func (_u *WorkspaceUpdate) ClearPolicyRules() *WorkspaceUpdate {
	_u.mutation.ClearPolicyRules()
	return _u
}

// RemovePolicyRuleIDs removes the "policy_rules" edge to PolicyRule entities by IDs.
func (_u *WorkspaceUpdate) RemovePolicyRuleIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemovePolicyRuleIDs(ids...)
	return _u
}

// RemovePolicyRules removes "policy_rules" edges to PolicyRule entities.
func (_u *WorkspaceUpdate) RemovePolicyRules(v ...*PolicyRule) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyRuleIDs(ids...)
}

// ClearDetectionRules clears all "detection_rules" edges to the DetectionRule entity.
func (_u *WorkspaceUpdate) ClearDetectionRules() *WorkspaceUpdate {
	_u.mutation.ClearDetectionRules()
	return _u
}

// RemoveDetectionRuleIDs removes the "detection_rules" edge to DetectionRule entities by IDs.
func (_u *WorkspaceUpdate) RemoveDetectionRuleIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveDetectionRuleIDs(ids...)
	return _u
}

// RemoveDetectionRules removes "detection_rules" edges to DetectionRule entities.
func (_u *WorkspaceUpdate) RemoveDetectionRules(v ...*DetectionRule) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectionRuleIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the Workflow entity.
func (_u *WorkspaceUpdate) ClearWorkflows() *WorkspaceUpdate {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to Workflow entities by IDs.
func (_u *WorkspaceUpdate) RemoveWorkflowIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to Workflow entities.
func (_u *WorkspaceUpdate) RemoveWorkflows(v ...*Workflow) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearConsensusPolicies clears all "consensus_policies" edges to the ConsensusPolicy entity.
func (_u *WorkspaceUpdate) ClearConsensusPolicies() *WorkspaceUpdate {
	_u.mutation.ClearConsensusPolicies()
	return _u
}

// RemoveConsensusPolicyIDs removes the "consensus_policies" edge to ConsensusPolicy entities by IDs.
func (_u *WorkspaceUpdate) RemoveConsensusPolicyIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveConsensusPolicyIDs(ids...)
	return _u
}

// RemoveConsensusPolicies removes "consensus_policies" edges to ConsensusPolicy entities.
func (_u *WorkspaceUpdate) RemoveConsensusPolicies(v ...*ConsensusPolicy) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsensusPolicyIDs(ids...)
}

// ClearGhostConfigs clears all "ghost_configs" edges to the GhostProtocolConfig entity.
func (_u *WorkspaceUpdate) ClearGhostConfigs() *WorkspaceUpdate {
	_u.mutation.ClearGhostConfigs()
	return _u
}

// RemoveGhostConfigIDs removes the "ghost_configs" edge to GhostProtocolConfig entities by IDs.
func (_u *WorkspaceUpdate) RemoveGhostConfigIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveGhostConfigIDs(ids...)
	return _u
}

// RemoveGhostConfigs removes "ghost_configs" edges to GhostProtocolConfig entities.
func (_u *WorkspaceUpdate) RemoveGhostConfigs(v ...*GhostProtocolConfig) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGhostConfigIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the AnalysisSession entity.
func (_u *WorkspaceUpdate) ClearSessions() *WorkspaceUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AnalysisSession entities by IDs.
func (_u *WorkspaceUpdate) RemoveSessionIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AnalysisSession entities.
func (_u *WorkspaceUpdate) RemoveSessions(v ...*AnalysisSession) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearViolations clears all "violations" edges to the PolicyViolation entity.
func (_u *WorkspaceUpdate) ClearViolations() *WorkspaceUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to PolicyViolation entities by IDs.
func (_u *WorkspaceUpdate) RemoveViolationIDs(ids ...uuid.UUID) *WorkspaceUpdate {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to PolicyViolation entities.
func (_u *WorkspaceUpdate) RemoveViolations(v ...*PolicyViolation) *WorkspaceUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(workspace.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(workspace.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmSpendCents(); ok {
		_spec.SetField(workspace.FieldLlmSpendCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmSpendCents(); ok {
		_spec.AddField(workspace.FieldLlmSpendCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LlmTokensUsed(); ok {
		_spec.SetField(workspace.FieldLlmTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmTokensUsed(); ok {
		_spec.AddField(workspace.FieldLlmTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
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
	if _u.mutation.PolicyRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPolicyRulesIDs(); len(nodes) > 0 && !_u.mutation.PolicyRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetectionRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectionRulesIDs(); len(nodes) > 0 && !_u.mutation.DetectionRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectionRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsensusPoliciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsensusPoliciesIDs(); len(nodes) > 0 && !_u.mutation.ConsensusPoliciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsensusPoliciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GhostConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGhostConfigsIDs(); len(nodes) > 0 && !_u.mutation.GhostConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GhostConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetName sets the "name" field.
func (_u *WorkspaceUpdateOne) SetName(v string) *WorkspaceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableName(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkspaceUpdateOne) SetStatus(v workspace.Status) *WorkspaceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableStatus(v *workspace.Status) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *WorkspaceUpdateOne) SetSettings(v map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *WorkspaceUpdateOne) ClearSettings() *WorkspaceUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetLlmSpendCents sets the "llm_spend_cents" field.
func (_u *WorkspaceUpdateOne) SetLlmSpendCents(v int64) *WorkspaceUpdateOne {
	_u.mutation.ResetLlmSpendCents()
	_u.mutation.SetLlmSpendCents(v)
	return _u
}

// SetNillableLlmSpendCents sets the "llm_spend_cents" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLlmSpendCents(v *int64) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLlmSpendCents(*v)
	}
	return _u
}

// AddLlmSpendCents adds value to the "llm_spend_cents" field.
func (_u *WorkspaceUpdateOne) AddLlmSpendCents(v int64) *WorkspaceUpdateOne {
	_u.mutation.AddLlmSpendCents(v)
	return _u
}

// SetLlmTokensUsed sets the "llm_tokens_used" field.
func (_u *WorkspaceUpdateOne) SetLlmTokensUsed(v int64) *WorkspaceUpdateOne {
	_u.mutation.ResetLlmTokensUsed()
	_u.mutation.SetLlmTokensUsed(v)
	return _u
}

// SetNillableLlmTokensUsed sets the "llm_tokens_used" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableLlmTokensUsed(v *int64) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetLlmTokensUsed(*v)
	}
	return _u
}

// AddLlmTokensUsed adds value to the "llm_tokens_used" field.
func (_u *WorkspaceUpdateOne) AddLlmTokensUsed(v int64) *WorkspaceUpdateOne {
	_u.mutation.AddLlmTokensUsed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAgentIDs adds the "agents" edge to the RegisteredAgent entity by IDs.
func (_u *WorkspaceUpdateOne) AddAgentIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the RegisteredAgent entity.
func (_u *WorkspaceUpdateOne) AddAgents(v ...*RegisteredAgent) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddEventIDs adds the "events" edge to the AgentEvent entity by IDs.
func (_u *WorkspaceUpdateOne) AddEventIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the AgentEvent entity.
func (_u *WorkspaceUpdateOne) AddEvents(v ...*AgentEvent) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// AddPolicyRuleIDs adds the "policy_rules" edge to the PolicyRule entity by IDs.
func (_u *WorkspaceUpdateOne) AddPolicyRuleIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddPolicyRuleIDs(ids...)
	return _u
}

// AddPolicyRules adds the "policy_rules" edges to the PolicyRule entity.
func (_u *WorkspaceUpdateOne) AddPolicyRules(v ...*PolicyRule) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolicyRuleIDs(ids...)
}

// AddDetectionRuleIDs adds the "detection_rules" edge to the DetectionRule entity by IDs.
func (_u *WorkspaceUpdateOne) AddDetectionRuleIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddDetectionRuleIDs(ids...)
	return _u
}

// AddDetectionRules adds the "detection_rules" edges to the DetectionRule entity.
func (_u *WorkspaceUpdateOne) AddDetectionRules(v ...*DetectionRule) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectionRuleIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_u *WorkspaceUpdateOne) AddWorkflowIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_u *WorkspaceUpdateOne) AddWorkflows(v ...*Workflow) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// AddConsensusPolicyIDs adds the "consensus_policies" edge to the ConsensusPolicy entity by IDs.
func (_u *WorkspaceUpdateOne) AddConsensusPolicyIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddConsensusPolicyIDs(ids...)
	return _u
}

// AddConsensusPolicies adds the "consensus_policies" edges to the ConsensusPolicy entity.
func (_u *WorkspaceUpdateOne) AddConsensusPolicies(v ...*ConsensusPolicy) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsensusPolicyIDs(ids...)
}

// AddGhostConfigIDs adds the "ghost_configs" edge to the GhostProtocolConfig entity by IDs.
func (_u *WorkspaceUpdateOne) AddGhostConfigIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddGhostConfigIDs(ids...)
	return _u
}

// AddGhostConfigs adds the "ghost_configs" edges to the GhostProtocolConfig entity.
func (_u *WorkspaceUpdateOne) AddGhostConfigs(v ...*GhostProtocolConfig) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGhostConfigIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_u *WorkspaceUpdateOne) AddSessionIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_u *WorkspaceUpdateOne) AddSessions(v ...*AnalysisSession) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_u *WorkspaceUpdateOne) AddViolationIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_u *WorkspaceUpdateOne) AddViolations(v ...*PolicyViolation) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the RegisteredAgent entity.
func (_u *WorkspaceUpdateOne) ClearAgents() *WorkspaceUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to RegisteredAgent entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveAgentIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to RegisteredAgent entities.
func (_u *WorkspaceUpdateOne) RemoveAgents(v ...*RegisteredAgent) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearEvents clears all "events" edges to the AgentEvent entity.
func (_u *WorkspaceUpdateOne) ClearEvents() *WorkspaceUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to AgentEvent entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveEventIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to AgentEvent entities.
func (_u *WorkspaceUpdateOne) RemoveEvents(v ...*AgentEvent) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearPolicyRules clears all "policy_rules" edges to the PolicyRule entity.
func (_u *WorkspaceUpdateOne) ClearPolicyRules() *WorkspaceUpdateOne {
	_u.mutation.ClearPolicyRules()
	return _u
}

// RemovePolicyRuleIDs removes the "policy_rules" edge to PolicyRule entities by IDs.
func (_u *WorkspaceUpdateOne) RemovePolicyRuleIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemovePolicyRuleIDs(ids...)
	return _u
}

// RemovePolicyRules removes "policy_rules" edges to PolicyRule entities.
func (_u *WorkspaceUpdateOne) RemovePolicyRules(v ...*PolicyRule) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolicyRuleIDs(ids...)
}

// ClearDetectionRules clears all "detection_rules" edges to the DetectionRule entity.
func (_u *WorkspaceUpdateOne) ClearDetectionRules() *WorkspaceUpdateOne {
	_u.mutation.ClearDetectionRules()
	return _u
}

// RemoveDetectionRuleIDs removes the "detection_rules" edge to DetectionRule entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveDetectionRuleIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveDetectionRuleIDs(ids...)
	return _u
}

// RemoveDetectionRules removes "detection_rules" edges to DetectionRule entities.
func (_u *WorkspaceUpdateOne) RemoveDetectionRules(v ...*DetectionRule) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectionRuleIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the Workflow entity.
func (_u *WorkspaceUpdateOne) ClearWorkflows() *WorkspaceUpdateOne {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to Workflow entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveWorkflowIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to Workflow entities.
func (_u *WorkspaceUpdateOne) RemoveWorkflows(v ...*Workflow) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearConsensusPolicies clears all "consensus_policies" edges to the ConsensusPolicy entity.
func (_u *WorkspaceUpdateOne) ClearConsensusPolicies() *WorkspaceUpdateOne {
	_u.mutation.ClearConsensusPolicies()
	return _u
}

// RemoveConsensusPolicyIDs removes the "consensus_policies" edge to ConsensusPolicy entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveConsensusPolicyIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveConsensusPolicyIDs(ids...)
	return _u
}

// RemoveConsensusPolicies removes "consensus_policies" edges to ConsensusPolicy entities.
func (_u *WorkspaceUpdateOne) RemoveConsensusPolicies(v ...*ConsensusPolicy) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsensusPolicyIDs(ids...)
}

// ClearGhostConfigs clears all "ghost_configs" edges to the GhostProtocolConfig entity.
func (_u *WorkspaceUpdateOne) ClearGhostConfigs() *WorkspaceUpdateOne {
	_u.mutation.ClearGhostConfigs()
	return _u
}

// RemoveGhostConfigIDs removes the "ghost_configs" edge to GhostProtocolConfig entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveGhostConfigIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveGhostConfigIDs(ids...)
	return _u
}

// RemoveGhostConfigs removes "ghost_configs" edges to GhostProtocolConfig entities.
func (_u *WorkspaceUpdateOne) RemoveGhostConfigs(v ...*GhostProtocolConfig) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGhostConfigIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the AnalysisSession entity.
func (_u *WorkspaceUpdateOne) ClearSessions() *WorkspaceUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AnalysisSession entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AnalysisSession entities.
func (_u *WorkspaceUpdateOne) RemoveSessions(v ...*AnalysisSession) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearViolations clears all "violations" edges to the PolicyViolation entity.
func (_u *WorkspaceUpdateOne) ClearViolations() *WorkspaceUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to PolicyViolation entities by IDs.
func (_u *WorkspaceUpdateOne) RemoveViolationIDs(ids ...uuid.UUID) *WorkspaceUpdateOne {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to PolicyViolation entities.
func (_u *WorkspaceUpdateOne) RemoveViolations(v ...*PolicyViolation) *WorkspaceUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspace.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
		_spec.SetField(workspace.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(workspace.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(workspace.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmSpendCents(); ok {
		_spec.SetField(workspace.FieldLlmSpendCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmSpendCents(); ok {
		_spec.AddField(workspace.FieldLlmSpendCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LlmTokensUsed(); ok {
		_spec.SetField(workspace.FieldLlmTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLlmTokensUsed(); ok {
		_spec.AddField(workspace.FieldLlmTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.AgentsTable,
			Columns: []string{workspace.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(registeredagent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.EventsTable,
			Columns: []string{workspace.EventsColumn},
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
	if _u.mutation.PolicyRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPolicyRulesIDs(); len(nodes) > 0 && !_u.mutation.PolicyRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.PolicyRulesTable,
			Columns: []string{workspace.PolicyRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(policyrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetectionRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectionRulesIDs(); len(nodes) > 0 && !_u.mutation.DetectionRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectionRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.DetectionRulesTable,
			Columns: []string{workspace.DetectionRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.WorkflowsTable,
			Columns: []string{workspace.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsensusPoliciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsensusPoliciesIDs(); len(nodes) > 0 && !_u.mutation.ConsensusPoliciesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsensusPoliciesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ConsensusPoliciesTable,
			Columns: []string{workspace.ConsensusPoliciesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consensuspolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GhostConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGhostConfigsIDs(); len(nodes) > 0 && !_u.mutation.GhostConfigsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GhostConfigsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.GhostConfigsTable,
			Columns: []string{workspace.GhostConfigsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ghostprotocolconfig.FieldID, field.TypeUUID),
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
			Table:   workspace.SessionsTable,
			Columns: []string{workspace.SessionsColumn},
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
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
			Table:   workspace.ViolationsTable,
			Columns: []string{workspace.ViolationsColumn},
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
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
