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
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// WorkspaceCreate is the builder for creating a Workspace entity.
type WorkspaceCreate struct {
	config
	mutation *WorkspaceMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WorkspaceCreate) SetName(v string) *WorkspaceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkspaceCreate) SetStatus(v workspace.Status) *WorkspaceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableStatus(v *workspace.Status) *WorkspaceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSettings sets the "settings" field.
func (_c *WorkspaceCreate) SetSettings(v map[string]interface{}) *WorkspaceCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetLlmSpendCents sets the "llm_spend_cents" field.
func (_c *WorkspaceCreate) SetLlmSpendCents(v int64) *WorkspaceCreate {
	_c.mutation.SetLlmSpendCents(v)
	return _c
}

// SetNillableLlmSpendCents sets the "llm_spend_cents" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLlmSpendCents(v *int64) *WorkspaceCreate {
	if v != nil {
		_c.SetLlmSpendCents(*v)
	}
	return _c
}

// SetLlmTokensUsed sets the "llm_tokens_used" field.
func (_c *WorkspaceCreate) SetLlmTokensUsed(v int64) *WorkspaceCreate {
	_c.mutation.SetLlmTokensUsed(v)
	return _c
}

// SetNillableLlmTokensUsed sets the "llm_tokens_used" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableLlmTokensUsed(v *int64) *WorkspaceCreate {
	if v != nil {
		_c.SetLlmTokensUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkspaceCreate) SetCreatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableCreatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkspaceCreate) SetUpdatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableUpdatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkspaceCreate) SetID(v uuid.UUID) *WorkspaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableID(v *uuid.UUID) *WorkspaceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAgentIDs adds the "agents" edge to the RegisteredAgent entity by IDs.
func (_c *WorkspaceCreate) AddAgentIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the RegisteredAgent entity.
func (_c *WorkspaceCreate) AddAgents(v ...*RegisteredAgent) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// AddEventIDs adds the "events" edge to the AgentEvent entity by IDs.
func (_c *WorkspaceCreate) AddEventIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the AgentEvent entity.
func (_c *WorkspaceCreate) AddEvents(v ...*AgentEvent) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// AddPolicyRuleIDs adds the "policy_rules" edge to the PolicyRule entity by IDs.
func (_c *WorkspaceCreate) AddPolicyRuleIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddPolicyRuleIDs(ids...)
	return _c
}

// AddPolicyRules adds the "policy_rules" edges to the PolicyRule entity.
func (_c *WorkspaceCreate) AddPolicyRules(v ...*PolicyRule) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPolicyRuleIDs(ids...)
}

// AddDetectionRuleIDs adds the "detection_rules" edge to the DetectionRule entity by IDs.
func (_c *WorkspaceCreate) AddDetectionRuleIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddDetectionRuleIDs(ids...)
	return _c
}

// AddDetectionRules adds the "detection_rules" edges to the DetectionRule entity.
func (_c *WorkspaceCreate) AddDetectionRules(v ...*DetectionRule) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDetectionRuleIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_c *WorkspaceCreate) AddWorkflowIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddWorkflowIDs(ids...)
	return _c
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_c *WorkspaceCreate) AddWorkflows(v ...*Workflow) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowIDs(ids...)
}

// AddConsensusPolicyIDs adds the "consensus_policies" edge to the ConsensusPolicy entity by IDs.
func (_c *WorkspaceCreate) AddConsensusPolicyIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddConsensusPolicyIDs(ids...)
	return _c
}

// AddConsensusPolicies adds the "consensus_policies" edges to the ConsensusPolicy entity.
func (_c *WorkspaceCreate) AddConsensusPolicies(v ...*ConsensusPolicy) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsensusPolicyIDs(ids...)
}

// AddGhostConfigIDs adds the "ghost_configs" edge to the GhostProtocolConfig entity by IDs.
func (_c *WorkspaceCreate) AddGhostConfigIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddGhostConfigIDs(ids...)
	return _c
}

// AddGhostConfigs adds the "ghost_configs" edges to the GhostProtocolConfig entity.
func (_c *WorkspaceCreate) AddGhostConfigs(v ...*GhostProtocolConfig) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGhostConfigIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the AnalysisSession entity by IDs.
func (_c *WorkspaceCreate) AddSessionIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the AnalysisSession entity.
func (_c *WorkspaceCreate) AddSessions(v ...*AnalysisSession) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the PolicyViolation entity by IDs.
func (_c *WorkspaceCreate) AddViolationIDs(ids ...uuid.UUID) *WorkspaceCreate {
	_c.mutation.AddViolationIDs(ids...)
	return _c
}

// AddViolations adds the "violations" edges to the PolicyViolation entity.
func (_c *WorkspaceCreate) AddViolations(v ...*PolicyViolation) *WorkspaceCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViolationIDs(ids...)
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_c *WorkspaceCreate) Mutation() *WorkspaceMutation {
	return _c.mutation
}

// Save creates the Workspace in the database.
func (_c *WorkspaceCreate) Save(ctx context.Context) (*Workspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceCreate) SaveX(ctx context.Context) *Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workspace.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LlmSpendCents(); !ok {
		v := workspace.DefaultLlmSpendCents
		_c.mutation.SetLlmSpendCents(v)
	}
	if _, ok := _c.mutation.LlmTokensUsed(); !ok {
		v := workspace.DefaultLlmTokensUsed
		_c.mutation.SetLlmTokensUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workspace.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := workspace.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Workspace.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := workspace.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Workspace.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workspace.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workspace.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workspace.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LlmSpendCents(); !ok {
		return &ValidationError{Name: "llm_spend_cents", err: errors.New(`ent: missing required field "Workspace.llm_spend_cents"`)}
	}
	if _, ok := _c.mutation.LlmTokensUsed(); !ok {
		return &ValidationError{Name: "llm_tokens_used", err: errors.New(`ent: missing required field "Workspace.llm_tokens_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workspace.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workspace.updated_at"`)}
	}
	return nil
}

func (_c *WorkspaceCreate) sqlSave(ctx context.Context) (*Workspace, error) {
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

func (_c *WorkspaceCreate) createSpec() (*Workspace, *sqlgraph.CreateSpec) {
	var (
		_node = &Workspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspace.Table, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workspace.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workspace.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(workspace.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.LlmSpendCents(); ok {
		_spec.SetField(workspace.FieldLlmSpendCents, field.TypeInt64, value)
		_node.LlmSpendCents = value
	}
	if value, ok := _c.mutation.LlmTokensUsed(); ok {
		_spec.SetField(workspace.FieldLlmTokensUsed, field.TypeInt64, value)
		_node.LlmTokensUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workspace.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PolicyRulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DetectionRulesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkflowsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsensusPoliciesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GhostConfigsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkspaceCreateBulk is the builder for creating many Workspace entities in bulk.
type WorkspaceCreateBulk struct {
	config
	err      error
	builders []*WorkspaceCreate
}

// Save creates the Workspace entities in the database.
func (_c *WorkspaceCreateBulk) Save(ctx context.Context) ([]*Workspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceMutation)
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
func (_c *WorkspaceCreateBulk) SaveX(ctx context.Context) []*Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
