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
	"github.com/swarmshield/swarmshield/ent/agentinstance"
	"github.com/swarmshield/swarmshield/ent/analysissession"
)

// AgentInstanceCreate is the builder for creating a AgentInstance entity.
type AgentInstanceCreate struct {
	config
	mutation *AgentInstanceMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentInstanceCreate) SetSessionID(v uuid.UUID) *AgentInstanceCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAgentDefinitionID sets the "agent_definition_id" field.
func (_c *AgentInstanceCreate) SetAgentDefinitionID(v uuid.UUID) *AgentInstanceCreate {
	_c.mutation.SetAgentDefinitionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentInstanceCreate) SetRole(v string) *AgentInstanceCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentInstanceCreate) SetStatus(v agentinstance.Status) *AgentInstanceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableStatus(v *agentinstance.Status) *AgentInstanceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVote sets the "vote" field.
func (_c *AgentInstanceCreate) SetVote(v agentinstance.Vote) *AgentInstanceCreate {
	_c.mutation.SetVote(v)
	return _c
}

// SetNillableVote sets the "vote" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableVote(v *agentinstance.Vote) *AgentInstanceCreate {
	if v != nil {
		_c.SetVote(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AgentInstanceCreate) SetConfidence(v float64) *AgentInstanceCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableConfidence(v *float64) *AgentInstanceCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetInitialAssessment sets the "initial_assessment" field.
func (_c *AgentInstanceCreate) SetInitialAssessment(v string) *AgentInstanceCreate {
	_c.mutation.SetInitialAssessment(v)
	return _c
}

// SetNillableInitialAssessment sets the "initial_assessment" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableInitialAssessment(v *string) *AgentInstanceCreate {
	if v != nil {
		_c.SetInitialAssessment(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AgentInstanceCreate) SetTokensUsed(v int64) *AgentInstanceCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableTokensUsed(v *int64) *AgentInstanceCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostCents sets the "cost_cents" field.
func (_c *AgentInstanceCreate) SetCostCents(v int64) *AgentInstanceCreate {
	_c.mutation.SetCostCents(v)
	return _c
}

// SetNillableCostCents sets the "cost_cents" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableCostCents(v *int64) *AgentInstanceCreate {
	if v != nil {
		_c.SetCostCents(*v)
	}
	return _c
}

// SetTerminatedAt sets the "terminated_at" field.
func (_c *AgentInstanceCreate) SetTerminatedAt(v time.Time) *AgentInstanceCreate {
	_c.mutation.SetTerminatedAt(v)
	return _c
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableTerminatedAt(v *time.Time) *AgentInstanceCreate {
	if v != nil {
		_c.SetTerminatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentInstanceCreate) SetCreatedAt(v time.Time) *AgentInstanceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableCreatedAt(v *time.Time) *AgentInstanceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentInstanceCreate) SetUpdatedAt(v time.Time) *AgentInstanceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableUpdatedAt(v *time.Time) *AgentInstanceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentInstanceCreate) SetID(v uuid.UUID) *AgentInstanceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AgentInstanceCreate) SetNillableID(v *uuid.UUID) *AgentInstanceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_c *AgentInstanceCreate) SetSession(v *AnalysisSession) *AgentInstanceCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AgentInstanceMutation object of the builder.
func (_c *AgentInstanceCreate) Mutation() *AgentInstanceMutation {
	return _c.mutation
}

// Save creates the AgentInstance in the database.
func (_c *AgentInstanceCreate) Save(ctx context.Context) (*AgentInstance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentInstanceCreate) SaveX(ctx context.Context) *AgentInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInstanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInstanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentInstanceCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentinstance.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := agentinstance.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		v := agentinstance.DefaultCostCents
		_c.mutation.SetCostCents(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentinstance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentinstance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := agentinstance.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentInstanceCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentInstance.session_id"`)}
	}
	if _, ok := _c.mutation.AgentDefinitionID(); !ok {
		return &ValidationError{Name: "agent_definition_id", err: errors.New(`ent: missing required field "AgentInstance.agent_definition_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentInstance.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agentinstance.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentInstance.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Vote(); ok {
		if err := agentinstance.VoteValidator(v); err != nil {
			return &ValidationError{Name: "vote", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.vote": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := agentinstance.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AgentInstance.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "AgentInstance.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostCents(); !ok {
		return &ValidationError{Name: "cost_cents", err: errors.New(`ent: missing required field "AgentInstance.cost_cents"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentInstance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentInstance.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AgentInstance.session"`)}
	}
	return nil
}

func (_c *AgentInstanceCreate) sqlSave(ctx context.Context) (*AgentInstance, error) {
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

func (_c *AgentInstanceCreate) createSpec() (*AgentInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentInstance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentinstance.Table, sqlgraph.NewFieldSpec(agentinstance.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AgentDefinitionID(); ok {
		_spec.SetField(agentinstance.FieldAgentDefinitionID, field.TypeUUID, value)
		_node.AgentDefinitionID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentinstance.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentinstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Vote(); ok {
		_spec.SetField(agentinstance.FieldVote, field.TypeEnum, value)
		_node.Vote = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(agentinstance.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.InitialAssessment(); ok {
		_spec.SetField(agentinstance.FieldInitialAssessment, field.TypeString, value)
		_node.InitialAssessment = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(agentinstance.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostCents(); ok {
		_spec.SetField(agentinstance.FieldCostCents, field.TypeInt64, value)
		_node.CostCents = value
	}
	if value, ok := _c.mutation.TerminatedAt(); ok {
		_spec.SetField(agentinstance.FieldTerminatedAt, field.TypeTime, value)
		_node.TerminatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentinstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentinstance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentInstanceCreateBulk is the builder for creating many AgentInstance entities in bulk.
type AgentInstanceCreateBulk struct {
	config
	err      error
	builders []*AgentInstanceCreate
}

// Save creates the AgentInstance entities in the database.
func (_c *AgentInstanceCreateBulk) Save(ctx context.Context) ([]*AgentInstance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentInstance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentInstanceMutation)
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
func (_c *AgentInstanceCreateBulk) SaveX(ctx context.Context) []*AgentInstance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
