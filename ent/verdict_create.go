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
	"github.com/swarmshield/swarmshield/ent/analysissession"
	"github.com/swarmshield/swarmshield/ent/verdict"
)

// VerdictCreate is the builder for creating a Verdict entity.
type VerdictCreate struct {
	config
	mutation *VerdictMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *VerdictCreate) SetSessionID(v uuid.UUID) *VerdictCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *VerdictCreate) SetWorkspaceID(v uuid.UUID) *VerdictCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *VerdictCreate) SetDecision(v verdict.Decision) *VerdictCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VerdictCreate) SetConfidence(v float64) *VerdictCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *VerdictCreate) SetReasoning(v string) *VerdictCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *VerdictCreate) SetNillableReasoning(v *string) *VerdictCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetVoteBreakdown sets the "vote_breakdown" field.
func (_c *VerdictCreate) SetVoteBreakdown(v map[string]interface{}) *VerdictCreate {
	_c.mutation.SetVoteBreakdown(v)
	return _c
}

// SetDissentingOpinions sets the "dissenting_opinions" field.
func (_c *VerdictCreate) SetDissentingOpinions(v []map[string]interface{}) *VerdictCreate {
	_c.mutation.SetDissentingOpinions(v)
	return _c
}

// SetStrategyUsed sets the "strategy_used" field.
func (_c *VerdictCreate) SetStrategyUsed(v string) *VerdictCreate {
	_c.mutation.SetStrategyUsed(v)
	return _c
}

// SetConsensusReached sets the "consensus_reached" field.
func (_c *VerdictCreate) SetConsensusReached(v bool) *VerdictCreate {
	_c.mutation.SetConsensusReached(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerdictCreate) SetCreatedAt(v time.Time) *VerdictCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerdictCreate) SetNillableCreatedAt(v *time.Time) *VerdictCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerdictCreate) SetID(v uuid.UUID) *VerdictCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerdictCreate) SetNillableID(v *uuid.UUID) *VerdictCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the AnalysisSession entity.
func (_c *VerdictCreate) SetSession(v *AnalysisSession) *VerdictCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the VerdictMutation object of the builder.
func (_c *VerdictCreate) Mutation() *VerdictMutation {
	return _c.mutation
}

// Save creates the Verdict in the database.
func (_c *VerdictCreate) Save(ctx context.Context) (*Verdict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerdictCreate) SaveX(ctx context.Context) *Verdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerdictCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verdict.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verdict.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerdictCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Verdict.session_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Verdict.workspace_id"`)}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "Verdict.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := verdict.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "Verdict.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Verdict.confidence"`)}
	}
	if _, ok := _c.mutation.StrategyUsed(); !ok {
		return &ValidationError{Name: "strategy_used", err: errors.New(`ent: missing required field "Verdict.strategy_used"`)}
	}
	if _, ok := _c.mutation.ConsensusReached(); !ok {
		return &ValidationError{Name: "consensus_reached", err: errors.New(`ent: missing required field "Verdict.consensus_reached"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Verdict.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Verdict.session"`)}
	}
	return nil
}

func (_c *VerdictCreate) sqlSave(ctx context.Context) (*Verdict, error) {
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

func (_c *VerdictCreate) createSpec() (*Verdict, *sqlgraph.CreateSpec) {
	var (
		_node = &Verdict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verdict.Table, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(verdict.FieldWorkspaceID, field.TypeUUID, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(verdict.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(verdict.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(verdict.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.VoteBreakdown(); ok {
		_spec.SetField(verdict.FieldVoteBreakdown, field.TypeJSON, value)
		_node.VoteBreakdown = value
	}
	if value, ok := _c.mutation.DissentingOpinions(); ok {
		_spec.SetField(verdict.FieldDissentingOpinions, field.TypeJSON, value)
		_node.DissentingOpinions = value
	}
	if value, ok := _c.mutation.StrategyUsed(); ok {
		_spec.SetField(verdict.FieldStrategyUsed, field.TypeString, value)
		_node.StrategyUsed = value
	}
	if value, ok := _c.mutation.ConsensusReached(); ok {
		_spec.SetField(verdict.FieldConsensusReached, field.TypeBool, value)
		_node.ConsensusReached = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verdict.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   verdict.SessionTable,
			Columns: []string{verdict.SessionColumn},
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

// VerdictCreateBulk is the builder for creating many Verdict entities in bulk.
type VerdictCreateBulk struct {
	config
	err      error
	builders []*VerdictCreate
}

// Save creates the Verdict entities in the database.
func (_c *VerdictCreateBulk) Save(ctx context.Context) ([]*Verdict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verdict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerdictMutation)
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
func (_c *VerdictCreateBulk) SaveX(ctx context.Context) []*Verdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
