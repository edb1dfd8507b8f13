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
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// DetectionRuleCreate is the builder for creating a DetectionRule entity.
type DetectionRuleCreate struct {
	config
	mutation *DetectionRuleMutation
	hooks    []Hook
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *DetectionRuleCreate) SetWorkspaceID(v uuid.UUID) *DetectionRuleCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DetectionRuleCreate) SetName(v string) *DetectionRuleCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDetectionType sets the "detection_type" field.
func (_c *DetectionRuleCreate) SetDetectionType(v detectionrule.DetectionType) *DetectionRuleCreate {
	_c.mutation.SetDetectionType(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *DetectionRuleCreate) SetPattern(v string) *DetectionRuleCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillablePattern(v *string) *DetectionRuleCreate {
	if v != nil {
		_c.SetPattern(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *DetectionRuleCreate) SetKeywords(v []string) *DetectionRuleCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *DetectionRuleCreate) SetEnabled(v bool) *DetectionRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillableEnabled(v *bool) *DetectionRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *DetectionRuleCreate) SetDescription(v string) *DetectionRuleCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillableDescription(v *string) *DetectionRuleCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DetectionRuleCreate) SetCreatedAt(v time.Time) *DetectionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillableCreatedAt(v *time.Time) *DetectionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DetectionRuleCreate) SetUpdatedAt(v time.Time) *DetectionRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillableUpdatedAt(v *time.Time) *DetectionRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DetectionRuleCreate) SetID(v uuid.UUID) *DetectionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DetectionRuleCreate) SetNillableID(v *uuid.UUID) *DetectionRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *DetectionRuleCreate) SetWorkspace(v *Workspace) *DetectionRuleCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the DetectionRuleMutation object of the builder.
func (_c *DetectionRuleCreate) Mutation() *DetectionRuleMutation {
	return _c.mutation
}

// Save creates the DetectionRule in the database.
func (_c *DetectionRuleCreate) Save(ctx context.Context) (*DetectionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DetectionRuleCreate) SaveX(ctx context.Context) *DetectionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DetectionRuleCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := detectionrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := detectionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := detectionrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := detectionrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DetectionRuleCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "DetectionRule.workspace_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DetectionRule.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := detectionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectionType(); !ok {
		return &ValidationError{Name: "detection_type", err: errors.New(`ent: missing required field "DetectionRule.detection_type"`)}
	}
	if v, ok := _c.mutation.DetectionType(); ok {
		if err := detectionrule.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.detection_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "DetectionRule.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DetectionRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DetectionRule.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "DetectionRule.workspace"`)}
	}
	return nil
}

func (_c *DetectionRuleCreate) sqlSave(ctx context.Context) (*DetectionRule, error) {
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

func (_c *DetectionRuleCreate) createSpec() (*DetectionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &DetectionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(detectionrule.Table, sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(detectionrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.DetectionType(); ok {
		_spec.SetField(detectionrule.FieldDetectionType, field.TypeEnum, value)
		_node.DetectionType = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(detectionrule.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(detectionrule.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(detectionrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(detectionrule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(detectionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(detectionrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detectionrule.WorkspaceTable,
			Columns: []string{detectionrule.WorkspaceColumn},
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
	return _node, _spec
}

// DetectionRuleCreateBulk is the builder for creating many DetectionRule entities in bulk.
type DetectionRuleCreateBulk struct {
	config
	err      error
	builders []*DetectionRuleCreate
}

// Save creates the DetectionRule entities in the database.
func (_c *DetectionRuleCreateBulk) Save(ctx context.Context) ([]*DetectionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DetectionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetectionRuleMutation)
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
func (_c *DetectionRuleCreateBulk) SaveX(ctx context.Context) []*DetectionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
