// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/predicate"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// DetectionRuleUpdate is the builder for updating DetectionRule entities.
type DetectionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *DetectionRuleMutation
}

// Where appends a list predicates to the DetectionRuleUpdate builder.
func (_u *DetectionRuleUpdate) Where(ps ...predicate.DetectionRule) *DetectionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DetectionRuleUpdate) SetWorkspaceID(v uuid.UUID) *DetectionRuleUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillableWorkspaceID(v *uuid.UUID) *DetectionRuleUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DetectionRuleUpdate) SetName(v string) *DetectionRuleUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillableName(v *string) *DetectionRuleUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDetectionType sets the "detection_type" field.
func (_u *DetectionRuleUpdate) SetDetectionType(v detectionrule.DetectionType) *DetectionRuleUpdate {
	_u.mutation.SetDetectionType(v)
	return _u
}

// SetNillableDetectionType sets the "detection_type" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillableDetectionType(v *detectionrule.DetectionType) *DetectionRuleUpdate {
	if v != nil {
		_u.SetDetectionType(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *DetectionRuleUpdate) SetPattern(v string) *DetectionRuleUpdate {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillablePattern(v *string) *DetectionRuleUpdate {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// ClearPattern clears the value of the "pattern" field.
func (_u *DetectionRuleUpdate) ClearPattern() *DetectionRuleUpdate {
	_u.mutation.ClearPattern()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DetectionRuleUpdate) SetKeywords(v []string) *DetectionRuleUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *DetectionRuleUpdate) AppendKeywords(v []string) *DetectionRuleUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DetectionRuleUpdate) ClearKeywords() *DetectionRuleUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DetectionRuleUpdate) SetEnabled(v bool) *DetectionRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillableEnabled(v *bool) *DetectionRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DetectionRuleUpdate) SetDescription(v string) *DetectionRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DetectionRuleUpdate) SetNillableDescription(v *string) *DetectionRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DetectionRuleUpdate) ClearDescription() *DetectionRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectionRuleUpdate) SetUpdatedAt(v time.Time) *DetectionRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *DetectionRuleUpdate) SetWorkspace(v *Workspace) *DetectionRuleUpdate {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the DetectionRuleMutation object of the builder.
func (_u *DetectionRuleUpdate) Mutation() *DetectionRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *DetectionRuleUpdate) ClearWorkspace() *DetectionRuleUpdate {
	_u.mutation.ClearWorkspace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DetectionRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DetectionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectionRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detectionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionRuleUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := detectionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetectionType(); ok {
		if err := detectionrule.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.detection_type": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectionRule.workspace"`)
	}
	return nil
}

func (_u *DetectionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectionrule.Table, detectionrule.Columns, sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(detectionrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectionType(); ok {
		_spec.SetField(detectionrule.FieldDetectionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(detectionrule.FieldPattern, field.TypeString, value)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(detectionrule.FieldPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(detectionrule.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectionrule.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(detectionrule.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(detectionrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(detectionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(detectionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detectionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DetectionRuleUpdateOne is the builder for updating a single DetectionRule entity.
type DetectionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetectionRuleMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *DetectionRuleUpdateOne) SetWorkspaceID(v uuid.UUID) *DetectionRuleUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillableWorkspaceID(v *uuid.UUID) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DetectionRuleUpdateOne) SetName(v string) *DetectionRuleUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillableName(v *string) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDetectionType sets the "detection_type" field.
func (_u *DetectionRuleUpdateOne) SetDetectionType(v detectionrule.DetectionType) *DetectionRuleUpdateOne {
	_u.mutation.SetDetectionType(v)
	return _u
}

// SetNillableDetectionType sets the "detection_type" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillableDetectionType(v *detectionrule.DetectionType) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetDetectionType(*v)
	}
	return _u
}

// SetPattern sets the "pattern" field.
func (_u *DetectionRuleUpdateOne) SetPattern(v string) *DetectionRuleUpdateOne {
	_u.mutation.SetPattern(v)
	return _u
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillablePattern(v *string) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetPattern(*v)
	}
	return _u
}

// ClearPattern clears the value of the "pattern" field.
func (_u *DetectionRuleUpdateOne) ClearPattern() *DetectionRuleUpdateOne {
	_u.mutation.ClearPattern()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *DetectionRuleUpdateOne) SetKeywords(v []string) *DetectionRuleUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *DetectionRuleUpdateOne) AppendKeywords(v []string) *DetectionRuleUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *DetectionRuleUpdateOne) ClearKeywords() *DetectionRuleUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *DetectionRuleUpdateOne) SetEnabled(v bool) *DetectionRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillableEnabled(v *bool) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DetectionRuleUpdateOne) SetDescription(v string) *DetectionRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DetectionRuleUpdateOne) SetNillableDescription(v *string) *DetectionRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DetectionRuleUpdateOne) ClearDescription() *DetectionRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DetectionRuleUpdateOne) SetUpdatedAt(v time.Time) *DetectionRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_u *DetectionRuleUpdateOne) SetWorkspace(v *Workspace) *DetectionRuleUpdateOne {
	return _u.SetWorkspaceID(v.ID)
}

// Mutation returns the DetectionRuleMutation object of the builder.
func (_u *DetectionRuleUpdateOne) Mutation() *DetectionRuleMutation {
	return _u.mutation
}

// ClearWorkspace clears the "workspace" edge to the Workspace entity.
func (_u *DetectionRuleUpdateOne) ClearWorkspace() *DetectionRuleUpdateOne {
	_u.mutation.ClearWorkspace()
	return _u
}

// Where appends a list predicates to the DetectionRuleUpdate builder.
func (_u *DetectionRuleUpdateOne) Where(ps ...predicate.DetectionRule) *DetectionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DetectionRuleUpdateOne) Select(field string, fields ...string) *DetectionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DetectionRule entity.
func (_u *DetectionRuleUpdateOne) Save(ctx context.Context) (*DetectionRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectionRuleUpdateOne) SaveX(ctx context.Context) *DetectionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DetectionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DetectionRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := detectionrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := detectionrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DetectionType(); ok {
		if err := detectionrule.DetectionTypeValidator(v); err != nil {
			return &ValidationError{Name: "detection_type", err: fmt.Errorf(`ent: validator failed for field "DetectionRule.detection_type": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectionRule.workspace"`)
	}
	return nil
}

func (_u *DetectionRuleUpdateOne) sqlSave(ctx context.Context) (_node *DetectionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectionrule.Table, detectionrule.Columns, sqlgraph.NewFieldSpec(detectionrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DetectionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detectionrule.FieldID)
		for _, f := range fields {
			if !detectionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detectionrule.FieldID {
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
		_spec.SetField(detectionrule.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DetectionType(); ok {
		_spec.SetField(detectionrule.FieldDetectionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Pattern(); ok {
		_spec.SetField(detectionrule.FieldPattern, field.TypeString, value)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(detectionrule.FieldPattern, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(detectionrule.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, detectionrule.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(detectionrule.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(detectionrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(detectionrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(detectionrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(detectionrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WorkspaceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkspaceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DetectionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
