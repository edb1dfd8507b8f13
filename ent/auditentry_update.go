// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmshield/swarmshield/ent/auditentry"
	"github.com/swarmshield/swarmshield/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(auditentry.FieldResourceID, field.TypeString)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(auditentry.FieldActorID, field.TypeUUID)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(auditentry.FieldWorkspaceID, field.TypeUUID)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(auditentry.FieldIP, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(auditentry.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(auditentry.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEntry entity.
func (_u *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
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
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(auditentry.FieldResourceID, field.TypeString)
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(auditentry.FieldActorID, field.TypeUUID)
	}
	if _u.mutation.WorkspaceIDCleared() {
		_spec.ClearField(auditentry.FieldWorkspaceID, field.TypeUUID)
	}
	if _u.mutation.IPCleared() {
		_spec.ClearField(auditentry.FieldIP, field.TypeString)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(auditentry.FieldUserAgent, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(auditentry.FieldMetadata, field.TypeJSON)
	}
	_node = &AuditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
