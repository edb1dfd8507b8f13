// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// ConsensusPolicy is the model entity for the ConsensusPolicy schema.
type ConsensusPolicy struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Strategy holds the value of the "strategy" field.
	Strategy consensuspolicy.Strategy `json:"strategy,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold float64 `json:"threshold,omitempty"`
	// Role -> weight; roles absent here default to 1.0
	Weights map[string]float64 `json:"weights,omitempty"`
	// Decisions that must additionally be unanimous
	RequireUnanimousOn []string `json:"require_unanimous_on,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsensusPolicyQuery when eager-loading is set.
	Edges        ConsensusPolicyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsensusPolicyEdges holds the relations/edges for other nodes in the graph.
type ConsensusPolicyEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsensusPolicyEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConsensusPolicy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consensuspolicy.FieldWeights, consensuspolicy.FieldRequireUnanimousOn:
			values[i] = new([]byte)
		case consensuspolicy.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case consensuspolicy.FieldName, consensuspolicy.FieldStrategy:
			values[i] = new(sql.NullString)
		case consensuspolicy.FieldCreatedAt, consensuspolicy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case consensuspolicy.FieldID, consensuspolicy.FieldWorkspaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConsensusPolicy fields.
func (_m *ConsensusPolicy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consensuspolicy.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case consensuspolicy.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case consensuspolicy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case consensuspolicy.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				_m.Strategy = consensuspolicy.Strategy(value.String)
			}
		case consensuspolicy.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = value.Float64
			}
		case consensuspolicy.FieldWeights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weights); err != nil {
					return fmt.Errorf("unmarshal field weights: %w", err)
				}
			}
		case consensuspolicy.FieldRequireUnanimousOn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field require_unanimous_on", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequireUnanimousOn); err != nil {
					return fmt.Errorf("unmarshal field require_unanimous_on: %w", err)
				}
			}
		case consensuspolicy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case consensuspolicy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConsensusPolicy.
// This includes values selected through modifiers, order, etc.
func (_m *ConsensusPolicy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the ConsensusPolicy entity.
func (_m *ConsensusPolicy) QueryWorkspace() *WorkspaceQuery {
	return NewConsensusPolicyClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this ConsensusPolicy.
// Note that you need to call ConsensusPolicy.Unwrap() before calling this method if this ConsensusPolicy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConsensusPolicy) Update() *ConsensusPolicyUpdateOne {
	return NewConsensusPolicyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConsensusPolicy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConsensusPolicy) Unwrap() *ConsensusPolicy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConsensusPolicy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConsensusPolicy) String() string {
	var builder strings.Builder
	builder.WriteString("ConsensusPolicy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strategy))
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("weights=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weights))
	builder.WriteString(", ")
	builder.WriteString("require_unanimous_on=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireUnanimousOn))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConsensusPolicies is a parsable slice of ConsensusPolicy.
type ConsensusPolicies []*ConsensusPolicy
