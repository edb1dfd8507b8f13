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
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// PolicyViolation is the model entity for the PolicyViolation schema.
type PolicyViolation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID uuid.UUID `json:"event_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID uuid.UUID `json:"rule_id,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// ActionTaken holds the value of the "action_taken" field.
	ActionTaken policyviolation.ActionTaken `json:"action_taken,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity policyviolation.Severity `json:"severity,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved bool `json:"resolved,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolutionNote holds the value of the "resolution_note" field.
	ResolutionNote string `json:"resolution_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolicyViolationQuery when eager-loading is set.
	Edges        PolicyViolationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolicyViolationEdges holds the relations/edges for other nodes in the graph.
type PolicyViolationEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Event holds the value of the event edge.
	Event *AgentEvent `json:"event,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolicyViolationEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// EventOrErr returns the Event value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolicyViolationEdges) EventOrErr() (*AgentEvent, error) {
	if e.Event != nil {
		return e.Event, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agentevent.Label}
	}
	return nil, &NotLoadedError{edge: "event"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyViolation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policyviolation.FieldDetails:
			values[i] = new([]byte)
		case policyviolation.FieldResolved:
			values[i] = new(sql.NullBool)
		case policyviolation.FieldRuleName, policyviolation.FieldActionTaken, policyviolation.FieldSeverity, policyviolation.FieldResolutionNote:
			values[i] = new(sql.NullString)
		case policyviolation.FieldResolvedAt, policyviolation.FieldCreatedAt, policyviolation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case policyviolation.FieldID, policyviolation.FieldWorkspaceID, policyviolation.FieldEventID, policyviolation.FieldRuleID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyViolation fields.
func (_m *PolicyViolation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policyviolation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case policyviolation.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case policyviolation.FieldEventID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value != nil {
				_m.EventID = *value
			}
		case policyviolation.FieldRuleID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value != nil {
				_m.RuleID = *value
			}
		case policyviolation.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case policyviolation.FieldActionTaken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_taken", values[i])
			} else if value.Valid {
				_m.ActionTaken = policyviolation.ActionTaken(value.String)
			}
		case policyviolation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = policyviolation.Severity(value.String)
			}
		case policyviolation.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case policyviolation.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case policyviolation.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case policyviolation.FieldResolutionNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_note", values[i])
			} else if value.Valid {
				_m.ResolutionNote = value.String
			}
		case policyviolation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case policyviolation.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyViolation.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyViolation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the PolicyViolation entity.
func (_m *PolicyViolation) QueryWorkspace() *WorkspaceQuery {
	return NewPolicyViolationClient(_m.config).QueryWorkspace(_m)
}

// QueryEvent queries the "event" edge of the PolicyViolation entity.
func (_m *PolicyViolation) QueryEvent() *AgentEventQuery {
	return NewPolicyViolationClient(_m.config).QueryEvent(_m)
}

// Update returns a builder for updating this PolicyViolation.
// Note that you need to call PolicyViolation.Unwrap() before calling this method if this PolicyViolation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyViolation) Update() *PolicyViolationUpdateOne {
	return NewPolicyViolationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyViolation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyViolation) Unwrap() *PolicyViolation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyViolation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyViolation) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyViolation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("event_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventID))
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleID))
	builder.WriteString(", ")
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("action_taken=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionTaken))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("resolution_note=")
	builder.WriteString(_m.ResolutionNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyViolations is a parsable slice of PolicyViolation.
type PolicyViolations []*PolicyViolation
