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
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// PolicyRule is the model entity for the PolicyRule schema.
type PolicyRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// RuleType holds the value of the "rule_type" field.
	RuleType policyrule.RuleType `json:"rule_type,omitempty"`
	// Action holds the value of the "action" field.
	Action policyrule.Action `json:"action,omitempty"`
	// Higher evaluates first
	Priority int `json:"priority,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Config holds the value of the "config" field.
	Config map[string]interface{} `json:"config,omitempty"`
	// Empty means the rule applies to all event types
	AppliesToEventTypes []string `json:"applies_to_event_types,omitempty"`
	// Empty means the rule applies to all agent types
	AppliesToAgentTypes []string `json:"applies_to_agent_types,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolicyRuleQuery when eager-loading is set.
	Edges        PolicyRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolicyRuleEdges holds the relations/edges for other nodes in the graph.
type PolicyRuleEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolicyRuleEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policyrule.FieldConfig, policyrule.FieldAppliesToEventTypes, policyrule.FieldAppliesToAgentTypes:
			values[i] = new([]byte)
		case policyrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case policyrule.FieldPriority:
			values[i] = new(sql.NullInt64)
		case policyrule.FieldName, policyrule.FieldRuleType, policyrule.FieldAction, policyrule.FieldDescription:
			values[i] = new(sql.NullString)
		case policyrule.FieldCreatedAt, policyrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case policyrule.FieldID, policyrule.FieldWorkspaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyRule fields.
func (_m *PolicyRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policyrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case policyrule.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case policyrule.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case policyrule.FieldRuleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_type", values[i])
			} else if value.Valid {
				_m.RuleType = policyrule.RuleType(value.String)
			}
		case policyrule.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = policyrule.Action(value.String)
			}
		case policyrule.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case policyrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case policyrule.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case policyrule.FieldAppliesToEventTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field applies_to_event_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AppliesToEventTypes); err != nil {
					return fmt.Errorf("unmarshal field applies_to_event_types: %w", err)
				}
			}
		case policyrule.FieldAppliesToAgentTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field applies_to_agent_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AppliesToAgentTypes); err != nil {
					return fmt.Errorf("unmarshal field applies_to_agent_types: %w", err)
				}
			}
		case policyrule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case policyrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case policyrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyRule.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the PolicyRule entity.
func (_m *PolicyRule) QueryWorkspace() *WorkspaceQuery {
	return NewPolicyRuleClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this PolicyRule.
// Note that you need to call PolicyRule.Unwrap() before calling this method if this PolicyRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyRule) Update() *PolicyRuleUpdateOne {
	return NewPolicyRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyRule) Unwrap() *PolicyRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyRule) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("rule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuleType))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("applies_to_event_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliesToEventTypes))
	builder.WriteString(", ")
	builder.WriteString("applies_to_agent_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppliesToAgentTypes))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyRules is a parsable slice of PolicyRule.
type PolicyRules []*PolicyRule
