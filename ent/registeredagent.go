// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/swarmshield/swarmshield/ent/registeredagent"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// RegisteredAgent is the model entity for the RegisteredAgent schema.
type RegisteredAgent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Lowercase hex SHA-256 of the issued bearer token
	APIKeyHash string `json:"api_key_hash,omitempty"`
	// 8-char display prefix shown in the admin UI
	APIKeyPrefix string `json:"api_key_prefix,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType registeredagent.AgentType `json:"agent_type,omitempty"`
	// Status holds the value of the "status" field.
	Status registeredagent.Status `json:"status,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel registeredagent.RiskLevel `json:"risk_level,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Updated only via atomic increments
	EventCount int64 `json:"event_count,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RegisteredAgentQuery when eager-loading is set.
	Edges        RegisteredAgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RegisteredAgentEdges holds the relations/edges for other nodes in the graph.
type RegisteredAgentEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RegisteredAgentEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RegisteredAgent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case registeredagent.FieldEventCount:
			values[i] = new(sql.NullInt64)
		case registeredagent.FieldName, registeredagent.FieldAPIKeyHash, registeredagent.FieldAPIKeyPrefix, registeredagent.FieldAgentType, registeredagent.FieldStatus, registeredagent.FieldRiskLevel, registeredagent.FieldDescription:
			values[i] = new(sql.NullString)
		case registeredagent.FieldLastSeenAt, registeredagent.FieldCreatedAt, registeredagent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case registeredagent.FieldID, registeredagent.FieldWorkspaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RegisteredAgent fields.
func (_m *RegisteredAgent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case registeredagent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case registeredagent.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case registeredagent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case registeredagent.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = value.String
			}
		case registeredagent.FieldAPIKeyPrefix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_prefix", values[i])
			} else if value.Valid {
				_m.APIKeyPrefix = value.String
			}
		case registeredagent.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = registeredagent.AgentType(value.String)
			}
		case registeredagent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = registeredagent.Status(value.String)
			}
		case registeredagent.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = registeredagent.RiskLevel(value.String)
			}
		case registeredagent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case registeredagent.FieldEventCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field event_count", values[i])
			} else if value.Valid {
				_m.EventCount = value.Int64
			}
		case registeredagent.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = new(time.Time)
				*_m.LastSeenAt = value.Time
			}
		case registeredagent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case registeredagent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RegisteredAgent.
// This includes values selected through modifiers, order, etc.
func (_m *RegisteredAgent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the RegisteredAgent entity.
func (_m *RegisteredAgent) QueryWorkspace() *WorkspaceQuery {
	return NewRegisteredAgentClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this RegisteredAgent.
// Note that you need to call RegisteredAgent.Unwrap() before calling this method if this RegisteredAgent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RegisteredAgent) Update() *RegisteredAgentUpdateOne {
	return NewRegisteredAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RegisteredAgent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RegisteredAgent) Unwrap() *RegisteredAgent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RegisteredAgent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RegisteredAgent) String() string {
	var builder strings.Builder
	builder.WriteString("RegisteredAgent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("api_key_hash=")
	builder.WriteString(_m.APIKeyHash)
	builder.WriteString(", ")
	builder.WriteString("api_key_prefix=")
	builder.WriteString(_m.APIKeyPrefix)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("event_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventCount))
	builder.WriteString(", ")
	if v := _m.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RegisteredAgents is a parsable slice of RegisteredAgent.
type RegisteredAgents []*RegisteredAgent
