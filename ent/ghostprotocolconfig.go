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
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// GhostProtocolConfig is the model entity for the GhostProtocolConfig schema.
type GhostProtocolConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID uuid.UUID `json:"workspace_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// WipeStrategy holds the value of the "wipe_strategy" field.
	WipeStrategy ghostprotocolconfig.WipeStrategy `json:"wipe_strategy,omitempty"`
	// Subset of the closed wipable-field allow list
	WipeFields []string `json:"wipe_fields,omitempty"`
	// WipeDelaySeconds holds the value of the "wipe_delay_seconds" field.
	WipeDelaySeconds int `json:"wipe_delay_seconds,omitempty"`
	// MaxSessionDurationSeconds holds the value of the "max_session_duration_seconds" field.
	MaxSessionDurationSeconds int `json:"max_session_duration_seconds,omitempty"`
	// AutoTerminateOnExpiry holds the value of the "auto_terminate_on_expiry" field.
	AutoTerminateOnExpiry bool `json:"auto_terminate_on_expiry,omitempty"`
	// CryptoShred holds the value of the "crypto_shred" field.
	CryptoShred bool `json:"crypto_shred,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GhostProtocolConfigQuery when eager-loading is set.
	Edges        GhostProtocolConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GhostProtocolConfigEdges holds the relations/edges for other nodes in the graph.
type GhostProtocolConfigEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GhostProtocolConfigEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GhostProtocolConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ghostprotocolconfig.FieldWipeFields:
			values[i] = new([]byte)
		case ghostprotocolconfig.FieldEnabled, ghostprotocolconfig.FieldAutoTerminateOnExpiry, ghostprotocolconfig.FieldCryptoShred:
			values[i] = new(sql.NullBool)
		case ghostprotocolconfig.FieldWipeDelaySeconds, ghostprotocolconfig.FieldMaxSessionDurationSeconds:
			values[i] = new(sql.NullInt64)
		case ghostprotocolconfig.FieldName, ghostprotocolconfig.FieldWipeStrategy:
			values[i] = new(sql.NullString)
		case ghostprotocolconfig.FieldCreatedAt, ghostprotocolconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case ghostprotocolconfig.FieldID, ghostprotocolconfig.FieldWorkspaceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GhostProtocolConfig fields.
func (_m *GhostProtocolConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ghostprotocolconfig.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ghostprotocolconfig.FieldWorkspaceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value != nil {
				_m.WorkspaceID = *value
			}
		case ghostprotocolconfig.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case ghostprotocolconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case ghostprotocolconfig.FieldWipeStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field wipe_strategy", values[i])
			} else if value.Valid {
				_m.WipeStrategy = ghostprotocolconfig.WipeStrategy(value.String)
			}
		case ghostprotocolconfig.FieldWipeFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field wipe_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WipeFields); err != nil {
					return fmt.Errorf("unmarshal field wipe_fields: %w", err)
				}
			}
		case ghostprotocolconfig.FieldWipeDelaySeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wipe_delay_seconds", values[i])
			} else if value.Valid {
				_m.WipeDelaySeconds = int(value.Int64)
			}
		case ghostprotocolconfig.FieldMaxSessionDurationSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_session_duration_seconds", values[i])
			} else if value.Valid {
				_m.MaxSessionDurationSeconds = int(value.Int64)
			}
		case ghostprotocolconfig.FieldAutoTerminateOnExpiry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_terminate_on_expiry", values[i])
			} else if value.Valid {
				_m.AutoTerminateOnExpiry = value.Bool
			}
		case ghostprotocolconfig.FieldCryptoShred:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field crypto_shred", values[i])
			} else if value.Valid {
				_m.CryptoShred = value.Bool
			}
		case ghostprotocolconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ghostprotocolconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GhostProtocolConfig.
// This includes values selected through modifiers, order, etc.
func (_m *GhostProtocolConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the GhostProtocolConfig entity.
func (_m *GhostProtocolConfig) QueryWorkspace() *WorkspaceQuery {
	return NewGhostProtocolConfigClient(_m.config).QueryWorkspace(_m)
}

// Update returns a builder for updating this GhostProtocolConfig.
// Note that you need to call GhostProtocolConfig.Unwrap() before calling this method if this GhostProtocolConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GhostProtocolConfig) Update() *GhostProtocolConfigUpdateOne {
	return NewGhostProtocolConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GhostProtocolConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GhostProtocolConfig) Unwrap() *GhostProtocolConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GhostProtocolConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GhostProtocolConfig) String() string {
	var builder strings.Builder
	builder.WriteString("GhostProtocolConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkspaceID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("wipe_strategy=")
	builder.WriteString(fmt.Sprintf("%v", _m.WipeStrategy))
	builder.WriteString(", ")
	builder.WriteString("wipe_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.WipeFields))
	builder.WriteString(", ")
	builder.WriteString("wipe_delay_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.WipeDelaySeconds))
	builder.WriteString(", ")
	builder.WriteString("max_session_duration_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxSessionDurationSeconds))
	builder.WriteString(", ")
	builder.WriteString("auto_terminate_on_expiry=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoTerminateOnExpiry))
	builder.WriteString(", ")
	builder.WriteString("crypto_shred=")
	builder.WriteString(fmt.Sprintf("%v", _m.CryptoShred))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GhostProtocolConfigs is a parsable slice of GhostProtocolConfig.
type GhostProtocolConfigs []*GhostProtocolConfig
