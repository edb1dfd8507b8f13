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
	"github.com/swarmshield/swarmshield/ent/workspace"
)

// Workspace is the model entity for the Workspace schema.
type Workspace struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status workspace.Status `json:"status,omitempty"`
	// Free-form tenant settings; holds llm_api_key_encrypted and llm_budget_limit_cents
	Settings map[string]interface{} `json:"settings,omitempty"`
	// Running LLM spend in minor currency units; updated only via atomic increments
	LlmSpendCents int64 `json:"llm_spend_cents,omitempty"`
	// LlmTokensUsed holds the value of the "llm_tokens_used" field.
	LlmTokensUsed int64 `json:"llm_tokens_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkspaceQuery when eager-loading is set.
	Edges        WorkspaceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkspaceEdges holds the relations/edges for other nodes in the graph.
type WorkspaceEdges struct {
	// Agents holds the value of the agents edge.
	Agents []*RegisteredAgent `json:"agents,omitempty"`
	// Events holds the value of the events edge.
	Events []*AgentEvent `json:"events,omitempty"`
	// PolicyRules holds the value of the policy_rules edge.
	PolicyRules []*PolicyRule `json:"policy_rules,omitempty"`
	// DetectionRules holds the value of the detection_rules edge.
	DetectionRules []*DetectionRule `json:"detection_rules,omitempty"`
	// Workflows holds the value of the workflows edge.
	Workflows []*Workflow `json:"workflows,omitempty"`
	// ConsensusPolicies holds the value of the consensus_policies edge.
	ConsensusPolicies []*ConsensusPolicy `json:"consensus_policies,omitempty"`
	// GhostConfigs holds the value of the ghost_configs edge.
	GhostConfigs []*GhostProtocolConfig `json:"ghost_configs,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*AnalysisSession `json:"sessions,omitempty"`
	// Violations holds the value of the violations edge.
	Violations []*PolicyViolation `json:"violations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) AgentsOrErr() ([]*RegisteredAgent, error) {
	if e.loadedTypes[0] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) EventsOrErr() ([]*AgentEvent, error) {
	if e.loadedTypes[1] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// PolicyRulesOrErr returns the PolicyRules value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) PolicyRulesOrErr() ([]*PolicyRule, error) {
	if e.loadedTypes[2] {
		return e.PolicyRules, nil
	}
	return nil, &NotLoadedError{edge: "policy_rules"}
}

// DetectionRulesOrErr returns the DetectionRules value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) DetectionRulesOrErr() ([]*DetectionRule, error) {
	if e.loadedTypes[3] {
		return e.DetectionRules, nil
	}
	return nil, &NotLoadedError{edge: "detection_rules"}
}

// WorkflowsOrErr returns the Workflows value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) WorkflowsOrErr() ([]*Workflow, error) {
	if e.loadedTypes[4] {
		return e.Workflows, nil
	}
	return nil, &NotLoadedError{edge: "workflows"}
}

// ConsensusPoliciesOrErr returns the ConsensusPolicies value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ConsensusPoliciesOrErr() ([]*ConsensusPolicy, error) {
	if e.loadedTypes[5] {
		return e.ConsensusPolicies, nil
	}
	return nil, &NotLoadedError{edge: "consensus_policies"}
}

// GhostConfigsOrErr returns the GhostConfigs value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) GhostConfigsOrErr() ([]*GhostProtocolConfig, error) {
	if e.loadedTypes[6] {
		return e.GhostConfigs, nil
	}
	return nil, &NotLoadedError{edge: "ghost_configs"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) SessionsOrErr() ([]*AnalysisSession, error) {
	if e.loadedTypes[7] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// ViolationsOrErr returns the Violations value or an error if the edge
// was not loaded in eager-loading.
func (e WorkspaceEdges) ViolationsOrErr() ([]*PolicyViolation, error) {
	if e.loadedTypes[8] {
		return e.Violations, nil
	}
	return nil, &NotLoadedError{edge: "violations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Workspace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workspace.FieldSettings:
			values[i] = new([]byte)
		case workspace.FieldLlmSpendCents, workspace.FieldLlmTokensUsed:
			values[i] = new(sql.NullInt64)
		case workspace.FieldName, workspace.FieldStatus:
			values[i] = new(sql.NullString)
		case workspace.FieldCreatedAt, workspace.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case workspace.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Workspace fields.
func (_m *Workspace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workspace.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case workspace.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case workspace.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workspace.Status(value.String)
			}
		case workspace.FieldSettings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field settings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Settings); err != nil {
					return fmt.Errorf("unmarshal field settings: %w", err)
				}
			}
		case workspace.FieldLlmSpendCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_spend_cents", values[i])
			} else if value.Valid {
				_m.LlmSpendCents = value.Int64
			}
		case workspace.FieldLlmTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field llm_tokens_used", values[i])
			} else if value.Valid {
				_m.LlmTokensUsed = value.Int64
			}
		case workspace.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case workspace.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Workspace.
// This includes values selected through modifiers, order, etc.
func (_m *Workspace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgents queries the "agents" edge of the Workspace entity.
func (_m *Workspace) QueryAgents() *RegisteredAgentQuery {
	return NewWorkspaceClient(_m.config).QueryAgents(_m)
}

// QueryEvents queries the "events" edge of the Workspace entity.
func (_m *Workspace) QueryEvents() *AgentEventQuery {
	return NewWorkspaceClient(_m.config).QueryEvents(_m)
}

// QueryPolicyRules queries the "policy_rules" edge of the Workspace entity.
func (_m *Workspace) QueryPolicyRules() *PolicyRuleQuery {
	return NewWorkspaceClient(_m.config).QueryPolicyRules(_m)
}

// QueryDetectionRules queries the "detection_rules" edge of the Workspace entity.
func (_m *Workspace) QueryDetectionRules() *DetectionRuleQuery {
	return NewWorkspaceClient(_m.config).QueryDetectionRules(_m)
}

// QueryWorkflows queries the "workflows" edge of the Workspace entity.
func (_m *Workspace) QueryWorkflows() *WorkflowQuery {
	return NewWorkspaceClient(_m.config).QueryWorkflows(_m)
}

// QueryConsensusPolicies queries the "consensus_policies" edge of the Workspace entity.
func (_m *Workspace) QueryConsensusPolicies() *ConsensusPolicyQuery {
	return NewWorkspaceClient(_m.config).QueryConsensusPolicies(_m)
}

// QueryGhostConfigs queries the "ghost_configs" edge of the Workspace entity.
func (_m *Workspace) QueryGhostConfigs() *GhostProtocolConfigQuery {
	return NewWorkspaceClient(_m.config).QueryGhostConfigs(_m)
}

// QuerySessions queries the "sessions" edge of the Workspace entity.
func (_m *Workspace) QuerySessions() *AnalysisSessionQuery {
	return NewWorkspaceClient(_m.config).QuerySessions(_m)
}

// QueryViolations queries the "violations" edge of the Workspace entity.
func (_m *Workspace) QueryViolations() *PolicyViolationQuery {
	return NewWorkspaceClient(_m.config).QueryViolations(_m)
}

// Update returns a builder for updating this Workspace.
// Note that you need to call Workspace.Unwrap() before calling this method if this Workspace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Workspace) Update() *WorkspaceUpdateOne {
	return NewWorkspaceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Workspace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Workspace) Unwrap() *Workspace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Workspace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Workspace) String() string {
	var builder strings.Builder
	builder.WriteString("Workspace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("settings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Settings))
	builder.WriteString(", ")
	builder.WriteString("llm_spend_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmSpendCents))
	builder.WriteString(", ")
	builder.WriteString("llm_tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.LlmTokensUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Workspaces is a parsable slice of Workspace.
type Workspaces []*Workspace
