// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the workspace type in the database.
	Label = "workspace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSettings holds the string denoting the settings field in the database.
	FieldSettings = "settings"
	// FieldLlmSpendCents holds the string denoting the llm_spend_cents field in the database.
	FieldLlmSpendCents = "llm_spend_cents"
	// FieldLlmTokensUsed holds the string denoting the llm_tokens_used field in the database.
	FieldLlmTokensUsed = "llm_tokens_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgePolicyRules holds the string denoting the policy_rules edge name in mutations.
	EdgePolicyRules = "policy_rules"
	// EdgeDetectionRules holds the string denoting the detection_rules edge name in mutations.
	EdgeDetectionRules = "detection_rules"
	// EdgeWorkflows holds the string denoting the workflows edge name in mutations.
	EdgeWorkflows = "workflows"
	// EdgeConsensusPolicies holds the string denoting the consensus_policies edge name in mutations.
	EdgeConsensusPolicies = "consensus_policies"
	// EdgeGhostConfigs holds the string denoting the ghost_configs edge name in mutations.
	EdgeGhostConfigs = "ghost_configs"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeViolations holds the string denoting the violations edge name in mutations.
	EdgeViolations = "violations"
	// RegisteredAgentFieldID holds the string denoting the ID field of the RegisteredAgent.
	RegisteredAgentFieldID = "agent_id"
	// AgentEventFieldID holds the string denoting the ID field of the AgentEvent.
	AgentEventFieldID = "event_id"
	// PolicyRuleFieldID holds the string denoting the ID field of the PolicyRule.
	PolicyRuleFieldID = "rule_id"
	// DetectionRuleFieldID holds the string denoting the ID field of the DetectionRule.
	DetectionRuleFieldID = "detection_rule_id"
	// WorkflowFieldID holds the string denoting the ID field of the Workflow.
	WorkflowFieldID = "workflow_id"
	// ConsensusPolicyFieldID holds the string denoting the ID field of the ConsensusPolicy.
	ConsensusPolicyFieldID = "consensus_policy_id"
	// GhostProtocolConfigFieldID holds the string denoting the ID field of the GhostProtocolConfig.
	GhostProtocolConfigFieldID = "ghost_protocol_config_id"
	// AnalysisSessionFieldID holds the string denoting the ID field of the AnalysisSession.
	AnalysisSessionFieldID = "session_id"
	// PolicyViolationFieldID holds the string denoting the ID field of the PolicyViolation.
	PolicyViolationFieldID = "violation_id"
	// Table holds the table name of the workspace in the database.
	Table = "workspaces"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "registered_agents"
	// AgentsInverseTable is the table name for the RegisteredAgent entity.
	// It exists in this package in order to avoid circular dependency with the "registeredagent" package.
	AgentsInverseTable = "registered_agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "workspace_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "agent_events"
	// EventsInverseTable is the table name for the AgentEvent entity.
	// It exists in this package in order to avoid circular dependency with the "agentevent" package.
	EventsInverseTable = "agent_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "workspace_id"
	// PolicyRulesTable is the table that holds the policy_rules relation/edge.
	PolicyRulesTable = "policy_rules"
	// PolicyRulesInverseTable is the table name for the PolicyRule entity.
	// It exists in this package in order to avoid circular dependency with the "policyrule" package.
	PolicyRulesInverseTable = "policy_rules"
	// PolicyRulesColumn is the table column denoting the policy_rules relation/edge.
	PolicyRulesColumn = "workspace_id"
	// DetectionRulesTable is the table that holds the detection_rules relation/edge.
	DetectionRulesTable = "detection_rules"
	// DetectionRulesInverseTable is the table name for the DetectionRule entity.
	// It exists in this package in order to avoid circular dependency with the "detectionrule" package.
	DetectionRulesInverseTable = "detection_rules"
	// DetectionRulesColumn is the table column denoting the detection_rules relation/edge.
	DetectionRulesColumn = "workspace_id"
	// WorkflowsTable is the table that holds the workflows relation/edge.
	WorkflowsTable = "workflows"
	// WorkflowsInverseTable is the table name for the Workflow entity.
	// It exists in this package in order to avoid circular dependency with the "workflow" package.
	WorkflowsInverseTable = "workflows"
	// WorkflowsColumn is the table column denoting the workflows relation/edge.
	WorkflowsColumn = "workspace_id"
	// ConsensusPoliciesTable is the table that holds the consensus_policies relation/edge.
	ConsensusPoliciesTable = "consensus_policies"
	// ConsensusPoliciesInverseTable is the table name for the ConsensusPolicy entity.
	// It exists in this package in order to avoid circular dependency with the "consensuspolicy" package.
	ConsensusPoliciesInverseTable = "consensus_policies"
	// ConsensusPoliciesColumn is the table column denoting the consensus_policies relation/edge.
	ConsensusPoliciesColumn = "workspace_id"
	// GhostConfigsTable is the table that holds the ghost_configs relation/edge.
	GhostConfigsTable = "ghost_protocol_configs"
	// GhostConfigsInverseTable is the table name for the GhostProtocolConfig entity.
	// It exists in this package in order to avoid circular dependency with the "ghostprotocolconfig" package.
	GhostConfigsInverseTable = "ghost_protocol_configs"
	// GhostConfigsColumn is the table column denoting the ghost_configs relation/edge.
	GhostConfigsColumn = "workspace_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "analysis_sessions"
	// SessionsInverseTable is the table name for the AnalysisSession entity.
	// It exists in this package in order to avoid circular dependency with the "analysissession" package.
	SessionsInverseTable = "analysis_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "workspace_id"
	// ViolationsTable is the table that holds the violations relation/edge.
	ViolationsTable = "policy_violations"
	// ViolationsInverseTable is the table name for the PolicyViolation entity.
	// It exists in this package in order to avoid circular dependency with the "policyviolation" package.
	ViolationsInverseTable = "policy_violations"
	// ViolationsColumn is the table column denoting the violations relation/edge.
	ViolationsColumn = "workspace_id"
)

// Columns holds all SQL columns for workspace fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldSettings,
	FieldLlmSpendCents,
	FieldLlmTokensUsed,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultLlmSpendCents holds the default value on creation for the "llm_spend_cents" field.
	DefaultLlmSpendCents int64
	// DefaultLlmTokensUsed holds the default value on creation for the "llm_tokens_used" field.
	DefaultLlmTokensUsed int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusSuspended, StatusArchived:
		return nil
	default:
		return fmt.Errorf("workspace: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Workspace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLlmSpendCents orders the results by the llm_spend_cents field.
func ByLlmSpendCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmSpendCents, opts...).ToFunc()
}

// ByLlmTokensUsed orders the results by the llm_tokens_used field.
func ByLlmTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmTokensUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPolicyRulesCount orders the results by policy_rules count.
func ByPolicyRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPolicyRulesStep(), opts...)
	}
}

// ByPolicyRules orders the results by policy_rules terms.
func ByPolicyRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPolicyRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDetectionRulesCount orders the results by detection_rules count.
func ByDetectionRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDetectionRulesStep(), opts...)
	}
}

// ByDetectionRules orders the results by detection_rules terms.
func ByDetectionRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDetectionRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkflowsCount orders the results by workflows count.
func ByWorkflowsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowsStep(), opts...)
	}
}

// ByWorkflows orders the results by workflows terms.
func ByWorkflows(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConsensusPoliciesCount orders the results by consensus_policies count.
func ByConsensusPoliciesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsensusPoliciesStep(), opts...)
	}
}

// ByConsensusPolicies orders the results by consensus_policies terms.
func ByConsensusPolicies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsensusPoliciesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByGhostConfigsCount orders the results by ghost_configs count.
func ByGhostConfigsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGhostConfigsStep(), opts...)
	}
}

// ByGhostConfigs orders the results by ghost_configs terms.
func ByGhostConfigs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGhostConfigsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByViolationsCount orders the results by violations count.
func ByViolationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newViolationsStep(), opts...)
	}
}

// ByViolations orders the results by violations terms.
func ByViolations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newViolationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, RegisteredAgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, AgentEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newPolicyRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PolicyRulesInverseTable, PolicyRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PolicyRulesTable, PolicyRulesColumn),
	)
}
func newDetectionRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DetectionRulesInverseTable, DetectionRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DetectionRulesTable, DetectionRulesColumn),
	)
}
func newWorkflowsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowsInverseTable, WorkflowFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowsTable, WorkflowsColumn),
	)
}
func newConsensusPoliciesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsensusPoliciesInverseTable, ConsensusPolicyFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsensusPoliciesTable, ConsensusPoliciesColumn),
	)
}
func newGhostConfigsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GhostConfigsInverseTable, GhostProtocolConfigFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GhostConfigsTable, GhostConfigsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, AnalysisSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newViolationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViolationsInverseTable, PolicyViolationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
	)
}
