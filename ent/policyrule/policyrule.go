// Code generated by ent, DO NOT EDIT.

package policyrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the policyrule type in the database.
	Label = "policy_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRuleType holds the string denoting the rule_type field in the database.
	FieldRuleType = "rule_type"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldAppliesToEventTypes holds the string denoting the applies_to_event_types field in the database.
	FieldAppliesToEventTypes = "applies_to_event_types"
	// FieldAppliesToAgentTypes holds the string denoting the applies_to_agent_types field in the database.
	FieldAppliesToAgentTypes = "applies_to_agent_types"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWorkspace holds the string denoting the workspace edge name in mutations.
	EdgeWorkspace = "workspace"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// Table holds the table name of the policyrule in the database.
	Table = "policy_rules"
	// WorkspaceTable is the table that holds the workspace relation/edge.
	WorkspaceTable = "policy_rules"
	// WorkspaceInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspaceInverseTable = "workspaces"
	// WorkspaceColumn is the table column denoting the workspace relation/edge.
	WorkspaceColumn = "workspace_id"
)

// Columns holds all SQL columns for policyrule fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldName,
	FieldRuleType,
	FieldAction,
	FieldPriority,
	FieldEnabled,
	FieldConfig,
	FieldAppliesToEventTypes,
	FieldAppliesToAgentTypes,
	FieldDescription,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	PriorityValidator func(int) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// RuleType defines the type for the "rule_type" enum field.
type RuleType string

// RuleType values.
const (
	RuleTypeRateLimit    RuleType = "rate_limit"
	RuleTypePatternMatch RuleType = "pattern_match"
	RuleTypeBlocklist    RuleType = "blocklist"
	RuleTypeAllowlist    RuleType = "allowlist"
	RuleTypePayloadSize  RuleType = "payload_size"
	RuleTypeCustom       RuleType = "custom"
)

func (rt RuleType) String() string {
	return string(rt)
}

// RuleTypeValidator is a validator for the "rule_type" field enum values. It is called by the builders before save.
func RuleTypeValidator(rt RuleType) error {
	switch rt {
	case RuleTypeRateLimit, RuleTypePatternMatch, RuleTypeBlocklist, RuleTypeAllowlist, RuleTypePayloadSize, RuleTypeCustom:
		return nil
	default:
		return fmt.Errorf("policyrule: invalid enum value for rule_type field: %q", rt)
	}
}

// Action defines the type for the "action" enum field.
type Action string

// Action values.
const (
	ActionAllow Action = "allow"
	ActionFlag  Action = "flag"
	ActionBlock Action = "block"
)

func (a Action) String() string {
	return string(a)
}

// ActionValidator is a validator for the "action" field enum values. It is called by the builders before save.
func ActionValidator(a Action) error {
	switch a {
	case ActionAllow, ActionFlag, ActionBlock:
		return nil
	default:
		return fmt.Errorf("policyrule: invalid enum value for action field: %q", a)
	}
}

// OrderOption defines the ordering options for the PolicyRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByRuleType orders the results by the rule_type field.
func ByRuleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleType, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWorkspaceField orders the results by workspace field.
func ByWorkspaceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspaceStep(), sql.OrderByField(field, opts...))
	}
}
func newWorkspaceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspaceInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WorkspaceTable, WorkspaceColumn),
	)
}
