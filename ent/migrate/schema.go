// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentDefinitionsColumns holds the columns for the "agent_definitions" table.
	AgentDefinitionsColumns = []*schema.Column{
		{Name: "agent_definition_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "expertise", Type: field.TypeString, Nullable: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Default: 0.2},
		{Name: "max_tokens", Type: field.TypeInt, Default: 1024},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AgentDefinitionsTable holds the schema information for the "agent_definitions" table.
	AgentDefinitionsTable = &schema.Table{
		Name:       "agent_definitions",
		Columns:    AgentDefinitionsColumns,
		PrimaryKey: []*schema.Column{AgentDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentdefinition_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{AgentDefinitionsColumns[1], AgentDefinitionsColumns[2]},
			},
		},
	}
	// AgentEventsColumns holds the columns for the "agent_events" table.
	AgentEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeUUID},
		{Name: "registered_agent_id", Type: field.TypeUUID},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"action", "output", "tool_call", "message", "error"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "source_ip", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "allowed", "flagged", "blocked"}, Default: "pending"},
		{Name: "evaluation_result", Type: field.TypeJSON, Nullable: true},
		{Name: "evaluated_at", Type: field.TypeTime, Nullable: true},
		{Name: "flagged_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// AgentEventsTable holds the schema information for the "agent_events" table.
	AgentEventsTable = &schema.Table{
		Name:       "agent_events",
		Columns:    AgentEventsColumns,
		PrimaryKey: []*schema.Column{AgentEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_events_workspaces_events",
				Columns:    []*schema.Column{AgentEventsColumns[13]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentevent_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[13], AgentEventsColumns[11]},
			},
			{
				Name:    "agentevent_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[13], AgentEventsColumns[7]},
			},
			{
				Name:    "agentevent_registered_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentEventsColumns[1], AgentEventsColumns[11]},
			},
		},
	}
	// AgentInstancesColumns holds the columns for the "agent_instances" table.
	AgentInstancesColumns = []*schema.Column{
		{Name: "instance_id", Type: field.TypeUUID},
		{Name: "agent_definition_id", Type: field.TypeUUID},
		{Name: "role", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "timed_out"}, Default: "pending"},
		{Name: "vote", Type: field.TypeEnum, Nullable: true, Enums: []string{"allow", "flag", "block"}},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "initial_assessment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "cost_cents", Type: field.TypeInt64, Default: 0},
		{Name: "terminated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// AgentInstancesTable holds the schema information for the "agent_instances" table.
	AgentInstancesTable = &schema.Table{
		Name:       "agent_instances",
		Columns:    AgentInstancesColumns,
		PrimaryKey: []*schema.Column{AgentInstancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_instances_analysis_sessions_instances",
				Columns:    []*schema.Column{AgentInstancesColumns[12]},
				RefColumns: []*schema.Column{AnalysisSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentinstance_session_id",
				Unique:  false,
				Columns: []*schema.Column{AgentInstancesColumns[12]},
			},
		},
	}
	// AnalysisSessionsColumns holds the columns for the "analysis_sessions" table.
	AnalysisSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeUUID},
		{Name: "workflow_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "analyzing", "deliberating", "voting", "completed", "failed", "timed_out"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "input_content_hash", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// AnalysisSessionsTable holds the schema information for the "analysis_sessions" table.
	AnalysisSessionsTable = &schema.Table{
		Name:       "analysis_sessions",
		Columns:    AnalysisSessionsColumns,
		PrimaryKey: []*schema.Column{AnalysisSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analysis_sessions_agent_events_sessions",
				Columns:    []*schema.Column{AnalysisSessionsColumns[11]},
				RefColumns: []*schema.Column{AgentEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "analysis_sessions_workspaces_sessions",
				Columns:    []*schema.Column{AnalysisSessionsColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "analysissession_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSessionsColumns[12], AnalysisSessionsColumns[2]},
			},
			{
				Name:    "analysissession_event_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSessionsColumns[11]},
			},
			{
				Name:    "analysissession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSessionsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "expires_at IS NOT NULL",
				},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_entry_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "resource_type", Type: field.TypeString},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "workspace_id", Type: field.TypeUUID, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[5], AuditEntriesColumns[9]},
			},
			{
				Name:    "auditentry_action",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1]},
			},
		},
	}
	// ConsensusPoliciesColumns holds the columns for the "consensus_policies" table.
	ConsensusPoliciesColumns = []*schema.Column{
		{Name: "consensus_policy_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeEnum, Enums: []string{"majority", "supermajority", "unanimous", "weighted"}, Default: "majority"},
		{Name: "threshold", Type: field.TypeFloat64, Default: 0.5},
		{Name: "weights", Type: field.TypeJSON, Nullable: true},
		{Name: "require_unanimous_on", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// ConsensusPoliciesTable holds the schema information for the "consensus_policies" table.
	ConsensusPoliciesTable = &schema.Table{
		Name:       "consensus_policies",
		Columns:    ConsensusPoliciesColumns,
		PrimaryKey: []*schema.Column{ConsensusPoliciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "consensus_policies_workspaces_consensus_policies",
				Columns:    []*schema.Column{ConsensusPoliciesColumns[8]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "consensuspolicy_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{ConsensusPoliciesColumns[8], ConsensusPoliciesColumns[1]},
			},
		},
	}
	// DeliberationMessagesColumns holds the columns for the "deliberation_messages" table.
	DeliberationMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeUUID},
		{Name: "instance_id", Type: field.TypeUUID},
		{Name: "message_type", Type: field.TypeEnum, Enums: []string{"analysis", "argument", "counter_argument", "evidence", "summary", "vote_rationale"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "round", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// DeliberationMessagesTable holds the schema information for the "deliberation_messages" table.
	DeliberationMessagesTable = &schema.Table{
		Name:       "deliberation_messages",
		Columns:    DeliberationMessagesColumns,
		PrimaryKey: []*schema.Column{DeliberationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "deliberation_messages_analysis_sessions_messages",
				Columns:    []*schema.Column{DeliberationMessagesColumns[7]},
				RefColumns: []*schema.Column{AnalysisSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deliberationmessage_session_id_round_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliberationMessagesColumns[7], DeliberationMessagesColumns[4], DeliberationMessagesColumns[5]},
			},
		},
	}
	// DetectionRulesColumns holds the columns for the "detection_rules" table.
	DetectionRulesColumns = []*schema.Column{
		{Name: "detection_rule_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "detection_type", Type: field.TypeEnum, Enums: []string{"regex", "keyword", "semantic"}},
		{Name: "pattern", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// DetectionRulesTable holds the schema information for the "detection_rules" table.
	DetectionRulesTable = &schema.Table{
		Name:       "detection_rules",
		Columns:    DetectionRulesColumns,
		PrimaryKey: []*schema.Column{DetectionRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "detection_rules_workspaces_detection_rules",
				Columns:    []*schema.Column{DetectionRulesColumns[9]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "detectionrule_workspace_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{DetectionRulesColumns[9], DetectionRulesColumns[5]},
			},
			{
				Name:    "detectionrule_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{DetectionRulesColumns[9], DetectionRulesColumns[1]},
			},
		},
	}
	// GhostProtocolConfigsColumns holds the columns for the "ghost_protocol_configs" table.
	GhostProtocolConfigsColumns = []*schema.Column{
		{Name: "ghost_protocol_config_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "wipe_strategy", Type: field.TypeEnum, Enums: []string{"immediate", "delayed", "scheduled"}, Default: "immediate"},
		{Name: "wipe_fields", Type: field.TypeJSON},
		{Name: "wipe_delay_seconds", Type: field.TypeInt, Default: 0},
		{Name: "max_session_duration_seconds", Type: field.TypeInt, Default: 300},
		{Name: "auto_terminate_on_expiry", Type: field.TypeBool, Default: true},
		{Name: "crypto_shred", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// GhostProtocolConfigsTable holds the schema information for the "ghost_protocol_configs" table.
	GhostProtocolConfigsTable = &schema.Table{
		Name:       "ghost_protocol_configs",
		Columns:    GhostProtocolConfigsColumns,
		PrimaryKey: []*schema.Column{GhostProtocolConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ghost_protocol_configs_workspaces_ghost_configs",
				Columns:    []*schema.Column{GhostProtocolConfigsColumns[11]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ghostprotocolconfig_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{GhostProtocolConfigsColumns[11], GhostProtocolConfigsColumns[1]},
			},
		},
	}
	// PolicyRulesColumns holds the columns for the "policy_rules" table.
	PolicyRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "rule_type", Type: field.TypeEnum, Enums: []string{"rate_limit", "pattern_match", "blocklist", "allowlist", "payload_size", "custom"}},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"allow", "flag", "block"}},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "applies_to_event_types", Type: field.TypeJSON, Nullable: true},
		{Name: "applies_to_agent_types", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// PolicyRulesTable holds the schema information for the "policy_rules" table.
	PolicyRulesTable = &schema.Table{
		Name:       "policy_rules",
		Columns:    PolicyRulesColumns,
		PrimaryKey: []*schema.Column{PolicyRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policy_rules_workspaces_policy_rules",
				Columns:    []*schema.Column{PolicyRulesColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "policyrule_workspace_id_enabled_priority",
				Unique:  false,
				Columns: []*schema.Column{PolicyRulesColumns[12], PolicyRulesColumns[5], PolicyRulesColumns[4]},
			},
			{
				Name:    "policyrule_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{PolicyRulesColumns[12], PolicyRulesColumns[1]},
			},
		},
	}
	// PolicyViolationsColumns holds the columns for the "policy_violations" table.
	PolicyViolationsColumns = []*schema.Column{
		{Name: "violation_id", Type: field.TypeUUID},
		{Name: "rule_id", Type: field.TypeUUID},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "action_taken", Type: field.TypeEnum, Enums: []string{"flagged", "blocked"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolution_note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// PolicyViolationsTable holds the schema information for the "policy_violations" table.
	PolicyViolationsTable = &schema.Table{
		Name:       "policy_violations",
		Columns:    PolicyViolationsColumns,
		PrimaryKey: []*schema.Column{PolicyViolationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "policy_violations_agent_events_violations",
				Columns:    []*schema.Column{PolicyViolationsColumns[11]},
				RefColumns: []*schema.Column{AgentEventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "policy_violations_workspaces_violations",
				Columns:    []*schema.Column{PolicyViolationsColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "policyviolation_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PolicyViolationsColumns[12], PolicyViolationsColumns[9]},
			},
			{
				Name:    "policyviolation_event_id",
				Unique:  false,
				Columns: []*schema.Column{PolicyViolationsColumns[11]},
			},
			{
				Name:    "policyviolation_rule_id",
				Unique:  false,
				Columns: []*schema.Column{PolicyViolationsColumns[1]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "prompt_template_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "template", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{PromptTemplatesColumns[1], PromptTemplatesColumns[2]},
			},
		},
	}
	// RegisteredAgentsColumns holds the columns for the "registered_agents" table.
	RegisteredAgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "api_key_hash", Type: field.TypeString, Unique: true},
		{Name: "api_key_prefix", Type: field.TypeString, Size: 8},
		{Name: "agent_type", Type: field.TypeEnum, Enums: []string{"autonomous", "semi_autonomous", "tool_agent", "chatbot"}, Default: "autonomous"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended", "revoked"}, Default: "active"},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "low"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "event_count", Type: field.TypeInt64, Default: 0},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// RegisteredAgentsTable holds the schema information for the "registered_agents" table.
	RegisteredAgentsTable = &schema.Table{
		Name:       "registered_agents",
		Columns:    RegisteredAgentsColumns,
		PrimaryKey: []*schema.Column{RegisteredAgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "registered_agents_workspaces_agents",
				Columns:    []*schema.Column{RegisteredAgentsColumns[12]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "registeredagent_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{RegisteredAgentsColumns[12], RegisteredAgentsColumns[5]},
			},
			{
				Name:    "registeredagent_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{RegisteredAgentsColumns[12], RegisteredAgentsColumns[1]},
			},
		},
	}
	// VerdictsColumns holds the columns for the "verdicts" table.
	VerdictsColumns = []*schema.Column{
		{Name: "verdict_id", Type: field.TypeUUID},
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "decision", Type: field.TypeEnum, Enums: []string{"allow", "flag", "block", "escalate"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "vote_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "dissenting_opinions", Type: field.TypeJSON, Nullable: true},
		{Name: "strategy_used", Type: field.TypeString},
		{Name: "consensus_reached", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID, Unique: true},
	}
	// VerdictsTable holds the schema information for the "verdicts" table.
	VerdictsTable = &schema.Table{
		Name:       "verdicts",
		Columns:    VerdictsColumns,
		PrimaryKey: []*schema.Column{VerdictsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verdicts_analysis_sessions_verdict",
				Columns:    []*schema.Column{VerdictsColumns[10]},
				RefColumns: []*schema.Column{AnalysisSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verdict_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerdictsColumns[1], VerdictsColumns[9]},
			},
		},
	}
	// WorkflowsColumns holds the columns for the "workflows" table.
	WorkflowsColumns = []*schema.Column{
		{Name: "workflow_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "trigger_on", Type: field.TypeEnum, Enums: []string{"matched", "all", "manual"}, Default: "matched"},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "consensus_policy_id", Type: field.TypeUUID, Nullable: true},
		{Name: "ghost_protocol_config_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workspace_id", Type: field.TypeUUID},
	}
	// WorkflowsTable holds the schema information for the "workflows" table.
	WorkflowsTable = &schema.Table{
		Name:       "workflows",
		Columns:    WorkflowsColumns,
		PrimaryKey: []*schema.Column{WorkflowsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflows_workspaces_workflows",
				Columns:    []*schema.Column{WorkflowsColumns[10]},
				RefColumns: []*schema.Column{WorkspacesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflow_workspace_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{WorkflowsColumns[10], WorkflowsColumns[4]},
			},
			{
				Name:    "workflow_workspace_id_name",
				Unique:  true,
				Columns: []*schema.Column{WorkflowsColumns[10], WorkflowsColumns[1]},
			},
		},
	}
	// WorkflowStepsColumns holds the columns for the "workflow_steps" table.
	WorkflowStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeUUID},
		{Name: "agent_definition_id", Type: field.TypeUUID},
		{Name: "prompt_template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "step_index", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "workflow_id", Type: field.TypeUUID},
	}
	// WorkflowStepsTable holds the schema information for the "workflow_steps" table.
	WorkflowStepsTable = &schema.Table{
		Name:       "workflow_steps",
		Columns:    WorkflowStepsColumns,
		PrimaryKey: []*schema.Column{WorkflowStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workflow_steps_workflows_steps",
				Columns:    []*schema.Column{WorkflowStepsColumns[6]},
				RefColumns: []*schema.Column{WorkflowsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workflowstep_workflow_id_step_index",
				Unique:  true,
				Columns: []*schema.Column{WorkflowStepsColumns[6], WorkflowStepsColumns[3]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended", "archived"}, Default: "active"},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_spend_cents", Type: field.TypeInt64, Default: 0},
		{Name: "llm_tokens_used", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentDefinitionsTable,
		AgentEventsTable,
		AgentInstancesTable,
		AnalysisSessionsTable,
		AuditEntriesTable,
		ConsensusPoliciesTable,
		DeliberationMessagesTable,
		DetectionRulesTable,
		GhostProtocolConfigsTable,
		PolicyRulesTable,
		PolicyViolationsTable,
		PromptTemplatesTable,
		RegisteredAgentsTable,
		VerdictsTable,
		WorkflowsTable,
		WorkflowStepsTable,
		WorkspacesTable,
	}
)

func init() {
	AgentEventsTable.ForeignKeys[0].RefTable = WorkspacesTable
	AgentInstancesTable.ForeignKeys[0].RefTable = AnalysisSessionsTable
	AnalysisSessionsTable.ForeignKeys[0].RefTable = AgentEventsTable
	AnalysisSessionsTable.ForeignKeys[1].RefTable = WorkspacesTable
	ConsensusPoliciesTable.ForeignKeys[0].RefTable = WorkspacesTable
	DeliberationMessagesTable.ForeignKeys[0].RefTable = AnalysisSessionsTable
	DetectionRulesTable.ForeignKeys[0].RefTable = WorkspacesTable
	GhostProtocolConfigsTable.ForeignKeys[0].RefTable = WorkspacesTable
	PolicyRulesTable.ForeignKeys[0].RefTable = WorkspacesTable
	PolicyViolationsTable.ForeignKeys[0].RefTable = AgentEventsTable
	PolicyViolationsTable.ForeignKeys[1].RefTable = WorkspacesTable
	RegisteredAgentsTable.ForeignKeys[0].RefTable = WorkspacesTable
	VerdictsTable.ForeignKeys[0].RefTable = AnalysisSessionsTable
	WorkflowsTable.ForeignKeys[0].RefTable = WorkspacesTable
	WorkflowStepsTable.ForeignKeys[0].RefTable = WorkflowsTable
}
