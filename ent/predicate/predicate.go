// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentDefinition is the predicate function for agentdefinition builders.
type AgentDefinition func(*sql.Selector)

// AgentEvent is the predicate function for agentevent builders.
type AgentEvent func(*sql.Selector)

// AgentInstance is the predicate function for agentinstance builders.
type AgentInstance func(*sql.Selector)

// AnalysisSession is the predicate function for analysissession builders.
type AnalysisSession func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// ConsensusPolicy is the predicate function for consensuspolicy builders.
type ConsensusPolicy func(*sql.Selector)

// DeliberationMessage is the predicate function for deliberationmessage builders.
type DeliberationMessage func(*sql.Selector)

// DetectionRule is the predicate function for detectionrule builders.
type DetectionRule func(*sql.Selector)

// GhostProtocolConfig is the predicate function for ghostprotocolconfig builders.
type GhostProtocolConfig func(*sql.Selector)

// PolicyRule is the predicate function for policyrule builders.
type PolicyRule func(*sql.Selector)

// PolicyViolation is the predicate function for policyviolation builders.
type PolicyViolation func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// RegisteredAgent is the predicate function for registeredagent builders.
type RegisteredAgent func(*sql.Selector)

// Verdict is the predicate function for verdict builders.
type Verdict func(*sql.Selector)

// Workflow is the predicate function for workflow builders.
type Workflow func(*sql.Selector)

// WorkflowStep is the predicate function for workflowstep builders.
type WorkflowStep func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
