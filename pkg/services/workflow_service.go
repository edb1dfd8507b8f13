package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentdefinition"
	"github.com/swarmshield/swarmshield/ent/consensuspolicy"
	"github.com/swarmshield/swarmshield/ent/ghostprotocolconfig"
	"github.com/swarmshield/swarmshield/ent/prompttemplate"
	"github.com/swarmshield/swarmshield/ent/workflow"
	"github.com/swarmshield/swarmshield/ent/workflowstep"
)

// WorkflowPlan is a fully resolved workflow: ordered steps with their agent
// definitions and templates, plus the optional consensus policy and ghost
// protocol config. The deliberation orchestrator runs from this snapshot
// without further queries.
type WorkflowPlan struct {
	Workflow  *ent.Workflow
	Steps     []ResolvedStep
	Consensus *ent.ConsensusPolicy     // nil when the workflow names none
	Ghost     *ent.GhostProtocolConfig // nil when the workflow names none
}

// ResolvedStep pairs a workflow step with its referenced entities.
type ResolvedStep struct {
	Step       *ent.WorkflowStep
	Definition *ent.AgentDefinition
	Template   *ent.PromptTemplate // nil when the step uses no template
}

// WorkflowService resolves workflows for the deliberation layer.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	if client == nil {
		panic("NewWorkflowService: client must not be nil")
	}
	return &WorkflowService{client: client}
}

// FindForTrigger returns the enabled workflows a trigger applies to, in name
// order. "matched" workflows run when policy flagged or blocked the event;
// "all" workflows run for every event.
func (s *WorkflowService) FindForTrigger(ctx context.Context, workspaceID uuid.UUID, eventMatched bool) ([]*ent.Workflow, error) {
	triggers := []workflow.TriggerOn{workflow.TriggerOnAll}
	if eventMatched {
		triggers = append(triggers, workflow.TriggerOnMatched)
	}

	workflows, err := s.client.Workflow.Query().
		Where(
			workflow.WorkspaceID(workspaceID),
			workflow.Enabled(true),
			workflow.TriggerOnIn(triggers...),
		).
		Order(ent.Asc(workflow.FieldName)).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "find workflows")
	}
	return workflows, nil
}

// Resolve loads a workflow with all its referenced entities into a plan.
func (s *WorkflowService) Resolve(ctx context.Context, workspaceID, workflowID uuid.UUID) (*WorkflowPlan, error) {
	wf, err := s.client.Workflow.Query().
		Where(
			workflow.ID(workflowID),
			workflow.WorkspaceID(workspaceID),
		).
		Only(ctx)
	if err != nil {
		return nil, wrapEntError(err, "get workflow")
	}

	steps, err := s.client.WorkflowStep.Query().
		Where(workflowstep.WorkflowID(workflowID)).
		Order(ent.Asc(workflowstep.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "list workflow steps")
	}
	if len(steps) == 0 {
		return nil, NewValidationError("steps", "workflow has no steps")
	}

	plan := &WorkflowPlan{Workflow: wf, Steps: make([]ResolvedStep, 0, len(steps))}
	for _, step := range steps {
		def, err := s.client.AgentDefinition.Query().
			Where(agentdefinition.ID(step.AgentDefinitionID)).
			Only(ctx)
		if err != nil {
			return nil, wrapEntError(err, "get agent definition")
		}

		resolved := ResolvedStep{Step: step, Definition: def}
		if step.PromptTemplateID != nil {
			tmpl, err := s.client.PromptTemplate.Query().
				Where(prompttemplate.ID(*step.PromptTemplateID)).
				Only(ctx)
			if err != nil {
				return nil, wrapEntError(err, "get prompt template")
			}
			resolved.Template = tmpl
		}
		plan.Steps = append(plan.Steps, resolved)
	}

	if wf.ConsensusPolicyID != nil {
		cp, err := s.client.ConsensusPolicy.Query().
			Where(consensuspolicy.ID(*wf.ConsensusPolicyID)).
			Only(ctx)
		if err != nil {
			return nil, wrapEntError(err, "get consensus policy")
		}
		plan.Consensus = cp
	}
	if wf.GhostProtocolConfigID != nil {
		gc, err := s.client.GhostProtocolConfig.Query().
			Where(ghostprotocolconfig.ID(*wf.GhostProtocolConfigID)).
			Only(ctx)
		if err != nil {
			return nil, wrapEntError(err, "get ghost protocol config")
		}
		plan.Ghost = gc
	}

	return plan, nil
}
