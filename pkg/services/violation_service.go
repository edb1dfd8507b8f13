package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/policyviolation"
	"github.com/swarmshield/swarmshield/pkg/policy"
)

// ViolationService records and resolves policy violations.
type ViolationService struct {
	client *ent.Client
}

// NewViolationService creates a new ViolationService.
func NewViolationService(client *ent.Client) *ViolationService {
	if client == nil {
		panic("NewViolationService: client must not be nil")
	}
	return &ViolationService{client: client}
}

// RecordMatches persists one violation per matched flag/block rule. Allow
// matches produce no violations. Severity follows the action: flagged events
// get medium, blocked events get high.
func (s *ViolationService) RecordMatches(ctx context.Context, workspaceID, eventID uuid.UUID, matched []policy.MatchedRule) ([]*ent.PolicyViolation, error) {
	builders := make([]*ent.PolicyViolationCreate, 0, len(matched))
	for _, m := range matched {
		var actionTaken policyviolation.ActionTaken
		var severity policyviolation.Severity
		switch m.Action {
		case policy.ActionBlock:
			actionTaken = policyviolation.ActionTakenBlocked
			severity = policyviolation.SeverityHigh
		case policy.ActionFlag:
			actionTaken = policyviolation.ActionTakenFlagged
			severity = policyviolation.SeverityMedium
		default:
			continue
		}

		b := s.client.PolicyViolation.Create().
			SetWorkspaceID(workspaceID).
			SetEventID(eventID).
			SetRuleID(m.RuleID).
			SetRuleName(m.RuleName).
			SetActionTaken(actionTaken).
			SetSeverity(severity)
		if m.Detail != nil {
			b.SetDetails(m.Detail)
		}
		builders = append(builders, b)
	}

	if len(builders) == 0 {
		return nil, nil
	}
	violations, err := s.client.PolicyViolation.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "record violations")
	}
	return violations, nil
}

// Resolve marks a violation as handled.
func (s *ViolationService) Resolve(ctx context.Context, workspaceID, violationID uuid.UUID, note string) error {
	n, err := s.client.PolicyViolation.Update().
		Where(
			policyviolation.ID(violationID),
			policyviolation.WorkspaceID(workspaceID),
		).
		SetResolved(true).
		SetResolvedAt(time.Now()).
		SetResolutionNote(note).
		Save(ctx)
	if err != nil {
		return wrapEntError(err, "resolve violation")
	}
	if n == 0 {
		return fmt.Errorf("violation: %w", ErrNotFound)
	}
	return nil
}

// ListForEvent returns all violations recorded against one event.
func (s *ViolationService) ListForEvent(ctx context.Context, workspaceID, eventID uuid.UUID) ([]*ent.PolicyViolation, error) {
	violations, err := s.client.PolicyViolation.Query().
		Where(
			policyviolation.EventID(eventID),
			policyviolation.WorkspaceID(workspaceID),
		).
		Order(ent.Asc(policyviolation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, wrapEntError(err, "list violations")
	}
	return violations, nil
}
