package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/agentevent"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/deliberation"
	"github.com/swarmshield/swarmshield/pkg/policy"
	"github.com/swarmshield/swarmshield/pkg/services"
)

// createEventHandler handles POST /api/v1/events: authenticate, persist,
// evaluate policy inline, record violations, hand flagged events to the
// deliberation layer, and render the projection. Every side effect that is
// not needed for the response runs on the worker pool.
func (s *Server) createEventHandler(c *echo.Context) error {
	identity, err := s.authenticate(c)
	if err != nil {
		return err
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return validationJSON(c, map[string][]string{"body": {"request body must be valid JSON"}})
	}

	// The agent proved it is alive regardless of what happens to the event.
	agentID := identity.AgentID
	s.submitAsync("agent.touch", func(ctx context.Context) {
		if err := s.agents.Touch(ctx, agentID, time.Now()); err != nil {
			slog.Warn("Agent touch failed", "agent_id", agentID, "error", err)
		}
	})

	sourceIP := clientIP(c)
	event, payloadBytes, err := s.events.Ingest(c.Request().Context(), services.IngestEventInput{
		WorkspaceID: identity.WorkspaceID,
		AgentID:     identity.AgentID,
		EventType:   agentevent.EventType(req.EventType),
		Severity:    agentevent.Severity(req.Severity),
		Content:     req.Content,
		Payload:     req.Payload,
		SourceIP:    sourceIP,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	event = s.evaluate(c.Request().Context(), identity, event, payloadBytes)
	return c.JSON(http.StatusCreated, dataEnvelope{Data: eventResponse(event)})
}

// getEventHandler handles GET /api/v1/events/:id, scoped to the caller's
// workspace.
func (s *Server) getEventHandler(c *echo.Context) error {
	identity, err := s.authenticate(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "not_found", "resource not found")
	}

	event, err := s.events.Get(c.Request().Context(), identity.WorkspaceID, eventID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dataEnvelope{Data: eventResponse(event)})
}

// evaluate runs the policy engine over the stored event and applies the
// outcome. Evaluation failures degrade, never reject: the event stays
// pending when rules cannot be loaded, and the caller still gets their 201.
func (s *Server) evaluate(ctx context.Context, identity *cache.AgentIdentity, event *ent.AgentEvent, payloadBytes int) *ent.AgentEvent {
	ruleSet, err := s.policies.Rules(ctx, identity.WorkspaceID)
	if err != nil {
		slog.Error("Policy rules unavailable, event left pending",
			"event_id", event.ID,
			"workspace_id", identity.WorkspaceID,
			"error", err)
		return event
	}

	result := s.engine.Evaluate(ctx, &policy.Event{
		EventID:      event.ID,
		WorkspaceID:  event.WorkspaceID,
		AgentID:      identity.AgentID,
		AgentName:    identity.Name,
		AgentType:    identity.AgentType,
		EventType:    string(event.EventType),
		Severity:     string(event.Severity),
		SourceIP:     event.SourceIP,
		Content:      event.Content,
		PayloadBytes: payloadBytes,
		ReceivedAt:   event.CreatedAt,
	}, policy.RulesFromEnt(ruleSet.PolicyRules), policy.DetectionsFromEnt(ruleSet.DetectionRules))

	status, flaggedReason := evaluationOutcome(result)
	updated, err := s.events.RecordEvaluation(ctx, event.ID, status, evaluationResult(result), flaggedReason)
	if err != nil {
		slog.Error("Failed to record evaluation", "event_id", event.ID, "error", err)
		return event
	}

	if len(result.Matched) > 0 {
		if _, err := s.violations.RecordMatches(ctx, event.WorkspaceID, event.ID, result.Matched); err != nil {
			slog.Error("Failed to record violations", "event_id", event.ID, "error", err)
		}
	}

	if result.Action == policy.ActionFlag || result.Action == policy.ActionBlock {
		s.escalateAsync(updated)
	}
	return updated
}

// escalateAsync hands a flagged or blocked event to the deliberation layer
// without blocking the response.
func (s *Server) escalateAsync(event *ent.AgentEvent) {
	if s.registry == nil || s.workflows == nil {
		return
	}
	s.submitAsync("deliberation.start", func(ctx context.Context) {
		workflows, err := s.workflows.FindForTrigger(ctx, event.WorkspaceID, true)
		if err != nil {
			slog.Error("Workflow lookup failed", "event_id", event.ID, "error", err)
			return
		}
		if len(workflows) == 0 {
			return
		}

		// One session per event; the first eligible workflow wins.
		plan, err := s.workflows.Resolve(ctx, event.WorkspaceID, workflows[0].ID)
		if err != nil {
			slog.Error("Workflow resolution failed",
				"event_id", event.ID,
				"workflow_id", workflows[0].ID,
				"error", err)
			return
		}
		if _, err := s.registry.StartSession(ctx, event, plan); err != nil {
			if err == deliberation.ErrTooManySessions {
				slog.Warn("Deliberation skipped, session limit reached", "event_id", event.ID)
				return
			}
			slog.Error("Failed to start deliberation", "event_id", event.ID, "error", err)
		}
	})
}

// submitAsync dispatches through the pool, falling back to inline execution
// when no pool is wired (tests).
func (s *Server) submitAsync(label string, fn func(ctx context.Context)) {
	if s.pool == nil {
		fn(context.Background())
		return
	}
	if !s.pool.Submit(label, fn) {
		slog.Warn("Background job dropped, worker queue full", "job", label)
	}
}

// evaluationOutcome maps the engine action to the event status and flagged
// reason.
func evaluationOutcome(result policy.Result) (agentevent.Status, string) {
	switch result.Action {
	case policy.ActionBlock:
		return agentevent.StatusBlocked, firstRuleName(result)
	case policy.ActionFlag:
		return agentevent.StatusFlagged, firstRuleName(result)
	default:
		return agentevent.StatusAllowed, ""
	}
}

func firstRuleName(result policy.Result) string {
	for _, m := range result.Matched {
		if m.Action == result.Action {
			return m.RuleName
		}
	}
	if len(result.Matched) > 0 {
		return result.Matched[0].RuleName
	}
	return ""
}

// evaluationResult is the stored projection of an engine result: matched
// rule identity and action only, never configuration.
func evaluationResult(result policy.Result) map[string]any {
	matched := make([]map[string]any, 0, len(result.Matched))
	for _, m := range result.Matched {
		matched = append(matched, map[string]any{
			"rule_id":   m.RuleID.String(),
			"rule_name": m.RuleName,
			"rule_type": string(m.RuleType),
			"action":    string(m.Action),
		})
	}
	out := map[string]any{
		"action":          string(result.Action),
		"matched_rules":   matched,
		"evaluated_count": result.EvaluatedCount,
	}
	if result.FailedCount > 0 {
		out["failed_count"] = result.FailedCount
	}
	return out
}
