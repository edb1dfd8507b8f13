package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/ent/detectionrule"
	"github.com/swarmshield/swarmshield/ent/policyrule"
	"github.com/swarmshield/swarmshield/pkg/events"
	"github.com/swarmshield/swarmshield/pkg/policy"
)

// Detection rule limits enforced at write time so the evaluation path never
// sees oversized inputs.
const (
	maxPatternLen  = 10000
	maxKeywords    = 1000
	maxKeywordLen  = 500
	compileProbeMs = 100
)

// probeInput is matched against new regex patterns to smoke out patterns that
// are valid but absurdly slow on plain text.
var probeInput = strings.Repeat("a", 1000) + "!"

// CreatePolicyRuleInput contains the fields for a new policy rule.
type CreatePolicyRuleInput struct {
	WorkspaceID         uuid.UUID
	Name                string
	RuleType            policyrule.RuleType
	Action              policyrule.Action
	Priority            int
	Config              map[string]any
	AppliesToEventTypes []string
	AppliesToAgentTypes []string
	Description         string
	Enabled             *bool
}

// CreateDetectionRuleInput contains the fields for a new detection rule.
type CreateDetectionRuleInput struct {
	WorkspaceID   uuid.UUID
	Name          string
	DetectionType detectionrule.DetectionType
	Pattern       string
	Keywords      []string
	Description   string
}

// RuleService manages policy and detection rules. Every mutation broadcasts a
// change notification so cached rule sets refresh.
type RuleService struct {
	client    *ent.Client
	publisher *events.Publisher
}

// NewRuleService creates a new RuleService.
func NewRuleService(client *ent.Client, publisher *events.Publisher) *RuleService {
	if client == nil {
		panic("NewRuleService: client must not be nil")
	}
	return &RuleService{client: client, publisher: publisher}
}

// CreatePolicyRule validates the rule's config against its type and stores it.
func (s *RuleService) CreatePolicyRule(ctx context.Context, input CreatePolicyRuleInput) (*ent.PolicyRule, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "rule name is required")
	}
	if input.Priority < 0 {
		return nil, NewValidationError("priority", "priority must be >= 0")
	}
	if err := validateRuleConfig(policy.RuleType(input.RuleType), input.Config); err != nil {
		return nil, err
	}

	builder := s.client.PolicyRule.Create().
		SetWorkspaceID(input.WorkspaceID).
		SetName(input.Name).
		SetRuleType(input.RuleType).
		SetAction(input.Action).
		SetPriority(input.Priority).
		SetConfig(input.Config)

	if input.AppliesToEventTypes != nil {
		builder.SetAppliesToEventTypes(input.AppliesToEventTypes)
	}
	if input.AppliesToAgentTypes != nil {
		builder.SetAppliesToAgentTypes(input.AppliesToAgentTypes)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.Enabled != nil {
		builder.SetEnabled(*input.Enabled)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "create policy rule")
	}
	s.broadcastPolicyChange(ctx, input.WorkspaceID)
	return rule, nil
}

// SetPolicyRuleEnabled toggles a rule without editing its config.
func (s *RuleService) SetPolicyRuleEnabled(ctx context.Context, workspaceID, ruleID uuid.UUID, enabled bool) error {
	n, err := s.client.PolicyRule.Update().
		Where(
			policyrule.ID(ruleID),
			policyrule.WorkspaceID(workspaceID),
		).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return wrapEntError(err, "update policy rule")
	}
	if n == 0 {
		return fmt.Errorf("policy rule: %w", ErrNotFound)
	}
	s.broadcastPolicyChange(ctx, workspaceID)
	return nil
}

// DeletePolicyRule removes a rule from its workspace.
func (s *RuleService) DeletePolicyRule(ctx context.Context, workspaceID, ruleID uuid.UUID) error {
	n, err := s.client.PolicyRule.Delete().
		Where(
			policyrule.ID(ruleID),
			policyrule.WorkspaceID(workspaceID),
		).
		Exec(ctx)
	if err != nil {
		return wrapEntError(err, "delete policy rule")
	}
	if n == 0 {
		return fmt.Errorf("policy rule: %w", ErrNotFound)
	}
	s.broadcastPolicyChange(ctx, workspaceID)
	return nil
}

// CreateDetectionRule validates pattern or keywords and stores the rule.
func (s *RuleService) CreateDetectionRule(ctx context.Context, input CreateDetectionRuleInput) (*ent.DetectionRule, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "rule name is required")
	}

	switch input.DetectionType {
	case detectionrule.DetectionTypeRegex:
		if err := validatePattern(input.Pattern); err != nil {
			return nil, err
		}
	case detectionrule.DetectionTypeKeyword:
		if err := validateKeywords(input.Keywords); err != nil {
			return nil, err
		}
	default:
		return nil, NewValidationError("detection_type", "must be regex or keyword")
	}

	builder := s.client.DetectionRule.Create().
		SetWorkspaceID(input.WorkspaceID).
		SetName(input.Name).
		SetDetectionType(input.DetectionType)

	if input.Pattern != "" {
		builder.SetPattern(input.Pattern)
	}
	if input.Keywords != nil {
		builder.SetKeywords(input.Keywords)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}

	rule, err := builder.Save(ctx)
	if err != nil {
		return nil, wrapEntError(err, "create detection rule")
	}
	s.broadcastDetectionChange(ctx, input.WorkspaceID)
	return rule, nil
}

// DeleteDetectionRule removes a detection rule from its workspace.
func (s *RuleService) DeleteDetectionRule(ctx context.Context, workspaceID, ruleID uuid.UUID) error {
	n, err := s.client.DetectionRule.Delete().
		Where(
			detectionrule.ID(ruleID),
			detectionrule.WorkspaceID(workspaceID),
		).
		Exec(ctx)
	if err != nil {
		return wrapEntError(err, "delete detection rule")
	}
	if n == 0 {
		return fmt.Errorf("detection rule: %w", ErrNotFound)
	}
	s.broadcastDetectionChange(ctx, workspaceID)
	return nil
}

func (s *RuleService) broadcastPolicyChange(ctx context.Context, workspaceID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	// Best effort: a lost notification degrades to the cache's lazy reload.
	_ = s.publisher.PublishPolicyRulesChanged(ctx, workspaceID.String())
}

func (s *RuleService) broadcastDetectionChange(ctx context.Context, workspaceID uuid.UUID) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishDetectionRulesChanged(ctx, workspaceID.String())
}

// validateRuleConfig rejects configs the evaluators would fail on at runtime.
// The checks mirror the evaluators' own config parsing.
func validateRuleConfig(ruleType policy.RuleType, config map[string]any) error {
	switch ruleType {
	case policy.RuleRateLimit:
		if err := requirePositiveInt(config, "max_events"); err != nil {
			return err
		}
		if err := requirePositiveInt(config, "window_seconds"); err != nil {
			return err
		}
		return validateRateLimitScope(config)
	case policy.RulePatternMatch:
		// detection_rule_ids is optional; when present it must be a string list.
		if _, ok := config["detection_rule_ids"]; ok {
			if err := requireStringList(config, "detection_rule_ids"); err != nil {
				return err
			}
		}
		return nil
	case policy.RuleBlocklist, policy.RuleAllowlist:
		field, _ := config["field"].(string)
		switch field {
		case policy.FieldSourceIP, policy.FieldAgentName, policy.FieldEventType, policy.FieldContent:
		default:
			return NewValidationError("config.field", "must be one of source_ip, agent_name, event_type, content")
		}
		return requireStringList(config, "values")
	case policy.RulePayloadSize:
		return validatePayloadSizeConfig(config)
	case policy.RuleCustom:
		return nil
	default:
		return NewValidationError("rule_type", "unknown rule type")
	}
}

// validateRateLimitScope checks the optional per key (scope is accepted as a
// legacy alias). Rows written before this check existed fall back to agent
// scope at evaluation time.
func validateRateLimitScope(config map[string]any) error {
	raw, ok := config["per"]
	key := "per"
	if !ok {
		raw, ok = config["scope"]
		key = "scope"
	}
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	if !isString || (s != policy.ScopeAgent && s != policy.ScopeWorkspace) {
		return NewValidationError("config."+key, "must be agent or workspace")
	}
	return nil
}

// validatePayloadSizeConfig requires at least one size ceiling. max_bytes is
// a legacy alias for max_payload_bytes.
func validatePayloadSizeConfig(config map[string]any) error {
	found := false
	for _, key := range []string{"max_content_bytes", "max_payload_bytes", "max_bytes"} {
		if _, ok := config[key]; !ok {
			continue
		}
		if err := requirePositiveInt(config, key); err != nil {
			return err
		}
		found = true
	}
	if !found {
		return NewValidationError("config", "max_content_bytes or max_payload_bytes is required")
	}
	return nil
}

func requirePositiveInt(config map[string]any, key string) error {
	raw, ok := config[key]
	if !ok {
		return NewValidationError("config."+key, "is required")
	}
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		n = int64(v)
	default:
		return NewValidationError("config."+key, "must be a number")
	}
	if n < 1 {
		return NewValidationError("config."+key, "must be >= 1")
	}
	return nil
}

func requireStringList(config map[string]any, key string) error {
	raw, ok := config[key]
	if !ok {
		return NewValidationError("config."+key, "is required")
	}
	switch v := raw.(type) {
	case []string:
		return nil
	case []any:
		for _, item := range v {
			if _, ok := item.(string); !ok {
				return NewValidationError("config."+key, "must contain only strings")
			}
		}
		return nil
	default:
		return NewValidationError("config."+key, "must be a list of strings")
	}
}

// validatePattern compiles the pattern and probes it against a fixed input,
// rejecting patterns that take longer than the runtime guard would allow.
func validatePattern(pattern string) error {
	if pattern == "" {
		return NewValidationError("pattern", "pattern is required for regex detection")
	}
	if len(pattern) > maxPatternLen {
		return NewValidationError("pattern", fmt.Sprintf("pattern exceeds %d characters", maxPatternLen))
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return NewValidationError("pattern", fmt.Sprintf("invalid regex: %v", err))
	}

	start := time.Now()
	re.MatchString(probeInput)
	if elapsed := time.Since(start); elapsed > compileProbeMs*time.Millisecond {
		return NewValidationError("pattern", fmt.Sprintf("pattern too slow: probe took %dms", elapsed.Milliseconds()))
	}
	return nil
}

func validateKeywords(keywords []string) error {
	if len(keywords) == 0 {
		return NewValidationError("keywords", "at least one keyword is required for keyword detection")
	}
	if len(keywords) > maxKeywords {
		return NewValidationError("keywords", fmt.Sprintf("at most %d keywords allowed", maxKeywords))
	}
	for _, kw := range keywords {
		if kw == "" {
			return NewValidationError("keywords", "keywords must not be empty")
		}
		if len(kw) > maxKeywordLen {
			return NewValidationError("keywords", fmt.Sprintf("keywords must not exceed %d bytes", maxKeywordLen))
		}
	}
	return nil
}
