package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/pkg/policy"
)

func TestValidateRuleConfig_RateLimit(t *testing.T) {
	ok := map[string]any{"max_events": float64(100), "window_seconds": float64(60)}
	assert.NoError(t, validateRuleConfig(policy.RuleRateLimit, ok))

	assert.Error(t, validateRuleConfig(policy.RuleRateLimit, map[string]any{"window_seconds": float64(60)}))
	assert.Error(t, validateRuleConfig(policy.RuleRateLimit, map[string]any{"max_events": float64(0), "window_seconds": float64(60)}))
	assert.Error(t, validateRuleConfig(policy.RuleRateLimit, map[string]any{"max_events": "many", "window_seconds": float64(60)}))

	withPer := map[string]any{"max_events": float64(100), "window_seconds": float64(60), "per": "workspace"}
	assert.NoError(t, validateRuleConfig(policy.RuleRateLimit, withPer))
	withAlias := map[string]any{"max_events": float64(100), "window_seconds": float64(60), "scope": "agent"}
	assert.NoError(t, validateRuleConfig(policy.RuleRateLimit, withAlias))
	badPer := map[string]any{"max_events": float64(100), "window_seconds": float64(60), "per": "planet"}
	assert.Error(t, validateRuleConfig(policy.RuleRateLimit, badPer))
}

func TestValidateRuleConfig_Lists(t *testing.T) {
	ok := map[string]any{"field": "source_ip", "values": []any{"10.0.0.1"}}
	assert.NoError(t, validateRuleConfig(policy.RuleBlocklist, ok))
	assert.NoError(t, validateRuleConfig(policy.RuleAllowlist, ok))

	badField := map[string]any{"field": "payload.x", "values": []any{"v"}}
	assert.Error(t, validateRuleConfig(policy.RuleBlocklist, badField))

	noValues := map[string]any{"field": "content"}
	assert.Error(t, validateRuleConfig(policy.RuleBlocklist, noValues))

	mixedValues := map[string]any{"field": "content", "values": []any{"ok", 7}}
	assert.Error(t, validateRuleConfig(policy.RuleBlocklist, mixedValues))
}

func TestValidateRuleConfig_PatternMatchAndOthers(t *testing.T) {
	assert.NoError(t, validateRuleConfig(policy.RulePatternMatch, map[string]any{}))
	assert.NoError(t, validateRuleConfig(policy.RulePatternMatch, map[string]any{"detection_rule_ids": []any{"id-1"}}))
	assert.Error(t, validateRuleConfig(policy.RulePatternMatch, map[string]any{"detection_rule_ids": "id-1"}))

	assert.NoError(t, validateRuleConfig(policy.RulePayloadSize, map[string]any{"max_content_bytes": float64(4096)}))
	assert.NoError(t, validateRuleConfig(policy.RulePayloadSize, map[string]any{"max_payload_bytes": float64(1024)}))
	assert.NoError(t, validateRuleConfig(policy.RulePayloadSize, map[string]any{"max_bytes": float64(1024)}))
	assert.Error(t, validateRuleConfig(policy.RulePayloadSize, map[string]any{}))
	assert.Error(t, validateRuleConfig(policy.RulePayloadSize, map[string]any{"max_content_bytes": float64(0)}))

	// Custom rules accept anything; their config is opaque.
	assert.NoError(t, validateRuleConfig(policy.RuleCustom, map[string]any{"whatever": true}))

	assert.Error(t, validateRuleConfig(policy.RuleType("mystery"), map[string]any{}))
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, validatePattern(`ssh-rsa\s+[A-Za-z0-9+/=]+`))

	err := validatePattern("")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	assert.Error(t, validatePattern("(unclosed"))
	assert.Error(t, validatePattern(strings.Repeat("a", maxPatternLen+1)))
}

func TestValidateKeywords(t *testing.T) {
	assert.NoError(t, validateKeywords([]string{"drop table", "rm -rf"}))

	assert.Error(t, validateKeywords(nil))
	assert.Error(t, validateKeywords([]string{""}))
	assert.Error(t, validateKeywords([]string{strings.Repeat("k", maxKeywordLen+1)}))

	many := make([]string, maxKeywords+1)
	for i := range many {
		many[i] = "kw"
	}
	assert.Error(t, validateKeywords(many))
}
