package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMetadata_TopLevelKeys(t *testing.T) {
	in := map[string]any{
		"password":     "hunter2",
		"api_key":      "ssk_abc",
		"token":        "jwt-here",
		"secret":       "shh",
		"api_key_hash": "deadbeef",
		"agent_name":   "crawler-7",
		"count":        3,
	}

	out := SanitizeMetadata(in)
	assert.Equal(t, RedactedValue, out["password"])
	assert.Equal(t, RedactedValue, out["api_key"])
	assert.Equal(t, RedactedValue, out["token"])
	assert.Equal(t, RedactedValue, out["secret"])
	assert.Equal(t, RedactedValue, out["api_key_hash"])
	assert.Equal(t, "crawler-7", out["agent_name"])
	assert.Equal(t, 3, out["count"])
}

func TestSanitizeMetadata_SubstringAndCase(t *testing.T) {
	in := map[string]any{
		"old_api_key_hash": "aaa",
		"USER_PASSWORD":    "bbb",
		"refresh_token_v2": "ccc",
		"tokenizer":        "model-vocab", // contains "token", redacted by substring policy
	}

	out := SanitizeMetadata(in)
	assert.Equal(t, RedactedValue, out["old_api_key_hash"])
	assert.Equal(t, RedactedValue, out["USER_PASSWORD"])
	assert.Equal(t, RedactedValue, out["refresh_token_v2"])
	assert.Equal(t, RedactedValue, out["tokenizer"])
}

func TestSanitizeMetadata_RecursesIntoNestedStructures(t *testing.T) {
	in := map[string]any{
		"request": map[string]any{
			"headers": map[string]any{
				"authorization_token": "Bearer xyz",
				"content_type":        "application/json",
			},
		},
		"attempts": []any{
			map[string]any{"password": "first"},
			map[string]any{"outcome": "denied"},
		},
	}

	out := SanitizeMetadata(in)
	headers := out["request"].(map[string]any)["headers"].(map[string]any)
	assert.Equal(t, RedactedValue, headers["authorization_token"])
	assert.Equal(t, "application/json", headers["content_type"])

	attempts := out["attempts"].([]any)
	assert.Equal(t, RedactedValue, attempts[0].(map[string]any)["password"])
	assert.Equal(t, "denied", attempts[1].(map[string]any)["outcome"])
}

func TestSanitizeMetadata_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"password": "hunter2",
		"nested":   map[string]any{"secret": "x"},
	}

	_ = SanitizeMetadata(in)
	assert.Equal(t, "hunter2", in["password"])
	assert.Equal(t, "x", in["nested"].(map[string]any)["secret"])
}

func TestSanitizeMetadata_EmptyAndNil(t *testing.T) {
	out := SanitizeMetadata(map[string]any{})
	require.NotNil(t, out)
	assert.Empty(t, out)
}
