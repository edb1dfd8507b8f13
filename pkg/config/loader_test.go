package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestInitialize_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 60, cfg.Cache.APIKeyNegativeTTLSeconds)
	assert.Equal(t, 300, cfg.Cache.AuthTTLSeconds)
	assert.Equal(t, 500, cfg.Cache.PolicyDebounceMillis)
	assert.Equal(t, 3, cfg.LLM.MaxAttempts)
	assert.Equal(t, 1000, cfg.LLM.BackoffBaseMillis)
	assert.Equal(t, int64(50000), cfg.LLM.DefaultBudgetCents)
	assert.Equal(t, int64(10), cfg.LLM.CallEstimateCents)
	assert.Equal(t, 30, cfg.Deliberation.AgentTimeoutSeconds)
}

func TestInitialize_UserValuesOverrideDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
  allowed_origins:
    - https://app.example.com
llm:
  max_attempts: 5
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5, cfg.LLM.MaxAttempts)

	// Unset values keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 120, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, 1000, cfg.LLM.BackoffBaseMillis)
	assert.Equal(t, 500, cfg.Cache.PolicyDebounceMillis)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("SWARMSHIELD_TEST_PORT", "7171")
	dir := writeConfig(t, `
server:
  port: {{.SWARMSHIELD_TEST_PORT}}
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.Server.Port)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [not a mapping")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 99999\n",
			wantErr: "port",
		},
		{
			name:    "zero backoff",
			yaml:    "llm:\n  backoff_base_millis: -5\n",
			wantErr: "backoff_base_millis",
		},
		{
			name:    "negative debounce",
			yaml:    "cache:\n  policy_debounce_millis: -1\n",
			wantErr: "policy_debounce_millis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"`)
	out := ExpandEnv(in)
	assert.Equal(t, in, out)
}
