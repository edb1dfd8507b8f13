package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the single YAML file the loader reads from configDir.
const ConfigFileName = "swarmshield.yaml"

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load swarmshield.yaml from configDir (missing file → all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"listen", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		"rate_limit_per_minute", cfg.Server.RateLimitPerMinute,
		"worker_pool_size", cfg.Worker.PoolSize)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	userCfg, err := loadYAMLFile(configDir)
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	cfg := &Config{
		configDir:    configDir,
		Server:       DefaultServerConfig(),
		Cache:        DefaultCacheConfig(),
		LLM:          DefaultLLMConfig(),
		Deliberation: DefaultDeliberationConfig(),
		Worker:       DefaultWorkerConfig(),
		Retention:    DefaultRetentionConfig(),
		Slack:        DefaultSlackConfig(),
	}

	if userCfg == nil {
		return cfg, nil
	}

	// Merge user config into defaults section by section so non-zero user
	// values override while unset defaults survive.
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"server", cfg.Server, userCfg.Server},
		{"cache", cfg.Cache, userCfg.Cache},
		{"llm", cfg.LLM, userCfg.LLM},
		{"deliberation", cfg.Deliberation, userCfg.Deliberation},
		{"worker", cfg.Worker, userCfg.Worker},
		{"retention", cfg.Retention, userCfg.Retention},
		{"slack", cfg.Slack, userCfg.Slack},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNilPointer(v any) bool {
	switch t := v.(type) {
	case *ServerConfig:
		return t == nil
	case *CacheConfig:
		return t == nil
	case *LLMConfig:
		return t == nil
	case *DeliberationConfig:
		return t == nil
	case *WorkerConfig:
		return t == nil
	case *RetentionConfig:
		return t == nil
	case *SlackConfig:
		return t == nil
	}
	return false
}

// loadYAMLFile reads and parses swarmshield.yaml. A missing file is not an
// error: the service runs on built-in defaults.
func loadYAMLFile(configDir string) (*Config, error) {
	path := filepath.Join(configDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No configuration file found, using defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &cfg, nil
}

// validate performs validation on loaded configuration
func validate(cfg *Config) error {
	checks := []struct {
		section string
		field   string
		ok      bool
		detail  string
	}{
		{"server", "port", cfg.Server.Port > 0 && cfg.Server.Port < 65536, "must be in 1..65535"},
		{"server", "rate_limit_per_minute", cfg.Server.RateLimitPerMinute >= 0, "must be >= 0"},
		{"server", "allowed_origins", len(cfg.Server.AllowedOrigins) > 0, "must not be empty"},
		{"cache", "api_key_negative_ttl_seconds", cfg.Cache.APIKeyNegativeTTLSeconds > 0, "must be > 0"},
		{"cache", "auth_ttl_seconds", cfg.Cache.AuthTTLSeconds > 0, "must be > 0"},
		{"cache", "policy_debounce_millis", cfg.Cache.PolicyDebounceMillis > 0, "must be > 0"},
		{"llm", "max_attempts", cfg.LLM.MaxAttempts >= 1, "must be >= 1"},
		{"llm", "backoff_base_millis", cfg.LLM.BackoffBaseMillis > 0, "must be > 0"},
		{"llm", "request_timeout_seconds", cfg.LLM.RequestTimeoutSeconds > 0, "must be > 0"},
		{"llm", "default_budget_cents", cfg.LLM.DefaultBudgetCents > 0, "must be > 0"},
		{"llm", "call_estimate_cents", cfg.LLM.CallEstimateCents > 0, "must be > 0"},
		{"llm", "key_encryption_key_env", cfg.LLM.KeyEncryptionKeyEnv != "", "must not be empty"},
		{"deliberation", "agent_timeout_seconds", cfg.Deliberation.AgentTimeoutSeconds > 0, "must be > 0"},
		{"deliberation", "default_rounds", cfg.Deliberation.DefaultRounds >= 0, "must be >= 0"},
		{"deliberation", "max_concurrent_sessions", cfg.Deliberation.MaxConcurrentSessions > 0, "must be > 0"},
		{"worker", "pool_size", cfg.Worker.PoolSize > 0, "must be > 0"},
		{"worker", "queue_size", cfg.Worker.QueueSize > 0, "must be > 0"},
		{"retention", "sweep_interval_seconds", cfg.Retention.SweepIntervalSeconds > 0, "must be > 0"},
		{"retention", "abandon_after_seconds", cfg.Retention.AbandonAfterSeconds > 0, "must be > 0"},
	}

	for _, c := range checks {
		if !c.ok {
			return NewValidationError(c.section, c.field, fmt.Errorf("%w: %s", ErrInvalidValue, c.detail))
		}
	}
	return nil
}
