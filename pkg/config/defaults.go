package config

// DefaultServerConfig returns the built-in gateway defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:                   "0.0.0.0",
		Port:                   8080,
		AllowedOrigins:         []string{"*"},
		CORSMaxAgeSeconds:      300,
		RateLimitPerMinute:     120,
		ShutdownTimeoutSeconds: 30,
	}
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		APIKeyNegativeTTLSeconds: 60,
		AuthTTLSeconds:           300,
		PolicyDebounceMillis:     500,
	}
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		MaxAttempts:           3,
		BackoffBaseMillis:     1000,
		RequestTimeoutSeconds: 60,
		BaseURL:               "https://api.openai.com/v1",
		Model:                 "gpt-4o-mini",
		DefaultBudgetCents:    50000,
		CallEstimateCents:     10,
		BudgetCacheTTLSeconds: 300,
		KeyEncryptionKeyEnv:   "LLM_KEY_ENCRYPTION_KEY",
	}
}

// DefaultDeliberationConfig returns the built-in deliberation defaults.
func DefaultDeliberationConfig() *DeliberationConfig {
	return &DeliberationConfig{
		AgentTimeoutSeconds:   30,
		DefaultRounds:         2,
		MaxConcurrentSessions: 20,
	}
}

// DefaultRetentionConfig returns the built-in retention sweeper defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SweepIntervalSeconds: 300,
		AbandonAfterSeconds:  900,
	}
}

// DefaultSlackConfig returns the built-in Slack defaults. Notifications are
// disabled until a channel is configured.
func DefaultSlackConfig() *SlackConfig {
	return &SlackConfig{
		TokenEnv: "SLACK_BOT_TOKEN",
	}
}

// DefaultWorkerConfig returns the built-in worker pool defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		PoolSize:  8,
		QueueSize: 256,
	}
}
