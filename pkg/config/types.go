package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Server       *ServerConfig       `yaml:"server"`
	Cache        *CacheConfig        `yaml:"cache"`
	LLM          *LLMConfig          `yaml:"llm"`
	Deliberation *DeliberationConfig `yaml:"deliberation"`
	Worker       *WorkerConfig       `yaml:"worker"`
	Retention    *RetentionConfig    `yaml:"retention"`
	Slack        *SlackConfig        `yaml:"slack"`
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig holds the HTTP gateway settings.
type ServerConfig struct {
	// Host and Port for the listener.
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// AllowedOrigins drives CORS. ["*"] permits any origin; otherwise the
	// request Origin must match an entry exactly.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// CORSMaxAgeSeconds is the preflight cache lifetime.
	CORSMaxAgeSeconds int `yaml:"cors_max_age_seconds"`

	// RateLimitPerMinute is the per-client-IP ingestion cap. Zero disables
	// the limiter.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`

	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
}

// CacheConfig holds TTLs and refresh tuning for the in-memory caches.
type CacheConfig struct {
	// APIKeyNegativeTTLSeconds is how long a failed key lookup is remembered
	// before the database is consulted again.
	APIKeyNegativeTTLSeconds int `yaml:"api_key_negative_ttl_seconds"`

	// AuthTTLSeconds is the permission cache entry lifetime.
	AuthTTLSeconds int `yaml:"auth_ttl_seconds"`

	// PolicyDebounceMillis is the per-workspace debounce window for rule
	// reloads triggered by change notifications.
	PolicyDebounceMillis int `yaml:"policy_debounce_millis"`
}

// LLMConfig holds retry, timeout, and budget settings for model calls.
type LLMConfig struct {
	// MaxAttempts is the total number of tries per call (first + retries).
	MaxAttempts int `yaml:"max_attempts"`

	// BackoffBaseMillis is the base for exponential backoff between retries.
	BackoffBaseMillis int `yaml:"backoff_base_millis"`

	// RequestTimeoutSeconds bounds a single backend round trip.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`

	// BaseURL and Model configure the default HTTP backend. The per-workspace
	// API key comes from the key store, never from this file.
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`

	// DefaultBudgetCents applies to workspaces without an explicit
	// llm_budget_limit_cents setting.
	DefaultBudgetCents int64 `yaml:"default_budget_cents"`

	// CallEstimateCents is reserved per call before the real cost is known.
	CallEstimateCents int64 `yaml:"call_estimate_cents"`

	// BudgetCacheTTLSeconds is how long a workspace's budget limit is cached.
	BudgetCacheTTLSeconds int `yaml:"budget_cache_ttl_seconds"`

	// KeyEncryptionKeyEnv names the environment variable holding the 32-byte
	// base64 key that decrypts workspace LLM keys.
	KeyEncryptionKeyEnv string `yaml:"key_encryption_key_env"`
}

// DeliberationConfig holds orchestration settings for analysis sessions.
type DeliberationConfig struct {
	// AgentTimeoutSeconds is the shared deadline for one phase's fan-out.
	AgentTimeoutSeconds int `yaml:"agent_timeout_seconds"`

	// DefaultRounds is used when a workflow does not specify debate rounds.
	DefaultRounds int `yaml:"default_rounds"`

	// MaxConcurrentSessions caps simultaneously running sessions per replica.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`
}

// RetentionConfig holds the background retention sweeper settings.
type RetentionConfig struct {
	// SweepIntervalSeconds is how often the sweeper runs.
	SweepIntervalSeconds int `yaml:"sweep_interval_seconds"`

	// AbandonAfterSeconds is how long a session may sit non-terminal before
	// it is considered orphaned by a dead replica and failed.
	AbandonAfterSeconds int `yaml:"abandon_after_seconds"`
}

// SlackConfig holds verdict notification settings. An empty channel disables
// notifications entirely.
type SlackConfig struct {
	// TokenEnv names the environment variable holding the bot token. The
	// token itself never appears in this file.
	TokenEnv string `yaml:"token_env"`

	// Channel is the Slack channel ID that receives verdict notifications.
	Channel string `yaml:"channel"`

	// DashboardURL is the base URL linked from notification buttons.
	DashboardURL string `yaml:"dashboard_url"`
}

// WorkerConfig holds the background worker pool settings.
type WorkerConfig struct {
	// PoolSize is the number of goroutines serving fire-and-forget jobs
	// (audit writes, broadcasts, scheduled wipes).
	PoolSize int `yaml:"pool_size"`

	// QueueSize is the job channel capacity. Submits beyond it are dropped
	// with a warning rather than blocking request handlers.
	QueueSize int `yaml:"queue_size"`
}
