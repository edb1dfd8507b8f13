// SwarmShield gateway server. Authenticates agent traffic, evaluates policy
// inline, and runs multi-agent deliberation over flagged events.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/joho/godotenv"

	"github.com/swarmshield/swarmshield/pkg/api"
	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/cleanup"
	"github.com/swarmshield/swarmshield/pkg/config"
	"github.com/swarmshield/swarmshield/pkg/crypto"
	"github.com/swarmshield/swarmshield/pkg/database"
	"github.com/swarmshield/swarmshield/pkg/deliberation"
	"github.com/swarmshield/swarmshield/pkg/events"
	"github.com/swarmshield/swarmshield/pkg/ghost"
	"github.com/swarmshield/swarmshield/pkg/llm"
	"github.com/swarmshield/swarmshield/pkg/policy"
	"github.com/swarmshield/swarmshield/pkg/services"
	"github.com/swarmshield/swarmshield/pkg/slack"
	"github.com/swarmshield/swarmshield/pkg/version"
	"github.com/swarmshield/swarmshield/pkg/worker"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadKeybox reads the 32-byte base64 key-encryption key from the
// environment variable the config names.
func loadKeybox(envName string) (*crypto.Keybox, error) {
	raw := os.Getenv(envName)
	if raw == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	return crypto.NewKeybox(key)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting SwarmShield",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Key encryption key. Without it, per-workspace LLM keys cannot be
	// decrypted and deliberation cannot call out.
	keybox, err := loadKeybox(cfg.LLM.KeyEncryptionKeyEnv)
	if err != nil {
		slog.Error("Invalid key encryption key", "env", cfg.LLM.KeyEncryptionKeyEnv, "error", err)
		os.Exit(1)
	}
	if keybox == nil {
		slog.Error("Key encryption key is required", "env", cfg.LLM.KeyEncryptionKeyEnv)
		os.Exit(1)
	}

	// 4. PubSub: one publisher on the pool, one dedicated LISTEN connection.
	publisher := events.NewPublisher(dbClient.DB())
	listener := events.NewListener(dbConfig.DSN())

	// 5. Services
	workspaceService := services.NewWorkspaceService(dbClient.Client, keybox, publisher)
	agentService := services.NewAgentService(dbClient.Client, publisher)
	eventService := services.NewEventService(dbClient.Client)
	violationService := services.NewViolationService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	slog.Info("Services initialized")

	// 6. Caches, each subscribed to its invalidation channels before the
	// listener connects so no notification is missed.
	apiKeyCache := cache.NewAPIKeyCache(dbClient.Client,
		time.Duration(cfg.Cache.APIKeyNegativeTTLSeconds)*time.Second)
	policyCache := cache.NewPolicyCache(dbClient.Client,
		time.Duration(cfg.Cache.PolicyDebounceMillis)*time.Millisecond)
	authCache := cache.NewAuthCache(
		workspaceService.MemberPermissions,
		time.Duration(cfg.Cache.AuthTTLSeconds)*time.Second)
	llmKeyStore := cache.NewLLMKeyStore(dbClient.Client, keybox)
	for name, register := range map[string]func(cache.Subscriber) error{
		"api_key": apiKeyCache.RegisterInvalidation,
		"policy":  policyCache.RegisterInvalidation,
		"auth":    authCache.RegisterInvalidation,
		"llm_key": llmKeyStore.RegisterInvalidation,
	} {
		if err := register(listener); err != nil {
			slog.Error("Failed to register cache invalidation", "cache", name, "error", err)
			os.Exit(1)
		}
	}
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start PubSub listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	slog.Info("Caches subscribed", "count", 4)

	// 7. Worker pool for fire-and-forget side effects.
	pool := worker.NewPool("gateway", cfg.Worker.PoolSize, cfg.Worker.QueueSize)
	pool.Start(ctx)

	// 8. Policy engine with its rate counters.
	counters := policy.NewCounters()
	counters.Start(ctx)
	defer counters.Stop()
	engine := policy.NewEngine(counters)

	// 9. LLM client over the chat-completions backend, budget enforced
	// through the workspaces table.
	httpClient := &http.Client{Timeout: time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second}
	ledger := llm.NewPGLedger(dbClient.DB(), workspaceService, cfg.LLM.DefaultBudgetCents)
	llmClient := llm.NewClient(
		llm.NewHTTPBackend(httpClient, cfg.LLM.BaseURL),
		llmKeyStore,
		ledger,
		llm.Options{
			MaxAttempts:  cfg.LLM.MaxAttempts,
			BackoffBase:  time.Duration(cfg.LLM.BackoffBaseMillis) * time.Millisecond,
			CallEstimate: cfg.LLM.CallEstimateCents,
			RequestLimit: time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
		},
	)

	// 10. Ghost Protocol wipe engine and the deliberation registry. The
	// Slack notifier is nil-safe and stays nil unless a channel is set.
	notifier := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv(cfg.Slack.TokenEnv),
		Channel:      cfg.Slack.Channel,
		DashboardURL: cfg.Slack.DashboardURL,
	})
	wipeEngine := ghost.NewEngine(dbClient.Client, auditService, publisher)
	registry := deliberation.NewRegistry(
		deliberation.Dependencies{
			Sessions:  sessionService,
			Events:    eventService,
			Audit:     auditService,
			LLM:       llmClient,
			Publisher: publisher,
			Pool:      pool,
			Wiper:     wipeEngine,
			Notifier:  notifier,
		},
		deliberation.Options{
			Timeout:       time.Duration(cfg.Deliberation.AgentTimeoutSeconds) * time.Second,
			DefaultRounds: cfg.Deliberation.DefaultRounds,
			DefaultModel:  cfg.LLM.Model,
		},
		cfg.Deliberation.MaxConcurrentSessions,
	)
	registry.Start(ctx)

	// 11. Retention sweeper: repairs sessions and wipes left behind by
	// crashed replicas.
	sweeper := cleanup.NewService(cfg.Retention, sessionService, wipeEngine)
	sweeper.Start(ctx)

	// 12. HTTP gateway
	server := api.NewServer(api.Deps{
		APIKeys:    apiKeyCache,
		Workspaces: workspaceService,
		Health:     dbClient,
		Agents:     agentService,
		Events:     eventService,
		Violations: violationService,
		Audit:      auditService,
		Workflows:  workflowService,
		Policies:   policyCache,
		Engine:     engine,
		Registry:   registry,
		Pool:       pool,
	}, cfg.Server)
	server.Start(ctx)

	e := echo.New()
	server.Register(e)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: e,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("SwarmShield started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop accepting requests, drain deliberations, then
	// let the pool flush its queued side effects.
	shutdownCtx, cancel := context.WithTimeout(ctx,
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	server.Stop()

	done := make(chan struct{})
	go func() {
		registry.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Deliberation registry drained")
	case <-shutdownCtx.Done():
		slog.Warn("Deliberation drain timeout exceeded, sessions abandoned")
	}

	sweeper.Stop()
	pool.Stop()
	policyCache.Stop()
	slog.Info("Shutdown complete")
}
