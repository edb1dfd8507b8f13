package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// VerdictNotification contains data for a deliberation verdict notification.
type VerdictNotification struct {
	SessionID        string
	EventID          string
	EventType        string
	Decision         string // allow, flag, block, escalate
	Confidence       float64
	Reasoning        string
	ConsensusReached bool
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyVerdict sends a verdict notification for decisions worth a human
// look: block, escalate, and any verdict without consensus.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyVerdict(ctx context.Context, input VerdictNotification) {
	if s == nil {
		return
	}

	if input.Decision != "block" && input.Decision != "escalate" && input.ConsensusReached {
		return
	}

	blocks := BuildVerdictMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack verdict notification",
			"session_id", input.SessionID,
			"decision", input.Decision,
			"error", err)
	}
}
