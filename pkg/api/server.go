// Package api implements the authenticated HTTP gateway: the fixed
// middleware chain, bearer authentication against the key cache, event
// ingestion with inline policy evaluation, and deliberation hand-off.
package api

import (
	"context"
	"log/slog"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmshield/swarmshield/pkg/cache"
	"github.com/swarmshield/swarmshield/pkg/config"
	"github.com/swarmshield/swarmshield/pkg/deliberation"
	"github.com/swarmshield/swarmshield/pkg/policy"
	"github.com/swarmshield/swarmshield/pkg/services"
	"github.com/swarmshield/swarmshield/pkg/worker"
)

// Deps carries the server's collaborators.
type Deps struct {
	APIKeys    identitySource
	Workspaces workspaceSource
	Health     healthSource
	Agents     *services.AgentService
	Events     *services.EventService
	Violations *services.ViolationService
	Audit      *services.AuditService
	Workflows  *services.WorkflowService
	Policies   *cache.PolicyCache
	Engine     *policy.Engine
	Registry   *deliberation.Registry
	Pool       *worker.Pool
}

// Server is the HTTP gateway.
type Server struct {
	apiKeys    identitySource
	workspaces workspaceSource
	health     healthSource
	agents     *services.AgentService
	events     *services.EventService
	violations *services.ViolationService
	audit      *services.AuditService
	workflows  *services.WorkflowService
	policies   *cache.PolicyCache
	engine     *policy.Engine
	registry   *deliberation.Registry
	pool       *worker.Pool
	limiter    *ipLimiter
	cfg        *config.ServerConfig
}

// NewServer creates the gateway server.
func NewServer(deps Deps, cfg *config.ServerConfig) *Server {
	return &Server{
		apiKeys:    deps.APIKeys,
		workspaces: deps.Workspaces,
		health:     deps.Health,
		agents:     deps.Agents,
		events:     deps.Events,
		violations: deps.Violations,
		audit:      deps.Audit,
		workflows:  deps.Workflows,
		policies:   deps.Policies,
		engine:     deps.Engine,
		registry:   deps.Registry,
		pool:       deps.Pool,
		limiter:    newIPLimiter(cfg.RateLimitPerMinute, 60),
		cfg:        cfg,
	}
}

// Register installs the middleware chain and routes on e. The order is
// fixed: security headers, CORS, content-type gate, rate limit, then the
// handlers (which perform auth themselves).
func (s *Server) Register(e *echo.Echo) {
	e.Use(securityHeaders())
	e.Use(corsMiddleware(s.cfg.AllowedOrigins, s.cfg.CORSMaxAgeSeconds))
	e.Use(contentTypeGate())
	e.Use(rateLimitMiddleware(s.limiter))

	e.GET("/api/v1/health", s.healthHandler)
	e.POST("/api/v1/events", s.createEventHandler)
	e.GET("/api/v1/events/:id", s.getEventHandler)
}

// Start launches the background pieces the server owns.
func (s *Server) Start(ctx context.Context) {
	s.limiter.Start(ctx)
}

// Stop halts them.
func (s *Server) Stop() {
	s.limiter.Stop()
}

// auditAsync files an audit entry through the worker pool; the request never
// waits for it.
func (s *Server) auditAsync(input services.AuditInput) {
	if s.pool == nil || s.audit == nil {
		return
	}
	submitted := s.pool.Submit("audit."+input.Action, func(ctx context.Context) {
		if _, err := s.audit.Record(ctx, input); err != nil {
			slog.Warn("Async audit write failed", "action", input.Action, "error", err)
		}
	})
	if !submitted {
		slog.Warn("Audit entry dropped, worker queue full", "action", input.Action)
	}
}
