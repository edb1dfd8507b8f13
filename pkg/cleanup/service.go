// Package cleanup runs the background retention sweeper.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/pkg/config"
)

type sessionPruner interface {
	MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error)
	OverdueWipes(ctx context.Context, now time.Time) ([]*ent.AnalysisSession, error)
}

type wiper interface {
	ExecuteWipe(ctx context.Context, workspaceID, sessionID uuid.UUID) error
}

// Service periodically repairs state that in-process timers cannot cover
// across replica crashes:
//   - Fails sessions left non-terminal by a dead replica
//   - Executes ephemeral-session wipes whose scheduled timer never fired
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config   *config.RetentionConfig
	sessions sessionPruner
	wiper    wiper

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention sweeper.
func NewService(cfg *config.RetentionConfig, sessions sessionPruner, wiper wiper) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		wiper:    wiper,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweeper started",
		"sweep_interval_seconds", s.config.SweepIntervalSeconds,
		"abandon_after_seconds", s.config.AbandonAfterSeconds)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(time.Duration(s.config.SweepIntervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	s.failAbandonedSessions(ctx)
	s.runOverdueWipes(ctx)
}

func (s *Service) failAbandonedSessions(ctx context.Context) {
	cutoff := time.Now().Add(-time.Duration(s.config.AbandonAfterSeconds) * time.Second)
	count, err := s.sessions.MarkAbandoned(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: abandoned session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: failed abandoned sessions", "count", count)
	}
}

func (s *Service) runOverdueWipes(ctx context.Context) {
	sessions, err := s.sessions.OverdueWipes(ctx, time.Now())
	if err != nil {
		slog.Error("Retention: overdue wipe lookup failed", "error", err)
		return
	}
	for _, session := range sessions {
		if err := s.wiper.ExecuteWipe(ctx, session.WorkspaceID, session.ID); err != nil {
			slog.Error("Retention: overdue wipe failed",
				"session_id", session.ID,
				"workspace_id", session.WorkspaceID,
				"error", err)
			continue
		}
		slog.Info("Retention: executed overdue wipe", "session_id", session.ID)
	}
}
