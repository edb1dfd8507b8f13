package llm

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ledger enforces the per-workspace spend budget. Reserve must be atomic
// across replicas: two concurrent reservations may never both fit a budget
// that only has room for one.
type Ledger interface {
	// Reserve adds estimate to the workspace spend and reports whether the
	// result still fits the budget. On false the estimate has already been
	// rolled back.
	Reserve(ctx context.Context, workspaceID uuid.UUID, estimate int64) (bool, error)

	// Release returns an unused reservation after a failed call.
	Release(ctx context.Context, workspaceID uuid.UUID, estimate int64)

	// Settle replaces the estimate with the measured cost and records token
	// usage.
	Settle(ctx context.Context, workspaceID uuid.UUID, estimate, actual, tokens int64)
}

// LimitSource resolves a workspace's budget limit. Satisfied by
// *services.WorkspaceService.
type LimitSource interface {
	BudgetCents(ctx context.Context, id uuid.UUID, fallback int64) (int64, error)
}

// limitCacheTTL bounds how stale a cached budget limit may be. Limits change
// rarely; spend changes constantly and is never cached.
const limitCacheTTL = 5 * time.Minute

type cachedLimit struct {
	limit    int64
	cachedAt time.Time
}

// PGLedger tracks spend in the workspaces row itself, using single-statement
// increment-and-return updates so replicas coordinate through the database.
type PGLedger struct {
	db           *sql.DB
	limits       LimitSource
	defaultLimit int64

	mu         sync.Mutex
	limitCache map[uuid.UUID]cachedLimit
}

// NewPGLedger creates the ledger.
func NewPGLedger(db *sql.DB, limits LimitSource, defaultLimit int64) *PGLedger {
	return &PGLedger{
		db:           db,
		limits:       limits,
		defaultLimit: defaultLimit,
		limitCache:   make(map[uuid.UUID]cachedLimit),
	}
}

// Reserve increments spend and compares the returned total to the limit.
// Increment first, inspect after: checking before incrementing would let two
// concurrent calls both pass the check.
func (l *PGLedger) Reserve(ctx context.Context, workspaceID uuid.UUID, estimate int64) (bool, error) {
	limit, err := l.limit(ctx, workspaceID)
	if err != nil {
		return false, err
	}

	var newSpend int64
	err = l.db.QueryRowContext(ctx,
		`UPDATE workspaces SET llm_spend_cents = llm_spend_cents + $1 WHERE id = $2 RETURNING llm_spend_cents`,
		estimate, workspaceID,
	).Scan(&newSpend)
	if err != nil {
		return false, fmt.Errorf("failed to reserve budget: %w", err)
	}

	if newSpend > limit {
		l.adjust(ctx, workspaceID, -estimate, 0)
		return false, nil
	}
	return true, nil
}

// Release hands back a reservation whose call failed.
func (l *PGLedger) Release(ctx context.Context, workspaceID uuid.UUID, estimate int64) {
	l.adjust(ctx, workspaceID, -estimate, 0)
}

// Settle swaps the estimate for the measured cost and records tokens.
func (l *PGLedger) Settle(ctx context.Context, workspaceID uuid.UUID, estimate, actual, tokens int64) {
	l.adjust(ctx, workspaceID, actual-estimate, tokens)
}

// adjust applies a spend delta and token count. Failures are logged, not
// returned: the call itself already succeeded or failed on its own terms,
// and a missed adjustment only skews accounting until the next settle.
func (l *PGLedger) adjust(ctx context.Context, workspaceID uuid.UUID, spendDelta, tokens int64) {
	_, err := l.db.ExecContext(ctx,
		`UPDATE workspaces
		 SET llm_spend_cents = GREATEST(llm_spend_cents + $1, 0),
		     llm_tokens_used = llm_tokens_used + $2
		 WHERE id = $3`,
		spendDelta, tokens, workspaceID,
	)
	if err != nil {
		slog.Error("Budget adjustment failed",
			"workspace_id", workspaceID,
			"spend_delta", spendDelta,
			"error", err)
	}
}

// limit returns the workspace's budget limit, cached for limitCacheTTL.
func (l *PGLedger) limit(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	l.mu.Lock()
	cached, ok := l.limitCache[workspaceID]
	l.mu.Unlock()
	if ok && time.Since(cached.cachedAt) <= limitCacheTTL {
		return cached.limit, nil
	}

	limit, err := l.limits.BudgetCents(ctx, workspaceID, l.defaultLimit)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve budget limit: %w", err)
	}

	l.mu.Lock()
	l.limitCache[workspaceID] = cachedLimit{limit: limit, cachedAt: time.Now()}
	l.mu.Unlock()
	return limit, nil
}
