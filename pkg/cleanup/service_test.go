package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmshield/swarmshield/ent"
	"github.com/swarmshield/swarmshield/pkg/config"
)

type fakePruner struct {
	mu        sync.Mutex
	abandoned int
	overdue   []*ent.AnalysisSession
	sweeps    int
}

func (f *fakePruner) MarkAbandoned(ctx context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sweeps++
	return f.abandoned, nil
}

func (f *fakePruner) OverdueWipes(ctx context.Context, now time.Time) ([]*ent.AnalysisSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overdue, nil
}

func (f *fakePruner) sweepCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sweeps
}

type fakeWiper struct {
	mu    sync.Mutex
	wiped []uuid.UUID
}

func (f *fakeWiper) ExecuteWipe(ctx context.Context, workspaceID, sessionID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wiped = append(f.wiped, sessionID)
	return nil
}

func (f *fakeWiper) wipedIDs() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.wiped...)
}

func TestService_SweepsOnStart(t *testing.T) {
	sessionID := uuid.New()
	pruner := &fakePruner{
		abandoned: 2,
		overdue: []*ent.AnalysisSession{
			{ID: sessionID, WorkspaceID: uuid.New()},
		},
	}
	wiper := &fakeWiper{}

	svc := NewService(config.DefaultRetentionConfig(), pruner, wiper)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return pruner.sweepCount() >= 1
	}, time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(wiper.wipedIDs()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, sessionID, wiper.wipedIDs()[0])
}

func TestService_StopIsIdempotent(t *testing.T) {
	svc := NewService(config.DefaultRetentionConfig(), &fakePruner{}, &fakeWiper{})

	// Stop before Start is a no-op.
	svc.Stop()

	svc.Start(context.Background())
	svc.Stop()
}

func TestService_DoubleStartIsIgnored(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(config.DefaultRetentionConfig(), pruner, &fakeWiper{})

	svc.Start(context.Background())
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return pruner.sweepCount() >= 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, pruner.sweepCount())
}
