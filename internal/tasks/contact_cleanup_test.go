package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formgate/internal/logging"
	"formgate/internal/models"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "formgate-tasks-test")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	if err := logging.InitLogger(&logging.Config{
		File:       filepath.Join(dir, "test.log"),
		MaxSize:    10,
		MaxBackups: 1,
		MaxAge:     1,
	}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

// cleanupRepo records DeleteOlderThan calls
type cleanupRepo struct {
	mu      sync.Mutex
	cutoffs []time.Time
	deleted int
	err     error
}

func (r *cleanupRepo) Create(ctx context.Context, input models.CreateContactInput) (*models.Contact, error) {
	return nil, errors.New("not implemented")
}

func (r *cleanupRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	return nil, errors.New("not implemented")
}

func (r *cleanupRepo) List(ctx context.Context, offset, limit int) ([]*models.Contact, error) {
	return nil, errors.New("not implemented")
}

func (r *cleanupRepo) Count(ctx context.Context) (int64, error) {
	return 0, errors.New("not implemented")
}

func (r *cleanupRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, cutoff)
	return r.deleted, r.err
}

func (r *cleanupRepo) calls() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Time(nil), r.cutoffs...)
}

func TestRunOnceUsesRetentionCutoff(t *testing.T) {
	repo := &cleanupRepo{deleted: 3}
	cc := NewContactCleanup(repo, 30)

	cc.runOnce(context.Background(), logging.GetLogger())

	calls := repo.calls()
	require.Len(t, calls, 1)

	want := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, want, calls[0], 5*time.Second)
}

func TestRunOnceLogsAndContinuesOnError(t *testing.T) {
	repo := &cleanupRepo{err: errors.New("db unavailable")}
	cc := NewContactCleanup(repo, 7)

	// Must not panic; the next tick will retry
	cc.runOnce(context.Background(), logging.GetLogger())

	require.Len(t, repo.calls(), 1)
}

func TestStartRunsImmediatelyAndStopsOnCancel(t *testing.T) {
	repo := &cleanupRepo{}
	cc := NewContactCleanup(repo, 1)
	cc.interval = time.Hour // keep the ticker out of the test

	ctx, cancel := context.WithCancel(context.Background())
	cc.Start(ctx)

	require.Eventually(t, func() bool {
		return len(repo.calls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, repo.calls(), 1)
}
