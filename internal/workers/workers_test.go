package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/internal/tokens"
	"workhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReconciler struct {
	calls  atomic.Int32
	result *dto.ReconcileResult
	err    error
}

func (f *fakeReconciler) Reconcile(_ *gorm.DB) (*dto.ReconcileResult, error) {
	f.calls.Add(1)
	return f.result, f.err
}

func TestRatingWorkerRunOnce(t *testing.T) {
	db := helpers.NewTestDB(t)
	rec := &fakeReconciler{result: &dto.ReconcileResult{ProfilesChecked: 3, ProfilesFixed: 1}}

	w := NewRatingWorker(db, rec, time.Hour)
	require.NoError(t, w.RunOnce(context.Background()))
	assert.EqualValues(t, 1, rec.calls.Load())

	rec.err = errors.New("db is gone")
	assert.Error(t, w.RunOnce(context.Background()))
}

func TestTokenCleanupWorkerDeletesExpired(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewRevokedTokenRepository()
	store := tokens.NewSQLStore(db, repo)

	now := time.Now().UTC()
	require.NoError(t, repo.Create(db, &models.RevokedToken{TokenID: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(db, &models.RevokedToken{TokenID: "live", ExpiresAt: now.Add(time.Hour)}))

	w := NewTokenCleanupWorker(store, time.Hour)
	require.NoError(t, w.RunOnce(context.Background()))

	var left []models.RevokedToken
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "live", left[0].TokenID)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ticks atomic.Int32
	done := make(chan struct{})

	go func() {
		run(ctx, "test", 5*time.Millisecond, func(context.Context) error {
			ticks.Add(1)
			return nil
		})
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestRunDisabled(t *testing.T) {
	called := false
	run(context.Background(), "disabled", 0, func(context.Context) error {
		called = true
		return nil
	})
	assert.False(t, called)
}

type fakeNotificationCleaner struct {
	retention time.Duration
	deleted   int64
}

func (f *fakeNotificationCleaner) Cleanup(_ *gorm.DB, retention time.Duration) (int64, error) {
	f.retention = retention
	return f.deleted, nil
}

func TestNotificationCleanupWorkerRunOnce(t *testing.T) {
	db := helpers.NewTestDB(t)
	cleaner := &fakeNotificationCleaner{deleted: 4}

	w := NewNotificationCleanupWorker(db, cleaner, time.Hour, 30*24*time.Hour)
	require.NoError(t, w.RunOnce(context.Background()))
	assert.Equal(t, 30*24*time.Hour, cleaner.retention)
}
