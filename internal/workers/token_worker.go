package workers

import (
	"context"
	"time"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/tokens"
)

// TokenCleanupWorker удаляет просроченные записи об отозванных токенах
type TokenCleanupWorker struct {
	cleaner  tokens.Cleaner
	interval time.Duration
}

func NewTokenCleanupWorker(cleaner tokens.Cleaner, interval time.Duration) *TokenCleanupWorker {
	return &TokenCleanupWorker{cleaner: cleaner, interval: interval}
}

func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go run(ctx, "token_cleanup", w.interval, w.RunOnce)
}

func (w *TokenCleanupWorker) RunOnce(ctx context.Context) error {
	deleted, err := w.cleaner.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Info("Expired revoked tokens deleted", "count", deleted)
	}
	return nil
}
