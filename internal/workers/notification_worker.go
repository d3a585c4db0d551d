package workers

import (
	"context"
	"time"

	"workhub_backend/internal/logger"

	"gorm.io/gorm"
)

type NotificationCleaner interface {
	Cleanup(db *gorm.DB, retention time.Duration) (int64, error)
}

// NotificationCleanupWorker удаляет прочитанные уведомления старше retention
type NotificationCleanupWorker struct {
	db        *gorm.DB
	cleaner   NotificationCleaner
	interval  time.Duration
	retention time.Duration
}

func NewNotificationCleanupWorker(db *gorm.DB, cleaner NotificationCleaner, interval, retention time.Duration) *NotificationCleanupWorker {
	return &NotificationCleanupWorker{db: db, cleaner: cleaner, interval: interval, retention: retention}
}

func (w *NotificationCleanupWorker) Start(ctx context.Context) {
	if w.retention <= 0 {
		logger.Info("Worker disabled", "worker", "notification_cleanup")
		return
	}
	go run(ctx, "notification_cleanup", w.interval, w.RunOnce)
}

func (w *NotificationCleanupWorker) RunOnce(ctx context.Context) error {
	deleted, err := w.cleaner.Cleanup(w.db.WithContext(ctx), w.retention)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Info("Old notifications deleted", "count", deleted)
	}
	return nil
}
