package workers

import (
	"context"
	"time"

	"workhub_backend/internal/logger"
	"workhub_backend/internal/services/dto"

	"gorm.io/gorm"
)

// Reconciler пересчитывает агрегаты рейтинга (services.ReviewService)
type Reconciler interface {
	Reconcile(db *gorm.DB) (*dto.ReconcileResult, error)
}

// RatingWorker периодически сверяет рейтинги исполнителей с таблицей отзывов
type RatingWorker struct {
	db         *gorm.DB
	reconciler Reconciler
	interval   time.Duration
}

func NewRatingWorker(db *gorm.DB, reconciler Reconciler, interval time.Duration) *RatingWorker {
	return &RatingWorker{db: db, reconciler: reconciler, interval: interval}
}

// Start запускает сверку по тикеру до отмены ctx
func (w *RatingWorker) Start(ctx context.Context) {
	go run(ctx, "rating_reconcile", w.interval, w.RunOnce)
}

func (w *RatingWorker) RunOnce(ctx context.Context) error {
	result, err := w.reconciler.Reconcile(w.db.WithContext(ctx))
	if err != nil {
		return err
	}
	if result.ProfilesFixed > 0 {
		logger.Warn("Rating aggregates repaired",
			"checked", result.ProfilesChecked,
			"fixed", result.ProfilesFixed,
		)
	}
	return nil
}
