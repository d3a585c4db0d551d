package workers

import (
	"context"
	"time"

	"workhub_backend/internal/logger"
)

// run выполняет op каждые interval, пока не отменен ctx. interval <= 0 - воркер выключен.
func run(ctx context.Context, name string, interval time.Duration, op func(ctx context.Context) error) {
	if interval <= 0 {
		logger.Info("Worker disabled", "worker", name)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Worker started", "worker", name, "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker stopped", "worker", name)
			return
		case <-ticker.C:
			start := time.Now()
			err := op(ctx)
			logger.WorkerLog(name, "tick", time.Since(start), err)
		}
	}
}
