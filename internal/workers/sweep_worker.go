package workers

import (
	"context"
	"time"

	"gastropass_backend/internal/logger"
	"gastropass_backend/internal/services"
)

// SweepWorker runs the notification sweep on a fixed interval. The same
// sweep is also reachable through the admin endpoint, so the worker is just
// a scheduler around it.
type SweepWorker struct {
	notificationService services.NotificationService
	interval            time.Duration
}

func NewSweepWorker(notificationService services.NotificationService, interval time.Duration) *SweepWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SweepWorker{
		notificationService: notificationService,
		interval:            interval,
	}
}

func (w *SweepWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SweepWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Sweep worker stopped")
			return
		case <-ticker.C:
			result, err := w.notificationService.RunSweep(time.Now())
			logger.WorkerLog("sweep", "notification sweep", err)
			if err == nil && result.Count > 0 {
				logger.Info("Sweep produced notifications", "count", result.Count)
			}
		}
	}
}
