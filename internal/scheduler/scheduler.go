package scheduler

import (
	"context"
	"time"

	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/models"
)

// CycleRunner is the single entry point the scheduler drives.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*models.ReconciliationReport, error)
}

// Scheduler triggers a reconciliation cycle on a fixed interval. It is the
// only producer of automatic updates; manual edits arrive independently over
// HTTP.
type Scheduler struct {
	runner   CycleRunner
	interval time.Duration
}

func New(runner CycleRunner, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled, running one cycle per tick. Callers
// run it in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	logger.Log.Infow("rate refresh scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("rate refresh scheduler stopped")
			return
		case <-ticker.C:
			report, err := s.runner.RunCycle(ctx)
			if err != nil {
				logger.Log.Errorw("scheduled reconciliation failed", "error", err)
				continue
			}
			logger.Log.Infow("scheduled reconciliation done",
				"updated", report.UpdatedCount,
				"skipped", report.SkippedCount,
			)
		}
	}
}
