package scheduler

import (
	"context"
	"log/slog"
	"time"

	"contact_news/internal/domain"
)

// Refresher runs one batch refresh of stale high-priority contacts.
type Refresher interface {
	RunBatchRefresh(ctx context.Context) ([]domain.BatchResult, error)
}

type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(refresher Refresher, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher:  refresher,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start runs a refresh immediately and then once per interval until ctx is
// done. Runs never overlap: a slow run delays the next tick.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	runCtx := ctx
	if s.runTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.runTimeout)
		defer cancel()
	}

	start := time.Now()
	results, err := s.refresher.RunBatchRefresh(runCtx)
	if err != nil {
		s.logger.Error("batch refresh failed", "error", err, "processed", len(results))
		return
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	s.logger.Info("batch refresh finished",
		"processed", len(results),
		"failed", failed,
		"duration", time.Since(start),
	)
}
