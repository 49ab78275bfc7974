package scheduler

import (
	"context"
	"log/slog"
	"time"

	"church_backend/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

// Scheduler runs every registered syncer on a fixed interval. Sync is also
// triggerable over HTTP; this loop just keeps the site fresh unattended.
type Scheduler struct {
	syncers  map[string]Syncer
	interval time.Duration
	logger   *slog.Logger
}

func New(syncers map[string]Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:  syncers,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs every syncer sequentially with a per-run timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for name, syncer := range s.syncers {
		syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)

		result, err := syncer.Sync(syncCtx)
		if err != nil {
			s.logger.Error("sync failed", "domain", name, "error", err)
		} else if !result.Success {
			s.logger.Warn("sync unsuccessful", "domain", name, "message", result.Message)
		}

		cancel()
	}
}
