package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"church_backend/internal/domain"
)

// SermonSyncService drives one video sync run: fetch ids, fetch details,
// normalize, replace the stored batch and recompute the featured flag.
type SermonSyncService struct {
	source    VideoSource
	sermons   SermonStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewSermonSyncService(
	source VideoSource,
	sermons SermonStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *SermonSyncService {
	return &SermonSyncService{
		source:    source,
		sermons:   sermons,
		txManager: txManager,
		logger:    logger.With("sync", "sermons"),
	}
}

func (s *SermonSyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting sermon sync")

	ids, err := s.source.FetchRecentVideoIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch video ids: %w", err)
	}

	// An empty channel is not an error, and the stored batch is left alone
	// so the site keeps showing the previous sync.
	if len(ids) == 0 {
		s.logger.Info("no videos found, keeping existing sermons")
		return &domain.SyncResult{
			Success:   true,
			Message:   "no videos found for channel",
			Count:     0,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	sermons, skipped, err := s.source.FetchSermons(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch sermons: %w", err)
	}

	if len(sermons) == 0 {
		s.logger.Warn("no valid sermons after normalization", "skipped", skipped)
		return &domain.SyncResult{
			Success:   false,
			Message:   "no valid sermons after normalization",
			Skipped:   skipped,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	featured := featuredVideoID(sermons)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.sermons.ReplaceAll(txCtx, sermons); err != nil {
			return fmt.Errorf("replace sermons: %w", err)
		}
		if err := s.sermons.SetFeatured(txCtx, featured); err != nil {
			return fmt.Errorf("set featured: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persist sermons: %w", err)
	}

	result := &domain.SyncResult{
		Success:   true,
		Message:   fmt.Sprintf("synced %d sermons (%d skipped)", len(sermons), skipped),
		Count:     len(sermons),
		Skipped:   skipped,
		Timestamp: time.Now().UTC(),
		Duration:  time.Since(startTime),
	}

	s.logger.Info("sermon sync completed",
		"count", result.Count,
		"skipped", result.Skipped,
		"featured", featured,
		"duration", result.Duration,
	)

	return result, nil
}

// featuredVideoID picks the sermon with the most recent published timestamp.
func featuredVideoID(sermons []domain.Sermon) string {
	latest := sermons[0]
	for _, sermon := range sermons[1:] {
		if sermon.PublishedAt.After(latest.PublishedAt) {
			latest = sermon
		}
	}
	return latest.ExternalVideoID
}
