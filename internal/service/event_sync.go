package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"church_backend/internal/domain"
)

// EventSyncService drives one calendar sync run: fetch the forward window,
// normalize and replace the stored batch.
type EventSyncService struct {
	source    CalendarSource
	events    EventStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewEventSyncService(
	source CalendarSource,
	events EventStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *EventSyncService {
	return &EventSyncService{
		source:    source,
		events:    events,
		txManager: txManager,
		logger:    logger.With("sync", "events"),
	}
}

func (s *EventSyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	startTime := time.Now()
	s.logger.Info("starting event sync")

	events, err := s.source.FetchUpcomingEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	if len(events) == 0 {
		s.logger.Info("no upcoming events in window, keeping existing events")
		return &domain.SyncResult{
			Success:   true,
			Message:   "no upcoming events found",
			Count:     0,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.events.ReplaceAll(txCtx, events)
	})
	if err != nil {
		return nil, fmt.Errorf("persist events: %w", err)
	}

	result := &domain.SyncResult{
		Success:   true,
		Message:   fmt.Sprintf("synced %d events", len(events)),
		Count:     len(events),
		Timestamp: time.Now().UTC(),
		Duration:  time.Since(startTime),
	}

	s.logger.Info("event sync completed",
		"count", result.Count,
		"duration", result.Duration,
	)

	return result, nil
}
