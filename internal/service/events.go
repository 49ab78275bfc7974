package service

import (
	"context"
	"log/slog"

	"church_backend/internal/domain"
)

// EventService serves the event read path. An empty or unreachable store
// substitutes the static fallback list so the page never renders empty.
type EventService struct {
	events EventStore
	logger *slog.Logger
}

func NewEventService(events EventStore, logger *slog.Logger) *EventService {
	return &EventService{events: events, logger: logger}
}

func (s *EventService) List(ctx context.Context, category string) ([]domain.Event, error) {
	events, err := s.events.List(ctx, category)
	if err != nil {
		s.logger.Error("event store unavailable, serving fallback", "error", err)
		return filterFallback(category), nil
	}

	if len(events) == 0 && category == "" {
		return domain.FallbackEvents(), nil
	}

	return events, nil
}

func filterFallback(category string) []domain.Event {
	fallback := domain.FallbackEvents()
	if category == "" {
		return fallback
	}

	filtered := make([]domain.Event, 0, len(fallback))
	for _, event := range fallback {
		if event.Category == category {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
