package gcal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"church_backend/internal/domain"
	"church_backend/internal/ratelimit"
)

// Config holds Google Calendar source configuration.
type Config struct {
	APIKey     string
	CalendarID string
	WindowDays int
	Timeout    time.Duration
}

// Source fetches upcoming occurrences from a public Google Calendar.
type Source struct {
	service    *gcal.Service
	calendarID string
	windowDays int
	timeout    time.Duration
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

// New creates a new calendar source.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.APIKey == "" || cfg.CalendarID == "" {
		return nil, fmt.Errorf("missing calendar api key or calendar id")
	}

	service, err := gcal.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Source{
		service:    service,
		calendarID: cfg.CalendarID,
		windowDays: cfg.WindowDays,
		timeout:    cfg.Timeout,
		limiter:    ratelimit.New(ratelimit.DefaultConfig()),
		logger:     logger.With("source", "gcal"),
	}, nil
}

// FetchUpcomingEvents returns normalized events starting within the
// configured forward window, recurring occurrences expanded.
func (s *Source) FetchUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now()
	windowEnd := now.AddDate(0, 0, s.windowDays)

	var resp *gcal.Events
	err := s.limiter.Do(ctx, func() error {
		var err error
		resp, err = s.service.Events.List(s.calendarID).
			TimeMin(now.Format(time.RFC3339)).
			TimeMax(windowEnd.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	events := make([]domain.Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, normalizeEvent(item))
	}

	s.logger.Debug("fetched calendar events",
		"count", len(events),
		"window_days", s.windowDays,
	)

	return events, nil
}
