package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"church_backend/internal/domain"
)

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

// ReplaceAll removes every stored event and inserts the new batch.
func (s *EventStore) ReplaceAll(ctx context.Context, events []domain.Event) error {
	ex := getExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}

	if len(events) == 0 {
		return nil
	}

	query := `
		INSERT INTO events (
			title, description, location, event_date, event_time,
			category, external_event_id
		) VALUES (
			:title, :description, :location, :event_date, :event_time,
			:category, :external_event_id
		)`

	if _, err := sqlx.NamedExecContext(ctx, ex, query, events); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}

	return nil
}

func (s *EventStore) List(ctx context.Context, category string) ([]domain.Event, error) {
	query := `
		SELECT id, title, description, location, event_date, event_time,
		       category, external_event_id, created_at, updated_at
		FROM events`
	args := []interface{}{}

	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY id"

	var events []domain.Event
	if err := s.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}
