package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"church_backend/internal/domain"
)

type SermonStore struct {
	db *sqlx.DB
}

func NewSermonStore(db *sqlx.DB) *SermonStore {
	return &SermonStore{db: db}
}

// ReplaceAll removes every stored sermon and inserts the new batch. Callers
// wrap it in a transaction together with SetFeatured.
func (s *SermonStore) ReplaceAll(ctx context.Context, sermons []domain.Sermon) error {
	ex := getExecutor(ctx, s.db)

	if _, err := ex.ExecContext(ctx, "DELETE FROM sermons"); err != nil {
		return fmt.Errorf("clear sermons: %w", err)
	}

	if len(sermons) == 0 {
		return nil
	}

	query := `
		INSERT INTO sermons (
			title, preacher, display_date, description, external_video_id,
			category, published_at, duration, view_count, like_count, is_featured
		) VALUES (
			:title, :preacher, :display_date, :description, :external_video_id,
			:category, :published_at, :duration, :view_count, :like_count, :is_featured
		)`

	if _, err := sqlx.NamedExecContext(ctx, ex, query, sermons); err != nil {
		return fmt.Errorf("insert sermons: %w", err)
	}

	return nil
}

// SetFeatured marks exactly one sermon featured and clears the flag on all
// others in a single statement.
func (s *SermonStore) SetFeatured(ctx context.Context, externalVideoID string) error {
	ex := getExecutor(ctx, s.db)

	_, err := ex.ExecContext(ctx,
		"UPDATE sermons SET is_featured = (external_video_id = $1)",
		externalVideoID,
	)
	if err != nil {
		return fmt.Errorf("set featured sermon: %w", err)
	}

	return nil
}

func (s *SermonStore) List(ctx context.Context, category string) ([]domain.Sermon, error) {
	query := `
		SELECT id, title, preacher, display_date, description, external_video_id,
		       category, published_at, duration, view_count, like_count, is_featured,
		       created_at, updated_at
		FROM sermons`
	args := []interface{}{}

	if category != "" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY published_at DESC"

	var sermons []domain.Sermon
	if err := s.db.SelectContext(ctx, &sermons, query, args...); err != nil {
		return nil, err
	}
	return sermons, nil
}

func (s *SermonStore) GetByVideoID(ctx context.Context, externalVideoID string) (*domain.Sermon, error) {
	var sermon domain.Sermon
	err := s.db.GetContext(ctx, &sermon, `
		SELECT id, title, preacher, display_date, description, external_video_id,
		       category, published_at, duration, view_count, like_count, is_featured,
		       created_at, updated_at
		FROM sermons
		WHERE external_video_id = $1`, externalVideoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSermonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sermon, nil
}

func (s *SermonStore) GetFeatured(ctx context.Context) (*domain.Sermon, error) {
	var sermon domain.Sermon
	err := s.db.GetContext(ctx, &sermon, `
		SELECT id, title, preacher, display_date, description, external_video_id,
		       category, published_at, duration, view_count, like_count, is_featured,
		       created_at, updated_at
		FROM sermons
		WHERE is_featured = TRUE
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSermonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sermon, nil
}
