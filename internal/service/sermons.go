package service

import (
	"context"
	"log/slog"

	"church_backend/internal/domain"
)

// SermonService serves the sermon read paths.
type SermonService struct {
	sermons SermonStore
	logger  *slog.Logger
}

func NewSermonService(sermons SermonStore, logger *slog.Logger) *SermonService {
	return &SermonService{sermons: sermons, logger: logger}
}

func (s *SermonService) List(ctx context.Context, category string) ([]domain.Sermon, error) {
	return s.sermons.List(ctx, category)
}

func (s *SermonService) GetByVideoID(ctx context.Context, externalVideoID string) (*domain.Sermon, error) {
	return s.sermons.GetByVideoID(ctx, externalVideoID)
}

func (s *SermonService) GetFeatured(ctx context.Context) (*domain.Sermon, error) {
	return s.sermons.GetFeatured(ctx)
}
