package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"church_backend/internal/domain"
)

type VideoSource interface {
	FetchRecentVideoIDs(ctx context.Context) ([]string, error)
	FetchSermons(ctx context.Context, ids []string) ([]domain.Sermon, int, error)
}

type CalendarSource interface {
	FetchUpcomingEvents(ctx context.Context) ([]domain.Event, error)
}

type SermonStore interface {
	ReplaceAll(ctx context.Context, sermons []domain.Sermon) error
	SetFeatured(ctx context.Context, externalVideoID string) error
	List(ctx context.Context, category string) ([]domain.Sermon, error)
	GetByVideoID(ctx context.Context, externalVideoID string) (*domain.Sermon, error)
	GetFeatured(ctx context.Context) (*domain.Sermon, error)
}

type EventStore interface {
	ReplaceAll(ctx context.Context, events []domain.Event) error
	List(ctx context.Context, category string) ([]domain.Event, error)
}

type RegistrationStore interface {
	Create(ctx context.Context, reg *domain.Registration) error
	ExistsActive(ctx context.Context, participantName, contactEmail string, campYear int) (bool, error)
	List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishRegistration(ctx context.Context, reg *domain.Registration, action string) error
	Close() error
}
