package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"church_backend/internal/domain"
	"church_backend/internal/service/mocks"
)

type EventServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	events  *mocks.MockEventStore
	service *EventService
}

func (s *EventServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = mocks.NewMockEventStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewEventService(s.events, logger)
}

func (s *EventServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}

func (s *EventServiceTestSuite) TestList_StoredEvents() {
	ctx := context.Background()
	stored := []domain.Event{{Title: "Prayer Night", Category: domain.EventCategoryWorship}}

	s.events.EXPECT().List(ctx, "").Return(stored, nil)

	events, err := s.service.List(ctx, "")

	s.NoError(err)
	s.Equal(stored, events)
}

func (s *EventServiceTestSuite) TestList_EmptyStoreServesFallback() {
	ctx := context.Background()

	s.events.EXPECT().List(ctx, "").Return(nil, nil)

	events, err := s.service.List(ctx, "")

	s.NoError(err)
	s.Equal(domain.FallbackEvents(), events)
}

func (s *EventServiceTestSuite) TestList_StoreErrorServesFallback() {
	ctx := context.Background()

	s.events.EXPECT().List(ctx, "Youth").Return(nil, errors.New("connection refused"))

	events, err := s.service.List(ctx, "Youth")

	s.NoError(err)
	s.Len(events, 1)
	s.Equal(domain.EventCategoryYouth, events[0].Category)
}
