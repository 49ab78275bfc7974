package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"church_backend/internal/domain"
	"church_backend/internal/service/mocks"
)

type SermonSyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockVideoSource
	sermons   *mocks.MockSermonStore
	txManager *mocks.MockTransactionManager

	service *SermonSyncService
	logger  *slog.Logger
}

func (s *SermonSyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockVideoSource(s.ctrl)
	s.sermons = mocks.NewMockSermonStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewSermonSyncService(s.source, s.sermons, s.txManager, s.logger)
}

func (s *SermonSyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSermonSyncTestSuite(t *testing.T) {
	suite.Run(t, new(SermonSyncTestSuite))
}

func (s *SermonSyncTestSuite) passthroughTx(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *SermonSyncTestSuite) TestSync_NewBatch() {
	ctx := context.Background()
	now := time.Now()

	ids := []string{"AAAAAAAAAAA", "BBBBBBBBBBB"}
	sermons := []domain.Sermon{
		{ExternalVideoID: "AAAAAAAAAAA", Title: "Older", PublishedAt: now.Add(-24 * time.Hour)},
		{ExternalVideoID: "BBBBBBBBBBB", Title: "Newer", PublishedAt: now},
	}

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(ids, nil)
	s.source.EXPECT().FetchSermons(ctx, ids).Return(sermons, 0, nil)

	s.passthroughTx(ctx)
	s.sermons.EXPECT().ReplaceAll(ctx, sermons).Return(nil)
	s.sermons.EXPECT().SetFeatured(ctx, "BBBBBBBBBBB").Return(nil)

	result, err := s.service.Sync(ctx)

	s.NoError(err)
	s.True(result.Success)
	s.Equal(2, result.Count)
	s.Equal(0, result.Skipped)
}

func (s *SermonSyncTestSuite) TestSync_EmptySourceKeepsExisting() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(nil, nil)

	// No ReplaceAll, no SetFeatured: the stored batch survives an empty fetch.
	result, err := s.service.Sync(ctx)

	s.NoError(err)
	s.True(result.Success)
	s.Equal(0, result.Count)
}

func (s *SermonSyncTestSuite) TestSync_SkippedRecordsCounted() {
	ctx := context.Background()
	now := time.Now()

	ids := []string{"AAAAAAAAAAA", "bad-id", "also-bad"}
	sermons := []domain.Sermon{
		{ExternalVideoID: "AAAAAAAAAAA", PublishedAt: now},
	}

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(ids, nil)
	s.source.EXPECT().FetchSermons(ctx, ids).Return(sermons, 2, nil)

	s.passthroughTx(ctx)
	s.sermons.EXPECT().ReplaceAll(ctx, sermons).Return(nil)
	s.sermons.EXPECT().SetFeatured(ctx, "AAAAAAAAAAA").Return(nil)

	result, err := s.service.Sync(ctx)

	s.NoError(err)
	s.True(result.Success)
	s.Equal(1, result.Count)
	s.Equal(2, result.Skipped)
}

func (s *SermonSyncTestSuite) TestSync_AllRecordsInvalid() {
	ctx := context.Background()

	ids := []string{"bad-id"}

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(ids, nil)
	s.source.EXPECT().FetchSermons(ctx, ids).Return(nil, 1, nil)

	result, err := s.service.Sync(ctx)

	s.NoError(err)
	s.False(result.Success)
	s.Equal(0, result.Count)
	s.Equal(1, result.Skipped)
}

func (s *SermonSyncTestSuite) TestSync_FetchIDsError() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(nil, errors.New("quota exceeded"))

	result, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(result)
}

func (s *SermonSyncTestSuite) TestSync_PersistError() {
	ctx := context.Background()
	now := time.Now()

	ids := []string{"AAAAAAAAAAA"}
	sermons := []domain.Sermon{{ExternalVideoID: "AAAAAAAAAAA", PublishedAt: now}}

	s.source.EXPECT().FetchRecentVideoIDs(ctx).Return(ids, nil)
	s.source.EXPECT().FetchSermons(ctx, ids).Return(sermons, 0, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("connection lost"))

	result, err := s.service.Sync(ctx)

	s.Error(err)
	s.Nil(result)
}
