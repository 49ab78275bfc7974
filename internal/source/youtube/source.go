package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"church_backend/internal/domain"
	"church_backend/internal/ratelimit"
)

// Config holds YouTube source configuration.
type Config struct {
	APIKey     string
	ChannelID  string
	MaxResults int64
	Timeout    time.Duration
}

// Source fetches a channel's recent uploads through the YouTube Data API.
type Source struct {
	service    *yt.Service
	channelID  string
	maxResults int64
	timeout    time.Duration
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

// New creates a new YouTube source.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	if cfg.APIKey == "" || cfg.ChannelID == "" {
		return nil, fmt.Errorf("missing youtube api key or channel id")
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Source{
		service:    service,
		channelID:  cfg.ChannelID,
		maxResults: cfg.MaxResults,
		timeout:    cfg.Timeout,
		limiter:    ratelimit.New(ratelimit.DefaultConfig()),
		logger:     logger.With("source", "youtube"),
	}, nil
}

// FetchRecentVideoIDs returns the channel's most recent video ids, newest first.
func (s *Source) FetchRecentVideoIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var resp *yt.SearchListResponse
	err := s.limiter.Do(ctx, func() error {
		var err error
		resp, err = s.service.Search.List([]string{"id"}).
			ChannelId(s.channelID).
			Type("video").
			Order("date").
			MaxResults(s.maxResults).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search channel videos: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}

	s.logger.Debug("fetched video ids", "count", len(ids))

	return ids, nil
}

// FetchSermons fetches full metadata for the given video ids and normalizes
// each into a sermon. Records whose video id is not exactly 11 characters are
// skipped and counted, never stored.
func (s *Source) FetchSermons(ctx context.Context, ids []string) ([]domain.Sermon, int, error) {
	if len(ids) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var resp *yt.VideoListResponse
	err := s.limiter.Do(ctx, func() error {
		var err error
		resp, err = s.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Id(ids...).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("fetch video details: %w", err)
	}

	sermons := make([]domain.Sermon, 0, len(resp.Items))
	skipped := 0

	for _, video := range resp.Items {
		sermon, err := normalizeVideo(video)
		if err != nil {
			skipped++
			s.logger.Warn("skipping video",
				"video_id", video.Id,
				"error", err,
			)
			continue
		}
		sermons = append(sermons, sermon)
	}

	return sermons, skipped, nil
}
