package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"church_backend/internal/config"
	"church_backend/internal/scheduler"
	"church_backend/internal/service"
	"church_backend/internal/source/gcal"
	"church_backend/internal/source/youtube"
	"church_backend/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single sync and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	sermonStore := postgres.NewSermonStore(db)
	eventStore := postgres.NewEventStore(db)
	txManager := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	videoSource, err := youtube.New(ctx, youtube.Config{
		APIKey:     cfg.YouTube.APIKey,
		ChannelID:  cfg.YouTube.ChannelID,
		MaxResults: cfg.YouTube.MaxResults,
		Timeout:    cfg.YouTube.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create youtube source", "error", err)
		os.Exit(1)
	}

	calendarSource, err := gcal.New(ctx, gcal.Config{
		APIKey:     cfg.Calendar.APIKey,
		CalendarID: cfg.Calendar.CalendarID,
		WindowDays: cfg.Calendar.WindowDays,
		Timeout:    cfg.Calendar.Timeout,
	}, logger)
	if err != nil {
		logger.Error("failed to create calendar source", "error", err)
		os.Exit(1)
	}

	sched := scheduler.New(map[string]scheduler.Syncer{
		"sermons": service.NewSermonSyncService(videoSource, sermonStore, txManager, logger),
		"events":  service.NewEventSyncService(calendarSource, eventStore, txManager, logger),
	}, cfg.Sync.Interval, logger)

	if *once {
		sched.RunOnce(ctx)
		return
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting syncer", "interval", cfg.Sync.Interval)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
