package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gbooks_tgbot/config"
	"gbooks_tgbot/data/cache"
	"gbooks_tgbot/data/postgres"
	redisClient "gbooks_tgbot/data/redis"
	"gbooks_tgbot/data/session"
	"gbooks_tgbot/internal/downloader"
	"gbooks_tgbot/internal/externalApi/cloudStorageApi/googleDriveApi"
	"gbooks_tgbot/internal/googlebooks"
	"gbooks_tgbot/internal/mailer"
	"gbooks_tgbot/internal/repository"
	"gbooks_tgbot/internal/scheduler"
	"gbooks_tgbot/internal/service/bookFinderService"
	"gbooks_tgbot/internal/tgbot"
	"gbooks_tgbot/internal/transport/telegram"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	postgresDb := postgres.NewPostgresClient(cfg)
	defer postgresDb.Close()

	postgresRepo := repository.NewPostgresRepo(postgresDb)

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(cfg, redisClient)

	redisCache := cache.NewRedisCache(cfg, redisClient)

	booksApi := googlebooks.NewClient(cfg)

	googleCloudStorage := googleDriveApi.New(ctx, cfg)

	fileDownloader := downloader.NewFileDownloader(cfg)

	Mailer := mailer.NewMailer(cfg)

	bookFinderService := bookFinderService.New(
		cfg,
		postgresRepo,
		redisCache,
		booksApi,
		googleCloudStorage,
		fileDownloader,
		Mailer,
	)

	sched := scheduler.New()
	sched.NewIntervalJob("delete old files from google drive", googleCloudStorage.DeleteOldFiles, cfg.Jobs.DeleteOldFilesInterval, true)
	sched.Start()
	defer sched.Stop()

	tgController := telegram.NewController(cfg, bookFinderService, redisSession)

	tgBot := tgbot.New(cfg, tgController, redisSession)

	tgBot.Start()
	defer tgBot.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
