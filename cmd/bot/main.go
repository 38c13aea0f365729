package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/time-explorer-bot/internal/config"
	"github.com/aliskhannn/time-explorer-bot/internal/delivery/telegram"
	"github.com/aliskhannn/time-explorer-bot/internal/infra/postgres"
	"github.com/aliskhannn/time-explorer-bot/internal/infra/tts"
	"github.com/aliskhannn/time-explorer-bot/internal/logger"
	"github.com/aliskhannn/time-explorer-bot/internal/repository"
	"github.com/aliskhannn/time-explorer-bot/internal/service"
	"github.com/aliskhannn/time-explorer-bot/internal/shuffle"
	"github.com/aliskhannn/time-explorer-bot/internal/storage"
)

func main() {
	// A missing .env file is fine: variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env == "local"

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "start", Description: "Open the game menu"},
		{Command: "learn", Description: "Discovery Journey: meet the time words"},
		{Command: "match", Description: "Matching Mix: pair English and Arabic"},
		{Command: "jumble", Description: "Star Jumble: spell the word"},
		{Command: "order", Description: "Time Ladder: sort from shortest to longest"},
		{Command: "pilot", Description: "Time Pilot: solve scenarios"},
		{Command: "wizard", Description: "Time Alchemist: convert units"},
		{Command: "quiz", Description: "Time Quiz"},
		{Command: "words", Description: "All time words"},
		{Command: "convert", Description: "Convert units, e.g. /convert 2 weeks days"},
		{Command: "reset", Description: "Restart the current game"},
		{Command: "stop", Description: "End the current game"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	content, err := repository.NewContentRepository(cfg.ContentPath)
	if err != nil {
		lg.Fatal("failed to load content", zap.Error(err))
	}

	games := service.NewGameFactory(content, shuffle.New(cfg.Game.Seed), service.Timings{
		Advance:  cfg.Game.AdvanceDelay,
		Retry:    cfg.Game.RetryDelay,
		Mismatch: cfg.Game.MismatchDelay,
	})

	// Analytics are persisted only when a database is configured.
	var events service.EventStore
	if dsn, err := cfg.DB.DSN(); err == nil {
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		events = service.NewTxEventStore(postgres.NewTransactor(pool))
	} else {
		lg.Info("DATABASE_URL not set, analytics go to the log only")
	}

	analytics := service.NewAnalyticsService(events, service.AnalyticsConfig{
		BufferSize:    cfg.Analytics.BufferSize,
		BatchSize:     cfg.Analytics.BatchSize,
		FlushInterval: cfg.Analytics.FlushInterval,
	}, lg.Named("analytics"))

	var synth telegram.Synthesizer
	if cfg.TTS.APIKey != "" {
		client, err := tts.NewClient(tts.Config{
			APIKey:   cfg.TTS.APIKey,
			CacheDir: cfg.TTS.CacheDir,
			Language: cfg.TTS.Language,
			Timeout:  cfg.TTS.Timeout,
		}, lg.Named("tts"))
		if err != nil {
			lg.Fatal("failed to create tts client", zap.Error(err))
		}
		synth = client
	} else {
		lg.Info("GOOGLE_TTS_API_KEY not set, pronunciation audio disabled")
	}

	sessions := storage.NewSessionStorage()
	sweeper := service.NewSweeperService(sessions, cfg.Sessions.IdleTTL, cfg.Sessions.SweepSchedule, lg.Named("sweeper"))

	handler := telegram.NewHandler(
		bot,
		lg.Named("telegram"),
		games,
		content,
		sessions,
		analytics,
		service.NewConverter(),
		synth,
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		analytics.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := sweeper.Start(ctx); err != nil {
			lg.Error("session sweeper stopped", zap.Error(err))
		}
	}()

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}
	stop()
	bot.StopReceivingUpdates()

	handler.Wait()
	wg.Wait()
	lg.Info("shutdown complete")
}
