package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/dutch/internal/common/clock"
	"github.com/KirkDiggler/dutch/internal/common/random"
	"github.com/KirkDiggler/dutch/internal/common/uuid"
	"github.com/KirkDiggler/dutch/internal/config"
	"github.com/KirkDiggler/dutch/internal/handlers/discord"
	"github.com/KirkDiggler/dutch/internal/logger"
	"github.com/KirkDiggler/dutch/internal/repositories/game"
	"github.com/KirkDiggler/dutch/internal/repositories/history"
	"github.com/KirkDiggler/dutch/internal/repositories/kv"
	"github.com/KirkDiggler/dutch/internal/repositories/preferences"
	"github.com/KirkDiggler/dutch/internal/repositories/setup"
	"github.com/KirkDiggler/dutch/internal/services/messaging"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped with an error")
	}

	log.Info().Msg("Bot has been shut down")
}

// run wires the bot and blocks until SIGINT or SIGTERM. Deferred cleanup runs
// before it returns.
func run(log zerolog.Logger) error {
	cfg, err := config.Load(log)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log = log.Level(logger.ParseLevel(cfg.LogLevel))

	store, cleanup, err := newStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer cleanup()

	// Initialize repositories
	gameRepo, err := game.NewKV(&game.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	historyRepo, err := history.NewKV(&history.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create history repository: %w", err)
	}

	setupRepo, err := setup.NewKV(&setup.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create setup repository: %w", err)
	}

	preferencesRepo, err := preferences.NewKV(&preferences.Config{Store: store})
	if err != nil {
		return fmt.Errorf("failed to create preferences repository: %w", err)
	}

	// Initialize services
	scoreboardSvc, err := scoreboard.New(&scoreboard.Config{
		ScoreLimit:          cfg.Rules.ScoreLimit,
		DutchPenalty:        cfg.Rules.DutchPenalty,
		MaxPlayers:          cfg.Rules.MaxPlayers,
		ClampNegativeScores: cfg.Rules.ClampNegativeScores,
		GameRepo:            gameRepo,
		HistoryRepo:         historyRepo,
		SetupRepo:           setupRepo,
		PreferencesRepo:     preferencesRepo,
		Clock:               clock.New(),
		UUIDGenerator:       uuid.New(),
		Logger:              &log,
	})
	if err != nil {
		return fmt.Errorf("failed to create scoreboard service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: random.New(nil),
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		ScoreboardService: scoreboardSvc,
		MessagingService:  messagingSvc,
		Logger:            &log,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error stopping bot")
	}

	return nil
}

// newStore opens the configured backing store and returns a function that
// releases it
func newStore(cfg *config.Config, log zerolog.Logger) (kv.Store, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("Using in-memory storage, games are lost on restart")
		return kv.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, err
	}

	store, err := kv.NewRedis(&kv.Config{
		RedisClient: redisClient,
		KeyPrefix:   "dutch:",
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, err
	}

	log.Info().Str("redis_addr", cfg.RedisAddr).Int("redis_db", cfg.RedisDB).Msg("Connected to Redis")

	return store, func() { _ = redisClient.Close() }, nil
}
