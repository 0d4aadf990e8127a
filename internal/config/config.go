package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// StorageRedis keeps games in Redis
	StorageRedis = "redis"

	// StorageMemory keeps games in process memory
	StorageMemory = "memory"
)

// Config holds the bot's settings
type Config struct {
	DiscordToken  string
	ApplicationID string
	GuildID       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Storage   string
	LogLevel  string
	RulesFile string

	Rules Rules
}

// Rules are the table rules, read from an optional TOML file
type Rules struct {
	ScoreLimit          int  `toml:"score_limit"`
	DutchPenalty        int  `toml:"dutch_penalty"`
	MaxPlayers          int  `toml:"max_players"`
	ClampNegativeScores bool `toml:"clamp_negative_scores"`
}

// DefaultRules returns the standard table rules
func DefaultRules() Rules {
	return Rules{
		ScoreLimit:   100,
		DutchPenalty: 10,
		MaxPlayers:   10,
	}
}

// Validate checks that the rules describe a playable game
func (r Rules) Validate() error {
	if r.ScoreLimit <= 0 {
		return errors.New("score_limit must be positive")
	}
	if r.DutchPenalty < 0 {
		return errors.New("dutch_penalty cannot be negative")
	}
	if r.MaxPlayers < 2 {
		return errors.New("max_players must be at least 2")
	}
	return nil
}

// Load reads .env, the environment and the rules file
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB must be a number: %w", err)
	}

	cfg := &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		Storage:       getEnv("STORAGE", StorageRedis),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RulesFile:     getEnv("RULES_FILE", ""),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}

	if cfg.Storage != StorageRedis && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageRedis, StorageMemory, cfg.Storage)
	}

	cfg.Rules, err = LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("storage", cfg.Storage).
		Str("redis_addr", cfg.RedisAddr).
		Str("guild_id", cfg.GuildID).
		Str("log_level", cfg.LogLevel).
		Int("score_limit", cfg.Rules.ScoreLimit).
		Int("dutch_penalty", cfg.Rules.DutchPenalty).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadRules overlays the TOML file at path on the default rules. An empty
// path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	if _, err := toml.DecodeFile(path, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	return rules, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
