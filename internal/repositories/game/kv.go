package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dutch/internal/ledger"
	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/repositories/kv"
	"github.com/KirkDiggler/dutch/internal/stats"
)

// CurrentGameKey is the storage key of the game in progress
const CurrentGameKey = "current_dutch_game"

var (
	// ErrGameNotFound is returned when no snapshot is stored
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidGame is returned when the stored snapshot cannot be trusted
	ErrInvalidGame = errors.New("stored game is invalid")
)

// Config holds configuration for the game repository
type Config struct {
	// Store is the key-value store backing the repository
	Store kv.Store
}

// kvRepository implements the Repository interface on a kv.Store
type kvRepository struct {
	store kv.Store
}

// NewKV creates a new game repository
func NewKV(cfg *Config) (*kvRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	return &kvRepository{
		store: cfg.Store,
	}, nil
}

// SaveGame writes the snapshot, replacing whatever was stored
func (r *kvRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.GameID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	if err := r.store.Set(ctx, kv.ScopedKey(CurrentGameKey, input.ChannelID), string(gameJSON)); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame loads and validates the snapshot. Anything that does not decode
// into a consistent game is reported as ErrInvalidGame.
func (r *kvRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	gameJSON, err := r.store.Get(ctx, kv.ScopedKey(CurrentGameKey, input.ChannelID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return decodeGame(gameJSON)
}

// DeleteGame removes the snapshot
func (r *kvRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.store.Remove(ctx, kv.ScopedKey(CurrentGameKey, input.ChannelID)); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func decodeGame(gameJSON string) (*models.GameState, error) {
	if gameJSON == "" || gameJSON == "null" {
		return nil, ErrGameNotFound
	}

	var game models.GameState
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGame, err)
	}

	if game.GameID == "" || game.ScoreLimit < 0 {
		return nil, fmt.Errorf("%w: missing game ID or bad score limit", ErrInvalidGame)
	}

	if err := ledger.Validate(&game); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGame, err)
	}

	// Stored stats are a display cache only.
	stats.Recompute(game.Players)

	return &game, nil
}
