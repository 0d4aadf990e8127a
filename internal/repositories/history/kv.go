package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/repositories/kv"
)

// GamesKey is the storage key of the archive
const GamesKey = "dutch_games"

// ErrInvalidHistory is returned when the stored archive cannot be decoded
var ErrInvalidHistory = errors.New("stored game history is invalid")

// Config holds configuration for the history repository
type Config struct {
	// Store is the key-value store backing the repository
	Store kv.Store
}

// kvRepository implements the Repository interface on a kv.Store
type kvRepository struct {
	store kv.Store
}

// NewKV creates a new history repository
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

// SaveGame upserts a summary at the front of the archive. A corrupt archive is
// replaced by a fresh one holding only this game.
func (r *kvRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	games, err := r.load(ctx, input.ChannelID)
	if err != nil && !errors.Is(err, ErrInvalidHistory) {
		return err
	}

	updated := make([]*models.Game, 0, len(games)+1)
	updated = append(updated, input.Game)
	for _, g := range games {
		if g.ID != input.Game.ID {
			updated = append(updated, g)
		}
	}

	return r.save(ctx, input.ChannelID, updated)
}

// ListGames returns the archive, newest first
func (r *kvRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	games, err := r.load(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if input.Limit > 0 && len(games) > input.Limit {
		games = games[:input.Limit]
	}

	return &ListGamesOutput{
		Games: games,
	}, nil
}

// DeleteGame removes one summary. A missing ID or an unreadable archive
// leaves nothing to delete and is not an error.
func (r *kvRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	games, err := r.load(ctx, input.ChannelID)
	if err != nil {
		if errors.Is(err, ErrInvalidHistory) {
			return nil
		}
		return err
	}

	kept := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if g.ID != input.GameID {
			kept = append(kept, g)
		}
	}

	if len(kept) == len(games) {
		return nil
	}

	return r.save(ctx, input.ChannelID, kept)
}

// ClearGames removes the archive
func (r *kvRepository) ClearGames(ctx context.Context, input *ClearGamesInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.store.Remove(ctx, kv.ScopedKey(GamesKey, input.ChannelID)); err != nil {
		return fmt.Errorf("failed to clear game history: %w", err)
	}

	return nil
}

func (r *kvRepository) load(ctx context.Context, channelID string) ([]*models.Game, error) {
	raw, err := r.store.Get(ctx, kv.ScopedKey(GamesKey, channelID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []*models.Game{}, nil
		}
		return nil, fmt.Errorf("failed to get game history: %w", err)
	}

	var games []*models.Game
	if err := json.Unmarshal([]byte(raw), &games); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHistory, err)
	}

	valid := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if g == nil || g.ID == "" {
			continue
		}
		valid = append(valid, g)
	}

	return valid, nil
}

func (r *kvRepository) save(ctx context.Context, channelID string, games []*models.Game) error {
	gamesJSON, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("failed to marshal game history: %w", err)
	}

	if err := r.store.Set(ctx, kv.ScopedKey(GamesKey, channelID), string(gamesJSON)); err != nil {
		return fmt.Errorf("failed to save game history: %w", err)
	}

	return nil
}
