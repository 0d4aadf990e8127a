package setup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dutch/internal/repositories/kv"
)

// PlayerSetupKey is the storage key of the staged names
const PlayerSetupKey = "dutch_player_setup"

// ErrSetupNotFound is returned when nothing usable is staged
var ErrSetupNotFound = errors.New("player setup not found")

// Config holds configuration for the setup repository
type Config struct {
	// Store is the key-value store backing the repository
	Store kv.Store
}

// kvRepository implements the Repository interface on a kv.Store
type kvRepository struct {
	store kv.Store
}

// NewKV creates a new setup repository
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

// SaveSetup stores the names as a JSON array
func (r *kvRepository) SaveSetup(ctx context.Context, input *SaveSetupInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Names) == 0 {
		return errors.New("names cannot be empty")
	}

	namesJSON, err := json.Marshal(input.Names)
	if err != nil {
		return fmt.Errorf("failed to marshal player setup: %w", err)
	}

	if err := r.store.Set(ctx, kv.ScopedKey(PlayerSetupKey, input.ChannelID), string(namesJSON)); err != nil {
		return fmt.Errorf("failed to save player setup: %w", err)
	}

	return nil
}

// GetSetup reads the staged names. Blank entries are skipped and an
// undecodable or empty list reads as ErrSetupNotFound.
func (r *kvRepository) GetSetup(ctx context.Context, input *GetSetupInput) (*GetSetupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	raw, err := r.store.Get(ctx, kv.ScopedKey(PlayerSetupKey, input.ChannelID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, ErrSetupNotFound
		}
		return nil, fmt.Errorf("failed to get player setup: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, ErrSetupNotFound
	}

	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	if len(cleaned) == 0 {
		return nil, ErrSetupNotFound
	}

	return &GetSetupOutput{
		Names: cleaned,
	}, nil
}

// ClearSetup removes the staged names
func (r *kvRepository) ClearSetup(ctx context.Context, input *ClearSetupInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.store.Remove(ctx, kv.ScopedKey(PlayerSetupKey, input.ChannelID)); err != nil {
		return fmt.Errorf("failed to clear player setup: %w", err)
	}

	return nil
}
