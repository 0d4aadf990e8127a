package preferences

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/dutch/internal/repositories/kv"
)

// ErrUnknownFlag is returned for flags outside Flags
var ErrUnknownFlag = errors.New("unknown preference flag")

// Config holds configuration for the preferences repository
type Config struct {
	// Store is the key-value store backing the repository
	Store kv.Store
}

// kvRepository implements the Repository interface on a kv.Store
type kvRepository struct {
	store kv.Store
}

// NewKV creates a new preferences repository
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

// GetFlag reads a flag stored as "true" or "false". Unparsable values fall
// back to the default.
func (r *kvRepository) GetFlag(ctx context.Context, input *GetFlagInput) (*GetFlagOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Flag.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlag, input.Flag)
	}

	raw, err := r.store.Get(ctx, kv.ScopedKey(string(input.Flag), input.ChannelID))
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return &GetFlagOutput{Enabled: input.Default}, nil
		}
		return nil, fmt.Errorf("failed to get flag %s: %w", input.Flag, err)
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return &GetFlagOutput{Enabled: input.Default}, nil
	}

	return &GetFlagOutput{
		Enabled: enabled,
		IsSet:   true,
	}, nil
}

// SetFlag stores a flag
func (r *kvRepository) SetFlag(ctx context.Context, input *SetFlagInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if !input.Flag.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownFlag, input.Flag)
	}

	if err := r.store.Set(ctx, kv.ScopedKey(string(input.Flag), input.ChannelID), strconv.FormatBool(input.Enabled)); err != nil {
		return fmt.Errorf("failed to set flag %s: %w", input.Flag, err)
	}

	return nil
}
