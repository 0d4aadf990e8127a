package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	setupRepo "github.com/KirkDiggler/dutch/internal/repositories/setup"
)

// StageSetup stores player names for the next StartGame in the channel
func (s *service) StageSetup(ctx context.Context, input *StageSetupInput) (*StageSetupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	names, err := s.cleanNames(input.Names)
	if err != nil {
		return nil, err
	}

	if err := s.setupRepo.SaveSetup(ctx, &setupRepo.SaveSetupInput{
		ChannelID: input.ChannelID,
		Names:     names,
	}); err != nil {
		return nil, fmt.Errorf("failed to save player setup: %w", err)
	}

	return &StageSetupOutput{
		Names: names,
	}, nil
}

// cleanNames trims names, drops blanks and enforces the table size and
// case-insensitive uniqueness
func (s *service) cleanNames(names []string) ([]string, error) {
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[key] = struct{}{}

		cleaned = append(cleaned, name)
	}

	if len(cleaned) < 2 {
		return nil, ErrTooFewPlayers
	}

	if len(cleaned) > s.maxPlayers {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManyPlayers, s.maxPlayers)
	}

	return cleaned, nil
}
