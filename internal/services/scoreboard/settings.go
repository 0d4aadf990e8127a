package scoreboard

import (
	"context"
	"errors"
	"fmt"

	preferencesRepo "github.com/KirkDiggler/dutch/internal/repositories/preferences"
)

// GetSettings returns the configured rules and the channel's flags. Both
// flags default to enabled.
func (s *service) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sound, err := s.flag(ctx, input.ChannelID, preferencesRepo.FlagSound)
	if err != nil {
		return nil, err
	}

	commentary, err := s.flag(ctx, input.ChannelID, preferencesRepo.FlagCommentary)
	if err != nil {
		return nil, err
	}

	return &GetSettingsOutput{
		ScoreLimit:          s.scoreLimit,
		DutchPenalty:        s.dutchPenalty,
		MaxPlayers:          s.maxPlayers,
		ClampNegativeScores: s.clampNegativeScores,
		SoundEnabled:        sound,
		CommentaryEnabled:   commentary,
	}, nil
}

// UpdateSetting stores one flag
func (s *service) UpdateSetting(ctx context.Context, input *UpdateSettingInput) (*UpdateSettingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	flag := preferencesRepo.Flag(input.Setting)
	if !flag.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, input.Setting)
	}

	if err := s.preferencesRepo.SetFlag(ctx, &preferencesRepo.SetFlagInput{
		ChannelID: input.ChannelID,
		Flag:      flag,
		Enabled:   input.Enabled,
	}); err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	return &UpdateSettingOutput{
		Setting: input.Setting,
		Enabled: input.Enabled,
	}, nil
}

func (s *service) flag(ctx context.Context, channelID string, flag preferencesRepo.Flag) (bool, error) {
	output, err := s.preferencesRepo.GetFlag(ctx, &preferencesRepo.GetFlagInput{
		ChannelID: channelID,
		Flag:      flag,
		Default:   true,
	})
	if err != nil {
		return false, fmt.Errorf("failed to get setting %s: %w", flag, err)
	}
	return output.Enabled, nil
}
