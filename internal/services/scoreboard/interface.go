package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dutch/internal/services/scoreboard Service

import "context"

// Service defines the interface for running a Dutch game in a channel
type Service interface {
	// StageSetup stores player names for the next game
	StageSetup(ctx context.Context, input *StageSetupInput) (*StageSetupOutput, error)

	// StartGame creates a new game from names or the staged setup
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// PreviewRound shows the scores a round would commit, without committing
	PreviewRound(ctx context.Context, input *PreviewRoundInput) (*PreviewRoundOutput, error)

	// AddRound commits a round and ends the game when the limit is reached
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// UndoLastRound removes the most recent round
	UndoLastRound(ctx context.Context, input *UndoLastRoundInput) (*UndoLastRoundOutput, error)

	// GetScoreboard returns the game and its standings
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// GetPlayerStats returns one player's statistics
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// ContinueGame reopens a finished game with a higher score limit
	ContinueGame(ctx context.Context, input *ContinueGameInput) (*ContinueGameOutput, error)

	// EndGame archives the game and clears it from the channel
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// RestartGame archives the game and starts a fresh one with the same players
	RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error)

	// GetHistory lists archived games, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory wipes the archive
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// GetSettings returns the rules and presentation flags
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSetting stores a presentation flag
	UpdateSetting(ctx context.Context, input *UpdateSettingInput) (*UpdateSettingOutput, error)
}
