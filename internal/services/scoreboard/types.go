package scoreboard

import (
	"github.com/KirkDiggler/dutch/internal/common/clock"
	"github.com/KirkDiggler/dutch/internal/common/uuid"
	"github.com/KirkDiggler/dutch/internal/ledger"
	"github.com/KirkDiggler/dutch/internal/models"
	gameRepo "github.com/KirkDiggler/dutch/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/dutch/internal/repositories/history"
	preferencesRepo "github.com/KirkDiggler/dutch/internal/repositories/preferences"
	setupRepo "github.com/KirkDiggler/dutch/internal/repositories/setup"
	"github.com/rs/zerolog"
)

const (
	// DefaultScoreLimit ends a game at 100 points
	DefaultScoreLimit = 100

	// DefaultMaxPlayers caps the table size
	DefaultMaxPlayers = 10

	// MaxRoundScore bounds the magnitude of one entered score
	MaxRoundScore = ledger.MaxRoundScore
)

// Setting names accepted by UpdateSetting
const (
	SettingSound      = "dutch_sound_enabled"
	SettingCommentary = "dutch_commentary_enabled"
)

// Config holds configuration for the scoreboard service
type Config struct {
	// ScoreLimit is used when StartGame does not name one
	ScoreLimit int

	// DutchPenalty is added to a Dutch caller who did not have the lowest hand; zero disables it
	DutchPenalty int

	// MaxPlayers caps the number of seats
	MaxPlayers int

	// ClampNegativeScores raises negative entries to zero
	ClampNegativeScores bool

	// Repository dependencies
	GameRepo        gameRepo.Repository
	HistoryRepo     historyRepo.Repository
	SetupRepo       setupRepo.Repository
	PreferencesRepo preferencesRepo.Repository

	// Utility dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zerolog.Logger
}

// StageSetupInput contains parameters for staging player names
type StageSetupInput struct {
	// ChannelID is the Discord channel the game belongs to
	ChannelID string

	// Names are the players in seat order
	Names []string
}

// StageSetupOutput contains the cleaned, staged names
type StageSetupOutput struct {
	Names []string
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// ChannelID is the Discord channel the game belongs to
	ChannelID string

	// Names are the players in seat order; empty uses the staged setup
	Names []string

	// ScoreLimit overrides the configured limit when positive
	ScoreLimit int
}

// StartGameOutput contains the new game
type StartGameOutput struct {
	Game *models.GameState
}

// PreviewRoundInput contains a round as typed by the user
type PreviewRoundInput struct {
	ChannelID string

	// Scores are the raw scores in seat order
	Scores []int

	// DutchPlayer is the ID or name of the player who called Dutch; may be empty
	DutchPlayer string
}

// PreviewRoundOutput contains the scores the round would commit
type PreviewRoundOutput struct {
	// Scores are the adjusted scores in seat order
	Scores []int

	// PenaltyApplied is set when the Dutch caller was penalised
	PenaltyApplied bool

	// DutchPlayerID is the resolved Dutch caller, if any
	DutchPlayerID string

	Players []*models.Player
}

// AddRoundInput contains a round to commit
type AddRoundInput struct {
	ChannelID string

	// Scores are the raw scores in seat order
	Scores []int

	// DutchPlayer is the ID or name of the player who called Dutch; may be empty
	DutchPlayer string
}

// AddRoundOutput contains the result of committing a round
type AddRoundOutput struct {
	Game *models.GameState

	// Round is the committed entry, after adjustments
	Round *models.RoundHistoryEntry

	// PenaltyApplied is set when the Dutch caller was penalised
	PenaltyApplied bool

	// PreviousLeaderID is the player who led before this round; empty on the first round
	PreviousLeaderID string

	// GameOver is set when this round reached the score limit
	GameOver bool

	// Summary is the archived record, set when GameOver is set
	Summary *models.Game
}

// UndoLastRoundInput contains parameters for undoing a round
type UndoLastRoundInput struct {
	ChannelID string
}

// UndoLastRoundOutput contains the result of undoing a round
type UndoLastRoundOutput struct {
	Game *models.GameState

	// Removed is the round that was taken back
	Removed *models.RoundHistoryEntry

	// Reopened is set when a finished game went back to playing
	Reopened bool
}

// GetScoreboardInput contains parameters for reading the scoreboard
type GetScoreboardInput struct {
	ChannelID string
}

// GetScoreboardOutput contains the game and its standings
type GetScoreboardOutput struct {
	Game *models.GameState

	// Standings are the players ordered by lowest total
	Standings []*models.Player
}

// GetPlayerStatsInput contains parameters for reading one player's statistics
type GetPlayerStatsInput struct {
	ChannelID string

	// Player is the ID or name of the player
	Player string
}

// GetPlayerStatsOutput contains one player's statistics
type GetPlayerStatsOutput struct {
	Player *models.Player
	Stats  models.PlayerStatistics
}

// ContinueGameInput contains parameters for continuing a finished game
type ContinueGameInput struct {
	ChannelID string

	// ScoreLimit is the new limit when positive
	ScoreLimit int

	// ExtendBy raises the current limit when ScoreLimit is not set
	ExtendBy int
}

// ContinueGameOutput contains the reopened game
type ContinueGameOutput struct {
	Game *models.GameState
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	ChannelID string
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	// Game is the final state before it was cleared
	Game *models.GameState

	// Summary is the archived record; nil when no rounds were played
	Summary *models.Game
}

// RestartGameInput contains parameters for restarting a game
type RestartGameInput struct {
	ChannelID string
}

// RestartGameOutput contains the result of restarting a game
type RestartGameOutput struct {
	// Summary is the archived record of the old game; nil when no rounds were played
	Summary *models.Game

	// Game is the fresh game
	Game *models.GameState
}

// GetHistoryInput contains parameters for listing archived games
type GetHistoryInput struct {
	ChannelID string

	// Limit caps the number of games returned; zero returns all of them
	Limit int
}

// GetHistoryOutput contains archived games, newest first
type GetHistoryOutput struct {
	Games []*models.Game
}

// ClearHistoryInput contains parameters for wiping the archive
type ClearHistoryInput struct {
	ChannelID string
}

// ClearHistoryOutput contains the result of wiping the archive
type ClearHistoryOutput struct {
	Success bool
}

// GetSettingsInput contains parameters for reading settings
type GetSettingsInput struct {
	ChannelID string
}

// GetSettingsOutput contains the configured rules and presentation flags
type GetSettingsOutput struct {
	ScoreLimit          int
	DutchPenalty        int
	MaxPlayers          int
	ClampNegativeScores bool

	SoundEnabled      bool
	CommentaryEnabled bool
}

// UpdateSettingInput contains parameters for storing a flag
type UpdateSettingInput struct {
	ChannelID string

	// Setting is the flag name, e.g. "dutch_commentary_enabled"
	Setting string
	Enabled bool
}

// UpdateSettingOutput contains the stored flag
type UpdateSettingOutput struct {
	Setting string
	Enabled bool
}
