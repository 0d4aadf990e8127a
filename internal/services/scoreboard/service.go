package scoreboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dutch/internal/common/clock"
	"github.com/KirkDiggler/dutch/internal/common/uuid"
	"github.com/KirkDiggler/dutch/internal/ledger"
	"github.com/KirkDiggler/dutch/internal/models"
	gameRepo "github.com/KirkDiggler/dutch/internal/repositories/game"
	historyRepo "github.com/KirkDiggler/dutch/internal/repositories/history"
	preferencesRepo "github.com/KirkDiggler/dutch/internal/repositories/preferences"
	setupRepo "github.com/KirkDiggler/dutch/internal/repositories/setup"
	"github.com/KirkDiggler/dutch/internal/stats"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	scoreLimit          int
	dutchPenalty        int
	maxPlayers          int
	clampNegativeScores bool

	gameRepo        gameRepo.Repository
	historyRepo     historyRepo.Repository
	setupRepo       setupRepo.Repository
	preferencesRepo preferencesRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	logger          *zerolog.Logger
}

// New creates a new scoreboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.SetupRepo == nil {
		return nil, ErrNilSetupRepo
	}

	if cfg.PreferencesRepo == nil {
		return nil, ErrNilPreferencesRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	scoreLimit := cfg.ScoreLimit
	if scoreLimit <= 0 {
		scoreLimit = DefaultScoreLimit
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	if cfg.DutchPenalty < 0 {
		return nil, errors.New("dutch penalty cannot be negative")
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &service{
		scoreLimit:          scoreLimit,
		dutchPenalty:        cfg.DutchPenalty,
		maxPlayers:          maxPlayers,
		clampNegativeScores: cfg.ClampNegativeScores,
		gameRepo:            cfg.GameRepo,
		historyRepo:         cfg.HistoryRepo,
		setupRepo:           cfg.SetupRepo,
		preferencesRepo:     cfg.PreferencesRepo,
		clock:               cfg.Clock,
		uuidGenerator:       cfg.UUIDGenerator,
		logger:              logger,
	}, nil
}

// StartGame creates a new game in the channel
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ScoreLimit < 0 {
		return nil, ErrInvalidScoreLimit
	}

	// Refuse to replace a running game; a corrupt snapshot may be overwritten
	_, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		ChannelID: input.ChannelID,
	})
	switch {
	case err == nil:
		return nil, ErrGameInProgress
	case errors.Is(err, gameRepo.ErrInvalidGame):
		s.logger.Warn().Err(err).Str("channel_id", input.ChannelID).Msg("replacing invalid game snapshot")
	case !errors.Is(err, gameRepo.ErrGameNotFound):
		return nil, fmt.Errorf("failed to check for a running game: %w", err)
	}

	names := input.Names
	if len(names) == 0 {
		setupOutput, err := s.setupRepo.GetSetup(ctx, &setupRepo.GetSetupInput{
			ChannelID: input.ChannelID,
		})
		if err != nil {
			if errors.Is(err, setupRepo.ErrSetupNotFound) {
				return nil, ErrNoSetup
			}
			return nil, fmt.Errorf("failed to get player setup: %w", err)
		}
		names = setupOutput.Names
	}

	names, err = s.cleanNames(names)
	if err != nil {
		return nil, err
	}

	scoreLimit := input.ScoreLimit
	if scoreLimit == 0 {
		scoreLimit = s.scoreLimit
	}

	game := s.newGame(names, scoreLimit, s.dutchPenalty, s.clampNegativeScores)

	if err := s.saveGame(ctx, input.ChannelID, game); err != nil {
		return nil, err
	}

	if err := s.setupRepo.ClearSetup(ctx, &setupRepo.ClearSetupInput{
		ChannelID: input.ChannelID,
	}); err != nil {
		s.logger.Warn().Err(err).Str("channel_id", input.ChannelID).Msg("failed to clear player setup")
	}

	s.logger.Info().
		Str("channel_id", input.ChannelID).
		Str("game_id", game.GameID).
		Int("players", len(game.Players)).
		Int("score_limit", game.ScoreLimit).
		Msg("game started")

	return &StartGameOutput{
		Game: game,
	}, nil
}

// PreviewRound applies the entry rules to a round without committing it
func (s *service) PreviewRound(ctx context.Context, input *PreviewRoundInput) (*PreviewRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	scores, dutchPlayerID, applied, err := s.prepareRound(l.State(), input.Scores, input.DutchPlayer)
	if err != nil {
		return nil, err
	}

	return &PreviewRoundOutput{
		Scores:         scores,
		PenaltyApplied: applied,
		DutchPlayerID:  dutchPlayerID,
		Players:        l.State().Players,
	}, nil
}

// AddRound commits a round. The round that first reaches the score limit
// ends the game and archives exactly one summary.
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	game := l.State()
	if game.IsGameOver {
		return nil, ErrGameOver
	}

	scores, dutchPlayerID, applied, err := s.prepareRound(game, input.Scores, input.DutchPlayer)
	if err != nil {
		return nil, err
	}

	previousLeaderID := ""
	if l.RoundCount() > 0 {
		previousLeaderID = l.Winner().ID
	}

	entry, err := l.AddRound(scores, dutchPlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to add round: %w", err)
	}

	output := &AddRoundOutput{
		Game:             game,
		Round:            entry,
		PenaltyApplied:   applied,
		PreviousLeaderID: previousLeaderID,
	}

	if l.LimitReached() {
		game.IsGameOver = true

		summary, err := s.archive(ctx, input.ChannelID, l)
		if err != nil {
			return nil, err
		}

		output.GameOver = true
		output.Summary = summary

		s.logger.Info().
			Str("channel_id", input.ChannelID).
			Str("game_id", game.GameID).
			Str("winner", summary.Winner).
			Int("rounds", summary.Rounds).
			Msg("game over")
	}

	if err := s.saveGame(ctx, input.ChannelID, game); err != nil {
		return nil, err
	}

	return output, nil
}

// UndoLastRound takes back the most recent round. A finished game whose
// totals drop back under the limit is reopened and its summary removed.
func (s *service) UndoLastRound(ctx context.Context, input *UndoLastRoundInput) (*UndoLastRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	removed, err := l.UndoLastRound()
	if err != nil {
		if errors.Is(err, ledger.ErrNoRounds) {
			return nil, ErrNoRounds
		}
		return nil, fmt.Errorf("failed to undo round: %w", err)
	}

	game := l.State()
	output := &UndoLastRoundOutput{
		Game:    game,
		Removed: removed,
	}

	if game.IsGameOver {
		if l.LimitReached() {
			if _, err := s.archive(ctx, input.ChannelID, l); err != nil {
				return nil, err
			}
		} else {
			game.IsGameOver = false
			output.Reopened = true

			if err := s.historyRepo.DeleteGame(ctx, &historyRepo.DeleteGameInput{
				ChannelID: input.ChannelID,
				GameID:    game.GameID,
			}); err != nil {
				return nil, fmt.Errorf("failed to remove game summary: %w", err)
			}
		}
	}

	if err := s.saveGame(ctx, input.ChannelID, game); err != nil {
		return nil, err
	}

	return output, nil
}

// GetScoreboard returns the game and its standings
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	return &GetScoreboardOutput{
		Game:      l.State(),
		Standings: stats.Standings(l.State().Players),
	}, nil
}

// GetPlayerStats returns one player's statistics
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	game := l.State()
	player := game.FindPlayer(input.Player)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	return &GetPlayerStatsOutput{
		Player: player,
		Stats:  stats.StatsOrDefault(player, game.Players),
	}, nil
}

// ContinueGame reopens a finished game with a higher limit. The archived
// summary stays and is replaced when the game ends again.
func (s *service) ContinueGame(ctx context.Context, input *ContinueGameInput) (*ContinueGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	game := l.State()
	if !game.IsGameOver {
		return nil, ErrGameNotOver
	}

	newLimit := input.ScoreLimit
	if newLimit <= 0 {
		newLimit = game.ScoreLimit + input.ExtendBy
	}

	if newLimit <= l.HighestTotal() {
		return nil, ErrInvalidScoreLimit
	}

	game.ScoreLimit = newLimit
	game.IsGameOver = false

	if err := s.saveGame(ctx, input.ChannelID, game); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("channel_id", input.ChannelID).
		Str("game_id", game.GameID).
		Int("score_limit", newLimit).
		Msg("game continued")

	return &ContinueGameOutput{
		Game: game,
	}, nil
}

// EndGame archives the game when it has rounds and clears it from the channel
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	output := &EndGameOutput{
		Game: l.State(),
	}

	if l.RoundCount() > 0 {
		summary, err := s.archive(ctx, input.ChannelID, l)
		if err != nil {
			return nil, err
		}
		output.Summary = summary
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		ChannelID: input.ChannelID,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	s.logger.Info().
		Str("channel_id", input.ChannelID).
		Str("game_id", l.State().GameID).
		Bool("archived", output.Summary != nil).
		Msg("game ended")

	return output, nil
}

// RestartGame archives the game when it has rounds and starts a fresh one
// with the same players and rules at the configured score limit
func (s *service) RestartGame(ctx context.Context, input *RestartGameInput) (*RestartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	l, err := s.loadLedger(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	old := l.State()
	output := &RestartGameOutput{}

	if l.RoundCount() > 0 {
		summary, err := s.archive(ctx, input.ChannelID, l)
		if err != nil {
			return nil, err
		}
		output.Summary = summary
	}

	game := s.newGame(old.PlayerNames(), s.scoreLimit, old.DutchPenalty, old.ClampNegativeScores)
	if err := s.saveGame(ctx, input.ChannelID, game); err != nil {
		return nil, err
	}
	output.Game = game

	s.logger.Info().
		Str("channel_id", input.ChannelID).
		Str("old_game_id", old.GameID).
		Str("game_id", game.GameID).
		Msg("game restarted")

	return output, nil
}

// GetHistory lists archived games, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	historyOutput, err := s.historyRepo.ListGames(ctx, &historyRepo.ListGamesInput{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		if errors.Is(err, historyRepo.ErrInvalidHistory) {
			s.logger.Warn().Err(err).Str("channel_id", input.ChannelID).Msg("ignoring invalid game history")
			return &GetHistoryOutput{Games: []*models.Game{}}, nil
		}
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return &GetHistoryOutput{
		Games: historyOutput.Games,
	}, nil
}

// ClearHistory wipes the archive
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := s.historyRepo.ClearGames(ctx, &historyRepo.ClearGamesInput{
		ChannelID: input.ChannelID,
	}); err != nil {
		return nil, fmt.Errorf("failed to clear history: %w", err)
	}

	return &ClearHistoryOutput{
		Success: true,
	}, nil
}

// loadLedger reads the channel's game. Missing and unreadable snapshots both
// surface as ErrNoActiveGame.
func (s *service) loadLedger(ctx context.Context, channelID string) (*ledger.Ledger, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		ChannelID: channelID,
	})
	if err != nil {
		switch {
		case errors.Is(err, gameRepo.ErrGameNotFound):
			return nil, ErrNoActiveGame
		case errors.Is(err, gameRepo.ErrInvalidGame):
			s.logger.Warn().Err(err).Str("channel_id", channelID).Msg("stored game is invalid")
			return nil, ErrNoActiveGame
		default:
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	l, err := ledger.New(game)
	if err != nil {
		s.logger.Warn().Err(err).Str("channel_id", channelID).Msg("stored game is inconsistent")
		return nil, ErrNoActiveGame
	}

	return l, nil
}

func (s *service) saveGame(ctx context.Context, channelID string, game *models.GameState) error {
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{
		ChannelID: channelID,
		Game:      game,
	}); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// archive upserts the summary of the ledger's game into the history
func (s *service) archive(ctx context.Context, channelID string, l *ledger.Ledger) (*models.Game, error) {
	summary := l.Summary()
	summary.Date = s.clock.Now()

	if err := s.historyRepo.SaveGame(ctx, &historyRepo.SaveGameInput{
		ChannelID: channelID,
		Game:      summary,
	}); err != nil {
		return nil, fmt.Errorf("failed to archive game: %w", err)
	}

	return summary, nil
}

// prepareRound resolves the Dutch caller and applies clamping and the
// Dutch penalty, in that order
func (s *service) prepareRound(game *models.GameState, raw []int, dutchRef string) ([]int, string, bool, error) {
	if len(raw) != len(game.Players) {
		return nil, "", false, ErrScoreCount
	}
	for _, score := range raw {
		if score > MaxRoundScore || score < -MaxRoundScore {
			return nil, "", false, fmt.Errorf("%w: %d", ErrScoreOutOfRange, score)
		}
	}

	dutchPlayerID := ""
	dutchIndex := -1
	if dutchRef != "" {
		player := game.FindPlayer(dutchRef)
		if player == nil {
			return nil, "", false, ErrPlayerNotFound
		}
		dutchPlayerID = player.ID
		dutchIndex = game.PlayerIndex(player.ID)
	}

	scores := append([]int(nil), raw...)
	if game.ClampNegativeScores {
		scores = ledger.ClampScores(scores)
	}

	scores, applied := ledger.ApplyDutchPenalty(scores, dutchIndex, game.DutchPenalty)

	return scores, dutchPlayerID, applied, nil
}

func (s *service) newGame(names []string, scoreLimit, dutchPenalty int, clampNegativeScores bool) *models.GameState {
	players := make([]*models.Player, 0, len(names))
	for _, name := range names {
		players = append(players, &models.Player{
			ID:     s.uuidGenerator.NewUUID(),
			Name:   name,
			Rounds: []models.Round{},
		})
	}
	stats.Recompute(players)

	return &models.GameState{
		GameID:              s.uuidGenerator.NewUUID(),
		Players:             players,
		RoundHistory:        []models.RoundHistoryEntry{},
		ScoreLimit:          scoreLimit,
		GameStartTime:       s.clock.Now(),
		DutchPenalty:        dutchPenalty,
		ClampNegativeScores: clampNegativeScores,
	}
}
