package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/dutch/internal/services/messaging"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/KirkDiggler/dutch/internal/stats"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DutchCommand handles the /dutch command and its buttons
type DutchCommand struct {
	BaseCommand
	scoreboardService scoreboard.Service
	messagingService  messaging.Service
	logger            *zerolog.Logger
}

// NewDutchCommand creates a new dutch command handler
func NewDutchCommand(scoreboardService scoreboard.Service, messagingService messaging.Service, logger *zerolog.Logger) *DutchCommand {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	scoresOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "scores",
		Description: "One score per player in seat order, e.g. 5 0 12",
		Required:    true,
	}
	dutchOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "dutch",
		Description: "Name of the player who called Dutch",
	}

	return &DutchCommand{
		BaseCommand: BaseCommand{
			Name:        "dutch",
			Description: "Keep score for a game of Dutch",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setup",
					Description: "Stage the players for the next game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Player names, comma separated",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Player names, comma separated; defaults to the staged setup",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "Score that ends the game",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "round",
					Description: "Enter a round",
					Options:     []*discordgo.ApplicationCommandOption{scoresOption, dutchOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "preview",
					Description: "Check a round before entering it",
					Options:     []*discordgo.ApplicationCommandOption{scoresOption, dutchOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Take back the last round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "board",
					Description: "Show the scoreboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show a player's statistics",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show finished games",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "How many games to show",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "clear",
							Description: "Delete the history instead",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "continue",
					Description: "Keep playing a finished game with a higher limit",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: fmt.Sprintf("New score limit; defaults to %d more", ContinueStep),
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the game and save it to history",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "restart",
					Description: "Save the game and start over with the same players",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rules",
					Description: "Show the rules and settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "commentary",
					Description: "Turn the commentator on or off",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "enabled",
							Description: "Whether the commentator speaks up",
							Required:    true,
						},
					},
				},
			},
		},
		scoreboardService: scoreboardService,
		messagingService:  messagingService,
		logger:            logger,
	}
}

// Handle processes a Discord interaction for the dutch command
func (c *DutchCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	opts := optionMap(sub.Options)
	channelID := i.ChannelID

	c.logger.Debug().
		Str("channel_id", channelID).
		Str("subcommand", sub.Name).
		Msg("handling command")

	switch sub.Name {
	case "setup":
		return c.handleSetup(ctx, s, i, channelID, opts)
	case "start":
		return c.handleStart(ctx, s, i, channelID, opts)
	case "round":
		return c.handleRound(ctx, s, i, channelID, opts)
	case "preview":
		return c.handlePreview(ctx, s, i, channelID, opts)
	case "undo":
		return c.handleUndo(ctx, s, i, channelID)
	case "board":
		return c.handleBoard(ctx, s, i, channelID)
	case "stats":
		return c.handleStats(ctx, s, i, channelID, opts)
	case "history":
		return c.handleHistory(ctx, s, i, channelID, opts)
	case "continue":
		limit := 0
		if opt, ok := opts["limit"]; ok {
			limit = int(opt.IntValue())
		}
		return c.handleContinue(ctx, s, i, channelID, limit)
	case "end":
		return c.handleEnd(ctx, s, i, channelID)
	case "restart":
		return c.handleRestart(ctx, s, i, channelID)
	case "rules":
		return c.handleRules(ctx, s, i, channelID)
	case "commentary":
		return c.handleCommentary(ctx, s, i, channelID, opts)
	default:
		return errors.New("unknown subcommand")
	}
}

// HandlesComponent reports whether customID is one of the dutch buttons
func (c *DutchCommand) HandlesComponent(customID string) bool {
	switch customID {
	case ButtonUndo, ButtonBoard, ButtonContinue, ButtonRestart:
		return true
	}
	return false
}

// HandleComponent processes a dutch button click
func (c *DutchCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	channelID := i.ChannelID

	switch i.MessageComponentData().CustomID {
	case ButtonUndo:
		return c.handleUndo(ctx, s, i, channelID)
	case ButtonBoard:
		return c.handleBoard(ctx, s, i, channelID)
	case ButtonContinue:
		return c.handleContinue(ctx, s, i, channelID, 0)
	case ButtonRestart:
		return c.handleRestart(ctx, s, i, channelID)
	default:
		return RespondWithEphemeralMessage(s, i, "Unknown button")
	}
}

func (c *DutchCommand) handleSetup(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	output, err := c.scoreboardService.StageSetup(ctx, &scoreboard.StageSetupInput{
		ChannelID: channelID,
		Names:     ParseNames(opts.String("players")),
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{{
		Title:       "Players Ready",
		Description: fmt.Sprintf("%s\n\nUse `/dutch start` to deal.", joinNames(output.Names)),
		Color:       colorSuccess,
	}}, nil)
}

func (c *DutchCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	input := &scoreboard.StartGameInput{
		ChannelID: channelID,
		Names:     ParseNames(opts.String("players")),
	}
	if opt, ok := opts["limit"]; ok {
		input.ScoreLimit = int(opt.IntValue())
	}

	output, err := c.scoreboardService.StartGame(ctx, input)
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	embed := renderScoreboard(output.Game, output.Game.Players)
	embed.Title = "New Game"

	if c.commentaryEnabled(ctx, channelID) {
		greeting, err := c.messagingService.GetStartMessage(ctx, &messaging.GetStartMessageInput{
			PlayerNames: output.Game.PlayerNames(),
			ScoreLimit:  output.Game.ScoreLimit,
		})
		if err != nil {
			c.logger.Warn().Err(err).Msg("failed to get start message")
		} else {
			embed.Description = greeting.Message
		}
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, gameButtons(output.Game))
}

func (c *DutchCommand) handleRound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	scores, err := ParseScores(opts.String("scores"))
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	output, err := c.scoreboardService.AddRound(ctx, &scoreboard.AddRoundInput{
		ChannelID:   channelID,
		Scores:      scores,
		DutchPlayer: opts.String("dutch"),
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	commentaryOn := c.commentaryEnabled(ctx, channelID)

	commentary := ""
	if commentaryOn {
		remark, err := c.messagingService.GetRoundCommentary(ctx, &messaging.GetRoundCommentaryInput{
			Players:          output.Game.Players,
			Round:            output.Round,
			PenaltyApplied:   output.PenaltyApplied,
			PreviousLeaderID: output.PreviousLeaderID,
		})
		if err != nil {
			c.logger.Warn().Err(err).Msg("failed to get round commentary")
		} else {
			commentary = remark.Message
		}
	}

	embeds := []*discordgo.MessageEmbed{renderRound(output, commentary)}

	if output.GameOver {
		title, message := "", ""
		if commentaryOn {
			closing, err := c.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
				Summary: output.Summary,
			})
			if err != nil {
				c.logger.Warn().Err(err).Msg("failed to get game over message")
			} else {
				title, message = closing.Title, closing.Message
			}
		}
		embeds = append(embeds, renderGameOver(output.Summary, title, message))
	}

	return RespondWithEmbeds(s, i, embeds, gameButtons(output.Game))
}

func (c *DutchCommand) handlePreview(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	scores, err := ParseScores(opts.String("scores"))
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	output, err := c.scoreboardService.PreviewRound(ctx, &scoreboard.PreviewRoundInput{
		ChannelID:   channelID,
		Scores:      scores,
		DutchPlayer: opts.String("dutch"),
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEphemeralEmbed(s, i, renderRoundPreview(output))
}

func (c *DutchCommand) handleUndo(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoreboardService.UndoLastRound(ctx, &scoreboard.UndoLastRoundInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	embed := renderScoreboard(output.Game, stats.Standings(output.Game.Players))

	if c.commentaryEnabled(ctx, channelID) {
		remark, err := c.messagingService.GetUndoMessage(ctx, &messaging.GetUndoMessageInput{
			Reopened: output.Reopened,
		})
		if err != nil {
			c.logger.Warn().Err(err).Msg("failed to get undo message")
		} else {
			embed.Footer = &discordgo.MessageEmbedFooter{Text: remark.Message}
		}
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, gameButtons(output.Game))
}

func (c *DutchCommand) handleBoard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoreboardService.GetScoreboard(ctx, &scoreboard.GetScoreboardInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderScoreboard(output.Game, output.Standings)}, gameButtons(output.Game))
}

func (c *DutchCommand) handleStats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	output, err := c.scoreboardService.GetPlayerStats(ctx, &scoreboard.GetPlayerStatsInput{
		ChannelID: channelID,
		Player:    opts.String("player"),
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderPlayerStats(output.Player, output.Stats)}, nil)
}

func (c *DutchCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	if opt, ok := opts["clear"]; ok && opt.BoolValue() {
		if _, err := c.scoreboardService.ClearHistory(ctx, &scoreboard.ClearHistoryInput{
			ChannelID: channelID,
		}); err != nil {
			return c.respondWithError(ctx, s, i, channelID, err)
		}
		return RespondWithEphemeralMessage(s, i, "Game history cleared.")
	}

	limit := 5
	if opt, ok := opts["count"]; ok && opt.IntValue() > 0 {
		limit = int(opt.IntValue())
	}

	output, err := c.scoreboardService.GetHistory(ctx, &scoreboard.GetHistoryInput{
		ChannelID: channelID,
		Limit:     limit,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderHistory(output.Games)}, nil)
}

func (c *DutchCommand) handleContinue(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, limit int) error {
	input := &scoreboard.ContinueGameInput{
		ChannelID:  channelID,
		ScoreLimit: limit,
	}
	if limit <= 0 {
		input.ExtendBy = ContinueStep
	}

	output, err := c.scoreboardService.ContinueGame(ctx, input)
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	embed := renderScoreboard(output.Game, stats.Standings(output.Game.Players))
	embed.Title = "Game Continues"

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{embed}, gameButtons(output.Game))
}

func (c *DutchCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoreboardService.EndGame(ctx, &scoreboard.EndGameInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	if output.Summary == nil {
		return RespondWithEphemeralMessage(s, i, "Game cleared. No rounds were played, so nothing was saved.")
	}

	return RespondWithEmbeds(s, i, []*discordgo.MessageEmbed{renderGameOver(output.Summary, "Game Ended", "")}, nil)
}

func (c *DutchCommand) handleRestart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoreboardService.RestartGame(ctx, &scoreboard.RestartGameInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	embeds := make([]*discordgo.MessageEmbed, 0, 2)
	if output.Summary != nil {
		embeds = append(embeds, renderGameOver(output.Summary, "Previous Game", ""))
	}

	board := renderScoreboard(output.Game, output.Game.Players)
	board.Title = "New Game"
	embeds = append(embeds, board)

	return RespondWithEmbeds(s, i, embeds, gameButtons(output.Game))
}

func (c *DutchCommand) handleRules(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.scoreboardService.GetSettings(ctx, &scoreboard.GetSettingsInput{
		ChannelID: channelID,
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEphemeralEmbed(s, i, renderSettings(output))
}

func (c *DutchCommand) handleCommentary(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, opts options) error {
	enabled := false
	if opt, ok := opts["enabled"]; ok {
		enabled = opt.BoolValue()
	}

	if _, err := c.scoreboardService.UpdateSetting(ctx, &scoreboard.UpdateSettingInput{
		ChannelID: channelID,
		Setting:   scoreboard.SettingCommentary,
		Enabled:   enabled,
	}); err != nil {
		return c.respondWithError(ctx, s, i, channelID, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Commentary is now %s.", onOff(enabled)))
}

// commentaryEnabled reads the channel flag; failures keep the commentator quiet
func (c *DutchCommand) commentaryEnabled(ctx context.Context, channelID string) bool {
	settings, err := c.scoreboardService.GetSettings(ctx, &scoreboard.GetSettingsInput{
		ChannelID: channelID,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("channel_id", channelID).Msg("failed to read settings")
		return false
	}
	return settings.CommentaryEnabled
}

// respondWithError turns a service error into a friendly ephemeral reply
func (c *DutchCommand) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, err error) error {
	errorType, detail := classifyError(err)

	event := c.logger.Info()
	if errorType == messaging.ErrorTypeStorage {
		event = c.logger.Error()
	}

	output, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
		Detail:    detail,
	})
	if msgErr != nil {
		c.logger.Error().Err(msgErr).Msg("failed to get error message")
		return RespondWithError(s, i, "Error", err.Error(), "")
	}

	event.Err(err).
		Str("channel_id", channelID).
		Str("tag", output.Tag).
		Msg("command failed")

	return RespondWithError(s, i, output.Title, output.Message, output.Tag)
}

// classifyError maps an error to a message family and an optional detail
// that is safe to show the user
func classifyError(err error) (messaging.ErrorType, string) {
	switch {
	case errors.Is(err, scoreboard.ErrNoActiveGame):
		return messaging.ErrorTypeNoGame, ""
	case errors.Is(err, scoreboard.ErrGameOver):
		return messaging.ErrorTypeGameOver, ""
	case errors.Is(err, scoreboard.ErrGameInProgress):
		return messaging.ErrorTypeGameRunning, ""
	case errors.Is(err, ErrNoScores), errors.Is(err, ErrInvalidScore), errors.Is(err, scoreboard.ErrScoreCount),
		errors.Is(err, scoreboard.ErrScoreOutOfRange):
		return messaging.ErrorTypeInvalidScores, err.Error()
	case errors.Is(err, scoreboard.ErrPlayerNotFound):
		return messaging.ErrorTypeUnknownPlayer, ""
	case errors.Is(err, scoreboard.ErrTooFewPlayers),
		errors.Is(err, scoreboard.ErrTooManyPlayers),
		errors.Is(err, scoreboard.ErrDuplicateName),
		errors.Is(err, scoreboard.ErrNoSetup):
		return messaging.ErrorTypeInvalidSetup, err.Error()
	case errors.Is(err, scoreboard.ErrNoRounds):
		return messaging.ErrorTypeNothingToUndo, ""
	case errors.Is(err, scoreboard.ErrGameNotOver), errors.Is(err, scoreboard.ErrInvalidScoreLimit):
		return messaging.ErrorTypeCannotResume, err.Error()
	default:
		return messaging.ErrorTypeStorage, ""
	}
}
