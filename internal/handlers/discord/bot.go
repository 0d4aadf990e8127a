package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/dutch/internal/services/messaging"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *zerolog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	ScoreboardService scoreboard.Service
	MessagingService  messaging.Service

	Logger *zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ScoreboardService == nil {
		return nil, errors.New("scoreboard service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	dutchCmd := NewDutchCommand(b.config.ScoreboardService, b.config.MessagingService, b.logger)
	if err := b.RegisterCommand(dutchCmd); err != nil {
		return fmt.Errorf("failed to register dutch command: %w", err)
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop removes registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
		} else {
			b.logger.Info().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for GuildID when set, globally otherwise.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	b.logger.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", b.config.GuildID).
		Msg("registered command")

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction routes slash commands and button clicks
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction hands a button click to the command that owns it
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	for _, cmd := range b.commands {
		if h, ok := cmd.(ComponentHandler); ok && h.HandlesComponent(customID) {
			return h.HandleComponent(s, i)
		}
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
}
