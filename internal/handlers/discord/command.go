package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo    = 0x2b7de9
	colorSuccess = 0x00ff00
	colorWarning = 0xffa500
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a slash command interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// ComponentHandler is implemented by commands that own message components
type ComponentHandler interface {
	// HandlesComponent reports whether customID belongs to this handler
	HandlesComponent(customID string) bool

	// HandleComponent processes a button click
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithEmbeds sends embeds, optionally with one row of buttons
func RespondWithEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, buttons []discordgo.MessageComponent) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Embeds:     embeds,
		Components: actionRows(buttons),
	})
}

// RespondWithEphemeralEmbed sends an embed only the caller can see
func RespondWithEphemeralEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// RespondWithError sends an ephemeral error embed, footed with a reference tag when given
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, title, message, tag string) error {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorError,
	}
	if tag != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: tag}
	}
	return RespondWithEphemeralEmbed(s, i, embed)
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func actionRows(buttons []discordgo.MessageComponent) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}
