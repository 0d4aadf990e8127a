package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// options indexes a subcommand's options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// String returns the named string option, or "" when it was not given
func (o options) String(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
