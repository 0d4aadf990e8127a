package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/KirkDiggler/dutch/internal/stats"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonUndo     = "dutch_undo"
	ButtonBoard    = "dutch_board"
	ButtonContinue = "dutch_continue"
	ButtonRestart  = "dutch_restart"
)

// ContinueStep is how far the continue button raises the score limit
const ContinueStep = 50

// renderScoreboard renders the standings of a game, lowest total first
func renderScoreboard(game *models.GameState, standings []*models.Player) *discordgo.MessageEmbed {
	description := fmt.Sprintf("Round %d · playing to %d", len(game.RoundHistory), game.ScoreLimit)
	color := colorInfo
	if game.IsGameOver {
		description = fmt.Sprintf("Game over after %d rounds · limit %d", len(game.RoundHistory), game.ScoreLimit)
		color = colorWarning
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(standings))
	for rank, p := range standings {
		name := fmt.Sprintf("%d. %s", rank+1, p.Name)
		if rank == 0 && len(game.RoundHistory) > 0 {
			name += " 👑"
		}

		value := fmt.Sprintf("**%d** points", p.TotalScore)
		if n := len(p.Rounds); n > 0 {
			last := p.Rounds[n-1]
			value += fmt.Sprintf("\nLast round: %d", last.Score)
			if last.IsDutch {
				value += " (Dutch)"
			}
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  value,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Dutch Scoreboard",
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

// renderPlayerStats renders one player's statistics
func renderPlayerStats(player *models.Player, playerStats models.PlayerStatistics) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Stats for %s", player.Name),
		Description: fmt.Sprintf("%d points over %d rounds", player.TotalScore, len(player.Rounds)),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Best Round", Value: stats.FormatOptional(playerStats.BestRound), Inline: true},
			{Name: "Worst Round", Value: stats.FormatOptional(playerStats.WorstRound), Inline: true},
			{Name: "Average", Value: stats.FormatDecimal(playerStats.AverageScore), Inline: true},
			{Name: "Dutch Calls", Value: stats.FormatCount(playerStats.DutchCount), Inline: true},
			{Name: "Consistency", Value: stats.FormatDecimal(playerStats.ConsistencyScore), Inline: true},
			{Name: "Improvement", Value: stats.FormatDecimal(playerStats.ImprovementRate), Inline: true},
			{Name: "Win Streak", Value: stats.FormatCount(playerStats.WinStreak), Inline: true},
		},
	}
}

// renderRoundPreview renders the scores a round would commit
func renderRoundPreview(output *scoreboard.PreviewRoundOutput) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(output.Players))
	for i, p := range output.Players {
		line := fmt.Sprintf("%s: %d", p.Name, output.Scores[i])
		if p.ID == output.DutchPlayerID {
			line += " (Dutch)"
		}
		lines = append(lines, line)
	}

	description := strings.Join(lines, "\n")
	if output.PenaltyApplied {
		description += "\n\nDutch penalty applied."
	}

	return &discordgo.MessageEmbed{
		Title:       "Round Preview",
		Description: description,
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Nothing has been saved yet"},
	}
}

// renderRound renders a committed round with optional commentary
func renderRound(output *scoreboard.AddRoundOutput, commentary string) *discordgo.MessageEmbed {
	game := output.Game
	lines := make([]string, 0, len(game.Players))
	for i, p := range game.Players {
		line := fmt.Sprintf("%s: +%d → %d", p.Name, output.Round.Scores[i], p.TotalScore)
		if p.ID == output.Round.DutchPlayerID {
			line += " (Dutch)"
		}
		lines = append(lines, line)
	}

	if output.PenaltyApplied {
		lines = append(lines, "", "Dutch penalty applied.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round %d", len(game.RoundHistory)),
		Description: strings.Join(lines, "\n"),
		Color:       colorSuccess,
	}
	if commentary != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: commentary}
	}
	return embed
}

// renderGameOver renders the final standings of an archived game
func renderGameOver(summary *models.Game, title, message string) *discordgo.MessageEmbed {
	if title == "" {
		title = "Game Over!"
	}

	lines := make([]string, 0, len(summary.Players))
	for _, p := range summary.Players {
		line := fmt.Sprintf("%s: %d", p.Name, p.Score)
		if p.Name == summary.Winner {
			line = "🏆 " + line
		}
		lines = append(lines, line)
	}

	description := strings.Join(lines, "\n")
	if message != "" {
		description = message + "\n\n" + description
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorWarning,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d rounds played", summary.Rounds)},
	}
}

// renderHistory renders archived games, newest first
func renderHistory(games []*models.Game) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Game History",
		Color: colorInfo,
	}

	if len(games) == 0 {
		embed.Description = "No finished games yet."
		return embed
	}

	for _, g := range games {
		scores := make([]string, 0, len(g.Players))
		for _, p := range g.Players {
			scores = append(scores, fmt.Sprintf("%s %d", p.Name, p.Score))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s · won by %s", g.Date.Format("Jan 2 2006"), g.Winner),
			Value: fmt.Sprintf("%s\n%d rounds", strings.Join(scores, ", "), g.Rounds),
		})
	}

	return embed
}

// renderSettings renders the rules and flags
func renderSettings(settings *scoreboard.GetSettingsOutput) *discordgo.MessageEmbed {
	clamp := "no"
	if settings.ClampNegativeScores {
		clamp = "yes"
	}

	return &discordgo.MessageEmbed{
		Title: "Dutch Rules",
		Description: "Lowest total wins. The game ends when someone reaches the score limit. " +
			"Call Dutch when you think you hold the lowest hand; if anyone had less, you take the penalty.",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Score Limit", Value: fmt.Sprintf("%d", settings.ScoreLimit), Inline: true},
			{Name: "Dutch Penalty", Value: fmt.Sprintf("+%d", settings.DutchPenalty), Inline: true},
			{Name: "Max Players", Value: fmt.Sprintf("%d", settings.MaxPlayers), Inline: true},
			{Name: "Negatives Become Zero", Value: clamp, Inline: true},
			{Name: "Commentary", Value: onOff(settings.CommentaryEnabled), Inline: true},
			{Name: "Sound", Value: onOff(settings.SoundEnabled), Inline: true},
		},
	}
}

// gameButtons returns the buttons that fit the game's state
func gameButtons(game *models.GameState) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Scoreboard",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonBoard,
		},
	}

	if len(game.RoundHistory) > 0 {
		buttons = append(buttons, discordgo.Button{
			Label:    "Undo Round",
			Style:    discordgo.DangerButton,
			CustomID: ButtonUndo,
		})
	}

	if game.IsGameOver {
		buttons = append(buttons,
			discordgo.Button{
				Label:    fmt.Sprintf("Continue (+%d)", ContinueStep),
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonContinue,
			},
			discordgo.Button{
				Label:    "New Game",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonRestart,
			},
		)
	}

	return buttons
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
