package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/KirkDiggler/dutch/internal/stats"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGame() *models.GameState {
	players := []*models.Player{
		{ID: "p1", Name: "Alice", TotalScore: 12, Rounds: []models.Round{{Score: 12}}},
		{ID: "p2", Name: "Bob", TotalScore: 3, Rounds: []models.Round{{Score: 3, IsDutch: true}}},
	}
	stats.Recompute(players)

	return &models.GameState{
		GameID:       "game-1",
		Players:      players,
		RoundHistory: []models.RoundHistoryEntry{{Scores: []int{12, 3}, DutchPlayerID: "p2"}},
		ScoreLimit:   100,
	}
}

func buttonIDs(components []discordgo.MessageComponent) []string {
	ids := make([]string, 0, len(components))
	for _, c := range components {
		if b, ok := c.(discordgo.Button); ok {
			ids = append(ids, b.CustomID)
		}
	}
	return ids
}

func TestRenderScoreboard(t *testing.T) {
	game := testGame()

	embed := renderScoreboard(game, stats.Standings(game.Players))

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "1. Bob 👑", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "**3** points")
	assert.Contains(t, embed.Fields[0].Value, "(Dutch)")
	assert.Equal(t, "2. Alice", embed.Fields[1].Name)
	assert.Contains(t, embed.Description, "playing to 100")

	game.IsGameOver = true
	embed = renderScoreboard(game, game.Players)
	assert.Contains(t, embed.Description, "Game over")
}

func TestRenderPlayerStats_EmptyValues(t *testing.T) {
	player := &models.Player{ID: "p1", Name: "Alice"}

	embed := renderPlayerStats(player, stats.Calculate(player, []*models.Player{player}))

	values := map[string]string{}
	for _, f := range embed.Fields {
		values[f.Name] = f.Value
	}
	assert.Equal(t, stats.NotAvailable, values["Best Round"])
	assert.Equal(t, stats.NotAvailable, values["Worst Round"])
	assert.Equal(t, "0.0", values["Average"])
	assert.Equal(t, stats.Placeholder, values["Dutch Calls"])
	assert.Equal(t, stats.Placeholder, values["Win Streak"])
}

func TestRenderRoundPreview(t *testing.T) {
	game := testGame()

	embed := renderRoundPreview(&scoreboard.PreviewRoundOutput{
		Scores:         []int{18, 2},
		PenaltyApplied: true,
		DutchPlayerID:  "p1",
		Players:        game.Players,
	})

	assert.Contains(t, embed.Description, "Alice: 18 (Dutch)")
	assert.Contains(t, embed.Description, "Bob: 2")
	assert.Contains(t, embed.Description, "penalty applied")
}

func TestRenderGameOver(t *testing.T) {
	summary := &models.Game{
		Rounds: 7,
		Winner: "Bob",
		Players: []*models.GamePlayer{
			{Name: "Alice", Score: 101},
			{Name: "Bob", Score: 40},
		},
	}

	embed := renderGameOver(summary, "", "All hail Bob")
	assert.Equal(t, "Game Over!", embed.Title)
	assert.Contains(t, embed.Description, "All hail Bob")
	assert.Contains(t, embed.Description, "🏆 Bob: 40")
	assert.Equal(t, "7 rounds played", embed.Footer.Text)
}

func TestRenderHistory(t *testing.T) {
	embed := renderHistory(nil)
	assert.Equal(t, "No finished games yet.", embed.Description)

	embed = renderHistory([]*models.Game{{
		Date:    time.Date(2025, 4, 19, 0, 0, 0, 0, time.UTC),
		Winner:  "Cara",
		Rounds:  5,
		Players: []*models.GamePlayer{{Name: "Cara", Score: 20}, {Name: "Dan", Score: 100}},
	}})
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Apr 19 2025 · won by Cara", embed.Fields[0].Name)
	assert.Contains(t, embed.Fields[0].Value, "Cara 20, Dan 100")
}

func TestGameButtons(t *testing.T) {
	game := testGame()
	assert.Equal(t, []string{ButtonBoard, ButtonUndo}, buttonIDs(gameButtons(game)))

	game.IsGameOver = true
	assert.Equal(t, []string{ButtonBoard, ButtonUndo, ButtonContinue, ButtonRestart}, buttonIDs(gameButtons(game)))

	game.RoundHistory = nil
	game.IsGameOver = false
	assert.Equal(t, []string{ButtonBoard}, buttonIDs(gameButtons(game)))
}
