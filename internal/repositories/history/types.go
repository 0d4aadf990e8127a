package history

import "github.com/KirkDiggler/dutch/internal/models"

// SaveGameInput contains parameters for archiving a game
type SaveGameInput struct {
	ChannelID string
	Game      *models.Game
}

// ListGamesInput contains parameters for listing archived games
type ListGamesInput struct {
	ChannelID string

	// Limit caps the number of games returned; zero returns all of them
	Limit int
}

// ListGamesOutput contains the archived games, newest first
type ListGamesOutput struct {
	Games []*models.Game
}

// DeleteGameInput contains parameters for removing one archived game
type DeleteGameInput struct {
	ChannelID string
	GameID    string
}

// ClearGamesInput contains parameters for wiping the archive
type ClearGamesInput struct {
	ChannelID string
}
