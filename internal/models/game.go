package models

import (
	"time"
)

// Game is the archived summary of a finished game
type Game struct {
	// ID is the game ID of the session that produced this summary
	ID string `json:"id"`

	// Date is when the summary was recorded
	Date time.Time `json:"date"`

	// Rounds is the number of rounds played
	Rounds int `json:"rounds"`

	// Players are the final standings in seat order
	Players []*GamePlayer `json:"players"`

	// Winner is the name of the player with the lowest total
	Winner string `json:"winner"`
}

// GamePlayer is a player's line in a game summary
type GamePlayer struct {
	Name  string `json:"name"`
	Score int    `json:"score"`

	// IsDutch marks the player who called Dutch in the final round
	IsDutch bool `json:"isDutch"`
}
