package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusSetup indicates no game exists yet and names are being collected
	GameStatusSetup GameStatus = "setup"

	// GameStatusPlaying indicates rounds are being entered
	GameStatusPlaying GameStatus = "playing"

	// GameStatusOver indicates a player reached the score limit
	GameStatusOver GameStatus = "over"
)

// GameState is the persisted snapshot of the game in progress
type GameState struct {
	// GameID is the unique identifier for the game
	GameID string `json:"gameId"`

	// Players are the seats, in entry order
	Players []*Player `json:"players"`

	// RoundHistory is the ledger of rounds, oldest first
	RoundHistory []RoundHistoryEntry `json:"roundHistory"`

	// ScoreLimit ends the game once any total reaches it
	ScoreLimit int `json:"scoreLimit"`

	// IsGameOver is set when the score limit was reached
	IsGameOver bool `json:"isGameOver"`

	// GameStartTime is when the game was created
	GameStartTime time.Time `json:"gameStartTime"`

	// DutchPenalty is added to a Dutch caller who is not lowest; zero disables it
	DutchPenalty int `json:"dutchPenalty"`

	// ClampNegativeScores raises negative entries to zero before they are committed
	ClampNegativeScores bool `json:"clampNegativeScores"`
}

// Status returns the lifecycle state of the game
func (g *GameState) Status() GameStatus {
	if g == nil {
		return GameStatusSetup
	}
	if g.IsGameOver {
		return GameStatusOver
	}
	return GameStatusPlaying
}

// FindPlayer returns the player matching ref by ID or name, or nil
func (g *GameState) FindPlayer(ref string) *Player {
	if g == nil {
		return nil
	}
	for _, p := range g.Players {
		if p.ID == ref {
			return p
		}
	}
	for _, p := range g.Players {
		if p.MatchesRef(ref) {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the seat index for the given player ID, or -1
func (g *GameState) PlayerIndex(playerID string) int {
	if g == nil || playerID == "" {
		return -1
	}
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// PlayerNames returns the display names in seat order
func (g *GameState) PlayerNames() []string {
	if g == nil {
		return nil
	}
	names := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		names = append(names, p.Name)
	}
	return names
}
