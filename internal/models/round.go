package models

// Round is one player's entry for a single round
type Round struct {
	// Score is the points taken this round; lower is better
	Score int `json:"score"`

	// IsDutch is true when this player called Dutch for the round
	IsDutch bool `json:"isDutch"`
}

// RoundHistoryEntry is one row of the game ledger
type RoundHistoryEntry struct {
	// Scores holds one score per player, aligned with the player order
	Scores []int `json:"scores"`

	// DutchPlayerID is the player flagged Dutch for the round, if any
	DutchPlayerID string `json:"dutchPlayerId,omitempty"`
}
