package models

import "strings"

// Player represents a seat at the scoreboard
type Player struct {
	// ID is the opaque identifier assigned when the game is created
	ID string `json:"id"`

	// Name is the display name entered during setup
	Name string `json:"name"`

	// TotalScore is the sum of every round score for this player
	TotalScore int `json:"totalScore"`

	// Rounds holds this player's score for each round, oldest first
	Rounds []Round `json:"rounds"`

	// Stats is derived from Rounds and never authoritative
	Stats *PlayerStatistics `json:"stats,omitempty"`
}

// MatchesRef reports whether ref is this player's ID or, ignoring case, their name
func (p *Player) MatchesRef(ref string) bool {
	if p == nil {
		return false
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}
	return p.ID == ref || strings.EqualFold(p.Name, ref)
}
