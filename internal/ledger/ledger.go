package ledger

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/KirkDiggler/dutch/internal/stats"
)

// MaxRoundScore bounds the magnitude of a single entered score
const MaxRoundScore = 1000

// Ledger owns every mutation of a game's rounds. Totals and stats on the
// players are kept in step with the round history.
type Ledger struct {
	state *models.GameState
}

// New wraps a validated game state
func New(state *models.GameState) (*Ledger, error) {
	if err := Validate(state); err != nil {
		return nil, err
	}
	return &Ledger{state: state}, nil
}

// State returns the wrapped game state
func (l *Ledger) State() *models.GameState {
	return l.state
}

// RoundCount returns the number of committed rounds
func (l *Ledger) RoundCount() int {
	return len(l.state.RoundHistory)
}

// AddRound appends a round with one score per player, in seat order.
// dutchPlayerID may be empty.
func (l *Ledger) AddRound(scores []int, dutchPlayerID string) (*models.RoundHistoryEntry, error) {
	players := l.state.Players
	if len(scores) != len(players) {
		return nil, fmt.Errorf("%w: got %d scores for %d players", ErrScoreCount, len(scores), len(players))
	}
	if dutchPlayerID != "" && l.state.PlayerIndex(dutchPlayerID) < 0 {
		return nil, ErrUnknownDutchPlayer
	}
	for i, p := range players {
		if overflows(p.TotalScore, scores[i]) {
			return nil, fmt.Errorf("%w: %s", ErrTotalOverflow, p.Name)
		}
	}

	entry := models.RoundHistoryEntry{
		Scores:        append([]int(nil), scores...),
		DutchPlayerID: dutchPlayerID,
	}
	l.state.RoundHistory = append(l.state.RoundHistory, entry)

	for i, p := range players {
		p.Rounds = append(p.Rounds, models.Round{
			Score:   scores[i],
			IsDutch: dutchPlayerID != "" && p.ID == dutchPlayerID,
		})
		p.TotalScore += scores[i]
	}

	stats.Recompute(players)

	return &entry, nil
}

func overflows(total, score int) bool {
	if score > 0 {
		return total > math.MaxInt-score
	}
	return total < math.MinInt-score
}

// UndoLastRound removes the most recent round from the history and from every
// player. It returns ErrNoRounds and changes nothing when the ledger is empty.
func (l *Ledger) UndoLastRound() (*models.RoundHistoryEntry, error) {
	n := len(l.state.RoundHistory)
	if n == 0 {
		return nil, ErrNoRounds
	}

	entry := l.state.RoundHistory[n-1]
	l.state.RoundHistory = l.state.RoundHistory[:n-1]

	for _, p := range l.state.Players {
		last := p.Rounds[len(p.Rounds)-1]
		p.Rounds = p.Rounds[:len(p.Rounds)-1]
		p.TotalScore -= last.Score
	}

	stats.Recompute(l.state.Players)

	return &entry, nil
}

// LimitReached reports whether any total is at or above the score limit
func (l *Ledger) LimitReached() bool {
	if l.state.ScoreLimit <= 0 {
		return false
	}
	for _, p := range l.state.Players {
		if p.TotalScore >= l.state.ScoreLimit {
			return true
		}
	}
	return false
}

// HighestTotal returns the largest total at the table
func (l *Ledger) HighestTotal() int {
	highest := l.state.Players[0].TotalScore
	for _, p := range l.state.Players[1:] {
		if p.TotalScore > highest {
			highest = p.TotalScore
		}
	}
	return highest
}

// Winner returns the player with the lowest total; the earlier seat wins ties
func (l *Ledger) Winner() *models.Player {
	return stats.Standings(l.state.Players)[0]
}

// Summary builds the archived record for the game at its current point
func (l *Ledger) Summary() *models.Game {
	lastDutch := ""
	if n := len(l.state.RoundHistory); n > 0 {
		lastDutch = l.state.RoundHistory[n-1].DutchPlayerID
	}

	players := make([]*models.GamePlayer, 0, len(l.state.Players))
	for _, p := range l.state.Players {
		players = append(players, &models.GamePlayer{
			Name:    p.Name,
			Score:   p.TotalScore,
			IsDutch: lastDutch != "" && p.ID == lastDutch,
		})
	}

	return &models.Game{
		ID:      l.state.GameID,
		Rounds:  len(l.state.RoundHistory),
		Players: players,
		Winner:  l.Winner().Name,
	}
}

// Validate checks the invariants of a game state loaded from anywhere outside
// the ledger: at least two players with distinct IDs, one round per player per
// history entry with matching scores and Dutch flags, and totals equal to the
// sum of rounds.
func Validate(state *models.GameState) error {
	if state == nil {
		return ErrNilState
	}
	if len(state.Players) < 2 {
		return ErrTooFewPlayers
	}

	seen := make(map[string]struct{}, len(state.Players))
	for _, p := range state.Players {
		if p == nil || p.ID == "" {
			return ErrInvalidPlayer
		}
		if _, ok := seen[p.ID]; ok {
			return ErrDuplicatePlayer
		}
		seen[p.ID] = struct{}{}
	}

	for j, entry := range state.RoundHistory {
		if len(entry.Scores) != len(state.Players) {
			return fmt.Errorf("%w: round %d", ErrScoreCount, j+1)
		}
		if entry.DutchPlayerID != "" {
			if _, ok := seen[entry.DutchPlayerID]; !ok {
				return fmt.Errorf("%w: round %d", ErrUnknownDutchPlayer, j+1)
			}
		}
	}

	for i, p := range state.Players {
		if len(p.Rounds) != len(state.RoundHistory) {
			return fmt.Errorf("%w: %s", ErrRoundsMisaligned, p.Name)
		}

		sum := 0
		for j, r := range p.Rounds {
			entry := state.RoundHistory[j]
			if r.Score != entry.Scores[i] || r.IsDutch != (entry.DutchPlayerID == p.ID) {
				return fmt.Errorf("%w: %s round %d", ErrRoundsMisaligned, p.Name, j+1)
			}
			sum += r.Score
		}
		if sum != p.TotalScore {
			return fmt.Errorf("%w: %s", ErrTotalMismatch, p.Name)
		}
	}

	return nil
}
