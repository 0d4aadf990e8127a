package stats

import (
	"math"

	"github.com/KirkDiggler/dutch/internal/models"
)

// improvementWindow is the number of rounds compared at each end of the game
const improvementWindow = 3

// Calculate derives the statistics for player from its rounds. players is the
// whole table and is only used for the win streak; player may or may not be
// part of it. A nil player yields the zero value.
func Calculate(player *models.Player, players []*models.Player) models.PlayerStatistics {
	var result models.PlayerStatistics
	if player == nil || len(player.Rounds) == 0 {
		return result
	}

	rounds := player.Rounds
	n := float64(len(rounds))

	var sum float64
	best, worst := 0, rounds[0].Score
	hasBest := false
	for _, r := range rounds {
		sum += float64(r.Score)
		if r.IsDutch {
			result.DutchCount++
		}
		if r.Score > worst {
			worst = r.Score
		}
		// A zero round is an unset entry as often as a perfect one.
		if r.Score > 0 && (!hasBest || r.Score < best) {
			best = r.Score
			hasBest = true
		}
	}

	if hasBest {
		result.BestRound = intPtr(best)
	}
	result.WorstRound = intPtr(worst)

	mean := sum / n
	result.AverageScore = roundTenth(mean)

	var variance float64
	for _, r := range rounds {
		d := float64(r.Score) - mean
		variance += d * d
	}
	result.ConsistencyScore = roundTenth(math.Sqrt(variance / n))

	if len(rounds) >= improvementWindow*2 {
		first := meanOf(rounds[:improvementWindow])
		last := meanOf(rounds[len(rounds)-improvementWindow:])
		result.ImprovementRate = roundTenth(last - first)
	}

	result.WinStreak = WinStreak(player, players)

	return result
}

// WinStreak returns the longest run of consecutive rounds in which player
// scored no more than anyone else at the same round index. Opponents with no
// round recorded at an index are left out of that comparison.
func WinStreak(player *models.Player, players []*models.Player) int {
	if player == nil {
		return 0
	}

	longest, current := 0, 0
	for i, r := range player.Rounds {
		won := true
		for _, other := range players {
			if other == nil || other == player || (other.ID != "" && other.ID == player.ID) {
				continue
			}
			if i >= len(other.Rounds) {
				continue
			}
			if r.Score > other.Rounds[i].Score {
				won = false
				break
			}
		}

		if won {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}

	return longest
}

// Recompute refreshes Stats on every player
func Recompute(players []*models.Player) {
	for _, p := range players {
		if p == nil {
			continue
		}
		s := Calculate(p, players)
		p.Stats = &s
	}
}

func meanOf(rounds []models.Round) float64 {
	if len(rounds) == 0 {
		return 0
	}
	var sum float64
	for _, r := range rounds {
		sum += float64(r.Score)
	}
	return sum / float64(len(rounds))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func intPtr(v int) *int {
	return &v
}
