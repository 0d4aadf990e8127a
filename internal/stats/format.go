package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/KirkDiggler/dutch/internal/models"
)

const (
	// NotAvailable is shown for statistics that have no value yet
	NotAvailable = "N/A"

	// Placeholder is shown for empty counters
	Placeholder = "-"
)

// FormatOptional renders an optional round score
func FormatOptional(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}

// FormatDecimal renders a one-decimal statistic, NaN and infinities become N/A
func FormatDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatCount renders a counter, zero becomes the placeholder
func FormatCount(v int) string {
	if v <= 0 {
		return Placeholder
	}
	return strconv.Itoa(v)
}

// StatsOrDefault returns the player's stats, computing them when missing
func StatsOrDefault(player *models.Player, players []*models.Player) models.PlayerStatistics {
	if player == nil {
		return models.PlayerStatistics{}
	}
	if player.Stats != nil {
		return *player.Stats
	}
	return Calculate(player, players)
}

// Standings returns the players ordered by total score, lowest first. Ties
// keep seat order.
func Standings(players []*models.Player) []*models.Player {
	ordered := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p != nil {
			ordered = append(ordered, p)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TotalScore < ordered[j].TotalScore
	})
	return ordered
}
