package stats

import (
	"math"
	"testing"

	"github.com/KirkDiggler/dutch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerWith(id string, scores ...int) *models.Player {
	p := &models.Player{ID: id, Name: id}
	for _, s := range scores {
		p.Rounds = append(p.Rounds, models.Round{Score: s})
		p.TotalScore += s
	}
	return p
}

func TestCalculate_NoRounds(t *testing.T) {
	got := Calculate(&models.Player{ID: "a"}, nil)

	assert.Nil(t, got.BestRound)
	assert.Nil(t, got.WorstRound)
	assert.Zero(t, got.AverageScore)
	assert.Zero(t, got.ConsistencyScore)
	assert.Zero(t, got.ImprovementRate)
	assert.Zero(t, got.WinStreak)
	assert.Zero(t, got.DutchCount)
}

func TestCalculate_NilPlayer(t *testing.T) {
	assert.NotPanics(t, func() {
		got := Calculate(nil, []*models.Player{nil})
		assert.Equal(t, models.PlayerStatistics{}, got)
	})
}

func TestCalculate_SingleRoundAverages(t *testing.T) {
	alice := playerWith("alice", 5)
	bob := playerWith("bob", -2)
	cara := playerWith("cara", -3)
	table := []*models.Player{alice, bob, cara}

	assert.Equal(t, 5.0, Calculate(alice, table).AverageScore)
	assert.Equal(t, -2.0, Calculate(bob, table).AverageScore)
	assert.Equal(t, -3.0, Calculate(cara, table).AverageScore)
}

func TestCalculate_BestRoundIgnoresZero(t *testing.T) {
	got := Calculate(playerWith("a", 0, 0, 7), nil)

	require.NotNil(t, got.BestRound)
	assert.Equal(t, 7, *got.BestRound)
	require.NotNil(t, got.WorstRound)
	assert.Equal(t, 7, *got.WorstRound)
}

func TestCalculate_AllZeroRounds(t *testing.T) {
	got := Calculate(playerWith("a", 0, 0), nil)

	assert.Nil(t, got.BestRound)
	require.NotNil(t, got.WorstRound)
	assert.Equal(t, 0, *got.WorstRound)
}

func TestCalculate_NegativeOnlyHasNoBestRound(t *testing.T) {
	got := Calculate(playerWith("a", -4, -1), nil)

	assert.Nil(t, got.BestRound)
	require.NotNil(t, got.WorstRound)
	assert.Equal(t, -1, *got.WorstRound)
}

func TestCalculate_ImprovementAtThreshold(t *testing.T) {
	got := Calculate(playerWith("a", 0, 6, 12, 18, 24, 30), nil)

	assert.Equal(t, 18.0, got.ImprovementRate)
}

func TestCalculate_ImprovementBelowThreshold(t *testing.T) {
	got := Calculate(playerWith("a", 30, 24, 18, 12, 6), nil)

	assert.Zero(t, got.ImprovementRate)
}

func TestCalculate_ImprovementNegativeWhenScoresDrop(t *testing.T) {
	got := Calculate(playerWith("a", 20, 20, 20, 5, 10, 3, 2), nil)

	// last three: 10, 3, 2 -> 5; first three -> 20
	assert.Equal(t, -15.0, got.ImprovementRate)
}

func TestCalculate_Consistency(t *testing.T) {
	got := Calculate(playerWith("a", 2, 4, 4, 4, 5, 5, 7, 9), nil)

	assert.Equal(t, 5.0, got.AverageScore)
	assert.Equal(t, 2.0, got.ConsistencyScore)
}

func TestCalculate_RoundsToOneDecimal(t *testing.T) {
	got := Calculate(playerWith("a", 1, 2, 2), nil)

	assert.Equal(t, 1.7, got.AverageScore)
	assert.Equal(t, 0.5, got.ConsistencyScore)
	assert.False(t, math.IsNaN(got.ConsistencyScore))
}

func TestCalculate_DutchCount(t *testing.T) {
	p := &models.Player{ID: "a", Rounds: []models.Round{
		{Score: 3, IsDutch: true},
		{Score: 8},
		{Score: 0, IsDutch: true},
	}}

	assert.Equal(t, 2, Calculate(p, nil).DutchCount)
}

func TestWinStreak(t *testing.T) {
	alice := playerWith("alice", 1, 2, 9, 1, 1, 1)
	bob := playerWith("bob", 5, 2, 3, 4, 4, 4)
	table := []*models.Player{alice, bob}

	// ties count, round three breaks the run
	assert.Equal(t, 3, WinStreak(alice, table))
	assert.Equal(t, 2, WinStreak(bob, table))
}

func TestWinStreak_MissingOpponentRoundDoesNotBreak(t *testing.T) {
	alice := playerWith("alice", 1, 1, 1)
	bob := playerWith("bob", 3)
	table := []*models.Player{alice, bob}

	assert.Equal(t, 3, WinStreak(alice, table))
}

func TestWinStreak_AloneWinsEveryRound(t *testing.T) {
	alice := playerWith("alice", 10, 20)

	assert.Equal(t, 2, WinStreak(alice, []*models.Player{alice}))
	assert.Equal(t, 2, WinStreak(alice, nil))
}

func TestRecompute(t *testing.T) {
	alice := playerWith("alice", 1, 2)
	bob := playerWith("bob", 3, 4)
	table := []*models.Player{alice, nil, bob}

	Recompute(table)

	require.NotNil(t, alice.Stats)
	require.NotNil(t, bob.Stats)
	assert.Equal(t, 2, alice.Stats.WinStreak)
	assert.Equal(t, 0, bob.Stats.WinStreak)
	assert.Equal(t, 3.5, bob.Stats.AverageScore)
}
