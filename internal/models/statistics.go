package models

// PlayerStatistics is derived from a player's rounds
type PlayerStatistics struct {
	// BestRound is the lowest non-zero score, nil when there is none
	BestRound *int `json:"bestRound"`

	// WorstRound is the highest score, nil when no rounds exist
	WorstRound *int `json:"worstRound"`

	// AverageScore is the mean round score, one decimal
	AverageScore float64 `json:"averageScore"`

	// DutchCount is the number of rounds this player called Dutch
	DutchCount int `json:"dutchCount"`

	// ConsistencyScore is the population standard deviation of round scores, one decimal
	ConsistencyScore float64 `json:"consistencyScore"`

	// ImprovementRate is mean(last three) minus mean(first three), negative is better
	ImprovementRate float64 `json:"improvementRate"`

	// WinStreak is the longest run of rounds won or tied for lowest
	WinStreak int `json:"winStreak"`
}
