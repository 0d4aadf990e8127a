package ledger

// DefaultDutchPenalty is added to a Dutch caller who did not have the lowest hand
const DefaultDutchPenalty = 10

// ApplyDutchPenalty returns a copy of scores with penalty added to the Dutch
// caller at dutchIndex when some other player has a lower non-zero score.
// Zero scores are not counted as the lowest hand. Call it whenever the scores
// or the Dutch flag change; committed state is never touched.
func ApplyDutchPenalty(scores []int, dutchIndex int, penalty int) ([]int, bool) {
	out := append([]int(nil), scores...)
	if penalty == 0 || dutchIndex < 0 || dutchIndex >= len(out) {
		return out, false
	}

	caller := out[dutchIndex]
	for i, s := range out {
		if i == dutchIndex || s == 0 {
			continue
		}
		if s < caller {
			out[dutchIndex] = caller + penalty
			return out, true
		}
	}

	return out, false
}

// ClampScores returns a copy of scores with negative entries raised to zero
func ClampScores(scores []int) []int {
	out := make([]int, len(scores))
	for i, s := range scores {
		if s < 0 {
			s = 0
		}
		out[i] = s
	}
	return out
}
