package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
)

var (
	// ErrNoScores is returned when the score text is empty
	ErrNoScores = errors.New("no scores entered")

	// ErrInvalidScore is returned for a token that is not a whole number
	// within scoreboard.MaxRoundScore of zero
	ErrInvalidScore = errors.New("not a whole number in range")
)

// ParseScores reads whole numbers separated by commas or whitespace. Each
// score must lie within scoreboard.MaxRoundScore of zero.
func ParseScores(text string) ([]int, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, ErrNoScores
	}

	scores := make([]int, 0, len(tokens))
	for _, token := range tokens {
		score, err := strconv.Atoi(token)
		if err != nil || score > scoreboard.MaxRoundScore || score < -scoreboard.MaxRoundScore {
			return nil, fmt.Errorf("%w: %q", ErrInvalidScore, token)
		}
		scores = append(scores, score)
	}

	return scores, nil
}

// ParseNames splits a player list on commas, or on whitespace when there is
// no comma. Blank entries are dropped.
func ParseNames(text string) []string {
	var parts []string
	if strings.Contains(text, ",") {
		parts = strings.Split(text, ",")
	} else {
		parts = strings.Fields(text)
	}

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
