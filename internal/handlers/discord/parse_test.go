package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScores(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []int
		wantErr error
	}{
		{name: "spaces", input: "5 -2 -3", want: []int{5, -2, -3}},
		{name: "commas", input: "5,0, 12", want: []int{5, 0, 12}},
		{name: "mixed separators", input: " 1;2 ,\t3 ", want: []int{1, 2, 3}},
		{name: "empty", input: "   ", wantErr: ErrNoScores},
		{name: "word", input: "5 abc 3", wantErr: ErrInvalidScore},
		{name: "decimal", input: "5 2.5", wantErr: ErrInvalidScore},
		{name: "at bound", input: "1000 -1000", want: []int{1000, -1000}},
		{name: "above bound", input: "1001 1", wantErr: ErrInvalidScore},
		{name: "below bound", input: "1 -1001", wantErr: ErrInvalidScore},
		{name: "max int", input: "9223372036854775807 1", wantErr: ErrInvalidScore},
		{name: "beyond int", input: "99999999999999999999 1", wantErr: ErrInvalidScore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScores(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNames(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob", "Cara"}, ParseNames("Alice, Bob,,Cara "))
	assert.Equal(t, []string{"Alice", "Bob"}, ParseNames("Alice   Bob"))
	assert.Equal(t, []string{"Mary Ann", "Bob"}, ParseNames("Mary Ann, Bob"))
	assert.Empty(t, ParseNames(" , "))
}
