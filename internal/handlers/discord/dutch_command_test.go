package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/dutch/internal/services/messaging"
	"github.com/KirkDiggler/dutch/internal/services/scoreboard"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestDutchCommandDefinition(t *testing.T) {
	cmd := NewDutchCommand(nil, nil, nil)

	def := cmd.GetCommand()
	assert.Equal(t, "dutch", def.Name)

	var names []string
	for _, opt := range def.Options {
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		names = append(names, opt.Name)
	}
	assert.Equal(t, []string{
		"setup", "start", "round", "preview", "undo", "board", "stats",
		"history", "continue", "end", "restart", "rules", "commentary",
	}, names)
}

func TestDutchCommandHandlesComponent(t *testing.T) {
	cmd := NewDutchCommand(nil, nil, nil)

	for _, id := range []string{ButtonUndo, ButtonBoard, ButtonContinue, ButtonRestart} {
		assert.True(t, cmd.HandlesComponent(id), id)
	}
	assert.False(t, cmd.HandlesComponent("roll_dice"))
}

func TestClassifyError(t *testing.T) {
	testCases := []struct {
		err        error
		want       messaging.ErrorType
		wantDetail bool
	}{
		{err: scoreboard.ErrNoActiveGame, want: messaging.ErrorTypeNoGame},
		{err: scoreboard.ErrGameOver, want: messaging.ErrorTypeGameOver},
		{err: scoreboard.ErrGameInProgress, want: messaging.ErrorTypeGameRunning},
		{err: fmt.Errorf("%w: %q", ErrInvalidScore, "x"), want: messaging.ErrorTypeInvalidScores, wantDetail: true},
		{err: scoreboard.ErrScoreCount, want: messaging.ErrorTypeInvalidScores, wantDetail: true},
		{err: fmt.Errorf("%w: 5000", scoreboard.ErrScoreOutOfRange), want: messaging.ErrorTypeInvalidScores, wantDetail: true},
		{err: scoreboard.ErrPlayerNotFound, want: messaging.ErrorTypeUnknownPlayer},
		{err: fmt.Errorf("%w: alice", scoreboard.ErrDuplicateName), want: messaging.ErrorTypeInvalidSetup, wantDetail: true},
		{err: scoreboard.ErrNoRounds, want: messaging.ErrorTypeNothingToUndo},
		{err: scoreboard.ErrInvalidScoreLimit, want: messaging.ErrorTypeCannotResume, wantDetail: true},
		{err: errors.New("failed to save game: dial tcp: refused"), want: messaging.ErrorTypeStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got, detail := classifyError(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.wantDetail {
				assert.NotEmpty(t, detail)
			} else {
				assert.Empty(t, detail)
			}
		})
	}
}
