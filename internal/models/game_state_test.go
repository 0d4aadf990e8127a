package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStateStatus(t *testing.T) {
	var missing *GameState
	assert.Equal(t, GameStatusSetup, missing.Status())
	assert.Equal(t, GameStatusPlaying, (&GameState{}).Status())
	assert.Equal(t, GameStatusOver, (&GameState{IsGameOver: true}).Status())
}

func TestFindPlayer(t *testing.T) {
	state := &GameState{
		Players: []*Player{
			{ID: "p1", Name: "Alice"},
			{ID: "p2", Name: "Bob"},
		},
	}

	assert.Equal(t, "p2", state.FindPlayer("p2").ID)
	assert.Equal(t, "p1", state.FindPlayer("  alice ").ID)
	assert.Nil(t, state.FindPlayer("Cara"))
	assert.Nil(t, state.FindPlayer(""))
	assert.Equal(t, 1, state.PlayerIndex("p2"))
	assert.Equal(t, -1, state.PlayerIndex("nope"))
	assert.Equal(t, []string{"Alice", "Bob"}, state.PlayerNames())
}
