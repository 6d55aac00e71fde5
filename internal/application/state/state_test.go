package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Zero value is a live session
	var zero GameState
	assert.Equal(t, StatePlaying, zero)
	assert.Equal(t, GameState(1), StatePaused)
	assert.Equal(t, GameState(2), StateGameOver)
}

func TestGameState_AcceptsMoves(t *testing.T) {
	assert.True(t, StatePlaying.AcceptsMoves())
	assert.False(t, StatePaused.AcceptsMoves())
	assert.False(t, StateGameOver.AcceptsMoves())
}
