package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_CodeRoundTrip(t *testing.T) {
	all := []Action{ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionHardDrop, ActionRotate, ActionRotateCCW, ActionTick, ActionPause}

	seen := make(map[string]bool)
	for _, a := range all {
		code := a.Code()
		assert.NotEmpty(t, code, a.String())
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true

		parsed, ok := ParseAction(code)
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}
}

func TestAction_Unknown(t *testing.T) {
	assert.Equal(t, "", ActionNone.Code())
	assert.Equal(t, "None", ActionNone.String())

	_, ok := ParseAction("jump")
	assert.False(t, ok)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "HardDrop", ActionHardDrop.String())
	assert.Equal(t, "RotateCCW", ActionRotateCCW.String())
	assert.Equal(t, "Tick", ActionTick.String())
}
