// Package scene defines the screens the game loop switches between.
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game.
//
// The game loop delegates Update and Draw to the current scene and switches
// scenes when Update returns a non-nil next scene.
type Scene interface {
	// Update advances the scene by dt.
	// A non-nil next scene replaces this one; a non-nil error ends the game.
	Update(dt time.Duration) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current
	OnEnter()

	// OnExit is called when the scene is replaced, before the next OnEnter
	OnExit()
}
