// Package game provides the ebiten.Game that drives scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/scene"
)

// Game implements ebiten.Game over a sequence of scenes
type Game struct {
	logger  *zap.Logger
	current scene.Scene
	screenW int
	screenH int
	dt      time.Duration
	frames  int
}

// New creates a game starting at initial, stepping framerate times per second.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, framerate int, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	if framerate <= 0 {
		framerate = 60
	}
	g := &Game{
		logger:  logger,
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      time.Second / time.Duration(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update steps the current scene and switches to the scene it returns
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.logger.Error("scene update failed", zap.Int("frame", g.frames), zap.Error(err))
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
		g.logger.Debug("scene changed", zap.Int("frame", g.frames))
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close runs OnExit on the current scene. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT overrides the per-frame step
func (g *Game) SetDT(dt time.Duration) {
	g.dt = dt
}

// Frames returns the number of updates run so far
func (g *Game) Frames() int {
	return g.frames
}
