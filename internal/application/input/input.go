// Package input turns keyboard state into session actions.
package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/blockfall/internal/application/session"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// State holds the keys relevant to play for one frame
type State struct {
	// Held this frame
	Left  bool
	Right bool
	Down  bool

	// Went down this frame
	LeftPressed      bool
	RightPressed     bool
	DownPressed      bool
	RotatePressed    bool
	RotateCCWPressed bool
	HardDropPressed  bool
	PausePressed     bool
	RestartPressed   bool
}

// Read samples the keyboard
func Read() State {
	return State{
		Left:             ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:            ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Down:             ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		LeftPressed:      inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		RightPressed:     inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		DownPressed:      inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		RotatePressed:    inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyX),
		RotateCCWPressed: inpututil.IsKeyJustPressed(ebiten.KeyZ),
		HardDropPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		PausePressed:     inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		RestartPressed:   inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// repeater fires once on press, then again every rate after holding for delay
type repeater struct {
	held time.Duration
	next time.Duration
}

func (r *repeater) step(pressed, down bool, dt, delay, rate time.Duration) int {
	if pressed {
		r.held = 0
		r.next = delay
		return 1
	}
	if !down {
		r.held = 0
		return 0
	}

	r.held += dt
	if rate <= 0 {
		if r.held >= r.next {
			return 1
		}
		return 0
	}

	fires := 0
	for r.held >= r.next {
		fires++
		r.next += rate
	}
	return fires
}

// Mapper converts per-frame key state into actions with auto-repeat
type Mapper struct {
	cfg   config.InputConfig
	left  repeater
	right repeater
	down  repeater
}

// NewMapper creates a mapper using the configured repeat timings
func NewMapper(cfg config.InputConfig) *Mapper {
	return &Mapper{cfg: cfg}
}

// Actions returns the actions for one frame of dt.
// A pause press swallows every other key that frame.
func (m *Mapper) Actions(in State, dt time.Duration) []session.Action {
	if in.PausePressed {
		m.left, m.right, m.down = repeater{}, repeater{}, repeater{}
		return []session.Action{session.ActionPause}
	}

	var actions []session.Action
	if in.RotatePressed {
		actions = append(actions, session.ActionRotate)
	}
	if in.RotateCCWPressed {
		actions = append(actions, session.ActionRotateCCW)
	}

	delay, rate := m.cfg.RepeatDelay(), m.cfg.RepeatRate()
	for i := m.left.step(in.LeftPressed, in.Left, dt, delay, rate); i > 0; i-- {
		actions = append(actions, session.ActionMoveLeft)
	}
	for i := m.right.step(in.RightPressed, in.Right, dt, delay, rate); i > 0; i-- {
		actions = append(actions, session.ActionMoveRight)
	}

	drop := m.cfg.SoftDropRate()
	for i := m.down.step(in.DownPressed, in.Down, dt, drop, drop); i > 0; i-- {
		actions = append(actions, session.ActionSoftDrop)
	}

	if in.HardDropPressed {
		actions = append(actions, session.ActionHardDrop)
	}

	return actions
}
