// Package playing provides the main gameplay scene.
package playing

import (
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/input"
	"github.com/younwookim/blockfall/internal/application/replay"
	"github.com/younwookim/blockfall/internal/application/scene"
	"github.com/younwookim/blockfall/internal/application/session"
	"github.com/younwookim/blockfall/internal/application/state"
	"github.com/younwookim/blockfall/internal/infrastructure/config"
)

// Playing hosts one session: it feeds keyboard actions and gravity ticks
// into the session and draws the result.
type Playing struct {
	config  *config.GameConfig
	logger  *zap.Logger
	session *session.Session
	mapper  *input.Mapper

	readInput func() input.State

	fallTimer time.Duration
	frame     int

	recorder *replay.Recorder
	palette  map[string]color.RGBA
}

// New creates a playing scene for a session started with seed.
// Recording is enabled when the config names a record directory.
func New(cfg *config.GameConfig, seed uint64, logger *zap.Logger) *Playing {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Playing{
		config:    cfg,
		logger:    logger,
		session:   session.New(seed, logger),
		mapper:    input.NewMapper(cfg.Input),
		readInput: input.Read,
		palette:   make(map[string]color.RGBA),
	}
	if cfg.Session.RecordDir != "" {
		p.recorder = replay.NewRecorder(seed)
	}
	return p
}

// NextSeed returns the seed for a new session: the configured one when set, else the clock
func NextSeed(cfg *config.GameConfig) uint64 {
	if cfg.Session.Seed != 0 {
		return cfg.Session.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Update advances the session by one frame
func (p *Playing) Update(dt time.Duration) (scene.Scene, error) {
	p.frame++
	in := p.readInput()

	if p.session.State() == state.StateGameOver {
		if in.RestartPressed {
			return New(p.config, NextSeed(p.config), p.logger), nil
		}
		return nil, nil
	}

	for _, a := range p.mapper.Actions(in, dt) {
		p.apply(a)
	}

	p.fall(dt)

	if p.session.State() == state.StateGameOver {
		p.saveRecording()
	}
	return nil, nil
}

// fall applies gravity ticks for the time accumulated while playing
func (p *Playing) fall(dt time.Duration) {
	if p.session.State() != state.StatePlaying {
		return
	}
	p.fallTimer += dt
	for p.session.State() == state.StatePlaying {
		interval := p.session.DropInterval()
		if p.fallTimer < interval {
			return
		}
		p.fallTimer -= interval
		p.apply(session.ActionTick)
	}
}

// apply performs a on the session and records it when it changed something.
// A lock restarts the gravity timer for the new piece.
func (p *Playing) apply(a session.Action) {
	before := p.session.Locked()
	if !p.session.Apply(a) {
		return
	}
	if p.recorder != nil {
		p.recorder.Record(p.frame, a)
	}
	if p.session.Locked() != before {
		p.fallTimer = 0
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}
	p.recorder.Stop()

	dir := p.config.Session.RecordDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		p.logger.Error("failed to create record directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	path := replay.GenerateFilename(dir)
	if err := p.recorder.Save(path); err != nil {
		p.logger.Warn("recording not saved", zap.String("path", path), zap.Error(err))
		return
	}
	p.logger.Info("recording saved",
		zap.String("path", path),
		zap.String("id", p.recorder.Data().ID),
		zap.Int("actions", p.recorder.Count()),
	)
}

// OnEnter is called when entering the scene
func (p *Playing) OnEnter() {
	p.logger.Info("session started",
		zap.Uint64("seed", p.session.Seed()),
		zap.Bool("recording", p.recorder != nil),
	)
}

// OnExit saves any recording still in progress
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Session returns the hosted session
func (p *Playing) Session() *session.Session {
	return p.session
}

var _ scene.Scene = (*Playing)(nil)

// Draw renders the scene
func (p *Playing) Draw(screen *ebiten.Image) {
	view := p.session.Snapshot()
	ghostY, hasGhost := p.session.GhostY()

	screen.Fill(colorBG)
	p.drawBoard(screen, view)
	if hasGhost {
		p.drawGhost(screen, view, ghostY)
	}
	p.drawPanel(screen, view)

	switch view.State {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen, view)
	}
}
