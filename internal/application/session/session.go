// Package session runs one game of falling blocks on top of the pure rule engine.
//
// A Session owns the settled board and the falling piece and advances them in
// response to Actions: every move or rotation is gated by collision, a blocked
// downward move locks the piece, full rows are cleared and score, level and
// speed are recomputed. Timing and input devices belong to the host.
package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/blockfall/internal/application/state"
	"github.com/younwookim/blockfall/internal/application/system"
	"github.com/younwookim/blockfall/internal/domain/entity"
)

// Session is a single play-through
type Session struct {
	logger *zap.Logger
	seed   uint64
	gen    *entity.Generator

	board   entity.Grid
	current *entity.Piece
	next    entity.Piece
	state   state.GameState

	score  int
	level  int
	lines  int
	locked int
}

// New creates a session whose piece sequence is fixed by seed.
// A nil logger disables logging.
func New(seed uint64, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{logger: logger}
	s.Reset(seed)
	return s
}

// Reset discards all progress and starts over with a new seed
func (s *Session) Reset(seed uint64) {
	s.seed = seed
	s.gen = entity.NewGenerator(seed)
	s.board = entity.CreateEmptyBoard()
	s.current = nil
	s.state = state.StatePlaying
	s.score = 0
	s.level = 1
	s.lines = 0
	s.locked = 0

	s.next = s.gen.Next()
	s.spawn()

	s.logger.Debug("session started", zap.Uint64("seed", seed))
}

// Apply performs a and reports whether the session changed
func (s *Session) Apply(a Action) bool {
	if a == ActionPause {
		return s.togglePause()
	}
	if !s.state.AcceptsMoves() || s.current == nil {
		return false
	}

	switch a {
	case ActionMoveLeft:
		return s.tryMove(-1, 0)
	case ActionMoveRight:
		return s.tryMove(1, 0)
	case ActionRotate:
		return s.tryRotate(entity.RotateTetromino(*s.current))
	case ActionRotateCCW:
		return s.tryRotate(entity.RotateShapeCounterClockwise(s.current.Shape))
	case ActionSoftDrop, ActionTick:
		if !s.tryMove(0, 1) {
			s.lock()
		}
		return true
	case ActionHardDrop:
		dy := system.DropDistance(s.board, *s.current)
		moved := s.current.Moved(0, dy)
		s.current = &moved
		s.lock()
		return true
	default:
		return false
	}
}

func (s *Session) togglePause() bool {
	switch s.state {
	case state.StatePlaying:
		s.state = state.StatePaused
	case state.StatePaused:
		s.state = state.StatePlaying
	default:
		return false
	}
	s.logger.Debug("pause toggled", zap.Stringer("state", s.state))
	return true
}

func (s *Session) tryMove(dx, dy int) bool {
	if system.CheckCollision(s.board, *s.current, dx, dy) {
		return false
	}
	moved := s.current.Moved(dx, dy)
	s.current = &moved
	return true
}

// tryRotate accepts the rotated shape in place; there are no wall kicks
func (s *Session) tryRotate(shape entity.Shape) bool {
	candidate := s.current.WithShape(shape)
	if system.CheckCollision(s.board, candidate, 0, 0) {
		return false
	}
	s.current = &candidate
	return true
}

func (s *Session) lock() {
	piece := *s.current
	s.board = system.MergeTetromino(s.board, piece)
	s.locked++

	result := system.ClearLines(s.board)
	s.board = result.NewBoard

	if result.LinesCleared > 0 {
		points := system.CalculateScore(result.LinesCleared, s.level)
		s.score += points
		s.lines += result.LinesCleared

		s.logger.Debug("lines cleared",
			zap.Int("count", result.LinesCleared),
			zap.Ints("rows", result.Rows),
			zap.Int("points", points),
			zap.Int("score", s.score),
		)

		if level := system.CalculateLevel(s.lines); level != s.level {
			s.level = level
			s.logger.Info("level up",
				zap.Int("level", level),
				zap.Duration("drop_interval", system.DropInterval(level)),
			)
		}
	}

	s.spawn()
}

// spawn promotes the queued piece; a blocked spawn ends the game
func (s *Session) spawn() {
	piece := s.next
	s.next = s.gen.Next()

	if !system.CanPlace(s.board, piece) {
		s.current = nil
		s.state = state.StateGameOver
		s.logger.Info("game over",
			zap.Int("score", s.score),
			zap.Int("level", s.level),
			zap.Int("lines", s.lines),
			zap.Int("pieces", s.locked),
		)
		return
	}

	s.current = &piece
}

// GhostY returns the row the current piece would land on after a hard drop
func (s *Session) GhostY() (int, bool) {
	if s.current == nil {
		return 0, false
	}
	return s.current.Position.Y + system.DropDistance(s.board, *s.current), true
}

// DropInterval returns the automatic fall period for the current level
func (s *Session) DropInterval() time.Duration {
	return system.DropInterval(s.level)
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// Locked returns the number of pieces locked so far
func (s *Session) Locked() int {
	return s.locked
}

// Seed returns the seed the session was started with
func (s *Session) Seed() uint64 {
	return s.seed
}

// Snapshot returns a copy of everything a renderer needs.
// The returned View shares no mutable storage with the session.
func (s *Session) Snapshot() View {
	v := View{
		Board:    s.board.Clone(),
		Next:     s.next.Clone(),
		State:    s.state,
		GameOver: s.state == state.StateGameOver,
		Score:    s.score,
		Level:    s.level,
		Lines:    s.lines,
		Pieces:   s.locked,
	}
	if s.current != nil {
		current := s.current.Clone()
		v.Current = &current
	}
	return v
}
