package session

import (
	"github.com/younwookim/blockfall/internal/application/state"
	"github.com/younwookim/blockfall/internal/domain/entity"
)

// View is a read-only snapshot of a session for rendering
type View struct {
	Board    entity.Grid
	Current  *entity.Piece // nil once the game is over
	Next     entity.Piece
	State    state.GameState
	GameOver bool
	Score    int
	Level    int
	Lines    int
	Pieces   int
}

// CellAt returns the cell to draw at (x, y): the falling piece on top of the board
func (v View) CellAt(x, y int) entity.Cell {
	if v.Current != nil {
		p := v.Current
		col := x - p.Position.X
		row := y - p.Position.Y
		if row >= 0 && row < p.Shape.Height() && col >= 0 && col < len(p.Shape[row]) && p.Shape[row][col] != 0 {
			return entity.FilledCell(p.Color)
		}
	}
	c, _ := v.Board.Cell(x, y)
	return c
}
