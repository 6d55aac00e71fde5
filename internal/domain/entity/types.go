package entity

import "strings"

// Playfield dimensions in cells
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single playfield cell.
// An empty cell always has an empty color; a filled cell always has one.
type Cell struct {
	Filled bool
	Color  string
}

// EmptyCell returns the zero cell
func EmptyCell() Cell {
	return Cell{}
}

// FilledCell returns a cell occupied with the given color
func FilledCell(color string) Cell {
	return Cell{Filled: true, Color: color}
}

// Row is one horizontal line of the playfield
type Row []Cell

// IsFull reports whether every cell in the row is filled
func (r Row) IsFull() bool {
	for _, c := range r {
		if !c.Filled {
			return false
		}
	}
	return len(r) > 0
}

// Grid is the settled playfield, indexed as grid[y][x].
// Row 0 is the top of the board.
type Grid []Row

// Width returns the number of columns
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g Grid) InBounds(x, y int) bool {
	return y >= 0 && y < g.Height() && x >= 0 && x < g.Width()
}

// Cell returns the cell at the given grid coordinates.
// The second result is false when the coordinates are outside the grid.
func (g Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g[y][x], true
}

// IsFilledAt reports whether the cell at (x, y) is occupied.
// Out-of-bounds coordinates are never filled.
func (g Grid) IsFilledAt(x, y int) bool {
	c, ok := g.Cell(x, y)
	return ok && c.Filled
}

// Clone returns a deep copy sharing no row storage with g
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = make(Row, len(row))
		copy(out[y], row)
	}
	return out
}

// FilledCount returns the number of occupied cells
func (g Grid) FilledCount() int {
	n := 0
	for _, row := range g {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, '#' for filled cells and '.' for empty ones
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))
	for _, row := range g {
		for _, c := range row {
			if c.Filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Position is a grid coordinate. For pieces it anchors the top-left of the shape matrix.
type Position struct {
	X int
	Y int
}

// Shape is a matrix of 0/1 occupancy markers, indexed as shape[row][col]
type Shape [][]int

// Height returns the number of rows in the matrix
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the matrix
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Occupied reports whether the matrix cell at (col, row) is set
func (s Shape) Occupied(col, row int) bool {
	return s[row][col] != 0
}

// Cells returns the relative offsets of every occupied cell, row-major
func (s Shape) Cells() []Position {
	cells := make([]Position, 0, 4)
	for row := range s {
		for col, v := range s[row] {
			if v != 0 {
				cells = append(cells, Position{X: col, Y: row})
			}
		}
	}
	return cells
}

// Clone returns an element-wise copy of the matrix
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both matrices have identical dimensions and markers
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}
