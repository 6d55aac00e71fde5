package system

import "github.com/younwookim/blockfall/internal/domain/entity"

// CheckCollision reports whether piece, shifted by (dx, dy), would leave the
// board horizontally, pass the floor, or overlap a filled cell.
// Rows above the top edge are open space so spawning partly above the board is legal.
func CheckCollision(grid entity.Grid, piece entity.Piece, dx, dy int) bool {
	return collidesAt(grid, piece.Shape, piece.Position.X+dx, piece.Position.Y+dy)
}

// CanPlace reports whether piece fits where it currently stands
func CanPlace(grid entity.Grid, piece entity.Piece) bool {
	return !CheckCollision(grid, piece, 0, 0)
}

func collidesAt(grid entity.Grid, shape entity.Shape, originX, originY int) bool {
	width := grid.Width()
	height := grid.Height()

	for row := range shape {
		for col, v := range shape[row] {
			if v == 0 {
				continue
			}

			x := originX + col
			y := originY + row

			if x < 0 || x >= width || y >= height {
				return true
			}
			if y >= 0 && grid[y][x].Filled {
				return true
			}
		}
	}

	return false
}

// DropDistance returns how many rows piece can fall before it would collide
func DropDistance(grid entity.Grid, piece entity.Piece) int {
	dy := 0
	for !CheckCollision(grid, piece, 0, dy+1) {
		dy++
		// an empty shape never collides
		if dy > grid.Height() {
			break
		}
	}
	return dy
}
