package system

import "github.com/younwookim/blockfall/internal/domain/entity"

// MergeTetromino returns a copy of grid with every occupied cell of piece written
// in the piece's color. The input grid is left untouched. Cells that fall outside
// the grid (such as rows above the top edge) are dropped.
func MergeTetromino(grid entity.Grid, piece entity.Piece) entity.Grid {
	merged := grid.Clone()

	for row := range piece.Shape {
		for col, v := range piece.Shape[row] {
			if v == 0 {
				continue
			}

			x := piece.Position.X + col
			y := piece.Position.Y + row
			if !merged.InBounds(x, y) {
				continue
			}

			merged[y][x] = entity.FilledCell(piece.Color)
		}
	}

	return merged
}
