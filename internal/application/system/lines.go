package system

import "github.com/younwookim/blockfall/internal/domain/entity"

// ClearResult is the outcome of a line-clear pass
type ClearResult struct {
	NewBoard     entity.Grid
	LinesCleared int
	// Rows holds the indices of the removed rows in the input grid, top to bottom
	Rows []int
}

// ClearLines removes every full row and pads the top with fresh empty rows so
// the height never changes. Surviving rows keep their relative order.
func ClearLines(grid entity.Grid) ClearResult {
	kept := make(entity.Grid, 0, len(grid))
	var cleared []int

	for y, row := range grid {
		if row.IsFull() {
			cleared = append(cleared, y)
			continue
		}
		copied := make(entity.Row, len(row))
		copy(copied, row)
		kept = append(kept, copied)
	}

	newBoard := make(entity.Grid, 0, len(grid))
	for i := 0; i < len(cleared); i++ {
		newBoard = append(newBoard, make(entity.Row, grid.Width()))
	}
	newBoard = append(newBoard, kept...)

	return ClearResult{
		NewBoard:     newBoard,
		LinesCleared: len(cleared),
		Rows:         cleared,
	}
}
