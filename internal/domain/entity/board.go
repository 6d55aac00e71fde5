package entity

// NewEmptyRow returns a row of BoardWidth empty cells
func NewEmptyRow() Row {
	return make(Row, BoardWidth)
}

// CreateEmptyBoard returns a BoardHeight x BoardWidth grid of empty cells.
// Every row has its own backing array.
func CreateEmptyBoard() Grid {
	grid := make(Grid, BoardHeight)
	for y := range grid {
		grid[y] = NewEmptyRow()
	}
	return grid
}
