package entity

// RotateTetromino returns the clockwise rotation of the piece's shape.
// The piece is not modified and no collision checking is done.
func RotateTetromino(p Piece) Shape {
	return RotateShape(p.Shape)
}

// RotateShape rotates an N x N matrix clockwise: transpose, then reverse each row.
// Non-square input is outside the supported domain.
func RotateShape(s Shape) Shape {
	n := len(s)
	rotated := make(Shape, n)
	for i := range rotated {
		rotated[i] = make([]int, n)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rotated[col][n-1-row] = s[row][col]
		}
	}
	return rotated
}

// RotateShapeCounterClockwise rotates an N x N matrix counter-clockwise
func RotateShapeCounterClockwise(s Shape) Shape {
	n := len(s)
	rotated := make(Shape, n)
	for i := range rotated {
		rotated[i] = make([]int, n)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rotated[n-1-col][row] = s[row][col]
		}
	}
	return rotated
}
