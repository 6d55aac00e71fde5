package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blockfall/internal/domain/entity"
)

func TestScenario_OPieceOnEmptyBoardClearsNothing(t *testing.T) {
	board := entity.CreateEmptyBoard()
	piece := oPieceAt(4, 18)

	require.False(t, CheckCollision(board, piece, 0, 0))
	require.True(t, CheckCollision(board, piece, 0, 1), "piece rests on the floor")

	result := ClearLines(MergeTetromino(board, piece))

	assert.Equal(t, 0, result.LinesCleared)
	assert.Equal(t, 4, result.NewBoard.FilledCount())
}

func TestScenario_FillBottomRowCellByCell(t *testing.T) {
	board := entity.CreateEmptyBoard()

	single := entity.Piece{Shape: entity.Shape{{1}}, Color: "red"}
	for x := 0; x < entity.BoardWidth; x++ {
		single.Position = entity.Position{X: x, Y: 19}
		board = MergeTetromino(board, single)
	}
	require.True(t, board[19].IsFull())
	before := board.Clone()

	result := ClearLines(board)

	assert.Equal(t, 1, result.LinesCleared)
	assert.True(t, rowEmpty(result.NewBoard[0]), "new row 0 is empty")
	assert.True(t, rowEmpty(result.NewBoard[19]), "row 19 is empty")
	for y := 1; y <= 18; y++ {
		assert.Equal(t, before[y], result.NewBoard[y], "row %d changed", y)
	}
}

func TestScenario_ClearShiftsRowsAbove(t *testing.T) {
	board := entity.CreateEmptyBoard()
	board[10][3] = entity.FilledCell("blue")
	board[18][7] = entity.FilledCell("green")
	fillRow(board, 19, "red")

	result := ClearLines(board)

	require.Equal(t, 1, result.LinesCleared)
	assert.Equal(t, entity.FilledCell("blue"), result.NewBoard[11][3])
	assert.Equal(t, entity.FilledCell("green"), result.NewBoard[19][7])
	assert.Equal(t, 2, result.NewBoard.FilledCount())
}

func TestScenario_LockClearScore(t *testing.T) {
	board := entity.CreateEmptyBoard()
	for x := 0; x < entity.BoardWidth; x++ {
		if x == 4 || x == 5 {
			continue
		}
		board[18][x] = entity.FilledCell("red")
		board[19][x] = entity.FilledCell("red")
	}

	piece := oPieceAt(4, 0)
	piece = piece.Moved(0, DropDistance(board, piece))
	require.Equal(t, 18, piece.Position.Y)

	result := ClearLines(MergeTetromino(board, piece))
	require.Equal(t, 2, result.LinesCleared)

	total := 8 + result.LinesCleared
	level := CalculateLevel(total)
	assert.Equal(t, 2, level)
	assert.Equal(t, 300, CalculateScore(result.LinesCleared, CalculateLevel(8)))
	assert.Equal(t, 900, GetDropSpeed(level))
	assert.Equal(t, 0, result.NewBoard.FilledCount())
}
