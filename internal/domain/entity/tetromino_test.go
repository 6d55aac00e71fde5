package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceType_String(t *testing.T) {
	tests := []struct {
		pieceType PieceType
		expected  string
	}{
		{PieceI, "I"},
		{PieceO, "O"},
		{PieceT, "T"},
		{PieceS, "S"},
		{PieceZ, "Z"},
		{PieceJ, "J"},
		{PieceL, "L"},
		{PieceType(42), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pieceType.String())
		})
	}
}

func TestPieceType_Valid(t *testing.T) {
	for _, pt := range PieceTypes {
		assert.True(t, pt.Valid(), pt.String())
	}
	assert.False(t, PieceType(-1).Valid())
	assert.False(t, PieceType(7).Valid())
}

func TestTetrominoes_Catalog(t *testing.T) {
	require.Len(t, Tetrominoes, 7)
	require.Len(t, PieceTypes, 7)

	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			def, ok := Tetrominoes[pt]
			require.True(t, ok)

			assert.NotEmpty(t, def.Color)
			assert.Equal(t, def.Shape.Height(), def.Shape.Width(), "catalog shapes must be square")
			assert.Len(t, def.Shape.Cells(), 4, "every tetromino has four cells")
		})
	}
}

func TestTetrominoes_DistinctColors(t *testing.T) {
	seen := make(map[string]PieceType)
	for _, pt := range PieceTypes {
		color := Tetrominoes[pt].Color
		prev, dup := seen[color]
		assert.False(t, dup, "%s and %s share color %s", prev, pt, color)
		seen[color] = pt
	}
}

func TestDefinition_ReturnsCopy(t *testing.T) {
	def, ok := Definition(PieceT)
	require.True(t, ok)
	assert.Equal(t, Tetrominoes[PieceT].Shape, def.Shape)

	def.Shape[0][0] = 1
	assert.Equal(t, 0, Tetrominoes[PieceT].Shape[0][0], "catalog must not change")

	_, ok = Definition(PieceType(99))
	assert.False(t, ok)
}

func TestNewPiece(t *testing.T) {
	tests := []struct {
		pieceType PieceType
		wantX     int
	}{
		{PieceI, 3},
		{PieceO, 4},
		{PieceT, 4},
		{PieceS, 4},
		{PieceZ, 4},
		{PieceJ, 4},
		{PieceL, 4},
	}

	for _, tt := range tests {
		t.Run(tt.pieceType.String(), func(t *testing.T) {
			p := NewPiece(tt.pieceType)

			assert.Equal(t, tt.pieceType, p.Type)
			assert.Equal(t, Tetrominoes[tt.pieceType].Color, p.Color)
			assert.Equal(t, Tetrominoes[tt.pieceType].Shape, p.Shape)
			assert.Equal(t, tt.wantX, p.Position.X)
			assert.Equal(t, 0, p.Position.Y)
			assert.LessOrEqual(t, p.Position.X+p.Shape.Width(), BoardWidth, "spawn must fit horizontally")
		})
	}

	assert.Equal(t, Piece{}, NewPiece(PieceType(99)))
}

func TestPiece_Moved(t *testing.T) {
	p := NewPiece(PieceO)
	moved := p.Moved(-1, 2)

	assert.Equal(t, Position{X: 3, Y: 2}, moved.Position)
	assert.Equal(t, Position{X: 4, Y: 0}, p.Position, "original position untouched")
}

func TestPiece_Clone(t *testing.T) {
	p := NewPiece(PieceL)
	clone := p.Clone()

	clone.Shape[0][0] = 1
	assert.Equal(t, 0, p.Shape[0][0])
}

func TestPiece_WithShape(t *testing.T) {
	p := NewPiece(PieceT)
	rotated := p.WithShape(RotateTetromino(p))

	assert.Equal(t, p.Position, rotated.Position)
	assert.False(t, p.Shape.Equal(rotated.Shape))
}
