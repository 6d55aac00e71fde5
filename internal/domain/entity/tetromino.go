package entity

// PieceType tags one of the seven tetromino forms
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// PieceTypes lists every piece type in catalog order
var PieceTypes = []PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// String returns the single-letter tag of the piece type
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether t is one of the seven catalog types
func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

// Tetromino is a catalog entry: the rotation-0 shape and its color
type Tetromino struct {
	Shape Shape
	Color string
}

// Tetrominoes is the static piece catalog. Every shape is square so that
// clockwise rotation never needs a special case.
// Read entries through Definition; it hands out copies.
var Tetrominoes = map[PieceType]Tetromino{
	PieceI: {
		Shape: Shape{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Color: "#00f0f0",
	},
	PieceO: {
		Shape: Shape{
			{1, 1},
			{1, 1},
		},
		Color: "#f0f000",
	},
	PieceT: {
		Shape: Shape{
			{0, 1, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		Color: "#a000f0",
	},
	PieceS: {
		Shape: Shape{
			{0, 1, 1},
			{1, 1, 0},
			{0, 0, 0},
		},
		Color: "#00f000",
	},
	PieceZ: {
		Shape: Shape{
			{1, 1, 0},
			{0, 1, 1},
			{0, 0, 0},
		},
		Color: "#f00000",
	},
	PieceJ: {
		Shape: Shape{
			{1, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		Color: "#0000f0",
	},
	PieceL: {
		Shape: Shape{
			{0, 0, 1},
			{1, 1, 1},
			{0, 0, 0},
		},
		Color: "#f0a000",
	},
}

// Definition returns the catalog entry for t with a deep-copied shape
func Definition(t PieceType) (Tetromino, bool) {
	def, ok := Tetrominoes[t]
	if !ok {
		return Tetromino{}, false
	}
	return Tetromino{Shape: def.Shape.Clone(), Color: def.Color}, true
}

// Piece is the currently falling tetromino
type Piece struct {
	Type     PieceType
	Shape    Shape
	Color    string
	Position Position
}

// NewPiece creates a piece of type t at the spawn position: top row, horizontally centered.
// Unknown types yield the zero Piece.
func NewPiece(t PieceType) Piece {
	def, ok := Definition(t)
	if !ok {
		return Piece{}
	}
	return Piece{
		Type:     t,
		Shape:    def.Shape,
		Color:    def.Color,
		Position: Position{X: SpawnX(def.Shape), Y: 0},
	}
}

// SpawnX returns the start column that centers shape on the board
func SpawnX(shape Shape) int {
	x := BoardWidth/2 - shape.Width()/2
	if x < 0 {
		return 0
	}
	return x
}

// Clone returns a copy of the piece whose shape shares no storage with p
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a copy of the piece offset by (dx, dy)
func (p Piece) Moved(dx, dy int) Piece {
	p.Position = Position{X: p.Position.X + dx, Y: p.Position.Y + dy}
	return p
}

// WithShape returns a copy of the piece carrying shape
func (p Piece) WithShape(shape Shape) Piece {
	p.Shape = shape
	return p
}
