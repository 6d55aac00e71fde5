package entity

import "math/rand/v2"

// GetRandomTetromino returns a spawn-positioned piece of a uniformly random type
func GetRandomTetromino() Piece {
	return NewPiece(PieceTypes[rand.IntN(len(PieceTypes))])
}

// Generator produces a reproducible stream of pieces.
// Two generators created with the same seed yield identical sequences.
type Generator struct {
	rng  *rand.Rand
	next PieceType
}

// NewGenerator creates a seeded piece generator
func NewGenerator(seed uint64) *Generator {
	g := &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	g.next = g.draw()
	return g
}

// Next consumes and returns the upcoming piece
func (g *Generator) Next() Piece {
	t := g.next
	g.next = g.draw()
	return NewPiece(t)
}

// Peek returns the type Next will produce without consuming it
func (g *Generator) Peek() PieceType {
	return g.next
}

func (g *Generator) draw() PieceType {
	return PieceTypes[g.rng.IntN(len(PieceTypes))]
}
