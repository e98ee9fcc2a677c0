package game

import "math/rand"

const LookaheadSize = 3

type Piece struct {
	Type  PieceType
	Shape Shape
	Pos   Point
	Color Color
}

// NewPiece builds a piece in its catalog orientation, centred horizontally
// on the top row.
func NewPiece(t PieceType) *Piece {
	shape, color := Definition(t)
	return &Piece{
		Type:  t,
		Shape: shape,
		Pos:   Point{X: BoardWidth/2 - shape.Cols()/2, Y: 0},
		Color: color,
	}
}

func (p *Piece) clone() *Piece {
	return &Piece{
		Type:  p.Type,
		Shape: p.Shape.Clone(),
		Pos:   p.Pos,
		Color: p.Color,
	}
}

// Lookahead is the fixed-length window of upcoming piece types. Every Pop
// takes the front entry and draws a new one at the back.
type Lookahead struct {
	rng  *rand.Rand
	next [LookaheadSize]PieceType
}

// NewLookahead fills the window from rng. The same rng should be shared
// for the whole process.
func NewLookahead(rng *rand.Rand) *Lookahead {
	l := &Lookahead{rng: rng}
	for i := range l.next {
		l.next[i] = l.draw()
	}
	return l
}

func (l *Lookahead) Pop() PieceType {
	t := l.next[0]
	copy(l.next[:], l.next[1:])
	l.next[LookaheadSize-1] = l.draw()
	return t
}

func (l *Lookahead) Peek() [LookaheadSize]PieceType {
	return l.next
}

func (l *Lookahead) draw() PieceType {
	return PieceType(l.rng.Intn(pieceCount))
}
