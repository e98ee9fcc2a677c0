package game

import (
	"math/rand"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestGame returns a running game on an empty board with a known
// active piece.
func newTestGame(t PieceType) *GameState {
	gs := NewGameState(rand.New(rand.NewSource(1)), epoch)
	gs.CurrentPiece = NewPiece(t)
	return gs
}

// fillRow fills row except for the listed columns.
func fillRow(b *Board, row int, holes ...int) {
	for x := 0; x < BoardWidth; x++ {
		b.SetCell(row, x, CellFor(PieceO))
	}
	for _, x := range holes {
		b.SetCell(row, x, CellEmpty)
	}
}

// allPieces lists the catalog in order.
func allPieces() []PieceType {
	return []PieceType{PieceI, PieceS, PieceZ, PieceO, PieceT, PieceL, PieceJ}
}

// tick advances the clock far enough for exactly one gravity step.
func tick(gs *GameState, now *time.Time) Status {
	*now = now.Add(gs.Timer().Interval() + time.Millisecond)
	return gs.Update(*now)
}
