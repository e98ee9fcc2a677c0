package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellTags(t *testing.T) {
	assert.True(t, CellEmpty.Empty())
	_, ok := CellEmpty.PieceType()
	assert.False(t, ok)

	for _, pt := range allPieces() {
		c := CellFor(pt)
		assert.False(t, c.Empty())
		got, ok := c.PieceType()
		assert.True(t, ok)
		assert.Equal(t, pt, got)
	}
}

func TestSetCellSkipsRowsAboveBoard(t *testing.T) {
	b := NewBoard()
	b.SetCell(-1, 3, CellFor(PieceI))
	assert.Zero(t, b.Filled())

	b.SetCell(0, 3, CellFor(PieceI))
	assert.Equal(t, CellFor(PieceI), b.Cell(0, 3))
}

func TestIsRowFull(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, 5)
	assert.False(t, b.IsRowFull(19))

	b.SetCell(19, 5, CellFor(PieceT))
	assert.True(t, b.IsRowFull(19))
	assert.False(t, b.IsRowFull(18))
}

func TestCollapseRow(t *testing.T) {
	b := NewBoard()
	b.SetCell(0, 0, CellFor(PieceI))
	b.SetCell(10, 4, CellFor(PieceS))
	fillRow(b, 11)
	b.SetCell(15, 9, CellFor(PieceZ))

	b.CollapseRow(11)

	assert.Equal(t, CellEmpty, b.Cell(0, 0))
	assert.Equal(t, CellFor(PieceI), b.Cell(1, 0))
	assert.Equal(t, CellFor(PieceS), b.Cell(11, 4))
	assert.Equal(t, CellFor(PieceZ), b.Cell(15, 9))
	assert.Equal(t, 3, b.Filled())
}

func TestCollapseRowOnFullGrid(t *testing.T) {
	b := NewBoard()
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			b.SetCell(y, x, CellFor(PieceType((x+y)%pieceCount)))
		}
	}
	before := b.Rows()

	b.CollapseRow(12)

	after := b.Rows()
	for x := 0; x < BoardWidth; x++ {
		assert.Equal(t, CellEmpty, after[0][x])
	}
	for y := 1; y <= 12; y++ {
		assert.Equal(t, before[y-1], after[y], "row %d", y)
	}
	for y := 13; y < BoardHeight; y++ {
		assert.Equal(t, before[y], after[y], "row %d", y)
	}
	assert.Equal(t, BoardWidth*(BoardHeight-1), b.Filled())
	assert.False(t, b.IsRowFull(0))
}
