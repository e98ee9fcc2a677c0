package game

// Cell is the state of one board square: empty or tagged with the piece
// type that was locked there.
type Cell uint8

const CellEmpty Cell = 0

// CellFor returns the tag written for a locked piece of type t.
func CellFor(t PieceType) Cell {
	return Cell(t + 1)
}

func (c Cell) Empty() bool { return c == CellEmpty }

// PieceType recovers the piece that produced c. ok is false for empty cells.
func (c Cell) PieceType() (t PieceType, ok bool) {
	if c == CellEmpty {
		return 0, false
	}
	return PieceType(c - 1), true
}

// Point is a grid coordinate. X is the column, Y the row, row 0 at the top.
type Point struct {
	X, Y int
}

type Board struct {
	cells [BoardHeight][BoardWidth]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Cell returns the tag at (row, col). Both must be in range.
func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// SetCell writes one cell. Rows above the visible board are skipped.
func (b *Board) SetCell(row, col int, c Cell) {
	if row < 0 {
		return
	}
	b.cells[row][col] = c
}

func (b *Board) IsRowFull(row int) bool {
	for _, c := range b.cells[row] {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// CollapseRow removes row and shifts every row above it down by one,
// leaving an empty row at the top. Rows below are not touched.
func (b *Board) CollapseRow(row int) {
	for y := row; y > 0; y-- {
		b.cells[y] = b.cells[y-1]
	}
	b.cells[0] = [BoardWidth]Cell{}
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [BoardHeight][BoardWidth]Cell {
	return b.cells
}

// Filled counts the non-empty cells on the board.
func (b *Board) Filled() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != CellEmpty {
				n++
			}
		}
	}
	return n
}
