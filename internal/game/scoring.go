package game

var clearPoints = map[int]int{
	1: 10,
	2: 25,
	3: 50,
	4: 100,
}

// ScoreFor maps the number of rows cleared by a single lock to points.
// Counts without an entry, including zero, are worth nothing.
func ScoreFor(cleared int) int {
	return clearPoints[cleared]
}

// ClearFullRows scans top to bottom and collapses each full row as soon
// as it is found. It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := 0; y < BoardHeight; y++ {
		if b.IsRowFull(y) {
			b.CollapseRow(y)
			cleared++
		}
	}
	return cleared
}
