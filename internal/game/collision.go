package game

// Collides reports whether shape anchored at p and shifted by (dx, dy)
// leaves the side walls, goes below the floor or overlaps a locked cell.
// Cells above the top row only take the wall and floor tests.
func (b *Board) Collides(shape Shape, p Point, dx, dy int) bool {
	for i, row := range shape {
		for j, filled := range row {
			if !filled {
				continue
			}
			x := p.X + j + dx
			y := p.Y + i + dy
			if x < 0 || x >= BoardWidth {
				return true
			}
			if y >= BoardHeight {
				return true
			}
			if y >= 0 && b.cells[y][x] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// Place writes c into every cell covered by shape at p. The caller has
// already checked that the position does not collide.
func (b *Board) Place(shape Shape, p Point, c Cell) {
	for i, row := range shape {
		for j, filled := range row {
			if filled {
				b.SetCell(p.Y+i, p.X+j, c)
			}
		}
	}
}

// DropDistance returns how many rows shape can fall from p before landing.
func (b *Board) DropDistance(shape Shape, p Point) int {
	d := 0
	for !b.Collides(shape, p, 0, d+1) {
		d++
	}
	return d
}
