package game

// Shape is a rectangular occupancy matrix, indexed [row][col].
type Shape [][]bool

func (s Shape) Rows() int { return len(s) }

func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i := range s {
		out[i] = make([]bool, len(s[i]))
		copy(out[i], s[i])
	}
	return out
}

// Rotate returns s turned a quarter turn clockwise. An R x C input gives a
// C x R result with out[j][R-1-i] = s[i][j]. s is left untouched.
func (s Shape) Rotate() Shape {
	r, c := s.Rows(), s.Cols()
	rotated := make(Shape, c)
	for j := range rotated {
		rotated[j] = make([]bool, r)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			rotated[j][r-1-i] = s[i][j]
		}
	}
	return rotated
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(o[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != o[i][j] {
				return false
			}
		}
	}
	return true
}
