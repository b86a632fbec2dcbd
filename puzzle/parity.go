package puzzle

// Inversions counts pairs of tiles that appear in the wrong relative order
// when the board is read row-major, ignoring the blank.
func (b Board) Inversions() int {
	n := 0
	for i := 0; i < Cells; i++ {
		if b.cells[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if b.cells[j] != Blank && b.cells[j] < b.cells[i] {
				n++
			}
		}
	}

	return n
}

// Solvable reports whether goal can be reached from start.
//
// On a board of odd width a horizontal move leaves the row-major tile
// order unchanged and a vertical move shifts one tile past Size-1 others,
// so the inversion parity is invariant. Two boards are connected iff their
// parities match.
func Solvable(start, goal Board) bool {
	return start.Inversions()%2 == goal.Inversions()%2
}
