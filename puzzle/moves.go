package puzzle

import "iter"

// Move slides the tile at blank+(dx, dy) into the blank and returns the
// resulting board. dx is the row offset, dy the column offset, and exactly
// one of them must be ±1 while the other is 0.
//
// ok is false when the offset is not a single orthogonal step or the
// target cell is off the board. b itself is never modified: Board is an
// array value, so the returned board is an independent copy.
func (b Board) Move(dx, dy int) (next Board, ok bool) {
	if abs(dx)+abs(dy) != 1 {
		return Board{}, false
	}
	r, c := b.BlankCell()
	tr, tc := r+dx, c+dy
	if !InBounds(tr, tc) {
		return Board{}, false
	}

	next = b
	from, to := index(tr, tc), index(r, c)
	next.cells[to], next.cells[from] = b.cells[from], Blank

	return next, true
}

// MoveDir moves the blank one cell in direction d.
func (b Board) MoveDir(d Direction) (Board, bool) {
	if !d.Valid() {
		return Board{}, false
	}

	return b.Move(d.Offset())
}

// AllAdjacentStates returns the boards reachable by exactly one move, in
// the order Up, Left, Right, Down. Corners yield 2 boards, edges 3, and
// interior positions 4. Each call yields a fresh sequence.
func (b Board) AllAdjacentStates() iter.Seq[Board] {
	return func(yield func(Board) bool) {
		for _, d := range directions {
			next, ok := b.MoveDir(d)
			if !ok {
				continue
			}
			if !yield(next) {
				return
			}
		}
	}
}

// DirectionBetween returns the move that turns a into b, if any.
func DirectionBetween(a, b Board) (Direction, bool) {
	for _, d := range directions {
		if next, ok := a.MoveDir(d); ok && next == b {
			return d, true
		}
	}

	return 0, false
}

// Apply plays moves from b in order and returns the final board.
// ok is false, with the board reached so far, at the first illegal move.
func (b Board) Apply(moves ...Direction) (Board, bool) {
	cur := b
	for _, d := range moves {
		next, ok := cur.MoveDir(d)
		if !ok {
			return cur, false
		}
		cur = next
	}

	return cur, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
