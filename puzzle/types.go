package puzzle

import "errors"

const (
	// Size is the board width and height.
	Size = 5
	// Cells is the number of cells on a board.
	Cells = Size * Size
	// Blank is the cell value denoting the empty slot.
	Blank = 0
)

// ErrInvalidState indicates a malformed board.
var ErrInvalidState = errors.New("puzzle: invalid board state")

// Direction names the way the blank travels in one move.
type Direction int

const (
	// Up moves the blank one row up (the tile above slides down).
	Up Direction = iota
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right
	// Down moves the blank one row down.
	Down
)

// directions lists every Direction in successor order.
var directions = [...]Direction{Up, Left, Right, Down}

// offsets maps a Direction to its (row, column) delta.
var offsets = [...][2]int{
	Up:    {-1, 0},
	Left:  {0, -1},
	Right: {0, 1},
	Down:  {1, 0},
}

var directionNames = [...]string{
	Up:    "up",
	Left:  "left",
	Right: "right",
	Down:  "down",
}

// Directions returns all four directions in the order AllAdjacentStates uses.
func Directions() []Direction {
	return directions[:]
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Down
}

// Inverse returns the direction that undoes d.
func (d Direction) Inverse() Direction {
	return Down - d
}

// Offset returns d's (row, column) delta.
func (d Direction) Offset() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

func (d Direction) String() string {
	if !d.Valid() {
		return "invalid"
	}

	return directionNames[d]
}

// Board is one puzzle configuration, stored row-major.
// The zero Board is not a valid configuration; build boards with
// NewBoard, Parse or Solved.
type Board struct {
	cells [Cells]uint8
}
