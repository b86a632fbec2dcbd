package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// NewBoard builds a Board from Size rows of Size values.
// It copies rows, so later changes to the input do not affect the Board.
// Returns ErrInvalidState if the shape is wrong, a value is outside
// 0..Cells-1, a value repeats, or the blank is missing.
func NewBoard(rows [][]int) (Board, error) {
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: %d rows, want %d", ErrInvalidState, len(rows), Size)
	}
	values := make([]int, 0, Cells)
	for r, row := range rows {
		if len(row) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidState, r, len(row), Size)
		}
		values = append(values, row...)
	}

	return fromValues(values)
}

// Parse reads a Board from Cells whitespace-separated integers in
// row-major order, the format String produces.
func Parse(s string) (Board, error) {
	fields := strings.Fields(s)
	if len(fields) != Cells {
		return Board{}, fmt.Errorf("%w: %d values, want %d", ErrInvalidState, len(fields), Cells)
	}
	values := make([]int, Cells)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: value %q: %v", ErrInvalidState, f, err)
		}
		values[i] = v
	}

	return fromValues(values)
}

// fromValues validates a row-major permutation of 0..Cells-1.
// Every value occurring exactly once implies exactly one blank.
func fromValues(values []int) (Board, error) {
	var b Board
	var seen [Cells]bool
	for i, v := range values {
		if v < 0 || v >= Cells {
			return Board{}, fmt.Errorf("%w: value %d at cell %d out of range 0..%d", ErrInvalidState, v, i, Cells-1)
		}
		if seen[v] {
			return Board{}, fmt.Errorf("%w: value %d repeated", ErrInvalidState, v)
		}
		seen[v] = true
		b.cells[i] = uint8(v)
	}

	return b, nil
}

// Validate reports ErrInvalidState unless b holds every value 0..Cells-1
// exactly once. Boards from NewBoard, Parse and Solved always pass; the
// zero Board does not.
func (b Board) Validate() error {
	var seen [Cells]bool
	for i, v := range b.cells {
		if int(v) >= Cells {
			return fmt.Errorf("%w: value %d at cell %d out of range 0..%d", ErrInvalidState, v, i, Cells-1)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d repeated", ErrInvalidState, v)
		}
		seen[v] = true
	}

	return nil
}

// Solved returns the canonical goal: tiles 1..24 in row-major order with
// the blank in the bottom-right corner.
func Solved() Board {
	var b Board
	for i := 0; i < Cells-1; i++ {
		b.cells[i] = uint8(i + 1)
	}
	b.cells[Cells-1] = Blank

	return b
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// index maps (row, col) to a row-major cell index.
func index(row, col int) int {
	return row*Size + col
}

// At returns the value at (row, col). It panics if the cell is off the board.
func (b Board) At(row, col int) int {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) out of bounds", row, col))
	}

	return int(b.cells[index(row, col)])
}

// BlankCell returns the position of the blank.
func (b Board) BlankCell() (row, col int) {
	for i, v := range b.cells {
		if v == Blank {
			return i / Size, i % Size
		}
	}
	// unreachable for boards built by this package
	return -1, -1
}

// Rows returns a fresh Size×Size copy of the board.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range rows {
		rows[r] = make([]int, Size)
		for c := range rows[r] {
			rows[r][c] = int(b.cells[index(r, c)])
		}
	}

	return rows
}

// Equal reports whether b and o hold the same value in every cell.
// It is equivalent to b == o.
func (b Board) Equal(o Board) bool {
	return b.cells == o.cells
}

// Hash returns a fingerprint of the board: the row-major cell values read
// as digits in base 97. Equal boards always hash identically.
func (b Board) Hash() uint64 {
	var h uint64
	for _, v := range b.cells {
		h = h*97 + uint64(v)
	}

	return h
}

// String renders the board row by row, values separated by single spaces.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(b.cells[index(r, c)])))
		}
	}

	return sb.String()
}
