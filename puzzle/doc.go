// Package puzzle models the 5×5 sliding-tile puzzle as an implicit graph.
//
// What:
//
//   - Board is one configuration: tiles 1..24 plus the blank (0), each
//     exactly once. It is a comparable value: ==, Equal and map keys agree,
//     and Hash is consistent with them.
//   - Move and MoveDir slide the blank one cell and return a new Board; the
//     receiver is never modified.
//   - AllAdjacentStates yields the up to four boards one move away. It is
//     the neighbor function that turns the state space into a graph for
//     package traverse.
//   - Inversions and Solvable decide reachability by permutation parity
//     without searching.
//
// Coordinates:
//
//	Rows are numbered top to bottom, columns left to right. Move(dx, dy)
//	takes dx as the row offset and dy as the column offset of the cell
//	whose tile slides into the blank.
//
// Complexity:
//
//   - Move, Hash, Equal:   O(Size²)
//   - AllAdjacentStates:   O(Size²) per successor
//   - Inversions:          O(Size⁴) on 24 tiles, i.e. constant
//
// Errors:
//
//   - ErrInvalidState: wrong shape, value out of 0..24, duplicate value or
//     missing blank.
//
// Moves that leave the board are not errors: Move reports ok == false.
package puzzle
