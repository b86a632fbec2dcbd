// Package solver finds shortest move sequences for the 5×5 sliding-tile
// puzzle by breadth-first search over the implicit graph of boards.
//
// The search is traverse.ShortestPath with puzzle.Board as the node type and
// Board.AllAdjacentStates as the neighbor function; the predecessor map is
// keyed by Board value. Nothing about the puzzle is special-cased in the
// engine.
//
// Before searching, Solve compares the permutation parity of start and
// goal. Boards of different parity live in different components of the
// state graph, which is far too large to exhaust, so such goals are
// reported as unreachable immediately.
//
// Usage:
//
//	sol, err := solver.Solve(start, puzzle.Solved(),
//	    solver.WithMaxStates(2_000_000),
//	    solver.WithOnDiscover(func(b puzzle.Board, depth int) { /* progress */ }),
//	)
//
// Errors:
//
//   - ErrUnreachable    goal has the wrong parity, or the search space ran out.
//   - ErrLimitExceeded  more states than WithMaxStates allows were discovered.
//   - ctx.Err()         the context passed via WithContext was cancelled.
package solver
