package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/puzzle"
	"github.com/katalvlaran/tilepath/traverse"
)

// Solve returns a shortest sequence of boards leading from start to goal.
//
// Steps:
//  1. Reject malformed boards, such as the zero Board (puzzle.ErrInvalidState).
//  2. Reject goals of the other permutation parity (ErrUnreachable).
//  3. BFS from start with AllAdjacentStates as neighbors, recording each
//     board's predecessor and stopping once goal is discovered.
//  4. Reconstruct the path from goal back to start and reverse it.
//
// start == goal yields a zero-move Solution.
func Solve(start, goal puzzle.Board, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("start board: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return nil, fmt.Errorf("goal board: %w", err)
	}
	if !puzzle.Solvable(start, goal) {
		return nil, fmt.Errorf("%w: inversion parity differs (%d vs %d)",
			ErrUnreachable, start.Inversions(), goal.Inversions())
	}

	res, err := traverse.ShortestPath(start, goal, puzzle.Board.AllAdjacentStates,
		traverse.WithContext[puzzle.Board](o.Ctx),
		traverse.WithMaxNodes[puzzle.Board](o.MaxStates),
		traverse.WithOnEnqueue(o.OnDiscover),
	)
	switch {
	case errors.Is(err, traverse.ErrUnreachable):
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	case errors.Is(err, traverse.ErrLimitExceeded):
		return nil, fmt.Errorf("%w: %w", ErrLimitExceeded, err)
	case err != nil:
		return nil, err
	}

	return &Solution{Steps: res.Path, Explored: res.Discovered}, nil
}
