package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/tilepath/puzzle"
)

// Sentinel errors for Solve.
var (
	// ErrUnreachable is returned when the goal cannot be reached from the start.
	ErrUnreachable = errors.New("solver: goal is unreachable from start")

	// ErrLimitExceeded is returned when the state budget is exhausted.
	ErrLimitExceeded = errors.New("solver: state limit exceeded")
)

// Option configures Solve.
type Option func(*Options)

// Options holds the tunables of one Solve call.
type Options struct {
	// Ctx allows cancellation; checked once per expanded board.
	Ctx context.Context

	// MaxStates, if > 0, bounds the number of distinct boards discovered.
	MaxStates int

	// OnDiscover is called for every newly discovered board with its
	// distance in moves from the start.
	OnDiscover func(b puzzle.Board, depth int)
}

// DefaultOptions returns background context, no state limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxStates:  0,
		OnDiscover: func(puzzle.Board, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates caps the number of discovered boards; n <= 0 means no cap.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxStates = n
	}
}

// WithOnDiscover registers a progress hook.
func WithOnDiscover(fn func(b puzzle.Board, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// Solution is a shortest sequence of boards from start to goal.
type Solution struct {
	// Steps starts with the start board and ends with the goal board;
	// consecutive boards differ by exactly one move.
	Steps []puzzle.Board

	// Explored counts the distinct boards discovered by the search.
	Explored int
}

// Len returns the number of moves.
func (s *Solution) Len() int {
	if s == nil || len(s.Steps) == 0 {
		return 0
	}

	return len(s.Steps) - 1
}

// Moves returns the blank's direction for every step.
func (s *Solution) Moves() []puzzle.Direction {
	if s.Len() == 0 {
		return nil
	}
	moves := make([]puzzle.Direction, 0, s.Len())
	for i := 1; i < len(s.Steps); i++ {
		// consecutive steps always differ by one move
		d, _ := puzzle.DirectionBetween(s.Steps[i-1], s.Steps[i])
		moves = append(moves, d)
	}

	return moves
}
