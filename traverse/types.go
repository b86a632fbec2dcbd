package traverse

import (
	"context"
	"errors"
	"iter"
)

// Sentinel errors for traversal.
var (
	// ErrUnreachable is returned when the goal cannot be reached from the start.
	ErrUnreachable = errors.New("traverse: goal is unreachable")

	// ErrLimitExceeded is returned when a search discovers more nodes than allowed.
	ErrLimitExceeded = errors.New("traverse: node limit exceeded")
)

// NeighborFunc enumerates the neighbors of a node. The returned sequence must
// be finite; it may repeat nodes.
type NeighborFunc[T any] func(T) iter.Seq[T]

// Set records visited nodes.
type Set[T any] interface {
	// Add marks n as visited and reports whether it was absent before.
	Add(n T) bool
	// Has reports whether n was marked.
	Has(n T) bool
}

// mapSet is the default Set, backed by a Go map.
type mapSet[T comparable] map[T]struct{}

func (s mapSet[T]) Add(n T) bool {
	if _, ok := s[n]; ok {
		return false
	}
	s[n] = struct{}{}

	return true
}

func (s mapSet[T]) Has(n T) bool {
	_, ok := s[n]

	return ok
}

// Option configures a traversal via functional arguments.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks shared by every traversal.
type Options[T comparable] struct {
	// Ctx allows cancellation. Lazy sequences simply end when Ctx is done;
	// ShortestPath returns Ctx.Err().
	Ctx context.Context

	// MaxDepth, if >= 0, stops expanding nodes at that depth. The start node
	// has depth 0. Default is -1 (no limit). Ignored by Components.
	MaxDepth int

	// MaxNodes, if > 0, bounds how many nodes ShortestPath may discover.
	MaxNodes int

	// OnEnqueue is called each time a node is discovered and pushed onto
	// the frontier, with its distance (in edges) from the start.
	OnEnqueue func(node T, depth int)

	// NewSet builds the visited set for one traversal. sizeHint may be zero.
	NewSet func(sizeHint int) Set[T]
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth or node limit
//   - a no-op OnEnqueue hook
//   - a map-backed visited set.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:       context.Background(),
		MaxDepth:  -1,
		MaxNodes:  0,
		OnEnqueue: func(T, int) {},
		NewSet: func(sizeHint int) Set[T] {
			return make(mapSet[T], sizeHint)
		},
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits expansion to nodes shallower than d.
//
//	d > 0: nodes at depth d are yielded but not expanded
//	d == 0: only the start node is yielded
//	d < 0: no limit
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			d = -1
		}
		o.MaxDepth = d
	}
}

// WithMaxNodes caps the number of nodes ShortestPath may discover,
// the start node included. n <= 0 disables the cap.
func WithMaxNodes[T comparable](n int) Option[T] {
	return func(o *Options[T]) {
		if n < 0 {
			n = 0
		}
		o.MaxNodes = n
	}
}

// WithOnEnqueue registers a callback invoked for every discovered node.
func WithOnEnqueue[T comparable](fn func(node T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithVisitedSet replaces the default map-backed visited set, e.g. with a
// bitset when nodes are small dense integers.
func WithVisitedSet[T comparable](factory func(sizeHint int) Set[T]) Option[T] {
	return func(o *Options[T]) {
		if factory != nil {
			o.NewSet = factory
		}
	}
}

// newOptions applies opts over DefaultOptions.
func newOptions[T comparable](opts []Option[T]) Options[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// PathResult is the outcome of a successful ShortestPath search.
type PathResult[T comparable] struct {
	// Path runs from the start node to the goal node inclusive.
	Path []T

	// Discovered counts the distinct nodes seen, the start node included.
	Discovered int
}

// Len returns the number of edges on the path.
func (r *PathResult[T]) Len() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
