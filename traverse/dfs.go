package traverse

import "iter"

// DFS returns the nodes reachable from start using a LIFO frontier.
//
// The contract matches BFS: each reachable node is yielded exactly once and
// nodes are marked visited when pushed. Because marking happens on push,
// the order is "stack order" rather than the pre-order of a recursive DFS:
// the last neighbor enumerated for a node is explored first.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS[T comparable](start T, next NeighborFunc[T], opts ...Option[T]) iter.Seq[T] {
	o := newOptions(opts)

	return func(yield func(T) bool) {
		w := newWalker(next, o, true)
		w.run(start, func(n T, _ int) bool { return yield(n) })
	}
}
