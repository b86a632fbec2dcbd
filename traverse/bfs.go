package traverse

import "iter"

// BFS returns the nodes reachable from start in breadth-first order.
// Every reachable node is yielded exactly once; within one level the order
// follows the enumeration order of next.
//
// The sequence is lazy: neighbors of a node are only requested once the
// consumer has accepted that node. Breaking out of the range loop stops the
// search. Each iteration of the returned sequence is an independent search.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS[T comparable](start T, next NeighborFunc[T], opts ...Option[T]) iter.Seq[T] {
	o := newOptions(opts)

	return func(yield func(T) bool) {
		w := newWalker(next, o, false)
		w.run(start, func(n T, _ int) bool { return yield(n) })
	}
}

// BFSDepth is BFS that also yields each node's distance from start.
func BFSDepth[T comparable](start T, next NeighborFunc[T], opts ...Option[T]) iter.Seq2[T, int] {
	o := newOptions(opts)

	return func(yield func(T, int) bool) {
		w := newWalker(next, o, false)
		w.run(start, yield)
	}
}
