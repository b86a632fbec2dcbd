// Package traverse provides breadth-first and depth-first search, connected
// component discovery and shortest-path reconstruction over any graph that can
// describe its adjacency as a function.
//
// What
//
//   - The engine is parameterized only by a start node and a NeighborFunc.
//     It never sees how neighbors are produced: an explicit adjacency list
//     (core.Graph) and a lazily generated state space (puzzle.Board) are
//     walked by exactly the same code.
//   - BFS and DFS return lazy iter.Seq sequences. Each call to the returned
//     sequence starts a fresh traversal with its own frontier and visited set.
//   - Components partitions a node set into reachability classes.
//   - ShortestPath runs BFS with a predecessor map and stops as soon as the
//     goal is discovered.
//
// Marking discipline
//
//	A node is marked visited at the moment it is pushed onto the frontier,
//	never when it is popped. A node already waiting in the frontier is
//	therefore never pushed again, which keeps the frontier bounded by the
//	number of distinct nodes even when the adjacency function repeats
//	neighbors (parallel edges, self-loops).
//
// Determinism
//
//	Visit order depends only on the start node and the enumeration order of
//	the NeighborFunc. BFS yields nodes in level order; DFS pops the most
//	recently discovered node first.
//
// Complexity (V = reachable nodes, E = enumerated neighbor pairs)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for frontier and visited set (plus predecessor map).
//
// Options
//
//   - WithContext(ctx):        stop when ctx is done.
//   - WithMaxDepth(d):         do not expand nodes at depth >= d (d < 0: no limit).
//   - WithMaxNodes(n):         ShortestPath fails once more than n nodes are discovered.
//   - WithOnEnqueue(fn):       hook called for every discovered node with its depth.
//   - WithVisitedSet(factory): replace the default map-backed visited set.
//
// Errors
//
//   - ErrUnreachable    ShortestPath exhausted the frontier without meeting the goal.
//   - ErrLimitExceeded  ShortestPath discovered more nodes than WithMaxNodes allows.
//   - ctx.Err()         the context was cancelled during ShortestPath.
package traverse
