// Package core provides the explicit, undirected Graph used by tilepath:
// a fixed arena of nodes, edges stored as index pairs, and per-node
// incidence lists.
//
// The Graph G = (V,E) has:
//
//   - A node count fixed at construction (NewGraph, MakeGraph). Nodes are
//     numbered 0..n-1 and handed out as small comparable Node values.
//   - Undirected edges created by Connect/ConnectNodes and removed by
//     Disconnect. Parallel edges and self-loops are permitted; a self-loop
//     appears once in its node's incidence list.
//   - Lazy, restartable sequences (iter.Seq) for Nodes, Edges,
//     IncidentNodes and IncidentEdges. Every call snapshots the current
//     state, so the consumer may mutate the graph while ranging.
//   - A sync.RWMutex guarding the arena, so concurrent readers and a
//     writer never race.
//
// Traversal:
//
//	BreadthSearch / DepthSearch   lazy BFS / DFS from a node (package traverse)
//	ConnectedComponents           partition of V into reachability classes
//	FindPath                      fewest-edge path, or ErrUnreachable
//
// Traversals use a bitset over node indices as their visited set.
//
// Errors:
//
//	ErrInvalidReference  – node or edge not owned by this graph, or index out of range
//	ErrInvalidArgument   – OtherNode called with a non-endpoint, malformed MakeGraph input
//	ErrEdgeNotFound      – Disconnect of an edge that is already gone
//	ErrUnreachable       – FindPath found no path
//
// Quick ASCII example:
//
//	0───1
//	│   │
//	2───3   4
//
//	g, _ := core.MakeGraph(0, 1, 0, 2, 1, 3, 2, 3)
//	g.Len() == 4; node 4 would need MakeGraph(..., 4, 4) to exist.
package core
