// Package tilepath is a small toolkit for breadth-first search over
// undirected graphs, explicit and implicit.
//
// The work is split across four packages:
//
//	traverse/ — generic BFS, DFS, connected components and shortest path
//	            over any comparable node type with a neighbor function
//	core/     — thread-safe arena graph: nodes, edges, incidence, and the
//	            traversals of traverse/ bound to it
//	puzzle/   — the 5×5 sliding-tile board, its moves and solvability test
//	solver/   — shortest move sequences between boards via traverse/
//
// The tilepath command (cmd/tilepath) exposes solve, path and components
// over TOML input files.
//
// Quick start:
//
//	g, _ := core.MakeGraph(0, 1, 1, 2, 2, 3)
//	a, _ := g.Node(0)
//	b, _ := g.Node(3)
//	path, _ := g.FindPath(a, b) // [0 1 2 3]
//
//	start, _ := puzzle.Parse(text)
//	sol, _ := solver.Solve(start, puzzle.Solved())
//	fmt.Println(sol.Moves())
package tilepath
