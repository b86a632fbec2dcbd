// File: traversal.go
// Role: graph-level BFS/DFS, connected components and FindPath, all
//       delegating to package traverse with IncidentNodes as the neighbor
//       function and a bitset over node indices as the visited set.

package core

import (
	"errors"
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tilepath/traverse"
)

// nodeSet is a traverse.Set[Node] backed by a bitset over node indices.
// Only nodes of a single graph are ever added to it.
type nodeSet struct {
	bits *bitset.BitSet
}

func (s nodeSet) Add(n Node) bool {
	i := uint(n.id)
	if s.bits.Test(i) {
		return false
	}
	s.bits.Set(i)

	return true
}

func (s nodeSet) Has(n Node) bool {
	return s.bits.Test(uint(n.id))
}

// traversalOptions returns the options every graph-level traversal shares.
func (g *Graph) traversalOptions(extra []traverse.Option[Node]) []traverse.Option[Node] {
	n := g.Len()
	visited := traverse.WithVisitedSet(func(int) traverse.Set[Node] {
		return nodeSet{bits: bitset.New(uint(n))}
	})

	return append([]traverse.Option[Node]{visited}, extra...)
}

// BreadthSearch returns the nodes reachable from start in BFS order,
// each exactly once. Returns ErrInvalidReference for a foreign start.
// Complexity: O(V + E) per iteration of the returned sequence.
func (g *Graph) BreadthSearch(start Node, opts ...traverse.Option[Node]) (iter.Seq[Node], error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start node %d", ErrInvalidReference, start.id)
	}

	return traverse.BFS(start, g.IncidentNodes, g.traversalOptions(opts)...), nil
}

// DepthSearch returns the nodes reachable from start in DFS (stack) order,
// each exactly once. Returns ErrInvalidReference for a foreign start.
// Complexity: O(V + E) per iteration of the returned sequence.
func (g *Graph) DepthSearch(start Node, opts ...traverse.Option[Node]) (iter.Seq[Node], error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start node %d", ErrInvalidReference, start.id)
	}

	return traverse.DFS(start, g.IncidentNodes, g.traversalOptions(opts)...), nil
}

// BreadthSearch runs a BFS from n over its own graph.
// The zero Node yields nothing.
func (n Node) BreadthSearch() iter.Seq[Node] {
	if n.g == nil {
		return func(func(Node) bool) {}
	}

	return traverse.BFS(n, n.g.IncidentNodes, n.g.traversalOptions(nil)...)
}

// DepthSearch runs a DFS from n over its own graph.
// The zero Node yields nothing.
func (n Node) DepthSearch() iter.Seq[Node] {
	if n.g == nil {
		return func(func(Node) bool) {}
	}

	return traverse.DFS(n, n.g.IncidentNodes, n.g.traversalOptions(nil)...)
}

// ConnectedComponents partitions the nodes of g. Components are ordered by
// their lowest node index; members appear in BFS order from that node.
// An empty graph has no components.
// Time: O(V + E), Memory: O(V).
func (g *Graph) ConnectedComponents() [][]Node {
	return traverse.Components(g.Nodes(), g.IncidentNodes, g.traversalOptions(nil)...)
}

// FindPath returns a fewest-edge path from start to end, both inclusive.
//
// Steps:
//  1. Validate that both nodes belong to g.
//  2. BFS from start recording each node's predecessor; stop once end is
//     discovered.
//  3. Walk predecessors from end back to start and reverse.
//
// Returns ErrInvalidReference for foreign nodes and ErrUnreachable when end
// lies in another component. start == end yields [start].
// Complexity: O(V + E).
func (g *Graph) FindPath(start, end Node, opts ...traverse.Option[Node]) ([]Node, error) {
	if !g.Contains(start) || !g.Contains(end) {
		return nil, fmt.Errorf("%w: path %d → %d", ErrInvalidReference, start.id, end.id)
	}

	res, err := traverse.ShortestPath(start, end, g.IncidentNodes, opts...)
	if errors.Is(err, traverse.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %d → %d: %w", ErrUnreachable, start.id, end.id, err)
	}
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}
