// File: methods_nodes.go
// Role: node lookup, membership and enumeration.
// Determinism:
//   - Nodes() yields nodes in index order 0..n-1.

package core

import (
	"fmt"
	"iter"
)

// Len returns the number of nodes. It never changes after construction.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incidence)
}

// Node returns the node with index i.
// Returns ErrInvalidReference if i is out of range.
func (g *Graph) Node(i int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 0 || i >= len(g.incidence) {
		return Node{}, fmt.Errorf("%w: node index %d (graph has %d nodes)", ErrInvalidReference, i, len(g.incidence))
	}

	return Node{g: g, id: i}, nil
}

// Contains reports whether n is a node of g.
func (g *Graph) Contains(n Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.owns(n)
}

// owns is Contains without locking. Caller holds g.mu.
func (g *Graph) owns(n Node) bool {
	return n.g == g && n.id >= 0 && n.id < len(g.incidence)
}

// Nodes returns a lazy sequence of all nodes in index order.
// Each call yields a fresh sequence.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n := g.Len()
		for i := 0; i < n; i++ {
			if !yield(Node{g: g, id: i}) {
				return
			}
		}
	}
}

// Degree returns the number of edges incident to n; a self-loop counts once.
// Returns ErrInvalidReference for a foreign node.
func (g *Graph) Degree(n Node) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.owns(n) {
		return 0, fmt.Errorf("%w: node %d", ErrInvalidReference, n.id)
	}

	return len(g.incidence[n.id]), nil
}
