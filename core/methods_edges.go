// File: methods_edges.go
// Role: edge lifecycle (Connect/ConnectNodes/Disconnect) and edge queries.
// Determinism:
//   - Edges() yields alive edges in creation order (ascending Edge.ID).
//   - Edge IDs are monotonic and never reused.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// Connect creates an undirected edge between the nodes with indices i and j.
// Returns ErrInvalidReference if either index is out of range.
// Duplicate connects create parallel edges; i == j creates a self-loop.
// Complexity: O(1) amortized.
func (g *Graph) Connect(i, j int) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.incidence)
	if i < 0 || i >= n || j < 0 || j >= n {
		return Edge{}, fmt.Errorf("%w: connect %d–%d (graph has %d nodes)", ErrInvalidReference, i, j, n)
	}

	return g.link(i, j), nil
}

// ConnectNodes creates an undirected edge between a and b.
// Returns ErrInvalidReference if either node is not a member of g,
// including the zero Node and nodes of other graphs.
// Complexity: O(1) amortized.
func (g *Graph) ConnectNodes(a, b Node) (Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.owns(a) || !g.owns(b) {
		return Edge{}, fmt.Errorf("%w: connect %d–%d", ErrInvalidReference, a.id, b.id)
	}

	return g.link(a.id, b.id), nil
}

// link appends a new edge record and registers it with both endpoints.
// Caller holds g.mu for writing.
func (g *Graph) link(i, j int) Edge {
	eid := len(g.edges)
	g.edges = append(g.edges, edgeRecord{from: i, to: j, alive: true})
	g.incidence[i] = append(g.incidence[i], eid)
	if i != j {
		g.incidence[j] = append(g.incidence[j], eid)
	}
	g.live++

	return g.edgeLocked(eid)
}

// Disconnect removes e from both endpoints' incidence lists.
//
// Steps:
//  1. Reject edges of other graphs, or whose endpoints do not match the
//     stored edge, with ErrInvalidReference.
//  2. Reject edges already removed (ErrEdgeNotFound).
//  3. Drop the edge ID from incidence[From] and incidence[To], keeping order.
//
// Complexity: O(deg(From) + deg(To)).
func (g *Graph) Disconnect(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e.From.g != g || e.To.g != g || e.id < 0 || e.id >= len(g.edges) {
		return fmt.Errorf("%w: edge %d", ErrInvalidReference, e.id)
	}
	rec := &g.edges[e.id]
	if !rec.joins(e.From.id, e.To.id) {
		return fmt.Errorf("%w: edge %d joins %d–%d, not %d–%d",
			ErrInvalidReference, e.id, rec.from, rec.to, e.From.id, e.To.id)
	}
	if !rec.alive {
		return fmt.Errorf("%w: edge %d", ErrEdgeNotFound, e.id)
	}
	rec.alive = false
	g.live--
	g.unlinkFrom(rec.from, e.id)
	if rec.to != rec.from {
		g.unlinkFrom(rec.to, e.id)
	}

	return nil
}

// unlinkFrom removes eid from node v's incidence list.
func (g *Graph) unlinkFrom(v, eid int) {
	list := g.incidence[v]
	if i := slices.Index(list, eid); i >= 0 {
		g.incidence[v] = slices.Delete(list, i, i+1)
	}
}

// joins reports whether the record connects a and b in either orientation.
func (r edgeRecord) joins(a, b int) bool {
	return (r.from == a && r.to == b) || (r.from == b && r.to == a)
}

// Edges returns a lazy sequence of all distinct alive edges in creation
// order. The set of edges is snapshotted when iteration starts.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		g.mu.RLock()
		snapshot := make([]Edge, 0, g.live)
		for eid, rec := range g.edges {
			if rec.alive {
				snapshot = append(snapshot, g.edgeLocked(eid))
			}
		}
		g.mu.RUnlock()

		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// EdgeCount returns the number of alive edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// edgeLocked builds the Edge value for eid. Caller holds g.mu.
func (g *Graph) edgeLocked(eid int) Edge {
	rec := g.edges[eid]

	return Edge{
		id:   eid,
		From: Node{g: g, id: rec.from},
		To:   Node{g: g, id: rec.to},
	}
}

// IsIncident reports whether n is one of e's endpoints.
func (e Edge) IsIncident(n Node) bool {
	return e.From == n || e.To == n
}

// OtherNode returns the endpoint of e opposite to n.
// For a self-loop it returns n itself.
// Returns ErrInvalidArgument if n is not an endpoint of e.
func (e Edge) OtherNode(n Node) (Node, error) {
	switch n {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return Node{}, fmt.Errorf("%w: node %d is not an endpoint of edge %d", ErrInvalidArgument, n.id, e.id)
	}
}
