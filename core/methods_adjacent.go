// File: methods_adjacent.go
// Role: neighborhood sequences (IncidentNodes, IncidentEdges) on Graph and Node.
// Determinism:
//   - Incident edges are yielded in connection order; parallel edges repeat
//     the neighbor, a self-loop yields the node itself once.

package core

import "iter"

// IncidentEdges returns a lazy sequence of the edges touching n.
// A foreign node yields an empty sequence.
func (g *Graph) IncidentEdges(n Node) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.incidentSnapshot(n) {
			if !yield(e) {
				return
			}
		}
	}
}

// IncidentNodes returns a lazy sequence of n's neighbors, one per incident
// edge. A foreign node yields an empty sequence.
func (g *Graph) IncidentNodes(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, e := range g.incidentSnapshot(n) {
			other := e.To
			if other == n {
				other = e.From
			}
			if !yield(other) {
				return
			}
		}
	}
}

// incidentSnapshot copies n's incident edges under the read lock.
func (g *Graph) incidentSnapshot(n Node) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.owns(n) {
		return nil
	}
	ids := g.incidence[n.id]
	out := make([]Edge, len(ids))
	for i, eid := range ids {
		out[i] = g.edgeLocked(eid)
	}

	return out
}

// IncidentNodes is shorthand for n.Graph().IncidentNodes(n).
// The zero Node yields nothing.
func (n Node) IncidentNodes() iter.Seq[Node] {
	if n.g == nil {
		return func(func(Node) bool) {}
	}

	return n.g.IncidentNodes(n)
}

// IncidentEdges is shorthand for n.Graph().IncidentEdges(n).
// The zero Node yields nothing.
func (n Node) IncidentEdges() iter.Seq[Edge] {
	if n.g == nil {
		return func(func(Edge) bool) {}
	}

	return n.g.IncidentEdges(n)
}
