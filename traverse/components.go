package traverse

import "iter"

// Components partitions the nodes of an undirected graph into connected
// components. It scans nodes in order, and every node not yet assigned
// seeds a BFS whose result becomes the next component.
//
// Each component lists its members in BFS order from its seed. Every node
// of nodes appears in exactly one component, provided next describes a
// symmetric relation. MaxDepth is ignored.
//
// Time:   O(V + E)
// Memory: O(V)
func Components[T comparable](nodes iter.Seq[T], next NeighborFunc[T], opts ...Option[T]) [][]T {
	o := newOptions(opts)
	o.MaxDepth = -1
	w := newWalker(next, o, false)

	var comps [][]T
	for seed := range nodes {
		if w.seen.Has(seed) {
			continue
		}
		var comp []T
		complete := w.run(seed, func(n T, _ int) bool {
			comp = append(comp, n)
			return true
		})
		if len(comp) > 0 {
			comps = append(comps, comp)
		}
		if !complete {
			// context cancelled mid-component
			break
		}
	}

	return comps
}
