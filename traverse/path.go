package traverse

import (
	"fmt"
	"slices"
)

// link is one entry of the predecessor map. root marks the start node,
// which has no predecessor.
type link[T any] struct {
	prev T
	root bool
}

// ShortestPath finds a fewest-edge path from start to goal with BFS.
//
// Steps:
//  1. Seed the predecessor map with start → none and enqueue start.
//  2. Dequeue a node; for every neighbor not yet in the map, record the
//     dequeued node as its predecessor and enqueue it.
//  3. Stop as soon as goal is recorded.
//  4. Walk predecessors from goal back to start and reverse.
//
// Returns ErrUnreachable if the frontier empties first, ErrLimitExceeded if
// more than MaxNodes nodes are discovered, or ctx.Err() on cancellation.
// A partial path is never returned.
//
// Complexity: O(V + E) time, O(V) memory.
func ShortestPath[T comparable](start, goal T, next NeighborFunc[T], opts ...Option[T]) (*PathResult[T], error) {
	o := newOptions(opts)

	pred := map[T]link[T]{start: {root: true}}
	o.OnEnqueue(start, 0)
	if start == goal {
		return &PathResult[T]{Path: []T{start}, Discovered: 1}, nil
	}

	queue := []frontierItem[T]{{node: start}}
	for head := 0; head < len(queue); head++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[head]
		if o.MaxDepth >= 0 && item.depth >= o.MaxDepth {
			continue
		}
		for nbr := range next(item.node) {
			if _, seen := pred[nbr]; seen {
				continue
			}
			pred[nbr] = link[T]{prev: item.node}
			o.OnEnqueue(nbr, item.depth+1)
			if nbr == goal {
				return &PathResult[T]{Path: unwind(pred, goal), Discovered: len(pred)}, nil
			}
			if o.MaxNodes > 0 && len(pred) > o.MaxNodes {
				return nil, fmt.Errorf("%w: %d nodes discovered (max %d)", ErrLimitExceeded, len(pred), o.MaxNodes)
			}
			queue = append(queue, frontierItem[T]{node: nbr, depth: item.depth + 1})
		}
		// drop references to expanded nodes
		var zero frontierItem[T]
		queue[head] = zero
	}

	return nil, fmt.Errorf("%w: %d nodes explored", ErrUnreachable, len(pred))
}

// unwind rebuilds the start → goal path from the predecessor map.
func unwind[T comparable](pred map[T]link[T], goal T) []T {
	path := []T{goal}
	for cur := goal; !pred[cur].root; {
		cur = pred[cur].prev
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path
}
