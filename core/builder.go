// File: builder.go
// Role: MakeGraph convenience constructor from a flat list of index pairs.

package core

import (
	"fmt"
	"slices"
)

// MakeGraph builds a graph sized to the largest referenced index plus one
// and connects consecutive pairs: MakeGraph(0, 1, 1, 2) is the path 0–1–2.
//
// Returns ErrInvalidArgument for an odd number of indices and
// ErrInvalidReference for a negative index. No arguments yield an empty graph.
// Complexity: O(len(pairs)).
func MakeGraph(pairs ...int) (*Graph, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: %d indices do not form pairs", ErrInvalidArgument, len(pairs))
	}
	if len(pairs) == 0 {
		return NewGraph(0), nil
	}
	if lo := slices.Min(pairs); lo < 0 {
		return nil, fmt.Errorf("%w: negative node index %d", ErrInvalidReference, lo)
	}

	g := NewGraph(slices.Max(pairs) + 1)
	for i := 0; i < len(pairs); i += 2 {
		if _, err := g.Connect(pairs[i], pairs[i+1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
