package traverse_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/tilepath/traverse"
)

// ExampleBFS walks a small explicit graph stored as an adjacency map.
//
//	0 ─ 1
//	│   │
//	2 ─ 3 ─ 4
func ExampleBFS() {
	adj := map[string][]string{
		"0": {"1", "2"},
		"1": {"0", "3"},
		"2": {"0", "3"},
		"3": {"1", "2", "4"},
		"4": {"3"},
	}
	next := func(n string) iter.Seq[string] { return slices.Values(adj[n]) }

	fmt.Println(slices.Collect(traverse.BFS("0", next)))
	fmt.Println(slices.Collect(traverse.DFS("0", next)))
	// Output:
	// [0 1 2 3 4]
	// [0 2 3 4 1]
}

// ExampleShortestPath searches a graph that is never stored: the neighbors
// of n are generated on demand as 2n and n+1.
func ExampleShortestPath() {
	next := func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			if yield(n * 2) {
				yield(n + 1)
			}
		}
	}

	res, err := traverse.ShortestPath(1, 10, next)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// [1 2 4 5 10]
}
