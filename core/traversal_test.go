package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/core"
	"github.com/katalvlaran/tilepath/traverse"
)

// sampleGraph is the graph used throughout the traversal tests:
//
//	0 ─ 1 ─ 2     5 ─ 6
//	│       │
//	3 ─── 4       7
func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.MakeGraph(0, 1, 1, 2, 0, 3, 3, 4, 2, 4, 5, 6, 7, 7)
	require.NoError(t, err)

	return g
}

// randomGraph builds a deterministic random simple-ish graph.
func randomGraph(t *testing.T, n, m int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(n)
	for i := 0; i < m; i++ {
		_, err := g.Connect(r.Intn(n), r.Intn(n))
		require.NoError(t, err)
	}

	return g
}

// reachable computes the reachable set by naive fixpoint iteration,
// independent of the traversal engine.
func reachable(g *core.Graph, start core.Node) map[core.Node]bool {
	seen := map[core.Node]bool{start: true}
	for changed := true; changed; {
		changed = false
		for e := range g.Edges() {
			if seen[e.From] != seen[e.To] {
				seen[e.From], seen[e.To] = true, true
				changed = true
			}
		}
	}

	return seen
}

// adjacent reports whether some edge joins a and b.
func adjacent(g *core.Graph, a, b core.Node) bool {
	for e := range g.IncidentEdges(a) {
		if other, _ := e.OtherNode(a); other == b {
			return true
		}
	}

	return false
}

func TestBreadthSearch_Order(t *testing.T) {
	g := sampleGraph(t)
	seq, err := g.BreadthSearch(mustNode(t, g, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, ids(slices.Collect(seq)))

	// node-level variant shares the engine
	assert.Equal(t, []int{0, 1, 3, 2, 4}, ids(slices.Collect(mustNode(t, g, 0).BreadthSearch())))
}

func TestDepthSearch_Order(t *testing.T) {
	g := sampleGraph(t)
	seq, err := g.DepthSearch(mustNode(t, g, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4, 2, 1}, ids(slices.Collect(seq)))
	assert.Equal(t, []int{0, 3, 4, 2, 1}, ids(slices.Collect(mustNode(t, g, 0).DepthSearch())))
}

func TestSearch_ForeignStart(t *testing.T) {
	g := sampleGraph(t)
	other := core.NewGraph(1)
	_, err := g.BreadthSearch(mustNode(t, other, 0))
	assert.ErrorIs(t, err, core.ErrInvalidReference)
	_, err = g.DepthSearch(core.Node{})
	assert.ErrorIs(t, err, core.ErrInvalidReference)
	assert.Empty(t, slices.Collect(core.Node{}.BreadthSearch()))
}

// TestSearch_VisitsReachableExactlyOnce checks BFS and DFS against an
// independent reachability computation on random multigraphs.
func TestSearch_VisitsReachableExactlyOnce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, 30, 35, seed)
		for start := range g.Nodes() {
			want := reachable(g, start)
			for name, seq := range map[string][]core.Node{
				"bfs": slices.Collect(start.BreadthSearch()),
				"dfs": slices.Collect(start.DepthSearch()),
			} {
				got := map[core.Node]int{}
				for _, n := range seq {
					got[n]++
				}
				require.Lenf(t, got, len(want), "%s seed=%d start=%v", name, seed, start)
				for n, c := range got {
					assert.Truef(t, want[n], "%s yielded unreachable %v", name, n)
					assert.Equalf(t, 1, c, "%s yielded %v %d times", name, n, c)
				}
			}
		}
	}
}

func TestConnectedComponents(t *testing.T) {
	g := sampleGraph(t)
	comps := g.ConnectedComponents()
	got := make([][]int, len(comps))
	for i, c := range comps {
		got[i] = ids(c)
	}
	assert.Equal(t, [][]int{{0, 1, 3, 2, 4}, {5, 6}, {7}}, got)

	assert.Empty(t, core.NewGraph(0).ConnectedComponents())
}

// TestConnectedComponents_Partition checks the partition property on random graphs:
// every node in exactly one component, same component iff reachable.
func TestConnectedComponents_Partition(t *testing.T) {
	for seed := int64(10); seed < 15; seed++ {
		g := randomGraph(t, 40, 30, seed)
		owner := map[core.Node]int{}
		for ci, comp := range g.ConnectedComponents() {
			for _, n := range comp {
				_, dup := owner[n]
				require.Falsef(t, dup, "node %v in two components", n)
				owner[n] = ci
			}
		}
		require.Len(t, owner, g.Len())

		for a := range g.Nodes() {
			r := reachable(g, a)
			for b := range g.Nodes() {
				assert.Equal(t, r[b], owner[a] == owner[b])
			}
		}
	}
}

func TestFindPath(t *testing.T) {
	g := sampleGraph(t)
	path, err := g.FindPath(mustNode(t, g, 0), mustNode(t, g, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, ids(path))

	path, err = g.FindPath(mustNode(t, g, 2), mustNode(t, g, 2))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(path))
}

func TestFindPath_Unreachable(t *testing.T) {
	g := sampleGraph(t)
	path, err := g.FindPath(mustNode(t, g, 0), mustNode(t, g, 6))
	assert.ErrorIs(t, err, core.ErrUnreachable)
	assert.ErrorIs(t, err, traverse.ErrUnreachable, "engine error stays in the chain")
	assert.Nil(t, path)

	_, err = g.FindPath(mustNode(t, g, 7), mustNode(t, g, 5))
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

func TestFindPath_ForeignNodes(t *testing.T) {
	g := sampleGraph(t)
	other := core.NewGraph(8)
	_, err := g.FindPath(mustNode(t, g, 0), mustNode(t, other, 4))
	assert.ErrorIs(t, err, core.ErrInvalidReference)
}

func TestFindPath_MaxDepth(t *testing.T) {
	g := sampleGraph(t)
	_, err := g.FindPath(mustNode(t, g, 0), mustNode(t, g, 2), traverse.WithMaxDepth[core.Node](1))
	assert.ErrorIs(t, err, core.ErrUnreachable)
}

// TestFindPath_Shortest checks, on random graphs, that FindPath returns a
// walk along real edges whose length equals the BFS distance.
func TestFindPath_Shortest(t *testing.T) {
	for seed := int64(20); seed < 25; seed++ {
		g := randomGraph(t, 25, 40, seed)
		start := mustNode(t, g, 0)
		depth := map[core.Node]int{}
		for n, d := range traverse.BFSDepth(start, g.IncidentNodes) {
			depth[n] = d
		}

		for end := range g.Nodes() {
			path, err := g.FindPath(start, end)
			if _, ok := depth[end]; !ok {
				assert.ErrorIs(t, err, core.ErrUnreachable)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, start, path[0])
			require.Equal(t, end, path[len(path)-1])
			assert.Equal(t, depth[end], len(path)-1)
			for i := 1; i < len(path); i++ {
				assert.True(t, adjacent(g, path[i-1], path[i]))
			}
		}
	}
}
