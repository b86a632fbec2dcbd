// Package core_test verifies core.Graph method-level contracts:
// node lookup, edge lifecycle and incidence sequences.
package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/tilepath/core"
)

// mustNode fetches node i or fails the test.
func mustNode(t *testing.T, g *core.Graph, i int) core.Node {
	t.Helper()
	n, err := g.Node(i)
	if err != nil {
		t.Fatalf("Node(%d): %v", i, err)
	}

	return n
}

// ids converts nodes to their indices for compact comparisons.
func ids(nodes []core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}

	return out
}

func TestNewGraph_Nodes(t *testing.T) {
	g := core.NewGraph(4)
	if g.Len() != 4 {
		t.Fatalf("Len = %d; want 4", g.Len())
	}
	if got := ids(slices.Collect(g.Nodes())); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Nodes = %v; want [0 1 2 3]", got)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d; want 0", g.EdgeCount())
	}
	if core.NewGraph(-3).Len() != 0 {
		t.Error("negative size should yield an empty graph")
	}
}

func TestGraph_NodeOutOfRange(t *testing.T) {
	g := core.NewGraph(2)
	for _, i := range []int{-1, 2, 100} {
		if _, err := g.Node(i); !errors.Is(err, core.ErrInvalidReference) {
			t.Errorf("Node(%d): want ErrInvalidReference, got %v", i, err)
		}
	}
}

func TestGraph_ConnectErrors(t *testing.T) {
	g := core.NewGraph(3)
	if _, err := g.Connect(0, 3); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("Connect(0,3): want ErrInvalidReference, got %v", err)
	}
	if _, err := g.Connect(-1, 0); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("Connect(-1,0): want ErrInvalidReference, got %v", err)
	}

	// node-level connect must check membership
	other := core.NewGraph(3)
	foreign := mustNode(t, other, 1)
	local := mustNode(t, g, 1)
	if _, err := g.ConnectNodes(local, foreign); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("ConnectNodes(foreign): want ErrInvalidReference, got %v", err)
	}
	if _, err := g.ConnectNodes(core.Node{}, local); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("ConnectNodes(zero): want ErrInvalidReference, got %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("failed connects must not add edges, EdgeCount = %d", g.EdgeCount())
	}
}

func TestGraph_ConnectAndIncidence(t *testing.T) {
	g := core.NewGraph(3)
	e01, err := g.Connect(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = g.Connect(0, 2); err != nil {
		t.Fatal(err)
	}

	n0 := mustNode(t, g, 0)
	if got := ids(slices.Collect(g.IncidentNodes(n0))); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("IncidentNodes(0) = %v; want [1 2]", got)
	}
	if got := ids(slices.Collect(n0.IncidentNodes())); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Node.IncidentNodes = %v; want [1 2]", got)
	}
	n1 := mustNode(t, g, 1)
	if got := slices.Collect(n1.IncidentEdges()); len(got) != 1 || got[0] != e01 {
		t.Errorf("IncidentEdges(1) = %v; want [%v]", got, e01)
	}
	if d, _ := g.Degree(n0); d != 2 {
		t.Errorf("Degree(0) = %d; want 2", d)
	}
}

func TestGraph_ParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(2)
	a, _ := g.Connect(0, 1)
	b, _ := g.Connect(0, 1)
	loop, _ := g.Connect(1, 1)

	if a == b {
		t.Fatal("parallel edges must be distinct values")
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d; want 3", g.EdgeCount())
	}
	n1 := mustNode(t, g, 1)
	if got := ids(slices.Collect(g.IncidentNodes(n1))); !slices.Equal(got, []int{0, 0, 1}) {
		t.Errorf("IncidentNodes(1) = %v; want [0 0 1]", got)
	}
	if other, err := loop.OtherNode(n1); err != nil || other != n1 {
		t.Errorf("self-loop OtherNode = %v, %v; want node 1", other, err)
	}
}

func TestGraph_Disconnect(t *testing.T) {
	g := core.NewGraph(3)
	e01, _ := g.Connect(0, 1)
	e12, _ := g.Connect(1, 2)
	loop, _ := g.Connect(2, 2)

	if err := g.Disconnect(e01); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	n0, n1 := mustNode(t, g, 0), mustNode(t, g, 1)
	if got := slices.Collect(g.IncidentEdges(n0)); len(got) != 0 {
		t.Errorf("IncidentEdges(0) after disconnect = %v; want []", got)
	}
	if got := slices.Collect(g.IncidentEdges(n1)); len(got) != 1 || got[0] != e12 {
		t.Errorf("IncidentEdges(1) = %v; want [%v]", got, e12)
	}

	// second removal reports the edge as gone
	if err := g.Disconnect(e01); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("double Disconnect: want ErrEdgeNotFound, got %v", err)
	}
	// foreign and zero edges are invalid references
	other := core.NewGraph(3)
	foreign, _ := other.Connect(0, 1)
	if err := g.Disconnect(foreign); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("foreign Disconnect: want ErrInvalidReference, got %v", err)
	}
	if err := g.Disconnect(core.Edge{}); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("zero Disconnect: want ErrInvalidReference, got %v", err)
	}
	// an edge value whose endpoints were relabelled must not remove the
	// edge stored under its ID
	relabelled := e12
	relabelled.From, relabelled.To = n0, n1
	if err := g.Disconnect(relabelled); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("relabelled Disconnect: want ErrInvalidReference, got %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount after relabelled Disconnect = %d; want 2", got)
	}
	// endpoint order does not matter
	swapped := e12
	swapped.From, swapped.To = e12.To, e12.From
	if err := g.Disconnect(swapped); err != nil {
		t.Fatalf("Disconnect(swapped): %v", err)
	}
	e12, _ = g.Connect(1, 2)

	if err := g.Disconnect(loop); err != nil {
		t.Fatalf("Disconnect(loop): %v", err)
	}
	if got := slices.Collect(g.Edges()); len(got) != 1 || got[0] != e12 {
		t.Errorf("Edges = %v; want [%v]", got, e12)
	}
}

func TestGraph_EdgesDistinctAndRestartable(t *testing.T) {
	g, err := core.MakeGraph(0, 1, 1, 2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	first := slices.Collect(g.Edges())
	second := slices.Collect(g.Edges())
	if len(first) != 3 || !slices.Equal(first, second) {
		t.Fatalf("Edges = %v then %v; want the same 3 edges twice", first, second)
	}
	for i, e := range first {
		if e.ID() != i {
			t.Errorf("edge %d has ID %d; want creation order", i, e.ID())
		}
	}
}

func TestGraph_MutateWhileIterating(t *testing.T) {
	g, _ := core.MakeGraph(0, 1, 0, 2, 0, 3)
	n0 := mustNode(t, g, 0)

	// snapshot semantics: removing edges mid-iteration neither deadlocks
	// nor changes the sequence already in flight
	count := 0
	for e := range g.IncidentEdges(n0) {
		if err := g.Disconnect(e); err != nil {
			t.Fatalf("Disconnect: %v", err)
		}
		count++
	}
	if count != 3 || g.EdgeCount() != 0 {
		t.Errorf("removed %d edges, %d left; want 3 and 0", count, g.EdgeCount())
	}
}

func TestEdge_OtherNode(t *testing.T) {
	g := core.NewGraph(3)
	e, _ := g.Connect(0, 1)
	n0, n1, n2 := mustNode(t, g, 0), mustNode(t, g, 1), mustNode(t, g, 2)

	if got, err := e.OtherNode(n0); err != nil || got != n1 {
		t.Errorf("OtherNode(0) = %v, %v; want 1", got, err)
	}
	if got, err := e.OtherNode(n1); err != nil || got != n0 {
		t.Errorf("OtherNode(1) = %v, %v; want 0", got, err)
	}
	if _, err := e.OtherNode(n2); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("OtherNode(2): want ErrInvalidArgument, got %v", err)
	}
	if !e.IsIncident(n0) || e.IsIncident(n2) {
		t.Error("IsIncident mismatch")
	}
}

func TestMakeGraph(t *testing.T) {
	g, err := core.MakeGraph(0, 1, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 || g.EdgeCount() != 2 {
		t.Errorf("Len=%d EdgeCount=%d; want 5 and 2", g.Len(), g.EdgeCount())
	}

	if _, err = core.MakeGraph(0, 1, 2); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("odd pairs: want ErrInvalidArgument, got %v", err)
	}
	if _, err = core.MakeGraph(0, -1); !errors.Is(err, core.ErrInvalidReference) {
		t.Errorf("negative index: want ErrInvalidReference, got %v", err)
	}
	empty, err := core.MakeGraph()
	if err != nil || empty.Len() != 0 {
		t.Errorf("MakeGraph() = %v, %v; want empty graph", empty, err)
	}
}
