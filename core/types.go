// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors and NewGraph.

package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidReference indicates a node or edge that is not a member of
	// the graph performing the operation, or a node index out of range.
	ErrInvalidReference = errors.New("core: reference to a node or edge outside this graph")

	// ErrInvalidArgument indicates a malformed argument, e.g. OtherNode
	// called with a node that is not an endpoint of the edge.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrEdgeNotFound indicates the edge has already been disconnected.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrUnreachable indicates that no path connects the requested nodes.
	ErrUnreachable = errors.New("core: no path between nodes")
)

// Node is a handle to one vertex of a Graph.
//
// Nodes are small comparable values and can be used as map keys. They are
// only obtained from the Graph that owns them; the zero Node belongs to no
// graph and is rejected by every Graph method.
type Node struct {
	g  *Graph
	id int
}

// ID returns the node's index within its graph.
func (n Node) ID() int { return n.id }

// Graph returns the graph owning n, or nil for the zero Node.
func (n Node) Graph() *Graph { return n.g }

// String formats the node as its index.
func (n Node) String() string { return strconv.Itoa(n.id) }

// Edge is an undirected connection between From and To.
//
// Edges are values; two Edge values are equal iff they denote the same
// connection of the same graph. Parallel edges are distinct Edges.
type Edge struct {
	id       int
	From, To Node
}

// ID returns the edge's creation index. IDs are never reused.
func (e Edge) ID() int { return e.id }

// edgeRecord is one arena slot. Removed edges keep their slot with
// alive=false so IDs stay stable.
type edgeRecord struct {
	from, to int
	alive    bool
}

// Graph is an undirected graph over a fixed set of nodes.
//
// incidence[v] lists the IDs of edges touching v in connection order.
// mu guards incidence, edges and live.
type Graph struct {
	mu sync.RWMutex

	incidence [][]int      // node index → incident edge IDs
	edges     []edgeRecord // edge ID → endpoints
	live      int          // number of alive edges
}

// NewGraph creates a graph with n nodes numbered 0..n-1 and no edges.
// A negative n yields an empty graph.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{incidence: make([][]int, n)}
}
