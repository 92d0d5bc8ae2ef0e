package flow

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rookflow/internal/enforce"
	"github.com/katalvlaran/rookflow/problem"
)

// edge is one residual edge in an adjacency list. The paired edge lives in
// the adjacency list of to and points back at the owner.
type edge struct {
	to       Vertex
	capacity int
	forward  bool
}

// Network is the rook flow network:
//
//	Source → Row(i) → Rect(r) → Column(j) → Sink
//
// Every forward edge has capacity 1 and a paired reverse edge of capacity 0.
// Each adjacency list is ordered by target index, which lets edgeIndices find
// any edge with a binary search.
//
// Only capacities change after construction. A Network is not safe for
// concurrent use.
type Network struct {
	layout Layout
	adj    [][]edge
	rects  []problem.Rectangle
	opts   Options
}

// NewNetwork validates p and builds its network.
//
// Steps:
//  1. Validate p (side > 0, every rectangle inside the grid).
//  2. For each i in [0, side): add Source→Row(i) and Column(i)→Sink.
//  3. For each rectangle r in input order: add Row(row)→Rect(r) for its rows,
//     then Rect(r)→Column(col) for its columns.
//
// Insertion order alone keeps every adjacency list sorted by target index:
// targets are always appended in increasing index order for each owner.
//
// Complexity:
//
//	Time:   O(n + Σ(height+width)) over all rectangles.
//	Memory: O(V + E).
func NewNetwork(p problem.Problem, opts ...Option) (*Network, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := NewLayout(p.Side, len(p.Rectangles))
	n := &Network{
		layout: l,
		adj:    make([][]edge, l.Len()),
		rects:  append([]problem.Rectangle(nil), p.Rectangles...),
		opts:   o,
	}

	for i := 0; i < p.Side; i++ {
		n.addEdge(Source(), Row(i))
		n.addEdge(Column(i), Sink())
	}
	for r, rc := range p.Rectangles {
		for row := rc.RowStart; row <= rc.RowEnd; row++ {
			n.addEdge(Row(row), Rect(r))
		}
		for col := rc.ColStart; col <= rc.ColEnd; col++ {
			n.addEdge(Rect(r), Column(col))
		}
	}
	return n, nil
}

// addEdge appends from→to with capacity 1 and to→from with capacity 0.
func (n *Network) addEdge(from, to Vertex) {
	u, v := n.layout.Index(from), n.layout.Index(to)
	n.adj[u] = append(n.adj[u], edge{to: to, capacity: 1, forward: true})
	n.adj[v] = append(n.adj[v], edge{to: from, capacity: 0})
}

// edgeIndices locates the edge from→to as (owner index, position).
//
// Source's list holds rows in row order and Sink's list holds columns in
// column order, so those positions are direct. Every other lookup is a binary
// search for the first target index ≥ Index(to). A lookup that cannot succeed
// means the network is corrupt and panics.
func (n *Network) edgeIndices(from, to Vertex) (int, int) {
	u := n.layout.Index(from)
	switch from.Kind {
	case KindSource:
		enforce.That(to.Kind == KindRow, "network: source has no edge to %v", to)
		return u, to.Index
	case KindSink:
		enforce.That(to.Kind == KindColumn, "network: sink has no edge to %v", to)
		return u, to.Index
	}

	list := n.adj[u]
	target := n.layout.Index(to)
	pos := sort.Search(len(list), func(i int) bool {
		return n.layout.Index(list[i].to) >= target
	})
	enforce.That(pos < len(list) && list[pos].to == to, "network: no edge %v→%v", from, to)
	return u, pos
}

// ModifyCapacity adds delta to the residual capacity of from→to.
//
// Callers own the pair invariant: a change to from→to must be mirrored by the
// opposite change to to→from. A missing edge or a negative result panics.
func (n *Network) ModifyCapacity(from, to Vertex, delta int) {
	u, pos := n.edgeIndices(from, to)
	e := &n.adj[u][pos]
	e.capacity += delta
	enforce.That(e.capacity >= 0, "network: capacity of %v→%v fell to %d", from, to, e.capacity)
}

// Capacity returns the residual capacity of from→to. A missing edge panics.
func (n *Network) Capacity(from, to Vertex) int {
	u, pos := n.edgeIndices(from, to)
	return n.adj[u][pos].capacity
}

// Layout returns the vertex layout of the network.
func (n *Network) Layout() Layout { return n.layout }

// Rectangles returns the rectangles the network was built from.
func (n *Network) Rectangles() []problem.Rectangle {
	return append([]problem.Rectangle(nil), n.rects...)
}

// EdgeCount returns the number of forward edges (half the residual edges).
func (n *Network) EdgeCount() int {
	total := 0
	for _, list := range n.adj {
		total += len(list)
	}
	return total / 2
}

// ForEachEdge calls fn for every residual edge, owners in index order and
// each owner's edges in list order.
func (n *Network) ForEachEdge(fn func(Edge)) {
	for u, list := range n.adj {
		from := n.layout.Vertex(u)
		for _, e := range list {
			fn(Edge{From: from, To: e.to, Capacity: e.capacity, Forward: e.forward})
		}
	}
}
