package flow

import (
	"context"
	"math"
	"slices"
)

// exhausted marks a current-arc cursor with no edges left in this phase. It is
// also set while a vertex is on the active DFS path.
const exhausted = -1

// phase is the state of one blocking-flow phase. levels and cursors are
// indexed by dense vertex index and discarded when the phase ends.
type phase struct {
	net     *Network
	levels  []int
	cursors []int
}

// newPhase computes levels and points every cursor at the start of its list.
func (n *Network) newPhase() *phase {
	return &phase{
		net:     n,
		levels:  n.Levels(),
		cursors: make([]int, n.layout.Len()),
	}
}

// findPath searches the level graph for a path from v to Sink.
//
// It returns the path in Sink..v order and its bottleneck capacity. Sink
// itself yields an unbounded bottleneck (math.MaxInt) that callers narrow.
//
// The cursor of v only moves forward within a phase: an edge whose subtree
// failed is never tried again. On success the cursor stays on the edge that
// worked so the next search can reuse it while it has capacity. Together these
// bound the DFS work of a whole phase by O(E) plus O(V) per path found.
func (ph *phase) findPath(v Vertex) ([]Vertex, int, bool) {
	if v.Kind == KindSink {
		return []Vertex{v}, math.MaxInt, true
	}

	l := ph.net.layout
	u := l.Index(v)
	start := ph.cursors[u]
	if start == exhausted {
		return nil, 0, false
	}
	ph.cursors[u] = exhausted

	next := ph.levels[u] + 1
	edges := ph.net.adj[u]
	for i := start; i < len(edges); i++ {
		e := edges[i]
		if e.capacity <= 0 {
			continue
		}
		if ph.levels[l.Index(e.to)] != next {
			continue
		}
		path, bottleneck, ok := ph.findPath(e.to)
		if !ok {
			continue
		}
		ph.cursors[u] = i
		return append(path, v), min(bottleneck, e.capacity), true
	}
	return nil, 0, false
}

// augment pushes flow along path (Source..Sink order): each forward step
// loses flow and its reverse edge gains it.
func (n *Network) augment(path []Vertex, flow int) {
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		n.ModifyCapacity(u, v, -flow)
		n.ModifyCapacity(v, u, flow)
	}
}

// blockingFlow runs one phase and returns the flow it pushed and the number of
// augmenting paths used.
func (n *Network) blockingFlow() (flow, paths int) {
	ph := n.newPhase()
	for {
		path, bottleneck, ok := ph.findPath(Source())
		if !ok {
			return flow, paths
		}
		slices.Reverse(path)
		n.augment(path, bottleneck)
		flow += bottleneck
		paths++
	}
}

// MaxFlow runs Dinic's algorithm to completion and returns the maximum flow.
// Calling it again on a solved network returns 0: the residual graph has no
// augmenting path left.
func (n *Network) MaxFlow() int {
	res, _ := n.Solve(context.Background())
	return res.Flow
}

// Solve runs blocking-flow phases until one pushes no flow.
//
// Steps:
//  1. Check ctx; a cancelled context stops the run between phases and the
//     partial Result is returned with ctx.Err().
//  2. Build levels, reset cursors, push paths until findPath fails.
//  3. Stop when the phase pushed nothing.
//
// A phase always runs to completion. Each phase strictly lengthens the
// shortest Source→Sink path of the residual graph, so Phases ≤ Layout().Len().
//
// Complexity:
//
//	Time:   O(E·√V) for unit-capacity networks.
//	Memory: O(V + E) plus O(V) per phase.
func (n *Network) Solve(ctx context.Context) (Result, error) {
	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		flow, paths := n.blockingFlow()
		res.Phases++
		res.Flow += flow
		res.Augmentations += paths
		if n.opts.Logger != nil {
			n.opts.Logger.Debug("phase done", "phase", res.Phases, "flow", flow, "paths", paths, "total", res.Flow)
		}
		if flow == 0 {
			return res, nil
		}
	}
}
