package flow

import "github.com/katalvlaran/rookflow/queue"

// unreached marks a vertex with no positive-capacity path from Source.
const unreached = -1

// levelItem is a BFS frontier entry.
type levelItem struct {
	v     Vertex
	level int
}

// Levels computes the BFS distance from Source to every vertex over edges
// with positive residual capacity. Unreachable vertices get -1.
//
// Each vertex is labelled once, when first discovered, which under BFS is its
// shortest distance. Sink is never expanded. Levels does not mutate the
// network, so two calls without an augmentation in between agree.
//
// Complexity: O(V + E).
func (n *Network) Levels() []int {
	levels := make([]int, n.layout.Len())
	for i := range levels {
		levels[i] = unreached
	}

	q := queue.New[levelItem](n.opts.ChunkSize)
	q.Push(levelItem{v: Source(), level: 0})
	levels[n.layout.Index(Source())] = 0

	for {
		it, ok := q.Pop()
		if !ok {
			break
		}
		if it.v.Kind == KindSink {
			continue
		}
		for _, e := range n.adj[n.layout.Index(it.v)] {
			if e.capacity <= 0 {
				continue
			}
			w := n.layout.Index(e.to)
			if levels[w] != unreached {
				continue
			}
			levels[w] = it.level + 1
			q.Push(levelItem{v: e.to, level: it.level + 1})
		}
	}
	return levels
}
