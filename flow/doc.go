// Package flow computes maximum flow on rook networks with Dinic's algorithm.
//
// A rook network turns a grid-and-rectangles problem into a layered graph:
//
//	Source ─▶ Row(i) ─▶ Rect(r) ─▶ Column(j) ─▶ Sink
//
// Source feeds every row, every column drains into Sink, and rectangle r
// links each row it spans to each column it spans. All forward edges carry
// capacity 1, so the maximum flow is the largest set of rooks, no two sharing
// a row or column, that each sit inside some rectangle.
//
// # Representation
//
//   - Vertex is a tagged value (Kind plus row/rectangle/column number).
//     Layout is the single translation from vertices to dense indices.
//   - Adjacency is a flat [][]edge indexed by dense index. Every forward edge
//     has a paired reverse edge of capacity 0; augmentation moves capacity
//     between the two, so c(u→v)+c(v→u) stays 1.
//   - Lists are sorted by target index, so any edge is found by binary
//     search. Source and Sink lists are addressed directly by row/column.
//
// # Algorithm
//
// Each phase:
//
//  1. Levels: BFS from Source over positive-capacity edges (queue.Queue).
//  2. Blocking flow: repeated DFS from Source that only steps from level k to
//     level k+1. A per-vertex current-arc cursor skips edges already proven
//     useless in this phase and is never rewound, bounding DFS work by O(E)
//     per phase plus O(V) per path.
//  3. Augment each path found.
//
// Phases repeat until one pushes nothing.
//
// Complexity:
//
//	Time:   O(E·√V) on these unit-capacity networks.
//	Memory: O(V + E).
//
// # Errors
//
//	ErrInvalidProblem – NewNetwork input failed problem.Validate (wrapped).
//	context errors    – Solve was cancelled between phases.
//
// A lookup of an edge the construction never created, or a capacity driven
// below zero, is a corrupted network and panics.
//
// # Example
//
//	p, _ := problem.ParseString("2 1 0 0 1 1")
//	n, _ := flow.NewNetwork(p)
//	fmt.Println(n.MaxFlow()) // 2
package flow
