// Package rookflow places non-attacking rooks inside rectangles by solving a
// unit-capacity maximum-flow problem with Dinic's blocking-flow algorithm.
//
// 🚀 What is rookflow?
//
//	Given an n×n grid and a list of axis-aligned rectangles, each rook must sit
//	inside one rectangle, and no two rooks may share a row or a column. The
//	largest such placement equals the maximum flow of the network
//
//		Source → Row(i) → Rect(r) → Column(j) → Sink
//
//	where Row(i)→Rect(r) exists iff row i crosses r, Rect(r)→Column(j) exists
//	iff column j crosses r, and every edge has capacity 1.
//
// Under the hood the module is organized as:
//
//	queue/        generic FIFO growing in fixed-size chunks (BFS frontier)
//	flow/         vertex layout, residual network, level graph, Dinic driver, placements
//	problem/      token-stream and TOML problem input, validation, random instances
//	render/       Graphviz DOT and SVG drawings of a (solved) network
//	config/       TOML settings for the command-line tool
//	cmd/rookflow  the command-line tool (solve, gen, render)
//
// Quick example:
//
//	    0 1 2 3
//	  0 ┌───┐
//	  1 └───┘
//	  2     ┌───┐
//	  3     └───┘
//
//	"4 2 0 0 1 1 2 2 3 3" describes the grid above; the answer is 4 rooks.
//
//	go install github.com/katalvlaran/rookflow/cmd/rookflow@latest
package rookflow
