package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rookflow/flow"
	"github.com/katalvlaran/rookflow/problem"
)

// ExampleNetwork_MaxFlow builds the 4×4 grid split into two diagonal 2×2
// blocks. Each block holds two non-attacking rooks.
func ExampleNetwork_MaxFlow() {
	p, _ := problem.ParseString("4 2  0 0 1 1  2 2 3 3")
	n, err := flow.NewNetwork(p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n.MaxFlow())
	// Output:
	// 4
}

// ExampleNetwork_Solve reports phase statistics and the decoded rooks.
//
//	row 0 ─ rect 0 ─ cols 0,1
//	row 1 ─ rect 1 ─ col 0
//
// Row 0 first grabs column 0; the second phase reroutes it through the
// reverse edge so row 1 can have column 0.
func ExampleNetwork_Solve() {
	p := problem.Problem{Side: 2, Rectangles: []problem.Rectangle{
		problem.Rect(0, 0, 0, 1),
		problem.Rect(1, 0, 1, 0),
	}}
	n, _ := flow.NewNetwork(p)
	res, _ := n.Solve(context.Background())
	fmt.Printf("flow=%d phases=%d paths=%d\n", res.Flow, res.Phases, res.Augmentations)
	for _, pl := range n.Placements() {
		fmt.Printf("row %d col %d via rect %d\n", pl.Row, pl.Column, pl.Rect)
	}
	// Output:
	// flow=2 phases=3 paths=2
	// row 0 col 1 via rect 0
	// row 1 col 0 via rect 1
}

// ExampleLayout shows the dense index of each vertex kind.
func ExampleLayout() {
	l := flow.NewLayout(2, 1)
	for i := 0; i < l.Len(); i++ {
		fmt.Println(i, l.Vertex(i))
	}
	// Output:
	// 0 row(0)
	// 1 row(1)
	// 2 col(0)
	// 3 col(1)
	// 4 source
	// 5 sink
	// 6 rect(0)
}
