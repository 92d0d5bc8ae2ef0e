package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rookflow/flow"
	"github.com/katalvlaran/rookflow/problem"
	"github.com/katalvlaran/rookflow/render"
)

func network(t *testing.T) *flow.Network {
	t.Helper()
	n, err := flow.NewNetwork(problem.Problem{Side: 2, Rectangles: []problem.Rectangle{
		problem.Rect(0, 0, 0, 1),
		problem.Rect(1, 0, 1, 0),
	}})
	require.NoError(t, err)
	return n
}

func TestToDOT_Unsolved(t *testing.T) {
	n := network(t)
	dot := render.ToDOT(n, render.Options{Title: "reroute"})

	require.True(t, strings.HasPrefix(dot, "digraph rook {\n"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	require.Contains(t, dot, `label="reroute";`)
	require.Contains(t, dot, `{ rank=same; "row(0)"; "row(1)"; }`)
	require.Contains(t, dot, `"rect(0)" [label="rect(0)\n[0..0]x[0..1]", fillcolor=lightyellow];`)
	require.Equal(t, n.EdgeCount(), strings.Count(dot, "->"), "one arrow per forward edge")
	require.NotContains(t, dot, "firebrick")
}

func TestToDOT_Solved(t *testing.T) {
	n := network(t)
	require.Equal(t, 2, n.MaxFlow())

	dot := render.ToDOT(n, render.Options{})
	// Two rooks: 2×(source→row, row→rect, rect→col, col→sink) saturated.
	require.Equal(t, 8, strings.Count(dot, "firebrick"))
	require.Contains(t, dot, `"rect(0)" -> "col(1)" [penwidth=2.5, color=firebrick];`)
	require.Contains(t, dot, `"rect(0)" -> "col(0)" [color=gray50];`)
	require.NotContains(t, dot, "dashed")

	withResidual := render.ToDOT(n, render.Options{Residual: true})
	require.Equal(t, 8, strings.Count(withResidual, "style=dashed"))
}

func TestToDOT_Deterministic(t *testing.T) {
	n := network(t)
	require.Equal(t, render.ToDOT(n, render.Options{}), render.ToDOT(n, render.Options{}))
}
