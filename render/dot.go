package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/rookflow/flow"
)

// Options configures DOT output.
type Options struct {
	// Residual also draws reverse edges with positive residual capacity.
	Residual bool
	// Title, if set, becomes the graph label.
	Title string
}

// layerOrder lists vertex kinds in rank order.
var layerOrder = []flow.Kind{flow.KindSource, flow.KindRow, flow.KindRectangle, flow.KindColumn, flow.KindSink}

// ToDOT converts n into Graphviz DOT text. Node IDs are the vertex labels
// ("row(3)", "rect(0)", ...). Output is deterministic.
func ToDOT(n *flow.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph rook {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}

	l := n.Layout()
	layers := make(map[flow.Kind][]flow.Vertex, len(layerOrder))
	for i := 0; i < l.Len(); i++ {
		v := l.Vertex(i)
		layers[v.Kind] = append(layers[v.Kind], v)
	}
	rects := n.Rectangles()
	for _, k := range layerOrder {
		ids := make([]string, 0, len(layers[k]))
		for _, v := range layers[k] {
			ids = append(ids, fmt.Sprintf("%q", v.String()))
			if v.Kind == flow.KindRectangle {
				fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightyellow];\n", v.String(), v.String()+"\n"+rects[v.Index].String())
			}
		}
		if len(ids) > 0 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
		}
	}

	buf.WriteString("\n")
	n.ForEachEdge(func(e flow.Edge) {
		switch {
		case e.Forward && e.Capacity == 0:
			fmt.Fprintf(&buf, "  %q -> %q [penwidth=2.5, color=firebrick];\n", e.From.String(), e.To.String())
		case e.Forward:
			fmt.Fprintf(&buf, "  %q -> %q [color=gray50];\n", e.From.String(), e.To.String())
		case opts.Residual && e.Capacity > 0:
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=steelblue, constraint=false];\n", e.From.String(), e.To.String())
		}
	})
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT text to SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
