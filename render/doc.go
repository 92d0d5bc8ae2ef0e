// Package render draws a rook network with Graphviz.
//
// ToDOT produces DOT text laid out left to right, one rank per vertex layer
// (source, rows, rectangles, columns, sink). Forward edges that carry flow
// are drawn bold; with Options.Residual the positive-capacity reverse edges
// are added as dashed arrows. RenderSVG turns the DOT text into SVG using the
// embedded Graphviz build of github.com/goccy/go-graphviz.
package render
