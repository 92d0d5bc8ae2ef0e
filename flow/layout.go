package flow

import "github.com/katalvlaran/rookflow/internal/enforce"

// Layout maps vertices of a rook network with side n and R rectangles onto
// the dense range [0, 2n+2+R):
//
//	rows        0 .. n-1
//	columns     n .. 2n-1
//	source      2n
//	sink        2n+1
//	rectangles  2n+2 .. 2n+1+R
//
// Index and Vertex are inverse bijections over that range. Layout is the only
// place where vertices become integers.
type Layout struct {
	side  int
	rects int
}

// NewLayout returns the layout for a side×side grid with rects rectangles.
func NewLayout(side, rects int) Layout {
	return Layout{side: side, rects: rects}
}

// Side returns the grid side length.
func (l Layout) Side() int { return l.side }

// Rects returns the rectangle count.
func (l Layout) Rects() int { return l.rects }

// Len returns the number of vertices.
func (l Layout) Len() int { return 2*l.side + 2 + l.rects }

// Index returns the dense index of v.
func (l Layout) Index(v Vertex) int {
	switch v.Kind {
	case KindRow:
		return v.Index
	case KindColumn:
		return l.side + v.Index
	case KindSource:
		return 2 * l.side
	case KindSink:
		return 2*l.side + 1
	case KindRectangle:
		return 2*l.side + 2 + v.Index
	}
	enforce.That(false, "layout: unknown vertex kind %v", v.Kind)
	return -1
}

// Vertex returns the vertex stored at dense index i.
// Panics if i is outside [0, Len()).
func (l Layout) Vertex(i int) Vertex {
	enforce.That(0 <= i && i < l.Len(), "layout: index %d outside [0,%d)", i, l.Len())
	switch {
	case i < l.side:
		return Row(i)
	case i < 2*l.side:
		return Column(i - l.side)
	case i == 2*l.side:
		return Source()
	case i == 2*l.side+1:
		return Sink()
	default:
		return Rect(i - 2*l.side - 2)
	}
}
