package flow

import "strconv"

// Kind tags the five vertex categories of a rook network.
type Kind uint8

const (
	// KindSource is the single source feeding every row.
	KindSource Kind = iota
	// KindRow is a grid row.
	KindRow
	// KindRectangle is a rectangle joining its rows to its columns.
	KindRectangle
	// KindColumn is a grid column.
	KindColumn
	// KindSink is the single sink draining every column.
	KindSink
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindRow:
		return "row"
	case KindRectangle:
		return "rect"
	case KindColumn:
		return "col"
	case KindSink:
		return "sink"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Vertex is a tagged vertex: Kind plus the row, rectangle or column number.
// Index is zero for Source and Sink. Vertices are compared by value.
type Vertex struct {
	Kind  Kind
	Index int
}

// Source returns the source vertex.
func Source() Vertex { return Vertex{Kind: KindSource} }

// Sink returns the sink vertex.
func Sink() Vertex { return Vertex{Kind: KindSink} }

// Row returns the vertex of grid row i.
func Row(i int) Vertex { return Vertex{Kind: KindRow, Index: i} }

// Column returns the vertex of grid column i.
func Column(i int) Vertex { return Vertex{Kind: KindColumn, Index: i} }

// Rect returns the vertex of rectangle i (input order).
func Rect(i int) Vertex { return Vertex{Kind: KindRectangle, Index: i} }

// String renders "source", "sink", or "row(3)" style labels.
func (v Vertex) String() string {
	switch v.Kind {
	case KindSource, KindSink:
		return v.Kind.String()
	default:
		return v.Kind.String() + "(" + strconv.Itoa(v.Index) + ")"
	}
}
