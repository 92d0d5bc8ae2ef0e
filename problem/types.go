package problem

import "fmt"

// Rectangle is an inclusive block of grid cells: rows [RowStart, RowEnd] and
// columns [ColStart, ColEnd]. Field order matches the input quadruple.
type Rectangle struct {
	RowStart int `toml:"row0"`
	ColStart int `toml:"col0"`
	RowEnd   int `toml:"row1"`
	ColEnd   int `toml:"col1"`
}

// Rect builds a Rectangle from an input quadruple.
func Rect(r0, c0, r1, c1 int) Rectangle {
	return Rectangle{RowStart: r0, ColStart: c0, RowEnd: r1, ColEnd: c1}
}

// String renders the rectangle as "[r0..r1]x[c0..c1]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", r.RowStart, r.RowEnd, r.ColStart, r.ColEnd)
}

// ContainsRow reports whether row lies within the rectangle's row span.
func (r Rectangle) ContainsRow(row int) bool { return r.RowStart <= row && row <= r.RowEnd }

// ContainsCol reports whether col lies within the rectangle's column span.
func (r Rectangle) ContainsCol(col int) bool { return r.ColStart <= col && col <= r.ColEnd }

// Problem is one rook-graph instance: an n×n grid and the rectangles that
// connect its rows to its columns.
type Problem struct {
	// Side is the grid side length n.
	Side int `toml:"side"`
	// Declared is the rectangle count announced by the input. It is kept for
	// diagnostics only; Rectangles is authoritative.
	Declared int `toml:"count"`
	// Rectangles in input order. Rectangle i becomes vertex Rect(i).
	Rectangles []Rectangle `toml:"rect"`
}

// CountMismatch reports whether the declared count disagrees with the number
// of rectangles actually present.
func (p Problem) CountMismatch() bool { return p.Declared != len(p.Rectangles) }

// Validate checks the side length and every rectangle against it.
// Returns ErrInvalidSide or a *RectangleError.
func (p Problem) Validate() error {
	if p.Side <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSide, p.Side)
	}
	for i, r := range p.Rectangles {
		if !inRange(r.RowStart, r.RowEnd, p.Side) || !inRange(r.ColStart, r.ColEnd, p.Side) {
			return &RectangleError{Index: i, Rect: r, Side: p.Side}
		}
	}
	return nil
}

// inRange reports 0 ≤ lo ≤ hi < n.
func inRange(lo, hi, n int) bool {
	return 0 <= lo && lo <= hi && hi < n
}
