package flow

import (
	"sort"

	"github.com/katalvlaran/rookflow/internal/enforce"
)

// Placements decodes the current flow into rook placements.
//
// The flow on a forward edge u→v equals the residual capacity of its reverse
// edge v→u. For each rectangle the rows sending flow into it and the columns
// receiving flow from it are paired in increasing order; conservation at the
// rectangle guarantees the two lists have equal length.
//
// On a solved network len(result) == Result.Flow, no row or column repeats,
// and every rook lies inside its rectangle. Results are sorted by row.
func (n *Network) Placements() []Placement {
	var out []Placement
	for r := range n.rects {
		rv := Rect(r)
		var rows, cols []int
		for _, e := range n.adj[n.layout.Index(rv)] {
			switch {
			case e.to.Kind == KindRow && !e.forward:
				if e.capacity > 0 {
					rows = append(rows, e.to.Index)
				}
			case e.to.Kind == KindColumn && e.forward:
				if n.Capacity(e.to, rv) > 0 {
					cols = append(cols, e.to.Index)
				}
			}
		}
		enforce.That(len(rows) == len(cols), "placement: rect %d takes %d rows but feeds %d columns", r, len(rows), len(cols))
		for i := range rows {
			out = append(out, Placement{Row: rows[i], Column: cols[i], Rect: r})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out
}
