package problem

import (
	"math/rand"

	"github.com/katalvlaran/rookflow/internal/enforce"
)

// Random returns a problem with count rectangles placed uniformly on a
// side×side grid. Each rectangle picks two rows and two columns and spans the
// cells between them, so 1×1 and full-width rectangles both occur.
// Output is deterministic for a given rng state. side must be positive.
func Random(rng *rand.Rand, side, count int) Problem {
	enforce.That(side > 0, "random: side must be positive, got %d", side)
	p := Problem{Side: side, Declared: count, Rectangles: make([]Rectangle, 0, count)}
	for i := 0; i < count; i++ {
		r0, r1 := ordered(rng.Intn(side), rng.Intn(side))
		c0, c1 := ordered(rng.Intn(side), rng.Intn(side))
		p.Rectangles = append(p.Rectangles, Rect(r0, c0, r1, c1))
	}
	enforce.NoError(p.Validate(), "random problem")
	return p
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
