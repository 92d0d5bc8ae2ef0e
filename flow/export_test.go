package flow

// White-box bridge for package flow_test: exposes the phase machinery and the
// edge lookup without widening the production API.

// Exhausted is the cursor marker for a vertex with no edges left.
const Exhausted = exhausted

// Phase exposes one blocking-flow phase.
type Phase = phase

// EdgeIndices exposes edgeIndices.
func (n *Network) EdgeIndices(from, to Vertex) (int, int) { return n.edgeIndices(from, to) }

// NewPhase exposes newPhase.
func (n *Network) NewPhase() *Phase { return n.newPhase() }

// Augment exposes augment.
func (n *Network) Augment(path []Vertex, flow int) { n.augment(path, flow) }

// BlockingFlow exposes blockingFlow.
func (n *Network) BlockingFlow() (int, int) { return n.blockingFlow() }

// FindPath exposes findPath.
func (ph *phase) FindPath(v Vertex) ([]Vertex, int, bool) { return ph.findPath(v) }

// Cursor returns the current-arc cursor of v.
func (ph *phase) Cursor(v Vertex) int { return ph.cursors[ph.net.layout.Index(v)] }

// Level returns the level of v in this phase.
func (ph *phase) Level(v Vertex) int { return ph.levels[ph.net.layout.Index(v)] }
