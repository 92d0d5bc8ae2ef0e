package flow

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rookflow/queue"
)

// ErrInvalidProblem is returned by NewNetwork when the problem fails
// validation. The underlying problem error is wrapped alongside it.
var ErrInvalidProblem = errors.New("flow: invalid problem")

// Options configures a Network.
//   - Logger: receives one debug line per phase; nil disables logging.
//   - ChunkSize: block size of the BFS queue (default queue.DefaultChunkSize).
type Options struct {
	Logger    *log.Logger
	ChunkSize int
}

// Option mutates Options; see WithLogger and WithChunkSize.
type Option func(*Options)

// DefaultOptions returns options with logging disabled and the default queue
// chunk size.
func DefaultOptions() Options {
	return Options{ChunkSize: queue.DefaultChunkSize}
}

// WithLogger attaches a logger for per-phase progress.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithChunkSize sets the BFS queue block size. Values ≤ 0 keep the default.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// Result summarizes a completed Solve.
//   - Flow: maximum flow value, equal to the number of rooks placed.
//   - Phases: blocking-flow phases run, including the final empty one.
//   - Augmentations: augmenting paths applied across all phases.
type Result struct {
	Flow          int
	Phases        int
	Augmentations int
}

// Edge is a read-only view of one directed residual edge.
// Forward is true for the unit edge added at construction and false for its
// paired reverse edge.
type Edge struct {
	From, To Vertex
	Capacity int
	Forward  bool
}

// Placement is one unit of flow decoded as a rook: row Row and column Column
// matched through rectangle Rect.
type Placement struct {
	Row    int
	Column int
	Rect   int
}
