package dijkstra

import "errors"

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates Options.Source was never set.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was built without core.WithWeighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph is not weighted")

	// ErrVertexNotFound indicates Options.Source is absent from the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates an edge with a negative weight was found.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
)

// Options configures a Dijkstra call.
type Options struct {
	Source     string
	ReturnPath bool
}

// Option configures Options.
type Option func(*Options)

// WithSource sets the vertex shortest paths are computed from.
func WithSource(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath requests the predecessor map in Dijkstra's second return
// value; omitting it leaves that map nil to save memory.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}
