package search

import (
	"context"
	"errors"

	"github.com/louiserondia/npuzzle/heuristic"
)

// Sentinel errors returned by Solve.
var (
	// ErrUnsolvable indicates the start grid's inversion parity forbids a
	// solution; Solve checks this upfront and never expands a single node.
	ErrUnsolvable = errors.New("search: grid is not solvable")

	// ErrExpansionCapExceeded indicates WithMaxExpansions was set and the
	// search exhausted its budget before finding the goal.
	ErrExpansionCapExceeded = errors.New("search: node expansion cap exceeded")
)

// Algo selects the search strategy Solve runs.
type Algo int

const (
	// AStar is best-first search over an open/closed set.
	AStar Algo = iota
	// IDAStar is iterative-deepening depth-first search.
	IDAStar
)

// String names the Algo, matching the CLI's --algo flag values.
func (a Algo) String() string {
	switch a {
	case AStar:
		return "astar"
	case IDAStar:
		return "idastar"
	default:
		return "unknown"
	}
}

// Options configures a Solve call.
//
// Heuristic    – the distance Kind driving both algorithms. Default Manhattan.
// MaxExpansions – if > 0, Solve aborts with ErrExpansionCapExceeded once
//                  time_complexity would exceed it. Default 0 (unlimited).
// Ctx          – checked once per outer loop iteration: before each A* pop
//                  (so once per popped node) and before each IDA* threshold
//                  retry (never inside a probe). Default context.Background().
type Options struct {
	Heuristic     heuristic.Kind
	MaxExpansions int
	Ctx           context.Context
}

// Option configures Options.
type Option func(*Options)

// WithHeuristic selects the heuristic Kind used to guide the search.
func WithHeuristic(k heuristic.Kind) Option {
	return func(o *Options) { o.Heuristic = k }
}

// WithMaxExpansions caps the number of node expansions Solve will perform
// before giving up with ErrExpansionCapExceeded. max <= 0 means unlimited.
func WithMaxExpansions(max int) Option {
	return func(o *Options) { o.MaxExpansions = max }
}

// WithContext sets the context checked between outer-loop iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the Options Solve uses absent overrides.
func DefaultOptions() Options {
	return Options{
		Heuristic:     heuristic.Manhattan,
		MaxExpansions: 0,
		Ctx:           context.Background(),
	}
}
