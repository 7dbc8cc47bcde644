package search

import (
	"context"

	"github.com/louiserondia/npuzzle/grid"
	"github.com/louiserondia/npuzzle/result"
)

// Solve finds a shortest (A*) or bounded-depth (IDA*) move sequence that
// transforms start into grid.Solved(start.Side()), under the given Algo and
// Options. It returns ErrUnsolvable without expanding a single node if
// start's inversion parity forbids a solution.
func Solve(start *grid.Grid, algo Algo, opts ...Option) (*result.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	if !grid.Solvable(start) {
		return nil, ErrUnsolvable
	}

	snail := grid.NewSnailMap(start.Side())

	switch algo {
	case IDAStar:
		return runIDAStar(start, snail, cfg)
	default:
		return runAStar(start, snail, cfg)
	}
}
