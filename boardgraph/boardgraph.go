package boardgraph

import (
	"fmt"
	"math"

	"github.com/louiserondia/npuzzle/algorithms"
	"github.com/louiserondia/npuzzle/dijkstra"
	"github.com/louiserondia/npuzzle/gridgraph"
)

// Report summarizes one Diagnose run.
type Report struct {
	Side            int
	VertexCount     int
	FullyConnected  bool
	ManhattanExact  bool
	MaxDistMismatch int64
	MinDegree       int
	MaxDegree       int
}

// String renders the report as a single line of key=value fields, matching the
// plain-text style result.Result.Render uses for its own metric line.
func (r *Report) String() string {
	return fmt.Sprintf(
		"boardgraph diagnose side=%d vertices=%d fully_connected=%t manhattan_exact=%t max_dist_mismatch=%d degree=[%d,%d]",
		r.Side, r.VertexCount, r.FullyConnected, r.ManhattanExact, r.MaxDistMismatch, r.MinDegree, r.MaxDegree,
	)
}

// Diagnose builds the side x side board's 4-connectivity graph and checks
// invariants that must hold for any square grid: every cell is reachable
// from the corner (0,0), the board-graph shortest distance from (0,0) to
// every cell equals its Manhattan distance — the same quantity
// heuristic.Manhattan computes directly from coordinates, with no graph
// involved — and vertex degree stays within [2,4] (corners have 2 edges,
// edges have 3, interior cells have 4). A mismatch here would mean
// gridgraph built the wrong topology, not that the puzzle is unsolvable.
func Diagnose(side int) (*Report, error) {
	g, err := gridgraph.New(side)
	if err != nil {
		return nil, fmt.Errorf("boardgraph: %w", err)
	}

	origin := gridgraph.VertexID(0, 0)
	bfsRes, err := algorithms.BFS(g, origin, nil)
	if err != nil {
		return nil, fmt.Errorf("boardgraph: bfs: %w", err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource(origin))
	if err != nil {
		return nil, fmt.Errorf("boardgraph: dijkstra: %w", err)
	}

	vertices := g.Vertices()
	rep := &Report{
		Side:           side,
		VertexCount:    len(vertices),
		FullyConnected: len(bfsRes.Visited) == side*side,
		ManhattanExact: true,
	}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			want := int64(iabs(x) + iabs(y))
			got := dist[gridgraph.VertexID(x, y)]
			if mismatch := iabs64(got - want); mismatch > rep.MaxDistMismatch {
				rep.MaxDistMismatch = mismatch
			}
		}
	}
	rep.ManhattanExact = rep.MaxDistMismatch == 0

	rep.MinDegree, rep.MaxDegree = math.MaxInt, 0
	for _, v := range vertices {
		d := g.Degree(v)
		if d < rep.MinDegree {
			rep.MinDegree = d
		}
		if d > rep.MaxDegree {
			rep.MaxDegree = d
		}
	}

	return rep, nil
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func iabs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
