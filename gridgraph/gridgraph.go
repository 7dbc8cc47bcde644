package gridgraph

import (
	"errors"
	"fmt"

	"github.com/louiserondia/npuzzle/core"
)

// ErrInvalidSide indicates a non-positive side length.
var ErrInvalidSide = errors.New("gridgraph: side must be a positive integer")

// neighborOffsets is the 4-connectivity neighbor set, independent of
// grid.Dirs: this package models general orthogonal adjacency, not the
// puzzle's own move-direction enumeration.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// VertexID formats the vertex identifier for cell (x,y), matching the
// "x,y" convention every caller in this module uses.
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// New builds a weighted, undirected *core.Graph with one vertex per cell of
// a side x side board and a unit-weight edge between every pair of
// orthogonally adjacent cells. Returns ErrInvalidSide if side < 1.
func New(side int) (*core.Graph, error) {
	if side < 1 {
		return nil, ErrInvalidSide
	}

	g := core.NewGraph(core.WithWeighted())
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			_ = g.AddVertex(VertexID(x, y))
		}
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			from := VertexID(x, y)
			for _, off := range neighborOffsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= side || ny < 0 || ny >= side {
					continue
				}
				_, _ = g.AddEdge(from, VertexID(nx, ny), 1)
			}
		}
	}

	return g, nil
}
