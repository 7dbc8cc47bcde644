package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/louiserondia/npuzzle/core"
	"github.com/louiserondia/npuzzle/dijkstra"
)

func TestDijkstraRequiresSource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstraRequiresWeightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource("a"))
	require.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstraRequiresKnownSource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource("missing"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstraShortestDistanceOnLine(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("a", "c", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.WithSource("a"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.EqualValues(t, 0, dist["a"])
	require.EqualValues(t, 1, dist["b"])
	require.EqualValues(t, 2, dist["c"])
	require.Equal(t, "b", prev["c"])
}

func TestDijkstraUnreachableVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddVertex("isolated")
	_, _ = g.AddEdge("a", "b", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.WithSource("a"))
	require.NoError(t, err)
	require.EqualValues(t, math.MaxInt64, dist["isolated"])
}
