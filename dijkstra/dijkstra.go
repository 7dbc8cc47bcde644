package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/louiserondia/npuzzle/core"
)

// Dijkstra computes shortest distances from opts' Source vertex to every
// other vertex reachable in g. dist maps vertex ID to minimum distance
// (math.MaxInt64 if unreachable). prev is non-nil, mapping vertex ID to its
// predecessor on the shortest path, only if WithReturnPath was given.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	visited := make(map[string]bool, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		dist[v] = math.MaxInt64
	}
	dist[cfg.Source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: cfg.Source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		nbrs, err := g.Neighbors(item.id)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", item.id, err)
		}
		for _, e := range nbrs {
			newDist := dist[item.id] + e.Weight
			if newDist >= dist[e.To] {
				continue
			}
			dist[e.To] = newDist
			if prev != nil {
				prev[e.To] = item.id
			}
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev, nil
}

type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy decrease-key discipline as search.astarHeap.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
