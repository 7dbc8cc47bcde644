package core

import "sort"

// AddVertex inserts id if missing; adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string]*Edge)

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns every vertex ID, sorted ascending so iteration order is
// reproducible.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AddEdge adds an edge from->to with the given weight, auto-adding either
// endpoint it doesn't already have. On an undirected graph it also
// registers the to->from direction so Neighbors sees both ends; on a
// directed graph only from->to is added. Re-adding an existing from->to
// edge overwrites its weight. Returns ErrBadWeight if weight != 0 on an
// unweighted graph.
func (g *Graph) AddEdge(from, to string, weight int64) (*Edge, error) {
	if weight != 0 && !g.weighted {
		return nil, ErrBadWeight
	}
	_ = g.AddVertex(from)
	_ = g.AddVertex(to)

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	g.adj[from][to] = e
	if !g.directed {
		g.adj[to][from] = &Edge{From: to, To: from, Weight: weight, Directed: false}
	}

	return e, nil
}

// HasEdge reports whether a from->to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	nbrs, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}

// Edges returns every edge in the graph. On an undirected graph each pair
// is returned once, from the lexicographically smaller endpoint's side.
func (g *Graph) Edges() []*Edge {
	var out []*Edge
	for from, nbrs := range g.adj {
		for to, e := range nbrs {
			if !g.directed && from > to {
				continue
			}
			out = append(out, e)
		}
	}

	return out
}

// Neighbors returns the edges outgoing from id, sorted by destination ID.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	tos := make([]string, 0, len(nbrs))
	for to := range nbrs {
		tos = append(tos, to)
	}
	sort.Strings(tos)

	out := make([]*Edge, 0, len(tos))
	for _, to := range tos {
		out = append(out, nbrs[to])
	}

	return out, nil
}

// Degree returns the number of edges outgoing from id. On an undirected
// graph that is every edge incident to id; on a directed graph incoming
// edges are not counted.
func (g *Graph) Degree(id string) int {
	return len(g.adj[id])
}

// Clone returns an independent deep copy of g.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		vertices: make(map[string]struct{}, len(g.vertices)),
		adj:      make(map[string]map[string]*Edge, len(g.adj)),
	}
	for id := range g.vertices {
		cp.vertices[id] = struct{}{}
	}
	for from, nbrs := range g.adj {
		m := make(map[string]*Edge, len(nbrs))
		for to, e := range nbrs {
			ecp := *e
			m[to] = &ecp
		}
		cp.adj[from] = m
	}

	return cp
}
