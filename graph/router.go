package graph

import "container/heap"

// RouteInfo is a shortest path: its total weight and the edges in travel order
type RouteInfo[W Weight] struct {
	Weight W
	Edges  []EdgeID
}

// Router answers shortest-path queries over an immutable graph
type Router[W Weight] struct {
	graph *DirectedWeightedGraph[W]
}

// NewRouter creates a router over g. The graph must not change afterwards.
func NewRouter[W Weight](g *DirectedWeightedGraph[W]) *Router[W] {
	return &Router[W]{graph: g}
}

// BuildRoute returns the shortest path between two vertices. The second result is
// false when the target cannot be reached or a vertex is out of range.
func (r *Router[W]) BuildRoute(from, to VertexID) (RouteInfo[W], bool) {
	if !r.graph.hasVertex(from) || !r.graph.hasVertex(to) {
		return RouteInfo[W]{}, false
	}
	t := r.search(from, to, true)
	return t.RouteTo(to)
}

// ShortestPaths runs a full single-source search
func (r *Router[W]) ShortestPaths(from VertexID) *Tree[W] {
	if !r.graph.hasVertex(from) {
		return &Tree[W]{graph: r.graph}
	}
	return r.search(from, -1, false)
}

// Tree is the result of a single-source search. It owns its own state, so trees
// from different queries never interfere.
type Tree[W Weight] struct {
	graph    *DirectedWeightedGraph[W]
	source   VertexID
	dist     []W
	prevEdge []EdgeID
	reached  []bool
}

// Reached reports whether v is reachable from the source
func (t *Tree[W]) Reached(v VertexID) bool {
	return v >= 0 && int(v) < len(t.reached) && t.reached[v]
}

// Distance returns the shortest distance to v and whether v was reached
func (t *Tree[W]) Distance(v VertexID) (W, bool) {
	if !t.Reached(v) {
		var zero W
		return zero, false
	}
	return t.dist[v], true
}

// RouteTo reconstructs the path from the source to v
func (t *Tree[W]) RouteTo(v VertexID) (RouteInfo[W], bool) {
	if !t.Reached(v) {
		return RouteInfo[W]{}, false
	}
	var edges []EdgeID
	for cur := v; cur != t.source; {
		eid := t.prevEdge[cur]
		edges = append(edges, eid)
		cur = t.graph.edges[eid].From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	if edges == nil {
		edges = []EdgeID{}
	}
	return RouteInfo[W]{Weight: t.dist[v], Edges: edges}, true
}

// search is Dijkstra from a single source. With stopAtTarget it returns as soon
// as target is settled; the tree is exact for every settled vertex.
func (r *Router[W]) search(source, target VertexID, stopAtTarget bool) *Tree[W] {
	n := r.graph.VertexCount()
	t := &Tree[W]{
		graph:    r.graph,
		source:   source,
		dist:     make([]W, n),
		prevEdge: make([]EdgeID, n),
		reached:  make([]bool, n),
	}
	settled := make([]bool, n)

	seq := 0
	pq := &priorityQueue[W]{}
	t.reached[source] = true
	t.prevEdge[source] = -1
	heap.Push(pq, pqItem[W]{vertex: source, dist: 0, seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem[W])
		cur := item.vertex
		if settled[cur] || item.dist > t.dist[cur] {
			continue
		}
		settled[cur] = true
		if stopAtTarget && cur == target {
			break
		}
		for _, eid := range r.graph.incidence[cur] {
			e := r.graph.edges[eid]
			if settled[e.To] {
				continue
			}
			tentative := t.dist[cur] + e.Weight
			// strict comparison: the first edge that reached a distance keeps it
			if t.reached[e.To] && tentative >= t.dist[e.To] {
				continue
			}
			t.reached[e.To] = true
			t.dist[e.To] = tentative
			t.prevEdge[e.To] = eid
			seq++
			heap.Push(pq, pqItem[W]{vertex: e.To, dist: tentative, seq: seq})
		}
	}
	return t
}
