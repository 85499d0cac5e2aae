package graph

import "fmt"

// Weight is the set of edge weight types the router can add and compare
type Weight interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

type VertexID int

type EdgeID int

// Edge is a directed edge between two vertices
type Edge[W Weight] struct {
	From   VertexID
	To     VertexID
	Weight W
}

// DirectedWeightedGraph stores edges in a flat list plus per-vertex incidence lists
type DirectedWeightedGraph[W Weight] struct {
	edges     []Edge[W]
	incidence [][]EdgeID
}

// NewDirectedWeightedGraph creates a graph with a fixed number of vertices and no edges
func NewDirectedWeightedGraph[W Weight](vertexCount int) *DirectedWeightedGraph[W] {
	if vertexCount < 0 {
		vertexCount = 0
	}
	return &DirectedWeightedGraph[W]{
		incidence: make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends an edge and returns its id. Vertices must lie in
// [0, VertexCount()) and the weight must not be negative; otherwise AddEdge panics.
func (g *DirectedWeightedGraph[W]) AddEdge(e Edge[W]) EdgeID {
	if !g.hasVertex(e.From) || !g.hasVertex(e.To) {
		panic(fmt.Sprintf("graph: edge %d -> %d out of range [0, %d)", e.From, e.To, len(g.incidence)))
	}
	if e.Weight < 0 {
		panic(fmt.Sprintf("graph: negative weight %v on edge %d -> %d", e.Weight, e.From, e.To))
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

func (g *DirectedWeightedGraph[W]) VertexCount() int { return len(g.incidence) }

func (g *DirectedWeightedGraph[W]) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id
func (g *DirectedWeightedGraph[W]) Edge(id EdgeID) Edge[W] {
	return g.edges[id]
}

// IncidentEdges returns the ids of the edges leaving a vertex, in insertion order.
// The returned slice must not be modified.
func (g *DirectedWeightedGraph[W]) IncidentEdges(v VertexID) []EdgeID {
	return g.incidence[v]
}

func (g *DirectedWeightedGraph[W]) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incidence)
}
