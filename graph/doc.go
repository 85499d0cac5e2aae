// Package graph implements a generic directed weighted graph and a Dijkstra
// shortest-path router over it.
//
// Edge ids are assigned in insertion order starting at zero. Weights must be
// non-negative. The graph is meant to be built once and then only read; a Router
// keeps no state between queries and may be shared by concurrent callers.
package graph
