// Package scoring implements the response-scoring engine: validating that
// a returned vertex set is a maximum (not merely maximal) clique of a
// reference graph, and the optimality/diversity reward algebra that ranks
// competing responses.
//
// Scoring is pure and stateless given its inputs (spec §4.7 "State
// machine: none"), following the teacher's LabeledUndirected methods,
// which never retain state between calls either.
package scoring

import "sort"

// LambdaGraph is the reference graph scoring validates responses
// against. AdjacencyList[v] must be the sorted neighbor list of vertex v
// (spec §6, "Graph request" response shape).
type LambdaGraph struct {
	UUID          string  `json:"uuid"`
	Label         string  `json:"label"`
	NumberOfNodes int     `json:"number_of_nodes"`
	AdjacencyList [][]int `json:"adjacency_list"`
}

// HasEdge reports whether u and v are adjacent in g. AdjacencyList[u] is
// assumed sorted, so this runs in O(log deg(u)) — better than the O(deg)
// the spec requires (§3).
func (g *LambdaGraph) HasEdge(u, v int) bool {
	nbrs := g.AdjacencyList[u]
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v
}
