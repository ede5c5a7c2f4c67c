// Package coloring implements ColorSort: the greedy vertex coloring used
// by package solver to bound branch-and-bound search.
//
// The shape — repeatedly peel an independent set by scanning the lowest
// set bit of a working mask — follows the bit-iteration idiom the teacher
// package uses throughout undir_cg.go's BronKerbosch family (IterateOnes
// starting from the lowest bit), generalized from soniakeys/bits.Bits's
// per-bit API to internal/bitset.Set so AND/ANDNOT stay bulk word
// operations, and specialized from "enumerate cliques" to "assign color
// classes." The coloring bound itself follows the greedy first-fit
// strategy gonum-gonum/graph/coloring/coloring.go documents (a simpler
// relative of that package's Dsatur heuristic).
package coloring

import (
	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// Sort greedily colors every vertex in the candidate set P using the
// adjacency in adj, and returns two parallel slices covering exactly the
// vertices of P: order (vertices, lowest-set-bit-first within each color
// class) and colors (1-based color of each entry in order).
//
// Invariant: colors is nondecreasing along order, and colors[i] is an
// upper bound on the size of any clique in P that includes only vertices
// at positions <= i in order — this is what lets the solver's
// branch-and-bound, which walks order from the end and drops each explored
// vertex, prune on "size + colors[i] <= best".
func Sort(p bitset.Set, adj []bitset.Set) (order []int, colors []int) {
	n := p.Len()
	remaining := p.Clone()
	order = make([]int, 0, remaining.PopCount())
	colors = make([]int, 0, cap(order))

	color := 0
	classCandidates := bitset.New(n)
	for !remaining.IsEmpty() {
		color++
		classCandidates.CopyFrom(remaining)
		for !classCandidates.IsEmpty() {
			v := classCandidates.ClearLowest()
			order = append(order, v)
			colors = append(colors, color)
			remaining.Clear(v)
			classCandidates.AndNot(classCandidates, adj[v])
		}
	}
	return order, colors
}
