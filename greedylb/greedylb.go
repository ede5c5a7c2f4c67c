// Package greedylb computes a greedy lower-bound clique used to seed the
// branch-and-bound search in package solver, following the same
// "grow from a high-degree seed" shape the teacher package uses for its
// BKPivotMaxDegree pivot strategy in undir_cg.go (pick the highest-degree
// candidate, here to start a clique rather than to prune one).
package greedylb

import (
	"sort"

	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// Run grows a clique from each of up to trials seed vertices (taken from
// the graph in descending-degree order, ties broken by ascending vertex
// id) and returns the size and bitmask of the largest clique found across
// all trials.
//
// From the current candidate set P = intersection of N(v) for v in the
// clique being grown, the vertex maximizing |adj[v] ∩ P| is added next,
// ties broken by lowest vertex id, until P is empty.
func Run(adj []bitset.Set, n int, trials int) (int, bitset.Set) {
	if n == 0 {
		return 0, bitset.New(0)
	}

	seeds := make([]int, n)
	for v := range seeds {
		seeds[v] = v
	}
	degree := func(v int) int { return adj[v].PopCount() }
	sort.SliceStable(seeds, func(i, j int) bool {
		return degree(seeds[i]) > degree(seeds[j])
	})
	if trials < n {
		seeds = seeds[:trials]
	}

	bestSize := 0
	best := bitset.New(n)

	for _, s := range seeds {
		clique := bitset.New(n)
		clique.Set(s)
		p := adj[s].Clone()
		size := 1
		scratch := bitset.New(n)
		for !p.IsEmpty() {
			bestV, bestScore := -1, -1
			p.Each(func(v int) {
				// p.Each visits ascending order, so a strict ">" keeps
				// the lowest-id vertex on a score tie.
				scratch.And(adj[v], p)
				if score := scratch.PopCount(); score > bestScore {
					bestScore, bestV = score, v
				}
			})
			clique.Set(bestV)
			size++
			p.And(p, adj[bestV])
		}
		if size > bestSize {
			bestSize = size
			best.CopyFrom(clique)
		}
	}
	return bestSize, best
}
