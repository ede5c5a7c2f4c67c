package bitgraph

import (
	"github.com/soniakeys/bits"

	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// ReorderByDegeneracy produces a new BitGraph whose vertex ordering is a
// degeneracy order, plus the permutation between old and new coordinates.
//
// Algorithm (spec-mandated, mirrors the bucket-queue shape of the teacher's
// LabeledUndirected.DegeneracyOrdering in undir_cg.go, generalized from
// per-node adjacency slices to bitset adjacency): repeatedly remove a
// vertex of current-minimum degree, appending it to Invperm; decrement the
// current degree of each of its still-remaining neighbors. Ties are broken
// by lowest vertex id.
//
// "Still-remaining" is tracked with a github.com/soniakeys/bits bitmap —
// the teacher's own dependency, used here for exactly the membership-test
// concern it is used for throughout the pack — which resolves the open
// question in spec §9: the degree decrement must skip neighbors that have
// already been removed, not decrement all of them.
func ReorderByDegeneracy(g *BitGraph) (*BitGraph, VertexPermutation) {
	n := g.N
	deg := g.Degrees()

	// buckets[d] holds the (unordered) set of remaining vertices of
	// current degree d.
	buckets := make([][]int, n+1)
	pos := make([]int, n) // index of vertex v within buckets[deg[v]]
	for v := 0; v < n; v++ {
		buckets[deg[v]] = append(buckets[deg[v]], v)
		pos[v] = len(buckets[deg[v]]) - 1
	}

	removed := bits.New(n)
	invperm := make([]int, 0, n)

	removeFromBucket := func(v, d int) {
		b := buckets[d]
		last := len(b) - 1
		pv := pos[v]
		moved := b[last]
		b[pv] = moved
		pos[moved] = pv
		buckets[d] = b[:last]
	}

	for step := 0; step < n; step++ {
		d := 0
		for d <= n && len(buckets[d]) == 0 {
			d++
		}
		// Ties broken by lowest vertex id: scan the bucket for the
		// minimum id rather than taking an arbitrary member.
		b := buckets[d]
		minV := b[0]
		for _, cand := range b[1:] {
			if cand < minV {
				minV = cand
			}
		}
		v := minV
		removeFromBucket(v, d)
		invperm = append(invperm, v)
		removed.SetBit(v, 1)

		g.Adj[v].Each(func(u int) {
			if removed.Bit(u) == 1 {
				return
			}
			du := deg[u]
			removeFromBucket(u, du)
			deg[u] = du - 1
			buckets[du-1] = append(buckets[du-1], u)
			pos[u] = len(buckets[du-1]) - 1
		})
	}

	perm := make([]int, n)
	for newPos, oldV := range invperm {
		perm[oldV] = newPos
	}

	g2 := &BitGraph{N: n, Adj: buildPermutedAdjacency(g, perm)}

	return g2, VertexPermutation{Perm: perm, Invperm: invperm}
}

// buildPermutedAdjacency translates every old vertex's neighbor bits
// through perm, producing the adjacency of the reordered graph.
func buildPermutedAdjacency(g *BitGraph, perm []int) []bitset.Set {
	n := g.N
	newAdj := make([]bitset.Set, n)
	for i := range newAdj {
		newAdj[i] = bitset.New(n)
	}
	for oldV := 0; oldV < n; oldV++ {
		newV := perm[oldV]
		g.Adj[oldV].Each(func(oldU int) {
			newAdj[newV].Set(perm[oldU])
		})
	}
	return newAdj
}
