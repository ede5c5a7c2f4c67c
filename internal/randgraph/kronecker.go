// Package randgraph generates random undirected test graphs for
// exercising the solver and orchestrator at scale: power-law degree
// distributions stress the coloring bound and recursion depth in ways a
// uniform Erdos-Renyi graph does not.
package randgraph

import (
	"math/big"
	"math/rand"
)

// Kronecker generates a Kronecker-like random simple undirected graph,
// styled after the Graph500 reference generator. The returned node count
// is <= 2^scale (near it for typical edgeFactor values), and
// edgeFactor*2^scale edges are attempted, with loops and parallel edges
// rejected. If r is nil, a new source seeded from scale and edgeFactor is
// used so callers get reproducible graphs without managing a generator.
//
// PlantClique can then wire a clique into the first size vertices of the
// result, so tests can assert a known lower bound
// on omega regardless of what the random portion of the graph contains.
func Kronecker(scale uint, edgeFactor float64, r *rand.Rand) (n int, edges [][2]int) {
	if r == nil {
		r = rand.New(rand.NewSource(int64(scale)*1000003 + int64(edgeFactor*1e6)))
	}
	N := 1 << scale
	M := int(edgeFactor*float64(N) + 0.5)
	a, b, c := 0.57, 0.19, 0.19
	ab := a + b
	cNorm := c / (1 - ab)
	aNorm := a / ab

	ij := make([][2]int, M)
	var bm big.Int
	var nNodes int
	for k := range ij {
		var i, j int
		for bit := 1; bit < N; bit <<= 1 {
			if r.Float64() > ab {
				i |= bit
				if r.Float64() > cNorm {
					j |= bit
				}
			} else if r.Float64() > aNorm {
				j |= bit
			}
		}
		if bm.Bit(i) == 0 {
			bm.SetBit(&bm, i, 1)
			nNodes++
		}
		if bm.Bit(j) == 0 {
			bm.SetBit(&bm, j, 1)
			nNodes++
		}
		perm := r.Intn(k + 1)
		ij[k] = ij[perm]
		ij[perm] = [2]int{i, j}
	}

	relabel := r.Perm(nNodes)
	px := 0
	lookup := make([]int, N)
	for i := range lookup {
		if bm.Bit(i) == 1 {
			lookup[i] = relabel[px]
			px++
		}
	}

	adjSeen := make([]map[int]bool, nNodes)
	for i := range adjSeen {
		adjSeen[i] = make(map[int]bool)
	}
	for _, e := range ij {
		if e[0] == e[1] {
			continue
		}
		ri, rj := lookup[e[0]], lookup[e[1]]
		if adjSeen[ri][rj] {
			continue
		}
		adjSeen[ri][rj] = true
		adjSeen[rj][ri] = true
		edges = append(edges, [2]int{ri, rj})
	}
	return nNodes, edges
}

// PlantClique adds every pair within the first size vertices of an
// n-vertex graph as an edge, guaranteeing omega(n, edges) >= size
// regardless of what edges already connect those vertices.
func PlantClique(n, size int, edges [][2]int) (int, [][2]int) {
	if size > n {
		size = n
	}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return n, edges
}
