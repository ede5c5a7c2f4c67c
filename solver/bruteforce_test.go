package solver

import (
	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// bruteForceOmega finds the true clique number by exhaustive subset
// search. Used only in tests, and only for small n (spec §8 bounds this
// at <= 40 vertices for the solver itself; brute force here stays well
// under that for tractability).
func bruteForceOmega(adj []bitset.Set, n int) int {
	best := 0
	if n == 0 {
		return 0
	}
	var nodes []int
	var rec func(start int, clique []int)
	rec = func(start int, clique []int) {
		if len(clique) > best {
			best = len(clique)
		}
		for v := start; v < n; v++ {
			ok := true
			for _, u := range clique {
				if !adj[u].Test(v) {
					ok = false
					break
				}
			}
			if ok {
				rec(v+1, append(clique, v))
			}
		}
	}
	rec(0, nodes)
	return best
}
