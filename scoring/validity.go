package scoring

import "github.com/soniakeys/bits"

// IsValidMaximumClique reports whether nodes is a maximum-clique
// candidate relative to g: non-empty, duplicate- and range-free, a
// clique (every pair adjacent), and maximal (no vertex outside nodes is
// adjacent to every member — spec §4.7 step 5).
//
// Membership testing uses a github.com/soniakeys/bits bitmap, the same
// concern the teacher package uses it for throughout undir_cg.go, rather
// than internal/bitset: this is a once-per-response check, not the
// recursion hot path internal/bitset is built for.
func IsValidMaximumClique(nodes []int, g *LambdaGraph) bool {
	if len(nodes) == 0 {
		return false
	}

	inSet := bits.New(g.NumberOfNodes)
	for _, v := range nodes {
		if v < 0 || v >= g.NumberOfNodes {
			return false
		}
		if inSet.Bit(v) == 1 {
			return false // duplicate vertex
		}
		inSet.SetBit(v, 1)
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}

	for candidate := 0; candidate < g.NumberOfNodes; candidate++ {
		if inSet.Bit(candidate) == 1 {
			continue
		}
		extendable := true
		for _, v := range nodes {
			if !g.HasEdge(candidate, v) {
				extendable = false
				break
			}
		}
		if extendable {
			return false // clique is not maximum: candidate extends it
		}
	}
	return true
}
