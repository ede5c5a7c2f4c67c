package orchestrator

import (
	"sort"

	"github.com/cliqueai-net/cliqueai/bitgraph"
	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

func sortedInts(xs []int) []int {
	sort.Ints(xs)
	return xs
}

// dedupeSorted maps each clique from the reordered graph's coordinates
// back to input coordinates, sorts its members, deduplicates identical
// cliques, and returns them in lexicographic order — the shape spec §4.6
// step 6 mandates for max_cliques.
func dedupeSorted(cliques []bitset.Set, perm bitgraph.VertexPermutation) [][]int {
	seen := make(map[string]bool, len(cliques))
	out := make([][]int, 0, len(cliques))
	for _, c := range cliques {
		members := sortedInts(perm.MapList(c.Slice()))
		key := keyOf(members)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, members)
	}
	sort.Slice(out, func(i, j int) bool { return lexLess(out[i], out[j]) })
	return out
}

func keyOf(members []int) string {
	b := make([]byte, 0, len(members)*5)
	for _, v := range members {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
