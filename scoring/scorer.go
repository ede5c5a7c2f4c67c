package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Scores holds every intermediate vector clique_scoring.py's get_scores
// returns, not just the final reward — the original exposes Rel, Pr, and
// RawOptimality for debugging, and the distilled spec only asks for the
// normalized ones plus Reward; keeping all six (spec PART D item 2) costs
// nothing and matches cmd/cliquescore's output.
type Scores struct {
	Rel           []float64 `json:"rel"`
	Pr            []float64 `json:"pr"`
	RawOptimality []float64 `json:"raw_optimality"`
	Optimality    []float64 `json:"optimality"`
	Diversity     []float64 `json:"diversity"`
	Reward        []float64 `json:"reward"`
}

// Score computes the reward vector for a list of responses against a
// reference graph and difficulty level (spec §4.7).
func Score(graph *LambdaGraph, difficulty float64, responses [][]int) Scores {
	k := len(responses)
	if k == 0 {
		return Scores{}
	}

	valid := make([]bool, k)
	sizes := make([]int, k)
	maxSize := 0
	for i, r := range responses {
		valid[i] = IsValidMaximumClique(r, graph)
		if valid[i] {
			sizes[i] = len(r)
		}
		if sizes[i] > maxSize {
			maxSize = sizes[i]
		}
	}

	rel := make([]float64, k)
	pr := make([]float64, k)
	rawOpt := make([]float64, k)
	optimality := make([]float64, k)

	if maxSize > 0 {
		for i := range rel {
			rel[i] = float64(sizes[i]) / float64(maxSize)
		}
		for i := range pr {
			strictlyBetter := 0
			for j := range sizes {
				if sizes[j] > sizes[i] {
					strictlyBetter++
				}
			}
			pr[i] = float64(strictlyBetter) / float64(k)
		}
		maxRaw := 0.0
		for i := range rawOpt {
			if valid[i] && rel[i] > 0 {
				rawOpt[i] = math.Exp(-pr[i] / rel[i])
			}
			if rawOpt[i] > maxRaw {
				maxRaw = rawOpt[i]
			}
		}
		if maxRaw > 0 {
			for i := range optimality {
				optimality[i] = rawOpt[i] / maxRaw
			}
		}
	}

	diversity := computeDiversity(valid, responses)

	reward := make([]float64, k)
	for i := range reward {
		reward[i] = optimality[i]*(1+difficulty) + diversity[i]
	}

	return Scores{
		Rel:           rel,
		Pr:            pr,
		RawOptimality: rawOpt,
		Optimality:    optimality,
		Diversity:     diversity,
		Reward:        reward,
	}
}

// computeDiversity implements delta_i = valid_i / count(canonical_i),
// normalized by its own max (spec §4.7 "Diversity").
func computeDiversity(valid []bool, responses [][]int) []float64 {
	k := len(responses)
	canon := make([]string, k)
	counts := make(map[string]int, k)
	for i, r := range responses {
		canon[i] = canonicalKey(r)
		counts[canon[i]]++
	}

	delta := make([]float64, k)
	maxDelta := 0.0
	for i := range delta {
		if valid[i] {
			delta[i] = 1.0 / float64(counts[canon[i]])
		}
		if delta[i] > maxDelta {
			maxDelta = delta[i]
		}
	}
	if maxDelta == 0 {
		return delta
	}
	out := make([]float64, k)
	for i := range out {
		out[i] = delta[i] / maxDelta
	}
	return out
}

func canonicalKey(nodes []int) string {
	sorted := append([]int(nil), nodes...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
