package solver

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

func buildAdj(n int, edges [][2]int) []bitset.Set {
	adj := make([]bitset.Set, n)
	for i := range adj {
		adj[i] = bitset.New(n)
	}
	for _, e := range edges {
		adj[e[0]].Set(e[1])
		adj[e[1]].Set(e[0])
	}
	return adj
}

func cliqueEdges(nodes []int) [][2]int {
	var es [][2]int
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			es = append(es, [2]int{nodes[i], nodes[j]})
		}
	}
	return es
}

func isClique(adj []bitset.Set, members []int) bool {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !adj[members[i]].Test(members[j]) {
				return false
			}
		}
	}
	return true
}

func TestMaxSizeScenario1(t *testing.T) {
	adj := buildAdj(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	s := New(adj, 4)
	out := s.MaxSize(time.Second, 0)
	if !out.Complete || out.Size != 3 {
		t.Fatalf("got size=%d complete=%v, want size=3 complete=true", out.Size, out.Complete)
	}
	if got := out.Witness.Slice(); !equalInts(got, []int{0, 1, 2}) {
		t.Fatalf("witness = %v, want [0 1 2]", got)
	}
}

func TestMaxSizeScenario2TwoDisjointTriangles(t *testing.T) {
	adj := buildAdj(6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	s := New(adj, 6)
	out := s.MaxSize(time.Second, 0)
	if !out.Complete || out.Size != 3 {
		t.Fatalf("got size=%d complete=%v, want size=3", out.Size, out.Complete)
	}
}

func TestMaxSizeScenario3(t *testing.T) {
	edges := append(cliqueEdges([]int{0, 1, 2, 3}), [2]int{3, 4})
	adj := buildAdj(5, edges)
	s := New(adj, 5)
	out := s.MaxSize(time.Second, 0)
	if !out.Complete || out.Size != 4 {
		t.Fatalf("got size=%d complete=%v, want size=4", out.Size, out.Complete)
	}
	if got := out.Witness.Slice(); !equalInts(got, []int{0, 1, 2, 3}) {
		t.Fatalf("witness = %v, want [0 1 2 3]", got)
	}
}

func TestMaxSizeCompleteGraph(t *testing.T) {
	n := 8
	adj := buildAdj(n, cliqueEdges(rangeSlice(n)))
	s := New(adj, n)
	out := s.MaxSize(time.Second, 0)
	if out.Size != n {
		t.Fatalf("omega = %d, want %d for K_n", out.Size, n)
	}
}

func TestMaxSizeEmptyGraphOmegaOne(t *testing.T) {
	adj := buildAdj(5, nil)
	s := New(adj, 5)
	out := s.MaxSize(time.Second, 0)
	if out.Size != 1 {
		t.Fatalf("omega = %d, want 1 for edgeless graph", out.Size)
	}
}

func TestMaxSizeZeroVertices(t *testing.T) {
	s := New(nil, 0)
	out := s.MaxSize(time.Second, 0)
	if out.Size != 0 || !out.Complete {
		t.Fatalf("n=0 should yield size 0, complete true; got %+v", out)
	}
}

func TestEnumerateFindsAllMaxCliques(t *testing.T) {
	adj := buildAdj(6, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}})
	s := New(adj, 6)
	out := s.Enumerate(time.Second, 3, nil)
	if !out.Complete {
		t.Fatalf("enumeration should complete")
	}
	if len(out.Cliques) != 2 {
		t.Fatalf("expected 2 maximum cliques, got %d", len(out.Cliques))
	}
	seen := map[string]bool{}
	for _, c := range out.Cliques {
		key := ""
		for _, v := range c.Slice() {
			key += string(rune('a' + v))
		}
		seen[key] = true
		if c.PopCount() != 3 {
			t.Fatalf("clique %v has size %d, want 3", c.Slice(), c.PopCount())
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 distinct cliques, got %d", len(seen))
	}
}

func TestEnumerateCliquesAreValid(t *testing.T) {
	adj := buildAdj(7, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {4, 5}, {5, 6},
	})
	s := New(adj, 7)
	maxOut := s.MaxSize(time.Second, 0)
	enumOut := s.Enumerate(time.Second, maxOut.Size, nil)
	if !enumOut.Complete {
		t.Fatalf("enumeration should complete")
	}
	for _, c := range enumOut.Cliques {
		members := c.Slice()
		if len(members) != maxOut.Size {
			t.Fatalf("clique %v has wrong size", members)
		}
		if !isClique(adj, members) {
			t.Fatalf("clique %v is not actually a clique", members)
		}
	}
}

func TestEnumerateCapReachedIsIncomplete(t *testing.T) {
	// A graph with many disjoint triangles: plenty of size-3 cliques.
	var edges [][2]int
	for i := 0; i < 5; i++ {
		b := i * 3
		edges = append(edges, [2]int{b, b + 1}, [2]int{b + 1, b + 2}, [2]int{b, b + 2})
	}
	adj := buildAdj(15, edges)
	s := New(adj, 15)
	cap := 2
	out := s.Enumerate(time.Second, 3, &cap)
	if out.Complete {
		t.Fatalf("expected complete=false when cap reached")
	}
	if !out.CapReached {
		t.Fatalf("expected CapReached=true")
	}
	if len(out.Cliques) < cap {
		t.Fatalf("expected at least %d cliques before stopping, got %d", cap, len(out.Cliques))
	}
}

func TestMaxSizeRandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := 10 + rng.Intn(10)
		var edges [][2]int
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.5 {
					edges = append(edges, [2]int{u, v})
				}
			}
		}
		adj := buildAdj(n, edges)
		s := New(adj, n)
		out := s.MaxSize(5*time.Second, 0)
		want := bruteForceOmega(adj, n)
		if !out.Complete {
			t.Fatalf("trial %d: search did not complete", trial)
		}
		if out.Size != want {
			t.Fatalf("trial %d: omega=%d, brute force=%d (n=%d edges=%v)", trial, out.Size, want, n, edges)
		}
	}
}

func TestMaxSizeDeterministicAcrossRuns(t *testing.T) {
	adj := buildAdj(10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {4, 5}, {5, 6}, {6, 4}, {7, 8}, {8, 9},
	})
	first := New(adj, 10).MaxSize(time.Second, 0)
	second := New(adj, 10).MaxSize(time.Second, 0)
	if first.Size != second.Size {
		t.Fatalf("non-deterministic omega: %d vs %d", first.Size, second.Size)
	}
	if !equalInts(first.Witness.Slice(), second.Witness.Slice()) {
		t.Fatalf("non-deterministic witness: %v vs %v", first.Witness.Slice(), second.Witness.Slice())
	}
}

func rangeSlice(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
