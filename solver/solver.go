// Package solver implements the branch-and-bound Maximum-Clique search:
// a max-size phase that finds omega (the clique number) with one witness,
// and an enumeration phase that finds every clique of size exactly omega.
// Both phases share the same recursive shape and a single deadline clock.
//
// The recursion mirrors the teacher package's BronKerbosch1/2/3 family in
// undir_cg.go — R/P/X-style set bookkeeping, IterateOnes-shaped iteration
// over a candidate set, pruning by removing the chosen vertex from the
// local candidate set after it is explored — generalized from "enumerate
// all maximal cliques" to "prove maximum size, then enumerate only the
// maximum ones," with an added greedy-coloring bound (package coloring)
// and a wall-clock deadline neither BronKerbosch variant needs.
package solver

import (
	"time"

	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// Solver runs branch-and-bound search over a fixed adjacency. A Solver
// instance is not safe for concurrent use; construct one per solve call,
// matching the single-threaded, cooperative scheduling model of the
// engine (spec §5).
type Solver struct {
	adj []bitset.Set
	n   int
}

// New constructs a Solver over the given bitset adjacency.
func New(adj []bitset.Set, n int) *Solver {
	return &Solver{adj: adj, n: n}
}

// scratch holds the depth-indexed clique/candidate buffers shared by one
// top-level call to MaxSize or Enumerate. Recursion depth
// never exceeds n, and a given depth's buffers are only live between the
// moment a branch writes them and the moment its recursive call returns,
// so reusing one buffer pair per depth across the whole call avoids
// allocating a fresh bitset on every recursive frame (spec §9 "Bitset
// sizing").
type scratch struct {
	r []bitset.Set
	p []bitset.Set
}

func newScratch(n int) scratch {
	r := make([]bitset.Set, n+1)
	p := make([]bitset.Set, n+1)
	for i := range r {
		r[i] = bitset.New(n)
		p[i] = bitset.New(n)
	}
	return scratch{r: r, p: p}
}

// deadline is a monotonic wall-clock bound checked at every recursive
// entry, per spec §5. Once exceeded it latches aborted so every
// in-flight frame unwinds without loss of the best-so-far result — the
// "&mut Aborted flag" strategy spec §9 describes as an alternative to
// exception-based unwinding.
type deadline struct {
	at      time.Time
	aborted bool
}

func newDeadline(budget time.Duration) *deadline {
	return &deadline{at: time.Now().Add(budget)}
}

func (d *deadline) check() bool {
	if d.aborted {
		return true
	}
	if time.Now().After(d.at) {
		d.aborted = true
	}
	return d.aborted
}
