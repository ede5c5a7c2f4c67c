package solver

import (
	"time"

	"github.com/cliqueai-net/cliqueai/coloring"
	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// EnumerateOutcome is the result of the enumeration phase.
type EnumerateOutcome struct {
	Cliques    []bitset.Set
	Complete   bool
	Expanded   int
	CapReached bool // true iff stopped by Cap rather than the deadline
}

// Enumerate finds every clique of size exactly target within budget. If
// cap is non-nil, the search stops once len(Cliques) reaches *cap; that
// stop is reported as Complete == false with CapReached == true — the
// same externally-visible "not complete" signal the deadline uses (spec
// §5: "the cap case is recognizable because omega > 0 and a non-empty
// max_cliques was returned"), channeled through the same deadline latch
// so both conditions share one abort path.
func (s *Solver) Enumerate(budget time.Duration, target int, cap *int) EnumerateOutcome {
	dl := newDeadline(budget)
	expanded := 0
	capReached := false
	var out []bitset.Set

	if s.n > 0 && target > 0 {
		sc := newScratch(s.n)
		p0 := bitset.New(s.n)
		p0.SetAll()
		r0 := bitset.New(s.n)

		atCap := func() bool {
			return cap != nil && len(out) >= *cap
		}

		var expand func(depth, size int, r, p bitset.Set)
		expand = func(depth, size int, r, p bitset.Set) {
			if dl.check() {
				return
			}
			if p.IsEmpty() {
				if size == target {
					out = append(out, r.Clone())
					if atCap() {
						capReached = true
						dl.aborted = true
					}
				}
				return
			}
			order, colors := coloring.Sort(p, s.adj)
			pLocal := p.Clone()
			for i := len(order) - 1; i >= 0; i-- {
				if size+colors[i] < target {
					break
				}
				v := order[i]
				if !pLocal.Test(v) {
					continue
				}
				expanded++
				r2 := sc.r[depth+1]
				r2.CopyFrom(r)
				r2.Set(v)
				p2 := sc.p[depth+1]
				p2.And(pLocal, s.adj[v])
				if p2.IsEmpty() {
					if size+1 == target {
						out = append(out, r2.Clone())
						if atCap() {
							capReached = true
							dl.aborted = true
						}
					}
				} else {
					expand(depth+1, size+1, r2, p2)
				}
				if dl.aborted {
					return
				}
				pLocal.Clear(v)
			}
		}
		expand(0, 0, r0, p0)
	}

	return EnumerateOutcome{
		Cliques:    out,
		Complete:   !dl.aborted,
		Expanded:   expanded,
		CapReached: capReached,
	}
}
