package solver

import (
	"time"

	"github.com/cliqueai-net/cliqueai/coloring"
	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// MaxSizeOutcome is the result of the max-size phase: the largest clique
// size found, one witness attaining it (empty if size is 0, or if the
// search never improved on the seeded lower bound), whether the
// search proved optimality before the deadline, and the number of
// branch-and-bound nodes expanded.
type MaxSizeOutcome struct {
	Size     int
	Witness  bitset.Set
	Complete bool
	Expanded int
}

// MaxSize finds omega, the size of the maximum clique, seeded with a
// lower bound initLB (e.g. from package greedylb), within budget.
//
// As noted in spec §9 (open question): when the search never improves on
// initLB it can return Size == initLB with an empty Witness — pruning may
// prevent ever recording the seed clique itself as R. The orchestrator is
// responsible for substituting the greedy seed bitmask in that case; this
// function preserves the fallback rather than papering over it here, so
// the condition stays observable to callers who bypass the orchestrator.
func (s *Solver) MaxSize(budget time.Duration, initLB int) MaxSizeOutcome {
	dl := newDeadline(budget)
	expanded := 0
	bestSize := initLB
	bestBits := bitset.New(s.n)

	if s.n > 0 {
		sc := newScratch(s.n)
		p0 := bitset.New(s.n)
		p0.SetAll()
		r0 := bitset.New(s.n)

		var expand func(depth, size int, r, p bitset.Set)
		expand = func(depth, size int, r, p bitset.Set) {
			if dl.check() {
				return
			}
			if p.IsEmpty() {
				if size > bestSize {
					bestSize = size
					bestBits.CopyFrom(r)
				}
				return
			}
			order, colors := coloring.Sort(p, s.adj)
			pLocal := p.Clone()
			for i := len(order) - 1; i >= 0; i-- {
				if size+colors[i] <= bestSize {
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
					if size+1 > bestSize {
						bestSize = size + 1
						bestBits.CopyFrom(r2)
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

	return MaxSizeOutcome{
		Size:     bestSize,
		Witness:  bestBits,
		Complete: !dl.aborted,
		Expanded: expanded,
	}
}
