// Package orchestrator wires BitGraph, GreedyLB, and Solver together into
// one solve call: degeneracy reordering, the two-phase time split, witness
// fallback substitution, and unpermuting results back to the caller's
// input vertex coordinates.
package orchestrator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/cliqueai-net/cliqueai/bitgraph"
	"github.com/cliqueai-net/cliqueai/config"
	"github.com/cliqueai-net/cliqueai/greedylb"
	"github.com/cliqueai-net/cliqueai/solver"
)

// Result is the outcome of one Solve call. Field names and JSON tags
// match the wire shape in spec §6.
type Result struct {
	Omega         int     `json:"omega"`
	Witness       []int   `json:"witness"`
	MaxCliques    [][]int `json:"max_cliques"`
	Complete      bool    `json:"complete"`
	RuntimeSec    float64 `json:"runtime_sec"`
	ExpandedNodes int     `json:"expanded_nodes"`
	Reordered     bool    `json:"reordered"`
}

// Solve computes the maximum clique number, a witness, and every maximum
// clique of an undirected graph given as an edge list, under cfg's time
// budget. log receives one debug event per phase; pass zerolog.Nop() to
// disable logging entirely.
func Solve(n int, edges []bitgraph.Edge, cfg config.Config, log zerolog.Logger) (Result, error) {
	start := time.Now()

	if n <= 0 {
		return Result{
			Omega:      0,
			Witness:    []int{},
			MaxCliques: [][]int{{}},
			Complete:   true,
			RuntimeSec: time.Since(start).Seconds(),
		}, nil
	}

	g, err := bitgraph.FromEdges(n, edges)
	if err != nil {
		return Result{}, err
	}

	var (
		g2   = g
		perm = bitgraph.Identity(n)
	)
	if cfg.Reorder {
		g2, perm = bitgraph.ReorderByDegeneracy(g)
	}

	lbSize, lbMask := greedylb.Run(g2.Adj, g2.N, cfg.GreedyLBTrials)
	log.Debug().Int("lb_size", lbSize).Msg("greedylb seed computed")

	s := solver.New(g2.Adj, g2.N)
	phase1Budget := cfg.Phase1Budget()
	maxOut := s.MaxSize(phase1Budget, lbSize)
	log.Debug().
		Int("omega", maxOut.Size).
		Bool("complete", maxOut.Complete).
		Int("expanded", maxOut.Expanded).
		Msg("max-size phase finished")

	witnessBits := maxOut.Witness
	if lbSize > 0 && witnessBits.IsEmpty() {
		// spec §9 open question: preserve the greedy-seed fallback when
		// pruning prevented the search from ever recording the witness
		// that matches the seeded lower bound.
		witnessBits = lbMask
	}
	witnessAbs := sortedInts(perm.MapList(witnessBits.Slice()))

	elapsed := time.Since(start)
	remaining := cfg.TotalBudget() - elapsed

	maxCliquesAbs := [][]int{}
	complete2 := true
	expandedPhase2 := 0
	if remaining > 0 && maxOut.Size > 0 {
		enumOut := s.Enumerate(remaining, maxOut.Size, cfg.EnumCap)
		complete2 = enumOut.Complete
		expandedPhase2 = enumOut.Expanded
		log.Debug().
			Int("count", len(enumOut.Cliques)).
			Bool("complete", enumOut.Complete).
			Bool("cap_reached", enumOut.CapReached).
			Msg("enumeration phase finished")

		maxCliquesAbs = dedupeSorted(enumOut.Cliques, perm)
	}

	return Result{
		Omega:         maxOut.Size,
		Witness:       witnessAbs,
		MaxCliques:    maxCliquesAbs,
		Complete:      maxOut.Complete && complete2,
		RuntimeSec:    time.Since(start).Seconds(),
		ExpandedNodes: maxOut.Expanded + expandedPhase2,
		Reordered:     cfg.Reorder,
	}, nil
}
