// Package bitgraph implements the immutable bitset-adjacency graph
// representation the rest of the engine is built on: one word-packed
// bitmask per vertex (internal/bitset.Set), construction from an edge
// list, degree queries, and degeneracy reordering.
//
// The representation generalizes the teacher package's BronKerbosch/
// DegeneracyOrdering machinery (undir_cg.go), which works against
// per-node adjacency slices plus a github.com/soniakeys/bits membership
// bitmap, into a graph whose adjacency *is* the bitmap, as required by
// the branch-and-bound recursion in package solver.
package bitgraph

import (
	"errors"
	"fmt"

	"github.com/cliqueai-net/cliqueai/internal/bitset"
)

// Sentinel errors for BitGraph construction. Both are InputErrors: they
// fail fast and are never surfaced as a SolveResult field.
var (
	// ErrNegativeOrder indicates a negative vertex count was requested.
	ErrNegativeOrder = errors.New("bitgraph: vertex count must be non-negative")

	// ErrEdgeOutOfBounds indicates an edge endpoint outside [0,n).
	ErrEdgeOutOfBounds = errors.New("bitgraph: edge endpoint out of bounds")
)

// Edge is an undirected edge between two vertex ids.
type Edge struct {
	U, V int
}

// BitGraph is an immutable adjacency representation: Adj[u] has bit v set
// iff the edge {u,v} exists. Adj is symmetric and loop-free by
// construction.
type BitGraph struct {
	N   int
	Adj []bitset.Set
}

// FromEdges builds a BitGraph over n vertices from an edge list.
// Self-loops (u==v) are silently dropped. Parallel edges are idempotent.
// An endpoint outside [0,n) is an ErrEdgeOutOfBounds.
func FromEdges(n int, edges []Edge) (*BitGraph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	adj := make([]bitset.Set, n)
	for i := range adj {
		adj[i] = bitset.New(n)
	}
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: (%d,%d) for n=%d", ErrEdgeOutOfBounds, e.U, e.V, n)
		}
		adj[e.U].Set(e.V)
		adj[e.V].Set(e.U)
	}
	return &BitGraph{N: n, Adj: adj}, nil
}

// Degree returns the number of neighbors of vertex v.
func (g *BitGraph) Degree(v int) int {
	return g.Adj[v].PopCount()
}

// Degrees returns the degree of every vertex, indexed by vertex id.
func (g *BitGraph) Degrees() []int {
	d := make([]int, g.N)
	for v := range d {
		d[v] = g.Adj[v].PopCount()
	}
	return d
}

// FullMask returns a fresh bitset with all N vertex bits set — the
// initial candidate set P for a branch-and-bound search over g.
func (g *BitGraph) FullMask() bitset.Set {
	s := bitset.New(g.N)
	s.SetAll()
	return s
}
