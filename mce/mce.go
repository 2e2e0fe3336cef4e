// This file holds the Enumerate entry point: input validation, adjacency
// construction, and the per-root loop over the degeneracy order.
package mce

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/colomine/core"
)

// Enumerate finds every maximal clique of size ≥ 2 in the neighbor graph
// described by sets and aggregates them into a Result keyed by co-location
// signature.
//
// The relation in sets may be asymmetric and may contain duplicates; the
// adjacency map is symmetrized and deduplicated before the search, and
// self-references are dropped. Instances absent from sets (or present
// with no neighbors) cannot appear in any reported clique.
//
// Options:
//
//   - WithStrategy: force StrategyPivot or StrategyRCD for every root
//     instead of the default hybrid density dispatch.
//
// Preconditions and validation (in order):
//  1. arena must be non-nil (ErrNilArena).
//  2. every instance referenced by sets must exist in arena
//     (wrapped core.ErrInstanceRange).
//
// An empty sets slice is not an error: it yields an empty Result.
//
// Complexity: O((V+E) log V) preprocessing plus output-sensitive search
// bounded by the graph degeneracy (see package doc).
func Enumerate(arena *core.Arena, sets []core.NeighborSet, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the arena.
	if arena == nil {
		return nil, ErrNilArena
	}

	// 3) Degenerate input: no neighbor relation, no cliques.
	res := newResult()
	if len(sets) == 0 {
		return res, nil
	}

	// 4) Build the symmetric adjacency map, indexed by InstanceID.
	adj, err := buildAdjacency(arena, sets)
	if err != nil {
		return nil, err
	}

	// 5) Compute the degeneracy order and the position of each vertex in it.
	order := degeneracyOrder(adj)
	orderIndex := make([]int, arena.Len())
	for i := range orderIndex {
		orderIndex[i] = -1
	}
	for i, v := range order {
		orderIndex[v] = i
	}

	// 6) Run the per-root search loop.
	r := &runner{arena: arena, adj: adj, res: res}
	for i, v := range order {
		// 6a) Partition N(v) by order position: later neighbors are
		//     candidates, earlier ones were already roots and go to X.
		nbs := adj[v]
		p := make([]core.InstanceID, 0, len(nbs))
		x := make([]core.InstanceID, 0, len(nbs))
		for _, u := range nbs {
			if orderIndex[u] > i {
				p = append(p, u)
			} else {
				x = append(x, u)
			}
		}
		// 6b) Re-sort defensively by identity; the set algebra's contract is
		//     ascending order, and the partition above must never be trusted
		//     to preserve it on its own.
		sort.Slice(p, func(a, b int) bool { return p[a] < p[b] })
		sort.Slice(x, func(a, b int) bool { return x[a] < x[b] })

		// 6c) Dispatch. Both searches yield the identical clique set; the
		//     density rule (or a forced strategy) only picks the cheaper one.
		clique := []core.InstanceID{v}
		switch cfg.Strategy {
		case StrategyPivot:
			r.pivotSearch(clique, p, x)
		case StrategyRCD:
			r.rcdSearch(clique, p, x)
		default:
			kernel, shell := analyzeStructure(p, adj)
			if preferRCD(kernel, shell) {
				r.rcdSearch(clique, p, x)
			} else {
				r.pivotSearch(clique, p, x)
			}
		}
	}

	return res, nil
}

// runner bundles the read-only search inputs with the shared result map so
// the recursive strategies do not thread four extra parameters.
type runner struct {
	arena *core.Arena         // instance store; read-only
	adj   [][]core.InstanceID // symmetric adjacency, ascending per row; read-only
	res   *Result             // shared aggregation map
}

// buildAdjacency turns the raw neighbor sets into a symmetric, ascending,
// deduplicated adjacency map. Every referenced instance is range-checked
// against the arena. Complexity: O(E log E) for the per-row sorts.
func buildAdjacency(arena *core.Arena, sets []core.NeighborSet) ([][]core.InstanceID, error) {
	adj := make([][]core.InstanceID, arena.Len())

	for _, ns := range sets {
		if _, err := arena.At(ns.Center); err != nil {
			return nil, fmt.Errorf("mce: neighbor set center: %w", err)
		}
		for _, nb := range ns.Neighbors {
			if _, err := arena.At(nb); err != nil {
				return nil, fmt.Errorf("mce: neighbor of %d: %w", ns.Center, err)
			}
			if nb == ns.Center {
				continue // self-reference carries no co-location information
			}
			adj[ns.Center] = append(adj[ns.Center], nb)
			adj[nb] = append(adj[nb], ns.Center)
		}
	}

	// Sort and deduplicate each row: the entire engine assumes ascending,
	// duplicate-free neighbor lists.
	for i, row := range adj {
		if len(row) == 0 {
			continue
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		dedup := row[:1]
		for _, v := range row[1:] {
			if v != dedup[len(dedup)-1] {
				dedup = append(dedup, v)
			}
		}
		adj[i] = dedup
	}

	return adj, nil
}
