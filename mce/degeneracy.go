// This file computes the degeneracy ordering: a min-degree greedy
// elimination order over all instances that have at least one neighbor.
package mce

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/colomine/core"
)

// degKey keys the elimination tree by (remaining degree, instance).
// Tree order is degree-ascending, InstanceID-ascending within a degree, so
// Left() is always the minimum-degree vertex with a deterministic tie-break.
type degKey struct {
	deg int
	id  core.InstanceID
}

// degKeyComparator orders degKeys for the red-black tree.
func degKeyComparator(a, b interface{}) int {
	ka, kb := a.(degKey), b.(degKey)
	if ka.deg != kb.deg {
		return ka.deg - kb.deg
	}

	return int(ka.id) - int(kb.id)
}

// degeneracyOrder returns the elimination order of every vertex with a
// non-empty adjacency list: repeatedly extract the vertex of minimum
// remaining degree, then decrement (re-key) each still-present neighbor.
//
// The tree plays the role of a priority structure with true decrease-key:
// re-keying is a Remove of the stale (degree, id) pair plus a Put of the
// decremented one, both O(log V).
//
// Complexity: O((V+E) log V). Space: O(V).
func degeneracyOrder(adj [][]core.InstanceID) []core.InstanceID {
	// 1) Seed the tree and the degree table with initial degrees.
	tree := redblacktree.NewWith(degKeyComparator)
	degrees := make([]int, len(adj))
	var live int
	for id, nbs := range adj {
		if len(nbs) == 0 {
			continue // isolated instances never join a clique of size ≥ 2
		}
		degrees[id] = len(nbs)
		tree.Put(degKey{deg: len(nbs), id: core.InstanceID(id)}, nil)
		live++
	}

	// 2) Peel: extract-min, record, decrement neighbors.
	order := make([]core.InstanceID, 0, live)
	removed := make([]bool, len(adj))
	for !tree.Empty() {
		// 2a) The leftmost node is the minimum (degree, id) pair.
		min := tree.Left().Key.(degKey)
		tree.Remove(min)
		order = append(order, min.id)
		removed[min.id] = true

		// 2b) Decrease-key every still-present neighbor of the extracted vertex.
		for _, v := range adj[min.id] {
			if removed[v] {
				continue
			}
			old := degrees[v]
			tree.Remove(degKey{deg: old, id: v})
			degrees[v] = old - 1
			tree.Put(degKey{deg: old - 1, id: v}, nil)
		}
	}

	return order
}
