// This file implements Bron–Kerbosch search with pivot selection — the
// general-purpose strategy, effective on sparse candidate sets.
package mce

import (
	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/ordset"
)

// pivotSearch recursively extends the clique R with candidates from P,
// using X for the maximality check.
//
// Invariants on entry: P and X are ascending, disjoint; every vertex of P
// and of X is adjacent to every vertex of R. p and x are owned by this
// call (the caller passes freshly built slices and never reads them back),
// so sibling iterations may mutate them in place; children always receive
// newly allocated intersections.
//
// Terminal states: P and X both empty → R is maximal, report it;
// P empty with X non-empty → some earlier vertex extends R, prune.
func (r *runner) pivotSearch(clique, p, x []core.InstanceID) {
	// 1) Terminal checks.
	if len(p) == 0 {
		if len(x) == 0 {
			r.res.report(r.arena, clique)
		}

		return
	}

	// 2) Choose the pivot u ∈ P ∪ X maximizing |P ∩ N(u)|. Ties keep the
	//    first maximum in the P-then-X scan; the choice never affects which
	//    cliques are found, only how much branching survives step 3.
	var pivot core.InstanceID
	best := -1
	for _, u := range p {
		if n := ordset.IntersectionSize(p, r.adj[u]); n > best {
			best, pivot = n, u
		}
	}
	for _, u := range x {
		if n := ordset.IntersectionSize(p, r.adj[u]); n > best {
			best, pivot = n, u
		}
	}

	// 3) Branch only on P \ N(pivot): every maximal clique missing all of
	//    them would be extendable by the pivot itself.
	candidates := ordset.Difference(p, r.adj[pivot])

	// 4) For each candidate v (ascending): recurse with R+v and the
	//    neighbor-restricted P/X, then move v from the local P to the local
	//    X so later siblings treat it as already explored.
	for _, v := range candidates {
		nbs := r.adj[v]
		next := make([]core.InstanceID, len(clique), len(clique)+1)
		copy(next, clique)
		r.pivotSearch(append(next, v), ordset.Intersect(p, nbs), ordset.Intersect(x, nbs))

		p = ordset.Remove(p, v)
		x = ordset.Insert(x, v)
	}
}
