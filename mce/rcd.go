// This file implements recursive core decomposition — the strategy for
// dense candidate sets, which strips low-degree vertices until the
// remainder is a clique.
package mce

import (
	"math"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/ordset"
)

// rcdSearch iteratively peels the vertex with minimum restricted degree
// out of P. Each peeled vertex u first gets its own recursive branch
// (R+u with neighbor-restricted P/X), then moves to the local X. The loop
// terminates when P becomes a clique (report R∪P if no x ∈ X completes
// it) or empties out.
//
// Same ownership contract as pivotSearch: p and x are owned by this call;
// children receive fresh intersections.
func (r *runner) rcdSearch(clique, p, x []core.InstanceID) {
	// Terminal: nothing left to extend with and nothing blocks maximality.
	if len(p) == 0 && len(x) == 0 {
		r.res.report(r.arena, clique)

		return
	}

	for {
		// 1) One pass over P: is it already a clique, and which vertex has
		//    the minimum restricted degree (the most non-neighbors inside P)?
		isClique := true
		minDeg := math.MaxInt
		var worst core.InstanceID
		full := len(p) - 1
		for _, u := range p {
			deg := ordset.IntersectionSize(p, r.adj[u])
			if deg < full {
				isClique = false
			}
			if deg < minDeg {
				minDeg = deg
				worst = u
			}
		}

		// 2) Remaining clique: R∪P is maximal iff no excluded vertex is
		//    adjacent to all of P (|P ∩ N(x)| == |P| would complete it —
		//    note this also rejects the vacuous P = ∅ with X non-empty).
		if isClique {
			maximal := true
			for _, ex := range x {
				if ordset.IntersectionSize(p, r.adj[ex]) == len(p) {
					maximal = false

					break
				}
			}
			if maximal {
				whole := make([]core.InstanceID, 0, len(clique)+len(p))
				whole = append(whole, clique...)
				whole = append(whole, p...)
				r.res.report(r.arena, whole)
			}

			return
		}

		// 3) Not a clique yet: branch into R+worst with restricted P/X…
		nbs := r.adj[worst]
		next := make([]core.InstanceID, len(clique), len(clique)+1)
		copy(next, clique)
		r.rcdSearch(append(next, worst), ordset.Intersect(p, nbs), ordset.Intersect(x, nbs))

		// 4) …then strip worst from the local P into the local X and keep
		//    decomposing what is left.
		p = ordset.Remove(p, worst)
		x = ordset.Insert(x, worst)
		if len(p) == 0 {
			return // only excluded vertices remain; every extension was covered
		}
	}
}
