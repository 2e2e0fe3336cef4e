// This file classifies a candidate set structurally (kernel vs shell) and
// implements the hybrid dispatch rule.
package mce

import (
	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/ordset"
)

// analyzeStructure splits the candidate set P into its kernel (vertices
// adjacent to every other candidate, i.e. restricted degree == |P|−1) and
// its shell (the rest). The pair (kernel, shell) measures how clique-like
// P already is. Complexity: O(Σ_{u∈P} (|P|+|N(u)|)).
func analyzeStructure(p []core.InstanceID, adj [][]core.InstanceID) (kernel, shell int) {
	full := len(p) - 1
	for _, u := range p {
		if ordset.IntersectionSize(p, adj[u]) == full {
			kernel++
		} else {
			shell++
		}
	}

	return kernel, shell
}

// preferRCD applies the density rule s ≥ 2.8·k − 11 (s = kernel size,
// k = shell size): dense candidate sets converge quickly under shell
// stripping, sparse ones are better served by pivoting. With k == 0 the
// rule always holds, routing already-clique candidate sets to the cheaper
// decomposition path. The rule affects running time only, never the
// enumerated clique set.
func preferRCD(kernel, shell int) bool {
	return float64(kernel) >= 2.8*float64(shell)-11.0
}
