// Package mce enumerates every maximal clique of a spatial neighbor graph
// and aggregates the cliques into co-location signatures for the
// prevalence miner.
//
// Overview:
//
//   - Input is the neighbor package's []core.NeighborSet: one (center,
//     neighbors) pair per instance that has at least one neighbor.
//   - The adjacency map is built once (symmetrized and deduplicated) and is
//     read-only for the rest of the run.
//   - Roots are visited in degeneracy order: a min-degree greedy
//     elimination order computed with a red-black tree keyed by
//     (remaining degree, instance), giving true decrease-key in O(log V).
//   - For root v at order position i, its neighbors split into the
//     candidate set P (later in the order) and the exclusion set X
//     (earlier). Recursing only into later neighbors visits every maximal
//     clique exactly once across all roots, with total work bounded by the
//     graph's degeneracy.
//   - Each root's candidate set is classified structurally: a candidate
//     adjacent to every other candidate belongs to the kernel (s of them),
//     the rest form the shell (k of them). When s ≥ 2.8·k − 11 the set is
//     dense enough for recursive core decomposition (iteratively stripping
//     the lowest-internal-degree vertex until the remainder is a clique);
//     otherwise the classic Bron–Kerbosch search with pivoting runs. The
//     switch is purely a performance heuristic — both strategies emit the
//     identical clique set, and WithStrategy can force either one.
//   - A completed clique R (|R| ≥ 2 only) is canonicalized into a
//     Signature — its members' feature types, sorted, duplicates kept —
//     and its members are merged into the Result's per-type instance sets.
//
// Complexity:
//
//   - Degeneracy ordering: O((V+E) log V).
//   - Enumeration: output-sensitive; worst case O(3^(V/3)) as for any
//     maximal-clique enumerator, but bounded in practice by the graph's
//     degeneracy d as O(d·V·3^(d/3)).
//   - All set steps are merge walks over ascending InstanceID slices
//     (package ordset).
//
// Errors (sentinel):
//
//   - ErrNilArena — Enumerate received a nil arena.
//   - core.ErrInstanceRange (wrapped) — a neighbor set references an
//     instance the arena does not contain.
//
// API reference:
//
//	func Enumerate(arena *core.Arena, sets []core.NeighborSet, opts ...Option) (*Result, error)
//	func ExtractCandidates(res *Result, opts ...Option) *CandidateQueue
//
// The input relation need not be symmetric: an edge u→v in any neighbor
// set places each endpoint in the other's adjacency list, so a one-sided
// upstream record cannot violate the P/X invariants the searches rely on.
package mce
