// Package colomine mines spatial co-location patterns: sets of feature
// types whose instances repeatedly appear near one another.
//
// 🚀 What is colomine?
//
//	A pure-Go pipeline that takes a flat CSV of spatial instances and
//	answers "which kinds of things cluster together?":
//		• core/     — instance arena with index-based identity
//		• dataset/  — CSV loader (feature,x,y)
//		• neighbor/ — grid-bucketed neighbor graph under a distance threshold
//		• ordset/   — the sorted-set algebra everything above runs on
//		• mce/      — hybrid maximal-clique enumeration (degeneracy ordering,
//		  Bron–Kerbosch pivoting, recursive core decomposition, a density
//		  switch between the two) aggregating cliques into co-location
//		  signatures
//		• stats/    — feature frequencies, dispersion δ, rare-intensity kernel
//		• miner/    — weighted participation-index filtering with downward
//		  candidate expansion
//		• cmd/colomine — the end-to-end CLI with a plain-text report
//
// ✨ Why colomine?
//
//   - Deterministic – instance identity is an arena index, so every run of
//     the same input produces identical output
//   - Exact – every maximal clique of the neighbor graph is enumerated;
//     no sampling, no top-k cutoffs
//   - Hybrid – each search root picks the cheaper of two strategies from
//     the structure of its candidate set, never changing the result
//
// Quick ASCII example:
//
//	pharmacy──bus_stop        The triangle is one maximal clique:
//	    │      ╱               the pattern {bus_stop, kiosk, pharmacy}.
//	    │    ╱                 The lone clinic two blocks away joins
//	  kiosk        clinic      nothing.
//
// Start with mce.Enumerate for the engine alone, or cmd/colomine for the
// whole pipeline. Each package's doc.go carries the full contract.
package colomine
