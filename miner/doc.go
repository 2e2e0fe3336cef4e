// Package miner filters the candidate co-location signatures produced by
// the clique engine down to the prevalent patterns.
//
// Overview:
//
//   - Candidates arrive on a priority queue (largest patterns first by
//     default) built from the engine's result map.
//   - Each candidate is scored with a weighted participation index: for
//     every distinct feature type f of the pattern, the fraction of f's
//     instances that participate in the pattern, weighted by the
//     rare-intensity of f (package stats); the pattern's score is the
//     minimum over its features. Rare features therefore count at full
//     weight while abundant ones are discounted.
//   - A pattern participates through every maximal clique whose signature
//     contains it, so a candidate's instance sets are the union over all
//     containing result-map entries.
//   - A candidate scoring at or above the minimum prevalence is reported;
//     one that falls short expands into its (size−1)-sub-patterns, which
//     re-enter the queue (deduplicated, size ≥ 2 only) — the standard
//     downward expansion of clique-hash miners.
//
// Errors (sentinel):
//
//	ErrNilResult  - MinePrevalent received a nil result map.
//	ErrBadMinPrev - the prevalence threshold is outside [0, 1].
package miner
