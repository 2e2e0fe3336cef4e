// Package stats computes the frequency statistics the prevalence miner
// weighs candidates with: per-feature instance counts, the dispersion δ of
// the feature-frequency distribution, and the rare-intensity kernel.
//
// Dispersion is the root-mean-square of pairwise gaps between the natural
// logs of the feature frequencies,
//
//	δ = √( 2/(m(m−1)) · Σ_{i<j} (ln Nⱼ − ln Nᵢ)² ),
//
// which reduces in closed form to √2 times the sample standard deviation
// of the log frequencies — computed here with gonum's stat.StdDev instead
// of the O(m²) double loop.
//
// Rare intensity scores each feature of a candidate pattern by how close
// its frequency is (in log space) to the pattern's rarest feature:
//
//	RI(f) = exp( −(ln N(f) − ln N(f_min))² / 2δ² ),
//
// so the rarest feature gets 1 and common features decay on a gaussian
// with width δ.
package stats
