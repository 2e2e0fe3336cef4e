// This file implements feature counting, the dispersion statistic, and
// the rare-intensity kernel.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/colomine/core"
)

// epsilonSigma replaces a zero 2δ² denominator: with no dispersion every
// feature is equally rare and the kernel must not divide by zero.
const epsilonSigma = 1e-9

// CountFeatures tallies the number of instances per feature type.
// Complexity: O(V).
func CountFeatures(arena *core.Arena) map[core.FeatureType]int {
	counts := make(map[core.FeatureType]int)
	if arena == nil {
		return counts
	}
	for _, inst := range arena.Instances() {
		counts[inst.Type]++
	}

	return counts
}

// Dispersion returns δ for the given feature-frequency table: √2 times
// the sample standard deviation of the log frequencies (the closed form
// of the pairwise RMS gap). Zero or one feature yields 0.
// Complexity: O(m).
func Dispersion(counts map[core.FeatureType]int) float64 {
	if len(counts) < 2 {
		return 0
	}

	logs := make([]float64, 0, len(counts))
	for _, n := range counts {
		logs = append(logs, math.Log(float64(n)))
	}

	return math.Sqrt2 * stat.StdDev(logs, nil)
}

// RareIntensity scores each distinct feature type of sig against the
// rarest feature present: 1 for the rarest, gaussian decay of width delta
// for the rest. Features absent from counts (or with non-positive counts)
// are skipped; an empty result means sig had no countable feature.
// Complexity: O(|sig|).
func RareIntensity(sig []core.FeatureType, counts map[core.FeatureType]int, delta float64) map[core.FeatureType]float64 {
	out := make(map[core.FeatureType]float64, len(sig))
	if len(sig) == 0 {
		return out
	}

	// 1) Locate the rarest feature of the pattern.
	minCount := -1
	for _, f := range sig {
		if n, ok := counts[f]; ok && (minCount == -1 || n < minCount) {
			minCount = n
		}
	}
	if minCount <= 0 {
		return out
	}

	// 2) Gaussian kernel on the log-count distance from the rarest.
	sigmaSq2 := 2 * delta * delta
	if sigmaSq2 == 0 {
		sigmaSq2 = epsilonSigma
	}
	logMin := math.Log(float64(minCount))
	for _, f := range sig {
		n, ok := counts[f]
		if !ok || n <= 0 {
			continue
		}
		dLog := math.Log(float64(n)) - logMin
		out[f] = math.Exp(-(dLog * dLog) / sigmaSq2)
	}

	return out
}
