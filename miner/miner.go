// This file implements weighted participation-index mining over the
// candidate queue.
package miner

import (
	"errors"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/mce"
	"github.com/katalvlaran/colomine/stats"
)

// Sentinel errors for the prevalence miner.
var (
	// ErrNilResult indicates a nil *mce.Result was passed to MinePrevalent.
	ErrNilResult = errors.New("miner: result map is nil")

	// ErrBadMinPrev indicates a prevalence threshold outside [0, 1].
	ErrBadMinPrev = errors.New("miner: minPrev must be in [0, 1]")
)

// MinePrevalent drains the candidate queue and returns every prevalent
// co-location pattern, in dequeue order.
//
// queue may be nil, in which case the default candidate queue is
// extracted from res. counts is the per-feature instance tally of the
// full dataset (stats.CountFeatures), delta the dispersion statistic, and
// minPrev the prevalence threshold in [0, 1].
//
// A candidate scoring below minPrev expands into its (size−1)-sub-patterns
// before being discarded; every signature is evaluated at most once.
func MinePrevalent(
	queue *mce.CandidateQueue,
	res *mce.Result,
	counts map[core.FeatureType]int,
	delta float64,
	minPrev float64,
) ([]mce.Signature, error) {
	// 1) Validate inputs.
	if res == nil {
		return nil, ErrNilResult
	}
	if minPrev < 0 || minPrev > 1 {
		return nil, ErrBadMinPrev
	}
	if queue == nil {
		queue = mce.ExtractCandidates(res)
	}

	// 2) Drain the queue, expanding failed candidates downward.
	seen := make(map[string]bool)
	var prevalent []mce.Signature
	for !queue.Empty() {
		sig, _ := queue.Pop()
		key := sig.Key()
		if len(sig) < 2 || seen[key] {
			continue
		}
		seen[key] = true

		if weightedParticipationIndex(sig, res, counts, delta) >= minPrev {
			prevalent = append(prevalent, sig)

			continue
		}

		// 3) Failed: enqueue each distinct (size−1)-sub-pattern. Skipping
		//    equal adjacent elements avoids pushing the same subset twice
		//    when the signature carries duplicate feature types.
		for i := range sig {
			if i > 0 && sig[i] == sig[i-1] {
				continue
			}
			sub := make(mce.Signature, 0, len(sig)-1)
			sub = append(sub, sig[:i]...)
			sub = append(sub, sig[i+1:]...)
			if len(sub) >= 2 && !seen[sub.Key()] {
				queue.Push(sub)
			}
		}
	}

	return prevalent, nil
}

// weightedParticipationIndex scores sig: the minimum over its distinct
// feature types of (participating fraction of f) · RI(f). A feature with
// no countable instances scores 0, sinking the whole candidate.
func weightedParticipationIndex(
	sig mce.Signature,
	res *mce.Result,
	counts map[core.FeatureType]int,
	delta float64,
) float64 {
	part := participatingInstances(sig, res)
	ri := stats.RareIntensity(sig, counts, delta)

	index := 1.0
	prevType := core.FeatureType("")
	for i, f := range sig {
		if i > 0 && f == prevType {
			continue
		}
		prevType = f

		total := counts[f]
		if total == 0 {
			return 0
		}
		score := float64(len(part[f])) / float64(total) * ri[f]
		if score < index {
			index = score
		}
	}

	return index
}

// participatingInstances unions, per distinct feature type of sig, the
// instances of every maximal-clique entry whose signature contains sig.
func participatingInstances(sig mce.Signature, res *mce.Result) map[core.FeatureType]map[core.InstanceID]struct{} {
	part := make(map[core.FeatureType]map[core.InstanceID]struct{}, len(sig))
	for _, f := range sig {
		if part[f] == nil {
			part[f] = make(map[core.InstanceID]struct{})
		}
	}

	for _, s := range res.Signatures() {
		if !s.ContainsAll(sig) {
			continue
		}
		entry, ok := res.Entry(s)
		if !ok {
			continue
		}
		for f, set := range part {
			for id := range entry.Members[f] {
				set[id] = struct{}{}
			}
		}
	}

	return part
}
