// Package miner_test validates prevalence mining end to end against the
// real engine output on small hand-built datasets.
package miner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/mce"
	"github.com/katalvlaran/colomine/miner"
	"github.com/katalvlaran/colomine/stats"
)

// buildScene assembles the reference scene used across the tests:
// a triangle A0–B1–C2 plus a detached pair A3–B4.
//
// Result map: [A,B,C] → {A:{0}, B:{1}, C:{2}} and [A,B] → {A:{3}, B:{4}}.
// Feature counts: A=2, B=2, C=1.
func buildScene(t *testing.T) (*core.Arena, *mce.Result, map[core.FeatureType]int, float64) {
	t.Helper()

	arena := core.NewArena(5)
	for _, ft := range []core.FeatureType{"A", "B", "C", "A", "B"} {
		_, err := arena.Add(ft, 0, 0)
		require.NoError(t, err)
	}
	sets := []core.NeighborSet{
		{Center: 0, Neighbors: []core.InstanceID{1, 2}},
		{Center: 1, Neighbors: []core.InstanceID{2}},
		{Center: 3, Neighbors: []core.InstanceID{4}},
	}
	res, err := mce.Enumerate(arena, sets)
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())

	counts := stats.CountFeatures(arena)
	delta := stats.Dispersion(counts)

	return arena, res, counts, delta
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestMinePrevalent_NilResult(t *testing.T) {
	_, err := miner.MinePrevalent(nil, nil, nil, 0, 0.5)
	require.ErrorIs(t, err, miner.ErrNilResult)
}

func TestMinePrevalent_BadMinPrev(t *testing.T) {
	_, res, counts, delta := buildScene(t)

	_, err := miner.MinePrevalent(nil, res, counts, delta, -0.1)
	require.ErrorIs(t, err, miner.ErrBadMinPrev)

	_, err = miner.MinePrevalent(nil, res, counts, delta, 1.1)
	require.ErrorIs(t, err, miner.ErrBadMinPrev)
}

func TestMinePrevalent_EmptyResult(t *testing.T) {
	arena := core.NewArena(0)
	res, err := mce.Enumerate(arena, nil)
	require.NoError(t, err)

	patterns, err := miner.MinePrevalent(nil, res, nil, 0, 0.5)
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

// ------------------------------------------------------------------------
// 2. Scoring and downward expansion.
// ------------------------------------------------------------------------

// With minPrev = 0, every queued candidate is prevalent and dequeue order
// (size-descending, then lexicographic) is preserved in the output.
func TestMinePrevalent_ZeroThresholdKeepsAll(t *testing.T) {
	_, res, counts, delta := buildScene(t)

	patterns, err := miner.MinePrevalent(nil, res, counts, delta, 0)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "{A, B, C}", patterns[0].String())
	assert.Equal(t, "{A, B}", patterns[1].String())
}

// The triangle pattern [A,B,C] participates with only half of A and B, so
// it fails a 0.5 threshold and expands; the pair pattern [A,B] has full
// participation (instances 0,3 of A and 1,4 of B) and survives. The
// expansions [A,C] and [B,C] inherit the weak A/B participation and fail.
func TestMinePrevalent_ExpansionFindsSubPattern(t *testing.T) {
	_, res, counts, delta := buildScene(t)

	patterns, err := miner.MinePrevalent(nil, res, counts, delta, 0.5)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "{A, B}", patterns[0].String())
}

// minPrev = 1 demands full, undiscounted participation from every feature.
func TestMinePrevalent_FullPrevalence(t *testing.T) {
	_, res, counts, delta := buildScene(t)

	patterns, err := miner.MinePrevalent(nil, res, counts, delta, 1)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "{A, B}", patterns[0].String())
}

// A caller-supplied queue is consumed as-is: seeding only the triangle
// candidate still reaches [A,B] through downward expansion.
func TestMinePrevalent_CallerQueue(t *testing.T) {
	_, res, counts, delta := buildScene(t)

	q := mce.NewCandidateQueue(mce.DefaultSignatureLess)
	q.Push(mce.Signature{"A", "B", "C"})

	patterns, err := miner.MinePrevalent(q, res, counts, delta, 0.5)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "{A, B}", patterns[0].String())
	assert.True(t, q.Empty(), "the queue must be fully drained")
}

// Duplicate feature types expand without pushing the same subset twice.
func TestMinePrevalent_DuplicateTypeExpansion(t *testing.T) {
	arena := core.NewArena(3)
	for _, ft := range []core.FeatureType{"X", "X", "Y"} {
		_, _ = arena.Add(ft, 0, 0)
	}
	// Triangle of all three: single maximal clique [X,X,Y].
	sets := []core.NeighborSet{
		{Center: 0, Neighbors: []core.InstanceID{1, 2}},
		{Center: 1, Neighbors: []core.InstanceID{2}},
	}
	res, err := mce.Enumerate(arena, sets)
	require.NoError(t, err)

	counts := stats.CountFeatures(arena)
	delta := stats.Dispersion(counts)

	// Full participation everywhere: X has both instances in the clique,
	// Y its only one. The rare-intensity discount on X decides the rest.
	patterns, err := miner.MinePrevalent(nil, res, counts, delta, 0)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "{X, X, Y}", patterns[0].String())
}
