// Package neighbor_test validates grid-bucketed neighbor search against a
// naive all-pairs reference.
package neighbor_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/neighbor"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestBuild_NilArena(t *testing.T) {
	_, err := neighbor.Build(nil, neighbor.WithDistance(1))
	require.ErrorIs(t, err, neighbor.ErrNilArena)
}

func TestBuild_MissingDistance(t *testing.T) {
	arena := core.NewArena(0)
	_, err := neighbor.Build(arena)
	require.ErrorIs(t, err, neighbor.ErrBadDistance)
}

func TestWithDistance_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { neighbor.WithDistance(0)(&neighbor.Options{}) })
	assert.Panics(t, func() { neighbor.WithDistance(-2)(&neighbor.Options{}) })
}

func TestBuild_EmptyArena(t *testing.T) {
	sets, err := neighbor.Build(core.NewArena(0), neighbor.WithDistance(1))
	require.NoError(t, err)
	assert.Empty(t, sets)
}

// ------------------------------------------------------------------------
// 2. Hand-placed points.
// ------------------------------------------------------------------------

func TestBuild_HandPlaced(t *testing.T) {
	arena := core.NewArena(4)
	// A(0,0) and B(3,4) are exactly 5 apart; C(0,1) is close to A;
	// D(100,100) is isolated.
	idA, _ := arena.Add("A", 0, 0)
	idB, _ := arena.Add("B", 3, 4)
	idC, _ := arena.Add("C", 0, 1)
	_, _ = arena.Add("D", 100, 100)

	sets, err := neighbor.Build(arena, neighbor.WithDistance(5))
	require.NoError(t, err)
	require.Len(t, sets, 3, "D has no neighbors and must be omitted")

	byCenter := make(map[core.InstanceID][]core.InstanceID)
	for _, s := range sets {
		byCenter[s.Center] = s.Neighbors
	}
	// Exact-threshold pair counts as neighbors.
	assert.Equal(t, []core.InstanceID{idB, idC}, byCenter[idA])
	assert.Equal(t, []core.InstanceID{idA, idC}, byCenter[idB])
	assert.Equal(t, []core.InstanceID{idA, idB}, byCenter[idC])
}

func TestBuild_CrossCellPairs(t *testing.T) {
	arena := core.NewArena(2)
	// Straddle a grid boundary: cells differ but distance is tiny.
	idA, _ := arena.Add("A", 0.99, 0)
	idB, _ := arena.Add("B", 1.01, 0)

	sets, err := neighbor.Build(arena, neighbor.WithDistance(1))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, []core.InstanceID{idB}, sets[0].Neighbors)
	assert.Equal(t, []core.InstanceID{idA}, sets[1].Neighbors)
}

func TestBuild_NegativeCoordinates(t *testing.T) {
	arena := core.NewArena(2)
	_, _ = arena.Add("A", -0.5, -0.5)
	_, _ = arena.Add("B", 0.4, 0.4)

	sets, err := neighbor.Build(arena, neighbor.WithDistance(1.5))
	require.NoError(t, err)
	assert.Len(t, sets, 2)
}

// ------------------------------------------------------------------------
// 3. Equivalence with the naive all-pairs scan on random point clouds.
// ------------------------------------------------------------------------

func TestBuild_MatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	arena := core.NewArena(200)
	palette := []core.FeatureType{"A", "B", "C"}
	for i := 0; i < 200; i++ {
		_, err := arena.Add(palette[i%len(palette)], rng.Float64()*40-20, rng.Float64()*40-20)
		require.NoError(t, err)
	}
	const d = 2.5

	sets, err := neighbor.Build(arena, neighbor.WithDistance(d))
	require.NoError(t, err)

	// Naive reference.
	want := make(map[core.InstanceID][]core.InstanceID)
	all := arena.Instances()
	for _, a := range all {
		for _, b := range all {
			if a.ID == b.ID {
				continue
			}
			if math.Hypot(a.X-b.X, a.Y-b.Y) <= d {
				want[a.ID] = append(want[a.ID], b.ID)
			}
		}
	}
	for id := range want {
		row := want[id]
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
	}

	require.Len(t, sets, len(want))
	for _, s := range sets {
		assert.Equal(t, want[s.Center], s.Neighbors, "center %d", s.Center)
	}
	// Centers in ascending ID order.
	for i := 1; i < len(sets); i++ {
		assert.Less(t, sets[i-1].Center, sets[i].Center)
	}
}
