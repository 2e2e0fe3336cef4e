package mce_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/mce"
)

// benchInput builds a seeded random graph once per benchmark.
func benchInput(n int, prob float64) (*core.Arena, []core.NeighborSet) {
	rng := rand.New(rand.NewSource(404))
	arena := core.NewArena(n)
	palette := []core.FeatureType{"A", "B", "C", "D", "E"}
	for i := 0; i < n; i++ {
		_, _ = arena.Add(palette[i%len(palette)], 0, 0)
	}

	nbs := make(map[core.InstanceID][]core.InstanceID)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < prob {
				nbs[core.InstanceID(u)] = append(nbs[core.InstanceID(u)], core.InstanceID(v))
			}
		}
	}
	sets := make([]core.NeighborSet, 0, len(nbs))
	for c, ns := range nbs {
		sets = append(sets, core.NeighborSet{Center: c, Neighbors: ns})
	}

	return arena, sets
}

func benchEnumerate(b *testing.B, strategy mce.Strategy) {
	arena, sets := benchInput(120, 0.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mce.Enumerate(arena, sets, mce.WithStrategy(strategy)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnumerate_Hybrid(b *testing.B) { benchEnumerate(b, mce.StrategyHybrid) }
func BenchmarkEnumerate_Pivot(b *testing.B)  { benchEnumerate(b, mce.StrategyPivot) }
func BenchmarkEnumerate_RCD(b *testing.B)    { benchEnumerate(b, mce.StrategyRCD) }
