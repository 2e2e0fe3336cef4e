// This file implements grid-bucketed neighbor search over the arena.
package neighbor

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/colomine/core"
)

// cell addresses one bucket of the uniform grid.
type cell struct {
	ix, iy int64
}

// Build returns one NeighborSet per instance that has at least one
// neighbor within the configured distance. Sets are ordered by center ID
// and every neighbor list is ascending, so output is reproducible.
//
// Complexity: O(V) bucketing plus one distance check per candidate pair
// sharing a 3×3 cell block.
func Build(arena *core.Arena, opts ...Option) ([]core.NeighborSet, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if arena == nil {
		return nil, ErrNilArena
	}
	if cfg.Distance <= 0 {
		return nil, ErrBadDistance
	}

	instances := arena.Instances()
	if len(instances) == 0 {
		return nil, nil
	}

	// 2) Hash every instance into a grid cell of side Distance: any pair
	//    within Distance differs by at most one cell per axis.
	grid := make(map[cell][]core.InstanceID, len(instances))
	for _, inst := range instances {
		c := cellOf(inst, cfg.Distance)
		grid[c] = append(grid[c], inst.ID)
	}

	// 3) For each instance, compare against its own and the 8 adjacent
	//    cells; keep pairs at Euclidean distance ≤ Distance.
	limit := cfg.Distance * cfg.Distance
	sets := make([]core.NeighborSet, 0, len(instances))
	for _, inst := range instances {
		c := cellOf(inst, cfg.Distance)
		pos := r2.Vec{X: inst.X, Y: inst.Y}

		var nbs []core.InstanceID
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for _, other := range grid[cell{ix: c.ix + dx, iy: c.iy + dy}] {
					if other == inst.ID {
						continue
					}
					o := instances[other]
					delta := r2.Sub(pos, r2.Vec{X: o.X, Y: o.Y})
					if r2.Norm2(delta) <= limit {
						nbs = append(nbs, other)
					}
				}
			}
		}
		if len(nbs) == 0 {
			continue // isolated instances are excluded by contract
		}
		sort.Slice(nbs, func(a, b int) bool { return nbs[a] < nbs[b] })
		sets = append(sets, core.NeighborSet{Center: inst.ID, Neighbors: nbs})
	}

	return sets, nil
}

// cellOf maps an instance position to its grid cell.
func cellOf(inst core.Instance, d float64) cell {
	return cell{
		ix: int64(math.Floor(inst.X / d)),
		iy: int64(math.Floor(inst.Y / d)),
	}
}
