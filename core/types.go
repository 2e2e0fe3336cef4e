// This file declares FeatureType, InstanceID, Instance, NeighborSet,
// the Arena store, and the package sentinel errors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core arena operations.
var (
	// ErrEmptyFeature indicates an instance was added with an empty feature type.
	ErrEmptyFeature = errors.New("core: feature type is empty")

	// ErrInstanceRange indicates an InstanceID outside the arena's bounds.
	ErrInstanceRange = errors.New("core: instance ID out of arena range")
)

// FeatureType tags an instance with the spatial feature it represents
// (e.g. "pharmacy", "bus_stop"). Comparison is plain string comparison.
type FeatureType string

// InstanceID identifies an instance by its index in the Arena.
//
// InstanceID order is the canonical total order over instances: every
// sorted-set operation in ordset and every adjacency list in mce relies on
// ascending InstanceID. IDs are dense — the arena hands them out 0,1,2,…
type InstanceID int32

// Instance is one spatial observation: a feature type at a position.
type Instance struct {
	// ID is the instance's index in its Arena.
	ID InstanceID

	// Type is the feature type of this instance.
	Type FeatureType

	// X, Y are the planar coordinates of the instance.
	X, Y float64
}

// NeighborSet pairs a center instance with every instance within the
// neighbor distance of it. Neighbors is unordered on input; consumers sort
// it by InstanceID before use. Instances with no neighbors are simply
// omitted from a []NeighborSet — they can never join a clique of size ≥ 2.
type NeighborSet struct {
	// Center is the instance this set is recorded for.
	Center InstanceID

	// Neighbors holds every instance within the neighbor distance of Center.
	Neighbors []InstanceID
}

// Arena is the append-only instance store. Building happens in one place
// (the dataset loader); after that the arena is read-only and safe to share.
type Arena struct {
	instances []Instance
}

// NewArena returns an empty arena, optionally pre-sized for n instances.
// Complexity: O(1).
func NewArena(n int) *Arena {
	return &Arena{instances: make([]Instance, 0, n)}
}

// Add appends an instance with the given feature type and position and
// returns its InstanceID. Returns ErrEmptyFeature for an empty type.
// Complexity: amortized O(1).
func (a *Arena) Add(t FeatureType, x, y float64) (InstanceID, error) {
	if t == "" {
		return 0, ErrEmptyFeature
	}
	id := InstanceID(len(a.instances))
	a.instances = append(a.instances, Instance{ID: id, Type: t, X: x, Y: y})

	return id, nil
}

// Len reports the number of instances in the arena.
func (a *Arena) Len() int { return len(a.instances) }

// At returns the instance with the given ID, or ErrInstanceRange if the ID
// does not index into the arena.
func (a *Arena) At(id InstanceID) (Instance, error) {
	if id < 0 || int(id) >= len(a.instances) {
		return Instance{}, fmt.Errorf("%w: %d (arena size %d)", ErrInstanceRange, id, len(a.instances))
	}

	return a.instances[id], nil
}

// TypeOf returns the feature type of the given instance. It assumes id is
// in range — callers that accept external IDs validate with At first.
func (a *Arena) TypeOf(id InstanceID) FeatureType {
	return a.instances[id].Type
}

// Instances returns the backing slice, in ID order. Callers must not
// mutate it.
func (a *Arena) Instances() []Instance { return a.instances }
