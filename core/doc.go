// Package core defines the central Instance, Arena, and NeighborSet types
// shared by every stage of the colomine pipeline.
//
// Overview:
//
//   - A spatial Instance is a feature-type tag plus a 2-D position.
//   - Instances live in an append-only Arena; an instance's identity is its
//     InstanceID — the index it received when added. Index order is the one
//     and only total order the rest of the library uses, which keeps every
//     downstream sorted-set operation deterministic across runs and
//     platforms (no pointer ordering anywhere).
//   - A NeighborSet pairs a center instance with the (unordered) instances
//     found within the neighbor distance of it. The neighbor package
//     produces them; the mce package consumes them.
//
// The Arena is built once by the dataset loader and is read-only
// afterwards, so it may be shared freely across goroutines.
//
// Errors:
//
//	ErrEmptyFeature  - an instance was added with an empty feature type.
//	ErrInstanceRange - an InstanceID does not index into the arena.
package core
