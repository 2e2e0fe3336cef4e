// Package neighbor builds the spatial neighbor graph the clique engine
// consumes: for every instance, the set of instances within the neighbor
// distance of it.
//
// Overview:
//
//   - Instances are hashed into a uniform grid with cell side equal to
//     the neighbor distance d. Any pair within d of each other lands in
//     the same cell or in adjacent cells, so each instance is compared
//     only against its own 3×3 cell block instead of the whole arena.
//   - Distance is Euclidean (gonum spatial/r2 vector arithmetic);
//     a pair at exactly distance d counts as neighbors.
//   - Instances with no neighbor are omitted from the output, matching
//     the engine's input contract — they can never join a co-location.
//   - Output is deterministic: neighbor sets are emitted in center
//     InstanceID order and every neighbor list is ascending.
//
// Complexity: O(V + P) where P is the number of candidate pairs sharing a
// cell block — O(V²) only when the data collapses into one cell.
//
// Errors (sentinel):
//
//	ErrNilArena     - Build received a nil arena.
//	ErrBadDistance  - the neighbor distance is not positive.
package neighbor
