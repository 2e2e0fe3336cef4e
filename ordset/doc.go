// Package ordset implements the sorted-set algebra the clique engine is
// built on: intersection counting, materialized intersection and
// difference, and in-order insertion/removal over ascending slices of
// core.InstanceID.
//
// Overview:
//
//   - Every operation is a linear merge walk (or a binary search for the
//     point operations), so costs are O(|A|+|B|) and O(log n + n) at worst.
//   - Inputs must be strictly ascending and deduplicated. This is a caller
//     contract, not a runtime-checked error: violating it silently
//     produces undercounts (see the engine design notes). The mce package
//     re-sorts defensively at the one boundary where order is not already
//     guaranteed.
//   - Intersect and Difference allocate fresh result slices; they never
//     alias their inputs. Insert and Remove mutate (and may reallocate)
//     the slice they are given, returning the updated slice in the
//     append idiom.
//
// When to use:
//
//	ordset exists for the mce engine, but the operations are generic over
//	any ascending []core.InstanceID and safe to reuse.
package ordset
