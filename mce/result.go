// This file implements the result aggregator: maximal cliques are
// canonicalized into signatures and their members grouped by feature type.
package mce

import (
	"sort"

	"github.com/katalvlaran/colomine/core"
)

// minCliqueSize is the smallest clique worth recording: a lone instance is
// not a co-location.
const minCliqueSize = 2

// Entry aggregates every maximal clique that shares one signature.
type Entry struct {
	// Signature is the sorted feature-type key of the pattern.
	Signature Signature

	// Members maps each feature type of the signature to the set of
	// instances of that type seen in some maximal clique with this
	// signature. Set semantics: the same instance reported through two
	// different cliques is stored once.
	Members map[core.FeatureType]map[core.InstanceID]struct{}
}

// Count returns the number of distinct participating instances of feature
// type t.
func (e *Entry) Count(t core.FeatureType) int { return len(e.Members[t]) }

// Result is the engine's output: signature → per-feature-type instance
// sets, accumulated across all roots and both search strategies.
type Result struct {
	entries map[string]*Entry
}

// newResult returns an empty result map.
func newResult() *Result {
	return &Result{entries: make(map[string]*Entry)}
}

// report records a completed maximal clique. Cliques below the minimum
// size are ignored. Identical signatures merge by set union.
func (res *Result) report(arena *core.Arena, clique []core.InstanceID) {
	if len(clique) < minCliqueSize {
		return
	}

	// 1) Canonicalize: sorted feature types, duplicates retained.
	sig := newSignature(arena, clique)
	key := sig.Key()

	// 2) Find or create the entry for this pattern shape.
	entry, ok := res.entries[key]
	if !ok {
		entry = &Entry{
			Signature: sig,
			Members:   make(map[core.FeatureType]map[core.InstanceID]struct{}, len(sig)),
		}
		res.entries[key] = entry
	}

	// 3) Union every member into its feature type's set.
	for _, id := range clique {
		t := arena.TypeOf(id)
		set, ok := entry.Members[t]
		if !ok {
			set = make(map[core.InstanceID]struct{})
			entry.Members[t] = set
		}
		set[id] = struct{}{}
	}
}

// Len reports the number of distinct signatures found.
func (res *Result) Len() int { return len(res.entries) }

// Entry returns the aggregate for the given signature, if present.
func (res *Result) Entry(sig Signature) (*Entry, bool) {
	e, ok := res.entries[sig.Key()]

	return e, ok
}

// Signatures returns every distinct signature, sorted by Key ascending so
// iteration order is deterministic across runs.
func (res *Result) Signatures() []Signature {
	keys := make([]string, 0, len(res.entries))
	for k := range res.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sigs := make([]Signature, len(keys))
	for i, k := range keys {
		sigs[i] = res.entries[k].Signature
	}

	return sigs
}
