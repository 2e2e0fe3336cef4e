// This file declares the Signature type, the Strategy enum, Options with
// functional setters, and the package sentinel errors.
package mce

import (
	"errors"
	"sort"
	"strings"

	"github.com/katalvlaran/colomine/core"
)

// Sentinel errors for the enumeration engine.
var (
	// ErrNilArena indicates a nil *core.Arena was passed to Enumerate.
	ErrNilArena = errors.New("mce: arena is nil")

	// ErrBadStrategy indicates WithStrategy received an unknown Strategy value.
	ErrBadStrategy = errors.New("mce: unknown search strategy")

	// ErrNilComparator indicates WithQueueComparator received a nil function.
	ErrNilComparator = errors.New("mce: queue comparator is nil")
)

// sigSep joins feature types into a canonical map key. 0x1F (unit
// separator) cannot collide with printable feature tags.
const sigSep = "\x1f"

// Signature is the canonical key of a co-location pattern: the feature
// types of one maximal clique's members, sorted ascending, duplicates
// retained (a clique holding two instances of type X contributes X twice).
type Signature []core.FeatureType

// newSignature builds the sorted signature of the clique members in r.
func newSignature(arena *core.Arena, r []core.InstanceID) Signature {
	sig := make(Signature, len(r))
	for i, id := range r {
		sig[i] = arena.TypeOf(id)
	}
	sort.Slice(sig, func(i, j int) bool { return sig[i] < sig[j] })

	return sig
}

// Key returns the canonical string form of the signature, suitable as a
// map key. Two signatures are the same pattern iff their Keys are equal.
func (s Signature) Key() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = string(t)
	}

	return strings.Join(parts, sigSep)
}

// String renders the signature for reports and logs: "{A, B, C}".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(t))
	}
	b.WriteByte('}')

	return b.String()
}

// ContainsAll reports whether s contains every element of sub with at
// least sub's multiplicity. Both signatures must be sorted (they always
// are when produced by this package). Complexity: O(|s|+|sub|).
func (s Signature) ContainsAll(sub Signature) bool {
	var i, j int
	for i < len(s) && j < len(sub) {
		switch {
		case s[i] < sub[j]:
			i++
		case sub[j] < s[i]:
			return false
		default:
			i++
			j++
		}
	}

	return j == len(sub)
}

// Strategy selects which recursive search handles a root's candidate set.
type Strategy int

const (
	// StrategyHybrid applies the density rule s ≥ 2.8·k − 11 per root
	// (core decomposition for dense candidate sets, pivoting otherwise).
	// This is the default.
	StrategyHybrid Strategy = iota

	// StrategyPivot forces Bron–Kerbosch with pivoting for every root.
	StrategyPivot

	// StrategyRCD forces recursive core decomposition for every root.
	StrategyRCD
)

// SignatureLess orders signatures in a CandidateQueue: less(a, b) == true
// means a is dequeued before b.
type SignatureLess func(a, b Signature) bool

// DefaultSignatureLess dequeues larger signatures first (bigger
// co-location patterns are evaluated first downstream); equal sizes break
// ties lexicographically ascending, so the queue order is deterministic.
func DefaultSignatureLess(a, b Signature) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// Options configures Enumerate and ExtractCandidates.
//
// Strategy  – which search runs per root (StrategyHybrid by default).
// QueueLess – candidate queue ordering (DefaultSignatureLess by default).
type Options struct {
	Strategy  Strategy
	QueueLess SignatureLess
}

// Option is a functional option for the enumeration engine.
type Option func(*Options)

// WithStrategy forces a search strategy. Both strategies enumerate the
// identical clique set; forcing one only changes running time. Panics on
// an unknown Strategy value.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyHybrid && s != StrategyPivot && s != StrategyRCD {
			panic(ErrBadStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithQueueComparator overrides the candidate queue ordering.
// Panics on a nil comparator.
func WithQueueComparator(less SignatureLess) Option {
	return func(o *Options) {
		if less == nil {
			panic(ErrNilComparator.Error())
		}
		o.QueueLess = less
	}
}

// DefaultOptions returns the engine defaults: hybrid dispatch and
// size-descending queue order.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyHybrid,
		QueueLess: DefaultSignatureLess,
	}
}
