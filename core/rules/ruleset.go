// Package rules implements the rule library (spec component C7): the Rule
// type, the ruleset bit-assignment registry the memo cache keys against,
// and the match-guards-rewrite apply procedure.
package rules

import (
	"encoding/base64"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/bits-and-blooms/bitset"

	"github.com/elision/elision-sub001/core/atom"
)

// RulesetRegistry assigns each ruleset name a stable bit on first mention
// (spec section 4.8, "a globally assigned per-name bit"), growing the bit
// space as new names appear.
type RulesetRegistry struct {
	mu       sync.Mutex
	bitOf    map[string]uint32
	assigned *bitset.BitSet
	next     uint32
}

// NewRulesetRegistry returns an empty registry.
func NewRulesetRegistry() *RulesetRegistry {
	return &RulesetRegistry{bitOf: make(map[string]uint32), assigned: bitset.New(64)}
}

// BitFor returns the bit assigned to name, assigning a fresh one on first
// mention. Panics on a syntactically invalid ruleset name: ruleset names
// are supplied by code (session configuration, rule declarations), never
// parsed from untrusted input, so a malformed name here is a caller bug.
func (r *RulesetRegistry) BitFor(name string) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bitOf[name]; ok {
		return b
	}
	if !atom.ValidIdentifier(name) {
		panic("rules: invalid ruleset name " + name)
	}
	b := r.next
	r.next++
	r.bitOf[name] = b
	r.assigned.Set(uint(b))
	return b
}

// AssignedBits exposes which bits are in use, for introspection.
func (r *RulesetRegistry) AssignedBits() *bitset.BitSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.assigned.Clone()
}

// ActiveSet is a compact representation of a set of active ruleset names
// (the cache key's activeRulesetSet component), built against a registry.
type ActiveSet struct {
	bits *roaring.Bitmap
}

// NewActiveSet builds an ActiveSet for the given ruleset names against reg,
// assigning bits for any name not seen before.
func NewActiveSet(reg *RulesetRegistry, names []string) ActiveSet {
	bm := roaring.New()
	for _, n := range names {
		bm.Add(reg.BitFor(n))
	}
	return ActiveSet{bits: bm}
}

// Contains reports whether name's bit is set, given the same registry used
// to build the set.
func (a ActiveSet) Contains(reg *RulesetRegistry, name string) bool {
	return a.bits.Contains(reg.BitFor(name))
}

// Key returns a comparable representation suitable for use as (part of) a
// map key (spec section 4.8's cache key pairs this with (hash, otherHash)).
func (a ActiveSet) Key() string {
	b, err := a.bits.ToBytes()
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}
