// Package bindings implements an immutable name -> value map used to carry
// variable substitutions through matching and rewriting, plus the two
// optional side caches the AC matcher uses during a single matching session.
//
// The map is generic over the bound value type so that this package never
// needs to import core/atom (which in turn wraps a Bindings value as one of
// its own atom variants); core/atom instantiates Bindings[Atom] itself.
package bindings

import "sync"

// Bindings is an immutable name -> V map. "Immutable" means every mutating
// operation (Plus, Merge, Minus) returns a new value; the receiver is never
// modified. The zero value is a valid empty Bindings.
type Bindings[V any] struct {
	m map[string]V

	// side caches, used only during a single AC-matching session. Reading
	// either one clears it: see TakePatternSeq/TakeSubjectSeq and
	// SetPatternSeq/SetSubjectSeq.
	mu         sync.Mutex
	patternSeq []V
	hasPattern bool
	subjectSeq []V
	hasSubject bool
}

// New returns an empty Bindings.
func New[V any]() *Bindings[V] {
	return &Bindings[V]{}
}

// Of builds a Bindings from an initial map (copied, never aliased).
func Of[V any](init map[string]V) *Bindings[V] {
	b := &Bindings[V]{m: make(map[string]V, len(init))}
	for k, v := range init {
		b.m[k] = v
	}
	return b
}

// Size returns the number of bound names.
func (b *Bindings[V]) Size() int {
	if b == nil {
		return 0
	}
	return len(b.m)
}

// Lookup returns the value bound to name, and whether it was bound.
func (b *Bindings[V]) Lookup(name string) (V, bool) {
	var zero V
	if b == nil {
		return zero, false
	}
	v, ok := b.m[name]
	return v, ok
}

// Plus returns a new Bindings with name bound to value, overriding any
// existing binding for that name. The receiver is unmodified.
func (b *Bindings[V]) Plus(name string, value V) *Bindings[V] {
	out := b.clone()
	out.m[name] = value
	return out
}

// Minus returns a new Bindings with name unbound. The receiver is unmodified.
func (b *Bindings[V]) Minus(name string) *Bindings[V] {
	out := b.clone()
	delete(out.m, name)
	return out
}

// Merge returns a new Bindings containing every binding of b, overridden by
// every binding of other where both define the same name. Neither receiver
// is modified.
func (b *Bindings[V]) Merge(other *Bindings[V]) *Bindings[V] {
	out := b.clone()
	if other != nil {
		for k, v := range other.m {
			out.m[k] = v
		}
	}
	return out
}

func (b *Bindings[V]) clone() *Bindings[V] {
	out := &Bindings[V]{m: make(map[string]V)}
	if b != nil {
		for k, v := range b.m {
			out.m[k] = v
		}
	}
	return out
}

// Names returns the bound names in unspecified order.
func (b *Bindings[V]) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.m))
	for k := range b.m {
		names = append(names, k)
	}
	return names
}

// SetPatternSeq installs the AC-matching pattern-sequence side cache.
func (b *Bindings[V]) SetPatternSeq(seq []V) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.patternSeq = seq
	b.hasPattern = true
}

// SetSubjectSeq installs the AC-matching subject-sequence side cache.
func (b *Bindings[V]) SetSubjectSeq(seq []V) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subjectSeq = seq
	b.hasSubject = true
}

// TakePatternSeq returns the pattern-sequence side cache and clears it: a
// second call in the same session returns ok=false.
func (b *Bindings[V]) TakePatternSeq() (seq []V, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasPattern {
		return nil, false
	}
	seq, b.patternSeq, b.hasPattern = b.patternSeq, nil, false
	return seq, true
}

// TakeSubjectSeq returns the subject-sequence side cache and clears it: a
// second call in the same session returns ok=false.
func (b *Bindings[V]) TakeSubjectSeq() (seq []V, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasSubject {
		return nil, false
	}
	seq, b.subjectSeq, b.hasSubject = b.subjectSeq, nil, false
	return seq, true
}
