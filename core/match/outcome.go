// Package match implements unification-by-matching of a pattern atom
// against a subject atom (spec component C5): plain, associative,
// commutative, and associative-commutative sequence matching, variable
// binding and guards, and the Outcome contract the rewriter consumes.
package match

import "github.com/elision/elision-sub001/core/atom"

// Kind distinguishes the three Outcome shapes spec section 4.5 names.
type Kind int

const (
	KindMatch Kind = iota
	KindMany
	KindFail
)

// Seq is a pull-based iterator over bindings, used for Many outcomes
// (spec's "lazy iterator"). Calling it repeatedly yields (binds, true)
// until it returns (nil, false).
type Seq func() (*atom.Bindings, bool)

// SeqFromSlice turns an already-materialized slice of bindings into a Seq,
// for the (common, small) cases where laziness buys nothing.
func SeqFromSlice(all []*atom.Bindings) Seq {
	i := 0
	return func() (*atom.Bindings, bool) {
		if i >= len(all) {
			return nil, false
		}
		b := all[i]
		i++
		return b, true
	}
}

// Collect drains a Seq into a slice. Used by callers (and tests) that need
// the full solution set rather than lazy enumeration.
func Collect(seq Seq) []*atom.Bindings {
	var out []*atom.Bindings
	for {
		b, ok := seq()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// Outcome is the result of a match attempt: exactly one of Match(binds),
// Many(iterator), or Fail(reason, pattern, subject, causedBy).
type Outcome struct {
	Kind Kind

	Binds *atom.Bindings
	Many  Seq

	FailReason  string
	FailPattern atom.Atom
	FailSubject atom.Atom
	CausedBy    *Outcome
}

// Match constructs a successful single-binding outcome.
func Match(binds *atom.Bindings) Outcome {
	return Outcome{Kind: KindMatch, Binds: binds}
}

// ManyOf constructs a successful multi-binding outcome.
func ManyOf(seq Seq) Outcome {
	return Outcome{Kind: KindMany, Many: seq}
}

// Fail constructs a failed outcome. causedBy may be nil.
func Fail(reason string, pattern, subject atom.Atom, causedBy *Outcome) Outcome {
	return Outcome{Kind: KindFail, FailReason: reason, FailPattern: pattern, FailSubject: subject, CausedBy: causedBy}
}

// Ok reports whether the outcome represents (eventual) success.
func (o Outcome) Ok() bool { return o.Kind != KindFail }

// First returns one successful binding from the outcome, materializing a
// Many outcome's first solution. ok is false for a Fail outcome or an
// exhausted Many.
func (o Outcome) First() (binds *atom.Bindings, ok bool) {
	switch o.Kind {
	case KindMatch:
		return o.Binds, true
	case KindMany:
		return o.Many()
	default:
		return nil, false
	}
}

// AsSeq turns any outcome into a Seq: Fail yields nothing, Match yields one
// binding, Many is passed through.
func (o Outcome) AsSeq() Seq {
	switch o.Kind {
	case KindMatch:
		done := false
		return func() (*atom.Bindings, bool) {
			if done {
				return nil, false
			}
			done = true
			return o.Binds, true
		}
	case KindMany:
		return o.Many
	default:
		return func() (*atom.Bindings, bool) { return nil, false }
	}
}
