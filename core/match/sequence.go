package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// matchAtomSeq dispatches sequence matching (spec section 4.5.1-4.5.3): it
// first matches pattern's props against subject's props (spec section 4.5's
// "first match props against props" step, via matchAlgProp/MatchAlgProp),
// then picks the AC/A/C/plain matcher from the resulting effective flags.
func (m *Matcher) matchAtomSeq(ctx context.Context, pattern *atom.AtomSeq, subject atom.Atom, binds *atom.Bindings) Outcome {
	s, ok := subject.(*atom.AtomSeq)
	if !ok {
		return Fail("sequence vs non-sequence", pattern, subject, nil)
	}

	propsOut := m.matchAlgProp(ctx, pattern.Props, s.Props, binds)
	return andThen(propsOut, func(pb *atom.Bindings) Outcome {
		assoc := effectiveFlag(pattern.Props.Associative, s.Props.Associative, pb)
		comm := effectiveFlag(pattern.Props.Commutative, s.Props.Commutative, pb)

		switch {
		case assoc && comm:
			return m.matchAC(ctx, pattern, s, pb)
		case assoc:
			return m.matchAssociative(ctx, pattern, s, pb)
		case comm:
			return m.matchCommutative(ctx, pattern, s, pb)
		default:
			return m.matchPlainSeq(ctx, pattern, s, pb)
		}
	})
}

// matchAlgProp implements spec section 4.5's "first match props against
// props" step via atom.MatchAlgProp: a component absent on either side
// matches anything on the other; a component present on both sides is
// matched through the ordinary matcher, so a symbolic (variable, guarded)
// flag atom in the pattern gets bound to subject's concrete value exactly
// as any other pattern element would, rather than defaulting to "absent".
// AlgProp components are in practice literal flags or constant elements
// (atom.MatchAlgProp's own doc comment), so a single-binding eq callback
// threading current through closures is sufficient; it need not plumb a
// full Many outcome.
func (m *Matcher) matchAlgProp(ctx context.Context, pattern, subject *atom.AlgProp, binds *atom.Bindings) Outcome {
	current := binds
	ok := atom.MatchAlgProp(pattern, subject, func(p, s atom.Atom) bool {
		b, matched := m.Match(ctx, p, s, current, nil).First()
		if !matched {
			return false
		}
		current = b
		return true
	})
	if !ok {
		return Fail("AlgProp mismatch", pattern, subject, nil)
	}
	return Match(current)
}

// effectiveFlag resolves an Associative/Commutative dispatch flag once props
// have been matched: a literal flag on either side is authoritative; a
// pattern flag left as an unresolved variable that matchAlgProp just bound
// is resolved through binds instead of defaulting to "absent".
func effectiveFlag(pattern, subject atom.Atom, binds *atom.Bindings) bool {
	if pattern != nil {
		if v, known := atom.FlagBool(pattern); known {
			return v
		}
	}
	if v, known := atom.FlagBool(subject); known {
		return v
	}
	if pv, ok := pattern.(*atom.Variable); ok {
		if bound, ok := binds.Lookup(pv.Name); ok {
			if v, known := atom.FlagBool(bound); known {
				return v
			}
		}
	}
	return false
}

// matchPlainSeq matches two equal-length sequences position by position, in
// order, with no grouping or reordering.
func (m *Matcher) matchPlainSeq(ctx context.Context, pattern, subject *atom.AtomSeq, binds *atom.Bindings) Outcome {
	if len(pattern.Elements) != len(subject.Elements) {
		return Fail("sequence length mismatch", pattern, subject, nil)
	}
	steps := make([]func(*atom.Bindings) Outcome, len(pattern.Elements))
	for i := range pattern.Elements {
		pe, se := pattern.Elements[i], subject.Elements[i]
		steps[i] = func(b *atom.Bindings) Outcome { return m.Match(ctx, pe, se, b, nil) }
	}
	return foldOutcomes(binds, steps)
}

// matchGroup matches a single pattern element against a contiguous-or-not
// group of subject elements: a singleton group matches the element
// directly, a larger group is wrapped back into an AtomSeq under the same
// properties so only a bindable pattern element (a variable) can absorb it.
func (m *Matcher) matchGroup(ctx context.Context, pe atom.Atom, group []atom.Atom, props *atom.AlgProp, binds *atom.Bindings) Outcome {
	if len(group) == 1 {
		return m.Match(ctx, pe, group[0], binds, nil)
	}
	wrapped := atom.NewAtomSeq(props, group, pe.Type())
	return m.Match(ctx, pe, wrapped, binds, nil)
}
