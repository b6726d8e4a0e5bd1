package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// matchAC matches an associative-and-commutative sequence (spec section
// 4.5.3): first isolate matching constant elements (each constant in the
// pattern consumes the first equal constant from the subject, found by a
// linear scan with atom.Compare; the sequence's constant-subterm index is
// not consulted), then distribute the remaining
// subject elements across the remaining (necessarily non-constant) pattern
// positions as unordered groups.
func (m *Matcher) matchAC(ctx context.Context, pattern, subject *atom.AtomSeq, binds *atom.Bindings) Outcome {
	remainingSubject := append([]atom.Atom(nil), subject.Elements...)
	var varPatterns []atom.Atom

	for _, pe := range pattern.Elements {
		if !pe.IsConstant() {
			varPatterns = append(varPatterns, pe)
			continue
		}
		idx := -1
		for i, se := range remainingSubject {
			if se.IsConstant() && atom.Compare(pe, se) == 0 {
				idx = i
				break
			}
		}
		if idx == -1 {
			return Fail("constant in AC pattern has no matching subject element", pattern, subject, nil)
		}
		remainingSubject = append(remainingSubject[:idx], remainingSubject[idx+1:]...)
	}

	k := len(varPatterns)
	if k == 0 {
		if len(remainingSubject) == 0 {
			return Match(binds)
		}
		return Fail("leftover subject elements with no variable to absorb them", pattern, subject, nil)
	}
	if len(remainingSubject) < k {
		return Fail("too few remaining subject elements for AC pattern variables", pattern, subject, nil)
	}

	var solutions []Outcome
	assignment := make([]int, len(remainingSubject))
	distribute(remainingSubject, k, assignment, 0, func() {
		groups := make([][]atom.Atom, k)
		for i, g := range assignment[:len(remainingSubject)] {
			groups[g] = append(groups[g], remainingSubject[i])
		}
		for _, g := range groups {
			if len(g) == 0 {
				return
			}
		}
		steps := make([]func(*atom.Bindings) Outcome, k)
		for i := 0; i < k; i++ {
			pe, group := varPatterns[i], groups[i]
			steps[i] = func(b *atom.Bindings) Outcome { return m.matchGroup(ctx, pe, group, pattern.Props, b) }
		}
		solutions = append(solutions, foldOutcomes(binds, steps))
	})
	return outcomesToOutcome(solutions, "no distribution of the remaining subject elements matches the AC pattern", pattern, subject)
}

// distribute enumerates every way to label each of len(items) items with a
// group in [0,k), invoking emit once per full labeling with assignment
// populated. Labelings with an empty group are filtered by the caller
// (distribute itself doesn't know which groups must be non-empty).
func distribute(items []atom.Atom, k int, assignment []int, pos int, emit func()) {
	if pos == len(items) {
		emit()
		return
	}
	for g := 0; g < k; g++ {
		assignment[pos] = g
		distribute(items, k, assignment, pos+1, emit)
	}
}
