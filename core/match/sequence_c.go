package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// matchCommutative matches a commutative-but-not-associative sequence:
// lengths must agree (no element may absorb more than one subject atom),
// and a subject element may be assigned to any not-yet-used pattern
// position (spec section 4.5.1, permutation matching).
func (m *Matcher) matchCommutative(ctx context.Context, pattern, subject *atom.AtomSeq, binds *atom.Bindings) Outcome {
	if len(pattern.Elements) != len(subject.Elements) {
		return Fail("commutative sequence length mismatch", pattern, subject, nil)
	}
	n := len(pattern.Elements)
	used := make([]bool, n)
	var solutions []Outcome
	assignPermutation(ctx, m, pattern.Elements, subject.Elements, used, 0, binds, &solutions)
	return outcomesToOutcome(solutions, "no permutation of the subject matches the pattern", pattern, subject)
}

// assignPermutation recursively assigns each subject index to the current
// pattern position in turn, backtracking over already-used indices. Small
// sequences are assumed (spec Design Notes); this explores the assignment
// space eagerly rather than lazily interleaving it with consumption.
func assignPermutation(ctx context.Context, m *Matcher, patternElems, subjectElems []atom.Atom, used []bool, pos int, binds *atom.Bindings, out *[]Outcome) {
	if pos == len(patternElems) {
		*out = append(*out, Match(binds))
		return
	}
	pe := patternElems[pos]
	for i, se := range subjectElems {
		if used[i] {
			continue
		}
		out2 := m.Match(ctx, pe, se, binds, nil)
		if !out2.Ok() {
			continue
		}
		for {
			b, ok := out2.First()
			if !ok {
				break
			}
			used[i] = true
			assignPermutation(ctx, m, patternElems, subjectElems, used, pos+1, b, out)
			used[i] = false
			if out2.Kind != KindMany {
				break
			}
		}
	}
}
