package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// matchAssociative matches an associative-but-not-commutative sequence: the
// subject is split into len(pattern.Elements) contiguous, non-empty groups
// in order (an "ordered partition", spec section 4.5.2); a group of size
// one matches its pattern position directly, a larger group is re-wrapped
// as an AtomSeq so only a variable can absorb it.
func (m *Matcher) matchAssociative(ctx context.Context, pattern, subject *atom.AtomSeq, binds *atom.Bindings) Outcome {
	k := len(pattern.Elements)
	n := len(subject.Elements)
	if k == 0 {
		if n == 0 {
			return Match(binds)
		}
		return Fail("non-empty subject against empty associative pattern", pattern, subject, nil)
	}
	if n < k {
		return Fail("too few subject elements for associative pattern", pattern, subject, nil)
	}

	var solutions []Outcome
	groups := make([][]atom.Atom, k)
	compositions(subject.Elements, k, groups, 0, func() {
		steps := make([]func(*atom.Bindings) Outcome, k)
		for i := 0; i < k; i++ {
			pe, group := pattern.Elements[i], append([]atom.Atom(nil), groups[i]...)
			steps[i] = func(b *atom.Bindings) Outcome { return m.matchGroup(ctx, pe, group, pattern.Props, b) }
		}
		solutions = append(solutions, foldOutcomes(binds, steps))
	})
	return outcomesToOutcome(solutions, "no ordered partition of the subject matches the pattern", pattern, subject)
}

// compositions enumerates every way to split items into exactly k
// contiguous, non-empty groups (in order), invoking emit once per
// composition with groups[0:k] populated for its duration.
func compositions(items []atom.Atom, k int, groups [][]atom.Atom, start int, emit func()) {
	remaining := len(items) - start
	if k == 1 {
		groups[len(groups)-1] = items[start:]
		emit()
		return
	}
	idx := len(groups) - k
	// Each of the remaining k-1 groups after this one needs at least one
	// element, so this group may take at most remaining-(k-1).
	maxTake := remaining - (k - 1)
	for take := 1; take <= maxTake; take++ {
		groups[idx] = items[start : start+take]
		compositions(items, k-1, groups, start+take, emit)
	}
}
