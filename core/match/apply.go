package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// matchApply implements "Apply vs Apply" (spec section 4.5): match heads
// first, passing the left head as hint, then match arguments using the head
// as the AC-matching hint.
func (m *Matcher) matchApply(ctx context.Context, pattern atom.ApplyAtom, subject atom.Atom, binds *atom.Bindings) Outcome {
	sApply, ok := subject.(atom.ApplyAtom)
	if !ok {
		return Fail("apply vs non-apply", pattern, subject, nil)
	}

	head := pattern.Operator()
	headOut := m.Match(ctx, head, sApply.Operator(), binds, head)
	return andThen(headOut, func(hb *atom.Bindings) Outcome {
		return m.Match(ctx, pattern.Argument(), sApply.Argument(), hb, head)
	})
}
