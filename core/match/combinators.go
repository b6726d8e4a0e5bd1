package match

import "github.com/elision/elision-sub001/core/atom"

// andThen sequences two match steps: for every binding left produces, run
// next against it, and flatten the result. This is how matchApply combines
// an operator match with an argument match, and how sequence matching
// threads bindings across positions, without ever materializing a Many
// outcome's full solution set unless a caller actually asks for it.
func andThen(left Outcome, next func(*atom.Bindings) Outcome) Outcome {
	switch left.Kind {
	case KindFail:
		return left
	case KindMatch:
		return next(left.Binds)
	default: // KindMany
		return ManyOf(chainSeq(left.Many, next))
	}
}

// chainSeq flat-maps a Seq through a function yielding a fresh Outcome per
// element, the Seq analogue of a list monad's bind.
func chainSeq(first Seq, next func(*atom.Bindings) Outcome) Seq {
	var inner Seq
	return func() (*atom.Bindings, bool) {
		for {
			if inner != nil {
				if b, ok := inner(); ok {
					return b, true
				}
				inner = nil
			}
			b, ok := first()
			if !ok {
				return nil, false
			}
			inner = next(b).AsSeq()
		}
	}
}

// foldOutcomes threads binds through a sequence of match steps in order,
// accumulating via andThen; used by plain (non-A, non-C) sequence matching
// and by every partition/permutation strategy once a candidate grouping has
// been chosen.
func foldOutcomes(start *atom.Bindings, steps []func(*atom.Bindings) Outcome) Outcome {
	out := Match(start)
	for _, step := range steps {
		out = andThen(out, step)
		if out.Kind == KindFail {
			return out
		}
	}
	return out
}

// concatSeqs lazily concatenates several Seqs in order (used to merge the
// solution sets contributed by distinct partitions/permutations).
func concatSeqs(seqs []Seq) Seq {
	i := 0
	var cur Seq
	return func() (*atom.Bindings, bool) {
		for {
			if cur != nil {
				if b, ok := cur(); ok {
					return b, true
				}
				cur = nil
			}
			if i >= len(seqs) {
				return nil, false
			}
			cur = seqs[i]
			i++
		}
	}
}

// outcomesToOutcome collapses a built-up list of per-candidate outcomes into a
// single Outcome: no candidates is Fail, exactly one Match-shaped candidate
// passes through as Match, anything else becomes a (possibly multi-element)
// Many.
func outcomesToOutcome(candidates []Outcome, failReason string, pattern, subject atom.Atom) Outcome {
	seqs := make([]Seq, 0, len(candidates))
	for _, c := range candidates {
		if c.Kind != KindFail {
			seqs = append(seqs, c.AsSeq())
		}
	}
	if len(seqs) == 0 {
		return Fail(failReason, pattern, subject, nil)
	}
	combined := concatSeqs(seqs)
	first, ok := combined()
	if !ok {
		return Fail(failReason, pattern, subject, nil)
	}
	rest, ok := combined()
	if !ok {
		return Match(first)
	}
	// At least two solutions: rebuild a fresh seq starting from both
	// already-pulled elements so no solution is lost.
	return ManyOf(concatSeqs([]Seq{
		SeqFromSlice([]*atom.Bindings{first, rest}),
		combined,
	}))
}
