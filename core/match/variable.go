package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// GuardRewriterHook invokes guard as a Rewriter on s (spec section 4.5,
// Variable-vs-s case (a)): isRewriter reports whether guard actually is one
// (the matcher falls through to case (b)/(c) when it is not), fired
// reports whether the rewriter's invocation succeeded.
type GuardRewriterHook func(ctx context.Context, guard, s atom.Atom) (result atom.Atom, fired, isRewriter bool)

// GuardApplicableHook invokes guard as an Applicable on s (case (b)):
// isApplicable reports whether guard actually is one.
type GuardApplicableHook func(ctx context.Context, guard, s atom.Atom) (result atom.Atom, isApplicable bool, err error)

// RewriteHook rewrites a under binds against the rule library currently in
// scope (case (c), and Lambda/Apply bodies elsewhere).
type RewriteHook func(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool)

func (m *Matcher) matchVariable(ctx context.Context, name string, guard atom.Atom, byName bool, _ map[string]struct{}, subject atom.Atom, binds *atom.Bindings) Outcome {
	if byName {
		sv, ok := subject.(*atom.Variable)
		if ok && sv.Name == name {
			return Match(binds)
		}
		smv, ok := subject.(*atom.MetaVariable)
		if ok && smv.Name == name {
			return Match(binds)
		}
		return Fail("by-name variable requires matching name", nil, subject, nil)
	}

	if bound, ok := binds.Lookup(name); ok {
		if isAnyAtom(bound) || hashGuardedEqual(bound, subject) {
			return Match(binds)
		}
		return Fail("variable already bound to a different atom", nil, subject, nil)
	}

	return m.evaluateGuard(ctx, name, guard, subject, binds)
}

func (m *Matcher) evaluateGuard(ctx context.Context, name string, guard, subject atom.Atom, binds *atom.Bindings) Outcome {
	if guard == nil || isLiteralTrue(guard) {
		return Match(binds.Plus(name, subject))
	}

	if m.GuardRewriter != nil {
		if result, fired, isRewriter := m.GuardRewriter(ctx, guard, subject); isRewriter {
			if fired {
				return Match(binds.Plus(name, result))
			}
			return Fail("guard rewriter did not fire", nil, subject, nil)
		}
	}

	if m.GuardApplicable != nil {
		if result, isApplicable, err := m.GuardApplicable(ctx, guard, subject); isApplicable {
			if err != nil {
				return Fail("guard application error: "+err.Error(), nil, subject, nil)
			}
			return Match(binds.Plus(name, result))
		}
	}

	if m.RewriteUnderRules == nil {
		// No rewrite hook configured (e.g. a match package unit test):
		// without a way to evaluate the guard expression, default to
		// accepting, mirroring the guard's own default of literal true.
		return Match(binds.Plus(name, subject))
	}

	tentative := binds.Plus(name, subject)
	result, _ := m.RewriteUnderRules(ctx, guard, tentative)
	if isLiteralTrue(result) {
		return Match(tentative)
	}
	return Fail("guard did not evaluate to true", nil, subject, nil)
}

func isLiteralTrue(a atom.Atom) bool {
	lit, ok := a.(*atom.Literal)
	return ok && lit.LitKind() == atom.LitBoolean && lit.BooleanValue()
}
