package match

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// Options configures the fast-equality short circuits the matcher uses
// (spec section 4.1); they mirror the Executor's risky_equality_check and
// custom_equality_check properties (spec section 6).
type Options struct {
	Risky  bool
	Custom bool
}

// Matcher bundles the callbacks variable-guard evaluation and Apply-head
// matching need, so core/match stays independent of core/rewrite and
// core/operator: core/rewrite's Engine.Rewrite wires these closures for
// each top-level rewrite call.
type Matcher struct {
	Opts Options

	// GuardRewriter evaluates a guard that is itself a Rewriter (case (a)).
	GuardRewriter GuardRewriterHook
	// GuardApplicable evaluates a guard that is itself Applicable (case (b)).
	GuardApplicable GuardApplicableHook
	// RewriteUnderRules rewrites an atom under the active rulesets (guard
	// case (c), and used recursively by rule application).
	RewriteUnderRules RewriteHook
}

func timedOut(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Match implements the matcher's public operation: match(pattern, subject,
// binds, hint) -> Outcome (spec section 4.5).
func (m *Matcher) Match(ctx context.Context, pattern, subject atom.Atom, binds *atom.Bindings, hint atom.Atom) Outcome {
	if timedOut(ctx) {
		return Fail("Timed out", pattern, subject, nil)
	}

	if isAnyAtom(pattern) && !isBindable(pattern) {
		return Match(binds)
	}

	if pattern.Depth() > subject.Depth() {
		return Fail("depth mismatch", pattern, subject, nil)
	}

	if pattern.IsConstant() && atom.FastEqual(pattern, subject, m.Opts.Risky, m.Opts.Custom) && atom.Compare(pattern, subject) == 0 {
		return Match(binds)
	}

	if out, handled := m.matchTypes(ctx, pattern, subject, binds); handled && !out.Ok() {
		return out
	} else if handled {
		binds = out.Binds
	}

	switch p := pattern.(type) {
	case *atom.Literal:
		return m.matchLiteral(p, subject, binds)
	case *atom.Variable:
		return m.matchVariable(ctx, p.Name, p.Guard, p.ByName, p.Labels, subject, binds)
	case *atom.MetaVariable:
		return m.matchVariable(ctx, p.Name, p.Guard, p.ByName, p.Labels, subject, binds)
	case atom.ApplyAtom:
		return m.matchApply(ctx, p, subject, binds)
	case *atom.AtomSeq:
		return m.matchAtomSeq(ctx, p, subject, binds)
	case *atom.Lambda:
		return m.matchLambda(ctx, p, subject, binds)
	case *atom.NamedRootType:
		return m.matchRootType(p, subject, binds)
	case *atom.RulesetRef, *atom.OperatorRef, *atom.MapPair, *atom.BindingsAtom, *atom.MatchAtom, *atom.SpecialForm, *atom.AlgProp:
		if atom.Compare(pattern, subject) == 0 {
			return Match(binds)
		}
		return Fail("not structurally equal", pattern, subject, nil)
	default:
		return Fail("unsupported pattern variant", pattern, subject, nil)
	}
}

// hashGuardedEqual is atom.Compare(a, b) == 0 with a cheap fingerprint
// pre-check: atoms with differing (Hash, OtherHash) pairs can never be
// structurally equal, so this skips the full Compare recursion for the
// overwhelmingly common case of a non-matching atom (e.g. a repeated
// pattern variable's already-bound value against a fresh subject).
func hashGuardedEqual(a, b atom.Atom) bool {
	if a.Hash() != b.Hash() || a.OtherHash() != b.OtherHash() {
		return false
	}
	return atom.Compare(a, b) == 0
}

func isAnyAtom(a atom.Atom) bool {
	nrt, ok := a.(*atom.NamedRootType)
	return ok && nrt.IsAny()
}

func isNoneAtom(a atom.Atom) bool {
	nrt, ok := a.(*atom.NamedRootType)
	return ok && nrt.IsNone()
}

func isBindable(a atom.Atom) bool {
	switch a.(type) {
	case *atom.Variable, *atom.MetaVariable:
		return true
	default:
		return false
	}
}

// matchTypes matches pattern.Type() against subject.Type() before variant
// dispatch (spec section 4.5). handled is false only when both sides are
// self-typed (the Type Universe), so recursion can short-circuit rather
// than loop.
func (m *Matcher) matchTypes(ctx context.Context, pattern, subject atom.Atom, binds *atom.Bindings) (Outcome, bool) {
	pt, st := pattern.Type(), subject.Type()
	if pt == pattern && st == subject {
		return Outcome{}, false
	}
	if isAnyAtom(pt) {
		return Match(binds), true
	}
	out := m.Match(ctx, pt, st, binds, nil)
	if out.Kind == KindMany {
		// Type positions are overwhelmingly non-ambiguous in practice;
		// take the first solution rather than threading a full
		// multiplexed type-match through every variant dispatch below.
		b, ok := out.Many()
		if !ok {
			return Fail("type mismatch", pattern, subject, &out), true
		}
		return Match(b), true
	}
	return out, true
}

func (m *Matcher) matchRootType(pattern *atom.NamedRootType, subject atom.Atom, binds *atom.Bindings) Outcome {
	if pattern.IsAny() {
		return Match(binds)
	}
	if pattern.IsNone() {
		if isNoneAtom(subject) || isAnyAtom(subject) {
			return Match(binds)
		}
		return Fail("NONE matches only itself and ANY", pattern, subject, nil)
	}
	if atom.Compare(pattern, subject) == 0 {
		return Match(binds)
	}
	return Fail("root types match only themselves", pattern, subject, nil)
}

func (m *Matcher) matchLiteral(pattern *atom.Literal, subject atom.Atom, binds *atom.Bindings) Outcome {
	s, ok := subject.(*atom.Literal)
	if !ok {
		return Fail("literal vs non-literal", pattern, subject, nil)
	}
	if pattern.Equal(s) {
		return Match(binds)
	}
	return Fail("literal value mismatch", pattern, subject, nil)
}

func (m *Matcher) matchLambda(ctx context.Context, pattern *atom.Lambda, subject atom.Atom, binds *atom.Bindings) Outcome {
	s, ok := subject.(*atom.Lambda)
	if !ok {
		return Fail("lambda vs non-lambda", pattern, subject, nil)
	}
	// Bodies already carry De Bruijn-substituted bound variables (atom
	// invariant I8), so matching bodies directly is alpha-aware matching.
	return m.Match(ctx, pattern.Body, s.Body, binds, nil)
}
