package rules

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/match"
)

// RewriteFunc rewrites a under binds to quiescence against a ruleset scope
// (core/rewrite supplies this; core/rules never imports core/rewrite, to
// avoid the obvious cycle between "rewrite calls apply" and "apply calls
// rewrite").
type RewriteFunc func(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool)

// Apply implements the rule-library apply procedure (spec section 4.7): try
// each candidate rule's pattern against subject in declared order; for the
// first binding set whose every guard rewrites to literal true, instantiate
// the rule's right-hand side under those bindings and return (result,
// true). No candidate succeeding returns (subject, false).
func (l *Library) Apply(ctx context.Context, m *match.Matcher, subject atom.Atom, rulesetNames []string, rewriteFn RewriteFunc) (atom.Atom, bool) {
	for _, r := range l.GetRules(subject, rulesetNames) {
		seq := m.Match(ctx, r.Pattern, subject, atom.NewBindings(), nil).AsSeq()
		for {
			binds, ok := seq()
			if !ok {
				break
			}
			if !guardsHold(ctx, r.Guards, binds, rewriteFn) {
				continue
			}
			result, _ := rewriteFn(ctx, r.Rewrite, binds)
			return result, true
		}
	}
	return subject, false
}

func guardsHold(ctx context.Context, guards []atom.Atom, binds *atom.Bindings, rewriteFn RewriteFunc) bool {
	for _, g := range guards {
		result, _ := rewriteFn(ctx, g, binds)
		lit, ok := result.(*atom.Literal)
		if !ok || lit.LitKind() != atom.LitBoolean || !lit.BooleanValue() {
			return false
		}
	}
	return true
}
