package operator

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/match"
	"github.com/elision/elision-sub001/core/rules"
)

// CaseOperator is a sequence of rewrite rules acting as pattern-directed
// cases (spec section 4.9). Matcher and Rewrite are supplied by the caller
// of NewCaseOperator, so this package never needs to import core/rewrite.
type CaseOperator struct {
	Name    string
	Cases   *rules.Library
	Matcher *match.Matcher
	Rewrite rules.RewriteFunc
}

// NewCaseOperator constructs a case operator over an empty rule library;
// callers add cases with Cases.Add.
func NewCaseOperator(name string, m *match.Matcher, rewriteFn rules.RewriteFunc) *CaseOperator {
	return &CaseOperator{Name: name, Cases: rules.NewLibrary(), Matcher: m, Rewrite: rewriteFn}
}

// DoRewrite tries every case against a in declared order, returning the
// first firing (spec section 4.6's Rewriter interface).
func (o *CaseOperator) DoRewrite(ctx context.Context, a, hint atom.Atom) (atom.Atom, bool) {
	rulesetNames := o.Cases.Rulesets()
	return o.Cases.Apply(ctx, o.Matcher, a, rulesetNames, o.Rewrite)
}

// EvenMeta implements operator.EvenMetaAware: a case operator matches
// patterns structurally, so a meta-term argument would never match any
// case and should short-circuit to SimpleApply like any other operator
// without an explicit opt-in.
func (o *CaseOperator) EvenMeta() bool { return false }
