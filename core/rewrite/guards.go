package rewrite

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/operator"
)

// resolveOperator resolves guard to a registered operator.Operator when
// guard is an OperatorRef, returning ok=false for any other shape (an
// inline Rewriter/Applicable guard atom, a CaseOperator wrapped in a
// MatchAtom, etc. have no registry identity to resolve).
func (c *call) resolveOperator(guard atom.Atom) (operator.Operator, bool) {
	ref, ok := guard.(*atom.OperatorRef)
	if !ok {
		return nil, false
	}
	op, err := c.engine.Operators.Get(ref.Name)
	if err != nil {
		return nil, false
	}
	return op, true
}

// guardRewriter implements match.GuardRewriterHook (spec section 4.5,
// Variable-vs-s case (a)).
func (c *call) guardRewriter(ctx context.Context, guard, s atom.Atom) (result atom.Atom, fired, isRewriter bool) {
	op, ok := c.resolveOperator(guard)
	if !ok {
		return nil, false, false
	}
	rw, ok := op.(operator.Rewriter)
	if !ok {
		return nil, false, false
	}
	result, fired = rw.DoRewrite(ctx, s, nil)
	return result, fired, true
}

// guardApplicable implements match.GuardApplicableHook (case (b)).
func (c *call) guardApplicable(ctx context.Context, guard, s atom.Atom) (result atom.Atom, isApplicable bool, err error) {
	op, ok := c.resolveOperator(guard)
	if !ok {
		return nil, false, nil
	}
	ap, ok := op.(operator.Applicable)
	if !ok || !ap.IsApplicable() {
		return nil, false, nil
	}
	result, err = ap.ApplyTo(ctx, operator.ApplyData{Operator: guard, Arg: s})
	return result, true, err
}
