package rewrite

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/operator"
)

// evenMeta reports whether op's resolved operator opts out of the smart
// constructor's default meta-term short-circuit (step 1). An op that
// doesn't resolve to a registered operator at all defaults to false.
func (c *call) evenMeta(op atom.Atom) bool {
	resolved, ok := c.resolveOperator(op)
	if !ok {
		return false
	}
	aware, ok := resolved.(operator.EvenMetaAware)
	return ok && aware.EvenMeta()
}

func stringLiteral(a atom.Atom) (*atom.Literal, bool) {
	lit, ok := a.(*atom.Literal)
	if !ok || lit.LitKind() != atom.LitString {
		return nil, false
	}
	return lit, true
}

// smartApply implements the Apply smart constructor (spec section 4.6): the
// five-step decision procedure that replaces virtual dispatch on "any atom
// can be a head" with an explicit, ordered check (Design Notes,
// "Polymorphism over any atom can be a head").
func (c *call) smartApply(ctx context.Context, op, arg atom.Atom, bypass bool, typ atom.Atom) (atom.Atom, error) {
	c.applyDepth++
	defer func() { c.applyDepth-- }()
	if c.applyDepth > c.engine.MaxApplyDepth {
		return nil, ErrUnboundedRecursion
	}

	// Step 1: a meta-term argument short-circuits unless the operator
	// explicitly opts in.
	if !arg.IsTerm() && !c.evenMeta(op) {
		return atom.NewSimpleApply(op, arg, typ), nil
	}

	// Step 2: string-literal concatenation.
	if opLit, ok := stringLiteral(op); ok {
		if argLit, ok := stringLiteral(arg); ok {
			return atom.NewString(opLit.StringValue()+argLit.StringValue(), opLit.Type()), nil
		}
	}

	resolved, ok := c.resolveOperator(op)
	if ok {
		// Step 3: Applicable dispatch, skipped under bypass so a native
		// handler can call back into its own operator without re-entering it.
		if ap, ok := resolved.(operator.Applicable); ok && ap.IsApplicable() && !bypass {
			result, err := ap.ApplyTo(ctx, operator.ApplyData{Operator: op, Arg: arg, Bypass: bypass})
			if err != nil {
				return nil, err
			}
			return result, nil
		}

		// Step 4: Rewriter dispatch, wrapped as a bindings atom with keys
		// "atom" and "flag".
		if rw, ok := resolved.(operator.Rewriter); ok {
			result, fired := rw.DoRewrite(ctx, arg, nil)
			binds := atom.NewBindings().Plus("atom", result).Plus("flag", atom.NewBoolean(fired, c.engine.AnyType))
			return atom.NewBindingsAtom(binds, c.engine.AnyType), nil
		}
	}

	// Step 5: fallback.
	return atom.NewSimpleApply(op, arg, typ), nil
}

// rebuildApply rewrites an ApplyAtom's operator and argument independently
// (each to quiescence) and reconstructs via the smart constructor, per
// spec section 4.6's "an Apply rewrites operator and argument
// independently, then re-constructs via the Apply smart constructor".
func (c *call) rebuildApply(ctx context.Context, a atom.ApplyAtom, binds *atom.Bindings) (atom.Atom, bool, error) {
	c.engine.Trace.Push(c.session, a, a.Operator())
	op, _ := c.rewriteToQuiescence(ctx, a.Operator(), binds)
	c.engine.Trace.Pop(c.session, a, op)

	c.engine.Trace.Push(c.session, a, a.Argument())
	arg, _ := c.rewriteToQuiescence(ctx, a.Argument(), binds)
	c.engine.Trace.Pop(c.session, a, arg)

	// The smart constructor runs every visit, not only when a child
	// changed: an Apply built directly over already-quiescent children
	// (e.g. a freshly-constructed string concatenation) still needs its
	// steps 2-5 decision applied at least once.
	rebuilt, err := c.smartApply(ctx, op, arg, false, a.Type())
	if err != nil {
		return nil, false, err
	}
	// Structural, not pointer, comparison: the smart constructor's fallback
	// (step 5) allocates a fresh SimpleApply even when op/arg are
	// unchanged, and that must not look like a change or quiescence would
	// never be reached.
	if atom.Compare(rebuilt, a) == 0 {
		return a, false, nil
	}
	return rebuilt, true, nil
}
