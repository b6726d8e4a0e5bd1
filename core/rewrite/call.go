package rewrite

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/match"
	"github.com/elision/elision-sub001/core/rules"
	"github.com/google/uuid"
)

// call carries the state scoped to one top-level Rewrite invocation: the
// active ruleset names and their cache key, the matcher wired with this
// call's guard-evaluation hooks, the trace session ID, and the Apply
// smart-constructor recursion depth.
type call struct {
	engine       *Engine
	rulesetNames []string
	activeKey    string
	session      uuid.UUID
	matcher      *match.Matcher
	applyDepth   int
}

func timedOut(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func sameAtom(a, b atom.Atom) bool { return a == b }

// Rewrite is the rewriter's public entry point: rewrite a under binds to
// quiescence against rulesetNames (spec section 4.6). session correlates
// trace events; pass uuid.Nil if no observer is configured.
func (e *Engine) Rewrite(ctx context.Context, a atom.Atom, binds *atom.Bindings, rulesetNames []string, session uuid.UUID) (atom.Atom, bool) {
	activeKey := rules.NewActiveSet(e.Rulesets, rulesetNames).Key()
	c := &call{engine: e, rulesetNames: rulesetNames, activeKey: activeKey, session: session}
	c.matcher = &match.Matcher{
		Opts:              match.Options{Risky: e.RiskyEquality, Custom: e.CustomEquality},
		GuardRewriter:     c.guardRewriter,
		GuardApplicable:   c.guardApplicable,
		RewriteUnderRules: c.rewriteUnder,
	}
	return c.rewriteToQuiescence(ctx, a, binds)
}

func (c *call) rewriteUnder(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
	return c.rewriteToQuiescence(ctx, a, binds)
}

// rewriteToQuiescence implements spec section 4.6's fixed-point
// application of rules on top of the smart constructor and the rule
// library: consult the memo, try rules at the current node, and on no
// firing descend into children, rebuild, and retry at the current node
// until quiescence.
func (c *call) rewriteToQuiescence(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
	if timedOut(ctx) {
		return a, true
	}

	lookup := c.engine.Cache.Get(a, c.activeKey)
	if lookup.Hit {
		return lookup.Atom, !sameAtom(lookup.Atom, a)
	}

	if result, fired := c.engine.Rules.Apply(ctx, c.matcher, a, c.rulesetNames, c.rewriteUnder); fired {
		c.engine.Trace.RewriteStep(c.session, a, result, "rule")
		c.engine.Trace.NodeCreated(c.session, result)
		c.engine.Cache.Put(a, result, 0, c.activeKey)
		return result, true
	}

	childResult, childChanged := c.descendChildren(ctx, a, binds)
	if !childChanged {
		c.engine.Cache.Put(a, a, 0, c.activeKey)
		return a, false
	}

	c.engine.Trace.NodeCreated(c.session, childResult)
	final, _ := c.rewriteToQuiescence(ctx, childResult, binds)
	c.engine.Cache.Put(a, final, 1, c.activeKey)
	return final, true
}
