package rewrite

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/operator"
	"github.com/google/uuid"
)

// NewRulesetStrategy builds an operator.RulesetStrategy scoped to
// rulesetNames, independent of whatever ruleset scope the caller's own
// top-level Rewrite call is using (spec section 4.6's ruleset-strategy
// rewrites "under a set of active ruleset names" of its own, not its
// caller's).
func (e *Engine) NewRulesetStrategy(name string, rulesetNames []string, session uuid.UUID) *operator.RulesetStrategy {
	rewriteFn := func(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
		return e.Rewrite(ctx, a, binds, rulesetNames, session)
	}
	return operator.NewRulesetStrategy(name, rewriteFn)
}
