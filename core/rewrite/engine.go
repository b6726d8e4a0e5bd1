// Package rewrite implements the rewriter (spec component C6): the
// structural rewrite function, the Apply smart constructor, and
// fixed-point rule application on top of core/rules and core/cache.
package rewrite

import (
	"errors"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/cache"
	"github.com/elision/elision-sub001/core/operator"
	"github.com/elision/elision-sub001/core/rules"
	"github.com/elision/elision-sub001/core/trace"
)

// ErrUnboundedRecursion is returned by the Apply smart constructor in place
// of a stack overflow (spec section 4.6): Go cannot recover from a real
// stack overflow, so a bounded recursion counter stands in for "the host
// would have crashed here".
var ErrUnboundedRecursion = errors.New("rewrite: unbounded recursion in Apply")

// Engine owns the shared, rewrite-scoped collaborators: the operator
// registry, the ruleset bit registry, the rule library, and the memo
// cache, plus the trace observer. It has no per-session state;
// core/executor.Session supplies the per-call ruleset scope and deadline.
type Engine struct {
	Operators *operator.Registry
	Rulesets  *rules.RulesetRegistry
	Rules     *rules.Library
	Cache     *cache.Cache
	Trace     trace.Observer

	// AnyType backs atoms the engine synthesizes itself (the Apply smart
	// constructor's Rewriter-wrapping bindings atom and its "flag") when no
	// more specific type is at hand.
	AnyType atom.Atom

	RiskyEquality  bool
	CustomEquality bool
	// MaxApplyDepth bounds Apply-smart-constructor re-entrancy (see
	// ErrUnboundedRecursion).
	MaxApplyDepth int
}

// NewEngine wires the given collaborators into an Engine. observer may be
// nil (treated as trace.NoopObserver{}).
func NewEngine(operators *operator.Registry, rulesetReg *rules.RulesetRegistry, lib *rules.Library, c *cache.Cache, anyType atom.Atom, observer trace.Observer) *Engine {
	if observer == nil {
		observer = trace.NoopObserver{}
	}
	return &Engine{
		Operators:     operators,
		Rulesets:      rulesetReg,
		Rules:         lib,
		Cache:         c,
		Trace:         observer,
		AnyType:       anyType,
		MaxApplyDepth: 4096,
	}
}
