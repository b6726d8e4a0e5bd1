// Package operator implements the operator library (spec component C9):
// the named registry, the two operator shapes (CaseOperator,
// SymbolicOperator/TypedSymbolicOperator), and the capability interfaces
// the Apply smart constructor (core/rewrite) dispatches on.
package operator

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// ApplyData is what a native handler receives: the operator atom itself,
// the raw argument atom, the parameter name -> argument value bindings (for
// a SymbolicOperator, built by zipping Params against Arg's elements), and
// whether this invocation must bypass re-entry into the same operator
// (spec section 4.6, "bypass").
type ApplyData struct {
	Operator atom.Atom
	Arg      atom.Atom
	Bindings *atom.Bindings
	Bypass   bool
}

// NativeHandler computes an operator's result directly, without going
// through rule matching. It may recursively invoke the Apply smart
// constructor with bypass=true to call back into its own operator without
// looping.
type NativeHandler func(ctx context.Context, data ApplyData) (atom.Atom, error)

// Applicable is implemented by an operator that can be invoked directly
// (Apply smart constructor step 3). IsApplicable lets a caller check before
// invoking, since not every SymbolicOperator carries a native handler.
type Applicable interface {
	IsApplicable() bool
	ApplyTo(ctx context.Context, data ApplyData) (atom.Atom, error)
}

// Rewriter is implemented by an operator that behaves like a rewrite rule
// set (Apply smart constructor step 4, and spec section 4.6's "Rewriter
// interface"). CaseOperator, RulesetStrategy and MapStrategy implement it;
// rules.Rule does not, and rules fire only through rules.Library.Apply.
type Rewriter interface {
	DoRewrite(ctx context.Context, a, hint atom.Atom) (atom.Atom, bool)
}

// EvenMetaAware is implemented by an operator that opts out of the Apply
// smart constructor's default step 1 (a meta-term argument short-circuits
// to SimpleApply): EvenMeta reporting true means this operator accepts
// meta-term arguments and should proceed to steps 2-5 regardless.
type EvenMetaAware interface {
	EvenMeta() bool
}
