package operator

import (
	"context"

	"github.com/elision/elision-sub001/core/atom"
)

// SymbolicOperator is a formal parameter list with an optional native
// handler; ReturnType is nil unless the operator declares one, which is
// what distinguishes it from a TypedSymbolicOperator.
type SymbolicOperator struct {
	Name       string
	Params     []string
	ParamTypes []atom.Atom
	ReturnType atom.Atom
	Native     NativeHandler

	// AllowMeta reports as this operator's EvenMeta: true means the
	// operator accepts a meta-term argument rather than having the Apply
	// smart constructor short-circuit to SimpleApply (spec section 4.6
	// step 1).
	AllowMeta bool
}

// NewSymbolicOperator constructs an untyped symbolic operator.
func NewSymbolicOperator(name string, params []string, paramTypes []atom.Atom, native NativeHandler) *SymbolicOperator {
	return &SymbolicOperator{Name: name, Params: params, ParamTypes: paramTypes, Native: native}
}

// NewTypedSymbolicOperator constructs a symbolic operator with a declared
// return type (spec section 4.9's TypedSymbolicOperator).
func NewTypedSymbolicOperator(name string, params []string, paramTypes []atom.Atom, returnType atom.Atom, native NativeHandler) *SymbolicOperator {
	return &SymbolicOperator{Name: name, Params: params, ParamTypes: paramTypes, ReturnType: returnType, Native: native}
}

// IsApplicable reports whether this operator carries a native handler.
func (o *SymbolicOperator) IsApplicable() bool { return o.Native != nil }

// EvenMeta implements operator.EvenMetaAware.
func (o *SymbolicOperator) EvenMeta() bool { return o.AllowMeta }

// ApplyTo zips Params against arg's elements when arg is an AtomSeq
// (otherwise binds arg to the first parameter) and invokes Native.
func (o *SymbolicOperator) ApplyTo(ctx context.Context, data ApplyData) (atom.Atom, error) {
	if o.Native == nil {
		return data.Arg, nil
	}
	if data.Bindings == nil {
		data.Bindings = zipParams(o.Params, data.Arg)
	}
	return o.Native(ctx, data)
}

func zipParams(params []string, arg atom.Atom) *atom.Bindings {
	b := atom.NewBindings()
	if seq, ok := arg.(*atom.AtomSeq); ok {
		for i, p := range params {
			if i >= len(seq.Elements) {
				break
			}
			b = b.Plus(p, seq.Elements[i])
		}
		return b
	}
	if len(params) > 0 {
		b = b.Plus(params[0], arg)
	}
	return b
}
