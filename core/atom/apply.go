package atom

import "strings"

// ApplyAtom is implemented by both Apply refinements (SimpleApply,
// OpApply): an operator-atom applied to an argument-atom.
type ApplyAtom interface {
	Atom
	Operator() Atom
	Argument() Atom
}

// ApplyOperator returns a's operator if a is an ApplyAtom, else nil.
func ApplyOperator(a Atom) Atom {
	if ap, ok := a.(ApplyAtom); ok {
		return ap.Operator()
	}
	return nil
}

// ApplyArgument returns a's argument if a is an ApplyAtom, else nil.
func ApplyArgument(a Atom) Atom {
	if ap, ok := a.(ApplyAtom); ok {
		return ap.Argument()
	}
	return nil
}

// SimpleApply is the fallback Apply refinement used when the head is not an
// Applicable/Rewriter, or when the argument is a meta-term (spec section
// 4.6, Apply smart constructor step 1).
type SimpleApply struct {
	base
	op  Atom
	arg Atom
}

func (a *SimpleApply) Operator() Atom { return a.op }
func (a *SimpleApply) Argument() Atom { return a.arg }

// NewSimpleApply constructs a SimpleApply(op, arg) of type typ.
func NewSimpleApply(op, arg, typ Atom) *SimpleApply {
	a := &SimpleApply{base: base{kind: KindApply, typ: typ}, op: op, arg: arg}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, op)
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, arg)
	a.depth, a.isConstant, a.isTerm, a.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindApply)
	acc.writeUint(0) // tag: SimpleApply
	acc.writeAtom(op)
	acc.writeAtom(arg)
	acc.writeAtom(typ)
	a.hash, a.otherHash = acc.sums()
	return a
}

// OpApply is the Apply refinement used when the operator is a named
// operator reference and the argument is an AtomSeq: it carries the
// parameter->argument binding used to instantiate the operator's declared
// return type (spec section 3).
type OpApply struct {
	base
	opRef   *OperatorRef
	arg     *AtomSeq
	binding *Bindings
}

func (a *OpApply) Operator() Atom     { return a.opRef }
func (a *OpApply) Argument() Atom     { return a.arg }
func (a *OpApply) ArgSeq() *AtomSeq   { return a.arg }
func (a *OpApply) Binding() *Bindings { return a.binding }

// NewOpApply constructs an OpApply of type typ.
func NewOpApply(opRef *OperatorRef, arg *AtomSeq, binding *Bindings, typ Atom) *OpApply {
	a := &OpApply{base: base{kind: KindApply, typ: typ}, opRef: opRef, arg: arg, binding: binding}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, opRef)
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, arg)
	a.depth, a.isConstant, a.isTerm, a.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindApply)
	acc.writeUint(1) // tag: OpApply
	acc.writeAtom(opRef)
	acc.writeAtom(arg)
	acc.writeAtom(typ)
	a.hash, a.otherHash = acc.sums()
	return a
}

func parenthesizeOperator(op Atom) string {
	s := op.String()
	needsParens := false
	if _, ok := op.(ApplyAtom); ok {
		needsParens = true
	}
	if lit, ok := op.(*Literal); ok && lit.LitKind() == LitInteger {
		needsParens = true
	}
	if needsParens {
		return "(" + s + ")"
	}
	return s
}

func (a *SimpleApply) String() string {
	if opLit, ok := a.op.(*Literal); ok && opLit.LitKind() == LitString {
		if argLit, ok := a.arg.(*Literal); ok && argLit.LitKind() == LitString {
			return "\"" + opLit.strVal + argLit.strVal + "\""
		}
	}
	return parenthesizeOperator(a.op) + " " + a.arg.String()
}

func (a *OpApply) String() string {
	parts := make([]string, len(a.arg.Elements))
	for i, e := range a.arg.Elements {
		parts[i] = e.String()
	}
	return a.opRef.String() + "(" + strings.Join(parts, ", ") + ")"
}
