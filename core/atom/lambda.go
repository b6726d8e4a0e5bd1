package atom

// deBruijnRef is the internal marker that replaces a lambda-bound
// variable's occurrences inside its body (glossary: "De Bruijn index").
// It is not one of the atom variants spec section 3 enumerates for parser
// input; it only ever appears inside a Lambda's Body, constructed by
// NewLambda, so that two lambdas are alpha-equivalent iff their bodies are
// equal after this substitution (invariant I8).
type deBruijnRef struct {
	base
	index int
}

// kindDeBruijnRef is intentionally outside the spec's 13 public ordinals
// (section 3): it never appears in parser input, only inside a Lambda's
// Body, so it needs a Kind distinct from KindVariable purely so Compare's
// per-Kind field comparison does not mis-assert a deBruijnRef as a
// *Variable.
const kindDeBruijnRef Kind = 1000

func newDeBruijnRef(index int, typ Atom) *deBruijnRef {
	r := &deBruijnRef{base: base{kind: kindDeBruijnRef, typ: typ, isConstant: false, isTerm: true}, index: index}
	r.deBruijn = index + 1
	acc := newHashAccumulator(KindVariable)
	acc.writeUint(0xDEB0000 | uint64(index))
	acc.writeAtom(typ)
	r.hash, r.otherHash = acc.sums()
	return r
}

func (r *deBruijnRef) String() string { return "#" + itoa(r.index) }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Lambda is a bound variable plus a body in which every occurrence of that
// variable (not shadowed by an inner lambda reusing the same name) has been
// replaced by a De Bruijn reference (spec section 3, ordinal 7).
type Lambda struct {
	base
	BoundName string
	BoundType Atom
	Body      Atom
}

// NewLambda constructs a Lambda binding boundVar over rawBody, performing
// the De Bruijn substitution spec section 3 requires.
func NewLambda(boundVar *Variable, rawBody Atom, typ Atom) *Lambda {
	body := substituteDeBruijn(rawBody, boundVar.Name, 0)
	l := &Lambda{
		base:      base{kind: KindLambda, typ: typ, isConstant: boundVar.isConstant},
		BoundName: boundVar.Name,
		BoundType: boundVar.typ,
		Body:      body,
	}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, body)
	l.depth, l.isConstant, l.isTerm = depth+1, isConstant, isTerm
	if deBruijn > 0 {
		l.deBruijn = deBruijn - 1
	}

	acc := newHashAccumulator(KindLambda)
	acc.writeAtom(boundVar.typ)
	acc.writeAtom(body)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l
}

// substituteDeBruijn replaces every unshadowed occurrence of the variable
// named `name` in body with a reference at De Bruijn level `level`,
// recursing through the composite atom variants that can contain it.
func substituteDeBruijn(body Atom, name string, level int) Atom {
	switch v := body.(type) {
	case *Variable:
		if v.Name == name {
			return newDeBruijnRef(level, v.typ)
		}
		return v
	case *Lambda:
		if v.BoundName == name {
			return v // shadowed: inner binder owns this name from here down
		}
		return v.WithBody(substituteDeBruijn(v.Body, name, level+1))
	case *AtomSeq:
		elems := make([]Atom, len(v.Elements))
		changed := false
		for i, e := range v.Elements {
			elems[i] = substituteDeBruijn(e, name, level)
			if elems[i] != e {
				changed = true
			}
		}
		if !changed {
			return v
		}
		return NewAtomSeq(v.Props, elems, v.typ)
	case *SimpleApply:
		op := substituteDeBruijn(v.op, name, level)
		arg := substituteDeBruijn(v.arg, name, level)
		if op == v.op && arg == v.arg {
			return v
		}
		return NewSimpleApply(op, arg, v.typ)
	case *OpApply:
		argAny := substituteDeBruijn(v.arg, name, level)
		arg, ok := argAny.(*AtomSeq)
		if !ok || arg == v.arg {
			return v
		}
		return NewOpApply(v.opRef, arg, v.binding, v.typ)
	case *MapPair:
		left := substituteDeBruijn(v.Left, name, level)
		right := substituteDeBruijn(v.Right, name, level)
		if left == v.Left && right == v.Right {
			return v
		}
		return NewMapPair(left, right, v.typ)
	default:
		return body
	}
}

// WithBody returns a Lambda with the same bound name/type but a different
// (already De Bruijn-indexed) body, recomputing derived fields. Used by the
// rewriter, which rewrites Body directly rather than re-running the name
// substitution NewLambda performs on construction.
func (l *Lambda) WithBody(newBody Atom) *Lambda {
	out := &Lambda{base: base{kind: KindLambda, typ: l.typ, isConstant: l.isConstant}, BoundName: l.BoundName, BoundType: l.BoundType, Body: newBody}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, newBody)
	out.depth, out.isConstant, out.isTerm = depth+1, isConstant, isTerm
	if deBruijn > 0 {
		out.deBruijn = deBruijn - 1
	}
	acc := newHashAccumulator(KindLambda)
	acc.writeAtom(l.BoundType)
	acc.writeAtom(newBody)
	acc.writeAtom(l.typ)
	out.hash, out.otherHash = acc.sums()
	return out
}

func (l *Lambda) String() string {
	return "\\" + l.BoundName + "." + l.Body.String()
}
