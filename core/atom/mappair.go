package atom

// MapPair represents a rule's pattern/rewrite pair, or more generally any
// left/right association (spec section 3, ordinal 8).
type MapPair struct {
	base
	Left  Atom
	Right Atom
}

// NewMapPair constructs a (left -> right) pair of type typ.
func NewMapPair(left, right, typ Atom) *MapPair {
	p := &MapPair{base: base{kind: KindMapPair, typ: typ}, Left: left, Right: right}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, left)
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, right)
	p.depth, p.isConstant, p.isTerm, p.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindMapPair)
	acc.writeAtom(left)
	acc.writeAtom(right)
	acc.writeAtom(typ)
	p.hash, p.otherHash = acc.sums()
	return p
}

func (p *MapPair) String() string {
	return "(" + p.Left.String() + " -> " + p.Right.String() + ")"
}
