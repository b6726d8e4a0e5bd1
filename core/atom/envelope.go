package atom

// MatchAtom and SpecialForm are tagged envelopes (spec section 3, ordinals
// 9 and 10) used by core/rules and core/operator to represent rules and
// strategies uniformly as atoms. This package only defines their shape;
// interpreting Content (validating it is a well-formed rule/strategy
// binding) is core/rules' and core/operator's job (spec section 7,
// "Special-form shape" errors are raised by their constructors, not here).
type MatchAtom struct {
	base
	Content Atom
}

// NewMatchAtom wraps content (typically a MapPair of pattern -> rewrite,
// paired with guards) as a MatchAtom of type typ.
func NewMatchAtom(content, typ Atom) *MatchAtom {
	m := &MatchAtom{base: base{kind: KindMatchAtom, typ: typ}, Content: content}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, content)
	m.depth, m.isConstant, m.isTerm, m.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindMatchAtom)
	acc.writeAtom(content)
	acc.writeAtom(typ)
	m.hash, m.otherHash = acc.sums()
	return m
}

func (m *MatchAtom) String() string { return "Rule[" + m.Content.String() + "]" }

// SpecialForm is a tagged strategy envelope: Tag names the strategy kind
// (e.g. "RulesetStrategy", "MapStrategy"), Content its configuration atom.
type SpecialForm struct {
	base
	Tag     string
	Content Atom
}

// NewSpecialForm constructs a tagged SpecialForm of type typ.
func NewSpecialForm(tag string, content, typ Atom) *SpecialForm {
	f := &SpecialForm{base: base{kind: KindSpecialForm, typ: typ}, Tag: tag, Content: content}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, content)
	f.depth, f.isConstant, f.isTerm, f.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindSpecialForm)
	acc.writeString(tag)
	acc.writeAtom(content)
	acc.writeAtom(typ)
	f.hash, f.otherHash = acc.sums()
	return f
}

func (f *SpecialForm) String() string { return f.Tag + "[" + f.Content.String() + "]" }
