package atom

// RulesetRef and OperatorRef are named handles (spec section 3, ordinals 11
// and 12): lightweight atoms carrying just a name, resolved against the
// ruleset/operator registries (core/rules, core/operator) at rewrite time.
type RulesetRef struct {
	base
	Name string
}

// NewRulesetRef constructs a named ruleset handle of type typ.
func NewRulesetRef(name string, typ Atom) *RulesetRef {
	r := &RulesetRef{base: base{kind: KindRulesetRef, typ: typ, isConstant: true, isTerm: true}, Name: name}
	acc := newHashAccumulator(KindRulesetRef)
	acc.writeString(name)
	acc.writeAtom(typ)
	r.hash, r.otherHash = acc.sums()
	return r
}

func (r *RulesetRef) String() string { return "ruleset:" + r.Name }

// OperatorRef is a named operator handle.
type OperatorRef struct {
	base
	Name string
}

// NewOperatorRef constructs a named operator handle of type typ.
func NewOperatorRef(name string, typ Atom) *OperatorRef {
	r := &OperatorRef{base: base{kind: KindOperatorRef, typ: typ, isConstant: true, isTerm: true}, Name: name}
	acc := newHashAccumulator(KindOperatorRef)
	acc.writeString(name)
	acc.writeAtom(typ)
	r.hash, r.otherHash = acc.sums()
	return r
}

func (r *OperatorRef) String() string { return r.Name }
