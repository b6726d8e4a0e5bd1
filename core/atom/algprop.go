package atom

// AlgProp is the algebraic-property descriptor atom (spec component C3):
// up to five optional atoms describing associativity, commutativity,
// idempotence, an absorber element, and an identity element. The boolean
// flags are themselves atoms (usually a Literal boolean) because they may
// be unknown until rewrite resolves them.
type AlgProp struct {
	base
	Associative Atom // nil if absent
	Commutative Atom // nil if absent
	Idempotent  Atom // nil if absent
	Absorber    Atom // nil if absent
	Identity    Atom // nil if absent
}

// NewAlgProp constructs an AlgProp from up to five optional component
// atoms. Any argument may be nil to mean "absent".
func NewAlgProp(typ Atom, associative, commutative, idempotent, absorber, identity Atom) *AlgProp {
	p := &AlgProp{
		base:        base{kind: KindAlgProp, typ: typ, isConstant: true, isTerm: true},
		Associative: associative,
		Commutative: commutative,
		Idempotent:  idempotent,
		Absorber:    absorber,
		Identity:    identity,
	}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	for _, c := range []Atom{associative, commutative, idempotent, absorber, identity} {
		childDerived(&depth, &isConstant, &isTerm, &deBruijn, c)
	}
	p.depth, p.isConstant, p.isTerm, p.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindAlgProp)
	acc.writeAtom(associative)
	acc.writeAtom(commutative)
	acc.writeAtom(idempotent)
	acc.writeAtom(absorber)
	acc.writeAtom(identity)
	acc.writeAtom(typ)
	p.hash, p.otherHash = acc.sums()
	return p
}

// EmptyAlgProp is the descriptor for a plain (non-algebraic) sequence: all
// five components absent.
func EmptyAlgProp(typ Atom) *AlgProp {
	return NewAlgProp(typ, nil, nil, nil, nil, nil)
}

// FlagBool reads a boolean flag atom (Associative/Commutative/Idempotent).
// A nil flag (absent: matches-anything in AlgProp matching) reports
// known=true, value=false, so normalization treats an absent flag as
// non-associative/-commutative/-idempotent. known is false only when the
// flag is present but not yet resolved to a literal boolean (still an
// unknown atom pending rewrite, per spec section 4.3).
func FlagBool(flag Atom) (value, known bool) {
	if flag == nil {
		return false, true
	}
	lit, ok := flag.(*Literal)
	if !ok || lit.LitKind() != LitBoolean {
		return false, false
	}
	return lit.BooleanValue(), true
}

// MatchAlgProp implements the element-wise AlgProp match of spec section
// 4.3: a component absent on either side matches anything on the other;
// present components on both sides must satisfy eq. AlgProp components in
// practice are literal flags or constant elements; core/match passes a
// full pattern match as eq, so a variable flag in the pattern binds to the
// subject's value.
func MatchAlgProp(pattern, subject *AlgProp, eq func(a, b Atom) bool) bool {
	pairs := [][2]Atom{
		{pattern.Associative, subject.Associative},
		{pattern.Commutative, subject.Commutative},
		{pattern.Idempotent, subject.Idempotent},
		{pattern.Absorber, subject.Absorber},
		{pattern.Identity, subject.Identity},
	}
	for _, pr := range pairs {
		p, s := pr[0], pr[1]
		if p == nil || s == nil {
			continue
		}
		if !eq(p, s) {
			return false
		}
	}
	return true
}

func (p *AlgProp) flagString(flag Atom, letter string) string {
	if flag == nil {
		return ""
	}
	if v, known := FlagBool(flag); known {
		if v {
			return letter
		}
		return "!" + letter
	}
	return letter + "[" + flag.String() + "]"
}

func (p *AlgProp) String() string {
	s := p.flagString(p.Associative, "A") + p.flagString(p.Commutative, "C") + p.flagString(p.Idempotent, "I")
	if p.Absorber != nil {
		s += "B[" + p.Absorber.String() + "]"
	}
	if p.Identity != nil {
		s += "D[" + p.Identity.String() + "]"
	}
	return s
}
