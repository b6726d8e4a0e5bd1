package atom

import "bytes"

// isTypeUniverse reports whether a is the distinguished self-typed sentinel
// (its own Type()). Compare and recursive type comparisons special-case it
// per spec section 4.1, rule 2, and the Design Notes' "cyclic type
// reference" guidance.
func isTypeUniverse(a Atom) bool {
	return a != nil && a.Type() == a
}

// Compare implements the total order of spec section 4.1, used for
// commutative-sequence sorting and deterministic tie-breaks. It returns a
// negative number if a < b, zero if equal, positive if a > b.
func Compare(a, b Atom) int {
	if a == b {
		return 0
	}
	if isTypeUniverse(a) && !isTypeUniverse(b) {
		return 1
	}
	if isTypeUniverse(b) && !isTypeUniverse(a) {
		return -1
	}
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	// Guard against the type universe's self-loop: only recurse into types
	// when neither side already is the type universe (checked above) and
	// the types are not the atoms themselves.
	if a.Type() != a && b.Type() != b {
		if c := Compare(a.Type(), b.Type()); c != 0 {
			return c
		}
	}
	return compareFields(a, b)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareString(a, b string) int {
	return bytes.Compare([]byte(a), []byte(b))
}

func compareAtomPtr(a, b Atom) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return Compare(a, b)
}

// compareFields compares the declared fields of two same-Kind atoms, in
// declared order, per spec section 4.1 rule 4. Variables and metavariables
// compare by name only.
func compareFields(a, b Atom) int {
	switch a.Kind() {
	case KindLiteral:
		la, lb := a.(*Literal), b.(*Literal)
		if c := compareInt(int(la.litKind), int(lb.litKind)); c != 0 {
			return c
		}
		switch la.litKind {
		case LitInteger:
			return la.intVal.Cmp(lb.intVal)
		case LitString:
			return compareString(la.strVal, lb.strVal)
		case LitBoolean:
			return compareInt(boolToInt(la.boolVal), boolToInt(lb.boolVal))
		case LitSymbol:
			return compareString(la.symVal, lb.symVal)
		case LitFloat:
			if c := compareInt(la.float.Radix, lb.float.Radix); c != 0 {
				return c
			}
			if c := compareInt(la.float.Exponent, lb.float.Exponent); c != 0 {
				return c
			}
			return la.float.Significand.Cmp(lb.float.Significand)
		}
		return 0
	case KindAlgProp:
		pa, pb := a.(*AlgProp), b.(*AlgProp)
		for _, pr := range [][2]Atom{
			{pa.Associative, pb.Associative}, {pa.Commutative, pb.Commutative},
			{pa.Idempotent, pb.Idempotent}, {pa.Absorber, pb.Absorber}, {pa.Identity, pb.Identity},
		} {
			if c := compareAtomPtr(pr[0], pr[1]); c != 0 {
				return c
			}
		}
		return 0
	case KindVariable:
		return compareString(a.(*Variable).Name, b.(*Variable).Name)
	case KindMetaVariable:
		return compareString(a.(*MetaVariable).Name, b.(*MetaVariable).Name)
	case KindApply:
		if c := compareAtomPtr(ApplyOperator(a), ApplyOperator(b)); c != 0 {
			return c
		}
		return compareAtomPtr(ApplyArgument(a), ApplyArgument(b))
	case KindAtomSeq:
		sa, sb := a.(*AtomSeq), b.(*AtomSeq)
		if c := compareInt(len(sa.Elements), len(sb.Elements)); c != 0 {
			return c
		}
		for i := range sa.Elements {
			if c := Compare(sa.Elements[i], sb.Elements[i]); c != 0 {
				return c
			}
		}
		return 0
	case KindBindingsAtom:
		if c := compareInt(a.(*BindingsAtom).Value.Size(), b.(*BindingsAtom).Value.Size()); c != 0 {
			return c
		}
		return compareUint64(a.OtherHash(), b.OtherHash())
	case KindLambda:
		la, lb := a.(*Lambda), b.(*Lambda)
		return Compare(la.Body, lb.Body)
	case KindMapPair:
		pa, pb := a.(*MapPair), b.(*MapPair)
		if c := compareAtomPtr(pa.Left, pb.Left); c != 0 {
			return c
		}
		return compareAtomPtr(pa.Right, pb.Right)
	case KindMatchAtom:
		return compareAtomPtr(a.(*MatchAtom).Content, b.(*MatchAtom).Content)
	case KindSpecialForm:
		fa, fb := a.(*SpecialForm), b.(*SpecialForm)
		if c := compareString(fa.Tag, fb.Tag); c != 0 {
			return c
		}
		return compareAtomPtr(fa.Content, fb.Content)
	case KindRulesetRef:
		return compareString(a.(*RulesetRef).Name, b.(*RulesetRef).Name)
	case KindOperatorRef:
		return compareString(a.(*OperatorRef).Name, b.(*OperatorRef).Name)
	case KindNamedRootType:
		return compareString(a.(*NamedRootType).Name, b.(*NamedRootType).Name)
	case kindDeBruijnRef:
		return compareInt(a.(*deBruijnRef).index, b.(*deBruijnRef).index)
	}
	return compareUint64(a.OtherHash(), b.OtherHash())
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// FastEqual implements spec section 4.1's fast-equality short circuit.
// risky=true skips the depth/isTerm/otherHash comparisons. custom=true
// additionally runs a deep structural comparison (via Compare) for variants
// where a hash collision has non-negligible cost (AtomSeq, Apply), even
// though risky/custom independently control the cheaper checks: per the
// spec's own caveat, correctness depends on hash and otherHash always
// participating, so custom mode never skips them.
func FastEqual(a, b Atom, risky, custom bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.IsConstant() != b.IsConstant() || a.Hash() != b.Hash() {
		return false
	}
	if !risky {
		if a.Depth() != b.Depth() || a.IsTerm() != b.IsTerm() || a.OtherHash() != b.OtherHash() {
			return false
		}
	}
	if custom && (a.Kind() == KindAtomSeq || a.Kind() == KindApply) {
		return Compare(a, b) == 0
	}
	return true
}
