package atom

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// AtomSeq is an algebraic-property-tagged, normalized sequence of atoms
// (spec component C4's product type, and part of the atom model, C1,
// ordinal 5). Construction always normalizes per the five ordered passes of
// spec section 4.4; callers never see a non-normalized AtomSeq.
type AtomSeq struct {
	base
	Props    *AlgProp
	Elements []Atom

	// constIndex maps a constant element's Hash() to its first position in
	// Elements, built once at construction for fast AC-matching lookup
	// (spec section 4.4, "constant-subterm index").
	constIndex map[uint64]int
}

// seqEqual is the equality used during normalization: structural comparison
// via the total order, which is exact (not fast-path) so normalization
// never under- or over-merges elements.
func seqEqual(a, b Atom) bool { return Compare(a, b) == 0 }

// hashGuardedEqual is seqEqual with a cheap fingerprint pre-check: elements
// with differing (hash, otherHash) pairs can never be structurally equal, so
// this skips the full Compare recursion for the overwhelmingly common case
// of a non-matching element, the same fast-path-then-fallback idiom
// dedupPreserveOrder and ConstantIndex already use.
func hashGuardedEqual(a, b Atom) bool {
	if a.Hash() != b.Hash() || a.OtherHash() != b.OtherHash() {
		return false
	}
	return seqEqual(a, b)
}

// flattenAssociative splices any element that is itself an AtomSeq with
// equal properties into the parent sequence (spec section 4.4 pass 3). By
// induction the spliced sub-sequence is already normalized, so this is a
// single shallow pass, not a recursive deep flatten (invariant I3).
func flattenAssociative(props *AlgProp, xs []Atom) []Atom {
	out := make([]Atom, 0, len(xs))
	for _, x := range xs {
		if sub, ok := x.(*AtomSeq); ok && algPropEqual(sub.Props, props) {
			out = append(out, sub.Elements...)
		} else {
			out = append(out, x)
		}
	}
	return out
}

func algPropEqual(a, b *AlgProp) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Hash() == b.Hash() && a.OtherHash() == b.OtherHash()
}

// normalize runs the five ordered passes of spec section 4.4 over xs under
// props, returning the canonical element slice.
func normalize(props *AlgProp, xs []Atom) []Atom {
	// Pass 1: absorber capture.
	if props.Absorber != nil {
		for _, x := range xs {
			if hashGuardedEqual(x, props.Absorber) {
				return []Atom{props.Absorber}
			}
		}
	}

	// Pass 2: drop identity elements.
	out := xs
	if props.Identity != nil {
		filtered := make([]Atom, 0, len(out))
		for _, x := range out {
			if !hashGuardedEqual(x, props.Identity) {
				filtered = append(filtered, x)
			}
		}
		out = filtered
	}

	// Pass 3: flatten associative.
	if assoc, known := FlagBool(props.Associative); known && assoc {
		out = flattenAssociative(props, out)
	}

	// Pass 4: sort under A&&C.
	assocFlag, assocKnown := FlagBool(props.Associative)
	commFlag, commKnown := FlagBool(props.Commutative)
	if assocKnown && assocFlag && commKnown && commFlag {
		sorted := make([]Atom, len(out))
		copy(sorted, out)
		sortAtoms(sorted)
		out = sorted
	}

	// Pass 5: dedup under idempotent, preserving first occurrence.
	if idem, known := FlagBool(props.Idempotent); known && idem {
		out = dedupPreserveOrder(out)
	}

	return out
}

func sortAtoms(xs []Atom) {
	// Insertion sort: sequences are typically small, and this keeps the
	// comparator usage (and its recursive Compare calls) simple to audit.
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && Compare(xs[j-1], xs[j]) > 0; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func dedupPreserveOrder(xs []Atom) []Atom {
	seen := mapset.NewThreadUnsafeSet[uint64]()
	out := make([]Atom, 0, len(xs))
	for _, x := range xs {
		key := x.Hash() ^ x.OtherHash()
		if seen.Contains(key) {
			// Hash collision is possible but rare; fall back to exact
			// comparison against already-kept elements before dropping.
			dup := false
			for _, k := range out {
				if seqEqual(k, x) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
		}
		seen.Add(key)
		out = append(out, x)
	}
	return out
}

func buildConstIndex(xs []Atom) map[uint64]int {
	idx := make(map[uint64]int)
	for i, x := range xs {
		if x.IsConstant() {
			key := x.Hash() ^ x.OtherHash()
			if _, ok := idx[key]; !ok {
				idx[key] = i
			}
		}
	}
	return idx
}

// NewAtomSeq constructs a normalized AtomSeq: props, xs are normalized per
// spec section 4.4 before the AtomSeq's derived fields are computed.
// Constructing the same (props, xs) pair twice (in any input order allowed
// by the properties) yields structurally equal sequences (invariant P3).
func NewAtomSeq(props *AlgProp, xs []Atom, typ Atom) *AtomSeq {
	elements := normalize(props, xs)

	s := &AtomSeq{
		base:       base{kind: KindAtomSeq, typ: typ},
		Props:      props,
		Elements:   elements,
		constIndex: buildConstIndex(elements),
	}
	depth, deBruijn := 0, 0
	isConstant, isTerm := true, true
	childDerived(&depth, &isConstant, &isTerm, &deBruijn, props)
	for _, e := range elements {
		childDerived(&depth, &isConstant, &isTerm, &deBruijn, e)
	}
	s.depth, s.isConstant, s.isTerm, s.deBruijn = depth, isConstant, isTerm, deBruijn

	acc := newHashAccumulator(KindAtomSeq)
	acc.writeAtom(props)
	acc.writeInt(len(elements))
	for _, e := range elements {
		acc.writeAtom(e)
	}
	acc.writeAtom(typ)
	s.hash, s.otherHash = acc.sums()
	return s
}

// ConstantIndex returns the first position of a constant element equal to
// key, if any (used by AC matching's constant-isolation pre-pass).
func (s *AtomSeq) ConstantIndex(key Atom) (int, bool) {
	if !key.IsConstant() {
		return 0, false
	}
	pos, ok := s.constIndex[key.Hash()^key.OtherHash()]
	if !ok {
		return 0, false
	}
	if !seqEqual(s.Elements[pos], key) {
		// hash collision: fall back to a linear scan.
		for i, e := range s.Elements {
			if e.IsConstant() && seqEqual(e, key) {
				return i, true
			}
		}
		return 0, false
	}
	return pos, true
}

func (s *AtomSeq) String() string {
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}
	propStr := s.Props.String()
	if propStr == "" {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return propStr + "[" + strings.Join(parts, ", ") + "]"
}
