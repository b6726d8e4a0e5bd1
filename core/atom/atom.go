// Package atom implements Elision's uniform algebraic data type for every
// expression the rewriting engine manipulates: the atom model (spec
// component C1), its total order, fast-equality, and print form.
//
// Every atom variant is immutable once constructed. Derived fields (type,
// depth, isConstant, isTerm, deBruijnIndex, hash, otherHash) are computed at
// construction time by the variant's constructor and never recomputed.
package atom

import "github.com/elision/elision-sub001/core/bindings"

// Kind identifies an atom's variant. The ordinal values match the total
// order table in spec section 4.1 and must not be reordered: the total
// order and several invariants (I1) compare atoms by Kind ordinal first.
type Kind int

const (
	KindLiteral Kind = iota
	KindAlgProp
	KindMetaVariable
	KindVariable
	KindApply
	KindAtomSeq
	KindBindingsAtom
	KindLambda
	KindMapPair
	KindMatchAtom
	KindSpecialForm
	KindRulesetRef
	KindOperatorRef
	KindNamedRootType
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAlgProp:
		return "AlgProp"
	case KindMetaVariable:
		return "MetaVariable"
	case KindVariable:
		return "Variable"
	case KindApply:
		return "Apply"
	case KindAtomSeq:
		return "AtomSeq"
	case KindBindingsAtom:
		return "BindingsAtom"
	case KindLambda:
		return "Lambda"
	case KindMapPair:
		return "MapPair"
	case KindMatchAtom:
		return "MatchAtom"
	case KindSpecialForm:
		return "SpecialForm"
	case KindRulesetRef:
		return "RulesetRef"
	case KindOperatorRef:
		return "OperatorRef"
	case KindNamedRootType:
		return "NamedRootType"
	default:
		return "Unknown"
	}
}

// Loc is an optional source location, set by a parser and otherwise nil.
type Loc struct {
	Source string
	Line   int
	Column int
}

// Atom is implemented by every term the engine manipulates. All derived
// fields are constant for the atom's lifetime (see the package doc).
type Atom interface {
	// Kind identifies the concrete variant for dispatch without a type
	// switch at every call site.
	Kind() Kind

	// Type returns this atom's type, itself an Atom. The Type Universe is
	// the one atom whose Type returns itself.
	Type() Atom

	// Depth is 0 for leaves, 1+max(child depths) otherwise.
	Depth() int

	// IsConstant reports whether the atom contains no variable occurrences.
	IsConstant() bool

	// IsTerm reports whether the atom contains no metavariable occurrences
	// (a "meta-term" is an atom for which IsTerm is false).
	IsTerm() bool

	// DeBruijnIndex is the max index among children; a De Bruijn reference
	// at level i reports i+1, and a Lambda reports its body's value minus
	// one.
	DeBruijnIndex() int

	// Hash and OtherHash are two independent structural hashes (the
	// "fingerprint"), used jointly to lower collision probability.
	Hash() uint64
	OtherHash() uint64

	// Loc is the optional source location, or nil.
	Loc() *Loc

	// String renders the atom's toParseString form (section 6).
	String() string
}

// Bindings is this package's instantiation of the generic bindings map: a
// name -> Atom substitution, as used by BindingsAtom and by OpApply's
// parameter->argument binding.
type Bindings = bindings.Bindings[Atom]

// NewBindings returns an empty Bindings.
func NewBindings() *Bindings { return bindings.New[Atom]() }

// base carries the fields common to every atom variant. Each concrete
// variant embeds base and is responsible for populating it correctly in its
// constructor; base itself never mutates after construction.
type base struct {
	kind       Kind
	typ        Atom
	depth      int
	isConstant bool
	isTerm     bool
	deBruijn   int
	hash       uint64
	otherHash  uint64
	loc        *Loc
}

func (b *base) Kind() Kind         { return b.kind }
func (b *base) Type() Atom         { return b.typ }
func (b *base) Depth() int         { return b.depth }
func (b *base) IsConstant() bool   { return b.isConstant }
func (b *base) IsTerm() bool       { return b.isTerm }
func (b *base) DeBruijnIndex() int { return b.deBruijn }
func (b *base) Hash() uint64       { return b.hash }
func (b *base) OtherHash() uint64  { return b.otherHash }
func (b *base) Loc() *Loc          { return b.loc }

// childDerived folds a child atom's derived fields into accumulating depth,
// isConstant, isTerm and deBruijn values. Every composite-atom constructor
// calls this once per child, in field order, before finalizing its base.
func childDerived(depth *int, isConstant, isTerm *bool, deBruijn *int, child Atom) {
	if child == nil {
		return
	}
	if d := child.Depth(); d+1 > *depth {
		*depth = d + 1
	}
	if !child.IsConstant() {
		*isConstant = false
	}
	if !child.IsTerm() {
		*isTerm = false
	}
	if di := child.DeBruijnIndex(); di > *deBruijn {
		*deBruijn = di
	}
}
