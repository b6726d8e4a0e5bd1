package atom

// Well-known root type names the matcher treats specially (spec section
// 4.5): ANY matches any subject (except a bindable pattern variable, which
// might itself want to bind to ANY); NONE matches only itself and ANY.
const (
	AnyTypeName  = "ANY"
	NoneTypeName = "NONE"
	// TypeUniverseName is the distinguished self-typed sentinel's name
	// (Design Notes, "cyclic type reference").
	TypeUniverseName = "TYPE"
)

// NamedRootType is a distinguished literal whose type is the Type
// Universe; the type registry (core/executor) holds exactly one instance
// per name (spec section 3, "singleton-by-name"). This package only
// provides the constructor; interning is the registry's job.
type NamedRootType struct {
	base
	Name string
}

// NewNamedRootType constructs a named root type atom whose type is
// typeUniverse. Passing nil as typeUniverse constructs the Type Universe
// itself, whose type is the new instance (a == a.typ); callers should do
// this exactly once, in the registry.
func NewNamedRootType(name string, typeUniverse Atom) *NamedRootType {
	n := &NamedRootType{base: base{kind: KindNamedRootType, isConstant: true, isTerm: true}, Name: name}
	if typeUniverse == nil {
		n.typ = n // self-loop: this instance is the Type Universe
	} else {
		n.typ = typeUniverse
	}
	acc := newHashAccumulator(KindNamedRootType)
	acc.writeString(name)
	n.hash, n.otherHash = acc.sums()
	return n
}

// IsAny reports whether this root type is the ANY wildcard.
func (n *NamedRootType) IsAny() bool { return n.Name == AnyTypeName }

// IsNone reports whether this root type is the NONE bottom type.
func (n *NamedRootType) IsNone() bool { return n.Name == NoneTypeName }

func (n *NamedRootType) String() string {
	if n.typ == Atom(n) {
		return ":^" + n.Name
	}
	return n.Name + ":^" + n.typ.String()
}
