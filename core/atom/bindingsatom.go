package atom

import "strings"

// BindingsAtom wraps a Bindings value as an atom (spec section 3, ordinal
// 6). The Bindings value itself is not an atom; this is the envelope the
// Apply smart constructor uses to return a Rewriter invocation's result
// (spec section 4.6 step 4: keys "atom" and "flag").
type BindingsAtom struct {
	base
	Value *Bindings
}

// NewBindingsAtom wraps value as an atom of type typ.
func NewBindingsAtom(value *Bindings, typ Atom) *BindingsAtom {
	b := &BindingsAtom{base: base{kind: KindBindingsAtom, typ: typ, isConstant: true, isTerm: true}, Value: value}
	acc := newHashAccumulator(KindBindingsAtom)
	acc.writeInt(value.Size())
	for _, name := range value.Names() {
		v, _ := value.Lookup(name)
		acc.writeString(name)
		acc.writeAtom(v)
	}
	acc.writeAtom(typ)
	b.hash, b.otherHash = acc.sums()
	return b
}

func (b *BindingsAtom) String() string {
	names := b.Value.Names()
	parts := make([]string, 0, len(names))
	for _, n := range names {
		v, _ := b.Value.Lookup(n)
		parts = append(parts, n+" -> "+v.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
