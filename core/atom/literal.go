package atom

import (
	"fmt"
	"math/big"
)

// LiteralKind distinguishes the five literal shapes spec section 3 names.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitString
	LitBoolean
	LitSymbol
	LitFloat
)

// FloatValue is an arbitrary-precision float: significand * radix^exponent.
// Radix must be one of {2, 8, 10, 16} per spec section 3.
type FloatValue struct {
	Significand *big.Int
	Exponent    int
	Radix       int
}

// Literal is a leaf atom: an integer, string, boolean, symbol, or float.
// Literals are always constant, always terms (never contain a
// metavariable), and always have depth 0.
type Literal struct {
	base
	litKind LiteralKind
	intVal  *big.Int
	strVal  string
	boolVal bool
	symVal  string
	float   FloatValue
}

// LitKind reports which of the five literal shapes this is.
func (l *Literal) LitKind() LiteralKind { return l.litKind }

// IntegerValue returns the integer value; nil if LitKind() != LitInteger.
func (l *Literal) IntegerValue() *big.Int { return l.intVal }

// StringValue returns the string value; "" if LitKind() != LitString.
func (l *Literal) StringValue() string { return l.strVal }

// BooleanValue returns the boolean value; false if LitKind() != LitBoolean.
func (l *Literal) BooleanValue() bool { return l.boolVal }

// SymbolValue returns the symbol name; "" if LitKind() != LitSymbol.
func (l *Literal) SymbolValue() string { return l.symVal }

// FloatVal returns the float value; the zero FloatValue if LitKind() !=
// LitFloat.
func (l *Literal) FloatVal() FloatValue { return l.float }

func newLiteralBase(typ Atom, litKind LiteralKind) base {
	return base{
		kind:       KindLiteral,
		typ:        typ,
		depth:      0,
		isConstant: true,
		isTerm:     true,
		deBruijn:   0,
	}
}

// NewInteger constructs an arbitrary-precision integer literal of type typ.
func NewInteger(value *big.Int, typ Atom) *Literal {
	l := &Literal{base: newLiteralBase(typ, LitInteger), litKind: LitInteger, intVal: new(big.Int).Set(value)}
	acc := newHashAccumulator(KindLiteral)
	acc.writeUint(uint64(LitInteger))
	acc.writeBigInt(l.intVal)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l
}

// NewString constructs a string literal of type typ.
func NewString(value string, typ Atom) *Literal {
	l := &Literal{base: newLiteralBase(typ, LitString), litKind: LitString, strVal: value}
	acc := newHashAccumulator(KindLiteral)
	acc.writeUint(uint64(LitString))
	acc.writeString(value)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l
}

// NewBoolean constructs a boolean literal of type typ.
func NewBoolean(value bool, typ Atom) *Literal {
	l := &Literal{base: newLiteralBase(typ, LitBoolean), litKind: LitBoolean, boolVal: value}
	acc := newHashAccumulator(KindLiteral)
	acc.writeUint(uint64(LitBoolean))
	acc.writeBool(value)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l
}

// NewSymbol constructs a symbol literal of type typ.
func NewSymbol(name string, typ Atom) *Literal {
	l := &Literal{base: newLiteralBase(typ, LitSymbol), litKind: LitSymbol, symVal: name}
	acc := newHashAccumulator(KindLiteral)
	acc.writeUint(uint64(LitSymbol))
	acc.writeString(name)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l
}

// NewFloat constructs a float literal significand*radix^exponent of type
// typ. Radix must be one of {2, 8, 10, 16}.
func NewFloat(significand *big.Int, exponent, radix int, typ Atom) (*Literal, error) {
	switch radix {
	case 2, 8, 10, 16:
	default:
		return nil, fmt.Errorf("atom: invalid float radix %d, want one of {2,8,10,16}", radix)
	}
	fv := FloatValue{Significand: new(big.Int).Set(significand), Exponent: exponent, Radix: radix}
	l := &Literal{base: newLiteralBase(typ, LitFloat), litKind: LitFloat, float: fv}
	acc := newHashAccumulator(KindLiteral)
	acc.writeUint(uint64(LitFloat))
	acc.writeBigInt(fv.Significand)
	acc.writeInt(fv.Exponent)
	acc.writeInt(fv.Radix)
	acc.writeAtom(typ)
	l.hash, l.otherHash = acc.sums()
	return l, nil
}

// Equal reports whether two literals have the same kind and value (types
// are compared by the caller via the total order / matcher, which compares
// types before dispatching to variant equality).
func (l *Literal) Equal(o *Literal) bool {
	if l.litKind != o.litKind {
		return false
	}
	switch l.litKind {
	case LitInteger:
		return l.intVal.Cmp(o.intVal) == 0
	case LitString:
		return normText(l.strVal) == normText(o.strVal)
	case LitBoolean:
		return l.boolVal == o.boolVal
	case LitSymbol:
		return normText(l.symVal) == normText(o.symVal)
	case LitFloat:
		return l.float.Radix == o.float.Radix && l.float.Exponent == o.float.Exponent &&
			l.float.Significand.Cmp(o.float.Significand) == 0
	}
	return false
}

// WithType returns a literal with the same kind and value but a different
// type (used by the rewriter when a literal's type itself rewrites).
func (l *Literal) WithType(typ Atom) *Literal {
	switch l.litKind {
	case LitInteger:
		return NewInteger(l.intVal, typ)
	case LitString:
		return NewString(l.strVal, typ)
	case LitBoolean:
		return NewBoolean(l.boolVal, typ)
	case LitSymbol:
		return NewSymbol(l.symVal, typ)
	case LitFloat:
		out, _ := NewFloat(l.float.Significand, l.float.Exponent, l.float.Radix, typ)
		return out
	default:
		return l
	}
}

func radixPrefix(radix int) string {
	switch radix {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		return "0x"
	default:
		return ""
	}
}

func (l *Literal) String() string {
	switch l.litKind {
	case LitInteger:
		return l.intVal.String()
	case LitString:
		return "\"" + l.strVal + "\""
	case LitBoolean:
		if l.boolVal {
			return "true"
		}
		return "false"
	case LitSymbol:
		return l.symVal
	case LitFloat:
		return fmt.Sprintf("%s%se%d", radixPrefix(l.float.Radix), l.float.Significand.String(), l.float.Exponent)
	default:
		return "<literal>"
	}
}
