package atom

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intType() *NamedRootType {
	universe := NewNamedRootType(TypeUniverseName, nil)
	return NewNamedRootType("INTEGER", universe)
}

func TestCompareByKindOrdinal(t *testing.T) {
	typ := intType()
	lit := NewInteger(big.NewInt(1), typ)
	v := NewVariable("x", typ, nil, nil, false)

	assert.Negative(t, Compare(lit, v), "Literal (ordinal 0) sorts before Variable (ordinal 3)")
	assert.Positive(t, Compare(v, lit))
}

func TestCompareLiteralsByValue(t *testing.T) {
	typ := intType()
	a := NewInteger(big.NewInt(1), typ)
	b := NewInteger(big.NewInt(2), typ)
	c := NewInteger(big.NewInt(1), typ)

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, c), "distinct allocations with equal value compare equal")
}

func TestCompareReflexiveShortCircuit(t *testing.T) {
	typ := intType()
	lit := NewInteger(big.NewInt(1), typ)
	assert.Zero(t, Compare(lit, lit))
}

func TestCompareVariablesByNameOnly(t *testing.T) {
	typ := intType()
	x1 := NewVariable("x", typ, nil, []string{"a"}, false)
	x2 := NewVariable("x", typ, nil, []string{"b"}, true)
	y := NewVariable("y", typ, nil, nil, false)

	assert.Zero(t, Compare(x1, x2), "variables compare by name only, ignoring labels/byName")
	assert.Negative(t, Compare(x1, y))
}

func TestFastEqualRiskyAndCustom(t *testing.T) {
	typ := intType()
	a := NewInteger(big.NewInt(7), typ)
	b := NewInteger(big.NewInt(7), typ)

	assert.True(t, FastEqual(a, b, false, false))
	assert.True(t, FastEqual(a, b, true, false))
	assert.True(t, FastEqual(a, b, false, true))
}

func TestFastEqualDetectsDifference(t *testing.T) {
	typ := intType()
	a := NewInteger(big.NewInt(7), typ)
	b := NewInteger(big.NewInt(8), typ)

	assert.False(t, FastEqual(a, b, false, false))
	assert.False(t, FastEqual(a, b, true, true))
}

func TestFastEqualNilHandling(t *testing.T) {
	typ := intType()
	a := NewInteger(big.NewInt(1), typ)
	assert.False(t, FastEqual(a, nil, false, false))
	assert.False(t, FastEqual(nil, a, false, false))
	assert.True(t, FastEqual(nil, nil, false, false))
}

func TestFastEqualSamePointer(t *testing.T) {
	typ := intType()
	a := NewInteger(big.NewInt(1), typ)
	assert.True(t, FastEqual(a, a, false, false))
}

func TestCompareAtomSeqByLengthThenElements(t *testing.T) {
	typ := intType()
	props := EmptyAlgProp(typ)
	short := NewAtomSeq(props, []Atom{NewInteger(big.NewInt(1), typ)}, typ)
	long := NewAtomSeq(props, []Atom{NewInteger(big.NewInt(1), typ), NewInteger(big.NewInt(2), typ)}, typ)

	assert.Negative(t, Compare(short, long))
}

func TestCompareNamedRootTypeSelfLoop(t *testing.T) {
	universe := NewNamedRootType(TypeUniverseName, nil)
	other := NewNamedRootType("FOO", universe)

	require.Equal(t, universe, universe.Type())
	assert.Positive(t, Compare(universe, other), "type universe sorts after any non-universe atom")
	assert.Negative(t, Compare(other, universe))
}
