package match

import (
	"context"
	"math/big"
	"testing"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUniverse() *atom.NamedRootType {
	return atom.NewNamedRootType(atom.TypeUniverseName, nil)
}

func plainMatcher() *Matcher {
	return &Matcher{}
}

func TestMatchLiteral(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	m := plainMatcher()

	out := m.Match(context.Background(), atom.NewInteger(big.NewInt(1), typ), atom.NewInteger(big.NewInt(1), typ), atom.NewBindings(), nil)
	assert.True(t, out.Ok())

	out = m.Match(context.Background(), atom.NewInteger(big.NewInt(1), typ), atom.NewInteger(big.NewInt(2), typ), atom.NewBindings(), nil)
	assert.False(t, out.Ok())
}

func TestMatchVariableBindsOnFirstSight(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	m := plainMatcher()
	x := atom.NewVariable("x", typ, nil, nil, false)
	subj := atom.NewInteger(big.NewInt(42), typ)

	out := m.Match(context.Background(), x, subj, atom.NewBindings(), nil)
	require.True(t, out.Ok())
	bound, ok := out.Binds.Lookup("x")
	require.True(t, ok)
	assert.Zero(t, atom.Compare(bound, subj))
}

func TestMatchVariableConsistentRebinding(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	m := plainMatcher()
	x := atom.NewVariable("x", typ, nil, nil, false)

	binds := atom.NewBindings().Plus("x", atom.NewInteger(big.NewInt(1), typ))

	out := m.Match(context.Background(), x, atom.NewInteger(big.NewInt(1), typ), binds, nil)
	assert.True(t, out.Ok(), "same bound value matches")

	out = m.Match(context.Background(), x, atom.NewInteger(big.NewInt(2), typ), binds, nil)
	assert.False(t, out.Ok(), "different value conflicts with existing binding")
}

func TestMatchByNameVariable(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	m := plainMatcher()
	x := atom.NewVariable("x", typ, nil, nil, true)

	out := m.Match(context.Background(), x, atom.NewVariable("x", typ, nil, nil, false), atom.NewBindings(), nil)
	assert.True(t, out.Ok())

	out = m.Match(context.Background(), x, atom.NewVariable("y", typ, nil, nil, false), atom.NewBindings(), nil)
	assert.False(t, out.Ok())
}

func TestMatchAnyRootType(t *testing.T) {
	universe := testUniverse()
	anyType := atom.NewNamedRootType(atom.AnyTypeName, universe)
	intType := atom.NewNamedRootType("INTEGER", universe)
	m := plainMatcher()

	out := m.Match(context.Background(), anyType, atom.NewInteger(big.NewInt(5), intType), atom.NewBindings(), nil)
	assert.True(t, out.Ok(), "ANY matches any subject")
}

func TestMatchNoneRootType(t *testing.T) {
	universe := testUniverse()
	noneType := atom.NewNamedRootType(atom.NoneTypeName, universe)
	intType := atom.NewNamedRootType("INTEGER", universe)
	m := plainMatcher()

	out := m.Match(context.Background(), noneType, atom.NewInteger(big.NewInt(5), intType), atom.NewBindings(), nil)
	assert.False(t, out.Ok(), "NONE matches only itself and ANY")

	out = m.Match(context.Background(), noneType, noneType, atom.NewBindings(), nil)
	assert.True(t, out.Ok())
}

func TestMatchPlainSequence(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	props := atom.EmptyAlgProp(typ)
	m := plainMatcher()

	x := atom.NewVariable("x", typ, nil, nil, false)
	pattern := atom.NewAtomSeq(props, []atom.Atom{x, atom.NewInteger(big.NewInt(2), typ)}, typ)
	subject := atom.NewAtomSeq(props, []atom.Atom{atom.NewInteger(big.NewInt(1), typ), atom.NewInteger(big.NewInt(2), typ)}, typ)

	out := m.Match(context.Background(), pattern, subject, atom.NewBindings(), nil)
	require.True(t, out.Ok())
	bound, ok := out.Binds.Lookup("x")
	require.True(t, ok)
	assert.Zero(t, atom.Compare(bound, atom.NewInteger(big.NewInt(1), typ)))
}

func TestMatchCommutativeSequenceOutOfOrder(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	props := atom.NewAlgProp(testUniverse(), nil, atom.NewBoolean(true, typ), nil, nil, nil)
	m := plainMatcher()

	one := atom.NewInteger(big.NewInt(1), typ)
	two := atom.NewInteger(big.NewInt(2), typ)
	three := atom.NewInteger(big.NewInt(3), typ)

	pattern := atom.NewAtomSeq(props, []atom.Atom{one, two, three}, typ)
	subject := atom.NewAtomSeq(props, []atom.Atom{three, one, two}, typ)

	out := m.Match(context.Background(), pattern, subject, atom.NewBindings(), nil)
	assert.True(t, out.Ok(), "commutative sequences of equal constant elements match regardless of order")
}

// TestMatchACPermutesDistinctVariablesAcrossSingletons is scenario 4 of spec
// section 8: pattern f(x,y,z) with f A∧C matches subject f(3,1,2) as a Many
// outcome of size 6 -- every bijection of the three distinct variables onto
// the three distinct subject elements.
func TestMatchACPermutesDistinctVariablesAcrossSingletons(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	trueAtom := atom.NewBoolean(true, typ)
	props := atom.NewAlgProp(testUniverse(), trueAtom, trueAtom, nil, nil, nil)
	m := plainMatcher()

	x := atom.NewVariable("x", typ, nil, nil, false)
	y := atom.NewVariable("y", typ, nil, nil, false)
	z := atom.NewVariable("z", typ, nil, nil, false)
	pattern := atom.NewAtomSeq(props, []atom.Atom{x, y, z}, typ)

	three := atom.NewInteger(big.NewInt(3), typ)
	one := atom.NewInteger(big.NewInt(1), typ)
	two := atom.NewInteger(big.NewInt(2), typ)
	subject := atom.NewAtomSeq(props, []atom.Atom{three, one, two}, typ)

	out := m.Match(context.Background(), pattern, subject, atom.NewBindings(), nil)
	require.Equal(t, KindMany, out.Kind)

	solutions := Collect(out.AsSeq())
	require.Len(t, solutions, 6, "3 distinct variables over 3 distinct elements: 3! bijections")

	seen := make(map[string]bool)
	for _, b := range solutions {
		bx, _ := b.Lookup("x")
		by, _ := b.Lookup("y")
		bz, _ := b.Lookup("z")
		seen[bx.String()+"|"+by.String()+"|"+bz.String()] = true
	}
	assert.Len(t, seen, 6, "every permutation must be a distinct binding triple")
}

func TestOutcomeFirstAndAsSeq(t *testing.T) {
	binds := atom.NewBindings().Plus("x", atom.NewBoolean(true, testUniverse()))
	m := Match(binds)

	b, ok := m.First()
	require.True(t, ok)
	assert.Same(t, binds, b)

	seq := m.AsSeq()
	first, ok := seq()
	require.True(t, ok)
	assert.Same(t, binds, first)
	_, ok = seq()
	assert.False(t, ok, "Match's AsSeq yields exactly one solution")
}

func TestOutcomeManyFirst(t *testing.T) {
	b1 := atom.NewBindings().Plus("x", atom.NewInteger(big.NewInt(1), testUniverse()))
	b2 := atom.NewBindings().Plus("x", atom.NewInteger(big.NewInt(2), testUniverse()))
	many := ManyOf(SeqFromSlice([]*atom.Bindings{b1, b2}))

	first, ok := many.First()
	require.True(t, ok)
	assert.Same(t, b1, first)
}

func TestGuardDefaultsToTrueWithNoHooks(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	m := plainMatcher() // no RewriteUnderRules configured
	guard := atom.NewVariable("g", typ, nil, nil, false) // non-true, non-nil guard atom
	x := atom.NewVariable("x", typ, guard, nil, false)
	subj := atom.NewInteger(big.NewInt(9), typ)

	out := m.Match(context.Background(), x, subj, atom.NewBindings(), nil)
	assert.True(t, out.Ok(), "without a rewrite hook, an unresolved guard defaults to accepting")
}

func TestGuardRewriterHookGatesMatch(t *testing.T) {
	typ := atom.NewNamedRootType("INTEGER", testUniverse())
	guard := atom.NewVariable("g", typ, nil, nil, false)
	x := atom.NewVariable("x", typ, guard, nil, false)
	subj := atom.NewInteger(big.NewInt(9), typ)

	m := &Matcher{
		GuardRewriter: func(ctx context.Context, g, s atom.Atom) (atom.Atom, bool, bool) {
			return s, true, true
		},
	}
	out := m.Match(context.Background(), x, subj, atom.NewBindings(), nil)
	require.True(t, out.Ok())

	m2 := &Matcher{
		GuardRewriter: func(ctx context.Context, g, s atom.Atom) (atom.Atom, bool, bool) {
			return nil, false, true
		},
	}
	out2 := m2.Match(context.Background(), x, subj, atom.NewBindings(), nil)
	assert.False(t, out2.Ok(), "a guard rewriter that reports fired=false fails the match")
}
