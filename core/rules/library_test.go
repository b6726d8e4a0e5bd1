package rules

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/match"
)

func intType() *atom.NamedRootType {
	universe := atom.NewNamedRootType(atom.TypeUniverseName, nil)
	return atom.NewNamedRootType("INTEGER", universe)
}

func identityRewrite(ctx context.Context, a atom.Atom, binds *atom.Bindings) (atom.Atom, bool) {
	return a, false
}

func TestGetRulesFiltersByRulesetAndHead(t *testing.T) {
	typ := intType()
	lib := NewLibrary()
	n := atom.NewVariable("n", typ, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("f", typ), n, typ)

	r1 := NewRule(pattern, n, nil, []string{"a"}, false)
	r2 := NewRule(pattern, n, nil, []string{"b"}, false)
	lib.Add(r1)
	lib.Add(r2)

	subject := atom.NewSimpleApply(atom.NewSymbol("f", typ), atom.NewInteger(big.NewInt(1), typ), typ)
	got := lib.GetRules(subject, []string{"a"})
	require.Len(t, got, 1)
	assert.Same(t, r1, got[0])
}

func TestGetRulesPreservesDeclaredOrder(t *testing.T) {
	typ := intType()
	lib := NewLibrary()
	n := atom.NewVariable("n", typ, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("f", typ), n, typ)

	var declared []*Rule
	for i := 0; i < 5; i++ {
		r := NewRule(pattern, n, nil, []string{"a"}, false)
		declared = append(declared, r)
		lib.Add(r)
	}

	subject := atom.NewSimpleApply(atom.NewSymbol("f", typ), atom.NewInteger(big.NewInt(1), typ), typ)
	got := lib.GetRules(subject, []string{"a"})
	require.Len(t, got, len(declared))
	for i, r := range declared {
		assert.Same(t, r, got[i])
	}
}

func TestApplyReturnsFirstFiringRuleInDeclaredOrder(t *testing.T) {
	typ := intType()
	n := atom.NewVariable("n", typ, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("f", typ), n, typ)

	lib := NewLibrary()
	lib.Add(NewRule(pattern, atom.NewInteger(big.NewInt(111), typ), nil, []string{"a"}, false))
	lib.Add(NewRule(pattern, atom.NewInteger(big.NewInt(222), typ), nil, []string{"a"}, false))

	m := &match.Matcher{}
	subject := atom.NewSimpleApply(atom.NewSymbol("f", typ), atom.NewInteger(big.NewInt(1), typ), typ)

	result, fired := lib.Apply(context.Background(), m, subject, []string{"a"}, identityRewrite)
	require.True(t, fired)
	assert.Zero(t, atom.Compare(result, atom.NewInteger(big.NewInt(111), typ)))
}

func TestApplyNoCandidateFiringReturnsSubjectUnchanged(t *testing.T) {
	typ := intType()
	lib := NewLibrary()
	m := &match.Matcher{}
	subject := atom.NewInteger(big.NewInt(1), typ)

	result, fired := lib.Apply(context.Background(), m, subject, []string{"a"}, identityRewrite)
	assert.False(t, fired)
	assert.Same(t, subject, result)
}

func TestApplySkipsCandidateWhoseGuardFailsFalse(t *testing.T) {
	typ := intType()
	n := atom.NewVariable("n", typ, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("f", typ), n, typ)

	lib := NewLibrary()
	falseGuard := atom.NewBoolean(false, typ)
	lib.Add(NewRule(pattern, atom.NewInteger(big.NewInt(111), typ), []atom.Atom{falseGuard}, []string{"a"}, false))
	lib.Add(NewRule(pattern, atom.NewInteger(big.NewInt(222), typ), nil, []string{"a"}, false))

	m := &match.Matcher{}
	subject := atom.NewSimpleApply(atom.NewSymbol("f", typ), atom.NewInteger(big.NewInt(1), typ), typ)

	result, fired := lib.Apply(context.Background(), m, subject, []string{"a"}, identityRewrite)
	require.True(t, fired)
	assert.Zero(t, atom.Compare(result, atom.NewInteger(big.NewInt(222), typ)), "a rule with a false-rewriting guard is skipped")
}

func TestRulesetRegistryAssignsStableBits(t *testing.T) {
	reg := NewRulesetRegistry()
	b1 := reg.BitFor("a")
	b2 := reg.BitFor("b")
	assert.NotEqual(t, b1, b2)
	assert.Equal(t, b1, reg.BitFor("a"), "the same name always gets the same bit")
}

func TestRulesetRegistryPanicsOnInvalidName(t *testing.T) {
	reg := NewRulesetRegistry()
	assert.Panics(t, func() { reg.BitFor("1bad") })
}

func TestActiveSetKeyDiffersByMembership(t *testing.T) {
	reg := NewRulesetRegistry()
	s1 := NewActiveSet(reg, []string{"a"})
	s2 := NewActiveSet(reg, []string{"a", "b"})
	assert.NotEqual(t, s1.Key(), s2.Key())
	assert.True(t, s1.Contains(reg, "a"))
	assert.False(t, s1.Contains(reg, "b"))
}
