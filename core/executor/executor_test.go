package executor

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/rules"
)

func TestRootTypeIsSingletonByName(t *testing.T) {
	e := New(DefaultConfig(), nil)
	a := e.RootType("INTEGER")
	b := e.RootType("INTEGER")
	assert.Same(t, a, b, "spec section 3: NamedRootType is singleton-by-name")
}

func TestTypeUniverseIsSelfTyped(t *testing.T) {
	e := New(DefaultConfig(), nil)
	universe := e.TypeUniverse()
	assert.Same(t, universe, universe.Type(), "the Type Universe's own type is itself")
}

func TestSeparateExecutorsHaveIndependentTypeUniverses(t *testing.T) {
	e1 := New(DefaultConfig(), nil)
	e2 := New(DefaultConfig(), nil)
	assert.NotSame(t, e1.TypeUniverse(), e2.TypeUniverse())
}

func TestSessionRewritesAgainstExecutorRuleLibrary(t *testing.T) {
	e := New(DefaultConfig(), nil)
	intType := e.RootType("INTEGER")

	n := atom.NewVariable("n", intType, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), n, intType)
	e.Rules().Add(rules.NewRule(pattern, n, nil, []string{"demo"}, false))

	sess := e.NewSession("demo")
	arg := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), atom.NewInteger(big.NewInt(9), intType), intType)
	result, changed := sess.Rewrite(context.Background(), arg, nil)

	require.True(t, changed)
	assert.Zero(t, atom.Compare(result, atom.NewInteger(big.NewInt(9), intType)))
}

func TestConfigureTakesEffectImmediately(t *testing.T) {
	e := New(DefaultConfig(), nil)
	intType := e.RootType("INTEGER")
	seq := atom.NewAtomSeq(atom.EmptyAlgProp(intType), []atom.Atom{atom.NewInteger(big.NewInt(1), intType)}, intType)

	sess := e.NewSession("demo")
	_, _ = sess.Rewrite(context.Background(), seq, nil)
	assert.NotZero(t, e.Cache().Stats().NormalMisses+e.Cache().Stats().CacheMisses)

	cfg := DefaultConfig()
	cfg.Cache = false
	e.Configure(cfg)

	sess2 := e.NewSession("demo")
	_, _ = sess2.Rewrite(context.Background(), seq, nil)
	stats := e.Cache().Stats()
	assert.Zero(t, stats.NormalHits+stats.NormalMisses+stats.CacheHits+stats.CacheMisses, "a freshly configured disabled cache records nothing")
}

func TestRunManyRunsIndependentSessionsConcurrently(t *testing.T) {
	e := New(DefaultConfig(), nil)
	intType := e.RootType("INTEGER")

	atoms := make([]atom.Atom, 0, 10)
	for i := 0; i < 10; i++ {
		atoms = append(atoms, atom.NewInteger(big.NewInt(int64(i)), intType))
	}

	results, err := e.RunMany(context.Background(), atoms, nil)
	require.NoError(t, err)
	require.Len(t, results, len(atoms))
	for i, r := range results {
		assert.Zero(t, atom.Compare(r, atoms[i]), "plain constants rewrite to themselves")
	}
}
