package rewrite

import (
	"context"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elision/elision-sub001/core/atom"
	"github.com/elision/elision-sub001/core/cache"
	"github.com/elision/elision-sub001/core/operator"
	"github.com/elision/elision-sub001/core/rules"
)

func testTypes() (universe, intType, strType *atom.NamedRootType) {
	universe = atom.NewNamedRootType(atom.TypeUniverseName, nil)
	intType = atom.NewNamedRootType("INTEGER", universe)
	strType = atom.NewNamedRootType("STRING", universe)
	return
}

func newTestEngine() *Engine {
	_, intType, _ := testTypes()
	return NewEngine(operator.NewRegistry(nil), rules.NewRulesetRegistry(), rules.NewLibrary(), cache.New(cache.DefaultConfig()), intType, nil)
}

// TestStringConcatenationUnderApply is scenario 1 of spec section 8:
// Apply("foo":STRING, "bar":STRING) -> "foobar":STRING.
func TestStringConcatenationUnderApply(t *testing.T) {
	_, _, strType := testTypes()
	e := newTestEngine()

	concat := atom.NewSimpleApply(atom.NewString("foo", strType), atom.NewString("bar", strType), strType)
	result, changed := e.Rewrite(context.Background(), concat, atom.NewBindings(), nil, uuid.Nil)

	require.True(t, changed)
	lit, ok := result.(*atom.Literal)
	require.True(t, ok)
	assert.Equal(t, "foobar", lit.StringValue())
}

func TestRewritePlainAtomWithNoRulesIsUnchanged(t *testing.T) {
	_, intType, _ := testTypes()
	e := newTestEngine()

	n := atom.NewInteger(big.NewInt(42), intType)
	result, changed := e.Rewrite(context.Background(), n, atom.NewBindings(), nil, uuid.Nil)

	assert.False(t, changed, "spec P2: rewriting a constant atom under no rules is a no-op")
	assert.Same(t, n, result)
}

func TestRewriteAppliesUserRuleToFixpoint(t *testing.T) {
	_, intType, _ := testTypes()
	e := newTestEngine()

	n := atom.NewVariable("n", intType, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), n, intType)
	e.Rules.Add(rules.NewRule(pattern, n, nil, []string{"demo"}, false))

	arg := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), atom.NewInteger(big.NewInt(21), intType), intType)
	result, changed := e.Rewrite(context.Background(), arg, atom.NewBindings(), []string{"demo"}, uuid.Nil)

	require.True(t, changed)
	assert.Zero(t, atom.Compare(result, atom.NewInteger(big.NewInt(21), intType)))
}

// TestCacheHitShortCircuitsRules is scenario 6 of spec section 8: a second
// rewrite of the same atom under the same ruleset scope neither re-invokes
// the rule library nor increments the cache's miss counter.
func TestCacheHitShortCircuitsRules(t *testing.T) {
	_, intType, _ := testTypes()
	e := newTestEngine()

	n := atom.NewVariable("n", intType, nil, nil, false)
	pattern := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), n, intType)
	e.Rules.Add(rules.NewRule(pattern, n, nil, []string{"demo"}, false))

	arg := atom.NewSimpleApply(atom.NewSymbol("unwrap", intType), atom.NewInteger(big.NewInt(7), intType), intType)
	first, _ := e.Rewrite(context.Background(), arg, atom.NewBindings(), []string{"demo"}, uuid.Nil)

	statsBefore := e.Cache.Stats()
	second, changed := e.Rewrite(context.Background(), arg, atom.NewBindings(), []string{"demo"}, uuid.Nil)
	statsAfter := e.Cache.Stats()

	assert.True(t, changed)
	assert.Zero(t, atom.Compare(first, second))
	assert.Greater(t, statsAfter.CacheHits, statsBefore.CacheHits, "the second rewrite must hit the cache")
}

func TestUnboundedRecursionIsBounded(t *testing.T) {
	_, intType, _ := testTypes()
	e := newTestEngine()
	e.MaxApplyDepth = 8

	c := &call{engine: e}
	opRef := atom.NewOperatorRef("loop", intType)

	// A native handler that recurses into its own operator via the same
	// call (so the shared applyDepth counter actually grows), standing in
	// for the "Applicable overflows the call stack" scenario spec section
	// 4.6 describes -- Go has no real stack-overflow signal to catch, so
	// the bounded counter (Design Notes, Open Question decisions) is what
	// this test exercises.
	native := func(ctx context.Context, data operator.ApplyData) (atom.Atom, error) {
		return c.smartApply(ctx, data.Operator, data.Arg, false, intType)
	}
	op := operator.NewSymbolicOperator("loop", []string{"x"}, nil, native)
	require.NoError(t, e.Operators.Register(op))

	_, err := c.smartApply(context.Background(), opRef, atom.NewInteger(big.NewInt(1), intType), false, intType)
	assert.ErrorIs(t, err, ErrUnboundedRecursion)
}
