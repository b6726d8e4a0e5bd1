package operator

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elision/elision-sub001/core/atom"
)

func TestNewRegistryPreregistersBuiltins(t *testing.T) {
	r := NewRegistry(nil)
	assert.ElementsMatch(t, []string{"MAP", "xx", "LIST"}, r.Names())
}

func TestRegisterRejectsInvalidName(t *testing.T) {
	r := NewRegistry(nil)
	err := r.Register(NewSymbolicOperator("1bad", nil, nil, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperatorName)
}

func TestRegisterWarnsAndOverwritesByDefault(t *testing.T) {
	r := NewRegistry(nil)
	first := NewSymbolicOperator("custom", nil, nil, nil)
	second := NewSymbolicOperator("custom", []string{"x"}, nil, nil)

	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	got, err := r.Get("custom")
	require.NoError(t, err)
	assert.Same(t, second, got, "redefinition overwrites by default")
}

func TestRegisterRejectsRedefinitionWhenDisallowed(t *testing.T) {
	r := NewRegistry(nil)
	r.AllowRedefinition = false
	require.NoError(t, r.Register(NewSymbolicOperator("custom", nil, nil, nil)))

	err := r.Register(NewSymbolicOperator("custom", nil, nil, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperatorConflict)
}

func TestGetUnknownSuggestsNearestName(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Get("MAQ") // one substitution away from MAP
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOperatorNotFound)
	assert.Contains(t, err.Error(), "MAP")
}

func TestSymbolicOperatorZipsParamsForNativeHandler(t *testing.T) {
	universe := atom.NewNamedRootType(atom.TypeUniverseName, nil)
	intType := atom.NewNamedRootType("INTEGER", universe)

	var gotA, gotB atom.Atom
	native := func(ctx context.Context, data ApplyData) (atom.Atom, error) {
		var ok bool
		gotA, ok = data.Bindings.Lookup("a")
		require.True(t, ok)
		gotB, ok = data.Bindings.Lookup("b")
		require.True(t, ok)
		return data.Arg, nil
	}
	op := NewSymbolicOperator("xx", []string{"a", "b"}, nil, native)
	require.True(t, op.IsApplicable())

	one := atom.NewInteger(big.NewInt(1), intType)
	two := atom.NewInteger(big.NewInt(2), intType)
	arg := atom.NewAtomSeq(atom.EmptyAlgProp(intType), []atom.Atom{one, two}, intType)

	_, err := op.ApplyTo(context.Background(), ApplyData{Operator: atom.NewOperatorRef("xx", intType), Arg: arg})
	require.NoError(t, err)
	assert.Same(t, one, gotA)
	assert.Same(t, two, gotB)
}
