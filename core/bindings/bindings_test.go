package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingsImmutability(t *testing.T) {
	t.Run("PlusReturnsNewValue", func(t *testing.T) {
		b0 := New[int]()
		b1 := b0.Plus("x", 1)

		_, ok := b0.Lookup("x")
		assert.False(t, ok, "receiver must be unmodified")

		v, ok := b1.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("PlusOverridesExisting", func(t *testing.T) {
		b0 := New[int]().Plus("x", 1)
		b1 := b0.Plus("x", 2)

		v0, _ := b0.Lookup("x")
		v1, _ := b1.Lookup("x")
		assert.Equal(t, 1, v0)
		assert.Equal(t, 2, v1)
	})

	t.Run("MinusLeavesReceiverIntact", func(t *testing.T) {
		b0 := New[int]().Plus("x", 1).Plus("y", 2)
		b1 := b0.Minus("x")

		_, ok0 := b0.Lookup("x")
		assert.True(t, ok0)

		_, ok1 := b1.Lookup("x")
		assert.False(t, ok1)
		v, ok := b1.Lookup("y")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})
}

func TestBindingsMerge(t *testing.T) {
	a := New[int]().Plus("x", 1).Plus("y", 2)
	b := New[int]().Plus("y", 20).Plus("z", 3)

	merged := a.Merge(b)

	vx, _ := merged.Lookup("x")
	vy, _ := merged.Lookup("y")
	vz, _ := merged.Lookup("z")
	assert.Equal(t, 1, vx)
	assert.Equal(t, 20, vy, "other's binding wins on overlap")
	assert.Equal(t, 3, vz)

	// receivers unmodified
	ay, _ := a.Lookup("y")
	assert.Equal(t, 2, ay)
}

func TestBindingsNilReceiver(t *testing.T) {
	var b *Bindings[int]
	assert.Equal(t, 0, b.Size())
	_, ok := b.Lookup("x")
	assert.False(t, ok)
	assert.Nil(t, b.Names())
}

func TestBindingsSideCaches(t *testing.T) {
	b := New[int]()

	_, ok := b.TakePatternSeq()
	assert.False(t, ok, "side cache starts unset")

	b.SetPatternSeq([]int{1, 2, 3})
	seq, ok := b.TakePatternSeq()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, seq)

	_, ok = b.TakePatternSeq()
	assert.False(t, ok, "a second Take in the same session reports unset")

	b.SetSubjectSeq([]int{4, 5})
	seq2, ok := b.TakeSubjectSeq()
	require.True(t, ok)
	assert.Equal(t, []int{4, 5}, seq2)
}

func TestBindingsOf(t *testing.T) {
	init := map[string]int{"x": 1}
	b := Of(init)

	init["x"] = 99
	v, ok := b.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1, v, "Of must copy, not alias, the initial map")
}
