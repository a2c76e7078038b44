package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	values []int
}

func (that *fixedSource) Intn(n int) int {
	v := that.values[0]
	that.values = that.values[1:]

	return v % n
}

func TestNew(t *testing.T) {
	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		a, seedA, err := New(42)
		require.NoError(t, err)
		b, seedB, err := New(42)
		require.NoError(t, err)

		assert.Equal(t, int64(42), seedA)
		assert.Equal(t, seedA, seedB)
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.Intn(100), b.Intn(100))
		}
	})

	t.Run("Zero seed draws a fresh one", func(t *testing.T) {
		_, seed, err := New(0)
		require.NoError(t, err)

		assert.NotZero(t, seed)
	})
}

func TestShuffle(t *testing.T) {
	// Given: a source that always picks index 0
	src := &fixedSource{values: []int{0, 0, 0}}
	items := []int{1, 2, 3, 4}

	// When: shuffling
	Shuffle(src, len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	// Then: each step swaps the tail with the head
	assert.Equal(t, []int{2, 3, 4, 1}, items)
}
