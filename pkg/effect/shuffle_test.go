package effect

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Colors are read from the snapshot taken before the pass, so once squares
// overlap a later square can copy a color that an earlier one already placed
// and the color counts drift. The multiset only survives when squares tile
// the canvas, which step 2 with randomness 2 guarantees.
func TestShuffleKeepsColorsWithoutOverlap(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		c := noisy(t, 17, 12, seed)
		before := histogram(t, c)

		e, err := NewShuffle(2, 2, WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		require.NoError(t, e.Apply(c))

		assert.Equal(t, before, histogram(t, c), "seed %d", seed)
		assert.Equal(t, 17, c.Width())
		assert.Equal(t, 12, c.Height())
	}
}

func TestShuffleMovesPixels(t *testing.T) {
	c := noisy(t, 30, 30, 42)
	orig := c.Copy()

	e, err := NewShuffle(4, 3, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	require.NoError(t, e.Apply(c))

	moved := 0
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			if !pixel(t, c, x, y).Equal(pixel(t, orig, x, y)) {
				moved++
			}
		}
	}
	assert.Greater(t, moved, 30*30/2)
}

func TestShuffleIsSeedable(t *testing.T) {
	a := noisy(t, 20, 20, 3)
	b := a.Copy()

	e1, err := NewShuffle(5, 3, WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	e2, err := NewShuffle(5, 3, WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	require.NoError(t, e1.Apply(a))
	require.NoError(t, e2.Apply(b))
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			require.True(t, pixel(t, a, x, y).Equal(pixel(t, b, x, y)))
		}
	}
}

func TestShuffleValidation(t *testing.T) {
	_, err := NewShuffle(0, 3)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewShuffle(10, 1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	e, err := NewShuffle(10, 3)
	require.NoError(t, err)
	assert.Equal(t, NameShuffle, e.Name())
	for i := 0; i < 100; i++ {
		size := e.squareSize()
		assert.GreaterOrEqual(t, size, 10)
		assert.Less(t, size, 30)
	}
}
