package investment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

func TestProject(t *testing.T) {
	t.Run("Two years at ten percent", func(t *testing.T) {
		values, err := Project(1.1, 100, DefaultYears)
		require.NoError(t, err)

		require.Len(t, values, 3)
		assert.InDelta(t, 100.0, values[0], 1e-9)
		assert.InDelta(t, 110.0, values[1], 1e-9)
		assert.InDelta(t, 121.0, values[2], 1e-9)
	})

	t.Run("Zero years is only the principal", func(t *testing.T) {
		values, err := Project(2, 50, 0)
		require.NoError(t, err)

		assert.Equal(t, []float64{50}, values)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		for _, tc := range []struct {
			multiplier, principal float64
			years                 int
		}{
			{-1, 100, 2},
			{1.1, -5, 2},
			{math.NaN(), 100, 2},
			{1.1, math.Inf(1), 2},
			{1.1, 100, -1},
		} {
			_, err := Project(tc.multiplier, tc.principal, tc.years)

			assert.ErrorIs(t, err, apperror.ErrInvalidAmount, "%+v", tc)
		}
	})
}
