package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

func TestParsePosition(t *testing.T) {
	t.Run("Converts to zero based", func(t *testing.T) {
		pos, err := ParsePosition(" 5 ", 9)
		require.NoError(t, err)
		assert.Equal(t, 4, pos)

		pos, err = ParsePosition("9", 9)
		require.NoError(t, err)
		assert.Equal(t, 8, pos)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		for _, input := range []string{"", "abc", "0", "10", "-1", "1.5"} {
			_, err := ParsePosition(input, 9)
			require.ErrorIs(t, err, apperror.ErrParse, input)
		}
	})
}

func TestParseCardAndPosition(t *testing.T) {
	t.Run("Two numbers", func(t *testing.T) {
		card, pos, err := ParseCardAndPosition("1  5")
		require.NoError(t, err)
		assert.Equal(t, 0, card)
		assert.Equal(t, 4, pos)
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		for _, input := range []string{"", "1", "1 2 3", "a 5", "1 b"} {
			_, _, err := ParseCardAndPosition(input)
			require.ErrorIs(t, err, apperror.ErrParse, input)
		}
	})
}

func TestParseAction(t *testing.T) {
	for input, want := range map[string]Action{
		"h":       ActionHit,
		"hit":     ActionHit,
		"HIT":     ActionHit,
		"s":       ActionStand,
		" stand ": ActionStand,
	} {
		got, err := ParseAction(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseAction("double")
	require.ErrorIs(t, err, apperror.ErrParse)
}
