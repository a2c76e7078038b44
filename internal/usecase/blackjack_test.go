package usecase

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/terminal-games/internal/blackjack"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/testing/suite"
)

// stackedDeck - the player gets the first two ranks, the dealer the third.
func stackedDeck(ranks ...int) func() *blackjack.Deck {
	return func() *blackjack.Deck {
		cards := make([]entity.Card, len(ranks))
		for i, rank := range ranks {
			cards[i] = entity.Card{Rank: rank, Suit: entity.SuitHearts}
		}

		return blackjack.NewStackedDeck(cards...)
	}
}

func TestBlackjackSession_Play(t *testing.T) {
	t.Run("Standing on 19 beats a dealer 18", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: player 10+9, dealer 10 then 8
		cons, out := st.Console("s")
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(10, 9, 10, 8), 17)

		// When: the player stands
		err := session.Play(ctx)

		// Then: the dealer stops at 18 and the player wins
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Dealer: 10♥ 8♥ (18)\nPlayer: 10♥ 9♥ (19)\nYou win!\n"), out.String())
	})

	t.Run("Bust ends the round", func(t *testing.T) {
		ctx, st := suite.New(t)

		cons, out := st.Console("double", "h")
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(10, 6, 10, entity.RankKing), 17)

		err := session.Play(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out.String(), "Invalid choice"))
		assert.True(t, strings.HasSuffix(out.String(), "Player: 10♥ 6♥ K♥ (26)\nBust! Dealer wins\n"), out.String())
	})

	t.Run("Blackjack stands without asking", func(t *testing.T) {
		ctx, st := suite.New(t)

		cons, out := st.Console()
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(entity.RankAce, entity.RankKing, 10, 7), 17)

		err := session.Play(ctx)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Hit or stand")
		assert.True(t, strings.HasSuffix(out.String(), "You win!\n"), out.String())
	})

	t.Run("Hitting an empty deck asks again", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: no cards beyond the opening deal
		cons, out := st.Console("h", "s")
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(10, 6, 10), 17)

		err := session.Play(ctx)

		// Then: the dealer cannot draw either and 16 beats 10
		require.NoError(t, err)
		assert.Contains(t, out.String(), "No cards left")
		assert.True(t, strings.HasSuffix(out.String(), "You win!\n"), out.String())
	})

	t.Run("Equal totals push", func(t *testing.T) {
		ctx, st := suite.New(t)

		cons, out := st.Console("stand")
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(10, 8, 10, 8), 17)

		err := session.Play(ctx)

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Draw!\n"), out.String())
	})

	t.Run("Stops at end of input", func(t *testing.T) {
		ctx, st := suite.New(t)

		cons, _ := st.Console()
		session := NewBlackjackSession(st.Logger, cons, stackedDeck(10, 6, 10), 17)

		err := session.Play(ctx)

		require.ErrorIs(t, err, io.EOF)
	})
}
