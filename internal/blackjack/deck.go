package blackjack

import (
	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/random"
)

// Deck is a pile of cards drawn from the top (end of the slice).
type Deck struct {
	cards []entity.Card
}

// NewDeck - a full 52 card deck, ranks 1..13 in each suit, not shuffled.
func NewDeck() *Deck {
	cards := make([]entity.Card, 0, 52)
	for rank := entity.RankAce; rank <= entity.RankKing; rank++ {
		for _, suit := range entity.Suits {
			cards = append(cards, entity.Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{cards: cards}
}

// NewStackedDeck - a deck that deals cards in the given order. Used for scripted games.
func NewStackedDeck(cards ...entity.Card) *Deck {
	stacked := make([]entity.Card, len(cards))
	for i, card := range cards {
		stacked[len(cards)-1-i] = card
	}

	return &Deck{cards: stacked}
}

func (that *Deck) Shuffle(src random.Source) {
	random.Shuffle(src, len(that.cards), func(i, j int) {
		that.cards[i], that.cards[j] = that.cards[j], that.cards[i]
	})
}

func (that *Deck) Draw() (entity.Card, error) {
	if len(that.cards) == 0 {
		return entity.Card{}, apperror.ErrDeckEmpty
	}

	card := that.cards[len(that.cards)-1]
	that.cards = that.cards[:len(that.cards)-1]

	return card, nil
}

func (that *Deck) Len() int {
	return len(that.cards)
}
