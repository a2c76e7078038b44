package entity

import "strconv"

const (
	RankAce   = 1
	RankJack  = 11
	RankQueen = 12
	RankKing  = 13
)

type Suit rune

const (
	SuitSpades   Suit = '♠'
	SuitHearts   Suit = '♥'
	SuitDiamonds Suit = '♦'
	SuitClubs    Suit = '♣'
	// SuitNone is used by decks where suits do not exist, like tactic21.
	SuitNone Suit = 0
)

var Suits = [4]Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Card is a rank from 1 (ace) to 13 (king) plus a suit that never affects scoring.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit,omitempty"`
}

var rankLabels = [...]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Label - returns a short human label such as "A♠" or "10♥".
func (that Card) Label() string {
	label := strconv.Itoa(that.Rank)
	if that.Rank >= RankAce && that.Rank <= RankKing {
		label = rankLabels[that.Rank-1]
	}

	if that.Suit == SuitNone {
		return label
	}

	return label + string(that.Suit)
}

func (that Card) IsAce() bool {
	return that.Rank == RankAce
}

// Hand is the ordered list of cards dealt to one player.
type Hand []Card

func (that *Hand) Add(cards ...Card) {
	*that = append(*that, cards...)
}

func (that Hand) Ranks() []int {
	ranks := make([]int, len(that))
	for i, card := range that {
		ranks[i] = card.Rank
	}

	return ranks
}
