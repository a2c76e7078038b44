package tactic21

import (
	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/random"
)

const (
	MinValue = 1
	MaxValue = 11
	Copies   = 4
)

// Deck holds card values 1..11, four copies each. Cards are drawn from the end.
type Deck struct {
	values []int
}

func NewDeck() *Deck {
	values := make([]int, 0, (MaxValue-MinValue+1)*Copies)
	for value := MinValue; value <= MaxValue; value++ {
		for range Copies {
			values = append(values, value)
		}
	}

	return &Deck{values: values}
}

// NewStackedDeck - deals values in the given order.
func NewStackedDeck(values ...int) *Deck {
	stacked := make([]int, len(values))
	for i, value := range values {
		stacked[len(values)-1-i] = value
	}

	return &Deck{values: stacked}
}

func (that *Deck) Shuffle(src random.Source) {
	random.Shuffle(src, len(that.values), func(i, j int) {
		that.values[i], that.values[j] = that.values[j], that.values[i]
	})
}

func (that *Deck) Draw() (int, error) {
	if len(that.values) == 0 {
		return 0, apperror.ErrDeckEmpty
	}

	value := that.values[len(that.values)-1]
	that.values = that.values[:len(that.values)-1]

	return value, nil
}

func (that *Deck) Len() int {
	return len(that.values)
}
