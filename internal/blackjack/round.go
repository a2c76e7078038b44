// Package blackjack plays a single round of 21 against a dealer.
//
// The player gets two cards and the dealer one. The player hits until standing, busting
// or reaching exactly 21 (which stands automatically). The dealer then draws while under
// DealerStandsOn and the higher total that did not bust wins.
package blackjack

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/score"
)

const DefaultDealerStandsOn = 17

type Outcome uint8

const (
	OutcomePending Outcome = iota
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomePush
)

func (that Outcome) String() string {
	switch that {
	case OutcomePlayerWins:
		return "You win!"
	case OutcomeDealerWins:
		return "Dealer wins!"
	case OutcomePush:
		return "Draw!"
	default:
		return "In progress"
	}
}

type Round struct {
	ID             string
	Player         entity.Hand
	Dealer         entity.Hand
	DealerStandsOn int

	deck    *Deck
	outcome Outcome
	bust    bool
}

// NewRound - deals the opening hands from deck. dealerStandsOn <= 0 uses the default.
func NewRound(id string, deck *Deck, dealerStandsOn int) (*Round, error) {
	if dealerStandsOn <= 0 {
		dealerStandsOn = DefaultDealerStandsOn
	}

	that := &Round{
		ID:             id,
		DealerStandsOn: dealerStandsOn,
		deck:           deck,
	}

	for _, hand := range []*entity.Hand{&that.Player, &that.Player, &that.Dealer} {
		card, err := deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("failed to deal: %w", err)
		}
		hand.Add(card)
	}

	if err := that.checkAutoStand(); err != nil {
		return nil, err
	}

	return that, nil
}

// Hit - draws one card for the player.
func (that *Round) Hit() error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	card, err := that.deck.Draw()
	if err != nil {
		return fmt.Errorf("failed to hit: %w", err)
	}
	that.Player.Add(card)

	if score.IsBust(that.PlayerScore()) {
		that.bust = true
		that.outcome = OutcomeDealerWins

		return nil
	}

	return that.checkAutoStand()
}

// Stand - ends the player's turn and plays the dealer's hand.
func (that *Round) Stand() error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	for score.Hand(that.Dealer) < that.DealerStandsOn {
		card, err := that.deck.Draw()
		if errors.Is(err, apperror.ErrDeckEmpty) {
			break
		}
		if err != nil {
			return fmt.Errorf("dealer failed to draw: %w", err)
		}
		that.Dealer.Add(card)
	}

	that.outcome = compare(that.PlayerScore(), that.DealerScore())

	return nil
}

func (that *Round) checkAutoStand() error {
	if that.PlayerScore() == score.Target {
		return that.Stand()
	}

	return nil
}

func compare(player, dealer int) Outcome {
	switch {
	case score.IsBust(dealer) || player > dealer:
		return OutcomePlayerWins
	case player == dealer:
		return OutcomePush
	default:
		return OutcomeDealerWins
	}
}

func (that *Round) PlayerScore() int {
	return score.Hand(that.Player)
}

func (that *Round) DealerScore() int {
	return score.Hand(that.Dealer)
}

func (that *Round) Outcome() Outcome {
	return that.outcome
}

// IsBust - the player went over 21.
func (that *Round) IsBust() bool {
	return that.bust
}

func (that *Round) IsFinished() bool {
	return that.outcome != OutcomePending
}

// Result - the round expressed as a game result: X is the player, O the dealer.
func (that *Round) Result() entity.Result {
	switch that.outcome {
	case OutcomePlayerWins:
		return entity.Won(entity.CellX)
	case OutcomeDealerWins:
		return entity.Won(entity.CellO)
	case OutcomePush:
		return entity.Draw()
	default:
		return entity.InProgress()
	}
}
