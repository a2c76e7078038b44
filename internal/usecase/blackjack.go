package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/blackjack"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
)

type BlackjackSession struct {
	logger  *slog.Logger
	console terminal

	newDeck        func() *blackjack.Deck
	dealerStandsOn int
}

// NewBlackjackSession - newDeck must return a fresh, already shuffled deck for every round.
func NewBlackjackSession(logger *slog.Logger, cons terminal, newDeck func() *blackjack.Deck, dealerStandsOn int) *BlackjackSession {
	return &BlackjackSession{
		logger:         logger.With("component", "blackjack"),
		console:        cons,
		newDeck:        newDeck,
		dealerStandsOn: dealerStandsOn,
	}
}

// Play - one round against the dealer.
func (that *BlackjackSession) Play(ctx context.Context) error {
	round, err := blackjack.NewRound(uuid.NewString(), that.newDeck(), that.dealerStandsOn)
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", round.ID)
	log.Info("round started", "dealer_stands_on", that.dealerStandsOn)

	for !round.IsFinished() {
		that.printHands(round)

		if err = that.playerTurn(ctx, round); err != nil {
			log.Info("round interrupted", "error", err)

			return err
		}
	}

	that.printHands(round)

	if round.IsBust() {
		that.console.Println("Bust! Dealer wins")
	} else {
		that.console.Println(round.Outcome().String())
	}

	log.Info("round finished",
		"outcome", round.Outcome().String(),
		"player_score", round.PlayerScore(),
		"dealer_score", round.DealerScore(),
	)

	return that.console.Err()
}

func (that *BlackjackSession) playerTurn(ctx context.Context, round *blackjack.Round) error {
	for {
		that.console.Print("Hit or stand (h/s)? ")

		line, err := that.console.ReadLine(ctx)
		if err != nil {
			return err
		}

		action, err := console.ParseAction(line)
		if err != nil {
			that.console.Println("Invalid choice")

			continue
		}

		switch action {
		case console.ActionHit:
			err = round.Hit()
		case console.ActionStand:
			err = round.Stand()
		}

		if errors.Is(err, apperror.ErrDeckEmpty) {
			that.console.Println("No cards left")

			continue
		}

		if err != nil {
			return fmt.Errorf("failed to apply %q: %w", line, err)
		}

		return nil
	}
}

func (that *BlackjackSession) printHands(round *blackjack.Round) {
	that.console.Println(console.RenderHand("Dealer", round.Dealer, true))
	that.console.Println(console.RenderHand("Player", round.Player, true))
}
