package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/blackjack"
	"github.com/rocketscienceinc/terminal-games/internal/config"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/random"
	"github.com/rocketscienceinc/terminal-games/internal/service"
	"github.com/rocketscienceinc/terminal-games/internal/tactic21"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
	"github.com/rocketscienceinc/terminal-games/internal/usecase"
)

const Usage = `usage:
  games tictactoe
  games blackjack
  games tactic21
  games invest <multiplier> <amount>`

// RunApp - runs the game named by args[0] on in and out until it ends or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	if len(args) == 0 {
		return fmt.Errorf("%w: no game given", apperror.ErrUnknownGame)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	rng, seed, err := random.New(conf.Seed)
	if err != nil {
		return fmt.Errorf("could not create random source: %w", err)
	}
	log.Info("Random source ready", "seed", seed)

	cons := console.New(in, out)
	bot := service.NewBotService(rng)

	name, rest := args[0], args[1:]

	var session usecase.Session

	switch name {
	case "tictactoe":
		human, ok := entity.ParseCell(conf.TicTacToe.HumanMark)
		if !ok {
			return fmt.Errorf("%w: human mark %q", config.ErrInvalidConfig, conf.TicTacToe.HumanMark)
		}
		session = usecase.NewTicTacToeSession(logger, cons, bot, conf.TicTacToe.BoardSize, human)
	case "blackjack", "game21":
		newDeck := func() *blackjack.Deck {
			deck := blackjack.NewDeck()
			deck.Shuffle(rng)

			return deck
		}
		session = usecase.NewBlackjackSession(logger, cons, newDeck, conf.Blackjack.DealerStandsOn)
	case "tactic21":
		newDeck := func() *tactic21.Deck {
			deck := tactic21.NewDeck()
			deck.Shuffle(rng)

			return deck
		}
		session = usecase.NewTactic21Session(logger, cons, bot, newDeck, conf.Tactic21.HandSize)
	case "invest", "investment":
		return runInvestment(logger, cons, conf.Investment.Years, rest)
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownGame, name)
	}

	log.Info("Starting game", "game", name)

	err = session.Play(ctx)
	switch {
	case errors.Is(err, io.EOF):
		log.Info("Input closed, leaving game", "game", name)
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Game canceled", "game", name)
		return nil
	case err != nil:
		return fmt.Errorf("%s failed: %w", name, err)
	}

	return nil
}

func runInvestment(logger *slog.Logger, cons *console.Console, years int, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: invest needs <multiplier> <amount>", apperror.ErrParse)
	}

	multiplier, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: multiplier %q", apperror.ErrParse, args[0])
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q", apperror.ErrParse, args[1])
	}

	return usecase.NewInvestmentCalculator(logger, cons, years).Run(multiplier, amount)
}
