package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/tactic21"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
)

// Tactic21Session - the human plays X and moves first, the bot plays O.
type Tactic21Session struct {
	logger  *slog.Logger
	console terminal
	bot     botService

	newDeck  func() *tactic21.Deck
	handSize int
}

func NewTactic21Session(logger *slog.Logger, cons terminal, bot botService, newDeck func() *tactic21.Deck, handSize int) *Tactic21Session {
	return &Tactic21Session{
		logger:   logger.With("component", "tactic21"),
		console:  cons,
		bot:      bot,
		newDeck:  newDeck,
		handSize: handSize,
	}
}

func (that *Tactic21Session) Play(ctx context.Context) error {
	game, err := tactic21.NewGame(uuid.NewString(), that.newDeck(), that.handSize)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", game.ID)
	log.Info("game started", "hand_size", that.handSize)

	players := map[entity.Cell]*entity.Player{
		entity.CellX: entity.NewPlayer("You", entity.CellX),
		entity.CellO: entity.NewBotPlayer("AI", entity.CellO),
	}

	for !game.IsFinished() {
		that.console.Print(console.RenderTactic21Board(game))

		if !players[game.Turn()].IsBot() {
			if err = that.humanTurn(ctx, game); err != nil {
				log.Info("game interrupted", "error", err)

				return err
			}

			continue
		}

		cell, err := that.bot.PlayTactic21(game)
		if err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}
		that.console.Printf("AI plays %d at %d\n", game.Value(cell), cell+1)
	}

	that.console.Print(console.RenderTactic21Board(game))
	that.announce(game, players)

	result := game.Result()
	log.Info("game finished", "status", result.Status.String(), "winner", result.Winner.String())

	return that.console.Err()
}

func (that *Tactic21Session) humanTurn(ctx context.Context, game *tactic21.Game) error {
	for {
		that.console.Println("Your hand:")
		that.console.Println(console.RenderTactic21Hand(game.Hand(entity.CellX)))
		that.console.Print("Select card index and board position (e.g., 1 5): ")

		line, err := that.console.ReadLine(ctx)
		if err != nil {
			return err
		}

		card, cell, err := console.ParseCardAndPosition(line)
		if err == nil {
			err = game.Play(entity.CellX, card, cell)
		}

		if err == nil {
			return nil
		}

		if !isRecoverable(err) {
			return fmt.Errorf("failed to play card: %w", err)
		}

		that.logger.Debug("rejected play", "input", line, "error", err)
		that.console.Println("Invalid input")
	}
}

func (that *Tactic21Session) announce(game *tactic21.Game, players map[entity.Cell]*entity.Player) {
	result := game.Result()

	// the board itself only records a line of 21, everything else went to the tiebreak
	if game.Board().Result().Status != entity.StatusWon {
		x, o := game.TiebreakPoints()
		that.console.Printf("Tiebreak: %s %.1f, %s %.1f\n", players[entity.CellX].Name, x, players[entity.CellO].Name, o)
	}

	switch {
	case result.Status == entity.StatusDraw:
		that.console.Println("Draw")
	case players[result.Winner].IsBot():
		that.console.Printf("%s wins!\n", players[result.Winner].Name)
	default:
		that.console.Println("You win!")
	}
}
