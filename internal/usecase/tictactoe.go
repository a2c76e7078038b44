package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
)

type TicTacToeSession struct {
	logger  *slog.Logger
	console terminal
	bot     botService

	size  int
	human entity.Cell
}

func NewTicTacToeSession(logger *slog.Logger, cons terminal, bot botService, size int, human entity.Cell) *TicTacToeSession {
	return &TicTacToeSession{
		logger:  logger.With("component", "tictactoe"),
		console: cons,
		bot:     bot,
		size:    size,
		human:   human,
	}
}

// Play - human against the first-empty-cell bot. X always moves first.
func (that *TicTacToeSession) Play(ctx context.Context) error {
	game, err := tictactoe.NewGame(uuid.NewString(), that.size)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", game.ID)
	log.Info("game started", "size", that.size, "human", that.human.String())

	players := map[entity.Cell]*entity.Player{
		that.human:            entity.NewPlayer("You", that.human),
		that.human.Opponent(): entity.NewBotPlayer("Bot", that.human.Opponent()),
	}

	for !game.IsFinished() {
		that.console.Print(console.RenderBoard(game.Board()))

		if !players[game.Turn()].IsBot() {
			if err = that.humanTurn(ctx, game); err != nil {
				log.Info("game interrupted", "error", err)

				return err
			}

			continue
		}

		cell, err := that.bot.MakeTurn(game)
		if err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}
		log.Debug("bot moved", "cell", cell)
	}

	that.console.Print(console.RenderBoard(game.Board()))

	result := game.Result()
	if result.Status == entity.StatusWon {
		that.console.Printf("%s wins!\n", result.Winner)
	} else {
		that.console.Println("Draw!")
	}

	winner := ""
	if player, ok := players[result.Winner]; ok {
		winner = player.Name
	}
	log.Info("game finished", "status", result.Status.String(), "winner", winner)

	return that.console.Err()
}

func (that *TicTacToeSession) humanTurn(ctx context.Context, game *tictactoe.Game) error {
	cells := game.Board().Len()

	for {
		that.console.Printf("Enter move (1-%d): ", cells)

		line, err := that.console.ReadLine(ctx)
		if err != nil {
			return err
		}

		cell, err := console.ParsePosition(line, cells)
		if err == nil {
			err = game.MakeTurn(that.human, cell)
		}

		if err == nil {
			return nil
		}

		if !isRecoverable(err) {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		that.logger.Debug("rejected move", "input", line, "error", err)
		that.console.Println("Invalid move")
	}
}
