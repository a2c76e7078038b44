package usecase

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/tactic21"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

// Session is one interactive game played over a console until it ends, input runs out or
// ctx is canceled.
type Session interface {
	Play(ctx context.Context) error
}

type terminal interface {
	ReadLine(ctx context.Context) (string, error)
	Printf(format string, args ...any)
	Println(args ...any)
	Print(s string)
	Err() error
}

type botService interface {
	MakeTurn(game *tictactoe.Game) (int, error)
	PlayTactic21(game *tactic21.Game) (int, error)
}

// isRecoverable - errors caused by bad user input, the player is asked again.
func isRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrParse) ||
		errors.Is(err, apperror.ErrInvalidMove) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrInvalidCard)
}
