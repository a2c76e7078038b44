package service

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/grid"
	"github.com/rocketscienceinc/terminal-games/internal/random"
	"github.com/rocketscienceinc/terminal-games/internal/tactic21"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService plays the automated side of the grid games. The tic-tac-toe bot takes the
// first empty cell, the tactic21 bot puts its first card on a uniformly random empty cell.
type BotService interface {
	MakeTurn(game *tictactoe.Game) (int, error)
	PlayTactic21(game *tactic21.Game) (int, error)
}

type botService struct {
	rand random.Source
}

func NewBotService(rand random.Source) BotService {
	return &botService{
		rand: rand,
	}
}

// MakeTurn - plays the mark whose turn it is on the first empty cell. Returns the cell.
func (that *botService) MakeTurn(game *tictactoe.Game) (int, error) {
	cell, err := FirstEmpty(game.Board())
	if err != nil {
		return 0, err
	}

	if err = game.MakeTurn(game.Turn(), cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

// PlayTactic21 - plays the first card in hand on a random empty cell. Returns the cell.
func (that *botService) PlayTactic21(game *tactic21.Game) (int, error) {
	cell, err := RandomEmpty(game.Board(), that.rand)
	if err != nil {
		return 0, err
	}

	if err = game.Play(game.Turn(), 0, cell); err != nil {
		return 0, fmt.Errorf("bot failed to play card: %w", err)
	}

	return cell, nil
}

// FirstEmpty - lowest index empty cell.
func FirstEmpty(board *grid.Board) (int, error) {
	for pos := 0; pos < board.Len(); pos++ {
		if board.Cell(pos) == entity.CellEmpty {
			return pos, nil
		}
	}

	return 0, ErrNoAvailableMoves
}

// RandomEmpty - uniformly random empty cell.
func RandomEmpty(board *grid.Board, rand random.Source) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	return availableCells[rand.Intn(len(availableCells))], nil
}
