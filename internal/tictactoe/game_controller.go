package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/grid"
)

const DefaultSize = 3

// Game is a two player tic-tac-toe game on a size x size board. X always moves first.
type Game struct {
	ID    string
	board *grid.Board
	turn  entity.Cell
}

func NewGame(id string, size int) (*Game, error) {
	board, err := grid.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		ID:    id,
		board: board,
		turn:  entity.CellX,
	}, nil
}

// MakeTurn - places mark on cell and passes the turn if the game goes on.
func (that *Game) MakeTurn(mark entity.Cell, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	if err := that.validateMove(mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := that.board.Place(cell, mark); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if !that.IsFinished() {
		that.turn = mark.Opponent()
	}

	return nil
}

// validateMove - checks that it is mark's turn.
func (that *Game) validateMove(mark entity.Cell) error {
	if that.turn != mark {
		return apperror.ErrNotYourTurn
	}

	return nil
}

func (that *Game) Result() entity.Result {
	return that.board.Result()
}

func (that *Game) IsFinished() bool {
	return that.board.Result().IsTerminal()
}

// Turn - the mark expected to move next. After the game ends it stays on the last mover.
func (that *Game) Turn() entity.Cell {
	return that.turn
}

// Board - the underlying board, for rendering and for bots.
func (that *Game) Board() *grid.Board {
	return that.board
}
