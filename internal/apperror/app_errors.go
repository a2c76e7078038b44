package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrGameOver         = errors.New("game is already over")
	ErrParse            = errors.New("could not parse input")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidCard      = errors.New("invalid card index")
	ErrDeckEmpty        = errors.New("deck is empty")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrUnknownGame      = errors.New("unknown game")
)
