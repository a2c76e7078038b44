// Package grid implements the board shared by the grid games: a fixed number of cells,
// each empty or holding a player mark, and the precomputed lines that decide a winner.
package grid

import (
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
)

// Board is a size x size grid. The number of cells never changes after New.
//
// Board keeps its own result: every successful Place evaluates the win rule first and
// fullness second, so a move that completes a line on the last
// empty cell is a win, not a draw. Once the result is terminal Place fails with
// apperror.ErrGameOver.
type Board struct {
	size   int
	cells  []entity.Cell
	lines  [][]int
	byCell [][][]int
	filled int
	rule   WinRule
	result entity.Result
}

// WinRule decides, right after a mark was placed at last, which mark (if any) has won.
type WinRule func(board *Board, last int) entity.Cell

type Option func(*Board)

// WithWinRule - replaces the default "one mark owns a whole line" rule.
func WithWinRule(rule WinRule) Option {
	return func(board *Board) {
		board.rule = rule
	}
}

func New(size int, opts ...Option) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	lines := Lines(size)

	board := &Board{
		size:   size,
		cells:  make([]entity.Cell, size*size),
		lines:  lines,
		byCell: linesThrough(size, lines),
		rule:   (*Board).WinnerAt,
		result: entity.InProgress(),
	}

	for _, opt := range opts {
		opt(board)
	}

	return board, nil
}

// MustNew - same as New but panics on an invalid size. Intended for constant sizes.
func MustNew(size int, opts ...Option) *Board {
	board, err := New(size, opts...)
	if err != nil {
		panic(err)
	}

	return board
}

// Place - puts mark on the empty cell at pos.
func (that *Board) Place(pos int, mark entity.Cell) error {
	if that.result.IsTerminal() {
		return apperror.ErrGameOver
	}

	if pos < 0 || pos >= len(that.cells) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, pos)
	}

	if mark.IsEmpty() {
		return fmt.Errorf("%w: empty mark", apperror.ErrInvalidMove)
	}

	if !that.cells[pos].IsEmpty() {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, pos)
	}

	that.cells[pos] = mark
	that.filled++

	switch winner := that.rule(that, pos); {
	case !winner.IsEmpty():
		that.result = entity.Won(winner)
	case that.IsFull():
		that.result = entity.Draw()
	}

	return nil
}

// WinnerAt - returns the mark that owns a complete line through last, or CellEmpty.
func (that *Board) WinnerAt(last int) entity.Cell {
	if last < 0 || last >= len(that.cells) {
		return entity.CellEmpty
	}

	for _, line := range that.byCell[last] {
		if mark := that.lineOwner(line); !mark.IsEmpty() {
			return mark
		}
	}

	return entity.CellEmpty
}

// Winner - scans every line, not only the ones through the last move.
func (that *Board) Winner() entity.Cell {
	for _, line := range that.lines {
		if mark := that.lineOwner(line); !mark.IsEmpty() {
			return mark
		}
	}

	return entity.CellEmpty
}

// LineOwner - returns the mark occupying every cell of line, or CellEmpty.
func (that *Board) LineOwner(line []int) entity.Cell {
	return that.lineOwner(line)
}

func (that *Board) lineOwner(line []int) entity.Cell {
	first := that.cells[line[0]]
	if first.IsEmpty() {
		return entity.CellEmpty
	}

	for _, pos := range line[1:] {
		if that.cells[pos] != first {
			return entity.CellEmpty
		}
	}

	return first
}

func (that *Board) IsFull() bool {
	return that.filled == len(that.cells)
}

func (that *Board) Result() entity.Result {
	return that.result
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Len() int {
	return len(that.cells)
}

// Cell - returns the content of pos; out of range positions read as empty.
func (that *Board) Cell(pos int) entity.Cell {
	if pos < 0 || pos >= len(that.cells) {
		return entity.CellEmpty
	}

	return that.cells[pos]
}

// Cells - returns a copy of the board for rendering.
func (that *Board) Cells() []entity.Cell {
	cells := make([]entity.Cell, len(that.cells))
	copy(cells, that.cells)

	return cells
}

func (that *Board) EmptyCells() []int {
	empty := make([]int, 0, len(that.cells)-that.filled)
	for i, cell := range that.cells {
		if cell.IsEmpty() {
			empty = append(empty, i)
		}
	}

	return empty
}

// Lines - returns every winning line of the board.
func (that *Board) Lines() [][]int {
	return that.lines
}

// LinesThrough - returns the winning lines that contain pos.
func (that *Board) LinesThrough(pos int) [][]int {
	if pos < 0 || pos >= len(that.cells) {
		return nil
	}

	return that.byCell[pos]
}
