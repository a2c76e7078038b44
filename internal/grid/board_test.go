package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
)

const (
	x = entity.CellX
	o = entity.CellO
	e = entity.CellEmpty
)

// fill - places marks in order, skipping empty entries.
func fill(t *testing.T, board *Board, cells []entity.Cell) {
	t.Helper()

	for pos, mark := range cells {
		if mark.IsEmpty() {
			continue
		}
		require.NoError(t, board.Place(pos, mark))
	}
}

func TestNew(t *testing.T) {
	t.Run("Creates an empty in progress board", func(t *testing.T) {
		// When: a 3x3 board is created
		board, err := New(3)
		require.NoError(t, err)

		// Then: every cell is empty and the game is in progress
		assert.Equal(t, 9, board.Len())
		assert.Equal(t, 3, board.Size())
		assert.Equal(t, make([]entity.Cell, 9), board.Cells())
		assert.Equal(t, entity.InProgress(), board.Result())
		assert.False(t, board.IsFull())
	})

	t.Run("Rejects unsupported sizes", func(t *testing.T) {
		for _, size := range []int{-1, 0, 2, 10} {
			// When: a board with an unsupported size is requested
			board, err := New(size)

			// Then: ErrInvalidBoardSize is returned
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Changes exactly one cell", func(t *testing.T) {
		// Given: a board with some marks
		board := MustNew(3)
		fill(t, board, []entity.Cell{x, o, e, e, e, e, e, e, e})
		before := board.Cells()

		// When: X places on the centre
		err := board.Place(4, x)
		require.NoError(t, err)

		// Then: only the centre changed
		after := board.Cells()
		for pos := range after {
			if pos == 4 {
				assert.Equal(t, x, after[pos])
				continue
			}
			assert.Equal(t, before[pos], after[pos], "cell %d", pos)
		}
	})

	t.Run("Fails on occupied cell and leaves the board unchanged", func(t *testing.T) {
		// Given: a board with X in the corner
		board := MustNew(3)
		require.NoError(t, board.Place(0, x))
		before := board.Cells()

		// When: O tries the same cell
		err := board.Place(0, o)

		// Then: ErrInvalidMove and nothing moved
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Fails on out of range cells", func(t *testing.T) {
		board := MustNew(3)

		for _, pos := range []int{-1, 9, 20} {
			// When: a position outside the board is used
			err := board.Place(pos, x)

			// Then: ErrInvalidMove is returned
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
		}

		assert.Equal(t, make([]entity.Cell, 9), board.Cells())
	})

	t.Run("Fails on empty mark", func(t *testing.T) {
		board := MustNew(3)

		err := board.Place(0, entity.CellEmpty)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Winning final move is a win, not a draw", func(t *testing.T) {
		// Given: a board with one empty cell whose filling completes X's column
		board := MustNew(3)
		fill(t, board, []entity.Cell{
			x, o, x,
			o, o, x,
			x, x, e,
		})

		// When: X takes the last cell
		err := board.Place(8, x)
		require.NoError(t, err)

		// Then: the board is full and X has won
		assert.True(t, board.IsFull())
		assert.Equal(t, entity.Won(x), board.Result())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a board filled without any line
		board := MustNew(3)
		fill(t, board, []entity.Cell{
			x, o, x,
			x, o, o,
			o, x, x,
		})

		// Then: the result is a draw and nobody won
		assert.Equal(t, entity.Draw(), board.Result())
		assert.Equal(t, entity.CellEmpty, board.Winner())
	})

	t.Run("Fails with ErrGameOver after a terminal state", func(t *testing.T) {
		// Given: X owns the top row
		board := MustNew(3)
		fill(t, board, []entity.Cell{x, x, e, o, o, e, e, e, e})
		require.NoError(t, board.Place(2, x))
		require.Equal(t, entity.Won(x), board.Result())

		// When: O tries to keep playing
		err := board.Place(5, o)

		// Then: ErrGameOver is returned and the cell stays empty
		require.ErrorIs(t, err, apperror.ErrGameOver)
		assert.Equal(t, entity.CellEmpty, board.Cell(5))
	})
}

func TestBoard_WinnerAt(t *testing.T) {
	t.Run("Returns the owner of a completed line regardless of other cells", func(t *testing.T) {
		for _, line := range WinCombos {
			// Given: O owns the line and X is scattered elsewhere
			board := MustNew(3)
			for _, pos := range line {
				board.cells[pos] = o
			}
			for pos := range board.cells {
				if board.cells[pos].IsEmpty() && pos%2 == 0 {
					board.cells[pos] = x
				}
			}

			// Then: every cell of the line reports O as the winner
			for _, pos := range line {
				assert.Equal(t, o, board.WinnerAt(pos), "line %v pos %d", line, pos)
			}
			assert.Equal(t, o, board.Winner())
		}
	})

	t.Run("Returns empty when lines through the cell are mixed", func(t *testing.T) {
		// Given: X owns the top row but the last move was in the bottom row
		board := MustNew(3)
		copy(board.cells, []entity.Cell{x, x, x, e, o, e, o, e, e})

		// Then: only lines through the last move are considered
		assert.Equal(t, entity.CellEmpty, board.WinnerAt(6))
		assert.Equal(t, x, board.WinnerAt(1))
	})

	t.Run("Out of range reads as no winner", func(t *testing.T) {
		board := MustNew(3)

		assert.Equal(t, entity.CellEmpty, board.WinnerAt(-1))
		assert.Equal(t, entity.CellEmpty, board.WinnerAt(9))
	})
}

func TestBoard_WithWinRule(t *testing.T) {
	// Given: a rule under which nobody ever wins
	board := MustNew(3, WithWinRule(func(*Board, int) entity.Cell { return entity.CellEmpty }))

	// When: X fills the top row
	fill(t, board, []entity.Cell{x, x, x})

	// Then: the game is still in progress
	assert.Equal(t, entity.InProgress(), board.Result())
	assert.Equal(t, x, board.Winner())
}

func TestBoard_EmptyCells(t *testing.T) {
	board := MustNew(3)
	fill(t, board, []entity.Cell{x, e, o, e, x})

	assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, board.EmptyCells())
}

func TestLines(t *testing.T) {
	t.Run("3x3 lines are the classic table", func(t *testing.T) {
		assert.ElementsMatch(t, WinCombos, buildLines(3))
		assert.Equal(t, WinCombos, Lines(3))
	})

	t.Run("4x4 has rows, columns and two diagonals", func(t *testing.T) {
		lines := Lines(4)

		require.Len(t, lines, 10)
		assert.Equal(t, []int{0, 1, 2, 3}, lines[0])
		assert.Equal(t, []int{0, 4, 8, 12}, lines[4])
		assert.Equal(t, []int{0, 5, 10, 15}, lines[8])
		assert.Equal(t, []int{3, 6, 9, 12}, lines[9])
	})

	t.Run("Centre of 3x3 is on four lines, edge on two", func(t *testing.T) {
		board := MustNew(3)

		assert.Len(t, board.LinesThrough(4), 4)
		assert.Len(t, board.LinesThrough(1), 2)
		assert.Nil(t, board.LinesThrough(9))
	})
}
