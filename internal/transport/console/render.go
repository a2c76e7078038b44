package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/grid"
	"github.com/rocketscienceinc/terminal-games/internal/score"
	"github.com/rocketscienceinc/terminal-games/internal/tactic21"
)

// RenderBoard - draws a tic-tac-toe board, empty cells show their 1-based position.
//
//	1|2|3
//	-+-+-
//	4|X|6
func RenderBoard(board *grid.Board) string {
	size := board.Size()
	width := len(strconv.Itoa(board.Len()))

	separator := make([]string, size)
	for i := range separator {
		separator[i] = strings.Repeat("-", width)
	}

	var sb strings.Builder
	for row := range size {
		if row > 0 {
			sb.WriteString(strings.Join(separator, "+"))
			sb.WriteByte('\n')
		}

		cells := make([]string, size)
		for col := range size {
			pos := row*size + col
			label := strconv.Itoa(pos + 1)
			if mark := board.Cell(pos); !mark.IsEmpty() {
				label = mark.String()
			}
			cells[col] = fmt.Sprintf("%-*s", width, label)
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// RenderTactic21Board - every occupied cell shows owner and value, e.g. "X5".
func RenderTactic21Board(game *tactic21.Game) string {
	board := game.Board()
	size := board.Size()

	var sb strings.Builder
	sb.WriteString("Board:\n")
	for row := range size {
		cells := make([]string, size)
		for col := range size {
			pos := row*size + col
			label := strconv.Itoa(pos + 1)
			if owner := board.Cell(pos); !owner.IsEmpty() {
				label = owner.String() + strconv.Itoa(game.Value(pos))
			}
			cells[col] = fmt.Sprintf("%-3s", label)
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// RenderTactic21Hand - numbered card values, "1:5 2:8 3:11".
func RenderTactic21Hand(hand []int) string {
	cards := make([]string, len(hand))
	for i, value := range hand {
		cards[i] = fmt.Sprintf("%d:%d", i+1, value)
	}

	return strings.Join(cards, " ")
}

// RenderHand - "Dealer: K♠ 7♥ (17)", the score is omitted when showScore is false.
func RenderHand(name string, hand entity.Hand, showScore bool) string {
	labels := make([]string, len(hand))
	for i, card := range hand {
		labels[i] = card.Label()
	}

	if !showScore {
		return fmt.Sprintf("%s: %s", name, strings.Join(labels, " "))
	}

	return fmt.Sprintf("%s: %s (%d)", name, strings.Join(labels, " "), score.Hand(hand))
}
