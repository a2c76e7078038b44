// Package tactic21 is tic-tac-toe played with numbered cards.
//
// Each player holds a hand of cards valued 1 to 11 and on their turn puts one card on an
// empty cell. Owning a whole line is not enough: a player wins when a line made only of
// their own cards adds up to exactly 21. When the board fills up without such a line,
// every line owned by one player scores 1 point for a sum of 20 and half a point for 19;
// the higher score wins and equal scores are a draw.
package tactic21

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/grid"
	"github.com/rocketscienceinc/terminal-games/internal/score"
)

const (
	BoardSize       = 3
	DefaultHandSize = 5
)

// Tiebreak points are kept in halves so they stay integers.
const (
	halfPointsFor20 = 2
	halfPointsFor19 = 1
)

type Game struct {
	ID    string
	board *grid.Board
	// values[pos] is the card value placed on pos, 0 when empty.
	values []int
	hands  map[entity.Cell][]int
	deck   *Deck
	turn   entity.Cell
	result entity.Result
}

// NewGame - deals handSize cards to each player, player X (first player) starts.
func NewGame(id string, deck *Deck, handSize int) (*Game, error) {
	if handSize <= 0 {
		handSize = DefaultHandSize
	}

	that := &Game{
		ID:     id,
		values: make([]int, BoardSize*BoardSize),
		hands:  map[entity.Cell][]int{entity.CellX: {}, entity.CellO: {}},
		deck:   deck,
		turn:   entity.CellX,
		result: entity.InProgress(),
	}
	that.board = grid.MustNew(BoardSize, grid.WithWinRule(that.lineOfTwentyOne))

	for range handSize {
		for _, player := range []entity.Cell{entity.CellX, entity.CellO} {
			if err := that.draw(player); err != nil {
				return nil, fmt.Errorf("failed to deal: %w", err)
			}
		}
	}

	return that, nil
}

// Play - puts the card at cardIndex of player's hand on pos.
func (that *Game) Play(player entity.Cell, cardIndex, pos int) error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	if that.turn != player {
		return apperror.ErrNotYourTurn
	}

	hand := that.hands[player]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidCard, cardIndex)
	}

	value := hand[cardIndex]
	if err := that.placeValue(player, pos, value); err != nil {
		return err
	}

	that.hands[player] = append(hand[:cardIndex:cardIndex], hand[cardIndex+1:]...)

	if err := that.draw(player); err != nil && !errors.Is(err, apperror.ErrDeckEmpty) {
		return err
	}

	that.updateResult()
	if that.IsFinished() {
		return nil
	}

	that.turn = player.Opponent()

	// nobody can move once the next player's hand and the deck are both empty
	if len(that.hands[that.turn]) == 0 {
		that.result = that.tiebreak()
	}

	return nil
}

func (that *Game) placeValue(player entity.Cell, pos, value int) error {
	if pos < 0 || pos >= len(that.values) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, pos)
	}

	// the win rule reads values, so the value goes in before the mark
	previous := that.values[pos]
	that.values[pos] = value

	if err := that.board.Place(pos, player); err != nil {
		that.values[pos] = previous
		return fmt.Errorf("failed to place card: %w", err)
	}

	return nil
}

func (that *Game) draw(player entity.Cell) error {
	value, err := that.deck.Draw()
	if err != nil {
		return err
	}

	that.hands[player] = append(that.hands[player], value)

	return nil
}

// lineOfTwentyOne - win rule: a line through last owned by one player summing to 21.
func (that *Game) lineOfTwentyOne(board *grid.Board, last int) entity.Cell {
	for _, line := range board.LinesThrough(last) {
		owner := board.LineOwner(line)
		if owner.IsEmpty() {
			continue
		}

		if score.IsTwentyOne(that.lineValues(line)) {
			return owner
		}
	}

	return entity.CellEmpty
}

func (that *Game) lineValues(line []int) []int {
	values := make([]int, len(line))
	for i, pos := range line {
		values[i] = that.values[pos]
	}

	return values
}

func (that *Game) updateResult() {
	switch result := that.board.Result(); result.Status {
	case entity.StatusWon:
		that.result = result
	case entity.StatusDraw:
		that.result = that.tiebreak()
	}
}

// tiebreak - decides a full board with no line of 21.
func (that *Game) tiebreak() entity.Result {
	x, o := that.TiebreakPoints()

	switch {
	case x > o:
		return entity.Won(entity.CellX)
	case o > x:
		return entity.Won(entity.CellO)
	default:
		return entity.Draw()
	}
}

// TiebreakPoints - each player's line score: 1 for a sum of 20, 0.5 for 19.
func (that *Game) TiebreakPoints() (float64, float64) {
	halves := map[entity.Cell]int{}

	for _, line := range that.board.Lines() {
		owner := that.board.LineOwner(line)
		if owner.IsEmpty() {
			continue
		}

		switch score.LineSum(that.lineValues(line)) {
		case score.Target - 1:
			halves[owner] += halfPointsFor20
		case score.Target - 2:
			halves[owner] += halfPointsFor19
		}
	}

	return float64(halves[entity.CellX]) / 2, float64(halves[entity.CellO]) / 2
}

// Hand - a copy of player's hand.
func (that *Game) Hand(player entity.Cell) []int {
	return append([]int(nil), that.hands[player]...)
}

func (that *Game) Value(pos int) int {
	if pos < 0 || pos >= len(that.values) {
		return 0
	}

	return that.values[pos]
}

func (that *Game) Board() *grid.Board {
	return that.board
}

func (that *Game) Turn() entity.Cell {
	return that.turn
}

func (that *Game) Result() entity.Result {
	return that.result
}

func (that *Game) IsFinished() bool {
	return that.result.IsTerminal()
}

func (that *Game) DeckLen() int {
	return that.deck.Len()
}
