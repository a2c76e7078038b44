package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

type Action uint8

const (
	ActionHit Action = iota + 1
	ActionStand
)

// ParsePosition - converts a 1-based position in [1, maxPos] into a 0-based index.
func ParsePosition(input string, maxPos int) (int, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrParse, input)
	}

	if pos < 1 || pos > maxPos {
		return 0, fmt.Errorf("%w: position %d out of range 1-%d", apperror.ErrParse, pos, maxPos)
	}

	return pos - 1, nil
}

// ParseCardAndPosition - parses "<card> <position>", both 1-based, into 0-based indexes.
// Ranges are checked by the game.
func ParseCardAndPosition(input string) (int, int, error) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected card and position, got %q", apperror.ErrParse, input)
	}

	card, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: card %q is not a number", apperror.ErrParse, parts[0])
	}

	pos, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: position %q is not a number", apperror.ErrParse, parts[1])
	}

	return card - 1, pos - 1, nil
}

func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "h", "hit":
		return ActionHit, nil
	case "s", "stand":
		return ActionStand, nil
	default:
		return 0, fmt.Errorf("%w: unknown action %q", apperror.ErrParse, input)
	}
}
