package entity

// Cell is the content of one board position: empty or one of the two player marks.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return ""
	}
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case CellX:
		return CellO
	case CellO:
		return CellX
	default:
		return CellEmpty
	}
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

// ParseCell - converts "X" or "O" (any case) into a mark.
func ParseCell(s string) (Cell, bool) {
	switch s {
	case "X", "x":
		return CellX, true
	case "O", "o":
		return CellO, true
	default:
		return CellEmpty, false
	}
}
