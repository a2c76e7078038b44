package entity

type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusDraw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Result is the outcome of a game at a point in time. Winner is set only when Status is StatusWon.
type Result struct {
	Status Status `json:"status"`
	Winner Cell   `json:"winner,omitempty"`
}

func InProgress() Result {
	return Result{Status: StatusInProgress}
}

func Won(mark Cell) Result {
	return Result{Status: StatusWon, Winner: mark}
}

func Draw() Result {
	return Result{Status: StatusDraw}
}

// IsTerminal - reports whether no further moves are allowed.
func (that Result) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}
