package grid

import "sync"

const (
	MinSize = 3
	MaxSize = 9
)

// WinCombos - every row, column and diagonal of the classic 3x3 board.
var WinCombos = [][]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

var (
	linesMu    sync.Mutex
	linesCache = map[int][][]int{3: WinCombos}
)

// Lines - returns the winning lines of a size x size board: rows, then columns, then
// the main diagonal and the anti-diagonal. Tables are built once per size and shared,
// callers must not modify them.
func Lines(size int) [][]int {
	linesMu.Lock()
	defer linesMu.Unlock()

	if lines, ok := linesCache[size]; ok {
		return lines
	}

	lines := buildLines(size)
	linesCache[size] = lines

	return lines
}

func buildLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	for row := 0; row < size; row++ {
		line := make([]int, size)
		for col := 0; col < size; col++ {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	for col := 0; col < size; col++ {
		line := make([]int, size)
		for row := 0; row < size; row++ {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, size)
	antiDiagonal := make([]int, size)
	for i := 0; i < size; i++ {
		diagonal[i] = i*size + i
		antiDiagonal[i] = i*size + (size - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}

// linesThrough - indexes lines by the positions they cover.
func linesThrough(size int, lines [][]int) [][][]int {
	index := make([][][]int, size*size)
	for _, line := range lines {
		for _, pos := range line {
			index[pos] = append(index[pos], line)
		}
	}

	return index
}
