package tictactoe

import "github.com/rocketscienceinc/tictactoe-desktop/internal/entity"

// WinLines lists the eight winning lines: rows, then columns, then the two diagonals.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner returns the mark of the first complete line in WinLines order.
func Winner(board *entity.Board) (entity.Mark, bool) {
	for _, line := range WinLines {
		a := board.Get(line[0][0], line[0][1])
		b := board.Get(line[1][0], line[1][1])
		c := board.Get(line[2][0], line[2][1])

		if a.IsPlayer() && a == b && b == c {
			return a, true
		}
	}

	return entity.EmptyCell, false
}

func IsDraw(board *entity.Board) bool {
	if _, ok := Winner(board); ok {
		return false
	}

	return board.IsFull()
}
