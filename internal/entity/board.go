package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

const BoardSize = 3

// Mark is the token occupying a cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is the 3x3 grid, indexed by (row, col).
type Board [BoardSize][BoardSize]Mark

func (that *Board) Place(row, col int, mark Mark) error {
	if !inRange(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRange, row, col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that[row][col] = mark

	return nil
}

// Get returns EmptyCell for coordinates outside the grid.
func (that Board) Get(row, col int) Mark {
	if !inRange(row, col) {
		return EmptyCell
	}
	return that[row][col]
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

func inRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
