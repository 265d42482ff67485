package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfRange   = errors.New("cell is out of range")
	ErrMatchOver    = errors.New("match is already over")
	ErrInvalidMark  = errors.New("invalid mark")
)
