package game

import "errors"

var (
	ErrBoardSize       = errors.New("invalid board size")
	ErrOutOfBounds     = errors.New("position out of bounds")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrUnknownTurnRule = errors.New("unknown turn rule")
)
