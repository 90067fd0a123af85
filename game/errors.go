package game

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
	ErrBadNotation = errors.New("bad notation")
)
