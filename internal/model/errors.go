package model

import "errors"

var (
	ErrOffBoard     = errors.New("square is off the board")
	ErrEmptySquare  = errors.New("no piece at from square")
	ErrNotYourPiece = errors.New("not your piece")
	ErrIllegalMove  = errors.New("illegal move")
)
