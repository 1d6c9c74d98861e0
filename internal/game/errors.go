package game

import "errors"

var (
	ErrInvalidWordLength = errors.New("game: dictionary has no words of that length")
	ErrInvalidLifeCount  = errors.New("game: lives must be at least 1")
	ErrGameAlreadyOver   = errors.New("game: game already over")
	ErrNotALetter        = errors.New("game: not a letter")
	ErrUnknownMode       = errors.New("game: unknown mode")
)
