package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInputClosed      = errors.New("input closed before the game finished")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownStorage   = errors.New("unknown results storage")
)
