package apperror

import "errors"

var (
	ErrOutOfRange     = errors.New("move is out of history range")
	ErrGameNotFound   = errors.New("game not found")
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)
