package models

import "errors"

// Custom errors
var (
	ErrInvalidQuote    = errors.New("invalid quote")
	ErrUnknownSide     = errors.New("unknown market side")
	ErrEmptyPlayerName = errors.New("player name is empty")
)
