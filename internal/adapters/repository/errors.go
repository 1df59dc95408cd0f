package repository

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrNotFound    = errors.New("player not found")
	ErrInvalidName = errors.New("invalid player name")
)
