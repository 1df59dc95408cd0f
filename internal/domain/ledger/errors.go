package ledger

import "errors"

// Sentinel kinds for ledger errors. Callers match with errors.Is.
var (
	// ErrValidation covers malformed team composition and scores.
	ErrValidation = errors.New("invalid game")
	// ErrUnknownPlayer is returned when a team references an id the
	// registry does not know.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrNotFound is returned on edit/delete of an absent game id.
	ErrNotFound = errors.New("game not found")
	// ErrRecompute signals an internal consistency failure during the
	// replay walk. The mutation that triggered it is aborted whole.
	ErrRecompute = errors.New("recompute failed")
)
