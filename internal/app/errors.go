package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrConflict is returned when deleting a player who still appears
	// in ledger history would orphan historical snapshots.
	ErrConflict = errors.New("player has game history")
	// ErrNotStarted is returned when the service is used before Start.
	ErrNotStarted = errors.New("service not started")
)
