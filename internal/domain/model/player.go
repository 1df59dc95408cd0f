package model

import "time"

// Player is a registered competitor. Rating is a derived field: only
// the ledger's replay walk writes it, everything else reads it.
type Player struct {
	ID        string
	Name      string
	Rating    float64
	CreatedAt time.Time
}
