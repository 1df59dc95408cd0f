// Package model contains domain models passed between layers.
package model

import "time"

// GameType distinguishes team cardinality for a match.
type GameType string

// Supported game types.
const (
	Singles GameType = "singles"
	Doubles GameType = "doubles"
)

// Valid reports whether t is a known game type.
func (t GameType) Valid() bool {
	return t == Singles || t == Doubles
}

// TeamSize returns the number of players each side must field.
func (t GameType) TeamSize() int {
	if t == Doubles {
		return 2
	}
	return 1
}

// Team is one side of a game as submitted by the caller.
type Team struct {
	PlayerIDs []string
	Score     int
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	ids := make([]string, len(t.PlayerIDs))
	copy(ids, t.PlayerIDs)
	return Team{PlayerIDs: ids, Score: t.Score}
}

// Participant is the per-player snapshot recorded inside a game.
// RatingBefore and RatingAfter are derived values owned by the ledger's
// replay walk; they are never edited directly.
type Participant struct {
	PlayerID     string
	Team         int // 1 or 2
	Score        int
	RatingBefore float64
	RatingAfter  float64
}

// Game is a single ledger entry. Seq is the authoritative replay order,
// assigned once at append time. CreatedAt is display metadata only.
type Game struct {
	ID           string
	Seq          uint64
	Type         GameType
	CreatedAt    time.Time
	Teams        [2]Team
	Participants []Participant
}

// Clone returns a deep copy of the game, safe to mutate independently.
func (g *Game) Clone() *Game {
	c := &Game{
		ID:        g.ID,
		Seq:       g.Seq,
		Type:      g.Type,
		CreatedAt: g.CreatedAt,
		Teams:     [2]Team{g.Teams[0].Clone(), g.Teams[1].Clone()},
	}
	c.Participants = make([]Participant, len(g.Participants))
	copy(c.Participants, g.Participants)
	return c
}

// Winner returns 1 or 2 for the winning team, or 0 for a draw.
func (g *Game) Winner() int {
	switch {
	case g.Teams[0].Score > g.Teams[1].Score:
		return 1
	case g.Teams[1].Score > g.Teams[0].Score:
		return 2
	default:
		return 0
	}
}

// Involves reports whether the player appears on either side.
func (g *Game) Involves(playerID string) bool {
	for i := range g.Participants {
		if g.Participants[i].PlayerID == playerID {
			return true
		}
	}
	return false
}
