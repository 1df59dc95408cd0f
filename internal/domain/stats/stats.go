// Package stats derives read views from the game ledger. Every view is
// a pure fold over the games in ascending sequence order, so each one
// is reproducible from scratch after any ledger mutation.
package stats

import "github.com/okian/volley/internal/domain/model"

// Result codes for a player's outcome in a single game.
const (
	resultLoss = -1
	resultDraw = 0
	resultWin  = 1
)

// resultFor returns the player's outcome in g, or ok=false if the
// player did not take part.
func resultFor(g *model.Game, playerID string) (result int, ok bool) {
	team := 0
	for i := range g.Participants {
		if g.Participants[i].PlayerID == playerID {
			team = g.Participants[i].Team
			break
		}
	}
	if team == 0 {
		return 0, false
	}
	winner := g.Winner()
	switch {
	case winner == 0:
		return resultDraw, true
	case winner == team:
		return resultWin, true
	default:
		return resultLoss, true
	}
}

// snapshotFor returns the player's participant snapshot in g.
func snapshotFor(g *model.Game, playerID string) (model.Participant, bool) {
	for i := range g.Participants {
		if g.Participants[i].PlayerID == playerID {
			return g.Participants[i], true
		}
	}
	return model.Participant{}, false
}
