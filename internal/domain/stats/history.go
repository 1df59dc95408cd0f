package stats

import (
	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/types"
)

// RatingHistoryFor returns the player's rating trajectory, one point
// per game they took part in, oldest first.
func RatingHistoryFor(playerID string, games []model.Game) []types.RatingPoint {
	var points []types.RatingPoint
	for i := range games {
		g := &games[i]
		snap, ok := snapshotFor(g, playerID)
		if !ok {
			continue
		}
		points = append(points, types.RatingPoint{
			Seq:    g.Seq,
			At:     g.CreatedAt,
			Rating: snap.RatingAfter,
		})
	}
	return points
}

// RecentGamesFor returns up to n of the player's most recent games,
// newest first. A draw is reported as not won.
func RecentGamesFor(playerID string, games []model.Game, n int) []types.RecentGame {
	var out []types.RecentGame
	for i := len(games) - 1; i >= 0 && (n <= 0 || len(out) < n); i-- {
		g := &games[i]
		result, ok := resultFor(g, playerID)
		if !ok {
			continue
		}
		out = append(out, types.RecentGame{
			GameID: g.ID,
			At:     g.CreatedAt,
			Won:    result == resultWin,
		})
	}
	return out
}
