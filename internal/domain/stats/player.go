package stats

import (
	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/types"
)

// ForPlayer folds a single player's full history into aggregate stats.
// Draws count toward total games but are neither wins nor losses, and
// they reset the current streak to zero. baseline is reported as the
// peak rating for a player with no games.
func ForPlayer(playerID string, games []model.Game, baseline float64) types.PlayerStats {
	s := types.PlayerStats{
		PlayerID:   playerID,
		PeakRating: baseline,
	}

	var (
		streak      int
		deltaSum    float64
		longestWin  int
		longestLoss int
	)

	for i := range games {
		g := &games[i]
		snap, ok := snapshotFor(g, playerID)
		if !ok {
			continue
		}
		s.TotalGames++
		deltaSum += snap.RatingAfter - snap.RatingBefore

		if s.TotalGames == 1 || snap.RatingAfter > s.PeakRating {
			s.PeakRating = snap.RatingAfter
			s.PeakRatingSeq = g.Seq
			s.PeakRatingAt = g.CreatedAt
		}

		result, _ := resultFor(g, playerID)
		switch result {
		case resultWin:
			s.Wins++
			if streak > 0 {
				streak++
			} else {
				streak = 1
			}
			if streak > longestWin {
				longestWin = streak
			}
		case resultLoss:
			s.Losses++
			if streak < 0 {
				streak--
			} else {
				streak = -1
			}
			if -streak > longestLoss {
				longestLoss = -streak
			}
		case resultDraw:
			streak = 0
		}
	}

	s.CurrentStreak = streak
	s.LongestWinStreak = longestWin
	s.LongestLossStreak = longestLoss
	if s.TotalGames > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalGames)
		s.AvgRatingChange = deltaSum / float64(s.TotalGames)
	}
	return s
}
