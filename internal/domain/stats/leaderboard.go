package stats

import (
	"sort"

	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/types"
)

// Leaderboard folds win/loss tallies per player out of the ledger and
// orders the rows by rating descending. Ties break by fewer games
// played first, then by player id, so the order is total and stable.
func Leaderboard(players []model.Player, games []model.Game) []types.LeaderboardEntry {
	type tally struct{ played, wins, losses int }
	tallies := make(map[string]*tally, len(players))
	for i := range players {
		tallies[players[i].ID] = &tally{}
	}

	for i := range games {
		g := &games[i]
		for j := range g.Participants {
			t, ok := tallies[g.Participants[j].PlayerID]
			if !ok {
				continue
			}
			t.played++
			switch r, _ := resultFor(g, g.Participants[j].PlayerID); r {
			case resultWin:
				t.wins++
			case resultLoss:
				t.losses++
			}
		}
	}

	entries := make([]types.LeaderboardEntry, 0, len(players))
	for i := range players {
		p := &players[i]
		t := tallies[p.ID]
		entries = append(entries, types.LeaderboardEntry{
			PlayerID:    p.ID,
			Name:        p.Name,
			Rating:      p.Rating,
			GamesPlayed: t.played,
			Wins:        t.wins,
			Losses:      t.losses,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed < b.GamesPlayed
		}
		return a.PlayerID < b.PlayerID
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
