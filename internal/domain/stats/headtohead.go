package stats

import (
	"sort"

	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/types"
)

// HeadToHeadFor groups a player's games by opponent: anyone who ever
// stood on the opposing side of a shared game, singles or doubles.
// Doubles games count with the same weight as singles. resolveName maps
// an opponent id to a display name; it may return "" for unknown ids.
func HeadToHeadFor(playerID string, games []model.Game, resolveName func(id string) string) []types.HeadToHead {
	records := make(map[string]*types.HeadToHead)

	for i := range games {
		g := &games[i]
		snap, ok := snapshotFor(g, playerID)
		if !ok {
			continue
		}
		result, _ := resultFor(g, playerID)

		for j := range g.Participants {
			opp := &g.Participants[j]
			if opp.Team == snap.Team {
				continue
			}
			rec, ok := records[opp.PlayerID]
			if !ok {
				rec = &types.HeadToHead{OpponentID: opp.PlayerID}
				records[opp.PlayerID] = rec
			}
			rec.TotalGames++
			switch result {
			case resultWin:
				rec.Wins++
				rec.LastResult = "W"
			case resultLoss:
				rec.Losses++
				rec.LastResult = "L"
			case resultDraw:
				rec.LastResult = "D"
			}
		}
	}

	out := make([]types.HeadToHead, 0, len(records))
	for id, rec := range records {
		if rec.TotalGames > 0 {
			rec.WinRate = float64(rec.Wins) / float64(rec.TotalGames)
		}
		if resolveName != nil {
			rec.OpponentName = resolveName(id)
		}
		out = append(out, *rec)
	}

	// Most-played rivals first; id breaks ties deterministically.
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGames != out[j].TotalGames {
			return out[i].TotalGames > out[j].TotalGames
		}
		return out[i].OpponentID < out[j].OpponentID
	})
	return out
}
