package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/rating"
	"github.com/okian/volley/pkg/logger"
	"github.com/okian/volley/pkg/metrics"
)

// apply recomputes the participant snapshots of one game against the
// working ratings, then advances the working ratings past it. Players
// with no prior rating start from the baseline.
func (l *Ledger) apply(g *model.Game, working map[string]float64) error {
	size := g.Type.TeamSize()
	var sideRatings [2]float64
	for i, t := range g.Teams {
		if len(t.PlayerIDs) != size {
			return fmt.Errorf("team %d has %d player(s), want %d", i+1, len(t.PlayerIDs), size)
		}
		members := make([]float64, len(t.PlayerIDs))
		for j, id := range t.PlayerIDs {
			members[j] = l.ratingOf(id, working)
		}
		sideRatings[i] = rating.TeamRating(members)
	}

	delta1, delta2 := l.calc.Update(sideRatings[0], sideRatings[1], g.Teams[0].Score, g.Teams[1].Score)

	g.Participants = g.Participants[:0]
	for i, t := range g.Teams {
		delta := delta1
		if i == 1 {
			delta = delta2
		}
		for _, id := range t.PlayerIDs {
			before := l.ratingOf(id, working)
			after := before + delta
			g.Participants = append(g.Participants, model.Participant{
				PlayerID:     id,
				Team:         i + 1,
				Score:        t.Score,
				RatingBefore: before,
				RatingAfter:  after,
			})
			working[id] = after
		}
	}
	return nil
}

func (l *Ledger) ratingOf(id string, working map[string]float64) float64 {
	if r, ok := working[id]; ok {
		return r
	}
	return l.baseline
}

// replayAndCommit is the recompute engine. It seeds working ratings
// from the untouched prefix (games before idx), walks the replacement
// suffix in ascending sequence order on scratch copies, and only then
// splices the suffix in and pushes final ratings to the registry. A
// failure anywhere in the walk leaves the committed ledger untouched.
func (l *Ledger) replayAndCommit(ctx context.Context, idx int, suffix []*model.Game, extraAffected []string) error {
	start := time.Now()

	// Step 1: seed each player's working rating with the rating_after
	// of their latest untouched game.
	working := make(map[string]float64)
	for _, g := range l.games[:idx] {
		for i := range g.Participants {
			working[g.Participants[i].PlayerID] = g.Participants[i].RatingAfter
		}
	}

	// Step 2: walk the suffix forward, rewriting every snapshot.
	affected := make(map[string]struct{})
	for _, id := range extraAffected {
		affected[id] = struct{}{}
	}
	for _, g := range suffix {
		if err := l.apply(g, working); err != nil {
			return fmt.Errorf("%w: game %s: %v", ErrRecompute, g.ID, err)
		}
		for i := range g.Participants {
			affected[g.Participants[i].PlayerID] = struct{}{}
		}
	}

	// Step 3: confirm every affected player is still registered before
	// committing anything.
	for id := range affected {
		if _, err := l.registry.Get(ctx, id); err != nil {
			return fmt.Errorf("%w: player %s vanished mid-replay", ErrRecompute, id)
		}
	}

	// Step 4: commit. Splice the recomputed suffix in and publish final
	// ratings: a player's working rating if they still have games, the
	// baseline otherwise.
	l.games = append(l.games[:idx], suffix...)
	for _, g := range suffix {
		l.byID[g.ID] = g
	}
	for id := range affected {
		r, ok := working[id]
		if !ok {
			r = l.baseline
		}
		if err := l.registry.SetRating(ctx, id, r); err != nil {
			return fmt.Errorf("%w: %v", ErrRecompute, err)
		}
	}

	elapsed := time.Since(start)
	metrics.RecordRecompute(len(suffix), elapsed)
	l.log.Debug(ctx, "ledger suffix replayed",
		logger.Int("from_index", idx),
		logger.Int("games_replayed", len(suffix)),
		logger.Int("players_affected", len(affected)),
		logger.Any("elapsed", elapsed),
	)
	return nil
}
