// Package ledger owns the ordered game history and the replay walk
// that keeps every derived rating consistent with it.
//
// Games are totally ordered by a sequence number assigned at append
// time; wall-clock timestamps are display metadata only. Any mutation
// of a past game (edit or delete) triggers an unconditional replay of
// the ledger suffix from that position. The walk runs on scratch copies
// and commits only when it completes, so readers never observe a
// half-updated ledger.
//
// The Ledger itself is not safe for concurrent use; the application
// layer serializes mutations and shares reads behind one RWMutex.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/rating"
	"github.com/okian/volley/pkg/logger"
	"github.com/okian/volley/pkg/metrics"
)

// Registry is the slice of the player store the ledger needs: existence
// checks on append and current-rating writes on commit.
type Registry interface {
	// Get returns the player for id or an error if unknown.
	Get(ctx context.Context, id string) (model.Player, error)
	// SetRating overwrites the player's current rating.
	SetRating(ctx context.Context, id string, ratingValue float64) error
}

// Ledger is the authoritative, sequence-ordered record of games.
type Ledger struct {
	registry Registry
	calc     *rating.Calculator
	baseline float64
	log      logger.Logger

	games   []*model.Game // ascending by Seq
	byID    map[string]*model.Game
	nextSeq uint64
}

// New constructs an empty ledger over the given player registry.
func New(registry Registry, opts ...Option) *Ledger {
	l := &Ledger{
		registry: registry,
		calc:     rating.New(),
		baseline: rating.DefaultBaseline,
		byID:     make(map[string]*model.Game),
		nextSeq:  1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Get()
	}
	return l
}

// Len returns the number of games in the ledger.
func (l *Ledger) Len() int {
	return len(l.games)
}

// Get returns a copy of the game for id.
func (l *Ledger) Get(ctx context.Context, id string) (*model.Game, error) {
	g, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return g.Clone(), nil
}

// Games returns copies of all games in ascending sequence order, the
// order the replay walk and every derived-view fold consume.
func (l *Ledger) Games(ctx context.Context) []model.Game {
	out := make([]model.Game, len(l.games))
	for i, g := range l.games {
		out[i] = *g.Clone()
	}
	return out
}

// Recent returns copies of up to limit games, newest first, for display.
func (l *Ledger) Recent(ctx context.Context, limit int) []model.Game {
	n := len(l.games)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]model.Game, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, *l.games[i].Clone())
	}
	return out
}

// HasGames reports whether the player appears anywhere in the ledger.
func (l *Ledger) HasGames(ctx context.Context, playerID string) bool {
	for _, g := range l.games {
		if g.Involves(playerID) {
			return true
		}
	}
	return false
}

// Append validates the submitted teams, assigns the next sequence
// number, and computes participant snapshots against current player
// ratings. Appending at the end is equivalent to a replay from the end,
// so no earlier game is touched.
func (l *Ledger) Append(ctx context.Context, gameType model.GameType, teams [2]model.Team) (*model.Game, error) {
	if err := validateTeams(gameType, teams); err != nil {
		return nil, err
	}

	current := make(map[string]float64)
	for _, t := range teams {
		for _, id := range t.PlayerIDs {
			p, err := l.registry.Get(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
			}
			current[id] = p.Rating
		}
	}

	g := &model.Game{
		ID:        uuid.New().String(),
		Seq:       l.nextSeq,
		Type:      gameType,
		CreatedAt: time.Now().UTC(),
		Teams:     [2]model.Team{teams[0].Clone(), teams[1].Clone()},
	}
	if err := l.apply(g, current); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecompute, err)
	}

	l.nextSeq++
	l.games = append(l.games, g)
	l.byID[g.ID] = g

	for id, r := range current {
		if err := l.registry.SetRating(ctx, id, r); err != nil {
			// The game is already linked in; surface the write failure.
			return nil, fmt.Errorf("%w: %v", ErrRecompute, err)
		}
	}

	metrics.RecordGameRecorded()
	metrics.UpdateLedgerSize(len(l.games))
	l.log.Debug(ctx, "game appended",
		logger.String("game", g.ID),
		logger.Int("seq", int(g.Seq)),
		logger.String("type", string(gameType)),
	)
	return g.Clone(), nil
}

// Edit changes the outcome of an existing game in place, preserving its
// sequence position, then replays the ledger suffix from that position.
func (l *Ledger) Edit(ctx context.Context, id string, team1Score, team2Score int) (*model.Game, error) {
	g, ok := l.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if team1Score < 0 || team2Score < 0 {
		return nil, fmt.Errorf("%w: scores must be non-negative", ErrValidation)
	}

	idx := l.indexOf(g.Seq)
	edited := g.Clone()
	edited.Teams[0].Score = team1Score
	edited.Teams[1].Score = team2Score

	suffix := l.cloneSuffix(idx)
	suffix[0] = edited

	if err := l.replayAndCommit(ctx, idx, suffix, affectedPlayers(g)); err != nil {
		return nil, err
	}
	metrics.RecordGameEdited()
	return l.byID[id].Clone(), nil
}

// Delete removes the game entirely and replays the remaining suffix.
// Deleting the last game degenerates to resetting the participants'
// ratings from the untouched prefix.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	g, ok := l.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	idx := l.indexOf(g.Seq)
	suffix := l.cloneSuffix(idx)
	suffix = suffix[1:] // drop the deleted game

	if err := l.replayAndCommit(ctx, idx, suffix, affectedPlayers(g)); err != nil {
		return err
	}
	delete(l.byID, g.ID)
	metrics.RecordGameDeleted()
	metrics.UpdateLedgerSize(len(l.games))
	return nil
}

// indexOf locates the slice index of the game with the given sequence.
func (l *Ledger) indexOf(seq uint64) int {
	return sort.Search(len(l.games), func(i int) bool {
		return l.games[i].Seq >= seq
	})
}

// cloneSuffix deep-copies games[idx:] so the replay walk can mutate
// them without touching committed state.
func (l *Ledger) cloneSuffix(idx int) []*model.Game {
	out := make([]*model.Game, len(l.games)-idx)
	for i, g := range l.games[idx:] {
		out[i] = g.Clone()
	}
	return out
}

// affectedPlayers collects the ids of every participant of a game; the
// replay commit must reset them even when the suffix no longer mentions
// them (e.g. their only game was the one deleted).
func affectedPlayers(g *model.Game) []string {
	ids := make([]string, 0, len(g.Participants))
	for i := range g.Participants {
		ids = append(ids, g.Participants[i].PlayerID)
	}
	return ids
}

// validateTeams enforces the structural invariants of a game: exactly
// two sides, cardinality matching the game type, disjoint player ids,
// and non-negative scores.
func validateTeams(gameType model.GameType, teams [2]model.Team) error {
	if !gameType.Valid() {
		return fmt.Errorf("%w: game type must be %q or %q", ErrValidation, model.Singles, model.Doubles)
	}
	size := gameType.TeamSize()
	seen := make(map[string]struct{}, size*2)
	for i, t := range teams {
		if len(t.PlayerIDs) != size {
			return fmt.Errorf("%w: team %d must have %d player(s)", ErrValidation, i+1, size)
		}
		if t.Score < 0 {
			return fmt.Errorf("%w: team %d score must be non-negative", ErrValidation, i+1)
		}
		for _, id := range t.PlayerIDs {
			if id == "" {
				return fmt.Errorf("%w: empty player id", ErrValidation)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: player %s appears twice", ErrValidation, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}
