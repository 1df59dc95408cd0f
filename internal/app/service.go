// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
//
// Concurrency contract: every ledger mutation (record, edit, delete)
// and the replay it triggers runs under the exclusive lock, one at a
// time. Reads take the shared lock and therefore observe either the
// pre-mutation or the fully post-mutation ledger, never a partial one.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/volley/internal/adapters/repository"
	"github.com/okian/volley/internal/domain/ledger"
	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/rating"
	"github.com/okian/volley/internal/domain/stats"
	"github.com/okian/volley/internal/domain/types"
	"github.com/okian/volley/pkg/logger"
)

// Service implements the API dependencies for the rating tracker.
type Service struct {
	mu sync.RWMutex

	// Core components
	players *repository.MemoryStore
	board   *ledger.Ledger

	// Configuration
	kFactor      float64
	baseline     float64
	maxListLimit int

	// State
	started bool

	// Logging
	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithKFactor sets the Elo K-factor.
func WithKFactor(k float64) Option {
	return func(s *Service) {
		if k > 0 {
			s.kFactor = k
		}
	}
}

// WithBaselineRating sets the rating for players with no games.
func WithBaselineRating(baseline float64) Option {
	return func(s *Service) {
		if baseline > 0 {
			s.baseline = baseline
		}
	}
}

// WithMaxListLimit caps the limit parameter of list endpoints.
func WithMaxListLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxListLimit = limit
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		kFactor:      rating.DefaultKFactor,
		baseline:     rating.DefaultBaseline,
		maxListLimit: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the registry and the ledger.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}

	s.players = repository.NewMemoryStore(
		repository.WithBaselineRating(s.baseline),
	)
	s.board = ledger.New(s.players,
		ledger.WithCalculator(rating.New(rating.WithKFactor(s.kFactor))),
		ledger.WithBaselineRating(s.baseline),
		ledger.WithLogger(s.log),
	)

	s.started = true
	s.log.Info(ctx, "rating service started",
		logger.Float64("k_factor", s.kFactor),
		logger.Float64("baseline", s.baseline),
	)
	return nil
}

// Stop shuts the service down. The ledger is in-memory; there is
// nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "rating service stopped")
}

// RegisterPlayer adds a player at the baseline rating.
func (s *Service) RegisterPlayer(ctx context.Context, name string) (types.PlayerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.PlayerView{}, ErrNotStarted
	}
	p, err := s.players.Register(ctx, name)
	if err != nil {
		return types.PlayerView{}, err
	}
	return playerView(p), nil
}

// RenamePlayer updates a player's display name. Names are presentation
// metadata; no derived state moves.
func (s *Service) RenamePlayer(ctx context.Context, id, name string) (types.PlayerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.PlayerView{}, ErrNotStarted
	}
	p, err := s.players.Rename(ctx, id, name)
	if err != nil {
		return types.PlayerView{}, err
	}
	return playerView(p), nil
}

// RemovePlayer deletes a player without ledger history. Removal with
// history is refused outright: historical snapshots must never point at
// a vanished player.
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if _, err := s.players.Get(ctx, id); err != nil {
		return err
	}
	if s.board.HasGames(ctx, id) {
		return fmt.Errorf("%w: %s", ErrConflict, id)
	}
	return s.players.Remove(ctx, id)
}

// Player returns one player record.
func (s *Service) Player(ctx context.Context, id string) (types.PlayerView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return types.PlayerView{}, ErrNotStarted
	}
	p, err := s.players.Get(ctx, id)
	if err != nil {
		return types.PlayerView{}, err
	}
	return playerView(p), nil
}

// ListPlayers returns every player with their leaderboard tallies,
// ordered like the leaderboard.
func (s *Service) ListPlayers(ctx context.Context) ([]types.LeaderboardEntry, error) {
	return s.Leaderboard(ctx)
}

// RecordGame appends a game and computes its snapshots against current
// ratings. This is the only mutation that never replays earlier games.
func (s *Service) RecordGame(ctx context.Context, gameType model.GameType, teams [2]model.Team) (types.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.GameView{}, ErrNotStarted
	}
	g, err := s.board.Append(ctx, gameType, teams)
	if err != nil {
		return types.GameView{}, err
	}
	return s.gameView(ctx, g), nil
}

// EditGame rewrites a game's outcome in place and replays the ledger
// suffix from that game's position. A nil score keeps the existing one.
func (s *Service) EditGame(ctx context.Context, id string, team1Score, team2Score *int) (types.GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.GameView{}, ErrNotStarted
	}
	if team1Score == nil && team2Score == nil {
		return types.GameView{}, fmt.Errorf("%w: at least one score required", ledger.ErrValidation)
	}

	existing, err := s.board.Get(ctx, id)
	if err != nil {
		return types.GameView{}, err
	}
	s1, s2 := existing.Teams[0].Score, existing.Teams[1].Score
	if team1Score != nil {
		s1 = *team1Score
	}
	if team2Score != nil {
		s2 = *team2Score
	}

	g, err := s.board.Edit(ctx, id, s1, s2)
	if err != nil {
		return types.GameView{}, err
	}
	return s.gameView(ctx, g), nil
}

// DeleteGame removes a game and replays the remaining suffix.
func (s *Service) DeleteGame(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	return s.board.Delete(ctx, id)
}

// Game returns one game with its participant snapshots.
func (s *Service) Game(ctx context.Context, id string) (types.GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return types.GameView{}, ErrNotStarted
	}
	g, err := s.board.Get(ctx, id)
	if err != nil {
		return types.GameView{}, err
	}
	return s.gameView(ctx, g), nil
}

// Games returns up to limit games, newest first.
func (s *Service) Games(ctx context.Context, limit int) ([]types.GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if limit <= 0 || limit > s.maxListLimit {
		limit = s.maxListLimit
	}
	games := s.board.Recent(ctx, limit)
	out := make([]types.GameView, len(games))
	for i := range games {
		out[i] = s.gameView(ctx, &games[i])
	}
	return out, nil
}

// Leaderboard returns all players ordered by rating.
func (s *Service) Leaderboard(ctx context.Context) ([]types.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return stats.Leaderboard(s.players.List(ctx), s.board.Games(ctx)), nil
}

// PlayerStats returns the aggregate stats view for one player.
func (s *Service) PlayerStats(ctx context.Context, id string) (types.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return types.PlayerStats{}, ErrNotStarted
	}
	if _, err := s.players.Get(ctx, id); err != nil {
		return types.PlayerStats{}, err
	}
	return stats.ForPlayer(id, s.board.Games(ctx), s.baseline), nil
}

// HeadToHead returns the player's per-opponent records.
func (s *Service) HeadToHead(ctx context.Context, id string) ([]types.HeadToHead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if _, err := s.players.Get(ctx, id); err != nil {
		return nil, err
	}
	resolve := func(oppID string) string {
		p, err := s.players.Get(ctx, oppID)
		if err != nil {
			return ""
		}
		return p.Name
	}
	return stats.HeadToHeadFor(id, s.board.Games(ctx), resolve), nil
}

// RatingHistory returns the player's rating trajectory for charting.
func (s *Service) RatingHistory(ctx context.Context, id string) ([]types.RatingPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if _, err := s.players.Get(ctx, id); err != nil {
		return nil, err
	}
	return stats.RatingHistoryFor(id, s.board.Games(ctx)), nil
}

// RecentGames returns up to n of the player's latest games, newest
// first.
func (s *Service) RecentGames(ctx context.Context, id string, n int) ([]types.RecentGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if _, err := s.players.Get(ctx, id); err != nil {
		return nil, err
	}
	if n <= 0 || n > s.maxListLimit {
		n = s.maxListLimit
	}
	return stats.RecentGamesFor(id, s.board.Games(ctx), n), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	out := map[string]interface{}{
		"started":  s.started,
		"k_factor": s.kFactor,
		"baseline": s.baseline,
	}
	if s.started {
		out["players"] = s.players.Count(ctx)
		out["games"] = s.board.Len()
	}
	return out
}

// gameView resolves participant names into the API shape. Callers must
// hold at least the shared lock.
func (s *Service) gameView(ctx context.Context, g *model.Game) types.GameView {
	v := types.GameView{
		ID:        g.ID,
		Seq:       g.Seq,
		GameType:  string(g.Type),
		CreatedAt: g.CreatedAt,
		Players:   make([]types.ParticipantView, len(g.Participants)),
	}
	for i := range g.Participants {
		p := &g.Participants[i]
		name := ""
		if pl, err := s.players.Get(ctx, p.PlayerID); err == nil {
			name = pl.Name
		}
		v.Players[i] = types.ParticipantView{
			PlayerID:     p.PlayerID,
			PlayerName:   name,
			Team:         p.Team,
			Score:        p.Score,
			RatingBefore: p.RatingBefore,
			RatingAfter:  p.RatingAfter,
		}
	}
	return v
}

func playerView(p model.Player) types.PlayerView {
	return types.PlayerView{
		ID:        p.ID,
		Name:      p.Name,
		Rating:    p.Rating,
		CreatedAt: p.CreatedAt,
	}
}
