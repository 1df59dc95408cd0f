// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/volley/internal/adapters/repository"
	service "github.com/okian/volley/internal/app"
	"github.com/okian/volley/internal/domain/ledger"
	"github.com/okian/volley/internal/domain/model"
	"github.com/okian/volley/internal/domain/types"
)

// Dependencies bundles everything HTTP handlers need from the service.
// Using an interface keeps the handler layer loosely coupled to the
// application implementation.
type Dependencies interface {
	RegisterPlayer(ctx context.Context, name string) (types.PlayerView, error)
	RenamePlayer(ctx context.Context, id, name string) (types.PlayerView, error)
	RemovePlayer(ctx context.Context, id string) error
	ListPlayers(ctx context.Context) ([]types.LeaderboardEntry, error)

	RecordGame(ctx context.Context, gameType model.GameType, teams [2]model.Team) (types.GameView, error)
	EditGame(ctx context.Context, id string, team1Score, team2Score *int) (types.GameView, error)
	DeleteGame(ctx context.Context, id string) error
	Games(ctx context.Context, limit int) ([]types.GameView, error)

	Leaderboard(ctx context.Context) ([]types.LeaderboardEntry, error)
	PlayerStats(ctx context.Context, id string) (types.PlayerStats, error)
	HeadToHead(ctx context.Context, id string) ([]types.HeadToHead, error)
	RatingHistory(ctx context.Context, id string) ([]types.RatingPoint, error)
	RecentGames(ctx context.Context, id string, n int) ([]types.RecentGame, error)
}

// StatsProvider exposes operational statistics for /stats.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps  Dependencies
	stats StatsProvider
}

// NewServer creates a new API server.
func NewServer(deps Dependencies, stats StatsProvider) *Server {
	return &Server{deps: deps, stats: stats}
}

// Register attaches all business routes under /api plus /stats.
func (s *Server) Register(r chi.Router) {
	r.Get("/stats", Metrics("stats", s.handleServiceStats))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", Metrics("health", s.handleHealth))

		r.Get("/players", Metrics("players_list", s.handleListPlayers))
		r.Post("/players", Metrics("players_create", s.handleRegisterPlayer))
		r.Put("/players/{id}", Metrics("players_rename", s.handleRenamePlayer))
		r.Delete("/players/{id}", Metrics("players_delete", s.handleRemovePlayer))
		r.Get("/players/{id}/stats", Metrics("player_stats", s.handlePlayerStats))
		r.Get("/players/{id}/head-to-head", Metrics("head_to_head", s.handleHeadToHead))
		r.Get("/players/{id}/rating-history", Metrics("rating_history", s.handleRatingHistory))
		r.Get("/players/{id}/recent-games", Metrics("recent_games", s.handleRecentGames))

		r.Get("/games", Metrics("games_list", s.handleListGames))
		r.Post("/games", Metrics("games_create", s.handleRecordGame))
		r.Put("/games/{id}", Metrics("games_edit", s.handleEditGame))
		r.Delete("/games/{id}", Metrics("games_delete", s.handleDeleteGame))

		r.Get("/leaderboard", Metrics("leaderboard", s.handleLeaderboard))
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain error kinds to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation), errors.Is(err, repository.ErrInvalidName), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, ledger.ErrUnknownPlayer):
		writeError(w, http.StatusBadRequest, "unknown_player", err)
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", err)
	case errors.Is(err, ledger.ErrRecompute):
		// The mutation aborted atomically; the caller may retry.
		writeError(w, http.StatusServiceUnavailable, "recompute_failed", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
