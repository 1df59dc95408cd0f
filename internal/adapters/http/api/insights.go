package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleLeaderboard handles GET /api/leaderboard.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.leaderboard"
	entries, err := s.deps.Leaderboard(r.Context())
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handlePlayerStats handles GET /api/players/{id}/stats.
func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	const op = "api.player_stats"
	stats, err := s.deps.PlayerStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleHeadToHead handles GET /api/players/{id}/head-to-head.
func (s *Server) handleHeadToHead(w http.ResponseWriter, r *http.Request) {
	const op = "api.head_to_head"
	records, err := s.deps.HeadToHead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleRatingHistory handles GET /api/players/{id}/rating-history.
func (s *Server) handleRatingHistory(w http.ResponseWriter, r *http.Request) {
	const op = "api.rating_history"
	points, err := s.deps.RatingHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, points)
}

// handleRecentGames handles GET /api/players/{id}/recent-games?limit=N.
func (s *Server) handleRecentGames(w http.ResponseWriter, r *http.Request) {
	const op = "api.recent_games"
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}
	games, err := s.deps.RecentGames(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, games)
}
