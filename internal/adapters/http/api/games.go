package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/okian/volley/internal/domain/model"
)

type gameTeamRequest struct {
	PlayerIDs []string `json:"player_ids"`
	Score     int      `json:"score"`
}

type createGameRequest struct {
	GameType string            `json:"game_type"`
	Teams    []gameTeamRequest `json:"teams"`
}

func (g createGameRequest) validate() error {
	if !model.GameType(g.GameType).Valid() {
		return NewKind("game_type must be 'singles' or 'doubles'", ErrBadRequest)
	}
	if len(g.Teams) != 2 {
		return NewKind("exactly 2 teams required", ErrBadRequest)
	}
	return nil
}

type editGameRequest struct {
	Team1Score *int `json:"team1_score"`
	Team2Score *int `json:"team2_score"`
}

func (g editGameRequest) validate() error {
	if g.Team1Score == nil && g.Team2Score == nil {
		return NewKind("at least one score required", ErrBadRequest)
	}
	for _, s := range []*int{g.Team1Score, g.Team2Score} {
		if s != nil && *s < 0 {
			return NewKind("scores must be non-negative", ErrBadRequest)
		}
	}
	return nil
}

// handleRecordGame handles POST /api/games.
func (s *Server) handleRecordGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.record_game"
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	teams := [2]model.Team{
		{PlayerIDs: req.Teams[0].PlayerIDs, Score: req.Teams[0].Score},
		{PlayerIDs: req.Teams[1].PlayerIDs, Score: req.Teams[1].Score},
	}
	game, err := s.deps.RecordGame(r.Context(), model.GameType(req.GameType), teams)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// handleListGames handles GET /api/games?limit=N, newest first.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_games"
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}
	games, err := s.deps.Games(r.Context(), limit)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, games)
}

// handleEditGame handles PUT /api/games/{id}.
func (s *Server) handleEditGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.edit_game"
	var req editGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	game, err := s.deps.EditGame(r.Context(), chi.URLParam(r, "id"), req.Team1Score, req.Team2Score)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// handleDeleteGame handles DELETE /api/games/{id}.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.delete_game"
	if err := s.deps.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
