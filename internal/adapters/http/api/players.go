package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type playerRequest struct {
	Name string `json:"name"`
}

func (p playerRequest) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewKind("missing name", ErrBadRequest)
	}
	return nil
}

// handleRegisterPlayer handles POST /api/players.
func (s *Server) handleRegisterPlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.register_player"
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	p, err := s.deps.RegisterPlayer(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// handleListPlayers handles GET /api/players. Players come back in
// leaderboard shape, tallies included, which is what the roster table
// renders.
func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	players, err := s.deps.ListPlayers(r.Context())
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// handleRenamePlayer handles PUT /api/players/{id}.
func (s *Server) handleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.rename_player"
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	p, err := s.deps.RenamePlayer(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleRemovePlayer handles DELETE /api/players/{id}. Removal is
// refused with 409 while the player has ledger history.
func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	const op = "api.remove_player"
	if err := s.deps.RemovePlayer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
