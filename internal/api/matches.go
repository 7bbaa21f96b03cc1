package api

import (
	"net/http"

	"github.com/KashishDange28/lost-and-found/internal/catalog"
	"github.com/KashishDange28/lost-and-found/internal/model"
)

// MatchesHandler handles match review endpoints (admin only).
type MatchesHandler struct {
	Catalog *catalog.Store
}

type updateMatchRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed rejected"`
}

// List handles GET /api/matches.
func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	matches := h.Catalog.Matches()
	if matches == nil {
		matches = []model.Match{}
	}
	jsonResponse(w, http.StatusOK, matches)
}

// Update handles PUT /api/matches/{id}.
func (h *MatchesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMatchRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Catalog.UpdateMatchStatus(r.PathValue("id"), req.Status)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "match updated"})
}
