package api

import (
	"net/http"

	"github.com/KashishDange28/lost-and-found/internal/catalog"
)

// StatsHandler serves derived catalog statistics.
type StatsHandler struct {
	Catalog *catalog.Store
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Catalog.Stats())
}
