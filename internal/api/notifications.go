package api

import (
	"net/http"

	"github.com/KashishDange28/lost-and-found/internal/catalog"
	"github.com/KashishDange28/lost-and-found/internal/model"
)

// NotificationsHandler handles notification endpoints.
type NotificationsHandler struct {
	Catalog *catalog.Store
}

// List handles GET /api/notifications, returning the caller's own
// notifications.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	notifs := h.Catalog.NotificationsFor(claims.UserID)
	if notifs == nil {
		notifs = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifs)
}

// MarkRead handles PUT /api/notifications/{id}/read. A missing id is
// silently absorbed, matching the store semantics.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.Catalog.MarkNotificationRead(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "marked read"})
}
