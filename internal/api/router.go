package api

import (
	"database/sql"
	"net/http"

	"github.com/KashishDange28/lost-and-found/internal/catalog"
	"github.com/KashishDange28/lost-and-found/internal/session"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, sessions *session.Store, cat *catalog.Store, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Sessions: sessions, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{Catalog: cat, Sessions: sessions}
	matchesHandler := &MatchesHandler{Catalog: cat}
	notificationsHandler := &NotificationsHandler{Catalog: cat}
	statsHandler := &StatsHandler{Catalog: cat}
	qrHandler := &QRHandler{}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: login and registration.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)

	// Session.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/session", authMW(http.HandlerFunc(authHandler.Session)))
	mux.Handle("PUT /api/auth/profile", authMW(http.HandlerFunc(authHandler.UpdateProfile)))

	// Item reports.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))
	mux.Handle("GET /api/items/{id}/matches", authMW(http.HandlerFunc(itemsHandler.GetMatches)))

	// Match review (admin only).
	mux.Handle("GET /api/matches", authMW(RequireAdmin(http.HandlerFunc(matchesHandler.List))))
	mux.Handle("PUT /api/matches/{id}", authMW(RequireAdmin(http.HandlerFunc(matchesHandler.Update))))

	// Notifications.
	mux.Handle("GET /api/notifications", authMW(http.HandlerFunc(notificationsHandler.List)))
	mux.Handle("PUT /api/notifications/{id}/read", authMW(http.HandlerFunc(notificationsHandler.MarkRead)))

	// Stats.
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))

	// QR stubs.
	mux.Handle("GET /api/qr/scan", authMW(http.HandlerFunc(qrHandler.Scan)))
	mux.Handle("POST /api/qr/upload", authMW(http.HandlerFunc(qrHandler.Upload)))

	return mux
}
