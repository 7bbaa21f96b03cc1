package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/KashishDange28/lost-and-found/internal/auth"
	"github.com/KashishDange28/lost-and-found/internal/model"
	"github.com/KashishDange28/lost-and-found/internal/session"
)

// AuthHandler handles authentication and profile endpoints.
type AuthHandler struct {
	DB        *sql.DB
	Sessions  *session.Store
	JWTSecret string
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Year       int    `json:"year" validate:"omitempty,min=1,max=6"`
	Phone      string `json:"phone"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Error("login", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		slog.Warn("login failed", "email", req.Email, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user := h.Sessions.User()
	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "user", user.Email, "role", user.Role)
	jsonResponse(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.Sessions.Register(r.Context(), session.RegisterInput{
		Email:      req.Email,
		Name:       req.Name,
		StudentID:  req.StudentID,
		Department: req.Department,
		Year:       req.Year,
		Phone:      req.Phone,
		Password:   req.Password,
	})
	if err != nil {
		slog.Error("register", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		jsonError(w, http.StatusBadRequest, "registration failed")
		return
	}

	user := h.Sessions.User()
	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user registered", "user", user.Email)
	jsonResponse(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout. The token's JTI is revoked and the
// persisted session cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if claims.ID != "" && claims.ExpiresAt != nil {
		if err := session.RevokeToken(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
			slog.Error("revoking token", "error", err)
		}
	}

	if err := h.Sessions.Logout(r.Context()); err != nil {
		slog.Error("logout", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("user logged out", "user", claims.Email)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}

type sessionResponse struct {
	Initialized bool        `json:"initialized"`
	User        *model.User `json:"user"`
}

// Session handles GET /api/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, sessionResponse{
		Initialized: h.Sessions.Initialized(),
		User:        h.Sessions.User(),
	})
}

type profileRequest struct {
	Name       *string `json:"name"`
	StudentID  *string `json:"studentId"`
	Department *string `json:"department"`
	Year       *int    `json:"year"`
	Phone      *string `json:"phone"`
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.Sessions.UpdateProfile(r.Context(), session.ProfileUpdate{
		Name:       req.Name,
		StudentID:  req.StudentID,
		Department: req.Department,
		Year:       req.Year,
		Phone:      req.Phone,
	})
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, h.Sessions.User())
}
