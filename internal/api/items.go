package api

import (
	"net/http"
	"time"

	"github.com/KashishDange28/lost-and-found/internal/auth"
	"github.com/KashishDange28/lost-and-found/internal/catalog"
	"github.com/KashishDange28/lost-and-found/internal/imaging"
	"github.com/KashishDange28/lost-and-found/internal/model"
	"github.com/KashishDange28/lost-and-found/internal/session"
)

// ItemsHandler handles item report endpoints.
type ItemsHandler struct {
	Catalog  *catalog.Store
	Sessions *session.Store
}

type createItemRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type" validate:"required,oneof=lost found"`
	Tags        []string  `json:"tags"`
}

type updateItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Location    *string    `json:"location"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
	Tags        []string   `json:"tags"`
}

// List handles GET /api/items with optional q/type/category/location/status
// query parameters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.Catalog.SearchItems(q.Get("q"), catalog.Filter{
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Location: q.Get("location"),
		Status:   q.Get("status"),
	})
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items. The reporter snapshot comes from the
// active session identity.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !model.ValidCategory(req.Category) {
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if !model.ValidLocation(req.Location) {
		jsonError(w, http.StatusBadRequest, "unknown location")
		return
	}

	reporter := h.Sessions.User()
	if reporter == nil {
		jsonError(w, http.StatusUnauthorized, "no active session")
		return
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	item := h.Catalog.AddItem(catalog.ItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Date:        date,
		Type:        req.Type,
		UserID:      reporter.ID,
		UserName:    reporter.Name,
		UserEmail:   reporter.Email,
		UserPhone:   reporter.Phone,
		Tags:        req.Tags,
	})

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item := h.Catalog.GetItem(r.PathValue("id"))
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Reporters may edit their own items;
// admins may edit any.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, _, ok := h.authorizeItem(w, r, id); !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if req.Category != nil && !model.ValidCategory(*req.Category) {
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if req.Location != nil && !model.ValidLocation(*req.Location) {
		jsonError(w, http.StatusBadRequest, "unknown location")
		return
	}

	h.Catalog.UpdateItem(id, catalog.ItemUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		Status:      req.Status,
		Tags:        req.Tags,
	})

	jsonResponse(w, http.StatusOK, h.Catalog.GetItem(id))
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, _, ok := h.authorizeItem(w, r, id); !ok {
		return
	}

	h.Catalog.DeleteItem(id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, _, ok := h.authorizeItem(w, r, id); !ok {
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	img, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.Catalog.AddItemImage(id, img)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	img, ok := h.Catalog.ItemImage(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", img.MIME)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(img.Data)
}

// GetMatches handles GET /api/items/{id}/matches.
func (h *ItemsHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	matches := h.Catalog.FindMatchesForItem(r.PathValue("id"))
	if matches == nil {
		matches = []model.Match{}
	}
	jsonResponse(w, http.StatusOK, matches)
}

// authorizeItem loads the item and checks the caller may mutate it
// (reporter or admin). Writes the error response itself on failure.
func (h *ItemsHandler) authorizeItem(w http.ResponseWriter, r *http.Request, id string) (*model.Item, *auth.Claims, bool) {
	item := h.Catalog.GetItem(id)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return nil, nil, false
	}

	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return nil, nil, false
	}
	if claims.Role != model.RoleAdmin && item.UserID != claims.UserID {
		jsonError(w, http.StatusForbidden, "not your report")
		return nil, nil, false
	}
	return item, claims, true
}
