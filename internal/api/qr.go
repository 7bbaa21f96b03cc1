package api

import (
	"net/http"
	"time"
)

// QRHandler serves the QR endpoints. Real scanning and decoding are out of
// scope; both endpoints return fixed sample payloads.
type QRHandler struct{}

type qrPayload struct {
	ItemID     string `json:"itemId"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	Location   string `json:"location"`
	ReportedBy string `json:"reportedBy"`
	Date       string `json:"date"`
}

// Scan handles GET /api/qr/scan, simulating a camera scan.
func (h *QRHandler) Scan(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, qrPayload{
		ItemID:     "item-123",
		Title:      "iPhone 13 Pro",
		Type:       "lost",
		Status:     "verified",
		Location:   "Computer Lab A",
		ReportedBy: "John Doe",
		Date:       time.Now().Format(time.RFC3339),
	})
}

// Upload handles POST /api/qr/upload, simulating decode of an uploaded QR
// image. The file content is ignored.
func (h *QRHandler) Upload(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, qrPayload{
		ItemID:     "item-456",
		Title:      "Blue Water Bottle",
		Type:       "found",
		Status:     "verified",
		Location:   "Library",
		ReportedBy: "Jane Smith",
		Date:       time.Now().Format(time.RFC3339),
	})
}
