package model

import (
	"slices"
	"time"
)

// Item represents a single lost or found report. The reporter fields are a
// snapshot taken at submission time. Type is fixed at creation; Status may
// take any of the item status values at any time (there is no enforced
// transition graph).
type Item struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Location      string    `json:"location"`
	Date          time.Time `json:"date"`
	Images        []Image   `json:"images,omitempty"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"`
	UserPhone     string    `json:"userPhone,omitempty"`
	Tags          []string  `json:"tags"`
	MatchedItemID string    `json:"matchedItemId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Image is one photo attached to an item. Data is the processed JPEG held
// in memory for the process lifetime; images are never written to disk.
type Image struct {
	Data []byte `json:"-"`
	MIME string `json:"mime"`
}

// Item types.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusMatched  = "matched"
	StatusClaimed  = "claimed"
	StatusRejected = "rejected"
)

// Categories lists the valid item categories.
var Categories = []string{
	"Electronics",
	"Personal Items",
	"Academic",
	"Clothing",
	"Accessories",
	"Sports Equipment",
	"Books",
	"Other",
}

// Locations lists the valid campus locations.
var Locations = []string{
	"Library",
	"Computer Lab A",
	"Computer Lab B",
	"Mechanical Workshop",
	"Civil Lab",
	"Electrical Lab",
	"Canteen",
	"Auditorium",
	"Main Building",
	"Hostel",
	"Sports Complex",
	"Parking Area",
}

// OppositeType returns the counterpart item type for matching.
func OppositeType(t string) string {
	if t == TypeLost {
		return TypeFound
	}
	return TypeLost
}

// ValidType reports whether t is a known item type.
func ValidType(t string) bool {
	return t == TypeLost || t == TypeFound
}

// ValidStatus reports whether s is a known item status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusMatched, StatusClaimed, StatusRejected:
		return true
	}
	return false
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	return slices.Contains(Categories, c)
}

// ValidLocation reports whether l is a known location.
func ValidLocation(l string) bool {
	return slices.Contains(Locations, l)
}
