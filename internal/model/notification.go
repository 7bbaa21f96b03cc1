package model

import "time"

// Notification is an in-app message for a user. The only mutation after
// creation is the read-flag transition.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notification types.
const (
	NotificationMatch  = "match"
	NotificationStatus = "status"
	NotificationAdmin  = "admin"
)
