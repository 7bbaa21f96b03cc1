package model

import "time"

// Match pairs a lost item with a found item. The two referenced items
// always have opposite types; Confidence is a heuristic percentage in
// [0,100] capped at 95. The same pair of items may accumulate multiple
// Match records if matching runs more than once.
type Match struct {
	ID              string    `json:"id"`
	LostItemID      string    `json:"lostItemId"`
	FoundItemID     string    `json:"foundItemId"`
	Confidence      int       `json:"confidence"`
	MatchedKeywords []string  `json:"matchedKeywords"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
}

// Match statuses.
const (
	MatchStatusPending   = "pending"
	MatchStatusConfirmed = "confirmed"
	MatchStatusRejected  = "rejected"
)

// ValidMatchStatus reports whether s is a known match status.
func ValidMatchStatus(s string) bool {
	switch s {
	case MatchStatusPending, MatchStatusConfirmed, MatchStatusRejected:
		return true
	}
	return false
}
