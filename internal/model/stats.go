package model

// Stats holds counts derived from the item collection at read time.
// SuccessRate is round(100 * (matched + claimed) / total), 0 when the
// collection is empty.
type Stats struct {
	TotalItems   int `json:"totalItems"`
	TotalLost    int `json:"totalLost"`
	TotalFound   int `json:"totalFound"`
	TotalMatched int `json:"totalMatched"`
	TotalClaimed int `json:"totalClaimed"`
	ThisMonth    int `json:"thisMonth"`
	SuccessRate  int `json:"successRate"`
}
