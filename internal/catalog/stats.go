package catalog

import (
	"math"
	"time"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// Stats derives collection statistics at read time. The success rate is
// the rounded percentage of items that reached matched or claimed, 0 for
// an empty collection.
func (s *Store) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var st model.Stats
	st.TotalItems = len(s.items)

	resolved := 0
	for _, item := range s.items {
		switch item.Type {
		case model.TypeLost:
			st.TotalLost++
		case model.TypeFound:
			st.TotalFound++
		}
		switch item.Status {
		case model.StatusMatched:
			st.TotalMatched++
			resolved++
		case model.StatusClaimed:
			st.TotalClaimed++
			resolved++
		}
		if item.CreatedAt.Month() == now.Month() && item.CreatedAt.Year() == now.Year() {
			st.ThisMonth++
		}
	}

	if st.TotalItems > 0 {
		st.SuccessRate = int(math.Round(100 * float64(resolved) / float64(st.TotalItems)))
	}
	return st
}
