package catalog

import (
	"time"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// Seed loads the built-in sample reports. Collections vanish on restart
// and are re-seeded from this fixed set.
func (s *Store) Seed() {
	s.mu.Lock()
	s.items = append(s.items, sampleItems()...)
	s.mu.Unlock()

	s.publish()
}

func sampleItems() []model.Item {
	return []model.Item{
		{
			ID:          "1",
			Title:       "iPhone 13 Pro",
			Description: "Space Gray iPhone 13 Pro with a cracked screen protector",
			Category:    "Electronics",
			Location:    "Computer Lab A",
			Date:        time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Status:      model.StatusApproved,
			Type:        model.TypeLost,
			UserID:      "student-1",
			UserName:    "John Doe",
			UserEmail:   "john@kkwagh.edu.in",
			UserPhone:   "+91 9876543210",
			Tags:        []string{"iphone", "phone", "mobile", "apple", "electronics"},
			CreatedAt:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Blue Water Bottle",
			Description: "Stainless steel blue water bottle with KKW logo",
			Category:    "Personal Items",
			Location:    "Library",
			Date:        time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
			Status:      model.StatusApproved,
			Type:        model.TypeFound,
			UserID:      "student-2",
			UserName:    "Jane Smith",
			UserEmail:   "jane@kkwagh.edu.in",
			Tags:        []string{"water", "bottle", "blue", "steel", "kkw"},
			CreatedAt:   time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "3",
			Title:         "Engineering Notebook",
			Description:   "Red cover notebook with engineering drawings and formulas",
			Category:      "Academic",
			Location:      "Mechanical Workshop",
			Date:          time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC),
			Status:        model.StatusMatched,
			Type:          model.TypeLost,
			UserID:        "student-3",
			UserName:      "Mike Johnson",
			UserEmail:     "mike@kkwagh.edu.in",
			Tags:          []string{"notebook", "engineering", "red", "drawings", "academic"},
			MatchedItemID: "4",
			CreatedAt:     time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}
