package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// maxConfidence caps the heuristic score; keyword overlap alone never
// proves a match.
const maxConfidence = 95

// runMatchPass scans for counterpart candidates of the new item and records
// a Match per qualifying candidate. Candidates are items of the opposite
// type with status approved, excluding the new item itself. The overlap set
// per candidate is every tag of the new item that appears verbatim in the
// candidate's tag set or as a case-insensitive substring of its title or
// description. Confidence is min(95, 100*|overlap|/|tags|); an item with no
// tags produces no matches, so the score is always defined.
//
// Every qualifying candidate yields its own Match and, while an identity is
// active, its own Notification to the new item's reporter. That is one
// notification per candidate, not one per submission.
//
// Callers must hold s.mu. Returns whether any record was created.
func (s *Store) runMatchPass(newItem model.Item) bool {
	if len(newItem.Tags) == 0 {
		return false
	}

	oppositeType := model.OppositeType(newItem.Type)
	active := s.activeUser()
	created := false

	for _, candidate := range s.items {
		if candidate.Type != oppositeType {
			continue
		}
		if candidate.Status != model.StatusApproved {
			continue
		}
		if candidate.ID == newItem.ID {
			continue
		}

		keywords := overlapKeywords(newItem.Tags, candidate)
		if len(keywords) == 0 {
			continue
		}

		confidence := 100 * len(keywords) / len(newItem.Tags)
		if confidence > maxConfidence {
			confidence = maxConfidence
		}

		match := model.Match{
			ID:              "match-" + uuid.NewString(),
			LostItemID:      newItem.ID,
			FoundItemID:     candidate.ID,
			Confidence:      confidence,
			MatchedKeywords: keywords,
			CreatedAt:       time.Now(),
			Status:          model.MatchStatusPending,
		}
		if newItem.Type == model.TypeFound {
			match.LostItemID, match.FoundItemID = candidate.ID, newItem.ID
		}
		s.matches = append(s.matches, match)
		created = true

		if active != nil {
			s.notifications = append(s.notifications, model.Notification{
				ID:        "notif-" + uuid.NewString(),
				UserID:    newItem.UserID,
				Title:     "Potential Match Found!",
				Message:   fmt.Sprintf("We found a potential match for %q. Check your dashboard for details.", newItem.Title),
				Type:      model.NotificationMatch,
				Read:      false,
				CreatedAt: time.Now(),
			})
		}
	}

	return created
}

// overlapKeywords returns the tags of the new item that overlap with the
// candidate. Tags are lowercase by the insertion invariant.
func overlapKeywords(tags []string, candidate model.Item) []string {
	title := strings.ToLower(candidate.Title)
	description := strings.ToLower(candidate.Description)

	var keywords []string
	for _, tag := range tags {
		if containsTag(candidate.Tags, tag) ||
			strings.Contains(title, tag) ||
			strings.Contains(description, tag) {
			keywords = append(keywords, tag)
		}
	}
	return keywords
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FindMatchesForItem returns every match where the item appears on either
// side.
func (s *Store) FindMatchesForItem(itemID string) []model.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Match
	for _, m := range s.matches {
		if m.LostItemID == itemID || m.FoundItemID == itemID {
			out = append(out, m)
		}
	}
	return out
}

// UpdateMatchStatus sets the status of the match with the given id.
// Silently does nothing if the id is not found.
func (s *Store) UpdateMatchStatus(id, status string) {
	s.mu.Lock()
	found := false
	for i := range s.matches {
		if s.matches[i].ID == id {
			s.matches[i].Status = status
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.publish()
	}
}
