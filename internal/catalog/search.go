package catalog

import (
	"strings"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// Filter narrows a search to items whose fields equal the supplied values.
// An empty field imposes no constraint.
type Filter struct {
	Type     string `json:"type,omitempty"`
	Category string `json:"category,omitempty"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status,omitempty"`
}

// SearchItems returns items matching the query text and every supplied
// filter field. The query matches case-insensitively against title,
// description, any tag, or location; an empty query matches everything.
// Results keep insertion order.
func (s *Store) SearchItems(query string, filter Filter) []model.Item {
	query = strings.TrimSpace(strings.ToLower(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Item
	for _, item := range s.items {
		if !matchesQuery(item, query) {
			continue
		}
		if !matchesFilter(item, filter) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item model.Item, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), query) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(item.Location), query)
}

func matchesFilter(item model.Item, f Filter) bool {
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Location != "" && item.Location != f.Location {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	return true
}
