package catalog

import (
	"reflect"
	"testing"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

func seedSearchStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore()
	s.AddItem(ItemInput{
		Title:       "iPhone 13 Pro",
		Description: "Space Gray iPhone",
		Category:    "Electronics",
		Location:    "Computer Lab A",
		Status:      model.StatusApproved,
		Type:        model.TypeLost,
		Tags:        []string{"iphone", "apple"},
	})
	s.AddItem(ItemInput{
		Title:       "Water Bottle",
		Description: "Blue steel bottle",
		Category:    "Personal Items",
		Location:    "Library",
		Status:      model.StatusPending,
		Type:        model.TypeFound,
		Tags:        []string{"bottle", "blue"},
	})
	s.AddItem(ItemInput{
		Title:       "Notebook",
		Description: "Red cover notebook",
		Category:    "Academic",
		Location:    "Library",
		Status:      model.StatusMatched,
		Type:        model.TypeLost,
		Tags:        []string{"notebook", "red"},
	})
	return s
}

func TestSearchNoQueryNoFilter(t *testing.T) {
	s := seedSearchStore(t)

	got := s.SearchItems("", Filter{})
	if len(got) != 3 {
		t.Fatalf("expected full collection, got %d items", len(got))
	}
	// Insertion order preserved.
	if got[0].Title != "iPhone 13 Pro" || got[2].Title != "Notebook" {
		t.Errorf("expected insertion order, got %q ... %q", got[0].Title, got[2].Title)
	}
}

func TestSearchIdempotence(t *testing.T) {
	s := seedSearchStore(t)

	first := s.SearchItems("library", Filter{Type: model.TypeLost})
	second := s.SearchItems("library", Filter{Type: model.TypeLost})
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for repeated identical searches")
	}
}

func TestFilterConjunction(t *testing.T) {
	s := seedSearchStore(t)

	for _, query := range []string{"", "red", "library"} {
		for _, item := range s.SearchItems(query, Filter{Type: model.TypeLost}) {
			if item.Type != model.TypeLost {
				t.Errorf("query %q: filter {type: lost} returned %q item %q",
					query, item.Type, item.Title)
			}
		}
	}

	// All supplied filter fields must hold together.
	got := s.SearchItems("", Filter{Type: model.TypeLost, Location: "Library"})
	if len(got) != 1 || got[0].Title != "Notebook" {
		t.Errorf("expected only the Notebook, got %d items", len(got))
	}
}

func TestSearchQueryFields(t *testing.T) {
	s := seedSearchStore(t)

	cases := []struct {
		query string
		want  string
	}{
		{"IPHONE", "iPhone 13 Pro"}, // title, case-insensitive
		{"steel", "Water Bottle"},   // description
		{"red", "Notebook"},         // tag
		{"lab a", "iPhone 13 Pro"},  // location
	}
	for _, tc := range cases {
		got := s.SearchItems(tc.query, Filter{})
		if len(got) == 0 {
			t.Errorf("query %q: expected results", tc.query)
			continue
		}
		if got[0].Title != tc.want {
			t.Errorf("query %q: expected %q first, got %q", tc.query, tc.want, got[0].Title)
		}
	}
}

func TestSearchAbsentFilterFieldsImposeNoConstraint(t *testing.T) {
	s := seedSearchStore(t)

	got := s.SearchItems("", Filter{Status: model.StatusPending})
	if len(got) != 1 || got[0].Title != "Water Bottle" {
		t.Errorf("expected only the pending item, got %d items", len(got))
	}
}
