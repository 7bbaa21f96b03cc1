package catalog

import (
	"testing"
	"time"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

func activeStudent() *model.User {
	return &model.User{
		ID:    "student-1",
		Email: "student@kkwagh.edu.in",
		Name:  "John Doe",
		Role:  model.RoleStudent,
	}
}

func newTestStore() *Store {
	return New(activeStudent, 0)
}

func TestMatchingTrigger(t *testing.T) {
	s := newTestStore()

	lost := s.AddItem(ItemInput{
		Title:  "Blue Water Bottle",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		UserID: "student-2",
		Tags:   []string{"bottle"},
	})

	found := s.AddItem(ItemInput{
		Title:  "Steel bottle near canteen",
		Status: model.StatusPending,
		Type:   model.TypeFound,
		UserID: "student-1",
		Tags:   []string{"bottle", "blue"},
	})

	matches := s.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.Confidence != 50 {
		t.Errorf("expected confidence 50, got %d", m.Confidence)
	}
	if len(m.MatchedKeywords) != 1 || m.MatchedKeywords[0] != "bottle" {
		t.Errorf("expected overlap [bottle], got %v", m.MatchedKeywords)
	}
	if m.LostItemID != lost.ID || m.FoundItemID != found.ID {
		t.Errorf("expected lost/found sides %s/%s, got %s/%s",
			lost.ID, found.ID, m.LostItemID, m.FoundItemID)
	}
	if m.Status != model.MatchStatusPending {
		t.Errorf("expected pending match, got %q", m.Status)
	}

	// A notification goes to the new item's reporter.
	notifs := s.NotificationsFor("student-1")
	if len(notifs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].Type != model.NotificationMatch || notifs[0].Read {
		t.Errorf("unexpected notification: %+v", notifs[0])
	}
}

func TestMatchSidesForLostSubmission(t *testing.T) {
	s := newTestStore()

	found := s.AddItem(ItemInput{
		Title:  "Found a phone",
		Status: model.StatusApproved,
		Type:   model.TypeFound,
		Tags:   []string{"phone"},
	})
	lost := s.AddItem(ItemInput{
		Title:  "Lost my phone",
		Status: model.StatusPending,
		Type:   model.TypeLost,
		Tags:   []string{"phone"},
	})

	matches := s.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].LostItemID != lost.ID || matches[0].FoundItemID != found.ID {
		t.Errorf("lost/found sides reversed: %+v", matches[0])
	}
}

func TestNoSelfMatch(t *testing.T) {
	s := newTestStore()

	// An approved item is in its own candidate pool scan but must be
	// skipped; it is also the wrong type, so add a same-type sibling too.
	s.AddItem(ItemInput{
		Title:  "Red Umbrella",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"umbrella", "red"},
	})
	s.AddItem(ItemInput{
		Title:  "Red Umbrella",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"umbrella", "red"},
	})

	if got := s.Matches(); len(got) != 0 {
		t.Errorf("expected no matches between same-type items, got %d", len(got))
	}
}

func TestZeroTagGuard(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:  "Black Wallet",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"wallet"},
	})
	s.AddItem(ItemInput{
		Title: "Wallet found near library",
		Type:  model.TypeFound,
		Tags:  nil,
	})

	for _, m := range s.Matches() {
		if m.Confidence < 0 || m.Confidence > 100 {
			t.Errorf("confidence out of range: %d", m.Confidence)
		}
	}
	if got := s.Matches(); len(got) != 0 {
		t.Errorf("expected no matches for a tagless item, got %d", len(got))
	}
}

func TestConfidenceCap(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:  "Calculator",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"calculator"},
	})
	s.AddItem(ItemInput{
		Title: "Found calculator",
		Type:  model.TypeFound,
		Tags:  []string{"calculator"},
	})

	matches := s.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Confidence != 95 {
		t.Errorf("expected confidence capped at 95, got %d", matches[0].Confidence)
	}
}

func TestCandidatePoolRequiresApproved(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:  "Pending Keys",
		Status: model.StatusPending,
		Type:   model.TypeLost,
		Tags:   []string{"keys"},
	})
	s.AddItem(ItemInput{
		Title: "Found keys",
		Type:  model.TypeFound,
		Tags:  []string{"keys"},
	})

	if got := s.Matches(); len(got) != 0 {
		t.Errorf("expected no matches against non-approved candidates, got %d", len(got))
	}
}

// One Match and one Notification per qualifying candidate, not one per
// submission. This mirrors the original behavior on purpose.
func TestMatchPerCandidate(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:  "Laptop charger",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"charger"},
	})
	s.AddItem(ItemInput{
		Title:  "Dell charger",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"charger", "dell"},
	})
	s.AddItem(ItemInput{
		Title:  "Found a charger in Lab B",
		Type:   model.TypeFound,
		UserID: "student-9",
		Tags:   []string{"charger"},
	})

	if got := s.Matches(); len(got) != 2 {
		t.Errorf("expected 2 matches (one per candidate), got %d", len(got))
	}
	if got := s.NotificationsFor("student-9"); len(got) != 2 {
		t.Errorf("expected 2 notifications (one per candidate), got %d", len(got))
	}
}

func TestNoNotificationWithoutActiveUser(t *testing.T) {
	s := New(func() *model.User { return nil }, 0)

	s.AddItem(ItemInput{
		Title:  "Scarf",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"scarf"},
	})
	s.AddItem(ItemInput{
		Title: "Found a scarf",
		Type:  model.TypeFound,
		Tags:  []string{"scarf"},
	})

	if got := s.Matches(); len(got) != 1 {
		t.Errorf("expected 1 match, got %d", len(got))
	}
	if got := s.Notifications(); len(got) != 0 {
		t.Errorf("expected no notifications without an active identity, got %d", len(got))
	}
}

func TestOverlapAgainstTitleAndDescription(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:       "Airpods Case",
		Description: "White charging case, slightly scratched",
		Status:      model.StatusApproved,
		Type:        model.TypeFound,
		Tags:        []string{"case"},
	})
	s.AddItem(ItemInput{
		Title: "Lost my earbuds",
		Type:  model.TypeLost,
		Tags:  []string{"airpods", "charging", "earbuds"},
	})

	matches := s.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	// "airpods" via title substring, "charging" via description substring.
	if len(matches[0].MatchedKeywords) != 2 {
		t.Errorf("expected 2 overlapping keywords, got %v", matches[0].MatchedKeywords)
	}
	if matches[0].Confidence != 66 {
		t.Errorf("expected confidence 66, got %d", matches[0].Confidence)
	}
}

func TestDeferredMatchPassRuns(t *testing.T) {
	s := New(activeStudent, 10*time.Millisecond)

	s.AddItem(ItemInput{
		Title:  "Glasses",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"glasses"},
	})
	// Wait out the first item's own deferred pass so it cannot interfere.
	time.Sleep(50 * time.Millisecond)

	s.AddItem(ItemInput{
		Title: "Found glasses",
		Type:  model.TypeFound,
		Tags:  []string{"glasses"},
	})

	if got := s.Matches(); len(got) != 0 {
		t.Fatalf("expected no matches before the delay elapses, got %d", len(got))
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(s.Matches()) == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("deferred match pass never ran; matches=%d", len(s.Matches()))
}

func TestDeleteCancelsDeferredMatchPass(t *testing.T) {
	s := New(activeStudent, 30*time.Millisecond)

	s.AddItem(ItemInput{
		Title:  "Headphones",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"headphones"},
	})
	time.Sleep(100 * time.Millisecond)

	item := s.AddItem(ItemInput{
		Title: "Found headphones",
		Type:  model.TypeFound,
		Tags:  []string{"headphones"},
	})
	s.DeleteItem(item.ID)

	time.Sleep(150 * time.Millisecond)
	if got := s.Matches(); len(got) != 0 {
		t.Errorf("expected cancelled pass to create no matches, got %d", len(got))
	}
}

func TestFindMatchesForItem(t *testing.T) {
	s := newTestStore()

	lost := s.AddItem(ItemInput{
		Title:  "ID Card",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"card"},
	})
	found := s.AddItem(ItemInput{
		Title: "Found an ID card",
		Type:  model.TypeFound,
		Tags:  []string{"card"},
	})

	if got := s.FindMatchesForItem(lost.ID); len(got) != 1 {
		t.Errorf("expected 1 match for lost side, got %d", len(got))
	}
	if got := s.FindMatchesForItem(found.ID); len(got) != 1 {
		t.Errorf("expected 1 match for found side, got %d", len(got))
	}
	if got := s.FindMatchesForItem("item-unknown"); len(got) != 0 {
		t.Errorf("expected no matches for unknown item, got %d", len(got))
	}
}

func TestUpdateMatchStatus(t *testing.T) {
	s := newTestStore()

	s.AddItem(ItemInput{
		Title:  "Watch",
		Status: model.StatusApproved,
		Type:   model.TypeLost,
		Tags:   []string{"watch"},
	})
	s.AddItem(ItemInput{
		Title: "Found a watch",
		Type:  model.TypeFound,
		Tags:  []string{"watch"},
	})

	matches := s.Matches()
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	s.UpdateMatchStatus(matches[0].ID, model.MatchStatusConfirmed)
	if got := s.Matches()[0].Status; got != model.MatchStatusConfirmed {
		t.Errorf("expected confirmed, got %q", got)
	}

	// Unknown id is a silent no-op.
	s.UpdateMatchStatus("match-unknown", model.MatchStatusRejected)
}
