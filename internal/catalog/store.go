package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// Store owns the item, match, and notification collections. Collections
// live in memory for the process lifetime; mutations happen under the lock
// and accessors hand out snapshot copies, so readers never observe a
// partially-mutated collection.
type Store struct {
	activeUser func() *model.User
	matchDelay time.Duration

	mu            sync.Mutex
	items         []model.Item
	matches       []model.Match
	notifications []model.Notification

	// pending holds the deferred match pass per new item, so deleting an
	// item before its pass runs cancels the pass instead of scanning stale
	// state.
	pending map[string]*time.Timer

	subscribers []func()
}

// New creates an empty catalog store. activeUser reports the currently
// logged-in identity (nil when none); match notifications are only created
// while an identity is active. matchDelay is how long after AddItem the
// matching pass runs; zero or negative runs it synchronously.
func New(activeUser func() *model.User, matchDelay time.Duration) *Store {
	if activeUser == nil {
		activeUser = func() *model.User { return nil }
	}
	return &Store{
		activeUser: activeUser,
		matchDelay: matchDelay,
		pending:    make(map[string]*time.Timer),
	}
}

// Subscribe registers a callback invoked after every collection change.
// Callbacks run outside the store lock and may call accessors.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// publish invokes subscriber callbacks. Must be called without holding s.mu.
func (s *Store) publish() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Items returns a snapshot copy of the item collection in insertion order.
func (s *Store) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Matches returns a snapshot copy of the match collection.
func (s *Store) Matches() []model.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Notifications returns a snapshot copy of the notification collection.
func (s *Store) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// NotificationsFor returns the notifications addressed to the given user.
func (s *Store) NotificationsFor(userID string) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// GetItem returns a copy of the item with the given id, or nil.
func (s *Store) GetItem(id string) *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item
		}
	}
	return nil
}

// ItemInput holds the caller-supplied fields for a new item report.
// The reporter fields are snapshotted into the item as-is.
type ItemInput struct {
	Title       string
	Description string
	Category    string
	Location    string
	Date        time.Time
	Status      string
	Type        string
	UserID      string
	UserName    string
	UserEmail   string
	UserPhone   string
	Tags        []string
}

// AddItem appends a new item with a fresh id and timestamps, then runs the
// matching pass for it after the configured delay. Tags are lowercased at
// insertion. The delay only exists so a UI can show the item before match
// notifications land; it carries no correctness meaning.
func (s *Store) AddItem(in ItemInput) model.Item {
	now := time.Now()

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	status := in.Status
	if status == "" {
		status = model.StatusPending
	}

	item := model.Item{
		ID:          "item-" + uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		Date:        in.Date,
		Status:      status,
		Type:        in.Type,
		UserID:      in.UserID,
		UserName:    in.UserName,
		UserEmail:   in.UserEmail,
		UserPhone:   in.UserPhone,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	if s.matchDelay > 0 {
		id := item.ID
		s.pending[id] = time.AfterFunc(s.matchDelay, func() {
			s.deferredMatchPass(id)
		})
		s.mu.Unlock()
	} else {
		s.runMatchPass(item)
		s.mu.Unlock()
	}

	s.publish()
	return item
}

// deferredMatchPass runs the matching pass for an item added earlier. The
// item may have been deleted while the timer was pending; in that case the
// pass is dropped.
func (s *Store) deferredMatchPass(itemID string) {
	s.mu.Lock()
	delete(s.pending, itemID)

	var item *model.Item
	for i := range s.items {
		if s.items[i].ID == itemID {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		s.mu.Unlock()
		return
	}

	created := s.runMatchPass(*item)
	s.mu.Unlock()

	if created {
		s.publish()
	}
}

// ItemUpdate holds optional fields for a partial item update. Nil fields
// are left unchanged. Type is deliberately absent: it is immutable after
// creation.
type ItemUpdate struct {
	Title         *string
	Description   *string
	Category      *string
	Location      *string
	Date          *time.Time
	Status        *string
	Tags          []string
	MatchedItemID *string
}

// UpdateItem merges the supplied fields into the item with the given id and
// refreshes its update timestamp. Silently does nothing if the id is not
// found. Any status value may be set; there is no transition graph.
func (s *Store) UpdateItem(id string, up ItemUpdate) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if up.Title != nil {
			item.Title = *up.Title
		}
		if up.Description != nil {
			item.Description = *up.Description
		}
		if up.Category != nil {
			item.Category = *up.Category
		}
		if up.Location != nil {
			item.Location = *up.Location
		}
		if up.Date != nil {
			item.Date = *up.Date
		}
		if up.Status != nil {
			item.Status = *up.Status
		}
		if up.Tags != nil {
			tags := make([]string, 0, len(up.Tags))
			for _, tag := range up.Tags {
				tag = strings.ToLower(strings.TrimSpace(tag))
				if tag != "" {
					tags = append(tags, tag)
				}
			}
			item.Tags = tags
		}
		if up.MatchedItemID != nil {
			item.MatchedItemID = *up.MatchedItemID
		}
		item.UpdatedAt = time.Now()
		found = true
		break
	}
	s.mu.Unlock()

	if found {
		s.publish()
	}
}

// DeleteItem removes the item with the given id and cancels a still-pending
// match pass for it. Silently does nothing if the id is not found.
func (s *Store) DeleteItem(id string) {
	s.mu.Lock()
	if timer, ok := s.pending[id]; ok {
		timer.Stop()
		delete(s.pending, id)
	}

	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.publish()
	}
}

// AddItemImage appends a processed photo to the item's image sequence.
// Silently does nothing if the id is not found.
func (s *Store) AddItemImage(id string, img model.Image) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Images = append(s.items[i].Images, img)
			s.items[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.publish()
	}
}

// ItemImage returns the first image of the item, or false when the item
// does not exist or has no images.
func (s *Store) ItemImage(id string) (model.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if len(s.items[i].Images) == 0 {
				return model.Image{}, false
			}
			return s.items[i].Images[0], true
		}
	}
	return model.Image{}, false
}

// MarkNotificationRead sets the read flag on the matching notification.
// Silently does nothing if the id is not found.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.publish()
	}
}
