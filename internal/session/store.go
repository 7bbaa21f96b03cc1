package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KashishDange28/lost-and-found/internal/model"
)

// storageKey is the fixed key under which the active identity is persisted.
const storageKey = "user"

// sentinelPassword is the password every roster account accepts. The whole
// authentication layer is a mock, not a security boundary.
const sentinelPassword = "password"

// Store holds the single active identity and persists it to the session
// table so a restart restores it. Credentials are checked against a fixed
// roster.
type Store struct {
	db *sql.DB

	mu          sync.Mutex
	user        *model.User
	initialized bool
	roster      []rosterEntry
}

type rosterEntry struct {
	user         model.User
	passwordHash []byte
}

// New creates a session store backed by the given database. Call Restore
// before serving so a persisted identity is picked up.
func New(db *sql.DB) *Store {
	// MinCost: the sentinel is hard-coded, there is nothing to protect.
	hash, _ := bcrypt.GenerateFromPassword([]byte(sentinelPassword), bcrypt.MinCost)
	now := time.Now()

	return &Store{
		db: db,
		roster: []rosterEntry{
			{
				user: model.User{
					ID:        "admin-1",
					Email:     "admin@kkwagh.edu.in",
					Name:      "Administrator",
					Role:      model.RoleAdmin,
					CreatedAt: now,
				},
				passwordHash: hash,
			},
			{
				user: model.User{
					ID:         "student-1",
					Email:      "student@kkwagh.edu.in",
					Name:       "John Doe",
					Role:       model.RoleStudent,
					StudentID:  "KKW2024001",
					Department: "Computer Engineering",
					Year:       3,
					Phone:      "+91 9876543210",
					CreatedAt:  now,
				},
				passwordHash: hash,
			},
		},
	}
}

// Restore loads a persisted identity if one exists. It marks the store
// initialized either way, so callers can tell "not yet checked" apart from
// "checked, none found".
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.initialized = true }()

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, storageKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session: %w", err)
	}

	var u model.User
	if err := json.Unmarshal([]byte(value), &u); err != nil {
		return fmt.Errorf("decoding session: %w", err)
	}
	s.user = &u
	return nil
}

// Initialized reports whether Restore has run.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// User returns a copy of the active identity, or nil when nobody is
// logged in.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login authenticates against the roster by exact email match. It returns
// false for an unknown email or wrong password, with no side effects. On
// success the identity becomes active and is persisted.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.roster {
		if entry.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)) != nil {
			return false, nil
		}
		u := entry.user
		if err := s.persist(ctx, &u); err != nil {
			return false, err
		}
		s.user = &u
		return true, nil
	}
	return false, nil
}

// RegisterInput holds the fields a new user supplies at registration.
type RegisterInput struct {
	Email      string
	Name       string
	StudentID  string
	Department string
	Year       int
	Phone      string
	Password   string
}

// Register creates a new student identity, makes it active, and persists
// it. Email collisions with the roster or earlier registrations are not
// checked, mirroring the original behavior. The password is accepted but
// not stored anywhere.
func (s *Store) Register(ctx context.Context, in RegisterInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:         "user-" + uuid.NewString(),
		Email:      in.Email,
		Name:       in.Name,
		Role:       model.RoleStudent,
		StudentID:  in.StudentID,
		Department: in.Department,
		Year:       in.Year,
		Phone:      in.Phone,
		CreatedAt:  time.Now(),
	}

	if err := s.persist(ctx, &u); err != nil {
		return false, err
	}
	s.user = &u
	return true, nil
}

// ProfileUpdate holds the profile fields a user may overwrite. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Name       *string
	StudentID  *string
	Department *string
	Year       *int
	Phone      *string
}

// UpdateProfile overwrites profile fields on the active identity and
// re-persists it. Historical item and notification snapshots are not
// touched.
func (s *Store) UpdateProfile(ctx context.Context, up ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return fmt.Errorf("no active session")
	}

	u := *s.user
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.StudentID != nil {
		u.StudentID = *up.StudentID
	}
	if up.Department != nil {
		u.Department = *up.Department
	}
	if up.Year != nil {
		u.Year = *up.Year
	}
	if up.Phone != nil {
		u.Phone = *up.Phone
	}

	if err := s.persist(ctx, &u); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// Logout clears the active identity and removes the persisted record.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE key = ?`, storageKey,
	)
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	s.user = nil
	return nil
}

// persist writes the serialized identity under the fixed storage key.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, u *model.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session (key, value) VALUES (?, ?)`,
		storageKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}
