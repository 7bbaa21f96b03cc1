package session

import (
	"context"
	"testing"

	"github.com/KashishDange28/lost-and-found/internal/db"
	"github.com/KashishDange28/lost-and-found/internal/model"
)

func TestLogin(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	s := New(database)

	ok, err := s.Login(ctx, "student@kkwagh.edu.in", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !ok {
		t.Fatal("expected login to succeed")
	}

	u := s.User()
	if u == nil {
		t.Fatal("expected active user after login")
	}
	if u.ID != "student-1" || u.Role != model.RoleStudent {
		t.Errorf("unexpected identity: %+v", u)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	s := New(database)

	ok, err := s.Login(ctx, "student@kkwagh.edu.in", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if ok {
		t.Error("expected login to fail")
	}
	if s.User() != nil {
		t.Error("expected no active user after failed login")
	}

	// Failed login must not persist anything.
	var count int
	database.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&count)
	if count != 0 {
		t.Errorf("expected empty session table, got %d rows", count)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database)

	ok, _ := s.Login(context.Background(), "nobody@kkwagh.edu.in", "password")
	if ok {
		t.Error("expected login to fail for unknown email")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	s := New(database)
	if ok, _ := s.Login(ctx, "admin@kkwagh.edu.in", "password"); !ok {
		t.Fatal("login failed")
	}

	// Simulated reload: a fresh store over the same database.
	reloaded := New(database)
	if reloaded.Initialized() {
		t.Error("expected store to be uninitialized before Restore")
	}
	if err := reloaded.Restore(ctx); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !reloaded.Initialized() {
		t.Error("expected store to be initialized after Restore")
	}

	u := reloaded.User()
	if u == nil {
		t.Fatal("expected restored identity")
	}
	if u.ID != "admin-1" || u.Email != "admin@kkwagh.edu.in" || u.Role != model.RoleAdmin {
		t.Errorf("restored identity differs: %+v", u)
	}
}

func TestLogoutClearsPersistence(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	s := New(database)
	s.Login(ctx, "admin@kkwagh.edu.in", "password")
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.User() != nil {
		t.Error("expected no active user after logout")
	}

	reloaded := New(database)
	reloaded.Restore(ctx)
	if reloaded.User() != nil {
		t.Error("expected no identity after logout and reload")
	}
}

func TestRestoreWithEmptyStorage(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database)

	if err := s.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !s.Initialized() {
		t.Error("expected initialized after Restore")
	}
	if s.User() != nil {
		t.Error("expected no user from empty storage")
	}
}

func TestRegister(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	s := New(database)

	ok, err := s.Register(ctx, RegisterInput{
		Email:      "jane@kkwagh.edu.in",
		Name:       "Jane Smith",
		StudentID:  "KKW2024002",
		Department: "Civil Engineering",
		Year:       2,
		Password:   "whatever",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !ok {
		t.Fatal("expected register to succeed")
	}

	u := s.User()
	if u == nil {
		t.Fatal("expected active user after register")
	}
	if u.Role != model.RoleStudent {
		t.Errorf("expected default role 'student', got %q", u.Role)
	}
	if u.ID == "" {
		t.Error("expected generated id")
	}

	// Registered identity survives a reload.
	reloaded := New(database)
	reloaded.Restore(ctx)
	got := reloaded.User()
	if got == nil || got.ID != u.ID {
		t.Errorf("expected registered identity to persist, got %+v", got)
	}
}

func TestUpdateProfile(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	s := New(database)

	s.Login(ctx, "student@kkwagh.edu.in", "password")

	name := "Johnny Doe"
	year := 4
	if err := s.UpdateProfile(ctx, ProfileUpdate{Name: &name, Year: &year}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	u := s.User()
	if u.Name != "Johnny Doe" || u.Year != 4 {
		t.Errorf("expected updated profile, got %+v", u)
	}
	if u.Department != "Computer Engineering" {
		t.Errorf("expected untouched fields to remain, got %q", u.Department)
	}

	// Overwrite is persisted.
	reloaded := New(database)
	reloaded.Restore(ctx)
	if got := reloaded.User(); got == nil || got.Name != "Johnny Doe" {
		t.Errorf("expected persisted profile update, got %+v", got)
	}
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	database := db.NewTestDB(t)
	s := New(database)

	name := "Nobody"
	if err := s.UpdateProfile(context.Background(), ProfileUpdate{Name: &name}); err == nil {
		t.Error("expected error without an active session")
	}
}
