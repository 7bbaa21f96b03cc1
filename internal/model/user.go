package model

import "time"

// User represents an identity known to the application. Items and
// notifications carry denormalized copies of user fields, not references,
// so profile edits never rewrite history.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	StudentID  string    `json:"studentId,omitempty"`
	Department string    `json:"department,omitempty"`
	Year       int       `json:"year,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Roles.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// ValidRole reports whether role is a known role value.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}
