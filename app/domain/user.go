package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a user's role
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// IsAdmin reports whether the role carries administrative privileges.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// User represents an account that can authenticate against the service.
// PasswordHash is never serialized to JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionContext carries the authenticated caller's identity through a
// request. It is populated by the auth middleware from a verified JWT.
type SessionContext struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        UserRole  `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *SessionContext) IsAdmin() bool {
	return s != nil && s.Role.IsAdmin()
}

// LoginRequest represents a credential login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}
