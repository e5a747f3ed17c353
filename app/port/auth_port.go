package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"github.com/google/uuid"

	"tripshare/app/domain"
)

// UserRepository defines user account data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// AuthUsecase defines credential login and session token verification.
type AuthUsecase interface {
	// Login verifies credentials and returns a signed session token.
	// Bad email and bad password are indistinguishable to the caller.
	Login(ctx context.Context, req *domain.LoginRequest) (string, *domain.User, error)
	// VerifySessionToken parses and validates a session JWT.
	VerifySessionToken(tokenString string) (*domain.SessionContext, error)
	// GetProfile fetches the current account record for a session's user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

// SecretHasher produces and verifies salted one-way hashes. Verify must
// return false on malformed stored hashes rather than erroring.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, storedHash string) bool
}
