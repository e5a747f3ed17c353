package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Allowed bcrypt cost range. Below 10 is brute-forceable offline; above 20
// a single verify stalls a request for minutes.
const (
	MinHashCost = 10
	MaxHashCost = 20
)

// TokenHasher produces and verifies salted bcrypt hashes of shared-secret
// access tokens and account passwords. The cost factor is validated once
// at construction; an out-of-range cost is a startup configuration error,
// never a per-request one.
type TokenHasher struct {
	cost int
}

// NewTokenHasher creates a TokenHasher with the given bcrypt cost.
func NewTokenHasher(cost int) (*TokenHasher, error) {
	if cost < MinHashCost || cost > MaxHashCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d, got: %d", MinHashCost, MaxHashCost, cost)
	}
	return &TokenHasher{cost: cost}, nil
}

// Cost returns the configured bcrypt cost.
func (h *TokenHasher) Cost() int {
	return h.cost
}

// Hash produces a randomly salted one-way hash of the secret.
func (h *TokenHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// Verify compares a plaintext secret against a stored hash. bcrypt's
// comparison is constant-time-equivalent. Malformed stored hashes return
// false rather than an error so callers can treat the result as a plain
// boolean verdict.
func (h *TokenHasher) Verify(secret, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(secret)) == nil
}
