package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tripshare/app/domain"
	"tripshare/app/port"
)

// sessionClaims is the JWT payload for a logged-in session.
type sessionClaims struct {
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	Role        domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase implements credential login and session token verification.
// Sessions are stateless HS256 JWTs; there is no server-side session store
// to invalidate, so the TTL is kept short.
type AuthUseCase struct {
	userRepo   port.UserRepository
	hasher     port.SecretHasher
	jwtSecret  []byte
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(
	userRepo port.UserRepository,
	hasher port.SecretHasher,
	jwtSecret string,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		logger:     logger.With("component", "auth_usecase"),
	}
}

// Login verifies credentials and returns a signed session token. An unknown
// email and a wrong password both come back as domain.ErrInvalidCredentials,
// and the unknown-email path still runs a hash comparison so the two cases
// take comparable time.
func (uc *AuthUseCase) Login(ctx context.Context, req *domain.LoginRequest) (string, *domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.hasher.Verify(req.Password, dummyHash)
			uc.logger.Info("login failed", "reason", "unknown_email")
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !uc.hasher.Verify(req.Password, user.PasswordHash) {
		uc.logger.Info("login failed", "user_id", user.ID, "reason", "bad_password")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := uc.signSessionToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	uc.logger.Info("login succeeded", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// VerifySessionToken parses and validates a session JWT, returning the
// caller's session context.
func (uc *AuthUseCase) VerifySessionToken(tokenString string) (*domain.SessionContext, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.SessionContext{
		UserID:      userID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Role:        claims.Role,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// GetProfile fetches the account record behind a session. Claims in the JWT
// can go stale; this reads the row.
func (uc *AuthUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *AuthUseCase) signSessionToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    "tripshare",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.sessionTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

// dummyHash is a valid bcrypt hash of a random string. It is compared
// against on the unknown-email path to keep login timing uniform.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
