package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"tripshare/app/domain"
	"tripshare/app/port"
)

// sessionContextKey is the echo.Context key the verified session lives under.
const sessionContextKey = "session"

// AuthMiddleware verifies session JWTs and attaches the caller's identity
// to the request context.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// RequireAuth rejects requests without a valid session token.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractSessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.authUsecase.VerifySessionToken(token)
			if err != nil {
				m.logger.Info("session verification failed", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose session does not carry the admin role.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFromContext(c)
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !session.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}
			return next(c)
		}
	}
}

// OptionalAuth attaches a session when a valid token is present and passes
// the request through untouched otherwise. The public trip read path uses
// this: an admin session grants the bypass, while a missing or invalid
// session simply means the share-token rules apply.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractSessionToken(c)
			if token == "" {
				return next(c)
			}

			session, err := m.authUsecase.VerifySessionToken(token)
			if err != nil {
				m.logger.Debug("optional auth failed", "error", err)
				return next(c)
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

// SessionFromContext returns the verified session, or nil for anonymous
// requests.
func SessionFromContext(c echo.Context) *domain.SessionContext {
	session, _ := c.Get(sessionContextKey).(*domain.SessionContext)
	return session
}

// extractSessionToken pulls the session JWT from the Authorization header
// or, for API clients that cannot set it, the X-Session-Token header.
func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
