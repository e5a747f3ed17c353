package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripshare/app/domain"
	mock_port "tripshare/app/mocks"
	"tripshare/app/utils/logger"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mock_port.MockAuthUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authUsecase := mock_port.NewMockAuthUsecase(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewAuthMiddleware(authUsecase, testLogger), authUsecase
}

func adminSession() *domain.SessionContext {
	return &domain.SessionContext{
		UserID:    uuid.New(),
		Email:     "admin@example.com",
		Role:      domain.UserRoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, headers map[string]string) (*httptest.ResponseRecorder, *domain.SessionContext, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/trips", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.SessionContext
	handler := mw(func(c echo.Context) error {
		captured = SessionFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)
	return rec, captured, err
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("valid bearer token", func(t *testing.T) {
		mw, authUsecase := createTestAuthMiddleware(t)
		session := adminSession()

		authUsecase.EXPECT().VerifySessionToken("good-token").Return(session, nil)

		rec, captured, err := runMiddleware(t, mw.RequireAuth(), map[string]string{
			"Authorization": "Bearer good-token",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, session, captured)
	})

	t.Run("X-Session-Token header", func(t *testing.T) {
		mw, authUsecase := createTestAuthMiddleware(t)
		session := adminSession()

		authUsecase.EXPECT().VerifySessionToken("good-token").Return(session, nil)

		_, captured, err := runMiddleware(t, mw.RequireAuth(), map[string]string{
			"X-Session-Token": "good-token",
		})

		require.NoError(t, err)
		assert.Equal(t, session, captured)
	})

	t.Run("missing token", func(t *testing.T) {
		mw, _ := createTestAuthMiddleware(t)

		_, _, err := runMiddleware(t, mw.RequireAuth(), nil)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		mw, authUsecase := createTestAuthMiddleware(t)

		authUsecase.EXPECT().VerifySessionToken("bad-token").Return(nil, domain.ErrInvalidToken)

		_, _, err := runMiddleware(t, mw.RequireAuth(), map[string]string{
			"Authorization": "Bearer bad-token",
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Run("admin session passes", func(t *testing.T) {
		mw, _ := createTestAuthMiddleware(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/trips", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("session", adminSession())

		handler := mw.RequireAdmin()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin session is forbidden", func(t *testing.T) {
		mw, _ := createTestAuthMiddleware(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/trips", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		session := adminSession()
		session.Role = domain.UserRoleUser
		c.Set("session", session)

		handler := mw.RequireAdmin()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, handler(c), &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("no session is unauthorized", func(t *testing.T) {
		mw, _ := createTestAuthMiddleware(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/trips", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		handler := mw.RequireAdmin()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		var httpErr *echo.HTTPError
		require.ErrorAs(t, handler(c), &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	t.Run("no token continues anonymously", func(t *testing.T) {
		mw, _ := createTestAuthMiddleware(t)

		rec, captured, err := runMiddleware(t, mw.OptionalAuth(), nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("invalid token continues anonymously", func(t *testing.T) {
		mw, authUsecase := createTestAuthMiddleware(t)

		authUsecase.EXPECT().VerifySessionToken("stale").Return(nil, errors.New("token is expired"))

		rec, captured, err := runMiddleware(t, mw.OptionalAuth(), map[string]string{
			"Authorization": "Bearer stale",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid token attaches session", func(t *testing.T) {
		mw, authUsecase := createTestAuthMiddleware(t)
		session := adminSession()

		authUsecase.EXPECT().VerifySessionToken("good-token").Return(session, nil)

		_, captured, err := runMiddleware(t, mw.OptionalAuth(), map[string]string{
			"Authorization": "Bearer good-token",
		})

		require.NoError(t, err)
		assert.Equal(t, session, captured)
	})
}
