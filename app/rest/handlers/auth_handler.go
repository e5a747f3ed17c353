package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"tripshare/app/domain"
	"tripshare/app/port"
	"tripshare/app/rest/middleware"
	"tripshare/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, v *validator.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   v,
		logger:      logger,
	}
}

// Login handles POST /v1/auth/login. Unknown email and wrong password both
// yield the same 401 body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req domain.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	token, user, err := h.authUsecase.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		}
		h.logger.Error("login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// Me handles GET /v1/auth/me. Requires authentication. Reads the account
// row rather than echoing the token claims, so a deleted account's still
// valid token gets a 401 here.
func (h *AuthHandler) Me(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, unauthorizedBody)
	}

	user, err := h.authUsecase.GetProfile(c.Request().Context(), session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, unauthorizedBody)
		}
		h.logger.Error("failed to load profile", "user_id", session.UserID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, user)
}
