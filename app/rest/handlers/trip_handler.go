package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tripshare/app/domain"
	"tripshare/app/port"
	"tripshare/app/rest/middleware"
	"tripshare/app/utils/validator"
)

// TripHandler handles trip HTTP requests. The read path collapses every
// denial and every unknown slug into the same 401 body; the distinction
// between denial variants lives in logs and metrics only.
type TripHandler struct {
	accessUsecase port.TripAccessUsecase
	adminUsecase  port.TripAdminUsecase
	validator     *validator.Validator
	logger        *slog.Logger
}

// NewTripHandler creates a new trip handler
func NewTripHandler(
	accessUsecase port.TripAccessUsecase,
	adminUsecase port.TripAdminUsecase,
	v *validator.Validator,
	logger *slog.Logger,
) *TripHandler {
	return &TripHandler{
		accessUsecase: accessUsecase,
		adminUsecase:  adminUsecase,
		validator:     v,
		logger:        logger,
	}
}

// GetTrip handles GET /v1/trips/:slug?token=...
// Public endpoint. A malformed slug is a 400; everything else that is not
// a granted access check is a uniform 401.
func (h *TripHandler) GetTrip(c echo.Context) error {
	slug := c.Param("slug")
	if !h.validator.ValidateSlug(slug) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slug"})
	}

	token := c.QueryParam("token")
	session := middleware.SessionFromContext(c)
	callerIsAdmin := session.IsAdmin()

	trip, _, err := h.accessUsecase.GetTripBySlug(c.Request().Context(), slug, token, callerIsAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.JSON(http.StatusUnauthorized, unauthorizedBody)
		}
		h.logger.Error("trip access check failed", "slug", slug, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, trip)
}

// CreateTrip handles POST /v1/admin/trips.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req domain.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	session := middleware.SessionFromContext(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, unauthorizedBody)
	}

	trip, err := h.adminUsecase.CreateTrip(c.Request().Context(), &req, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "A trip with this slug already exists"})
		}
		h.logger.Error("failed to create trip", "slug", req.Slug, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, trip)
}

// ListTrips handles GET /v1/admin/trips.
func (h *TripHandler) ListTrips(c echo.Context) error {
	trips, err := h.adminUsecase.ListTrips(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list trips", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, trips)
}

// UpdateProtection handles PUT /v1/admin/trips/:id/protection.
func (h *TripHandler) UpdateProtection(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid trip ID"})
	}

	var req domain.UpdateProtectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	trip, err := h.adminUsecase.UpdateProtection(c.Request().Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		}
		h.logger.Error("failed to update trip protection", "trip_id", tripID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, trip)
}

// DeleteTrip handles DELETE /v1/admin/trips/:id.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid trip ID"})
	}

	if err := h.adminUsecase.DeleteTrip(c.Request().Context(), tripID); err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		}
		h.logger.Error("failed to delete trip", "trip_id", tripID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.NoContent(http.StatusNoContent)
}

// validationErrorResponse renders field-level validation failures.
func validationErrorResponse(c echo.Context, err error) error {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: vErr.Errors,
		})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
}
