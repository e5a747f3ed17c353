package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tripshare/app/domain"
	"tripshare/app/port"
	"tripshare/app/utils/validator"
)

// PhotoHandler handles photo HTTP requests. All photo mutations are admin
// operations; viewers only ever see photos through the trip read path.
type PhotoHandler struct {
	photoUsecase port.PhotoUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoUsecase port.PhotoUsecase, v *validator.Validator, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		photoUsecase: photoUsecase,
		validator:    v,
		logger:       logger,
	}
}

// RegisterPhoto handles POST /v1/admin/trips/:id/photos. The response
// carries a presigned URL; the client uploads the bytes there directly.
func (h *PhotoHandler) RegisterPhoto(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid trip ID"})
	}

	var req domain.RegisterPhotoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.validator.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	photo, uploadURL, err := h.photoUsecase.RegisterPhoto(c.Request().Context(), tripID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		}
		h.logger.Error("failed to register photo", "trip_id", tripID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusCreated, RegisterPhotoResponse{Photo: photo, UploadURL: uploadURL})
}

// DeletePhoto handles DELETE /v1/admin/photos/:id.
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid photo ID"})
	}

	if err := h.photoUsecase.DeletePhoto(c.Request().Context(), photoID); err != nil {
		if errors.Is(err, domain.ErrPhotoNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Photo not found"})
		}
		h.logger.Error("failed to delete photo", "photo_id", photoID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}

	return c.NoContent(http.StatusNoContent)
}
