package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tripshare/app/domain"
	"tripshare/app/driver/storage"
	"tripshare/app/port"
	"tripshare/app/utils/metrics"
)

// PhotoUseCase implements photo registration and removal. The upload itself
// goes straight from the client to object storage over a presigned URL;
// this layer only records metadata and hands out the URL.
type PhotoUseCase struct {
	tripRepo  port.TripRepository
	photoRepo port.PhotoRepository
	store     port.PhotoStore
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewPhotoUseCase creates a new PhotoUseCase instance
func NewPhotoUseCase(
	tripRepo port.TripRepository,
	photoRepo port.PhotoRepository,
	store port.PhotoStore,
	collector *metrics.Collector,
	logger *slog.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{
		tripRepo:  tripRepo,
		photoRepo: photoRepo,
		store:     store,
		collector: collector,
		logger:    logger.With("component", "photo_usecase"),
	}
}

// RegisterPhoto stores the photo row and returns a presigned upload URL the
// client PUTs the bytes to. The trip must exist first.
func (uc *PhotoUseCase) RegisterPhoto(ctx context.Context, tripID uuid.UUID, req *domain.RegisterPhotoRequest) (*domain.Photo, string, error) {
	if _, err := uc.tripRepo.GetByID(ctx, tripID); err != nil {
		return nil, "", err
	}

	photo := &domain.Photo{
		ID:          uuid.New(),
		TripID:      tripID,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		Width:       req.Width,
		Height:      req.Height,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		TakenAt:     req.TakenAt,
		CreatedAt:   time.Now().UTC(),
	}
	photo.StorageKey = storage.PhotoKey(tripID, photo.ID, req.ContentType)

	uploadURL, err := uc.store.PresignUpload(ctx, photo.StorageKey, req.ContentType, req.SizeBytes)
	if err != nil {
		return nil, "", err
	}

	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		return nil, "", err
	}

	uc.collector.PhotoUploads.Inc()
	uc.logger.Info("photo registered",
		"photo_id", photo.ID, "trip_id", tripID, "size_bytes", req.SizeBytes)

	return photo, uploadURL, nil
}

// DeletePhoto removes the photo row and the stored object. The row goes
// first; a leftover object is recoverable garbage, a dangling row is not.
func (uc *PhotoUseCase) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if err := uc.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, photo.StorageKey); err != nil {
		uc.logger.Error("failed to delete stored object, row already removed",
			"photo_id", photoID, "key", photo.StorageKey, "error", err)
	}

	return nil
}
