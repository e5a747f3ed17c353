package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tripshare/app/domain"
	"tripshare/app/port"
)

// TripAdminUseCase implements authenticated administrative trip operations.
type TripAdminUseCase struct {
	tripRepo port.TripRepository
	hasher   port.SecretHasher
	logger   *slog.Logger
}

// NewTripAdminUseCase creates a new TripAdminUseCase instance
func NewTripAdminUseCase(tripRepo port.TripRepository, hasher port.SecretHasher, logger *slog.Logger) *TripAdminUseCase {
	return &TripAdminUseCase{
		tripRepo: tripRepo,
		hasher:   hasher,
		logger:   logger.With("component", "trip_admin_usecase"),
	}
}

// CreateTrip creates a trip. New trips start without a share token; the
// token is set afterwards through UpdateProtection.
func (uc *TripAdminUseCase) CreateTrip(ctx context.Context, req *domain.CreateTripRequest, createdBy uuid.UUID) (*domain.Trip, error) {
	now := time.Now().UTC()
	trip := &domain.Trip{
		ID:          uuid.New(),
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	return trip, nil
}

// ListTrips returns all trips with photo counts.
func (uc *TripAdminUseCase) ListTrips(ctx context.Context) ([]domain.TripSummary, error) {
	return uc.tripRepo.List(ctx)
}

// UpdateProtection changes a trip's visibility and share token in one
// atomic update. Making a trip public always clears the stored hash so a
// stale token cannot come back if the trip is later made private. Making
// it private hashes and stores the new token when one is supplied, and
// keeps the existing hash when the request carries none.
func (uc *TripAdminUseCase) UpdateProtection(ctx context.Context, tripID uuid.UUID, req *domain.UpdateProtectionRequest) (*domain.Trip, error) {
	trip, err := uc.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	var tokenHash *string
	switch {
	case req.IsPublic:
		tokenHash = nil
	case req.Token != nil:
		hash, err := uc.hasher.Hash(*req.Token)
		if err != nil {
			return nil, err
		}
		tokenHash = &hash
	default:
		tokenHash = trip.AccessTokenHash
	}

	if err := uc.tripRepo.SetProtection(ctx, tripID, req.IsPublic, tokenHash); err != nil {
		return nil, err
	}

	uc.logger.Info("trip protection updated",
		"trip_id", tripID,
		"is_public", req.IsPublic,
		"token_rotated", !req.IsPublic && req.Token != nil)

	trip.IsPublic = req.IsPublic
	trip.AccessTokenHash = tokenHash
	trip.UpdatedAt = time.Now().UTC()
	return trip, nil
}

// DeleteTrip removes a trip and, through the schema cascade, its photo rows.
func (uc *TripAdminUseCase) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	return uc.tripRepo.Delete(ctx, tripID)
}
