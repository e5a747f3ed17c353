package port

//go:generate mockgen -source=trip_port.go -destination=../mocks/mock_trip_port.go

import (
	"context"

	"github.com/google/uuid"

	"tripshare/app/domain"
)

// TripRepository defines trip data access
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	// GetBySlug is a pure read; unknown slugs return domain.ErrTripNotFound.
	GetBySlug(ctx context.Context, slug string) (*domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	List(ctx context.Context) ([]domain.TripSummary, error)
	// SetProtection updates visibility and stored token hash in one
	// statement so concurrent readers never observe a half-applied change.
	SetProtection(ctx context.Context, id uuid.UUID, isPublic bool, tokenHash *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PhotoRepository defines photo data access
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TripAccessUsecase is the read-path access gate: lookup, decision, payload.
type TripAccessUsecase interface {
	// GetTripBySlug returns the full payload when the verdict is granted.
	// On any denial the payload is nil and err is domain.ErrUnauthorized;
	// the verdict is returned for logging and metrics only and must never
	// reach the HTTP response.
	GetTripBySlug(ctx context.Context, slug, presentedToken string, callerIsAdmin bool) (*domain.TripWithPhotos, domain.Verdict, error)
}

// TripAdminUsecase defines authenticated administrative trip operations.
type TripAdminUsecase interface {
	CreateTrip(ctx context.Context, req *domain.CreateTripRequest, createdBy uuid.UUID) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]domain.TripSummary, error)
	UpdateProtection(ctx context.Context, tripID uuid.UUID, req *domain.UpdateProtectionRequest) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error
}

// PhotoUsecase defines photo registration and removal.
type PhotoUsecase interface {
	// RegisterPhoto stores the photo row and returns a presigned upload URL.
	RegisterPhoto(ctx context.Context, tripID uuid.UUID, req *domain.RegisterPhotoRequest) (*domain.Photo, string, error)
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error
}
