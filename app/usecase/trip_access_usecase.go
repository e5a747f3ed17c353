package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tripshare/app/domain"
	"tripshare/app/port"
	"tripshare/app/utils/metrics"
)

// TripAccessUseCase implements the read-path access gate: look the trip up,
// decide, then assemble the payload only when the decision grants access.
type TripAccessUseCase struct {
	tripRepo  port.TripRepository
	photoRepo port.PhotoRepository
	hasher    port.SecretHasher
	store     port.PhotoStore
	collector *metrics.Collector
	logger    *slog.Logger
}

// NewTripAccessUseCase creates a new TripAccessUseCase instance
func NewTripAccessUseCase(
	tripRepo port.TripRepository,
	photoRepo port.PhotoRepository,
	hasher port.SecretHasher,
	store port.PhotoStore,
	collector *metrics.Collector,
	logger *slog.Logger,
) *TripAccessUseCase {
	return &TripAccessUseCase{
		tripRepo:  tripRepo,
		photoRepo: photoRepo,
		hasher:    hasher,
		store:     store,
		collector: collector,
		logger:    logger.With("component", "trip_access_usecase"),
	}
}

// GetTripBySlug returns the full trip payload when access is granted. On any
// denial, and on an unknown slug, the payload is nil and the error is
// domain.ErrUnauthorized: an unauthenticated caller cannot distinguish a
// trip that denied them from a trip that does not exist. The verdict is
// returned for logging and metrics only.
func (uc *TripAccessUseCase) GetTripBySlug(ctx context.Context, slug, presentedToken string, callerIsAdmin bool) (*domain.TripWithPhotos, domain.Verdict, error) {
	trip, err := uc.tripRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			uc.collector.RecordVerdict(string(domain.VerdictDeniedNotFound))
			uc.logger.Info("trip access denied", "slug", slug, "reason", "not_found")
			return nil, domain.VerdictDeniedNotFound, domain.ErrUnauthorized
		}
		return nil, "", err
	}

	verdict := domain.DecideAccess(trip, presentedToken, callerIsAdmin, uc.hasher)
	uc.collector.RecordVerdict(string(verdict))

	if !verdict.Granted() {
		if verdict == domain.VerdictDeniedMisconfigured {
			// A private trip without a stored hash is a data inconsistency.
			// Surface it loudly server-side while the client sees a plain 401.
			uc.logger.Error("trip is private but has no access token configured",
				"trip_id", trip.ID, "slug", trip.Slug)
		} else {
			uc.logger.Info("trip access denied",
				"trip_id", trip.ID, "slug", trip.Slug, "verdict", string(verdict))
		}
		return nil, verdict, domain.ErrUnauthorized
	}

	photos, err := uc.photoRepo.ListByTrip(ctx, trip.ID)
	if err != nil {
		return nil, verdict, err
	}

	for i := range photos {
		url, err := uc.store.PresignDownload(ctx, photos[i].StorageKey)
		if err != nil {
			return nil, verdict, err
		}
		photos[i].URL = url
	}

	return &domain.TripWithPhotos{
		Trip:         *trip,
		Photos:       photos,
		URLsExpireAt: time.Now().UTC().Add(uc.store.PresignTTL()),
	}, verdict, nil
}
