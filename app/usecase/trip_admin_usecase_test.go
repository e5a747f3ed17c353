package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripshare/app/domain"
	mock_port "tripshare/app/mocks"
	"tripshare/app/utils/logger"
)

func createTestTripAdminUseCase(t *testing.T) (*TripAdminUseCase, *mock_port.MockTripRepository, *mock_port.MockSecretHasher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	tripRepo := mock_port.NewMockTripRepository(ctrl)
	hasher := mock_port.NewMockSecretHasher(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewTripAdminUseCase(tripRepo, hasher, testLogger), tripRepo, hasher
}

func TestTripAdminUseCase_CreateTrip(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		uc, tripRepo, _ := createTestTripAdminUseCase(t)
		createdBy := uuid.New()

		tripRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, trip *domain.Trip) error {
				assert.Equal(t, "paris-2024", trip.Slug)
				assert.Equal(t, createdBy, trip.CreatedBy)
				assert.Nil(t, trip.AccessTokenHash)
				assert.NotEqual(t, uuid.Nil, trip.ID)
				return nil
			})

		trip, err := uc.CreateTrip(context.Background(), &domain.CreateTripRequest{
			Slug:     "paris-2024",
			Title:    "Paris 2024",
			IsPublic: false,
		}, createdBy)

		require.NoError(t, err)
		assert.Equal(t, "paris-2024", trip.Slug)
		assert.False(t, trip.IsPublic)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		uc, tripRepo, _ := createTestTripAdminUseCase(t)

		tripRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrDuplicateSlug)

		trip, err := uc.CreateTrip(context.Background(), &domain.CreateTripRequest{
			Slug:  "paris-2024",
			Title: "Paris 2024",
		}, uuid.New())

		assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
		assert.Nil(t, trip)
	})
}

func TestTripAdminUseCase_UpdateProtection(t *testing.T) {
	tripID := uuid.New()
	existingHash := "$2a$12$existing"

	existing := func() *domain.Trip {
		return &domain.Trip{
			ID:              tripID,
			Slug:            "paris-2024",
			IsPublic:        false,
			AccessTokenHash: &existingHash,
			UpdatedAt:       time.Now().UTC().Add(-time.Hour),
		}
	}

	t.Run("set new token hashes and stores it", func(t *testing.T) {
		uc, tripRepo, hasher := createTestTripAdminUseCase(t)
		newHash := "$2a$12$new"

		tripRepo.EXPECT().GetByID(gomock.Any(), tripID).Return(existing(), nil)
		hasher.EXPECT().Hash("sunny-cat-42").Return(newHash, nil)
		tripRepo.EXPECT().
			SetProtection(gomock.Any(), tripID, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ bool, tokenHash *string) error {
				require.NotNil(t, tokenHash)
				assert.Equal(t, newHash, *tokenHash)
				return nil
			})

		token := "sunny-cat-42"
		trip, err := uc.UpdateProtection(context.Background(), tripID, &domain.UpdateProtectionRequest{
			IsPublic: false,
			Token:    &token,
		})

		require.NoError(t, err)
		require.NotNil(t, trip.AccessTokenHash)
		assert.Equal(t, newHash, *trip.AccessTokenHash)
	})

	t.Run("make public clears the stored hash", func(t *testing.T) {
		uc, tripRepo, _ := createTestTripAdminUseCase(t)

		tripRepo.EXPECT().GetByID(gomock.Any(), tripID).Return(existing(), nil)
		tripRepo.EXPECT().
			SetProtection(gomock.Any(), tripID, true, (*string)(nil)).
			Return(nil)

		trip, err := uc.UpdateProtection(context.Background(), tripID, &domain.UpdateProtectionRequest{
			IsPublic: true,
		})

		require.NoError(t, err)
		assert.True(t, trip.IsPublic)
		assert.Nil(t, trip.AccessTokenHash)
	})

	t.Run("private without token keeps existing hash", func(t *testing.T) {
		uc, tripRepo, _ := createTestTripAdminUseCase(t)

		tripRepo.EXPECT().GetByID(gomock.Any(), tripID).Return(existing(), nil)
		tripRepo.EXPECT().
			SetProtection(gomock.Any(), tripID, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ bool, tokenHash *string) error {
				require.NotNil(t, tokenHash)
				assert.Equal(t, existingHash, *tokenHash)
				return nil
			})

		trip, err := uc.UpdateProtection(context.Background(), tripID, &domain.UpdateProtectionRequest{
			IsPublic: false,
		})

		require.NoError(t, err)
		require.NotNil(t, trip.AccessTokenHash)
		assert.Equal(t, existingHash, *trip.AccessTokenHash)
	})

	t.Run("unknown trip", func(t *testing.T) {
		uc, tripRepo, _ := createTestTripAdminUseCase(t)

		tripRepo.EXPECT().GetByID(gomock.Any(), tripID).Return(nil, domain.ErrTripNotFound)

		trip, err := uc.UpdateProtection(context.Background(), tripID, &domain.UpdateProtectionRequest{
			IsPublic: true,
		})

		assert.ErrorIs(t, err, domain.ErrTripNotFound)
		assert.Nil(t, trip)
	})
}

func TestTripAdminUseCase_ListTrips(t *testing.T) {
	uc, tripRepo, _ := createTestTripAdminUseCase(t)

	summaries := []domain.TripSummary{
		{Trip: domain.Trip{ID: uuid.New(), Slug: "paris-2024"}, PhotoCount: 12},
	}
	tripRepo.EXPECT().List(gomock.Any()).Return(summaries, nil)

	got, err := uc.ListTrips(context.Background())
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestTripAdminUseCase_DeleteTrip(t *testing.T) {
	uc, tripRepo, _ := createTestTripAdminUseCase(t)
	tripID := uuid.New()

	tripRepo.EXPECT().Delete(gomock.Any(), tripID).Return(nil)

	assert.NoError(t, uc.DeleteTrip(context.Background(), tripID))
}
