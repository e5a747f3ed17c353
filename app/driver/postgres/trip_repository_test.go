package postgres

import (
	"context"
	"testing"
	"time"

	"tripshare/app/domain"
	"tripshare/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test trip repository with mocked database
func createTestTripRepository(t *testing.T) (*TripRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewTripRepository(mockDB, testLogger).(*TripRepository)

	return repo, mockDB
}

// Helper function to create a test trip
func createTestTrip(t *testing.T, isPublic bool, tokenHash *string) *domain.Trip {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Trip{
		ID:              uuid.New(),
		Slug:            "paris-2024",
		Title:           "Paris 2024",
		Description:     "Long weekend in Paris",
		IsPublic:        isPublic,
		AccessTokenHash: tokenHash,
		CreatedBy:       uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func tripColumns() []string {
	return []string{
		"id", "slug", "title", "description", "is_public", "access_token_hash",
		"created_by", "created_at", "updated_at",
	}
}

func tripRow(trip *domain.Trip) *pgxmock.Rows {
	return pgxmock.NewRows(tripColumns()).AddRow(
		trip.ID, trip.Slug, trip.Title, trip.Description, trip.IsPublic, trip.AccessTokenHash,
		trip.CreatedBy, trip.CreatedAt, trip.UpdatedAt,
	)
}

func TestTripRepository_Create(t *testing.T) {
	hash := "$2a$12$abcdefghijklmnopqrstuv"

	tests := []struct {
		name    string
		trip    *domain.Trip
		setupDB func(pgxmock.PgxPoolIface, *domain.Trip)
		wantErr error
	}{
		{
			name: "successful public trip creation",
			trip: createTestTrip(t, true, nil),
			setupDB: func(mockDB pgxmock.PgxPoolIface, trip *domain.Trip) {
				mockDB.ExpectExec("INSERT INTO trips").
					WithArgs(
						trip.ID, trip.Slug, trip.Title, trip.Description,
						trip.IsPublic, trip.AccessTokenHash,
						trip.CreatedBy, trip.CreatedAt, trip.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "successful private trip creation with hash",
			trip: createTestTrip(t, false, &hash),
			setupDB: func(mockDB pgxmock.PgxPoolIface, trip *domain.Trip) {
				mockDB.ExpectExec("INSERT INTO trips").
					WithArgs(
						trip.ID, trip.Slug, trip.Title, trip.Description,
						trip.IsPublic, trip.AccessTokenHash,
						trip.CreatedBy, trip.CreatedAt, trip.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate slug maps to ErrDuplicateSlug",
			trip: createTestTrip(t, true, nil),
			setupDB: func(mockDB pgxmock.PgxPoolIface, trip *domain.Trip) {
				mockDB.ExpectExec("INSERT INTO trips").
					WithArgs(
						trip.ID, trip.Slug, trip.Title, trip.Description,
						trip.IsPublic, trip.AccessTokenHash,
						trip.CreatedBy, trip.CreatedAt, trip.UpdatedAt,
					).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "trips_slug_key"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name: "database error during creation",
			trip: createTestTrip(t, true, nil),
			setupDB: func(mockDB pgxmock.PgxPoolIface, trip *domain.Trip) {
				mockDB.ExpectExec("INSERT INTO trips").
					WithArgs(
						trip.ID, trip.Slug, trip.Title, trip.Description,
						trip.IsPublic, trip.AccessTokenHash,
						trip.CreatedBy, trip.CreatedAt, trip.UpdatedAt,
					).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: pgx.ErrTxClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestTripRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.trip)

			err := repo.Create(context.Background(), tt.trip)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_GetBySlug(t *testing.T) {
	hash := "$2a$12$abcdefghijklmnopqrstuv"
	privateTrip := createTestTrip(t, false, &hash)

	tests := []struct {
		name    string
		slug    string
		setupDB func(pgxmock.PgxPoolIface)
		want    *domain.Trip
		wantErr error
	}{
		{
			name: "found private trip",
			slug: privateTrip.Slug,
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM trips WHERE slug").
					WithArgs(privateTrip.Slug).
					WillReturnRows(tripRow(privateTrip))
			},
			want: privateTrip,
		},
		{
			name: "unknown slug maps to ErrTripNotFound",
			slug: "nope-2099",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM trips WHERE slug").
					WithArgs("nope-2099").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrTripNotFound,
		},
		{
			name: "database error",
			slug: "paris-2024",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT (.+) FROM trips WHERE slug").
					WithArgs("paris-2024").
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: pgx.ErrTxClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestTripRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			got, err := repo.GetBySlug(context.Background(), tt.slug)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want.ID, got.ID)
				assert.Equal(t, tt.want.Slug, got.Slug)
				assert.Equal(t, tt.want.IsPublic, got.IsPublic)
				require.NotNil(t, got.AccessTokenHash)
				assert.Equal(t, *tt.want.AccessTokenHash, *got.AccessTokenHash)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_GetByID(t *testing.T) {
	trip := createTestTrip(t, true, nil)

	t.Run("found", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM trips WHERE id").
			WithArgs(trip.ID).
			WillReturnRows(tripRow(trip))

		got, err := repo.GetByID(context.Background(), trip.ID)
		require.NoError(t, err)
		assert.Equal(t, trip.Slug, got.Slug)
		assert.Nil(t, got.AccessTokenHash)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		unknown := uuid.New()
		mockDB.ExpectQuery("SELECT (.+) FROM trips WHERE id").
			WithArgs(unknown).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetByID(context.Background(), unknown)
		assert.ErrorIs(t, err, domain.ErrTripNotFound)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestTripRepository_List(t *testing.T) {
	t.Run("returns summaries with photo counts", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		first := createTestTrip(t, true, nil)
		second := createTestTrip(t, false, nil)
		second.Slug = "tokyo-spring"

		columns := append(tripColumns(), "photo_count")
		rows := pgxmock.NewRows(columns).
			AddRow(
				first.ID, first.Slug, first.Title, first.Description, first.IsPublic, first.AccessTokenHash,
				first.CreatedBy, first.CreatedAt, first.UpdatedAt, 12,
			).
			AddRow(
				second.ID, second.Slug, second.Title, second.Description, second.IsPublic, second.AccessTokenHash,
				second.CreatedBy, second.CreatedAt, second.UpdatedAt, 0,
			)

		mockDB.ExpectQuery("SELECT (.+) FROM trips t").
			WillReturnRows(rows)

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "paris-2024", got[0].Slug)
		assert.Equal(t, 12, got[0].PhotoCount)
		assert.Equal(t, "tokyo-spring", got[1].Slug)
		assert.Equal(t, 0, got[1].PhotoCount)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty list", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT (.+) FROM trips t").
			WillReturnRows(pgxmock.NewRows(append(tripColumns(), "photo_count")))

		got, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestTripRepository_SetProtection(t *testing.T) {
	hash := "$2a$12$abcdefghijklmnopqrstuv"
	tripID := uuid.New()

	tests := []struct {
		name      string
		isPublic  bool
		tokenHash *string
		setupDB   func(pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name:      "make private with new token hash",
			isPublic:  false,
			tokenHash: &hash,
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE trips").
					WithArgs(tripID, false, &hash).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "make public clears the hash",
			isPublic:  true,
			tokenHash: nil,
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE trips").
					WithArgs(tripID, true, (*string)(nil)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:      "unknown trip maps to ErrTripNotFound",
			isPublic:  false,
			tokenHash: &hash,
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE trips").
					WithArgs(tripID, false, &hash).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: domain.ErrTripNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestTripRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.SetProtection(context.Background(), tripID, tt.isPublic, tt.tokenHash)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_Delete(t *testing.T) {
	tripID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM trips").
			WithArgs(tripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), tripID))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mockDB := createTestTripRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM trips").
			WithArgs(tripID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), tripID), domain.ErrTripNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
