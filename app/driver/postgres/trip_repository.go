package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tripshare/app/domain"
	"tripshare/app/port"
)

// TripRepository implements port.TripRepository for PostgreSQL
type TripRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewTripRepository creates a new PostgreSQL trip repository
func NewTripRepository(db Querier, logger *slog.Logger) port.TripRepository {
	return &TripRepository{
		db:     db,
		logger: logger.With("component", "trip_repository"),
	}
}

// Create inserts a new trip row.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (
			id, slug, title, description, is_public, access_token_hash,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	_, err := r.db.Exec(ctx, query,
		trip.ID,
		trip.Slug,
		trip.Title,
		trip.Description,
		trip.IsPublic,
		trip.AccessTokenHash,
		trip.CreatedBy,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSlug
		}
		r.logger.Error("failed to create trip", "slug", trip.Slug, "error", err)
		return fmt.Errorf("failed to create trip: %w", err)
	}

	r.logger.Info("trip created", "trip_id", trip.ID, "slug", trip.Slug)
	return nil
}

// GetBySlug fetches a trip by its slug. A pure read: unknown slugs return
// domain.ErrTripNotFound with no further detail.
func (r *TripRepository) GetBySlug(ctx context.Context, slug string) (*domain.Trip, error) {
	query := `
		SELECT
			id, slug, title, description, is_public, access_token_hash,
			created_by, created_at, updated_at
		FROM trips
		WHERE slug = $1`

	return r.scanTrip(r.db.QueryRow(ctx, query, slug))
}

// GetByID fetches a trip by its ID.
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	query := `
		SELECT
			id, slug, title, description, is_public, access_token_hash,
			created_by, created_at, updated_at
		FROM trips
		WHERE id = $1`

	return r.scanTrip(r.db.QueryRow(ctx, query, id))
}

// List returns all trips with their photo counts, newest first.
func (r *TripRepository) List(ctx context.Context) ([]domain.TripSummary, error) {
	query := `
		SELECT
			t.id, t.slug, t.title, t.description, t.is_public, t.access_token_hash,
			t.created_by, t.created_at, t.updated_at,
			COUNT(p.id) AS photo_count
		FROM trips t
		LEFT JOIN photos p ON p.trip_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list trips", "error", err)
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.TripSummary, 0)
	for rows.Next() {
		var s domain.TripSummary
		err := rows.Scan(
			&s.ID, &s.Slug, &s.Title, &s.Description, &s.IsPublic, &s.AccessTokenHash,
			&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
			&s.PhotoCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip rows: %w", err)
	}

	return summaries, nil
}

// SetProtection updates visibility and stored token hash together. A single
// UPDATE keeps the pair consistent under concurrent readers.
func (r *TripRepository) SetProtection(ctx context.Context, id uuid.UUID, isPublic bool, tokenHash *string) error {
	query := `
		UPDATE trips
		SET is_public = $2, access_token_hash = $3, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, isPublic, tokenHash)
	if err != nil {
		r.logger.Error("failed to update trip protection", "trip_id", id, "error", err)
		return fmt.Errorf("failed to update trip protection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}

	r.logger.Info("trip protection updated",
		"trip_id", id,
		"is_public", isPublic,
		"has_token", tokenHash != nil)
	return nil
}

// Delete removes a trip row; photo rows cascade via the schema.
func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete trip", "trip_id", id, "error", err)
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTripNotFound
	}

	r.logger.Info("trip deleted", "trip_id", id)
	return nil
}

func (r *TripRepository) scanTrip(row pgx.Row) (*domain.Trip, error) {
	trip := &domain.Trip{}
	err := row.Scan(
		&trip.ID,
		&trip.Slug,
		&trip.Title,
		&trip.Description,
		&trip.IsPublic,
		&trip.AccessTokenHash,
		&trip.CreatedBy,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		r.logger.Error("failed to scan trip", "error", err)
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
