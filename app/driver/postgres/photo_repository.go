package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tripshare/app/domain"
	"tripshare/app/port"
)

// PhotoRepository implements port.PhotoRepository for PostgreSQL
type PhotoRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewPhotoRepository creates a new PostgreSQL photo repository
func NewPhotoRepository(db Querier, logger *slog.Logger) port.PhotoRepository {
	return &PhotoRepository{
		db:     db,
		logger: logger.With("component", "photo_repository"),
	}
}

// Create inserts a new photo row.
func (r *PhotoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
		INSERT INTO photos (
			id, trip_id, storage_key, content_type, size_bytes,
			width, height, latitude, longitude, taken_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := r.db.Exec(ctx, query,
		photo.ID,
		photo.TripID,
		photo.StorageKey,
		photo.ContentType,
		photo.SizeBytes,
		photo.Width,
		photo.Height,
		photo.Latitude,
		photo.Longitude,
		photo.TakenAt,
		photo.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create photo", "trip_id", photo.TripID, "error", err)
		return fmt.Errorf("failed to create photo: %w", err)
	}

	r.logger.Info("photo created", "photo_id", photo.ID, "trip_id", photo.TripID)
	return nil
}

// GetByID fetches a photo by its ID.
func (r *PhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Photo, error) {
	query := `
		SELECT
			id, trip_id, storage_key, content_type, size_bytes,
			width, height, latitude, longitude, taken_at, created_at
		FROM photos
		WHERE id = $1`

	photo := &domain.Photo{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&photo.ID,
		&photo.TripID,
		&photo.StorageKey,
		&photo.ContentType,
		&photo.SizeBytes,
		&photo.Width,
		&photo.Height,
		&photo.Latitude,
		&photo.Longitude,
		&photo.TakenAt,
		&photo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		r.logger.Error("failed to get photo", "photo_id", id, "error", err)
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return photo, nil
}

// ListByTrip returns a trip's photos in capture order, falling back to
// creation order for photos without EXIF timestamps.
func (r *PhotoRepository) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Photo, error) {
	query := `
		SELECT
			id, trip_id, storage_key, content_type, size_bytes,
			width, height, latitude, longitude, taken_at, created_at
		FROM photos
		WHERE trip_id = $1
		ORDER BY taken_at NULLS LAST, created_at`

	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		r.logger.Error("failed to list photos", "trip_id", tripID, "error", err)
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	photos := make([]domain.Photo, 0)
	for rows.Next() {
		var p domain.Photo
		err := rows.Scan(
			&p.ID, &p.TripID, &p.StorageKey, &p.ContentType, &p.SizeBytes,
			&p.Width, &p.Height, &p.Latitude, &p.Longitude, &p.TakenAt, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return photos, nil
}

// Delete removes a photo row.
func (r *PhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM photos WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete photo", "photo_id", id, "error", err)
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPhotoNotFound
	}

	r.logger.Info("photo deleted", "photo_id", id)
	return nil
}
