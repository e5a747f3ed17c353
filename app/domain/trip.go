package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a shareable collection of photos with a visibility setting.
// AccessTokenHash holds the bcrypt hash of the share token for private trips;
// it is nil for public trips and for private trips that have not been
// protected yet. The hash is never serialized to JSON.
type Trip struct {
	ID              uuid.UUID `json:"id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	IsPublic        bool      `json:"is_public"`
	AccessTokenHash *string   `json:"-"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasAccessToken reports whether a share token has been configured.
func (t *Trip) HasAccessToken() bool {
	return t.AccessTokenHash != nil && *t.AccessTokenHash != ""
}

// Photo represents a single photo belonging to a trip. The object itself
// lives in object storage under StorageKey; URL is a presigned link filled
// in by the usecase layer and is the only storage detail clients see.
type Photo struct {
	ID          uuid.UUID  `json:"id"`
	TripID      uuid.UUID  `json:"trip_id"`
	StorageKey  string     `json:"-"`
	URL         string     `json:"url,omitempty"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	Width       int        `json:"width,omitempty"`
	Height      int        `json:"height,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TripWithPhotos is the full trip payload returned on a granted access check.
// URLsExpireAt tells clients when the embedded presigned photo URLs stop
// working and the payload needs refetching.
type TripWithPhotos struct {
	Trip
	Photos       []Photo   `json:"photos"`
	URLsExpireAt time.Time `json:"urls_expire_at"`
}

// TripSummary is the admin list view of a trip.
type TripSummary struct {
	Trip
	PhotoCount int `json:"photo_count"`
}

// CreateTripRequest represents an administrative trip creation request.
type CreateTripRequest struct {
	Slug        string `json:"slug" validate:"required,slug,min=3,max=64"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateProtectionRequest changes a trip's visibility and share token.
// Token semantics: when IsPublic is true the stored hash is cleared; when
// IsPublic is false a non-nil Token replaces the stored hash and a nil
// Token leaves the existing hash untouched.
type UpdateProtectionRequest struct {
	IsPublic bool    `json:"is_public"`
	Token    *string `json:"token,omitempty" validate:"omitempty,min=8,max=128"`
}

// RegisterPhotoRequest registers a photo row ahead of the client-side upload.
type RegisterPhotoRequest struct {
	ContentType string     `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp image/avif"`
	SizeBytes   int64      `json:"size_bytes" validate:"required,gt=0,lte=52428800"`
	Width       int        `json:"width,omitempty" validate:"omitempty,gt=0"`
	Height      int        `json:"height,omitempty" validate:"omitempty,gt=0"`
	Latitude    *float64   `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64   `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
}
