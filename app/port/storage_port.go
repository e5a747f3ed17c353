package port

//go:generate mockgen -source=storage_port.go -destination=../mocks/mock_storage_port.go

import (
	"context"
	"time"
)

// PhotoStore abstracts the S3-compatible object store holding photo
// originals. Clients upload and download through presigned URLs; the
// bucket itself stays private.
type PhotoStore interface {
	PresignUpload(ctx context.Context, key, contentType string, sizeBytes int64) (string, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	PresignTTL() time.Duration
}
