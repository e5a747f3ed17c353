package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"tripshare/app/config"
	"tripshare/app/port"
	apperrors "tripshare/app/utils/errors"
)

// R2Store implements port.PhotoStore against an S3-compatible bucket.
// Cloudflare R2 is the deployment target; anything speaking the S3 API
// with a custom endpoint (MinIO included) works the same way.
type R2Store struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	presignTTL time.Duration
	logger     *slog.Logger
}

// NewR2Store creates a photo store backed by the configured bucket.
func NewR2Store(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*R2Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.StorageRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKeyID,
			cfg.StorageSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeConfigError, "failed to load storage config", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
		}
		// R2 does not support virtual-hosted bucket addressing.
		o.UsePathStyle = true
	})

	logger.Info("object storage client initialized",
		"bucket", cfg.StorageBucket,
		"endpoint", cfg.StorageEndpoint,
		"presign_ttl", cfg.PresignTTL)

	return &R2Store{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.StorageBucket,
		presignTTL: cfg.PresignTTL,
		logger:     logger.With("component", "r2_store"),
	}, nil
}

// PresignUpload returns a presigned PUT URL for a new object. The content
// type and length are signed into the request so the client cannot upload
// something other than what was registered.
func (s *R2Store) PresignUpload(ctx context.Context, key, contentType string, sizeBytes int64) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(sizeBytes),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		s.logger.Error("failed to presign upload", "key", key, "error", err)
		return "", apperrors.Wrap(apperrors.ErrCodeStorageError, "failed to presign upload", err)
	}

	return req.URL, nil
}

// PresignDownload returns a presigned GET URL for an existing object.
func (s *R2Store) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		s.logger.Error("failed to presign download", "key", key, "error", err)
		return "", apperrors.Wrap(apperrors.ErrCodeStorageError, "failed to presign download", err)
	}

	return req.URL, nil
}

// Delete removes an object. Deleting a missing key is not an error in the
// S3 API, which suits the cleanup paths that call this.
func (s *R2Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("failed to delete object", "key", key, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeStorageError, "failed to delete object", err)
	}

	s.logger.Info("object deleted", "key", key)
	return nil
}

// PresignTTL returns the configured URL lifetime.
func (s *R2Store) PresignTTL() time.Duration {
	return s.presignTTL
}

var _ port.PhotoStore = (*R2Store)(nil)
