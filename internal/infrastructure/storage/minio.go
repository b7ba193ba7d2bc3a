package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/reqtrack/reqtrack/internal/shared/config"
	"github.com/reqtrack/reqtrack/internal/shared/logger"
)

// presignTTL is the longest expiry S3 style presigned URLs accept.
const presignTTL = 7 * 24 * time.Hour

type MinIOStorage struct {
	client     *minio.Client
	bucketName string
	logger     logger.Interface
}

// NewMinIOStorage creates the bucket when it does not exist.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig, log logger.Interface) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infow("bucket created", "bucket", cfg.Bucket)
	}

	return &MinIOStorage{client: client, bucketName: cfg.Bucket, logger: log}, nil
}

// Save uploads the object and returns a presigned GET URL for it.
func (s *MinIOStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if _, err := s.client.PutObject(ctx, s.bucketName, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url, err := s.client.PresignedGetObject(ctx, s.bucketName, key, presignTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.Infow("file uploaded", "bucket", s.bucketName, "key", key)
	return url.String(), nil
}
