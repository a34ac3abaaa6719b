package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/SuyashJain1994/Contract-Analyzer/config"
)

// ArchiveService stores uploaded contract originals in object storage so
// analyses can be audited later. Optional: a nil *ArchiveService disables
// archival.
type ArchiveService struct {
	client *minio.Client
	bucket string
}

// NewArchiveService returns nil when no endpoint is configured
func NewArchiveService(cfg *config.ArchiveConfig) (*ArchiveService, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ArchiveService{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *ArchiveService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// StoreUpload archives an uploaded original under userID/analysisID/filename
func (s *ArchiveService) StoreUpload(ctx context.Context, userID int, analysisID, filename string, content []byte, contentType string) error {
	objectName := fmt.Sprintf("%d/%s/%s", userID, analysisID, filename)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to archive upload: %w", err)
	}

	return nil
}
