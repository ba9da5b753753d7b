package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/avamus/visionboard/pkg/config"
)

// RecordingStore keeps call recording audio in object storage and hands
// out the URLs persisted in call_recording_url.
type RecordingStore struct {
	client    *minio.Client
	bucket    string
	publicURL string // Public URL when MinIO sits behind a reverse proxy
	urlExpiry time.Duration
}

// NewRecordingStore creates a recording store over MinIO.
func NewRecordingStore(cfg *config.StorageConfig) (*RecordingStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &RecordingStore{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		urlExpiry: cfg.URLExpiry,
	}

	ctx := context.Background()
	if err := store.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return store, nil
}

// ensureBucket ensures the recordings bucket exists with read access so
// the dashboard audio player can stream objects directly.
func (s *RecordingStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// ObjectNameFor builds the object key for a member's recording,
// preserving the uploaded file's extension.
func ObjectNameFor(memberID, filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".mp3"
	}
	return fmt.Sprintf("recordings/%s/%s%s", memberID, uuid.NewString(), ext)
}

// UploadRecording stores a recording and returns the URL to persist in
// call_recording_url. Transient upload failures are retried with
// exponential backoff.
func (s *RecordingStore) UploadRecording(ctx context.Context, objectName string, reader io.ReadSeeker, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	uploadFn := func() error {
		if _, err := reader.Seek(0, io.SeekStart); err != nil {
			return backoff.Permanent(err)
		}
		_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
			ContentType: contentType,
		})
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(uploadFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", fmt.Errorf("failed to upload recording: %w", err)
	}

	return s.RecordingURL(ctx, objectName)
}

// RecordingURL returns a presigned GET URL for a stored recording.
func (s *RecordingStore) RecordingURL(ctx context.Context, objectName string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.urlExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	urlStr := url.String()
	if s.publicURL != "" {
		// Swap the internal endpoint for the public one when MinIO is
		// fronted by a reverse proxy.
		scheme := "http://"
		if strings.HasPrefix(urlStr, "https://") {
			scheme = "https://"
		}
		rest := strings.TrimPrefix(urlStr, scheme)
		if idx := strings.Index(rest, "/"); idx >= 0 {
			urlStr = strings.TrimRight(s.publicURL, "/") + rest[idx:]
		}
	}
	return urlStr, nil
}

// DeleteRecording removes a stored recording object.
func (s *RecordingStore) DeleteRecording(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete recording: %w", err)
	}
	return nil
}
