package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"notification-admin/pkg/log"
)

// New creates a MinIO client and ensures the configured bucket exists.
func New(ctx context.Context, l log.Logger, cfg Config) (IMinio, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}
	if cfg.Bucket == "" {
		return nil, ErrBucketRequired
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", cfg.Bucket, err)
		}
		l.Infof(ctx, "pkg.minio.New: created bucket %s", cfg.Bucket)
	}

	return &minioImpl{l: l, client: client, bucket: cfg.Bucket}, nil
}

func (m *minioImpl) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.l.Errorf(ctx, "pkg.minio.Upload.PutObject: %v", err)
		return "", err
	}
	return objectName, nil
}

func (m *minioImpl) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, url.Values{})
	if err != nil {
		m.l.Errorf(ctx, "pkg.minio.PresignedGetURL.PresignedGetObject: %v", err)
		return "", err
	}
	return u.String(), nil
}
