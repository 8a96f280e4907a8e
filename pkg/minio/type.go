package minio

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"notification-admin/pkg/log"
)

// Config is the configuration for the MinIO client.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// IMinio is the object storage interface used by the export pipeline.
type IMinio interface {
	// Upload stores an object and returns its object key.
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	// PresignedGetURL returns a temporary download URL for an object.
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type minioImpl struct {
	l      log.Logger
	client *minio.Client
	bucket string
}
