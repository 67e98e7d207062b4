package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"resumeapi/internal/config"
)

const bucketCheckTimeout = 10 * time.Second

var (
	ErrNoEndpoint    = errors.New("minio endpoint is required")
	ErrNoCredentials = errors.New("minio credentials are required")
	ErrNoBucket      = errors.New("minio bucket is required")
)

// MinIOStore keeps exports in a single bucket. Safe for concurrent use.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

func validateMinIO(cfg config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return ErrNoEndpoint
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return ErrNoCredentials
	case cfg.Bucket == "":
		return ErrNoBucket
	}
	return nil
}

// NewMinIO connects to the bucket named in cfg, creating it when missing.
// Requests are traced through the global tracer provider.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig) (*MinIOStore, error) {
	if err := validateMinIO(cfg); err != nil {
		return nil, err
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinIOStore{client: cli, bucket: cfg.Bucket}, nil
}

func (m *MinIOStore) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:        opt.ContentType,
		ContentDisposition: opt.ContentDisposition,
		UserMetadata:       opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: key, Size: info.Size, ETag: info.ETag, LastModified: info.LastModified}, nil
}

func (m *MinIOStore) Delete(ctx context.Context, key string) error {
	err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}
	return err
}

func (m *MinIOStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
