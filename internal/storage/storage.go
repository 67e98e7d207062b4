// Package storage wraps the S3-compatible object store that holds rendered resume exports.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnavailable is returned by callers that were started without an object store.
var ErrUnavailable = errors.New("object storage is not configured")

// PutObjectOptions describe an upload. Size is the exact byte count, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
	// ContentDisposition is sent back on download, e.g. attachment; filename="cv.pdf".
	ContentDisposition string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	LastModified time.Time
}

// Storage is the subset of an S3 client the export flow needs.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ExportKey is the object key of a resume's most recent PDF export.
func ExportKey(resumeID string) string {
	return "exports/" + resumeID + ".pdf"
}
