package ports

import (
	"context"
	"io"
)

// BlobStorage moves file bytes by opaque key. The access-control engine
// only ever references file identity, never content.
type BlobStorage interface {
	PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, key string) error
	GetBucket() string
}
