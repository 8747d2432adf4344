package port

import (
	"context"
	"io"
)

// TemplateStore loads binary document templates by name.
type TemplateStore interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

// UploadInput describes an object to store.
type UploadInput struct {
	Bucket      string
	Key         string
	ContentType string
	Body        io.Reader
}

// ObjectStorage is the contract for blob storage (template source and
// rendered-document archive).
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	Download(ctx context.Context, bucket, key string) ([]byte, error)
}
