package service

import (
	"bytes"
	"context"
	"log"
	"path"

	"billforge/internal/port"
)

// Archiver stores a copy of every rendered document in object storage.
// Archival is best-effort: a failure is logged and never fails the request.
type Archiver struct {
	storage port.ObjectStorage
	bucket  string
	prefix  string
}

// NewArchiver creates an Archiver writing under bucket/prefix. A nil Archiver
// is valid and disables archival.
func NewArchiver(storage port.ObjectStorage, bucket, prefix string) *Archiver {
	return &Archiver{storage: storage, bucket: bucket, prefix: prefix}
}

// Store uploads the rendered document copy.
func (a *Archiver) Store(ctx context.Context, fileName, contentType string, data []byte) {
	if a == nil || a.storage == nil {
		return
	}
	err := a.storage.Upload(ctx, port.UploadInput{
		Bucket:      a.bucket,
		Key:         path.Join(a.prefix, fileName),
		ContentType: contentType,
		Body:        bytes.NewReader(data),
	})
	if err != nil {
		log.Printf("archiver: storing %s: %v", fileName, err)
	}
}
