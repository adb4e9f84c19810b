// Package storage provides object storage for merchant uploads.
package storage

import "context"

// ObjectStorage stores uploaded files and returns public URLs. Compatible
// with any S3-style backend.
type ObjectStorage interface {
	// Upload stores the content under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, content []byte) (string, error)

	// Delete removes a previously uploaded object by its public URL.
	// Used to compensate when a save fails after its upload succeeded.
	Delete(ctx context.Context, fileURL string) error
}
