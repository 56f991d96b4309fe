// Package storage persists project images and maps them to public URLs.
package storage

import (
	"context"
	"io"
)

// Storage abstracts where project images live. Implementations exist for the
// local filesystem and Google Cloud Storage.
type Storage interface {
	// Save writes data under key and returns its public URL.
	// key is a unique path within the store, e.g. "projects/<uuid>.png".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the object for key. A missing object is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the key for a URL previously returned by Save.
	// ok is false for URLs this store does not own.
	KeyFromURL(url string) (key string, ok bool)

	// Driver names the backend, e.g. "local" or "gcs".
	Driver() string
}
