package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/portfolio/backend/internal/metrics"
	"github.com/portfolio/backend/internal/storage"
)

// ImageError reports an image that was rejected before it reached storage.
// Err is one of the storage.Err* sentinels.
type ImageError struct {
	Err error
}

func (e *ImageError) Error() string { return "invalid image: " + e.Err.Error() }

func (e *ImageError) Unwrap() error { return e.Err }

// ImageUpload is a file received through a multipart form.
type ImageUpload struct {
	Data        io.Reader
	Size        int64
	ContentType string
}

// imageStore validates images and writes them to a storage backend under
// projects/<uuid><ext>.
type imageStore struct {
	store storage.Storage
}

func (s imageStore) saveUpload(ctx context.Context, up *ImageUpload) (string, error) {
	ext, ok := storage.ImageExtension(up.ContentType)
	if !ok {
		return "", &ImageError{Err: storage.ErrUnsupportedImage}
	}
	if up.Size > storage.MaxImageSize {
		return "", &ImageError{Err: storage.ErrImageTooLarge}
	}
	// Size comes from the client; cap the read as well.
	data, err := io.ReadAll(io.LimitReader(up.Data, storage.MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) > storage.MaxImageSize {
		return "", &ImageError{Err: storage.ErrImageTooLarge}
	}
	return s.save(ctx, data, up.ContentType, ext)
}

func (s imageStore) saveDataURL(ctx context.Context, dataURL string) (string, error) {
	contentType, data, err := storage.DecodeDataURL(dataURL)
	if err != nil {
		return "", &ImageError{Err: err}
	}
	ext, ok := storage.ImageExtension(contentType)
	if !ok {
		return "", &ImageError{Err: storage.ErrUnsupportedImage}
	}
	return s.save(ctx, data, contentType, ext)
}

func (s imageStore) save(ctx context.Context, data []byte, contentType, ext string) (string, error) {
	key := "projects/" + uuid.NewString() + ext
	url, err := s.store.Save(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	metrics.ImagesStored.WithLabelValues(s.store.Driver()).Inc()
	return url, nil
}

// remove deletes a previously stored image. URLs the store does not own are
// left alone. Failures are logged only.
func (s imageStore) remove(ctx context.Context, url *string) {
	if url == nil || *url == "" {
		return
	}
	key, ok := s.store.KeyFromURL(*url)
	if !ok {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		slog.Warn("image cleanup failed", "key", key, "error", err)
	}
}
