package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage stores images in a Google Cloud Storage bucket. Objects are
// expected to be publicly readable through bucket-level IAM.
type GCSStorage struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

// NewGCSStorage creates a client for bucket. When credentialsFile is empty,
// Application Default Credentials are used.
func NewGCSStorage(ctx context.Context, bucket, credentialsFile string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("storage: gcs bucket is required")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: create gcs client: %w", err)
	}
	return &GCSStorage{
		client:  client,
		bucket:  bucket,
		baseURL: "https://storage.googleapis.com/" + bucket + "/",
	}, nil
}

var _ Storage = (*GCSStorage)(nil)

func (s *GCSStorage) Driver() string { return "gcs" }

func (s *GCSStorage) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000, immutable"

	if _, err := io.Copy(w, data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage: upload gs://%s/%s: %w", s.bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage: finalize gs://%s/%s: %w", s.bucket, key, err)
	}
	return s.baseURL + key, nil
}

func (s *GCSStorage) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("storage: delete gs://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *GCSStorage) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, s.baseURL)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

// Close releases the underlying client.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}
