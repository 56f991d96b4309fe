package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads/")
	ctx := context.Background()

	url, err := s.Save(ctx, "projects/a.png", bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/projects/a.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "projects", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	key, ok := s.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "projects/a.png", key)

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, "projects", "a.png"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_RejectsEscapingKey(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	_, err := s.Save(context.Background(), "../evil.png", strings.NewReader("x"), "image/png")
	assert.Error(t, err)
}

func TestLocalStorage_KeyFromForeignURL(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	_, ok := s.KeyFromURL("https://cdn.example.com/x.png")
	assert.False(t, ok)
	_, ok = s.KeyFromURL("/uploads/")
	assert.False(t, ok)
}

func TestGCSStorage_KeyFromURL(t *testing.T) {
	s := &GCSStorage{bucket: "imgs", baseURL: "https://storage.googleapis.com/imgs/"}
	key, ok := s.KeyFromURL("https://storage.googleapis.com/imgs/projects/b.webp")
	require.True(t, ok)
	assert.Equal(t, "projects/b.webp", key)

	_, ok = s.KeyFromURL("https://storage.googleapis.com/other/projects/b.webp")
	assert.False(t, ok)
}

func TestDecodeDataURL(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	ct, data, err := DecodeDataURL(EncodeDataURL("image/png", raw))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, raw, data)
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	tests := []string{
		"https://example.com/a.png",
		"data:text/plain;base64,aGk=",
		"data:image/png;base64,***",
	}
	for _, in := range tests {
		_, _, err := DecodeDataURL(in)
		assert.ErrorIs(t, err, ErrInvalidDataURL, in)
	}
}

func TestDecodeDataURL_TooLarge(t *testing.T) {
	big := make([]byte, MaxImageSize+1)
	_, _, err := DecodeDataURL(EncodeDataURL("image/jpeg", big))
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImageExtension(t *testing.T) {
	ext, ok := ImageExtension("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	ext, ok = ImageExtension("IMAGE/PNG; charset=binary")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	_, ok = ImageExtension("application/pdf")
	assert.False(t, ok)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/webp;base64,AAAA"))
	assert.False(t, IsDataURL("/uploads/projects/a.png"))
}
