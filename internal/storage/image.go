package storage

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

// MaxImageSize is the largest accepted project image, in bytes.
const MaxImageSize = 5 << 20

var (
	ErrInvalidDataURL   = errors.New("invalid image data URL")
	ErrImageTooLarge    = errors.New("image exceeds 5MB limit")
	ErrUnsupportedImage = errors.New("only image files are allowed")
)

var dataURLPattern = regexp.MustCompile(`^data:(image/[a-z+.-]+);base64,`)

var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/avif":    ".avif",
}

// IsDataURL reports whether s looks like a base64 image data URL.
func IsDataURL(s string) bool {
	return dataURLPattern.MatchString(s)
}

// DecodeDataURL extracts the MIME type and payload of a base64 image data URL.
func DecodeDataURL(s string) (contentType string, data []byte, err error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return "", nil, ErrInvalidDataURL
	}
	payload := s[len(m[0]):]
	// Reject before decoding: base64 expands by 4/3.
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageSize+2 {
		return "", nil, ErrImageTooLarge
	}
	data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", nil, ErrInvalidDataURL
	}
	if len(data) > MaxImageSize {
		return "", nil, ErrImageTooLarge
	}
	return m[1], data, nil
}

// EncodeDataURL is the inverse of DecodeDataURL.
func EncodeDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ImageExtension returns the file extension for an accepted image MIME type.
func ImageExtension(contentType string) (string, bool) {
	ct, _, _ := strings.Cut(contentType, ";")
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(ct))]
	return ext, ok
}
