// Package base64 reads the data URLs the dashboard sends for hotel images.
package base64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
	fallbackExt  = "bin"
)

var ErrNotDataURL = errors.New("value is not a base64 data url")

var extensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// split returns the header between "data:" and ";base64," and the encoded payload.
func split(value string) (header, payload string, ok bool) {
	rest, ok := strings.CutPrefix(value, dataPrefix)
	if !ok {
		return "", "", false
	}

	return strings.Cut(rest, base64Marker)
}

// IsDataURL reports whether value is an embedded base64 payload rather than a remote url.
func IsDataURL(value string) bool {
	_, _, ok := split(value)

	return ok
}

// MediaType returns the media type of a data url without its parameters, "" for anything else.
func MediaType(value string) string {
	header, _, ok := split(value)
	if !ok {
		return ""
	}

	mediaType, _, _ := strings.Cut(header, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}

// Decode splits a data url into its media type and decoded bytes.
func Decode(value string) (string, []byte, error) {
	_, payload, ok := split(value)
	if !ok {
		return "", nil, ErrNotDataURL
	}

	mediaType := MediaType(value)
	if mediaType == "" {
		return "", nil, ErrNotDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data url payload: %w", err)
	}

	return mediaType, data, nil
}

// Extension returns the file extension for an image media type, "bin" when unknown.
func Extension(mediaType string) string {
	mediaType, _, _ = strings.Cut(mediaType, ";")

	if ext, ok := extensions[mediaType]; ok {
		return ext
	}

	return fallbackExt
}
