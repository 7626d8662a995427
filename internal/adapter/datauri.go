package adapter

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-staff-keeper/models"
)

var imageExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
	"image/bmp":     "bmp",
	"image/avif":    "avif",
}

// DecodeDataURI parses a base64 image data URI of the form
// "data:image/<type>;base64,<data>".
func DecodeDataURI(uri string) (models.ImagePayload, error) {
	header, data, ok := strings.Cut(uri, ",")
	if !ok {
		return models.ImagePayload{}, fmt.Errorf("%w: missing data separator", ErrInvalidDataURI)
	}

	mediaType, found := strings.CutPrefix(header, "data:")
	if !found {
		return models.ImagePayload{}, fmt.Errorf("%w: missing data scheme", ErrInvalidDataURI)
	}
	mediaType, isBase64 := strings.CutSuffix(mediaType, ";base64")
	if !isBase64 {
		return models.ImagePayload{}, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return models.ImagePayload{}, fmt.Errorf("%w: %q is not an image type", ErrInvalidDataURI, mediaType)
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return models.ImagePayload{}, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	if len(decoded) == 0 {
		return models.ImagePayload{}, ErrEmptyPayload
	}

	return models.ImagePayload{ContentType: mediaType, Data: decoded}, nil
}

// EncodeDataURI is the inverse of [DecodeDataURI].
func EncodeDataURI(payload models.ImagePayload) string {
	return "data:" + payload.ContentType + ";base64," + base64.StdEncoding.EncodeToString(payload.Data)
}

// extensionFor returns the file extension for an image content type, or
// "bin" for anything unknown.
func extensionFor(contentType string) string {
	if ext, ok := imageExtensions[strings.ToLower(contentType)]; ok {
		return ext
	}
	return "bin"
}
