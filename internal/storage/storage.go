// Package storage uploads design files to a public object store.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cacheControl = "public, max-age=31536000"

// Uploader stores a buffer and returns its public URL.
type Uploader interface {
	UploadBuffer(ctx context.Context, data []byte, mimeType, folder string) (string, error)
}

var extensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/jpg":     "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// Extension maps a MIME type to a file extension, "bin" when unknown.
func Extension(mimeType string) string {
	if ext, ok := extensions[strings.ToLower(strings.TrimSpace(mimeType))]; ok {
		return ext
	}
	return "bin"
}

// ObjectName builds a collision-free key of the form <folder>/<unix millis>-<uuid>.<ext>.
func ObjectName(folder, mimeType string, now time.Time) string {
	folder = strings.Trim(folder, "/")
	name := fmt.Sprintf("%d-%s.%s", now.UnixMilli(), uuid.NewString(), Extension(mimeType))
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

func publicURL(base, bucket, name string) string {
	if base != "" {
		return strings.TrimRight(base, "/") + "/" + name
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, name)
}
