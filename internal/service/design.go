package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
)

type Uploader interface {
	UploadBuffer(ctx context.Context, data []byte, mimeType, folder string) (string, error)
}

var dataURLPattern = regexp.MustCompile(`^data:([A-Za-z0-9.+/-]+);base64,(.+)$`)

func isDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// decodeDataURL splits a base64 data URL into its payload and MIME type.
func decodeDataURL(s string) ([]byte, string, error) {
	m := dataURLPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, "", fmt.Errorf("%w: malformed data url", entities.ErrInvalidDesignFile)
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid base64 payload", entities.ErrInvalidDesignFile)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty payload", entities.ErrInvalidDesignFile)
	}
	return data, m[1], nil
}

// publishDesign returns a URL the supplier can fetch. Data URLs are uploaded
// to object storage first; local-only URLs are rejected.
func publishDesign(ctx context.Context, uploader Uploader, folder, raw string) (string, error) {
	if isDataURL(raw) {
		data, mimeType, err := decodeDataURL(raw)
		if err != nil {
			return "", err
		}
		publicURL, err := uploader.UploadBuffer(ctx, data, mimeType, folder)
		if err != nil {
			return "", fmt.Errorf("failed to upload design: %w", err)
		}
		return publicURL, nil
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an http(s) url", entities.ErrInvalidDesignFile, raw)
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return "", fmt.Errorf("%w: %q is not reachable by the supplier", entities.ErrInvalidDesignFile, raw)
	}
	return raw, nil
}
