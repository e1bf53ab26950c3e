package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSConfig struct {
	Bucket          string
	CredentialsFile string
	// PublicBaseURL overrides https://storage.googleapis.com/<bucket>.
	PublicBaseURL string
}

type GCSUploader struct {
	logger  *slog.Logger
	client  *gcs.Client
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewGCSUploader(ctx context.Context, logger *slog.Logger, cfg GCSConfig) (*GCSUploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs: bucket is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: create client: %w", err)
	}

	return &GCSUploader{
		logger:  logger.With(slog.String("client", "gcs")),
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: cfg.PublicBaseURL,
		now:     time.Now,
	}, nil
}

func (u *GCSUploader) UploadBuffer(ctx context.Context, data []byte, mimeType, folder string) (string, error) {
	name := ObjectName(folder, mimeType, u.now())

	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = mimeType
	w.CacheControl = cacheControl

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: write object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: finalize object %s: %w", name, err)
	}

	url := publicURL(u.baseURL, u.bucket, name)
	u.logger.Info("object uploaded", slog.String("object", name), slog.Int("size", len(data)))
	return url, nil
}

func (u *GCSUploader) Close() error {
	return u.client.Close()
}
