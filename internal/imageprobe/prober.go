// Package imageprobe reads the pixel dimensions of a remote image.
package imageprobe

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"

	_ "golang.org/x/image/webp"
)

const DefaultMaxBytes = 25 << 20

type Config struct {
	Timeout  time.Duration
	MaxBytes int64
}

type Prober struct {
	logger   *slog.Logger
	client   *http.Client
	maxBytes int64
}

func New(logger *slog.Logger, cfg Config) *Prober {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Prober{
		logger:   logger.With(slog.String("client", "imageprobe")),
		client:   &http.Client{Timeout: cfg.Timeout},
		maxBytes: cfg.MaxBytes,
	}
}

// Probe downloads the image and decodes its header. Any failure is reported as ErrUnreadableImage.
func (p *Prober) Probe(ctx context.Context, url string) (entities.Dimensions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Dimensions{}, fmt.Errorf("%w: %v", entities.ErrUnreadableImage, err)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return entities.Dimensions{}, fmt.Errorf("%w: %v", entities.ErrUnreadableImage, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return entities.Dimensions{}, fmt.Errorf("%w: fetch returned status %d", entities.ErrUnreadableImage, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, p.maxBytes+1))
	if err != nil {
		return entities.Dimensions{}, fmt.Errorf("%w: %v", entities.ErrUnreadableImage, err)
	}
	if int64(len(body)) > p.maxBytes {
		return entities.Dimensions{}, fmt.Errorf("%w: image exceeds %d bytes", entities.ErrUnreadableImage, p.maxBytes)
	}

	dims, err := Decode(body)
	if err != nil {
		return entities.Dimensions{}, err
	}

	p.logger.Debug("image probed", slog.String("url", url), slog.Float64("width", dims.Width), slog.Float64("height", dims.Height))
	return dims, nil
}

// Decode reads dimensions from encoded PNG, JPEG or GIF bytes.
func Decode(data []byte) (entities.Dimensions, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return entities.Dimensions{}, fmt.Errorf("%w: %v", entities.ErrUnreadableImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return entities.Dimensions{}, fmt.Errorf("%w: %s image reports %dx%d", entities.ErrUnreadableImage, format, cfg.Width, cfg.Height)
	}
	return entities.Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}
