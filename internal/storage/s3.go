package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Bucket       string
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	// PublicBaseURL is the prefix objects are served from, e.g. a CDN in front of the bucket.
	PublicBaseURL string
}

// S3Uploader works with AWS S3 and S3-compatible stores such as MinIO.
type S3Uploader struct {
	logger  *slog.Logger
	client  *s3.Client
	bucket  string
	baseURL string
	now     func() time.Time
}

func NewS3Uploader(ctx context.Context, logger *slog.Logger, cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = defaultS3BaseURL(cfg, region)
	}

	return &S3Uploader{
		logger:  logger.With(slog.String("client", "s3")),
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

func defaultS3BaseURL(cfg S3Config, region string) string {
	if cfg.Endpoint != "" {
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
}

func (u *S3Uploader) UploadBuffer(ctx context.Context, data []byte, mimeType, folder string) (string, error) {
	name := ObjectName(folder, mimeType, u.now())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String(cacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("s3: put object %s: %w", name, err)
	}

	u.logger.Info("object uploaded", slog.String("object", name), slog.Int("size", len(data)))
	return publicURL(u.baseURL, u.bucket, name), nil
}
