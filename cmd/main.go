package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/pod-fulfillment-service/docs"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/app"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/events"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/handler"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/imageprobe"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/payments"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/postgres"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/service"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/storage"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/supplier"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Print-on-demand Fulfillment API
// @version         1.0
// @description     Orders with payment compensation, mockup generation and custom products
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")
	panicIfErr("failed to apply migrations", postgres.Migrate(logger, db))

	var closers []io.Closer
	var starters []app.Starter

	catalogCache, err := newCache(ctx, logger, conf.Cache)
	panicIfErr("failed to init cache", err)
	if s, ok := catalogCache.(app.Starter); ok {
		starters = append(starters, s)
	}
	if c, ok := catalogCache.(io.Closer); ok {
		closers = append(closers, c)
	}

	uploader, err := newUploader(ctx, logger, conf.Storage)
	panicIfErr("failed to init storage", err)
	if c, ok := uploader.(io.Closer); ok {
		closers = append(closers, c)
	}

	stripe, err := payments.NewStripeProvider(logger, payments.Config{SecretKey: conf.Stripe.SecretKey})
	panicIfErr("failed to init payments", err)

	supplierClient := supplier.New(logger, supplier.Config{
		BaseURL:           conf.Supplier.BaseURL,
		APIKey:            conf.Supplier.APIKey,
		Timeout:           conf.Supplier.Timeout,
		RequestsPerSecond: conf.Supplier.RequestsPerSecond,
		Burst:             conf.Supplier.Burst,
		MaxRetries:        conf.Supplier.MaxRetries,
		InitialDelay:      conf.Supplier.InitialDelay,
	}, catalogCache)

	prober := imageprobe.New(logger, imageprobe.Config{
		Timeout:  conf.Mockup.ProbeTimeout,
		MaxBytes: conf.Mockup.ProbeMaxBytes,
	})

	publisher := events.NewKafkaPublisher(logger, events.Config{
		Brokers:      conf.Kafka.Brokers,
		Topic:        conf.Kafka.OrderEventsTopic,
		BatchTimeout: conf.Kafka.BatchTimeout,
	})
	closers = append(closers, publisher)

	store := repo.NewPostgresRepo(db, trm.NewManager(db))

	orderService := service.NewOrderService(logger, store, stripe, supplierClient, uploader, publisher, service.FulfillmentConfig{
		SubmissionTimeout: conf.Fulfillment.SubmissionTimeout,
		ReconcileAfter:    conf.Fulfillment.ReconcileAfter,
		ReconcileBatch:    conf.Fulfillment.ReconcileBatch,
		DesignsFolder:     conf.Storage.DesignsFolder,
	})
	mockupService := service.NewMockupService(logger, supplierClient, prober, uploader, service.MockupConfig{
		PollAttempts:  conf.Mockup.PollAttempts,
		PollInterval:  conf.Mockup.PollInterval,
		MaxVariants:   conf.Mockup.MaxVariants,
		DesignsFolder: conf.Storage.DesignsFolder,
	})
	customProductService := service.NewCustomProductService(logger, store, mockupService, uploader, conf.Storage.DesignsFolder)

	httpHandler := handler.NewHTTPHandler(logger, orderService, mockupService, customProductService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(starters...)
	app.SetRunners(orderService.Reconcile)
	app.SetDrainers(orderService)
	app.SetClosers(closers...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

func newCache(ctx context.Context, logger *slog.Logger, conf config.Cache) (cache.Cache, error) {
	switch conf.Driver {
	case "redis":
		return cache.NewRedisCache(ctx, logger, cache.RedisConfig{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		}, "supplier:", conf.TTL)
	default:
		return cache.NewLRUCache(conf.Capacity, conf.TTL), nil
	}
}

func newUploader(ctx context.Context, logger *slog.Logger, conf config.Storage) (storage.Uploader, error) {
	switch conf.Driver {
	case "s3":
		return storage.NewS3Uploader(ctx, logger, storage.S3Config{
			Bucket:        conf.Bucket,
			Endpoint:      conf.S3Endpoint,
			Region:        conf.S3Region,
			AccessKey:     conf.S3AccessKey,
			SecretKey:     conf.S3SecretKey,
			UsePathStyle:  conf.S3UsePathStyle,
			PublicBaseURL: conf.PublicBaseURL,
		})
	case "gcs":
		return storage.NewGCSUploader(ctx, logger, storage.GCSConfig{
			Bucket:          conf.Bucket,
			CredentialsFile: conf.GCSCredentialsFile,
			PublicBaseURL:   conf.PublicBaseURL,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Driver)
	}
}
