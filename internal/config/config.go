package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Supplier Supplier `validate:"required"`

	Stripe Stripe `validate:"required"`

	Storage Storage `validate:"required"`

	Mockup Mockup

	Fulfillment Fulfillment
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	SupplierEventsTopic string `validate:"required"`
	OrderEventsTopic    string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Driver   string        `validate:"oneof=memory redis"`
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`

	RedisAddr     string `validate:"required_if=Driver redis,omitempty,hostname_port"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
}

type Supplier struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`

	RequestsPerSecond float64 `validate:"gte=0"`
	Burst             int     `validate:"gte=1"`

	MaxRetries   int           `validate:"gte=0"`
	InitialDelay time.Duration `validate:"gt=0"`
}

type Stripe struct {
	SecretKey string `validate:"required"`
}

type Storage struct {
	Driver        string `validate:"oneof=gcs s3"`
	Bucket        string `validate:"required"`
	DesignsFolder string `validate:"required"`
	PublicBaseURL string `validate:"omitempty,url"`

	GCSCredentialsFile string

	S3Endpoint     string `validate:"omitempty,url"`
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3UsePathStyle bool
}

type Mockup struct {
	PollAttempts  int           `validate:"gte=1"`
	PollInterval  time.Duration `validate:"gt=0"`
	MaxVariants   int           `validate:"gte=1"`
	ProbeTimeout  time.Duration `validate:"gt=0"`
	ProbeMaxBytes int64         `validate:"gt=0"`
}

type Fulfillment struct {
	SubmissionTimeout time.Duration `validate:"gt=0"`
	ReconcileAfter    time.Duration `validate:"gt=0"`
	ReconcileBatch    int           `validate:"gte=1"`
	DrainTimeout      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "pod-fulfillment-service"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			SupplierEventsTopic: env("KAFKA_SUPPLIER_EVENTS_TOPIC", "supplier-events"),
			OrderEventsTopic:    env("KAFKA_ORDER_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "fulfillment"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Driver:   env("CACHE_DRIVER", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),

			RedisAddr:     env("REDIS_ADDR", ""),
			RedisPassword: env("REDIS_PASSWORD", ""),
			RedisDB:       envInt("REDIS_DB", 0),
		},

		Supplier: Supplier{
			BaseURL: env("SUPPLIER_BASE_URL", "https://api.printful.com"),
			APIKey:  env("SUPPLIER_API_KEY", ""),
			Timeout: envDuration("SUPPLIER_TIMEOUT", 60*time.Second),

			RequestsPerSecond: envFloat("SUPPLIER_RPS", 2),
			Burst:             envInt("SUPPLIER_BURST", 5),

			MaxRetries:   envInt("SUPPLIER_MAX_RETRIES", 3),
			InitialDelay: envDuration("SUPPLIER_RETRY_INITIAL_DELAY", time.Second),
		},

		Stripe: Stripe{
			SecretKey: env("STRIPE_SECRET_KEY", ""),
		},

		Storage: Storage{
			Driver:        env("STORAGE_DRIVER", "gcs"),
			Bucket:        env("STORAGE_BUCKET", ""),
			DesignsFolder: env("STORAGE_DESIGNS_FOLDER", "designs"),
			PublicBaseURL: env("STORAGE_PUBLIC_BASE_URL", ""),

			GCSCredentialsFile: env("GCS_CREDENTIALS_FILE", ""),

			S3Endpoint:     env("S3_ENDPOINT", ""),
			S3Region:       env("S3_REGION", "us-east-1"),
			S3AccessKey:    env("S3_ACCESS_KEY", ""),
			S3SecretKey:    env("S3_SECRET_KEY", ""),
			S3UsePathStyle: envBool("S3_USE_PATH_STYLE", false),
		},

		Mockup: Mockup{
			PollAttempts:  envInt("MOCKUP_POLL_ATTEMPTS", 30),
			PollInterval:  envDuration("MOCKUP_POLL_INTERVAL", 2*time.Second),
			MaxVariants:   envInt("MOCKUP_MAX_VARIANTS", 3),
			ProbeTimeout:  envDuration("IMAGE_PROBE_TIMEOUT", 30*time.Second),
			ProbeMaxBytes: int64(envInt("IMAGE_PROBE_MAX_BYTES", 25<<20)),
		},

		Fulfillment: Fulfillment{
			SubmissionTimeout: envDuration("FULFILLMENT_SUBMISSION_TIMEOUT", 2*time.Minute),
			ReconcileAfter:    envDuration("FULFILLMENT_RECONCILE_AFTER", 15*time.Minute),
			ReconcileBatch:    envInt("FULFILLMENT_RECONCILE_BATCH", 50),
			DrainTimeout:      envDuration("FULFILLMENT_DRAIN_TIMEOUT", 30*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
