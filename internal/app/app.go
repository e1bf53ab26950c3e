package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const gracefulShutdownTimeout = 5 * time.Second

type application struct {
	logger *slog.Logger

	router   chi.Router
	httpSrv  *http.Server
	listener net.Listener

	consumers []Consumer
	starters  []Starter
	runners   []RunFunc
	drainers  []Drainer
	closers   []io.Closer

	drainTimeout time.Duration
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	drainTimeout := cfg.Fulfillment.DrainTimeout
	if drainTimeout <= 0 {
		drainTimeout = 30 * time.Second
	}

	return &application{
		logger:       logger.With(slog.String("component", "app")),
		httpSrv:      httpSrv,
		router:       router,
		drainTimeout: drainTimeout,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

// Starter is run once on Start and must not block.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// RunFunc is a background loop that returns once ctx is cancelled.
type RunFunc func(ctx context.Context) error

func (a *application) SetRunners(runners ...RunFunc) {
	a.runners = runners
}

// Drainer finishes in-flight background work during Stop.
type Drainer interface {
	Shutdown(ctx context.Context) error
}

func (a *application) SetDrainers(drainers ...Drainer) {
	a.drainers = drainers
}

// SetClosers registers resources closed last, after everything that uses them has stopped.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to run starter: %w", err)
		}
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}
	a.listener = ln

	for _, c := range a.consumers {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			c.Consume(ctx)
		}()
	}

	for _, run := range a.runners {
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			if err := run(ctx); err != nil {
				a.logger.Error("background runner failed", slog.Any("error", err))
			}
		}()
	}

	go a.serve()

	a.logger.Info("application started", slog.String("addr", ln.Addr().String()))
	return nil
}

func (a *application) serve() {
	if err := a.httpSrv.Serve(a.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped", slog.Any("error", err))
	}
}

// Stop shuts the HTTP server, stops consumers and runners, waits for background
// continuations and then releases resources.
func (a *application) Stop() error {
	var errs []error

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), a.drainTimeout)
	defer drainCancel()
	for _, d := range a.drainers {
		if err := d.Shutdown(drainCtx); err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
