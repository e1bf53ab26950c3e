package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

type testStarter struct{ rec *recorder }

func (s testStarter) Start(context.Context) error { s.rec.add("start"); return nil }

type testDrainer struct{ rec *recorder }

func (d testDrainer) Shutdown(context.Context) error { d.rec.add("drain"); return nil }

type testConsumer struct {
	rec     *recorder
	stopped atomic.Bool
}

func (c *testConsumer) Consume(ctx context.Context) {
	<-ctx.Done()
	c.stopped.Store(true)
}

func (c *testConsumer) Close() error {
	c.rec.add("close consumer")
	return nil
}

type testCloser struct{ rec *recorder }

func (c testCloser) Close() error { c.rec.add("close resource"); return nil }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
}

func TestApplication_Lifecycle(t *testing.T) {
	cfg := config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)

	rec := &recorder{}
	consumer := &testConsumer{rec: rec}
	a.SetHTTPHandlers(pingHandler{})
	a.SetStarters(testStarter{rec: rec})
	a.SetConsumers(consumer)
	a.SetDrainers(testDrainer{rec: rec})
	a.SetRunners(func(ctx context.Context) error {
		<-ctx.Done()
		rec.add("runner stopped")
		return nil
	})
	a.SetClosers(testCloser{rec: rec})

	require.NoError(t, a.Start(context.Background()))

	client := &http.Client{Timeout: 2 * time.Second}
	base := "http://" + a.listener.Addr().String()

	res, err := client.Get(base + "/ping")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, err = client.Get(base + "/metrics")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, a.Stop())

	assert.True(t, consumer.stopped.Load())
	assert.Equal(t, []string{"start", "runner stopped", "drain", "close consumer", "close resource"}, rec.events)
}
