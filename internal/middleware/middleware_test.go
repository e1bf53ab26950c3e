package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var seen string
	h := middleware.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), `"unauthorized"`)
	})

	t.Run("caller id in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set(middleware.UserIDHeader, " user-1 ")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "user-1", seen)
	})
}

func TestLoggerAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Get("/orders/{order_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
	req.Header.Set(middleware.UserIDHeader, "user-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "path=/orders/42")
	assert.Contains(t, out, "user_id=user-1")

	assert.Equal(t, 1.0, requestCount(t, map[string]string{
		"route": "/orders/{order_id}", "status": "404", "caller": "user",
	}))
}

func TestMetrics_AnonymousCaller(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Metrics)
	r.With(middleware.Identity).Get("/custom-products", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/custom-products", nil))

	assert.Equal(t, 1.0, requestCount(t, map[string]string{
		"route": "/custom-products", "status": "401", "caller": "anonymous",
	}))
}

func requestCount(t *testing.T, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != "pod_fulfillment_http_requests_total" {
			continue
		}
	next:
		for _, m := range f.GetMetric() {
			got := make(map[string]string)
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}
