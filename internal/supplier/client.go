// Package supplier talks to the print-on-demand supplier's REST API.
package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/cache"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"
	"golang.org/x/time/rate"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	RequestsPerSecond float64
	Burst             int

	MaxRetries   int
	InitialDelay time.Duration
}

type Client struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	cache   cache.Cache
	retry   utils.RetryConfig
}

// New builds a client. Catalog reads go through c when it is not nil.
func New(logger *slog.Logger, cfg Config, c cache.Cache) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	client := &Client{
		logger:  logger.With(slog.String("client", "supplier")),
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(limit, cfg.Burst),
		cache:   c,
	}
	client.retry = utils.RetryConfig{
		MaxRetries:   cfg.MaxRetries,
		InitialDelay: cfg.InitialDelay,
		Multiplier:   2,
		ShouldRetry:  IsRateLimited,
	}
	return client
}

func (c *Client) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	var res productResult
	key := "supplier:product:" + strconv.FormatInt(productID, 10)
	if err := c.cachedGet(ctx, "product", key, "/products/"+strconv.FormatInt(productID, 10), &res); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return res.toEntity(), nil
}

func (c *Client) GetMockupTemplates(ctx context.Context, productID int64) ([]entities.MockupTemplate, error) {
	var res templatesResult
	key := "supplier:templates:" + strconv.FormatInt(productID, 10)
	if err := c.cachedGet(ctx, "templates", key, "/mockup-generator/templates/"+strconv.FormatInt(productID, 10), &res); err != nil {
		return nil, fmt.Errorf("failed to get mockup templates for product %d: %w", productID, err)
	}
	return res.toEntity(), nil
}

// CreateMockupTask submits a mockup job and returns its task key.
func (c *Client) CreateMockupTask(ctx context.Context, req entities.MockupJobRequest) (string, error) {
	var res taskResult
	path := "/mockup-generator/create-task/" + strconv.FormatInt(req.ProductID, 10)
	if err := c.call(ctx, "create_task", http.MethodPost, path, newCreateTaskRequest(req), &res); err != nil {
		return "", fmt.Errorf("failed to create mockup task: %w", err)
	}
	if res.TaskKey == "" {
		return "", errors.New("supplier returned an empty task key")
	}
	return res.TaskKey, nil
}

// GetMockupTask reads a task's state. A task the supplier does not know yet is reported as pending.
func (c *Client) GetMockupTask(ctx context.Context, taskKey string) (entities.MockupJob, error) {
	var res taskResult
	path := "/mockup-generator/task?task_key=" + url.QueryEscape(taskKey)
	err := c.call(ctx, "task_status", http.MethodGet, path, nil, &res)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return entities.MockupJob{JobKey: taskKey, Status: entities.MockupStatusPending}, nil
	}
	if err != nil {
		return entities.MockupJob{}, fmt.Errorf("failed to get mockup task %s: %w", taskKey, err)
	}

	job := res.toEntity()
	if job.JobKey == "" {
		job.JobKey = taskKey
	}
	return job, nil
}

func (c *Client) CreateOrder(ctx context.Context, req entities.SupplierOrderRequest) (entities.SupplierOrder, error) {
	var raw json.RawMessage
	if err := c.call(ctx, "create_order", http.MethodPost, "/orders", newCreateOrderRequest(req), &raw); err != nil {
		return entities.SupplierOrder{}, fmt.Errorf("failed to create supplier order: %w", err)
	}

	var res orderResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.SupplierOrder{}, fmt.Errorf("failed to decode supplier order: %w", err)
	}
	return entities.SupplierOrder{ID: res.ID, Status: res.Status, Raw: raw}, nil
}

// GetOrder looks an order up by the external id it was submitted with.
func (c *Client) GetOrder(ctx context.Context, externalID string) (entities.SupplierOrder, error) {
	var raw json.RawMessage
	err := c.call(ctx, "get_order", http.MethodGet, "/orders/@"+url.PathEscape(externalID), nil, &raw)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return entities.SupplierOrder{}, fmt.Errorf("%w: %s", entities.ErrSupplierOrderNotFound, externalID)
	}
	if err != nil {
		return entities.SupplierOrder{}, fmt.Errorf("failed to get supplier order %s: %w", externalID, err)
	}

	var res orderResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return entities.SupplierOrder{}, fmt.Errorf("failed to decode supplier order: %w", err)
	}
	return entities.SupplierOrder{ID: res.ID, Status: res.Status, Raw: raw}, nil
}

func (c *Client) cachedGet(ctx context.Context, endpoint, key, path string, out any) error {
	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(data, out); err == nil {
				cacheLookups.WithLabelValues("hit").Inc()
				return nil
			}
		}
		cacheLookups.WithLabelValues("miss").Inc()
	}

	var raw json.RawMessage
	if err := c.call(ctx, endpoint, http.MethodGet, path, nil, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	if c.cache != nil {
		c.cache.Set(ctx, key, raw)
	}
	return nil
}

// call performs one logical request, retrying only when the supplier rate limits us.
func (c *Client) call(ctx context.Context, endpoint, method, path string, body, out any) error {
	cfg := c.retry
	cfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		rateLimitRetries.WithLabelValues(endpoint).Inc()
		c.logger.Warn("rate limited by supplier, retrying",
			slog.String("endpoint", endpoint),
			slog.Int("attempt", attempt),
			slog.Int("max_retries", c.retry.MaxRetries),
			slog.Duration("delay", delay),
		)
	}

	_, err := utils.WithRetry(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.do(ctx, endpoint, method, path, body, out)
	})
	return err
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.http.Do(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(res.StatusCode)).Inc()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if res.StatusCode >= http.StatusMultipleChoices || (decodeErr == nil && env.Code >= http.StatusMultipleChoices) {
		apiErr := &APIError{
			StatusCode:       res.StatusCode,
			Code:             env.Code,
			RetryAfterHeader: res.Header.Get("Retry-After"),
		}
		if env.Error != nil {
			apiErr.Reason = env.Error.Reason
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response envelope: %w", decodeErr)
	}

	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = env.Result
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", endpoint, err)
	}
	return nil
}
