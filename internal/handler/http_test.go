package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/pod-fulfillment-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testOrderID   = "3f0b8c52-6d8e-4a57-9a53-2a4a1b8f4c11"
	testProductID = "9b1e7a40-1c5d-4f0e-8f3b-64f1d2c0a7e2"
)

type handlerMocks struct {
	orders   *mocks.MockOrderService
	mockups  *mocks.MockMockupService
	products *mocks.MockCustomProductService
}

func newRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		orders:   mocks.NewMockOrderService(t),
		mockups:  mocks.NewMockMockupService(t),
		products: mocks.NewMockCustomProductService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.orders, m.mockups, m.products)

	r := chi.NewRouter()
	h.Init(r)
	return m, r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("X-User-ID", "user-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func storedOrder() entities.Order {
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Order{
		ID:     testOrderID,
		UserID: "user-1",
		Items: []entities.Item{
			{VariantID: 4012, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
			{VariantID: 4013, Quantity: 1, UnitPrice: decimal.RequireFromString("5.5")},
		},
		ShippingMethod:  "STANDARD",
		Subtotal:        decimal.RequireFromString("25.5"),
		ShippingCost:    decimal.RequireFromString("4.99"),
		TaxAmount:       decimal.RequireFromString("2.1"),
		Total:           decimal.RequireFromString("32.59"),
		Status:          entities.OrderStatusPending,
		PaymentIntentID: "pi_123",
		PaymentStatus:   entities.PaymentStatusPaid,
		PaidAt:          &paidAt,
		CreatedAt:       paidAt,
		UpdatedAt:       paidAt,
	}
}

const createOrderBody = `{
	"recipient": {"name": "Jane Doe", "address1": "1 Main St", "city": "Austin", "state_code": "TX", "country_code": "US", "zip": "73301"},
	"items": [
		{"variant_id": 4012, "quantity": 2, "unit_price": "10.00"},
		{"variant_id": 4013, "quantity": 1, "unit_price": 5.5, "design_url": "https://cdn.example.com/a.png"}
	],
	"shipping_cost": "4.99",
	"tax_amount": "2.10",
	"payment_intent_id": "pi_123"
}`

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: createOrderBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.MatchedBy(func(in entities.CreateOrderInput) bool {
					return in.ShippingMethod == "STANDARD" &&
						in.ShippingCost.Equal(decimal.RequireFromString("4.99")) &&
						in.Items[1].UnitPrice.Equal(decimal.RequireFromString("5.5")) &&
						in.Items[1].DesignURL == "https://cdn.example.com/a.png" &&
						in.Recipient.CountryCode == "US"
				})).Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total":"32.59"`,
		},
		{
			name:       "validation error",
			body:       `{"recipient": {"name": "Jane"}, "items": [], "payment_intent_id": ""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"payment_intent_id"`,
		},
		{
			name:       "malformed body",
			body:       `{"items": [`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid request body`,
		},
		{
			name: "payment not confirmed",
			body: createOrderBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, errors.Join(entities.ErrPaymentNotConfirmed, errors.New("stripe: no such intent"))).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `"payment has not been confirmed"`,
		},
		{
			name: "payment already used",
			body: createOrderBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, entities.ErrPaymentAlreadyUsed).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "invalid order",
			body: createOrderBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: createOrderBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).
					Return(entities.Order{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			status, body := doRequest(t, r, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder_Response(t *testing.T) {
	m, r := newRouter(t)
	m.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).Return(storedOrder(), nil).Once()

	status, body := doRequest(t, r, http.MethodPost, "/orders", createOrderBody)
	require.Equal(t, http.StatusCreated, status)

	var resp handler.Order
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, testOrderID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "25.50", resp.Subtotal)
	assert.Equal(t, "2.10", resp.TaxAmount)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "10.00", resp.Items[0].UnitPrice)
	assert.Equal(t, "20.00", resp.Items[0].LineTotal)
	assert.NotNil(t, resp.PaidAt)
}

func TestHTTPHandler_MissingUser(t *testing.T) {
	_, r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: testOrderID,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "user-1", testOrderID).Return(storedOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + testOrderID + `"`,
		},
		{
			name:       "malformed id",
			orderID:    "not-a-uuid",
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "not found",
			orderID: testOrderID,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "user-1", testOrderID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "foreign order",
			orderID: testOrderID,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "user-1", testOrderID).Return(entities.Order{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			status, body := doRequest(t, r, http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	t.Run("pagination", func(t *testing.T) {
		m, r := newRouter(t)
		m.orders.EXPECT().ListOrders(mock.Anything, "user-1", 5, 10).Return([]entities.Order{storedOrder()}, nil).Once()

		status, body := doRequest(t, r, http.MethodGet, "/orders?limit=5&offset=10", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"limit":5`)
		assert.Contains(t, body, testOrderID)
	})

	t.Run("defaults", func(t *testing.T) {
		m, r := newRouter(t)
		m.orders.EXPECT().ListOrders(mock.Anything, "user-1", 20, 0).Return(nil, nil).Once()

		status, body := doRequest(t, r, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"orders":[]`)
	})

	t.Run("limit out of range", func(t *testing.T) {
		_, r := newRouter(t)

		status, _ := doRequest(t, r, http.MethodGet, "/orders?limit=1000", "")
		assert.Equal(t, http.StatusBadRequest, status)

		status, _ = doRequest(t, r, http.MethodGet, "/orders?offset=abc", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_SubmitMockupJob(t *testing.T) {
	body := `{"product_id": 71, "variant_ids": [4012, 9999], "files": [{"placement": "front", "image_url": "https://cdn.example.com/a.png"}]}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "accepted",
			body: `{"product_id": 71, "variant_ids": [4012], "files": [{"placement": "front", "image_url": "https://cdn.example.com/a.png",` +
				`"position": {"area_width": 1800, "area_height": 2400, "width": 1800, "height": 1800, "top": 300, "left": 0}}]}`,
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().SubmitMockupJob(mock.Anything, mock.MatchedBy(func(req entities.MockupJobRequest) bool {
					return req.ProductID == 71 && req.Files[0].Position != nil && req.Files[0].Position.Top == 300
				})).Return("job-1", nil).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `{"job_key":"job-1"}`,
		},
		{
			name: "invalid variants are enumerated",
			body: body,
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().SubmitMockupJob(mock.Anything, mock.Anything).Return("", &entities.InvalidVariantError{
					ProductID: 71, Invalid: []int64{9999}, ValidSample: []int64{4011, 4012}, TotalValid: 2,
				}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid_variant_ids":[9999]`,
		},
		{
			name: "supplier rejected task",
			body: body,
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().SubmitMockupJob(mock.Anything, mock.Anything).
					Return("", &entities.MockupSubmissionError{StatusCode: 400, Detail: "Invalid placement"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"supplier_status":400`,
		},
		{
			name:       "no files",
			body:       `{"product_id": 71, "variant_ids": [4012], "files": []}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"files"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newRouter(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			status, respBody := doRequest(t, r, http.MethodPost, "/mockups", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, respBody, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetMockupStatus(t *testing.T) {
	m, r := newRouter(t)
	m.mockups.EXPECT().GetMockupStatus(mock.Anything, "job-1").Return(entities.MockupJob{
		JobKey: "job-1", Status: entities.MockupStatusCompleted,
		Mockups: []entities.Mockup{{Placement: "front", VariantIDs: []int64{4012}, URL: "https://mockups.example.com/1.png"}},
	}, nil).Once()

	status, body := doRequest(t, r, http.MethodGet, "/mockups/job-1", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"status":"completed"`)
	assert.Contains(t, body, `"mockup_url":"https://mockups.example.com/1.png"`)
}

func TestHTTPHandler_GenerateMockup(t *testing.T) {
	body := `{"product_id": 71, "image_url": "https://cdn.example.com/a.png"}`

	testCases := []struct {
		name         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "completed",
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().GenerateMockup(mock.Anything, entities.GenerateMockupInput{
					ProductID: 71, ImageURL: "https://cdn.example.com/a.png",
				}).Return(entities.MockupResult{
					JobKey: "job-1", VariantIDs: []int64{4012}, MockupURLs: []string{"https://mockups.example.com/1.png"},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"mockup_urls":["https://mockups.example.com/1.png"]`,
		},
		{
			name: "timeout carries job key",
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().GenerateMockup(mock.Anything, mock.Anything).
					Return(entities.MockupResult{JobKey: "job-slow"}, &entities.MockupTimeoutError{JobKey: "job-slow", Attempts: 30}).Once()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"job_key":"job-slow"`,
		},
		{
			name: "generation failed",
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().GenerateMockup(mock.Anything, mock.Anything).
					Return(entities.MockupResult{}, &entities.MockupGenerationFailedError{JobKey: "job-1", Reason: "file too small"}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `file too small`,
		},
		{
			name: "no variants",
			mockBehavior: func(m handlerMocks) {
				m.mockups.EXPECT().GenerateMockup(mock.Anything, mock.Anything).
					Return(entities.MockupResult{}, entities.ErrNoVariantsAvailable).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newRouter(t)
			tc.mockBehavior(m)

			status, respBody := doRequest(t, r, http.MethodPost, "/mockups/generate", body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, respBody, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CalculatePosition(t *testing.T) {
	result := entities.PositionResult{
		Position:    entities.Placement{AreaWidth: 1800, AreaHeight: 2400, Width: 1800, Height: 1800, Top: 300},
		PrintArea:   entities.PrintArea{Placement: "default", Width: 1800, Height: 2400},
		Design:      entities.Dimensions{Width: 1000, Height: 1000},
		AspectRatio: 1,
	}

	t.Run("by dimensions", func(t *testing.T) {
		m, r := newRouter(t)
		m.mockups.EXPECT().CalculatePosition(mock.Anything, int64(71), "front", entities.Dimensions{Width: 1000, Height: 1000}).
			Return(result, nil).Once()

		status, body := doRequest(t, r, http.MethodPost, "/mockups/position",
			`{"product_id": 71, "placement": "front", "width": 1000, "height": 1000}`)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"top":300`)
		assert.Contains(t, body, `"aspect_ratio":1`)
	})

	t.Run("by image", func(t *testing.T) {
		m, r := newRouter(t)
		m.mockups.EXPECT().CalculateImagePosition(mock.Anything, int64(71), "", "https://cdn.example.com/a.png").
			Return(entities.PositionResult{}, entities.ErrUnreadableImage).Once()

		status, _ := doRequest(t, r, http.MethodPost, "/mockups/position",
			`{"product_id": 71, "image_url": "https://cdn.example.com/a.png"}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		m, r := newRouter(t)
		m.mockups.EXPECT().CalculatePosition(mock.Anything, int64(71), "", entities.Dimensions{Width: -5, Height: 10}).
			Return(entities.PositionResult{}, entities.ErrInvalidDimension).Once()

		status, _ := doRequest(t, r, http.MethodPost, "/mockups/position", `{"product_id": 71, "width": -5, "height": 10}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("neither image nor dimensions", func(t *testing.T) {
		_, r := newRouter(t)

		status, _ := doRequest(t, r, http.MethodPost, "/mockups/position", `{"product_id": 71}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestHTTPHandler_CustomProducts(t *testing.T) {
	product := entities.CustomProduct{
		ID: testProductID, UserID: "user-1", Name: "Cat Tee", SupplierProductID: 71,
		VariantIDs: []int64{4012}, Placement: "front", DesignURL: "https://cdn.example.com/a.png",
		MockupURLs: []string{}, Status: entities.CustomProductStatusDraft,
	}

	t.Run("create", func(t *testing.T) {
		m, r := newRouter(t)
		m.products.EXPECT().CreateCustomProduct(mock.Anything, "user-1", entities.CreateCustomProductInput{
			Name: "Cat Tee", SupplierProductID: 71, VariantIDs: []int64{4012}, DesignURL: "https://cdn.example.com/a.png",
		}).Return(product, nil).Once()

		status, body := doRequest(t, r, http.MethodPost, "/custom-products",
			`{"name": "Cat Tee", "product_id": 71, "variant_ids": [4012], "design_url": "https://cdn.example.com/a.png"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.Contains(t, body, `"status":"draft"`)
	})

	t.Run("list", func(t *testing.T) {
		m, r := newRouter(t)
		m.products.EXPECT().ListCustomProducts(mock.Anything, "user-1").Return([]entities.CustomProduct{product}, nil).Once()

		status, body := doRequest(t, r, http.MethodGet, "/custom-products", "")

		assert.Equal(t, http.StatusOK, status)
		assert.True(t, strings.HasPrefix(body, "["))
	})

	t.Run("get foreign", func(t *testing.T) {
		m, r := newRouter(t)
		m.products.EXPECT().GetCustomProduct(mock.Anything, "user-1", testProductID).
			Return(entities.CustomProduct{}, entities.ErrForbidden).Once()

		status, _ := doRequest(t, r, http.MethodGet, "/custom-products/"+testProductID, "")

		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("get missing", func(t *testing.T) {
		m, r := newRouter(t)
		m.products.EXPECT().GetCustomProduct(mock.Anything, "user-1", testProductID).
			Return(entities.CustomProduct{}, entities.ErrCustomProductNotFound).Once()

		status, body := doRequest(t, r, http.MethodGet, "/custom-products/"+testProductID, "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, "custom product not found")
	})

	t.Run("generate mockups", func(t *testing.T) {
		m, r := newRouter(t)
		ready := product
		ready.Status = entities.CustomProductStatusMockupReady
		ready.MockupURLs = []string{"https://mockups.example.com/1.png"}
		m.products.EXPECT().GenerateCustomProductMockups(mock.Anything, "user-1", testProductID).Return(ready, nil).Once()

		status, body := doRequest(t, r, http.MethodPost, "/custom-products/"+testProductID+"/mockups", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"status":"mockup_ready"`)
	})
}
