package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/pod-fulfillment-service/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	repo     *memOrderRepo
	payments *fakePayments
	supplier *fakeSupplier
	uploader *fakeUploader
	events   *fakePublisher
}

func newOrderService(t *testing.T, deps orderDeps) interface {
	CreateOrder(ctx context.Context, userID string, in entities.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (entities.Order, error)
	ApplySupplierEvent(ctx context.Context, ev entities.SupplierEvent) error
	ResumePending(ctx context.Context) (int, error)
	Shutdown(ctx context.Context) error
} {
	t.Helper()
	svc := service.NewOrderService(discardLogger(), deps.repo, deps.payments, deps.supplier, deps.uploader, deps.events,
		service.FulfillmentConfig{SubmissionTimeout: 5 * time.Second})
	return svc
}

func defaultDeps() orderDeps {
	return orderDeps{
		repo:     newMemOrderRepo(),
		payments: &fakePayments{confirmed: true},
		supplier: &fakeSupplier{id: 91001},
		uploader: &fakeUploader{},
		events:   &fakePublisher{},
	}
}

func orderInput() entities.CreateOrderInput {
	return entities.CreateOrderInput{
		Recipient: entities.Recipient{
			Name: "Jane Doe", Address1: "1 Main St", City: "Austin",
			StateCode: "TX", CountryCode: "US", ZIP: "73301",
		},
		Items: []entities.Item{
			{VariantID: 4012, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{VariantID: 4013, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
		},
		ShippingMethod:  "STANDARD",
		ShippingCost:    decimal.RequireFromString("4.99"),
		TaxAmount:       decimal.RequireFromString("2.10"),
		PaymentIntentID: "pi_123",
	}
}

func settle(t *testing.T, svc interface{ Shutdown(context.Context) error }) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	deps := defaultDeps()
	svc := newOrderService(t, deps)

	in := orderInput()
	in.Items[0].DesignURL = "data:image/png;base64,iVBORw0KGgo="
	in.Items[1].DesignURL = "https://cdn.example.com/design.png"

	order, err := svc.CreateOrder(context.Background(), "user-1", in)
	require.NoError(t, err)

	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Equal(t, entities.PaymentStatusPaid, order.PaymentStatus)
	assert.NotNil(t, order.PaidAt)
	assert.Equal(t, "25.50", order.Subtotal.StringFixed(2))
	assert.Equal(t, "32.59", order.Total.StringFixed(2))

	settle(t, svc)

	stored, err := deps.repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusProcessing, stored.Status)
	require.NotNil(t, stored.SupplierOrderID)
	assert.Equal(t, int64(91001), *stored.SupplierOrderID)
	assert.JSONEq(t, `{"id":91001,"status":"draft"}`, string(stored.SupplierResponse))
	assert.Equal(t, "32.59", stored.Total.StringFixed(2))

	calls := deps.supplier.calls()
	require.Len(t, calls, 1)
	req := calls[0]
	assert.Equal(t, order.ID, req.ExternalID)
	assert.Equal(t, "STANDARD", req.ShippingMethod)
	assert.Equal(t, "4.99", req.RetailShipping.StringFixed(2))
	require.Len(t, req.Items, 2)
	assert.Equal(t, "https://storage.example.com/designs/upload.png", req.Items[0].FileURL)
	assert.Equal(t, "https://cdn.example.com/design.png", req.Items[1].FileURL)
	assert.Equal(t, []string{"image/png"}, deps.uploader.uploads)

	assert.Empty(t, deps.payments.refundCalls())
	assert.Equal(t, []entities.OrderEventType{entities.OrderEventCreated, entities.OrderEventProcessing}, deps.events.types())
}

func TestOrderService_CreateOrder_PaymentNotConfirmed(t *testing.T) {
	testCases := []struct {
		name     string
		payments *fakePayments
	}{
		{name: "intent not succeeded", payments: &fakePayments{confirmed: false}},
		{name: "provider error", payments: &fakePayments{confirmErr: errors.New("no such payment_intent")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := defaultDeps()
			deps.payments = tc.payments
			svc := newOrderService(t, deps)

			_, err := svc.CreateOrder(context.Background(), "user-1", orderInput())
			settle(t, svc)

			assert.ErrorIs(t, err, entities.ErrPaymentNotConfirmed)
			assert.Zero(t, deps.repo.count())
			assert.Empty(t, deps.supplier.calls())
			assert.Empty(t, deps.events.types())
		})
	}
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(in *entities.CreateOrderInput)
	}{
		{name: "no items", mutate: func(in *entities.CreateOrderInput) { in.Items = nil }},
		{name: "zero quantity", mutate: func(in *entities.CreateOrderInput) { in.Items[0].Quantity = 0 }},
		{name: "negative shipping", mutate: func(in *entities.CreateOrderInput) { in.ShippingCost = decimal.NewFromInt(-1) }},
		{name: "negative tax", mutate: func(in *entities.CreateOrderInput) { in.TaxAmount = decimal.NewFromInt(-1) }},
		{name: "missing payment intent", mutate: func(in *entities.CreateOrderInput) { in.PaymentIntentID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payments := mocks.NewMockPaymentProvider(t)
			deps := defaultDeps()
			svc := service.NewOrderService(discardLogger(), deps.repo, payments, deps.supplier, deps.uploader, deps.events,
				service.FulfillmentConfig{})

			in := orderInput()
			tc.mutate(&in)
			_, err := svc.CreateOrder(context.Background(), "user-1", in)

			assert.ErrorIs(t, err, entities.ErrInvalidOrder)
			assert.Zero(t, deps.repo.count())
		})
	}
}

func TestOrderService_CreateOrder_PaymentAlreadyUsed(t *testing.T) {
	deps := defaultDeps()
	svc := newOrderService(t, deps)

	_, err := svc.CreateOrder(context.Background(), "user-1", orderInput())
	require.NoError(t, err)
	_, err = svc.CreateOrder(context.Background(), "user-1", orderInput())
	settle(t, svc)

	assert.ErrorIs(t, err, entities.ErrPaymentAlreadyUsed)
	assert.Equal(t, 1, deps.repo.count())
	assert.Len(t, deps.supplier.calls(), 1)
}

func TestOrderService_SupplierFailureIsCompensated(t *testing.T) {
	deps := defaultDeps()
	deps.supplier.err = errors.New("supplier unavailable")
	svc := newOrderService(t, deps)

	order, err := svc.CreateOrder(context.Background(), "user-1", orderInput())
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, order.Status)

	settle(t, svc)

	stored, err := deps.repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusFailed, stored.Status)
	assert.Equal(t, entities.PaymentStatusRefunded, stored.PaymentStatus)
	assert.Equal(t, "32.59", stored.Total.StringFixed(2))

	refunds := deps.payments.refundCalls()
	require.Len(t, refunds, 1)
	assert.Equal(t, "pi_123", refunds[0].PaymentIntentID)
	assert.Equal(t, int64(3259), refunds[0].AmountMinor)
	assert.Equal(t, "order-"+order.ID+"-refund", refunds[0].IdempotencyKey)

	assert.Equal(t, []entities.OrderEventType{entities.OrderEventCreated, entities.OrderEventRefunded}, deps.events.types())
}

func TestOrderService_RefundFailureLeavesOrderFailedAndPaid(t *testing.T) {
	deps := defaultDeps()
	deps.supplier.err = errors.New("supplier unavailable")
	deps.payments.refundErr = errors.New("stripe down")
	svc := newOrderService(t, deps)

	order, err := svc.CreateOrder(context.Background(), "user-1", orderInput())
	require.NoError(t, err)
	settle(t, svc)

	stored, err := deps.repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusFailed, stored.Status)
	assert.Equal(t, entities.PaymentStatusPaid, stored.PaymentStatus)
	assert.Len(t, deps.payments.refundCalls(), 1)
}

func TestOrderService_InvalidDesignFailsSubmission(t *testing.T) {
	deps := defaultDeps()
	svc := newOrderService(t, deps)

	in := orderInput()
	in.Items[0].DesignURL = "http://localhost:3000/design.png"
	order, err := svc.CreateOrder(context.Background(), "user-1", in)
	require.NoError(t, err)
	settle(t, svc)

	stored, err := deps.repo.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusFailed, stored.Status)
	assert.Equal(t, entities.PaymentStatusRefunded, stored.PaymentStatus)
	assert.Empty(t, deps.supplier.calls())
}

func TestOrderService_RefundIsIssuedOnce(t *testing.T) {
	t.Run("second failure of a refunded order", func(t *testing.T) {
		deps := defaultDeps()
		deps.supplier.err = errors.New("supplier unavailable")
		svc := newOrderService(t, deps)

		order, err := svc.CreateOrder(context.Background(), "user-1", orderInput())
		require.NoError(t, err)
		settle(t, svc)

		err = svc.ApplySupplierEvent(context.Background(), entities.SupplierEvent{
			Type: entities.SupplierEventOrderFailed, OrderID: order.ID,
		})
		require.NoError(t, err)

		assert.Len(t, deps.payments.refundCalls(), 1)
	})

	t.Run("concurrent failures", func(t *testing.T) {
		deps := defaultDeps()
		supplierID := int64(77)
		deps.repo.seed(entities.Order{
			ID: "order-1", UserID: "user-1", PaymentIntentID: "pi_9",
			Status: entities.OrderStatusProcessing, PaymentStatus: entities.PaymentStatusPaid,
			SupplierOrderID: &supplierID, Total: decimal.RequireFromString("12.00"),
		})
		svc := newOrderService(t, deps)

		var wg sync.WaitGroup
		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = svc.ApplySupplierEvent(context.Background(), entities.SupplierEvent{
					Type: entities.SupplierEventOrderFailed, OrderID: "order-1",
				})
			}()
		}
		wg.Wait()

		refunds := deps.payments.refundCalls()
		require.Len(t, refunds, 1)
		assert.Equal(t, int64(1200), refunds[0].AmountMinor)

		stored, err := deps.repo.GetOrderByID(context.Background(), "order-1")
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusFailed, stored.Status)
		assert.Equal(t, entities.PaymentStatusRefunded, stored.PaymentStatus)
	})
}

func TestOrderService_ApplySupplierEvent(t *testing.T) {
	supplierID := int64(77)
	processing := entities.Order{
		ID: "order-1", UserID: "user-1", PaymentIntentID: "pi_9",
		Status: entities.OrderStatusProcessing, PaymentStatus: entities.PaymentStatusPaid,
		SupplierOrderID: &supplierID, Total: decimal.RequireFromString("12.00"),
	}

	testCases := []struct {
		name          string
		current       entities.Order
		event         entities.SupplierEvent
		wantErr       error
		wantStatus    entities.OrderStatus
		wantPayment   entities.PaymentStatus
		wantRefunds   int
		wantTrackingN string
	}{
		{
			name:    "shipped",
			current: processing,
			event: entities.SupplierEvent{
				Type: entities.SupplierEventPackageShipped, OrderID: "order-1",
				TrackingNumber: "1Z999", TrackingURL: "https://track.example.com/1Z999",
			},
			wantStatus:    entities.OrderStatusShipped,
			wantPayment:   entities.PaymentStatusPaid,
			wantTrackingN: "1Z999",
		},
		{
			name:        "canceled by supplier",
			current:     processing,
			event:       entities.SupplierEvent{Type: entities.SupplierEventOrderCanceled, OrderID: "order-1", Reason: "out of stock"},
			wantStatus:  entities.OrderStatusCancelled,
			wantPayment: entities.PaymentStatusRefunded,
			wantRefunds: 1,
		},
		{
			name: "shipped before submission is rejected",
			current: func() entities.Order {
				o := processing
				o.Status = entities.OrderStatusPending
				o.SupplierOrderID = nil
				return o
			}(),
			event:       entities.SupplierEvent{Type: entities.SupplierEventPackageShipped, OrderID: "order-1"},
			wantErr:     entities.ErrInvalidTransition,
			wantStatus:  entities.OrderStatusPending,
			wantPayment: entities.PaymentStatusPaid,
		},
		{
			name:        "unknown order",
			current:     processing,
			event:       entities.SupplierEvent{Type: entities.SupplierEventOrderFailed, OrderID: "order-404"},
			wantErr:     entities.ErrOrderNotFound,
			wantStatus:  entities.OrderStatusProcessing,
			wantPayment: entities.PaymentStatusPaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps := defaultDeps()
			deps.repo.seed(tc.current)
			svc := newOrderService(t, deps)

			err := svc.ApplySupplierEvent(context.Background(), tc.event)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			stored, err := deps.repo.GetOrderByID(context.Background(), "order-1")
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, stored.Status)
			assert.Equal(t, tc.wantPayment, stored.PaymentStatus)
			assert.Equal(t, tc.wantTrackingN, stored.TrackingNumber)
			assert.Len(t, deps.payments.refundCalls(), tc.wantRefunds)
		})
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	deps := defaultDeps()
	deps.repo.seed(entities.Order{ID: "order-1", UserID: "user-1"})
	svc := newOrderService(t, deps)

	order, err := svc.GetOrder(context.Background(), "user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	_, err = svc.GetOrder(context.Background(), "user-2", "order-1")
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = svc.GetOrder(context.Background(), "user-1", "order-2")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderService_ResumePending(t *testing.T) {
	deps := defaultDeps()
	deps.repo.seed(entities.Order{
		ID: "stale", UserID: "user-1", PaymentIntentID: "pi_1",
		Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid,
		Items:     []entities.Item{{VariantID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
		CreatedAt: time.Now().Add(-time.Hour),
	})
	deps.repo.seed(entities.Order{
		ID: "fresh", UserID: "user-1", PaymentIntentID: "pi_2",
		Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid,
		CreatedAt: time.Now(),
	})
	svc := newOrderService(t, deps)

	started, err := svc.ResumePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, started)
	settle(t, svc)

	stale, err := deps.repo.GetOrderByID(context.Background(), "stale")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusProcessing, stale.Status)

	fresh, err := deps.repo.GetOrderByID(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusPending, fresh.Status)

	calls := deps.supplier.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "stale", calls[0].ExternalID)
}

func TestOrderService_ResumePending_SubmissionRejected(t *testing.T) {
	duplicate := errors.New("supplier api error (status 400, code 400): Order with this External ID already exists")

	tests := []struct {
		name          string
		held          map[string]int64
		lookupErr     error
		wantStatus    entities.OrderStatus
		wantPayment   entities.PaymentStatus
		wantSupplier  *int64
		wantRefunds   int
		wantEventType []entities.OrderEventType
	}{
		{
			name:          "supplier already holds the order",
			held:          map[string]int64{"stale": 77001},
			wantStatus:    entities.OrderStatusProcessing,
			wantPayment:   entities.PaymentStatusPaid,
			wantSupplier:  ptr(int64(77001)),
			wantEventType: []entities.OrderEventType{entities.OrderEventProcessing},
		},
		{
			name:          "supplier has no such order",
			wantStatus:    entities.OrderStatusFailed,
			wantPayment:   entities.PaymentStatusRefunded,
			wantRefunds:   1,
			wantEventType: []entities.OrderEventType{entities.OrderEventRefunded},
		},
		{
			name:        "lookup fails",
			lookupErr:   errors.New("connection reset"),
			wantStatus:  entities.OrderStatusPending,
			wantPayment: entities.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := defaultDeps()
			deps.supplier.err = duplicate
			deps.supplier.held = tt.held
			deps.supplier.lookupErr = tt.lookupErr
			deps.repo.seed(entities.Order{
				ID: "stale", UserID: "user-1", PaymentIntentID: "pi_1",
				Status: entities.OrderStatusPending, PaymentStatus: entities.PaymentStatusPaid,
				Items:     []entities.Item{{VariantID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}},
				Total:     decimal.NewFromInt(5),
				CreatedAt: time.Now().Add(-time.Hour),
			})
			svc := newOrderService(t, deps)

			started, err := svc.ResumePending(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, started)
			settle(t, svc)

			order, err := deps.repo.GetOrderByID(context.Background(), "stale")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
			assert.Equal(t, tt.wantPayment, order.PaymentStatus)
			assert.Equal(t, tt.wantSupplier, order.SupplierOrderID)
			assert.Len(t, deps.payments.refundCalls(), tt.wantRefunds)
			assert.Equal(t, 1, deps.supplier.lookupCount())
			assert.ElementsMatch(t, tt.wantEventType, deps.events.types())
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().ListUserOrders(mock.Anything, "user-1", 20, 40).
		Return([]entities.Order{{ID: "order-1"}}, nil).Once()

	deps := defaultDeps()
	svc := service.NewOrderService(discardLogger(), repo, deps.payments, deps.supplier, deps.uploader, deps.events,
		service.FulfillmentConfig{})

	orders, err := svc.ListOrders(context.Background(), "user-1", 20, 40)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
