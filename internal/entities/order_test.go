package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusProcessing, true},
		{OrderStatusPending, OrderStatusFailed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusFailed, true},
		{OrderStatusProcessing, OrderStatusPending, false},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusFailed, OrderStatusProcessing, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusShipped, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s->%s", tc.from, tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusFailed.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())
}

func TestOrderUpdate_Apply(t *testing.T) {
	status := OrderStatusProcessing
	supplierID := int64(42)
	order := Order{ID: "o-1", Status: OrderStatusPending, PaymentStatus: PaymentStatusPaid, TrackingNumber: "keep"}

	got := OrderUpdate{Status: &status, SupplierOrderID: &supplierID}.Apply(order)

	assert.Equal(t, OrderStatusProcessing, got.Status)
	assert.Equal(t, PaymentStatusPaid, got.PaymentStatus)
	assert.Equal(t, int64(42), *got.SupplierOrderID)
	assert.Equal(t, "keep", got.TrackingNumber)
	assert.Equal(t, OrderStatusPending, order.Status)

	supplierID = 7
	assert.Equal(t, int64(42), *got.SupplierOrderID)
}

func TestOrderUpdate_Empty(t *testing.T) {
	assert.True(t, OrderUpdate{}.Empty())
	paid := PaymentStatusRefunded
	assert.False(t, OrderUpdate{PaymentStatus: &paid}.Empty())
}

func TestItem_LineTotal(t *testing.T) {
	item := Item{UnitPrice: decimal.RequireFromString("12.75"), Quantity: 2}
	assert.True(t, decimal.RequireFromString("25.50").Equal(item.LineTotal()))
}

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		amount string
		want   int64
	}{
		{"32.59", 3259},
		{"0.10", 10},
		{"19.999", 2000},
		{"0", 0},
		{"100", 10000},
	}
	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, MinorUnits(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestTypedErrors(t *testing.T) {
	invalid := &InvalidVariantError{ProductID: 71, Invalid: []int64{1}, ValidSample: []int64{10, 11}, TotalValid: 9}
	assert.ErrorIs(t, invalid, ErrInvalidVariant)
	assert.Contains(t, invalid.Error(), "[10, 11...]")

	cause := errors.New("boom")
	submission := &MockupSubmissionError{StatusCode: 500, Err: cause}
	assert.ErrorIs(t, submission, ErrMockupSubmission)
	assert.ErrorIs(t, submission, cause)

	wrapped := fmt.Errorf("await: %w", &MockupTimeoutError{JobKey: "k", Attempts: 30})
	var timeout *MockupTimeoutError
	assert.ErrorAs(t, wrapped, &timeout)
	assert.Equal(t, "k", timeout.JobKey)
	assert.ErrorIs(t, wrapped, ErrMockupTimeout)

	assert.ErrorIs(t, &MockupGenerationFailedError{JobKey: "k"}, ErrMockupGenerationFailed)
}
