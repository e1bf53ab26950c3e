package entities

import "github.com/shopspring/decimal"

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

type RefundRequest struct {
	PaymentIntentID string
	// AmountMinor is in the smallest currency unit; zero refunds the full intent.
	AmountMinor    int64
	IdempotencyKey string
}

type Refund struct {
	ID          string
	Status      string
	AmountMinor int64
}

// MinorUnits converts a two-decimal amount into the smallest currency unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
