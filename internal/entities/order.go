package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFailed     OrderStatus = "failed"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusFailed, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusFailed},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// Recipient is immutable after the order is created.
type Recipient struct {
	Name        string
	Address1    string
	Address2    string
	City        string
	StateCode   string
	CountryCode string
	ZIP         string
	Email       string
	Phone       string
}

type Item struct {
	VariantID       int64
	Quantity        int
	UnitPrice       decimal.Decimal
	ProductType     string
	CustomProductID string
	// DesignURL is either a public URL or a data URL; empty when the item has no custom print.
	DesignURL string
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID     string
	UserID string

	Recipient      Recipient
	Items          []Item
	ShippingMethod string

	// Totals are computed once at creation and never recalculated.
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	TaxAmount    decimal.Decimal
	Total        decimal.Decimal

	Status          OrderStatus
	PaymentIntentID string
	PaymentStatus   PaymentStatus
	PaidAt          *time.Time

	SupplierOrderID  *int64
	SupplierResponse json.RawMessage
	TrackingNumber   string
	TrackingURL      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderUpdate patches status and reference fields. Nil fields are left untouched.
type OrderUpdate struct {
	Status           *OrderStatus
	PaymentStatus    *PaymentStatus
	SupplierOrderID  *int64
	SupplierResponse json.RawMessage
	TrackingNumber   *string
	TrackingURL      *string
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.SupplierOrderID == nil &&
		u.SupplierResponse == nil && u.TrackingNumber == nil && u.TrackingURL == nil
}

// Apply returns a copy of o with the update applied.
func (u OrderUpdate) Apply(o Order) Order {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}
	if u.SupplierOrderID != nil {
		id := *u.SupplierOrderID
		o.SupplierOrderID = &id
	}
	if u.SupplierResponse != nil {
		o.SupplierResponse = u.SupplierResponse
	}
	if u.TrackingNumber != nil {
		o.TrackingNumber = *u.TrackingNumber
	}
	if u.TrackingURL != nil {
		o.TrackingURL = *u.TrackingURL
	}
	return o
}

type CreateOrderInput struct {
	Recipient       Recipient
	Items           []Item
	ShippingMethod  string
	ShippingCost    decimal.Decimal
	TaxAmount       decimal.Decimal
	PaymentIntentID string
}

// SupplierOrderRequest is the payload submitted to the supplier's order endpoint.
type SupplierOrderRequest struct {
	ExternalID     string
	ShippingMethod string
	Recipient      Recipient
	Items          []SupplierOrderItem
	RetailShipping decimal.Decimal
	RetailTax      decimal.Decimal
}

type SupplierOrderItem struct {
	VariantID   int64
	Quantity    int
	RetailPrice decimal.Decimal
	FileURL     string
}

type SupplierOrder struct {
	ID     int64
	Status string
	Raw    json.RawMessage
}
