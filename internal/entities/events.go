package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated    OrderEventType = "order.created"
	OrderEventProcessing OrderEventType = "order.processing"
	OrderEventFailed     OrderEventType = "order.failed"
	OrderEventRefunded   OrderEventType = "order.refunded"
	OrderEventShipped    OrderEventType = "order.shipped"
	OrderEventCancelled  OrderEventType = "order.cancelled"
)

type OrderEvent struct {
	Type            OrderEventType
	OrderID         string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	SupplierOrderID *int64
	OccurredAt      time.Time
}

type SupplierEventType string

const (
	SupplierEventPackageShipped SupplierEventType = "package_shipped"
	SupplierEventOrderCanceled  SupplierEventType = "order_canceled"
	SupplierEventOrderFailed    SupplierEventType = "order_failed"
)

// SupplierEvent is a supplier webhook notification relayed to the service.
type SupplierEvent struct {
	Type            SupplierEventType
	OrderID         string
	SupplierOrderID int64
	TrackingNumber  string
	TrackingURL     string
	Reason          string
}
