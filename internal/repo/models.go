package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`

	RecipientName string `db:"recipient_name"`
	Address1      string `db:"address1"`
	Address2      string `db:"address2"`
	City          string `db:"city"`
	StateCode     string `db:"state_code"`
	CountryCode   string `db:"country_code"`
	ZIP           string `db:"zip"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`

	ShippingMethod string          `db:"shipping_method"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	ShippingCost   decimal.Decimal `db:"shipping_cost"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	Total          decimal.Decimal `db:"total"`

	Status          string       `db:"status"`
	PaymentIntentID string       `db:"payment_intent_id"`
	PaymentStatus   string       `db:"payment_status"`
	PaidAt          sql.NullTime `db:"paid_at"`

	SupplierOrderID  sql.NullInt64 `db:"supplier_order_id"`
	SupplierResponse []byte        `db:"supplier_response"`
	TrackingNumber   string        `db:"tracking_number"`
	TrackingURL      string        `db:"tracking_url"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var orderColumns = []string{
	"id", "user_id",
	"recipient_name", "address1", "address2", "city", "state_code", "country_code", "zip", "email", "phone",
	"shipping_method", "subtotal", "shipping_cost", "tax_amount", "total",
	"status", "payment_intent_id", "payment_status", "paid_at",
	"supplier_order_id", "supplier_response", "tracking_number", "tracking_url",
	"created_at", "updated_at",
}

type Item struct {
	OrderID         string          `db:"order_id"`
	Position        int             `db:"position"`
	VariantID       int64           `db:"variant_id"`
	Quantity        int             `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
	ProductType     string          `db:"product_type"`
	CustomProductID string          `db:"custom_product_id"`
	DesignURL       string          `db:"design_url"`
}

var itemColumns = []string{
	"order_id", "position", "variant_id", "quantity", "unit_price", "product_type", "custom_product_id", "design_url",
}

type CustomProduct struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Name              string         `db:"name"`
	SupplierProductID int64          `db:"supplier_product_id"`
	VariantIDs        pq.Int64Array  `db:"variant_ids"`
	Placement         string         `db:"placement"`
	DesignURL         string         `db:"design_url"`
	MockupURLs        pq.StringArray `db:"mockup_urls"`
	Status            string         `db:"status"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

var customProductColumns = []string{
	"id", "user_id", "name", "supplier_product_id", "variant_ids", "placement",
	"design_url", "mockup_urls", "status", "created_at", "updated_at",
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:     o.ID,
		UserID: o.UserID,
		Recipient: entities.Recipient{
			Name:        o.RecipientName,
			Address1:    o.Address1,
			Address2:    o.Address2,
			City:        o.City,
			StateCode:   o.StateCode,
			CountryCode: o.CountryCode,
			ZIP:         o.ZIP,
			Email:       o.Email,
			Phone:       o.Phone,
		},
		ShippingMethod:  o.ShippingMethod,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		TaxAmount:       o.TaxAmount,
		Total:           o.Total,
		Status:          entities.OrderStatus(o.Status),
		PaymentIntentID: o.PaymentIntentID,
		PaymentStatus:   entities.PaymentStatus(o.PaymentStatus),
		TrackingNumber:  o.TrackingNumber,
		TrackingURL:     o.TrackingURL,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           make([]entities.Item, 0, len(items)),
	}
	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time
		order.PaidAt = &paidAt
	}
	if o.SupplierOrderID.Valid {
		id := o.SupplierOrderID.Int64
		order.SupplierOrderID = &id
	}
	if len(o.SupplierResponse) > 0 {
		order.SupplierResponse = json.RawMessage(o.SupplierResponse)
	}

	for _, it := range items {
		order.Items = append(order.Items, entities.Item{
			VariantID:       it.VariantID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			ProductType:     it.ProductType,
			CustomProductID: it.CustomProductID,
			DesignURL:       it.DesignURL,
		})
	}
	return order
}

func CustomProductToEntity(p CustomProduct) entities.CustomProduct {
	return entities.CustomProduct{
		ID:                p.ID,
		UserID:            p.UserID,
		Name:              p.Name,
		SupplierProductID: p.SupplierProductID,
		VariantIDs:        []int64(p.VariantIDs),
		Placement:         p.Placement,
		DesignURL:         p.DesignURL,
		MockupURLs:        []string(p.MockupURLs),
		Status:            entities.CustomProductStatus(p.Status),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// jsonb keeps empty payloads as SQL NULL.
func jsonb(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
