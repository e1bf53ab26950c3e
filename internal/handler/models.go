package handler

import (
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"

	"github.com/shopspring/decimal"
)

const defaultShippingMethod = "STANDARD"

// Recipient is the shipping address of an order
type Recipient struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address1    string `json:"address1" validate:"required,max=200"`
	Address2    string `json:"address2,omitempty" validate:"max=200"`
	City        string `json:"city" validate:"required"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code" validate:"required,iso3166_1_alpha2"`
	ZIP         string `json:"zip" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
}

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	VariantID       int64           `json:"variant_id" validate:"required,gt=0"`
	Quantity        int             `json:"quantity" validate:"required,gt=0,lte=1000"`
	UnitPrice       decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	ProductType     string          `json:"product_type,omitempty"`
	CustomProductID string          `json:"custom_product_id,omitempty"`
	DesignURL       string          `json:"design_url,omitempty"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	Recipient       Recipient          `json:"recipient" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	ShippingMethod  string             `json:"shipping_method,omitempty"`
	ShippingCost    decimal.Decimal    `json:"shipping_cost" swaggertype:"string" example:"4.99"`
	TaxAmount       decimal.Decimal    `json:"tax_amount" swaggertype:"string" example:"2.10"`
	PaymentIntentID string             `json:"payment_intent_id" validate:"required"`
}

// OrderItem is one line of a stored order
type OrderItem struct {
	VariantID       int64  `json:"variant_id"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	LineTotal       string `json:"line_total"`
	ProductType     string `json:"product_type,omitempty"`
	CustomProductID string `json:"custom_product_id,omitempty"`
	DesignURL       string `json:"design_url,omitempty"`
}

// Order is a customer order with its fulfillment state
type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentIntentID string      `json:"payment_intent_id"`
	Recipient       Recipient   `json:"recipient"`
	Items           []OrderItem `json:"items"`
	ShippingMethod  string      `json:"shipping_method"`
	Subtotal        string      `json:"subtotal"`
	ShippingCost    string      `json:"shipping_cost"`
	TaxAmount       string      `json:"tax_amount"`
	Total           string      `json:"total"`
	SupplierOrderID *int64      `json:"supplier_order_id,omitempty"`
	TrackingNumber  string      `json:"tracking_number,omitempty"`
	TrackingURL     string      `json:"tracking_url,omitempty"`
	PaidAt          *time.Time  `json:"paid_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type listQuery struct {
	Limit  int `validate:"gte=1,lte=100"`
	Offset int `validate:"gte=0"`
}

// Position is a design rectangle inside a print area, in pixels
type Position struct {
	AreaWidth  int `json:"area_width" validate:"gt=0"`
	AreaHeight int `json:"area_height" validate:"gt=0"`
	Width      int `json:"width" validate:"gt=0"`
	Height     int `json:"height" validate:"gt=0"`
	Top        int `json:"top" validate:"gte=0"`
	Left       int `json:"left" validate:"gte=0"`
}

type MockupFile struct {
	Placement string    `json:"placement" validate:"required"`
	ImageURL  string    `json:"image_url" validate:"required"`
	Position  *Position `json:"position,omitempty"`
}

// MockupJobRequest starts a mockup generation task
type MockupJobRequest struct {
	ProductID  int64        `json:"product_id" validate:"required,gt=0"`
	VariantIDs []int64      `json:"variant_ids" validate:"required,min=1,dive,gt=0"`
	Files      []MockupFile `json:"files" validate:"required,min=1,dive"`
}

type MockupJobResponse struct {
	JobKey string `json:"job_key"`
}

type Mockup struct {
	Placement  string  `json:"placement"`
	VariantIDs []int64 `json:"variant_ids"`
	MockupURL  string  `json:"mockup_url"`
}

// MockupStatus is the current state of a mockup task
type MockupStatus struct {
	JobKey  string   `json:"job_key"`
	Status  string   `json:"status"`
	Mockups []Mockup `json:"mockups"`
	Error   string   `json:"error,omitempty"`
}

// GenerateMockupRequest runs the whole mockup flow for one image
type GenerateMockupRequest struct {
	ProductID   int64   `json:"product_id" validate:"required,gt=0"`
	ImageURL    string  `json:"image_url" validate:"required"`
	Placement   string  `json:"placement,omitempty"`
	VariantIDs  []int64 `json:"variant_ids,omitempty" validate:"omitempty,dive,gt=0"`
	MaxVariants int     `json:"max_variants,omitempty" validate:"gte=0,lte=20"`
}

type GenerateMockupResponse struct {
	JobKey     string   `json:"job_key"`
	VariantIDs []int64  `json:"variant_ids"`
	MockupURLs []string `json:"mockup_urls"`
}

// PositionRequest asks for a placement either for an image URL or for explicit dimensions
type PositionRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Placement string  `json:"placement,omitempty"`
	ImageURL  string  `json:"image_url,omitempty" validate:"required_without_all=Width Height,omitempty,url"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
}

type PrintArea struct {
	Placement string  `json:"placement"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionResponse struct {
	Position    Position   `json:"position"`
	PrintArea   PrintArea  `json:"print_area"`
	Design      Dimensions `json:"design"`
	AspectRatio float64    `json:"aspect_ratio"`
}

// CreateCustomProductRequest saves a user design on a catalog product
type CreateCustomProductRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	ProductID  int64   `json:"product_id" validate:"required,gt=0"`
	VariantIDs []int64 `json:"variant_ids,omitempty" validate:"omitempty,dive,gt=0"`
	Placement  string  `json:"placement,omitempty"`
	DesignURL  string  `json:"design_url" validate:"required"`
}

type CustomProduct struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ProductID  int64     `json:"product_id"`
	VariantIDs []int64   `json:"variant_ids"`
	Placement  string    `json:"placement"`
	DesignURL  string    `json:"design_url"`
	MockupURLs []string  `json:"mockup_urls"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SupplierEventMessage is a supplier webhook relayed through Kafka
type SupplierEventMessage struct {
	Type string            `json:"type" validate:"required,oneof=package_shipped order_canceled order_failed"`
	Data SupplierEventData `json:"data" validate:"required"`
}

type SupplierEventData struct {
	Order    SupplierEventOrder `json:"order" validate:"required"`
	Shipment *SupplierShipment  `json:"shipment,omitempty"`
	Reason   string             `json:"reason,omitempty"`
}

type SupplierEventOrder struct {
	ID         int64  `json:"id" validate:"gte=0"`
	ExternalID string `json:"external_id" validate:"required"`
}

type SupplierShipment struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url" validate:"omitempty,url"`
}

func RecipientJSONToEntity(r Recipient) entities.Recipient {
	return entities.Recipient{
		Name:        r.Name,
		Address1:    r.Address1,
		Address2:    r.Address2,
		City:        r.City,
		StateCode:   r.StateCode,
		CountryCode: r.CountryCode,
		ZIP:         r.ZIP,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

func RecipientEntityToJSON(r entities.Recipient) Recipient {
	return Recipient{
		Name:        r.Name,
		Address1:    r.Address1,
		Address2:    r.Address2,
		City:        r.City,
		StateCode:   r.StateCode,
		CountryCode: r.CountryCode,
		ZIP:         r.ZIP,
		Email:       r.Email,
		Phone:       r.Phone,
	}
}

func CreateOrderJSONToEntity(req CreateOrderRequest) entities.CreateOrderInput {
	items := make([]entities.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.Item{
			VariantID:       it.VariantID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			ProductType:     it.ProductType,
			CustomProductID: it.CustomProductID,
			DesignURL:       it.DesignURL,
		})
	}

	method := req.ShippingMethod
	if method == "" {
		method = defaultShippingMethod
	}

	return entities.CreateOrderInput{
		Recipient:       RecipientJSONToEntity(req.Recipient),
		Items:           items,
		ShippingMethod:  method,
		ShippingCost:    req.ShippingCost,
		TaxAmount:       req.TaxAmount,
		PaymentIntentID: req.PaymentIntentID,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			VariantID:       it.VariantID,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice.StringFixed(2),
			LineTotal:       it.LineTotal().StringFixed(2),
			ProductType:     it.ProductType,
			CustomProductID: it.CustomProductID,
			DesignURL:       it.DesignURL,
		})
	}

	return Order{
		ID:              o.ID,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentIntentID: o.PaymentIntentID,
		Recipient:       RecipientEntityToJSON(o.Recipient),
		Items:           items,
		ShippingMethod:  o.ShippingMethod,
		Subtotal:        o.Subtotal.StringFixed(2),
		ShippingCost:    o.ShippingCost.StringFixed(2),
		TaxAmount:       o.TaxAmount.StringFixed(2),
		Total:           o.Total.StringFixed(2),
		SupplierOrderID: o.SupplierOrderID,
		TrackingNumber:  o.TrackingNumber,
		TrackingURL:     o.TrackingURL,
		PaidAt:          o.PaidAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func PositionEntityToJSON(p entities.Placement) Position {
	return Position{
		AreaWidth:  p.AreaWidth,
		AreaHeight: p.AreaHeight,
		Width:      p.Width,
		Height:     p.Height,
		Top:        p.Top,
		Left:       p.Left,
	}
}

func PositionJSONToEntity(p Position) entities.Placement {
	return entities.Placement{
		AreaWidth:  p.AreaWidth,
		AreaHeight: p.AreaHeight,
		Width:      p.Width,
		Height:     p.Height,
		Top:        p.Top,
		Left:       p.Left,
	}
}

func MockupJobJSONToEntity(req MockupJobRequest) entities.MockupJobRequest {
	files := make([]entities.MockupFile, 0, len(req.Files))
	for _, f := range req.Files {
		file := entities.MockupFile{Placement: f.Placement, ImageURL: f.ImageURL}
		if f.Position != nil {
			pos := PositionJSONToEntity(*f.Position)
			file.Position = &pos
		}
		files = append(files, file)
	}
	return entities.MockupJobRequest{
		ProductID:  req.ProductID,
		VariantIDs: req.VariantIDs,
		Files:      files,
	}
}

func MockupStatusEntityToJSON(j entities.MockupJob) MockupStatus {
	mockups := make([]Mockup, 0, len(j.Mockups))
	for _, m := range j.Mockups {
		mockups = append(mockups, Mockup{Placement: m.Placement, VariantIDs: m.VariantIDs, MockupURL: m.URL})
	}
	return MockupStatus{
		JobKey:  j.JobKey,
		Status:  string(j.Status),
		Mockups: mockups,
		Error:   j.Error,
	}
}

func PositionResultEntityToJSON(r entities.PositionResult) PositionResponse {
	return PositionResponse{
		Position: PositionEntityToJSON(r.Position),
		PrintArea: PrintArea{
			Placement: r.PrintArea.Placement,
			Width:     r.PrintArea.Width,
			Height:    r.PrintArea.Height,
		},
		Design:      Dimensions{Width: r.Design.Width, Height: r.Design.Height},
		AspectRatio: r.AspectRatio,
	}
}

func CustomProductEntityToJSON(p entities.CustomProduct) CustomProduct {
	return CustomProduct{
		ID:         p.ID,
		Name:       p.Name,
		ProductID:  p.SupplierProductID,
		VariantIDs: p.VariantIDs,
		Placement:  p.Placement,
		DesignURL:  p.DesignURL,
		MockupURLs: p.MockupURLs,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func SupplierEventJSONToEntity(m SupplierEventMessage) entities.SupplierEvent {
	ev := entities.SupplierEvent{
		Type:            entities.SupplierEventType(m.Type),
		OrderID:         m.Data.Order.ExternalID,
		SupplierOrderID: m.Data.Order.ID,
		Reason:          m.Data.Reason,
	}
	if m.Data.Shipment != nil {
		ev.TrackingNumber = m.Data.Shipment.TrackingNumber
		ev.TrackingURL = m.Data.Shipment.TrackingURL
	}
	return ev
}
