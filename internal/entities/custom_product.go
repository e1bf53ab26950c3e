package entities

import "time"

type CustomProductStatus string

const (
	CustomProductStatusDraft       CustomProductStatus = "draft"
	CustomProductStatusMockupReady CustomProductStatus = "mockup_ready"
)

type CustomProduct struct {
	ID                string
	UserID            string
	Name              string
	SupplierProductID int64
	VariantIDs        []int64
	Placement         string
	DesignURL         string
	MockupURLs        []string
	Status            CustomProductStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CreateCustomProductInput struct {
	Name              string
	SupplierProductID int64
	VariantIDs        []int64
	Placement         string
	DesignURL         string
}
