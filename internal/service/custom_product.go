package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"

	"github.com/google/uuid"
)

type CustomProductRepo interface {
	CreateCustomProduct(ctx context.Context, p entities.CustomProduct) error
	GetCustomProduct(ctx context.Context, id string) (entities.CustomProduct, error)
	ListUserCustomProducts(ctx context.Context, userID string) ([]entities.CustomProduct, error)
	SaveCustomProductMockups(ctx context.Context, id string, urls []string, status entities.CustomProductStatus) error
}

type MockupGenerator interface {
	GenerateMockup(ctx context.Context, in entities.GenerateMockupInput) (entities.MockupResult, error)
}

type customProductService struct {
	logger   *slog.Logger
	repo     CustomProductRepo
	mockups  MockupGenerator
	uploader Uploader
	folder   string
	now      func() time.Time
}

func NewCustomProductService(logger *slog.Logger, repo CustomProductRepo, mockups MockupGenerator, uploader Uploader, designsFolder string) *customProductService {
	if designsFolder == "" {
		designsFolder = "designs"
	}
	return &customProductService{
		logger:   logger.With(slog.String("service", "custom_product")),
		repo:     repo,
		mockups:  mockups,
		uploader: uploader,
		folder:   designsFolder,
		now:      time.Now,
	}
}

// CreateCustomProduct stores a draft product. An embedded design is uploaded so
// the stored record always points at a public URL.
func (s *customProductService) CreateCustomProduct(ctx context.Context, userID string, in entities.CreateCustomProductInput) (entities.CustomProduct, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entities.CustomProduct{}, fmt.Errorf("%w: name is required", entities.ErrInvalidCustomProduct)
	}
	if in.SupplierProductID <= 0 {
		return entities.CustomProduct{}, fmt.Errorf("%w: product id must be positive", entities.ErrInvalidCustomProduct)
	}

	designURL, err := publishDesign(ctx, s.uploader, s.folder, in.DesignURL)
	if err != nil {
		return entities.CustomProduct{}, err
	}

	placementName := in.Placement
	if placementName == "" {
		placementName = placementFront
	}

	now := s.now().UTC()
	p := entities.CustomProduct{
		ID:                uuid.NewString(),
		UserID:            userID,
		Name:              strings.TrimSpace(in.Name),
		SupplierProductID: in.SupplierProductID,
		VariantIDs:        in.VariantIDs,
		Placement:         placementName,
		DesignURL:         designURL,
		MockupURLs:        []string{},
		Status:            entities.CustomProductStatusDraft,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if p.VariantIDs == nil {
		p.VariantIDs = []int64{}
	}

	if err := s.repo.CreateCustomProduct(ctx, p); err != nil {
		return entities.CustomProduct{}, err
	}
	s.logger.Info("custom product created", slog.String("id", p.ID), slog.Int64("product_id", p.SupplierProductID))
	return p, nil
}

func (s *customProductService) GetCustomProduct(ctx context.Context, userID, id string) (entities.CustomProduct, error) {
	p, err := s.repo.GetCustomProduct(ctx, id)
	if err != nil {
		return entities.CustomProduct{}, err
	}
	if p.UserID != userID {
		return entities.CustomProduct{}, entities.ErrForbidden
	}
	return p, nil
}

func (s *customProductService) ListCustomProducts(ctx context.Context, userID string) ([]entities.CustomProduct, error) {
	return s.repo.ListUserCustomProducts(ctx, userID)
}

// GenerateCustomProductMockups renders mockups for the product's design and stores their URLs.
func (s *customProductService) GenerateCustomProductMockups(ctx context.Context, userID, id string) (entities.CustomProduct, error) {
	p, err := s.GetCustomProduct(ctx, userID, id)
	if err != nil {
		return entities.CustomProduct{}, err
	}

	res, err := s.mockups.GenerateMockup(ctx, entities.GenerateMockupInput{
		ProductID:  p.SupplierProductID,
		ImageURL:   p.DesignURL,
		Placement:  p.Placement,
		VariantIDs: p.VariantIDs,
	})
	if err != nil {
		return entities.CustomProduct{}, err
	}

	if err := s.repo.SaveCustomProductMockups(ctx, p.ID, res.MockupURLs, entities.CustomProductStatusMockupReady); err != nil {
		return entities.CustomProduct{}, err
	}

	s.logger.Info("custom product mockups stored",
		slog.String("id", p.ID), slog.String("job_key", res.JobKey), slog.Int("mockups", len(res.MockupURLs)))

	p.MockupURLs = res.MockupURLs
	p.Status = entities.CustomProductStatusMockupReady
	p.UpdatedAt = s.now().UTC()
	return p, nil
}
