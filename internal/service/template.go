package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/placement"
)

const (
	placementDefault = "default"
	placementFront   = "front"
)

// ResolvePrintArea picks the print area for placement from the product's first mockup template.
// An unknown placement falls back to the template's first area.
func (s *mockupService) ResolvePrintArea(ctx context.Context, productID int64, name string) (entities.PrintArea, error) {
	templates, err := s.supplier.GetMockupTemplates(ctx, productID)
	if err != nil {
		return entities.PrintArea{}, fmt.Errorf("failed to get mockup templates: %w", err)
	}
	if len(templates) == 0 {
		return entities.PrintArea{}, fmt.Errorf("%w: product %d", entities.ErrTemplateNotFound, productID)
	}

	areas := templates[0].PrintAreas
	if len(areas) == 0 {
		return entities.PrintArea{}, fmt.Errorf("%w: template %d", entities.ErrPrintAreaNotFound, templates[0].ID)
	}

	if name == "" {
		name = placementDefault
	}

	area := areas[0]
	found := false
	for _, a := range areas {
		if a.Placement == name || (name == placementFront && a.Placement == placementDefault) {
			area, found = a, true
			break
		}
	}
	if !found {
		s.logger.Warn("placement not found in template, using first print area",
			slog.Int64("product_id", productID),
			slog.String("placement", name),
			slog.String("used", area.Placement),
		)
	}

	if area.Width <= 0 {
		area.Width = placement.DefaultAreaWidth
	}
	if area.Height <= 0 {
		area.Height = placement.DefaultAreaHeight
	}
	return area, nil
}

// CalculatePosition fits a design of the given size into the product's print area.
func (s *mockupService) CalculatePosition(ctx context.Context, productID int64, name string, design entities.Dimensions) (entities.PositionResult, error) {
	area, err := s.ResolvePrintArea(ctx, productID, name)
	if err != nil {
		return entities.PositionResult{}, err
	}

	pos, err := placement.Compute(area, design)
	if err != nil {
		return entities.PositionResult{}, err
	}

	return entities.PositionResult{
		Position:    pos,
		PrintArea:   area,
		Design:      design,
		AspectRatio: design.Width / design.Height,
	}, nil
}

// CalculateImagePosition probes the image at imageURL and positions it.
func (s *mockupService) CalculateImagePosition(ctx context.Context, productID int64, name, imageURL string) (entities.PositionResult, error) {
	design, err := s.prober.Probe(ctx, imageURL)
	if err != nil {
		return entities.PositionResult{}, err
	}
	return s.CalculatePosition(ctx, productID, name, design)
}
