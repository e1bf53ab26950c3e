// Package placement fits a design into a print area while preserving its aspect ratio.
package placement

import (
	"fmt"
	"math"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
)

const (
	DefaultAreaWidth  = 1800
	DefaultAreaHeight = 2400
)

// Compute scales the design to touch at least one full edge of the print area
// without exceeding it, and centers it. All values are rounded to whole pixels.
func Compute(area entities.PrintArea, design entities.Dimensions) (entities.Placement, error) {
	if err := validate("print area width", area.Width); err != nil {
		return entities.Placement{}, err
	}
	if err := validate("print area height", area.Height); err != nil {
		return entities.Placement{}, err
	}
	if err := validate("design width", design.Width); err != nil {
		return entities.Placement{}, err
	}
	if err := validate("design height", design.Height); err != nil {
		return entities.Placement{}, err
	}

	designRatio := design.Width / design.Height
	areaRatio := area.Width / area.Height

	var width, height float64
	if designRatio > areaRatio {
		width = area.Width
		height = area.Width / designRatio
	} else {
		height = area.Height
		width = area.Height * designRatio
	}

	p := entities.Placement{
		AreaWidth:  round(area.Width),
		AreaHeight: round(area.Height),
		Width:      round(width),
		Height:     round(height),
	}
	p.Width = min(p.Width, p.AreaWidth)
	p.Height = min(p.Height, p.AreaHeight)

	// offsets come from the rounded size so the rectangle never crosses the area edge
	p.Left = round(float64(p.AreaWidth-p.Width) / 2)
	p.Top = round(float64(p.AreaHeight-p.Height) / 2)
	return p, nil
}

// Default is the full-bleed rectangle used when a position cannot be derived.
func Default() entities.Placement {
	return entities.Placement{
		AreaWidth:  DefaultAreaWidth,
		AreaHeight: DefaultAreaHeight,
		Width:      DefaultAreaWidth,
		Height:     DefaultAreaHeight,
	}
}

func validate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive finite number, got %v", entities.ErrInvalidDimension, name, v)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
