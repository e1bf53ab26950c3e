package placement_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/placement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name   string
		area   entities.PrintArea
		design entities.Dimensions
		want   entities.Placement
	}{
		{
			name:   "same aspect ratio fills the area",
			area:   entities.PrintArea{Width: 1800, Height: 2400},
			design: entities.Dimensions{Width: 900, Height: 1200},
			want:   entities.Placement{AreaWidth: 1800, AreaHeight: 2400, Width: 1800, Height: 2400},
		},
		{
			name:   "wide design fits to width",
			area:   entities.PrintArea{Width: 1800, Height: 2400},
			design: entities.Dimensions{Width: 2000, Height: 1000},
			want:   entities.Placement{AreaWidth: 1800, AreaHeight: 2400, Width: 1800, Height: 900, Top: 750, Left: 0},
		},
		{
			name:   "tall design fits to height",
			area:   entities.PrintArea{Width: 1800, Height: 2400},
			design: entities.Dimensions{Width: 500, Height: 1000},
			want:   entities.Placement{AreaWidth: 1800, AreaHeight: 2400, Width: 1200, Height: 2400, Top: 0, Left: 300},
		},
		{
			name:   "square design in landscape area",
			area:   entities.PrintArea{Width: 3000, Height: 1000},
			design: entities.Dimensions{Width: 512, Height: 512},
			want:   entities.Placement{AreaWidth: 3000, AreaHeight: 1000, Width: 1000, Height: 1000, Top: 0, Left: 1000},
		},
		{
			name:   "odd remainder is rounded",
			area:   entities.PrintArea{Width: 1801, Height: 2400},
			design: entities.Dimensions{Width: 1, Height: 1},
			want:   entities.Placement{AreaWidth: 1801, AreaHeight: 2400, Width: 1801, Height: 1801, Top: 300, Left: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := placement.Compute(tc.area, tc.design)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompute_InvalidDimensions(t *testing.T) {
	valid := entities.Dimensions{Width: 100, Height: 100}
	area := entities.PrintArea{Width: 1800, Height: 2400}

	testCases := []struct {
		name   string
		area   entities.PrintArea
		design entities.Dimensions
	}{
		{name: "zero area width", area: entities.PrintArea{Width: 0, Height: 2400}, design: valid},
		{name: "negative area height", area: entities.PrintArea{Width: 1800, Height: -1}, design: valid},
		{name: "zero design width", area: area, design: entities.Dimensions{Width: 0, Height: 10}},
		{name: "NaN design height", area: area, design: entities.Dimensions{Width: 10, Height: math.NaN()}},
		{name: "infinite design width", area: area, design: entities.Dimensions{Width: math.Inf(1), Height: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := placement.Compute(tc.area, tc.design)
			assert.ErrorIs(t, err, entities.ErrInvalidDimension)
		})
	}
}

func TestCompute_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for range 5000 {
		area := entities.PrintArea{
			Width:  float64(rnd.Intn(5000) + 1),
			Height: float64(rnd.Intn(5000) + 1),
		}
		design := entities.Dimensions{
			Width:  float64(rnd.Intn(8000) + 1),
			Height: float64(rnd.Intn(8000) + 1),
		}

		p, err := placement.Compute(area, design)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.Left, 0)
		assert.GreaterOrEqual(t, p.Top, 0)
		assert.LessOrEqual(t, p.Left+p.Width, p.AreaWidth, "area %v design %v", area, design)
		assert.LessOrEqual(t, p.Top+p.Height, p.AreaHeight, "area %v design %v", area, design)
		assert.Equal(t, int(math.Round(float64(p.AreaWidth-p.Width)/2)), p.Left)
		assert.Equal(t, int(math.Round(float64(p.AreaHeight-p.Height)/2)), p.Top)
		assert.True(t, p.Width == p.AreaWidth || p.Height == p.AreaHeight, "area %v design %v -> %+v", area, design, p)

		ratio := design.Width / design.Height
		widthErr := math.Abs(float64(p.Width) - float64(p.Height)*ratio)
		heightErr := math.Abs(float64(p.Height) - float64(p.Width)/ratio)
		assert.True(t, widthErr <= 1 || heightErr <= 1, "aspect drift for area %v design %v -> %+v", area, design, p)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	area := entities.PrintArea{Width: 1234, Height: 987}
	design := entities.Dimensions{Width: 333, Height: 777}

	first, err := placement.Compute(area, design)
	require.NoError(t, err)
	second, err := placement.Compute(area, design)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDefault(t *testing.T) {
	assert.Equal(t, entities.Placement{AreaWidth: 1800, AreaHeight: 2400, Width: 1800, Height: 2400}, placement.Default())
}
