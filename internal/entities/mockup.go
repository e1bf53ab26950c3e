package entities

// Dimensions are pixel sizes of an image or a print area.
type Dimensions struct {
	Width  float64
	Height float64
}

// PrintArea is the printable region of one placement on a product template.
type PrintArea struct {
	Placement string
	Width     float64
	Height    float64
}

// Placement is a design rectangle centered inside a print area.
type Placement struct {
	AreaWidth  int
	AreaHeight int
	Width      int
	Height     int
	Top        int
	Left       int
}

type PositionResult struct {
	Position    Placement
	PrintArea   PrintArea
	Design      Dimensions
	AspectRatio float64
}

type Variant struct {
	ID        int64
	ProductID int64
	Name      string
	Size      string
	Color     string
	Price     string
	InStock   bool
}

type Product struct {
	ID       int64
	Title    string
	Variants []Variant
}

func (p Product) VariantIDs() []int64 {
	ids := make([]int64, 0, len(p.Variants))
	for _, v := range p.Variants {
		ids = append(ids, v.ID)
	}
	return ids
}

type MockupTemplate struct {
	ID         int64
	PrintAreas []PrintArea
}

type MockupFile struct {
	Placement string
	ImageURL  string
	// Position is derived from the image and template when nil.
	Position *Placement
}

type MockupJobRequest struct {
	ProductID  int64
	VariantIDs []int64
	Files      []MockupFile
}

type MockupStatus string

const (
	MockupStatusPending   MockupStatus = "pending"
	MockupStatusCompleted MockupStatus = "completed"
	MockupStatusFailed    MockupStatus = "failed"
)

type Mockup struct {
	Placement  string
	VariantIDs []int64
	URL        string
}

type MockupJob struct {
	JobKey  string
	Status  MockupStatus
	Mockups []Mockup
	Error   string
}

func (j MockupJob) URLs() []string {
	urls := make([]string, 0, len(j.Mockups))
	for _, m := range j.Mockups {
		if m.URL != "" {
			urls = append(urls, m.URL)
		}
	}
	return urls
}

type GenerateMockupInput struct {
	ProductID   int64
	ImageURL    string
	Placement   string
	VariantIDs  []int64
	MaxVariants int
}

type MockupResult struct {
	JobKey     string
	VariantIDs []int64
	MockupURLs []string
}
