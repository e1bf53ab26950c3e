package supplier

import (
	"encoding/json"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
)

type envelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type productResult struct {
	Product struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	} `json:"product"`
	Variants []variantModel `json:"variants"`
}

type variantModel struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Price     string `json:"price"`
	InStock   bool   `json:"in_stock"`
}

func (r productResult) toEntity() entities.Product {
	p := entities.Product{
		ID:       r.Product.ID,
		Title:    r.Product.Title,
		Variants: make([]entities.Variant, 0, len(r.Variants)),
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, entities.Variant{
			ID:        v.ID,
			ProductID: v.ProductID,
			Name:      v.Name,
			Size:      v.Size,
			Color:     v.Color,
			Price:     v.Price,
			InStock:   v.InStock,
		})
	}
	return p
}

type templatesResult struct {
	Templates []struct {
		TemplateID int64 `json:"template_id"`
		PrintAreas []struct {
			Placement string  `json:"placement"`
			Width     float64 `json:"width"`
			Height    float64 `json:"height"`
		} `json:"print_areas"`
	} `json:"templates"`
}

func (r templatesResult) toEntity() []entities.MockupTemplate {
	out := make([]entities.MockupTemplate, 0, len(r.Templates))
	for _, t := range r.Templates {
		tpl := entities.MockupTemplate{ID: t.TemplateID, PrintAreas: make([]entities.PrintArea, 0, len(t.PrintAreas))}
		for _, pa := range t.PrintAreas {
			tpl.PrintAreas = append(tpl.PrintAreas, entities.PrintArea{Placement: pa.Placement, Width: pa.Width, Height: pa.Height})
		}
		out = append(out, tpl)
	}
	return out
}

type positionModel struct {
	AreaWidth  int `json:"area_width"`
	AreaHeight int `json:"area_height"`
	Width      int `json:"width"`
	Height     int `json:"height"`
	Top        int `json:"top"`
	Left       int `json:"left"`
}

type mockupFileModel struct {
	Placement string         `json:"placement"`
	ImageURL  string         `json:"image_url"`
	Position  *positionModel `json:"position,omitempty"`
}

type createTaskRequest struct {
	VariantIDs []int64           `json:"variant_ids"`
	Format     string            `json:"format"`
	Files      []mockupFileModel `json:"files"`
}

func newCreateTaskRequest(req entities.MockupJobRequest) createTaskRequest {
	body := createTaskRequest{
		VariantIDs: req.VariantIDs,
		Format:     "jpg",
		Files:      make([]mockupFileModel, 0, len(req.Files)),
	}
	for _, f := range req.Files {
		file := mockupFileModel{Placement: f.Placement, ImageURL: f.ImageURL}
		if p := f.Position; p != nil {
			file.Position = &positionModel{
				AreaWidth:  p.AreaWidth,
				AreaHeight: p.AreaHeight,
				Width:      p.Width,
				Height:     p.Height,
				Top:        p.Top,
				Left:       p.Left,
			}
		}
		body.Files = append(body.Files, file)
	}
	return body
}

type taskResult struct {
	TaskKey string `json:"task_key"`
	Status  string `json:"status"`
	Mockups []struct {
		Placement  string  `json:"placement"`
		VariantIDs []int64 `json:"variant_ids"`
		MockupURL  string  `json:"mockup_url"`
	} `json:"mockups"`
	Error string `json:"error"`
}

func (r taskResult) toEntity() entities.MockupJob {
	job := entities.MockupJob{
		JobKey:  r.TaskKey,
		Status:  mockupStatus(r.Status),
		Mockups: make([]entities.Mockup, 0, len(r.Mockups)),
		Error:   r.Error,
	}
	for _, m := range r.Mockups {
		job.Mockups = append(job.Mockups, entities.Mockup{Placement: m.Placement, VariantIDs: m.VariantIDs, URL: m.MockupURL})
	}
	return job
}

// mockupStatus maps supplier task states; anything unrecognized is still in progress.
func mockupStatus(s string) entities.MockupStatus {
	switch s {
	case "completed":
		return entities.MockupStatusCompleted
	case "failed":
		return entities.MockupStatusFailed
	default:
		return entities.MockupStatusPending
	}
}

type orderRecipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	ZIP         string `json:"zip"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

type orderFile struct {
	URL string `json:"url"`
}

type orderItem struct {
	VariantID   int64       `json:"variant_id"`
	Quantity    int         `json:"quantity"`
	RetailPrice string      `json:"retail_price"`
	Files       []orderFile `json:"files,omitempty"`
}

type createOrderRequest struct {
	ExternalID  string         `json:"external_id"`
	Shipping    string         `json:"shipping,omitempty"`
	Recipient   orderRecipient `json:"recipient"`
	Items       []orderItem    `json:"items"`
	RetailCosts struct {
		Shipping string `json:"shipping"`
		Tax      string `json:"tax"`
	} `json:"retail_costs"`
}

func newCreateOrderRequest(req entities.SupplierOrderRequest) createOrderRequest {
	r := req.Recipient
	body := createOrderRequest{
		ExternalID: req.ExternalID,
		Shipping:   req.ShippingMethod,
		Recipient: orderRecipient{
			Name:        r.Name,
			Address1:    r.Address1,
			Address2:    r.Address2,
			City:        r.City,
			StateCode:   r.StateCode,
			CountryCode: r.CountryCode,
			ZIP:         r.ZIP,
			Email:       r.Email,
			Phone:       r.Phone,
		},
		Items: make([]orderItem, 0, len(req.Items)),
	}
	body.RetailCosts.Shipping = req.RetailShipping.StringFixed(2)
	body.RetailCosts.Tax = req.RetailTax.StringFixed(2)

	for _, it := range req.Items {
		item := orderItem{VariantID: it.VariantID, Quantity: it.Quantity, RetailPrice: it.RetailPrice.StringFixed(2)}
		if it.FileURL != "" {
			item.Files = []orderFile{{URL: it.FileURL}}
		}
		body.Items = append(body.Items, item)
	}
	return body
}

type orderResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
