package handler

import (
	"context"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/middleware"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const defaultListLimit = 20

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, in entities.CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
}

type MockupService interface {
	SubmitMockupJob(ctx context.Context, req entities.MockupJobRequest) (string, error)
	GetMockupStatus(ctx context.Context, jobKey string) (entities.MockupJob, error)
	GenerateMockup(ctx context.Context, in entities.GenerateMockupInput) (entities.MockupResult, error)
	CalculatePosition(ctx context.Context, productID int64, placement string, design entities.Dimensions) (entities.PositionResult, error)
	CalculateImagePosition(ctx context.Context, productID int64, placement, imageURL string) (entities.PositionResult, error)
}

type CustomProductService interface {
	CreateCustomProduct(ctx context.Context, userID string, in entities.CreateCustomProductInput) (entities.CustomProduct, error)
	GetCustomProduct(ctx context.Context, userID, id string) (entities.CustomProduct, error)
	ListCustomProducts(ctx context.Context, userID string) ([]entities.CustomProduct, error)
	GenerateCustomProductMockups(ctx context.Context, userID, id string) (entities.CustomProduct, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	mockups  MockupService
	products CustomProductService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, mockups MockupService, products CustomProductService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		orders:   orders,
		mockups:  mockups,
		products: products,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/", h.ListOrders)
			r.Get("/{order_id}", h.GetOrder)
		})

		r.Route("/mockups", func(r chi.Router) {
			r.Post("/", h.SubmitMockupJob)
			r.Post("/generate", h.GenerateMockup)
			r.Post("/position", h.CalculatePosition)
			r.Get("/{job_key}", h.GetMockupStatus)
		})

		r.Route("/custom-products", func(r chi.Router) {
			r.Post("/", h.CreateCustomProduct)
			r.Get("/", h.ListCustomProducts)
			r.Get("/{id}", h.GetCustomProduct)
			r.Post("/{id}/mockups", h.GenerateCustomProductMockups)
		})
	})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads and validates a JSON body; it writes the 400 response itself and reports false on failure.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// CreateOrder confirms payment and places an order.
// @Summary      Create order
// @Description  Confirms the payment intent, stores the order and submits it to the supplier in the background
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true  "Caller id"
// @Param        order      body      CreateOrderRequest  true  "Order"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Missing caller id"
// @Failure      402  {object}  utils.ErrorResponse "Payment not confirmed"
// @Failure      409  {object}  utils.ErrorResponse "Payment already used"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), middleware.UserID(r.Context()), CreateOrderJSONToEntity(req))
	if err != nil {
		h.writeServiceError(w, r, "create order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders returns the caller's orders, newest first.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header    string  true   "Caller id"
// @Param        limit      query     int     false  "Page size (1-100)"
// @Param        offset     query     int     false  "Offset"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := listQuery{Limit: defaultListLimit}
	var err error
	if v := r.URL.Query().Get("limit"); v != "" {
		if q.Limit, err = strconv.Atoi(v); err != nil {
			utils.WriteError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if q.Offset, err = strconv.Atoi(v); err != nil {
			utils.WriteError(w, "offset must be an integer", http.StatusBadRequest)
			return
		}
	}
	if err := h.validate.Struct(q); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), middleware.UserID(r.Context()), q.Limit, q.Offset)
	if err != nil {
		h.writeServiceError(w, r, "list orders", err)
		return
	}

	res := OrderList{Orders: make([]Order, 0, len(orders)), Limit: q.Limit, Offset: q.Offset}
	for _, o := range orders {
		res.Orders = append(res.Orders, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder returns one of the caller's orders.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        order_id   path      string  true  "Order id"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Order belongs to another user"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	order, err := h.orders.GetOrder(r.Context(), middleware.UserID(r.Context()), orderID)
	if err != nil {
		h.writeServiceError(w, r, "get order", err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SubmitMockupJob starts a mockup task.
// @Summary      Submit mockup job
// @Description  Validates variants, uploads embedded images, derives missing positions and starts a supplier mockup task
// @Tags         mockups
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string            true  "Caller id"
// @Param        job        body      MockupJobRequest  true  "Mockup job"
// @Success      202  {object}  MockupJobResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid variants or files"
// @Failure      502  {object}  utils.ErrorResponse "Supplier rejected the task"
// @Router       /mockups [post]
func (h *HTTPHandler) SubmitMockupJob(w http.ResponseWriter, r *http.Request) {
	var req MockupJobRequest
	if !h.decode(w, r, &req) {
		return
	}

	jobKey, err := h.mockups.SubmitMockupJob(r.Context(), MockupJobJSONToEntity(req))
	if err != nil {
		h.writeServiceError(w, r, "submit mockup job", err)
		return
	}

	utils.WriteJSON(w, MockupJobResponse{JobKey: jobKey}, http.StatusAccepted)
}

// GetMockupStatus reports the state of a mockup task.
// @Summary      Get mockup status
// @Tags         mockups
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        job_key    path      string  true  "Job key"
// @Success      200  {object}  MockupStatus
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /mockups/{job_key} [get]
func (h *HTTPHandler) GetMockupStatus(w http.ResponseWriter, r *http.Request) {
	jobKey := chi.URLParam(r, "job_key")

	job, err := h.mockups.GetMockupStatus(r.Context(), jobKey)
	if err != nil {
		h.writeServiceError(w, r, "get mockup status", err)
		return
	}

	utils.WriteJSON(w, MockupStatusEntityToJSON(job), http.StatusOK)
}

// GenerateMockup runs the full mockup flow and waits for the result.
// @Summary      Generate mockup
// @Description  Picks variants when none are given, submits a task and polls it until completion
// @Tags         mockups
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                 true  "Caller id"
// @Param        request    body      GenerateMockupRequest  true  "Image and product"
// @Success      200  {object}  GenerateMockupResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid request"
// @Failure      502  {object}  utils.ErrorResponse "Mockup generation failed"
// @Failure      504  {object}  utils.ErrorResponse "Still pending, details carry the job key"
// @Router       /mockups/generate [post]
func (h *HTTPHandler) GenerateMockup(w http.ResponseWriter, r *http.Request) {
	var req GenerateMockupRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.mockups.GenerateMockup(r.Context(), entities.GenerateMockupInput{
		ProductID:   req.ProductID,
		ImageURL:    req.ImageURL,
		Placement:   req.Placement,
		VariantIDs:  req.VariantIDs,
		MaxVariants: req.MaxVariants,
	})
	if err != nil {
		h.writeServiceError(w, r, "generate mockup", err)
		return
	}

	utils.WriteJSON(w, GenerateMockupResponse{
		JobKey:     res.JobKey,
		VariantIDs: res.VariantIDs,
		MockupURLs: res.MockupURLs,
	}, http.StatusOK)
}

// CalculatePosition fits a design into a product's print area.
// @Summary      Calculate design position
// @Description  Uses the image at image_url, or the given width and height, to center the design in the print area
// @Tags         mockups
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string           true  "Caller id"
// @Param        request    body      PositionRequest  true  "Design"
// @Success      200  {object}  PositionResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid dimensions or unreadable image"
// @Router       /mockups/position [post]
func (h *HTTPHandler) CalculatePosition(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !h.decode(w, r, &req) {
		return
	}

	var (
		res entities.PositionResult
		err error
	)
	if req.ImageURL != "" {
		res, err = h.mockups.CalculateImagePosition(r.Context(), req.ProductID, req.Placement, req.ImageURL)
	} else {
		res, err = h.mockups.CalculatePosition(r.Context(), req.ProductID, req.Placement,
			entities.Dimensions{Width: req.Width, Height: req.Height})
	}
	if err != nil {
		h.writeServiceError(w, r, "calculate position", err)
		return
	}

	utils.WriteJSON(w, PositionResultEntityToJSON(res), http.StatusOK)
}

// CreateCustomProduct saves a design on a catalog product.
// @Summary      Create custom product
// @Tags         custom-products
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                      true  "Caller id"
// @Param        product    body      CreateCustomProductRequest  true  "Custom product"
// @Success      201  {object}  CustomProduct
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /custom-products [post]
func (h *HTTPHandler) CreateCustomProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.products.CreateCustomProduct(r.Context(), middleware.UserID(r.Context()), entities.CreateCustomProductInput{
		Name:              req.Name,
		SupplierProductID: req.ProductID,
		VariantIDs:        req.VariantIDs,
		Placement:         req.Placement,
		DesignURL:         req.DesignURL,
	})
	if err != nil {
		h.writeServiceError(w, r, "create custom product", err)
		return
	}

	utils.WriteJSON(w, CustomProductEntityToJSON(p), http.StatusCreated)
}

// ListCustomProducts returns the caller's custom products, newest first.
// @Summary      List custom products
// @Tags         custom-products
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Success      200  {array}   CustomProduct
// @Router       /custom-products [get]
func (h *HTTPHandler) ListCustomProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListCustomProducts(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.writeServiceError(w, r, "list custom products", err)
		return
	}

	res := make([]CustomProduct, 0, len(products))
	for _, p := range products {
		res = append(res, CustomProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetCustomProduct returns one of the caller's custom products.
// @Summary      Get custom product
// @Tags         custom-products
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        id         path      string  true  "Custom product id"
// @Success      200  {object}  CustomProduct
// @Failure      403  {object}  utils.ErrorResponse "Belongs to another user"
// @Failure      404  {object}  utils.ErrorResponse "Not found"
// @Router       /custom-products/{id} [get]
func (h *HTTPHandler) GetCustomProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteError(w, "custom product not found", http.StatusNotFound)
		return
	}

	p, err := h.products.GetCustomProduct(r.Context(), middleware.UserID(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, r, "get custom product", err)
		return
	}

	utils.WriteJSON(w, CustomProductEntityToJSON(p), http.StatusOK)
}

// GenerateCustomProductMockups renders and stores mockups for a custom product.
// @Summary      Generate custom product mockups
// @Tags         custom-products
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller id"
// @Param        id         path      string  true  "Custom product id"
// @Success      200  {object}  CustomProduct
// @Failure      404  {object}  utils.ErrorResponse "Not found"
// @Failure      502  {object}  utils.ErrorResponse "Mockup generation failed"
// @Failure      504  {object}  utils.ErrorResponse "Still pending, details carry the job key"
// @Router       /custom-products/{id}/mockups [post]
func (h *HTTPHandler) GenerateCustomProductMockups(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required,uuid"); err != nil {
		utils.WriteError(w, "custom product not found", http.StatusNotFound)
		return
	}

	p, err := h.products.GenerateCustomProductMockups(r.Context(), middleware.UserID(r.Context()), id)
	if err != nil {
		h.writeServiceError(w, r, "generate custom product mockups", err)
		return
	}

	utils.WriteJSON(w, CustomProductEntityToJSON(p), http.StatusOK)
}
