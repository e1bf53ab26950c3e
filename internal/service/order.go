package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	lockStripes = 64
	// terminalWriteTimeout bounds status writes that must happen after the submission deadline.
	terminalWriteTimeout = 30 * time.Second
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error)
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) error
}

type PaymentProvider interface {
	ConfirmPayment(ctx context.Context, intentID string) (bool, error)
	RefundPayment(ctx context.Context, req entities.RefundRequest) (entities.Refund, error)
}

type OrderSupplier interface {
	CreateOrder(ctx context.Context, req entities.SupplierOrderRequest) (entities.SupplierOrder, error)
	GetOrder(ctx context.Context, externalID string) (entities.SupplierOrder, error)
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

type FulfillmentConfig struct {
	SubmissionTimeout time.Duration
	ReconcileAfter    time.Duration
	ReconcileBatch    int
	DesignsFolder     string
}

type orderService struct {
	logger   *slog.Logger
	repo     OrderRepo
	payments PaymentProvider
	supplier OrderSupplier
	uploader Uploader
	events   EventPublisher
	cfg      FulfillmentConfig

	wg       sync.WaitGroup
	inflight sync.Map
	locks    [lockStripes]sync.Mutex
	now      func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	repo OrderRepo,
	payments PaymentProvider,
	supplier OrderSupplier,
	uploader Uploader,
	events EventPublisher,
	cfg FulfillmentConfig,
) *orderService {
	if cfg.SubmissionTimeout <= 0 {
		cfg.SubmissionTimeout = 2 * time.Minute
	}
	if cfg.ReconcileAfter <= 0 {
		cfg.ReconcileAfter = 15 * time.Minute
	}
	if cfg.ReconcileBatch <= 0 {
		cfg.ReconcileBatch = 50
	}
	if cfg.DesignsFolder == "" {
		cfg.DesignsFolder = "designs"
	}
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		repo:     repo,
		payments: payments,
		supplier: supplier,
		uploader: uploader,
		events:   events,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateOrder confirms the payment, persists the order as pending and paid, and
// hands supplier submission to a background continuation. It does not wait for it.
func (s *orderService) CreateOrder(ctx context.Context, userID string, in entities.CreateOrderInput) (entities.Order, error) {
	if err := validateOrderInput(in); err != nil {
		return entities.Order{}, err
	}

	confirmed, err := s.payments.ConfirmPayment(ctx, in.PaymentIntentID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", entities.ErrPaymentNotConfirmed, err)
	}
	if !confirmed {
		return entities.Order{}, entities.ErrPaymentNotConfirmed
	}

	now := s.now().UTC()
	order := entities.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Recipient:       in.Recipient,
		Items:           in.Items,
		ShippingMethod:  in.ShippingMethod,
		ShippingCost:    in.ShippingCost,
		TaxAmount:       in.TaxAmount,
		Status:          entities.OrderStatusPending,
		PaymentIntentID: in.PaymentIntentID,
		PaymentStatus:   entities.PaymentStatusPaid,
		PaidAt:          &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.Subtotal, order.Total = orderTotals(in.Items, in.ShippingCost, in.TaxAmount)

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxRetries:   3,
		Multiplier:   2,
	}
	err = utils.Retry(cfg, func() error {
		return s.repo.CreateOrder(ctx, order)
	}, entities.ErrPaymentAlreadyUsed, context.Canceled, context.DeadlineExceeded)
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("payment_intent_id", order.PaymentIntentID),
		slog.String("total", order.Total.StringFixed(2)),
	)
	s.publish(ctx, entities.OrderEventCreated, order)

	s.submitAsync(context.WithoutCancel(ctx), order)
	return order, nil
}

func validateOrderInput(in entities.CreateOrderInput) error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", entities.ErrInvalidOrder)
	}
	for i, it := range in.Items {
		if it.VariantID <= 0 {
			return fmt.Errorf("%w: item %d: variant id must be positive", entities.ErrInvalidOrder, i)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", entities.ErrInvalidOrder, i)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d: price must not be negative", entities.ErrInvalidOrder, i)
		}
	}
	if in.ShippingCost.IsNegative() {
		return fmt.Errorf("%w: shipping cost must not be negative", entities.ErrInvalidOrder)
	}
	if in.TaxAmount.IsNegative() {
		return fmt.Errorf("%w: tax amount must not be negative", entities.ErrInvalidOrder)
	}
	if in.PaymentIntentID == "" {
		return fmt.Errorf("%w: payment intent id is required", entities.ErrInvalidOrder)
	}
	return nil
}

func orderTotals(items []entities.Item, shipping, tax decimal.Decimal) (subtotal, total decimal.Decimal) {
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	return subtotal, subtotal.Add(shipping).Add(tax)
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (entities.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	return s.repo.ListUserOrders(ctx, userID, limit, offset)
}

// submitAsync starts the continuation for order unless one is already running in this process.
func (s *orderService) submitAsync(ctx context.Context, order entities.Order) bool {
	if _, running := s.inflight.LoadOrStore(order.ID, struct{}{}); running {
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inflight.Delete(order.ID)

		ctx, cancel := context.WithTimeout(ctx, s.cfg.SubmissionTimeout)
		defer cancel()
		s.fulfill(ctx, order)
	}()
	return true
}

// fulfill submits the order to the supplier. The order ends processing, or failed
// with compensation attempted once the supplier confirms it holds no such order.
// When neither can be established the order stays pending for the reconciler.
func (s *orderService) fulfill(ctx context.Context, order entities.Order) {
	logger := s.logger.With(slog.String("order_id", order.ID))
	submitted := false

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		logger.Error("order submission panicked", slog.Any("panic", r), slog.Bool("submitted", submitted))
		if submitted {
			return
		}
		fulfillmentOutcomes.WithLabelValues("failed").Inc()

		defer func() {
			if r := recover(); r != nil {
				logger.Error("compensation panicked, manual intervention required", slog.Any("panic", r))
			}
		}()
		s.failAndCompensate(ctx, order.ID, fmt.Errorf("panic: %v", r))
	}()

	req, err := s.supplierRequest(ctx, order)
	if err != nil {
		logger.Error("failed to prepare supplier order", slog.Any("error", err))
		fulfillmentOutcomes.WithLabelValues("failed").Inc()
		s.failAndCompensate(ctx, order.ID, err)
		return
	}

	result, err := s.supplier.CreateOrder(ctx, req)
	if err != nil {
		existing, lookupErr := s.findSubmitted(ctx, order.ID)
		switch {
		case lookupErr == nil:
			logger.Warn("supplier already holds the order, recording it",
				slog.Int64("supplier_order_id", existing.ID), slog.Any("submit_error", err))
			result = existing
		case errors.Is(lookupErr, entities.ErrSupplierOrderNotFound):
			logger.Error("failed to submit order to supplier", slog.Any("error", err))
			fulfillmentOutcomes.WithLabelValues("failed").Inc()
			s.failAndCompensate(ctx, order.ID, err)
			return
		default:
			logger.Error("supplier submission outcome unknown, order left pending",
				slog.Any("error", err), slog.Any("lookup_error", lookupErr))
			fulfillmentOutcomes.WithLabelValues("unresolved").Inc()
			return
		}
	}
	submitted = true
	fulfillmentOutcomes.WithLabelValues("submitted").Inc()

	wctx, cancel := terminalContext(ctx)
	defer cancel()

	status := entities.OrderStatusProcessing
	upd := entities.OrderUpdate{
		Status:           &status,
		SupplierOrderID:  &result.ID,
		SupplierResponse: result.Raw,
	}
	if err := s.updateWithRetry(wctx, order.ID, upd); err != nil {
		// the supplier has the order; the reconciler finds it again by external id
		logger.Error("failed to record supplier order", slog.Int64("supplier_order_id", result.ID), slog.Any("error", err))
		return
	}

	logger.Info("order submitted to supplier", slog.Int64("supplier_order_id", result.ID))
	s.publish(wctx, entities.OrderEventProcessing, upd.Apply(order))
}

// findSubmitted asks the supplier whether a failed submission still left an order
// behind, as with a rejected duplicate external id or a request that timed out after
// the supplier accepted it. Only ErrSupplierOrderNotFound makes the failure definitive.
func (s *orderService) findSubmitted(ctx context.Context, orderID string) (entities.SupplierOrder, error) {
	lctx, cancel := terminalContext(ctx)
	defer cancel()
	return s.supplier.GetOrder(lctx, orderID)
}

func (s *orderService) supplierRequest(ctx context.Context, order entities.Order) (entities.SupplierOrderRequest, error) {
	req := entities.SupplierOrderRequest{
		ExternalID:     order.ID,
		ShippingMethod: order.ShippingMethod,
		Recipient:      order.Recipient,
		Items:          make([]entities.SupplierOrderItem, 0, len(order.Items)),
		RetailShipping: order.ShippingCost,
		RetailTax:      order.TaxAmount,
	}

	for _, it := range order.Items {
		item := entities.SupplierOrderItem{
			VariantID:   it.VariantID,
			Quantity:    it.Quantity,
			RetailPrice: it.UnitPrice,
		}
		if it.DesignURL != "" {
			fileURL, err := publishDesign(ctx, s.uploader, s.cfg.DesignsFolder, it.DesignURL)
			if err != nil {
				return entities.SupplierOrderRequest{}, err
			}
			item.FileURL = fileURL
		}
		req.Items = append(req.Items, item)
	}
	return req, nil
}

// failAndCompensate marks the order failed and refunds its payment.
func (s *orderService) failAndCompensate(ctx context.Context, orderID string, cause error) {
	wctx, cancel := terminalContext(ctx)
	defer cancel()

	status := entities.OrderStatusFailed
	if err := s.updateWithRetry(wctx, orderID, entities.OrderUpdate{Status: &status}); err != nil {
		s.logger.Error("failed to mark order failed",
			slog.String("order_id", orderID), slog.Any("cause", cause), slog.Any("error", err))
	}
	s.compensate(wctx, orderID)
}

// compensate refunds the order's payment at most once. Calls for the same
// order are serialized, and an order already refunded is left alone.
func (s *orderService) compensate(ctx context.Context, orderID string) {
	mu := s.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	logger := s.logger.With(slog.String("order_id", orderID))

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.Error("failed to load order for refund, manual intervention required", slog.Any("error", err))
		refundOutcomes.WithLabelValues("failed").Inc()
		return
	}
	if order.PaymentStatus != entities.PaymentStatusPaid {
		logger.Info("skipping refund", slog.String("payment_status", string(order.PaymentStatus)))
		refundOutcomes.WithLabelValues("skipped").Inc()
		return
	}

	amount := entities.MinorUnits(order.Total)
	refund, err := s.payments.RefundPayment(ctx, entities.RefundRequest{
		PaymentIntentID: order.PaymentIntentID,
		AmountMinor:     amount,
		IdempotencyKey:  fmt.Sprintf("order-%s-refund", order.ID),
	})
	if err != nil {
		logger.Error("refund failed, manual intervention required",
			slog.String("payment_intent_id", order.PaymentIntentID),
			slog.String("amount", order.Total.StringFixed(2)),
			slog.Int64("amount_minor", amount),
			slog.Any("error", err),
		)
		refundOutcomes.WithLabelValues("failed").Inc()
		return
	}
	refundOutcomes.WithLabelValues("refunded").Inc()

	paymentStatus := entities.PaymentStatusRefunded
	upd := entities.OrderUpdate{PaymentStatus: &paymentStatus}
	if err := s.updateWithRetry(ctx, orderID, upd); err != nil {
		logger.Error("refund issued but not recorded",
			slog.String("refund_id", refund.ID), slog.Any("error", err))
		return
	}

	logger.Info("payment refunded",
		slog.String("refund_id", refund.ID),
		slog.String("payment_intent_id", order.PaymentIntentID),
		slog.Int64("amount_minor", amount),
	)
	s.publish(ctx, entities.OrderEventRefunded, upd.Apply(order))
}

func (s *orderService) lockFor(orderID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(orderID))
	return &s.locks[h.Sum32()%lockStripes]
}

func (s *orderService) updateWithRetry(ctx context.Context, orderID string, upd entities.OrderUpdate) error {
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxRetries:   3,
		Multiplier:   2,
		ShouldRetry: func(err error) (bool, time.Duration) {
			return !errors.Is(err, entities.ErrOrderNotFound) && ctx.Err() == nil, 0
		},
	}
	_, err := utils.WithRetry(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.UpdateOrder(ctx, orderID, upd)
	})
	return err
}

// terminalContext outlives the submission deadline so the final status is always written.
func terminalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), terminalWriteTimeout)
}

func (s *orderService) publish(ctx context.Context, typ entities.OrderEventType, order entities.Order) {
	event := entities.OrderEvent{
		Type:            typ,
		OrderID:         order.ID,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		SupplierOrderID: order.SupplierOrderID,
		OccurredAt:      s.now().UTC(),
	}
	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("order_id", order.ID), slog.String("type", string(typ)), slog.Any("error", err))
	}
}

// ApplySupplierEvent moves an order along the supplier's lifecycle. Cancelled and
// failed orders are compensated; replays of an already applied event are no-ops.
func (s *orderService) ApplySupplierEvent(ctx context.Context, ev entities.SupplierEvent) error {
	var (
		next      entities.OrderStatus
		eventType entities.OrderEventType
	)
	switch ev.Type {
	case entities.SupplierEventPackageShipped:
		next, eventType = entities.OrderStatusShipped, entities.OrderEventShipped
	case entities.SupplierEventOrderCanceled:
		next, eventType = entities.OrderStatusCancelled, entities.OrderEventCancelled
	case entities.SupplierEventOrderFailed:
		next, eventType = entities.OrderStatusFailed, entities.OrderEventFailed
	default:
		return fmt.Errorf("unknown supplier event type %q", ev.Type)
	}

	order, err := s.repo.GetOrderByID(ctx, ev.OrderID)
	if err != nil {
		return err
	}

	logger := s.logger.With(slog.String("order_id", order.ID), slog.String("event", string(ev.Type)))
	compensate := next == entities.OrderStatusCancelled || next == entities.OrderStatusFailed

	if order.Status == next {
		logger.Debug("supplier event already applied")
		if compensate {
			s.compensate(ctx, order.ID)
		}
		return nil
	}
	if !order.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, next)
	}

	upd := entities.OrderUpdate{Status: &next}
	if ev.SupplierOrderID != 0 && order.SupplierOrderID == nil {
		upd.SupplierOrderID = &ev.SupplierOrderID
	}
	if ev.TrackingNumber != "" {
		upd.TrackingNumber = &ev.TrackingNumber
	}
	if ev.TrackingURL != "" {
		upd.TrackingURL = &ev.TrackingURL
	}
	if err := s.repo.UpdateOrder(ctx, order.ID, upd); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	logger.Info("order status updated by supplier",
		slog.String("from", string(order.Status)), slog.String("to", string(next)), slog.String("reason", ev.Reason))
	s.publish(ctx, eventType, upd.Apply(order))

	if compensate {
		s.compensate(ctx, order.ID)
	}
	return nil
}

// ResumePending re-submits paid orders that never reached the supplier, for
// example after a crash mid-continuation. It returns how many were restarted.
func (s *orderService) ResumePending(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.ReconcileAfter)
	orders, err := s.repo.ListStalePending(ctx, cutoff, s.cfg.ReconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale orders: %w", err)
	}

	started := 0
	for _, order := range orders {
		if s.submitAsync(context.WithoutCancel(ctx), order) {
			started++
		}
	}
	if started > 0 {
		s.logger.Info("resumed stale orders", slog.Int("count", started))
	}
	return started, nil
}

// Reconcile runs ResumePending immediately and then periodically until ctx is done.
func (s *orderService) Reconcile(ctx context.Context) error {
	interval := s.cfg.ReconcileAfter / 2
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := s.ResumePending(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("reconciliation failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Shutdown waits for in-flight continuations or until ctx is done.
func (s *orderService) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("order continuations still running: %w", ctx.Err())
	}
}
