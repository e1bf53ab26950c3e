package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]entities.Order)}
}

func (r *memOrderRepo) CreateOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.PaymentIntentID == o.PaymentIntentID {
			return entities.ErrPaymentAlreadyUsed
		}
	}
	r.orders[o.ID] = o
	return nil
}

func (r *memOrderRepo) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o, nil
}

func (r *memOrderRepo) ListUserOrders(_ context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []entities.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	if offset >= len(res) {
		return []entities.Order{}, nil
	}
	return res[offset:min(len(res), offset+limit)], nil
}

func (r *memOrderRepo) ListStalePending(_ context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []entities.Order
	for _, o := range r.orders {
		if o.Status == entities.OrderStatusPending && o.PaymentStatus == entities.PaymentStatusPaid &&
			o.SupplierOrderID == nil && o.CreatedAt.Before(olderThan) && len(res) < limit {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r *memOrderRepo) UpdateOrder(_ context.Context, id string, upd entities.OrderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	r.orders[id] = upd.Apply(o)
	return nil
}

func (r *memOrderRepo) seed(o entities.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
}

func (r *memOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type fakePayments struct {
	mu         sync.Mutex
	confirmed  bool
	confirmErr error
	refundErr  error
	refunds    []entities.RefundRequest
}

func (p *fakePayments) ConfirmPayment(context.Context, string) (bool, error) {
	return p.confirmed, p.confirmErr
}

func (p *fakePayments) RefundPayment(_ context.Context, req entities.RefundRequest) (entities.Refund, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refunds = append(p.refunds, req)
	if p.refundErr != nil {
		return entities.Refund{}, p.refundErr
	}
	return entities.Refund{ID: "re_1", Status: "succeeded", AmountMinor: req.AmountMinor}, nil
}

func (p *fakePayments) refundCalls() []entities.RefundRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entities.RefundRequest(nil), p.refunds...)
}

type fakeSupplier struct {
	mu        sync.Mutex
	err       error
	id        int64
	requests  []entities.SupplierOrderRequest
	held      map[string]int64
	lookupErr error
	lookups   int
}

func (s *fakeSupplier) GetOrder(_ context.Context, externalID string) (entities.SupplierOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.lookupErr != nil {
		return entities.SupplierOrder{}, s.lookupErr
	}
	id, ok := s.held[externalID]
	if !ok {
		return entities.SupplierOrder{}, entities.ErrSupplierOrderNotFound
	}
	raw, _ := json.Marshal(map[string]any{"id": id, "external_id": externalID, "status": "inprocess"})
	return entities.SupplierOrder{ID: id, Status: "inprocess", Raw: raw}, nil
}

func (s *fakeSupplier) lookupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

func (s *fakeSupplier) CreateOrder(_ context.Context, req entities.SupplierOrderRequest) (entities.SupplierOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	if s.err != nil {
		return entities.SupplierOrder{}, s.err
	}
	raw, _ := json.Marshal(map[string]any{"id": s.id, "status": "draft"})
	return entities.SupplierOrder{ID: s.id, Status: "draft", Raw: raw}, nil
}

func (s *fakeSupplier) calls() []entities.SupplierOrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.SupplierOrderRequest(nil), s.requests...)
}

type fakeUploader struct {
	mu      sync.Mutex
	uploads []string
}

func (u *fakeUploader) UploadBuffer(_ context.Context, data []byte, mimeType, folder string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.uploads = append(u.uploads, mimeType)
	return "https://storage.example.com/" + folder + "/upload.png", nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []entities.OrderEvent
}

func (p *fakePublisher) PublishOrderEvent(_ context.Context, e entities.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) types() []entities.OrderEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]entities.OrderEventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
