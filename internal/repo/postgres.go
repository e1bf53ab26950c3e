package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"
	"github.com/SergeyBogomolovv/pod-fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	db  *sqlx.DB
	trm trm.Manager
	qb  sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB, manager trm.Manager) *postgresRepo {
	return &postgresRepo{
		db:  db,
		trm: manager,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder stores the order and its items atomically.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	return r.trm.Do(ctx, func(ctx context.Context) error {
		rc := o.Recipient
		query, args := r.qb.Insert("orders").
			Columns(orderColumns...).
			Values(
				o.ID, o.UserID,
				rc.Name, rc.Address1, rc.Address2, rc.City, rc.StateCode, rc.CountryCode, rc.ZIP, rc.Email, rc.Phone,
				o.ShippingMethod, o.Subtotal, o.ShippingCost, o.TaxAmount, o.Total,
				string(o.Status), o.PaymentIntentID, string(o.PaymentStatus), nullTime(o.PaidAt),
				nullInt64(o.SupplierOrderID), jsonb(o.SupplierResponse), o.TrackingNumber, o.TrackingURL,
				o.CreatedAt, o.UpdatedAt,
			).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return entities.ErrPaymentAlreadyUsed
			}
			return fmt.Errorf("failed to save order: %w", err)
		}

		return r.saveItems(ctx, o.ID, o.Items)
	})
}

func (r *postgresRepo) saveItems(ctx context.Context, orderID string, items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(orderID, i, it.VariantID, it.Quantity, it.UnitPrice, it.ProductType, it.CustomProductID, it.DesignURL)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsByOrder(ctx, []string{id})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(order, items[id]), nil
}

// ListUserOrders returns the user's orders, newest first.
func (r *postgresRepo) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

// ListStalePending returns paid orders that never reached the supplier and were created before olderThan.
func (r *postgresRepo) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{
			"status":            string(entities.OrderStatusPending),
			"payment_status":    string(entities.PaymentStatusPaid),
			"supplier_order_id": nil,
		}).
		Where(sq.Lt{"created_at": olderThan}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		MustSql()

	return r.selectOrders(ctx, query, args...)
}

func (r *postgresRepo) selectOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, items[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) itemsByOrder(ctx context.Context, ids []string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	byOrder := make(map[string][]Item, len(ids))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}

// UpdateOrder patches status and reference fields; totals, items and recipient are never touched.
func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, upd entities.OrderUpdate) error {
	if upd.Empty() {
		return nil
	}

	q := r.qb.Update("orders").Set("updated_at", sq.Expr("NOW()")).Where(sq.Eq{"id": id})
	if upd.Status != nil {
		q = q.Set("status", string(*upd.Status))
	}
	if upd.PaymentStatus != nil {
		q = q.Set("payment_status", string(*upd.PaymentStatus))
	}
	if upd.SupplierOrderID != nil {
		q = q.Set("supplier_order_id", *upd.SupplierOrderID)
	}
	if upd.SupplierResponse != nil {
		q = q.Set("supplier_response", jsonb(upd.SupplierResponse))
	}
	if upd.TrackingNumber != nil {
		q = q.Set("tracking_number", *upd.TrackingNumber)
	}
	if upd.TrackingURL != nil {
		q = q.Set("tracking_url", *upd.TrackingURL)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
