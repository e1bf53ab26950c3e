package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/pod-fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

func (r *postgresRepo) CreateCustomProduct(ctx context.Context, p entities.CustomProduct) error {
	query, args := r.qb.Insert("custom_products").
		Columns(customProductColumns...).
		Values(
			p.ID, p.UserID, p.Name, p.SupplierProductID, pq.Int64Array(p.VariantIDs), p.Placement,
			p.DesignURL, pq.StringArray(nonNil(p.MockupURLs)), string(p.Status), p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save custom product: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetCustomProduct(ctx context.Context, id string) (entities.CustomProduct, error) {
	query, args := r.qb.Select(customProductColumns...).
		From("custom_products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var p CustomProduct
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CustomProduct{}, entities.ErrCustomProductNotFound
	}
	if err != nil {
		return entities.CustomProduct{}, fmt.Errorf("failed to get custom product: %w", err)
	}
	return CustomProductToEntity(p), nil
}

func (r *postgresRepo) ListUserCustomProducts(ctx context.Context, userID string) ([]entities.CustomProduct, error) {
	query, args := r.qb.Select(customProductColumns...).
		From("custom_products").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		MustSql()

	var rows []CustomProduct
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select custom products: %w", err)
	}

	result := make([]entities.CustomProduct, 0, len(rows))
	for _, p := range rows {
		result = append(result, CustomProductToEntity(p))
	}
	return result, nil
}

// SaveCustomProductMockups replaces the product's mockup URLs and moves it to status.
func (r *postgresRepo) SaveCustomProductMockups(ctx context.Context, id string, urls []string, status entities.CustomProductStatus) error {
	query, args := r.qb.Update("custom_products").
		Set("mockup_urls", pq.StringArray(nonNil(urls))).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update custom product mockups: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrCustomProductNotFound
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
