package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopcore/billing-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InsertOrder writes the order header. The unique index on billing_job_id
// turns a concurrent redelivery of the same job into a conflict instead
// of a second order.
func (r *Repo) InsertOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "billing_job_id", "customer_id", "status",
			"payment_method", "shipping_country", "shipping_method",
			"shipping_cost", "total", "currency", "created_at",
		).
		Values(
			o.ID, nullString(o.BillingJobID), o.CustomerID, string(o.Status),
			o.PaymentMethod, o.ShippingCountry, o.ShippingMethod,
			o.ShippingCost, o.Total, o.Currency, o.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrDuplicateBillingJob
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *Repo) InsertOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "unit_price", "position")

	for i, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.UnitPrice, i)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *Repo) GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "billing_job_id", "customer_id", "status",
		"payment_method", "shipping_country", "shipping_method",
		"shipping_cost", "total", "currency", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

// GetOrderByJobID is the redelivery fast path: a job id that already has
// an order means the whole pipeline completed before.
func (r *Repo) GetOrderByJobID(ctx context.Context, jobID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "billing_job_id", "customer_id", "status",
		"payment_method", "shipping_country", "shipping_method",
		"shipping_cost", "total", "currency", "created_at").
		From("orders").
		Where(sq.Eq{"billing_job_id": jobID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order by job id: %w", err)
	}

	items, err := r.orderItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

// UpdateOrderStatus transitions from exactly one status to another and
// reports whether any row changed, so callers can tell a raced transition
// from a missing order.
func (r *Repo) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to entities.OrderStatus) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (r *Repo) orderItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	query, args := r.qb.Select("order_id", "product_id", "quantity", "unit_price", "position").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
