package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopcore/billing-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"
)

// GetCartID resolves the customer's cart without locking it.
func (r *Repo) GetCartID(ctx context.Context, customerID int64) (int64, error) {
	query, args := r.qb.Select("id").
		From("carts").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrCartNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cart: %w", err)
	}
	return id, nil
}

// GetCartIDForUpdate locks the cart row for the rest of the enclosing
// transaction, serializing concurrent mutations for one customer.
func (r *Repo) GetCartIDForUpdate(ctx context.Context, customerID int64) (int64, error) {
	query, args := r.qb.Select("id").
		From("carts").
		Where(sq.Eq{"customer_id": customerID}).
		Suffix("FOR UPDATE").
		MustSql()

	var id int64
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrCartNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock cart: %w", err)
	}
	return id, nil
}

func (r *Repo) GetCartItems(ctx context.Context, cartID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select("cart_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("added_at", "product_id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	return lo.Map(items, func(it CartItem, _ int) entities.CartItem {
		return CartItemToEntity(it)
	}), nil
}

func (r *Repo) GetCartItem(ctx context.Context, cartID, productID int64) (entities.CartItem, error) {
	query, args := r.qb.Select("cart_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	var item CartItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrCartItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

// UpsertCartItem inserts a line or adds to the existing quantity, keeping
// the one-row-per-(cart, product) invariant at the database level.
func (r *Repo) UpsertCartItem(ctx context.Context, cartID, productID int64, quantity int) error {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "quantity").
		Values(cartID, productID, quantity).
		Suffix("ON CONFLICT (cart_id, product_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return nil
}

func (r *Repo) SetCartItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *Repo) DeleteCartItem(ctx context.Context, cartID, productID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return nil
}

func (r *Repo) ClearCart(ctx context.Context, cartID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
