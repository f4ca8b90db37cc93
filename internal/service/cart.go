package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/pkg/trm"

	"github.com/shopspring/decimal"
)

type CartRepo interface {
	GetCartID(ctx context.Context, customerID int64) (int64, error)
	GetCartIDForUpdate(ctx context.Context, customerID int64) (int64, error)

	GetCartItems(ctx context.Context, cartID int64) ([]entities.CartItem, error)
	GetCartItem(ctx context.Context, cartID, productID int64) (entities.CartItem, error)
	UpsertCartItem(ctx context.Context, cartID, productID int64, quantity int) error
	SetCartItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	DeleteCartItem(ctx context.Context, cartID, productID int64) error
	ClearCart(ctx context.Context, cartID int64) error
}

// cartService owns all cart mutation. Every write locks the cart row
// first, so concurrent mutations for one customer serialize on the
// database and a merge or insert never partially applies.
type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	products  ProductProvider
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, carts CartRepo, products ProductProvider) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		carts:     carts,
		products:  products,
	}
}

// AddItem merges quantity into an existing line or inserts a new one.
// Cart creation happens at account creation, elsewhere; a missing cart is
// the caller's error.
func (s *cartService) AddItem(ctx context.Context, customerID, productID int64, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, quantity)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cartID, err := s.carts.GetCartIDForUpdate(ctx, customerID)
		if err != nil {
			return err
		}

		if err := s.carts.UpsertCartItem(ctx, cartID, productID, quantity); err != nil {
			return err
		}

		s.logger.Debug("cart item added",
			slog.Int64("customer_id", customerID),
			slog.Int64("product_id", productID),
			slog.Int("quantity", quantity),
		)
		return nil
	})
}

// GetItems returns the cart lines in insertion order. An existing but
// empty cart reports ErrCartItemNotFound, distinct from having no cart.
func (s *cartService) GetItems(ctx context.Context, customerID int64) ([]entities.CartItem, error) {
	cartID, err := s.carts.GetCartID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.GetCartItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, entities.ErrCartItemNotFound
	}
	return items, nil
}

// RemoveItem decrements the line quantity by one and deletes the row when
// it reaches zero.
func (s *cartService) RemoveItem(ctx context.Context, customerID, productID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cartID, err := s.carts.GetCartIDForUpdate(ctx, customerID)
		if err != nil {
			return err
		}

		item, err := s.carts.GetCartItem(ctx, cartID, productID)
		if err != nil {
			return err
		}

		if item.Quantity <= 1 {
			return s.carts.DeleteCartItem(ctx, cartID, productID)
		}
		return s.carts.SetCartItemQuantity(ctx, cartID, productID, item.Quantity-1)
	})
}

func (s *cartService) Clear(ctx context.Context, customerID int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cartID, err := s.carts.GetCartIDForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		return s.carts.ClearCart(ctx, cartID)
	})
}

// CheckoutTotal sums quantity x current product price. Carts are live:
// unlike order items, this total moves with product price changes.
func (s *cartService) CheckoutTotal(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	items, err := s.GetItems(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to price product %d: %w", item.ProductID, err)
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total.Round(2), nil
}
