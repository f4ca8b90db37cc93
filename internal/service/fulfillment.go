package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) error
	InsertOrderItems(ctx context.Context, orderID uuid.UUID, items []entities.OrderItem) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	GetOrderByJobID(ctx context.Context, jobID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, from, to entities.OrderStatus) (bool, error)
}

type CustomerRepo interface {
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
}

type CreateOrderParams struct {
	// BillingJobID is set when the order is created by the billing
	// pipeline; it makes the creation idempotent per job.
	BillingJobID    string
	CustomerID      int64
	Items           []entities.JobItem
	PaymentMethod   string
	ShippingCountry string
	ShippingMethod  string
	ShippingCost    decimal.Decimal
	Currency        string
}

// fulfillmentService creates orders with their items as one atomic unit
// and owns the order status lifecycle. Callers holding a transaction in
// ctx enroll the creation into it; otherwise the service runs its own.
type fulfillmentService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	customers CustomerRepo
	products  ProductProvider
	now       func() time.Time
}

func NewFulfillmentService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	customers CustomerRepo,
	products ProductProvider,
) *fulfillmentService {
	return &fulfillmentService{
		logger:    logger.With(slog.String("service", "fulfillment")),
		txManager: txManager,
		orders:    orders,
		customers: customers,
		products:  products,
		now:       time.Now,
	}
}

// CreateOrder validates the customer and every product, snapshots unit
// prices at order time and persists header plus items all-or-nothing.
func (s *fulfillmentService) CreateOrder(ctx context.Context, params CreateOrderParams) (entities.Order, error) {
	if len(params.Items) == 0 {
		return entities.Order{}, fmt.Errorf("%w: order has no items", entities.ErrInvalidQuantity)
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.customers.CustomerExists(ctx, params.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %d", entities.ErrCustomerNotFound, params.CustomerID)
		}

		itemsTotal := decimal.Zero
		orderItems := make([]entities.OrderItem, 0, len(params.Items))
		for _, item := range params.Items {
			if item.Quantity < 1 {
				return fmt.Errorf("%w: %d for product %d", entities.ErrInvalidQuantity, item.Quantity, item.ProductID)
			}

			product, err := s.products.GetProduct(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("failed to validate product %d: %w", item.ProductID, err)
			}

			orderItems = append(orderItems, entities.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
			})
			itemsTotal = itemsTotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		order = entities.Order{
			ID:              uuid.New(),
			BillingJobID:    params.BillingJobID,
			CustomerID:      params.CustomerID,
			Status:          entities.OrderStatusPending,
			PaymentMethod:   params.PaymentMethod,
			ShippingCountry: params.ShippingCountry,
			ShippingMethod:  params.ShippingMethod,
			ShippingCost:    params.ShippingCost,
			Total:           itemsTotal.Add(params.ShippingCost).Round(2),
			Currency:        params.Currency,
			CreatedAt:       s.now().UTC(),
			Items:           orderItems,
		}

		if err := s.orders.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := s.orders.InsertOrderItems(ctx, order.ID, order.Items); err != nil {
			return err
		}

		s.logger.Debug("order created",
			slog.String("order_id", order.ID.String()),
			slog.Int64("customer_id", order.CustomerID),
			slog.String("total", order.Total.String()),
		)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	return order, nil
}

// MarkAsDelivered is a one-way transition. A delivered order can never
// go back to pending and a second call is a conflict, not a no-op.
func (s *fulfillmentService) MarkAsDelivered(ctx context.Context, orderID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}

		switch order.Status {
		case entities.OrderStatusDelivered:
			return entities.ErrOrderAlreadyDelivered
		case entities.OrderStatusCancelled:
			return entities.ErrOrderNotPending
		}

		updated, err := s.orders.UpdateOrderStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusDelivered)
		if err != nil {
			return err
		}
		if !updated {
			// Lost the race to another marker.
			return entities.ErrOrderAlreadyDelivered
		}
		return nil
	})
}

// CancelOrder is permitted only while the order is pending. The ownership
// check lives here, not with the caller; a foreign order looks missing.
func (s *fulfillmentService) CancelOrder(ctx context.Context, customerID int64, orderID uuid.UUID) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.CustomerID != customerID {
			return fmt.Errorf("%w: %s", entities.ErrOrderNotFound, orderID)
		}
		if order.Status != entities.OrderStatusPending {
			return entities.ErrOrderNotPending
		}

		updated, err := s.orders.UpdateOrderStatus(ctx, orderID, entities.OrderStatusPending, entities.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if !updated {
			return entities.ErrOrderNotPending
		}
		return nil
	})
}
